// Package runners pairs a display name with a Sort operation, the uniform
// wrapper spec.md §4.6 calls for so the benchmark driver can hold a single
// fixed roster instead of a deep class hierarchy — a tagged set of five
// variants sharing one capability, not inheritance.
package runners

import (
	"github.com/nfiedler/mkqsortbench/burstsort"
	"github.com/nfiedler/mkqsortbench/sortlib"
)

// Runner sorts a slice of strings in place and names itself for display.
type Runner interface {
	Name() string
	Sort(data []string) error
}

type runnerFunc struct {
	name string
	sort func([]string) error
}

func (r runnerFunc) Name() string             { return r.name }
func (r runnerFunc) Sort(data []string) error { return r.sort(data) }

// Roster is the fixed set of sorters the benchmark driver compares, in the
// order spec.md §4.6 lists them.
func Roster() []Runner {
	return []Runner{
		runnerFunc{"Mergesort", sortlib.Mergesort},
		runnerFunc{"Quicksort", sortlib.Quicksort},
		runnerFunc{"Multikey 1", sortlib.Multikey1},
		runnerFunc{"Multikey 2", sortlib.Multikey2},
		runnerFunc{"Burstsort", func(data []string) error {
			burstsort.Sort(data)
			return nil
		}},
	}
}

package sortlib

import "sort"

// Mergesort sorts strings in place using the standard library's sort.
// java.util.Arrays.sort(Object[]) is a mergesort; sort.Strings is its direct
// Go analogue (Go's sort package does not expose the underlying algorithm
// as a choice the way some other runtimes do, but the role in this roster
// is the same: the generic comparison-sort baseline everything else is
// measured against). There is no third-party string-sort library in the
// corpus this could be swapped for without re-implementing sort.Strings.
func Mergesort(strings []string) error {
	if strings == nil {
		return ErrNilStrings
	}
	sort.Strings(strings)
	return nil
}

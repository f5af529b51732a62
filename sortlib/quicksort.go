package sortlib

import "math/rand"

// quicksortCutoff mirrors Multikey2's small-range cutoff
// (insertionSortCutoff), so the two sorters are tuned comparably.
const quicksortCutoff = 8

// Quicksort sorts strings in place using an ordinary single-key randomized
// quicksort, comparing whole strings lexicographically rather than one
// character at a time. It exists purely as a baseline in the benchmark
// roster: it re-scans shared prefixes on every comparison, which is exactly
// what the multikey sorts avoid.
func Quicksort(strings []string) error {
	if strings == nil {
		return ErrNilStrings
	}
	qsort(strings, 0, len(strings))
	return nil
}

func qsort(a []string, lo, hi int) {
	if hi-lo < quicksortCutoff {
		straightInsertionSort(a, lo, hi)
		return
	}
	p := lo + rand.Intn(hi-lo)
	a[lo], a[p] = a[p], a[lo]
	pivot := a[lo]

	i, j := lo+1, hi-1
	for {
		for i <= j && a[i] < pivot {
			i++
		}
		for i <= j && a[j] > pivot {
			j--
		}
		if i > j {
			break
		}
		a[i], a[j] = a[j], a[i]
		i++
		j--
	}
	a[lo], a[j] = a[j], a[lo]

	qsort(a, lo, j)
	qsort(a, j+1, hi)
}

func straightInsertionSort(a []string, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

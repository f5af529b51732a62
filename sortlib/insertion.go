package sortlib

// insertionSortCutoff is the subarray size below which multikey quicksort
// hands off to insertion sort rather than recursing further. Tuned constant
// from the original Bentley-Sedgewick presentation; changing it changes M2's
// performance profile, not just its constant factor.
const insertionSortCutoff = 8

// pseudoMedianThreshold is the subarray size above which pivot selection
// samples nine candidates (three medians of three) instead of three.
const pseudoMedianThreshold = 30

// InsertionSort sorts arr[lo:hi] in place, comparing strings starting at
// character offset depth rather than from the beginning. It is the base
// case for Multikey2 (and Mkqsort), invoked whenever hi-lo is small enough
// that the overhead of partitioning isn't worth it; Multikey1 does not use
// it.
func InsertionSort(arr []string, lo, hi, depth int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && lessFrom(arr[j], arr[j-1], depth); j-- {
			swap(arr, j, j-1)
		}
	}
}

// lessFrom reports whether a sorts before b when only characters at offset
// depth and beyond are considered.
func lessFrom(a, b string, depth int) bool {
	for d := depth; ; d++ {
		ca, cb := charAt(a, d), charAt(b, d)
		if ca != cb {
			return ca < cb
		}
		if ca == 0 {
			return false
		}
	}
}

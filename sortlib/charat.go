// Package sortlib implements the character-indexed, radix-like family of
// string sorts described by Bentley and Sedgewick's multikey quicksort:
// comparisons touch one byte at a time rather than re-scanning shared
// prefixes, and recursion partitions the key space instead of the index
// space.
package sortlib

// charAt returns the byte at offset d in s, or zero if d is at or past the
// end of s. This simulates strings zero-padded to infinity, which is the
// ordering every sort in this package relies on: "" precedes every non-empty
// string, and any proper prefix precedes its extensions.
func charAt(s string, d int) byte {
	if d < len(s) {
		return s[d]
	}
	return 0
}

// swap exchanges two elements of a.
func swap(a []string, x, y int) {
	a[x], a[y] = a[y], a[x]
}

// vecswap exchanges n elements starting at i with n elements starting at j.
func vecswap(a []string, i, j, n int) {
	for n > 0 {
		swap(a, i, j)
		i++
		j++
		n--
	}
}

// isSorted reports whether a is in non-decreasing order under Go's byte-wise
// string comparison, which agrees with the character-offset ordering for
// strings without embedded zero bytes. Used by tests to verify a
// postcondition cheaply.
func isSorted(a []string) bool {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return false
		}
	}
	return true
}

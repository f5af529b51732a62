package sortlib

import (
	"errors"
	"math/rand"
)

// ErrNilStrings is returned when a sort entry point is asked to sort a nil
// slice. A nil slice and an empty, non-nil slice are different preconditions,
// as in the original Java source (the former throws, the latter is a no-op):
// here a nil slice returns this sentinel instead of panicking, and an empty
// slice is a no-op.
var ErrNilStrings = errors.New("sortlib: strings must be non-nil")

// Multikey1 sorts strings in place using multikey quicksort with a
// uniformly random pivot and no small-range cutoff. It is the pedagogical
// variant: simple, but exposed to adversarial worst-case pivots.
//
// Multikey1 draws its pivots from math/rand's package-level source, shared
// by every caller in the process and not seeded by this package. That
// source is safe for concurrent use, but pivot choices are not
// reproducible from run to run.
func Multikey1(strings []string) error {
	if strings == nil {
		return ErrNilStrings
	}
	ssort1(strings, 0, len(strings), 0)
	return nil
}

// ssort1 is the recursive core of Multikey1 over the frame (base, length, depth).
func ssort1(strings []string, base, length, depth int) {
	if length < 2 {
		return
	}
	r := base + rand.Intn(length)
	swap(strings, base, r)
	v := charAt(strings[base], depth)
	allZeros := v == 0

	le, lt := base+1, base+1
	gt, ge := base+length-1, base+length-1
	for {
		for lt <= gt {
			c := charAt(strings[lt], depth)
			if c > v {
				break
			}
			if c == v {
				swap(strings, le, lt)
				le++
			} else {
				allZeros = false
			}
			lt++
		}
		for lt <= gt {
			c := charAt(strings[gt], depth)
			if c < v {
				break
			}
			if c == v {
				swap(strings, gt, ge)
				ge--
			} else {
				allZeros = false
			}
			gt--
		}
		if lt > gt {
			break
		}
		swap(strings, lt, gt)
		lt++
		gt--
	}

	r = min(le-base, lt-le)
	vecswap(strings, base, lt-r, r)
	r = min(ge-gt, base+length-ge-1)
	vecswap(strings, lt, base+length-r, r)

	ltLen := lt - le
	ssort1(strings, base, ltLen, depth)
	if !allZeros {
		// Only descend if at least one string in the equal band is longer
		// than depth; an all-zeros band has already terminated and is in
		// its final position.
		ssort1(strings, base+ltLen, le+length-ge-1, depth+1)
	}
	r = ge - gt
	ssort1(strings, base+length-r, r, depth)
}

// Multikey2 sorts strings in place using multikey quicksort with
// median-of-three / pseudo-median-of-nine pivot selection and an
// insertion-sort cutoff for small ranges. This is the production variant.
func Multikey2(strings []string) error {
	if strings == nil {
		return ErrNilStrings
	}
	ssort2(strings, 0, len(strings), 0)
	return nil
}

// Sort is an alias for Multikey2: in-place three-way string sort, depth 0,
// full range. The original Java sources reference a surface method
// MultikeyQuicksort.sort(...) from their test suite without ever defining
// it; this alias is what those tests expect.
func Sort(strings []string) error {
	return Multikey2(strings)
}

// Mkqsort sorts strings[lo:hi] in place using the M2 algorithm, considering
// only characters from offset depth onward. This is the range- and
// depth-restricted entry point referenced directly by callers that already
// know a common prefix has been consumed.
func Mkqsort(strings []string, lo, hi, depth int) error {
	if strings == nil {
		return ErrNilStrings
	}
	ssort2(strings, lo, hi-lo, depth)
	return nil
}

// med3 returns the index among l, m, h whose character at depth is the
// median of the three. Ties are broken as: if va==vb return l; else if
// vc==va or vc==vb return h; else the ordered middle is returned.
func med3(a []string, l, m, h, depth int) int {
	va := charAt(a[l], depth)
	vb := charAt(a[m], depth)
	if va == vb {
		return l
	}
	vc := charAt(a[h], depth)
	if vc == va || vc == vb {
		return h
	}
	if va < vb {
		if vb < vc {
			return m
		}
		if va < vc {
			return h
		}
		return l
	}
	if vb > vc {
		return m
	}
	if va < vc {
		return l
	}
	return h
}

// ssort2 is the recursive core of Multikey2 over the frame (base, n, depth).
func ssort2(a []string, base, n, depth int) {
	if n < insertionSortCutoff {
		InsertionSort(a, base, base+n, depth)
		return
	}

	pl := base
	pm := base + n/2
	pn := base + n - 1
	if n > pseudoMedianThreshold {
		d := n / 8
		pl = med3(a, base, base+d, base+2*d, depth)
		pm = med3(a, base+n/2-d, pm, base+n/2+d, depth)
		pn = med3(a, base+n-1-2*d, base+n-1-d, pn, depth)
	}
	pm = med3(a, pl, pm, pn, depth)
	swap(a, base, pm)

	v := charAt(a[base], depth)
	allZeros := v == 0

	le, lt := base+1, base+1
	gt, ge := base+n-1, base+n-1
	for {
		for lt <= gt {
			c := charAt(a[lt], depth)
			if c > v {
				break
			}
			if c == v {
				swap(a, le, lt)
				le++
			} else {
				allZeros = false
			}
			lt++
		}
		for lt <= gt {
			c := charAt(a[gt], depth)
			if c < v {
				break
			}
			if c == v {
				swap(a, gt, ge)
				ge--
			} else {
				allZeros = false
			}
			gt--
		}
		if lt > gt {
			break
		}
		swap(a, lt, gt)
		lt++
		gt--
	}

	pn = base + n
	r := min(le-base, lt-le)
	vecswap(a, base, lt-r, r)
	r = min(ge-gt, pn-ge-1)
	vecswap(a, lt, pn-r, r)

	if r = lt - le; r > 1 {
		ssort2(a, base, r, depth)
	}
	if !allZeros {
		// Only descend if at least one string in the equal band is longer
		// than depth; an all-zeros band has already terminated and is in
		// its final position.
		ssort2(a, base+r, le+n-ge-1, depth+1)
	}
	if r = ge - gt; r > 1 {
		ssort2(a, base+n-r, r, depth)
	}
}

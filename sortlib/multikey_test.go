package sortlib

import (
	"math/rand"
	"sort"
	"strings"
	"testing"
)

func cloneStrings(a []string) []string {
	out := make([]string, len(a))
	copy(out, a)
	return out
}

func multisetEqual(t *testing.T, a, b []string) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("length changed: %d vs %d", len(a), len(b))
	}
	sa, sb := cloneStrings(a), cloneStrings(b)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("multiset differs at %d: %q vs %q", i, sa[i], sb[i])
		}
	}
}

func TestMultikey2_NilIsError(t *testing.T) {
	if err := Multikey2(nil); err != ErrNilStrings {
		t.Fatalf("expected ErrNilStrings, got %v", err)
	}
	if err := Multikey1(nil); err != ErrNilStrings {
		t.Fatalf("expected ErrNilStrings, got %v", err)
	}
}

func TestMultikey2_EmptyAndSingleton(t *testing.T) {
	empty := []string{}
	if err := Multikey2(empty); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	single := []string{"x"}
	if err := Multikey2(single); err != nil || single[0] != "x" {
		t.Fatalf("singleton sort should be a no-op, got %v %v", single, err)
	}
}

func TestMultikey2_PeculiarInput(t *testing.T) {
	arr := []string{"z", "m", "", "a", "d", "tt", "tt", "tt", "foo", "bar"}
	want := []string{"", "a", "bar", "d", "foo", "m", "tt", "tt", "tt", "z"}
	if err := Multikey2(arr); err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if arr[i] != want[i] {
			t.Fatalf("got %v, want %v", arr, want)
		}
	}
}

func TestMultikey2_AllEmpty(t *testing.T) {
	arr := make([]string, 10)
	if err := Multikey2(arr); err != nil {
		t.Fatal(err)
	}
	for _, s := range arr {
		if s != "" {
			t.Fatalf("expected only empty strings, got %q", s)
		}
	}
}

func TestMultikey2_Idempotent(t *testing.T) {
	arr := []string{"delta", "alpha", "charlie", "bravo", "alpha"}
	if err := Multikey2(arr); err != nil {
		t.Fatal(err)
	}
	once := cloneStrings(arr)
	if err := Multikey2(arr); err != nil {
		t.Fatal(err)
	}
	for i := range once {
		if once[i] != arr[i] {
			t.Fatalf("sorting a sorted array changed it: %v -> %v", once, arr)
		}
	}
}

func TestMultikey2_AllEqual(t *testing.T) {
	arr := make([]string, 50)
	for i := range arr {
		arr[i] = "same"
	}
	if err := Multikey2(arr); err != nil {
		t.Fatal(err)
	}
	for _, s := range arr {
		if s != "same" {
			t.Fatalf("equal-element array should be unchanged, got %q", s)
		}
	}
}

func TestMultikey2_RepeatedLongString(t *testing.T) {
	s := strings.Repeat("A", 100)
	arr := make([]string, 10000)
	for i := range arr {
		arr[i] = s
	}
	if err := Multikey2(arr); err != nil {
		t.Fatal(err)
	}
	for _, v := range arr {
		if v != s {
			t.Fatalf("expected %d copies of seed string, found a mismatch", len(arr))
		}
	}
}

func TestMultikey2_CyclicPrefixes(t *testing.T) {
	seed := strings.Repeat("A", 100)
	prefixes := make([]string, 100)
	for i := range prefixes {
		prefixes[i] = seed[:i+1]
	}
	arr := make([]string, 10000)
	for i := range arr {
		arr[i] = prefixes[i%len(prefixes)]
	}
	before := cloneStrings(arr)
	if err := Multikey2(arr); err != nil {
		t.Fatal(err)
	}
	if !isSorted(arr) {
		t.Fatal("cyclic-prefix workload not sorted")
	}
	multisetEqual(t, before, arr)
}

func TestMultikey2_PrefixOrdering(t *testing.T) {
	arr := []string{"prefixed", "prefix", "pre", "p"}
	if err := Multikey2(arr); err != nil {
		t.Fatal(err)
	}
	want := []string{"p", "pre", "prefix", "prefixed"}
	for i := range want {
		if arr[i] != want[i] {
			t.Fatalf("got %v, want %v", arr, want)
		}
	}
}

func TestMultikey2_AgreesWithLibrarySort(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	arr := randomWords(r, 5000, 20)
	want := cloneStrings(arr)
	sort.Strings(want)

	if err := Multikey2(arr); err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if arr[i] != want[i] {
			t.Fatalf("mismatch at %d: got %q, want %q", i, arr[i], want[i])
		}
	}
}

func TestMultikey1_AgreesWithLibrarySort(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	arr := randomWords(r, 2000, 16)
	want := cloneStrings(arr)
	sort.Strings(want)

	if err := Multikey1(arr); err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if arr[i] != want[i] {
			t.Fatalf("mismatch at %d: got %q, want %q", i, arr[i], want[i])
		}
	}
}

func TestMultikey2_PreSortedIsIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	arr := randomWords(r, 3000, 16)
	sort.Strings(arr)
	before := cloneStrings(arr)
	if err := Multikey2(arr); err != nil {
		t.Fatal(err)
	}
	for i := range before {
		if arr[i] != before[i] {
			t.Fatalf("pre-sorted input reordered at %d", i)
		}
	}
}

func TestMultikey2_ReverseSorted(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	arr := randomWords(r, 3000, 16)
	sort.Strings(arr)
	for i, j := 0, len(arr)-1; i < j; i, j = i+1, j-1 {
		arr[i], arr[j] = arr[j], arr[i]
	}
	before := cloneStrings(arr)
	if err := Multikey2(arr); err != nil {
		t.Fatal(err)
	}
	if !isSorted(arr) {
		t.Fatal("reverse-sorted workload not sorted")
	}
	multisetEqual(t, before, arr)
}

func TestSort_IsAliasForMultikey2(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	arr := randomWords(r, 1000, 16)
	a, b := cloneStrings(arr), cloneStrings(arr)
	if err := Sort(a); err != nil {
		t.Fatal(err)
	}
	if err := Multikey2(b); err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Sort and Multikey2 disagree at %d", i)
		}
	}
}

func TestMkqsort_RangeAndDepthRestricted(t *testing.T) {
	// Every string here shares the prefix "pre"; sorting at depth 3 should
	// still produce a fully sorted result since charAt past depth still
	// drives the comparison.
	arr := []string{"prezebra", "preapple", "premango", "pre"}
	if err := Mkqsort(arr, 0, len(arr), 3); err != nil {
		t.Fatal(err)
	}
	want := []string{"pre", "preapple", "premango", "prezebra"}
	for i := range want {
		if arr[i] != want[i] {
			t.Fatalf("got %v, want %v", arr, want)
		}
	}
}

func TestMkqsort_SubrangeLeftUntouched(t *testing.T) {
	arr := []string{"z", "y", "c", "b", "a"}
	if err := Mkqsort(arr, 2, 5, 0); err != nil {
		t.Fatal(err)
	}
	if arr[0] != "z" || arr[1] != "y" {
		t.Fatalf("sort touched elements outside [lo,hi): %v", arr)
	}
	if !isSorted(arr[2:5]) {
		t.Fatalf("subrange not sorted: %v", arr[2:])
	}
}

func TestAllZerosPruning_ManyEmptyStrings(t *testing.T) {
	arr := make([]string, 5000)
	if err := Multikey2(arr); err != nil {
		t.Fatal(err)
	}
	for _, s := range arr {
		if s != "" {
			t.Fatal("expected every element to remain empty")
		}
	}
}

func TestAllZerosPruning_ExhaustedPartition(t *testing.T) {
	// Every string terminates by depth 2; the equal band at depth 2 is
	// all-zeros and must not recurse (and must already be correctly
	// ordered without that recursion).
	arr := []string{"ab", "ab", "ab", "ab", "ab", "a", "a", "", "ab", "a"}
	if err := Multikey2(arr); err != nil {
		t.Fatal(err)
	}
	if !isSorted(arr) {
		t.Fatalf("all-zeros partition produced unsorted output: %v", arr)
	}
}

func randomWords(r *rand.Rand, count, maxLen int) []string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	out := make([]string, count)
	for i := range out {
		n := r.Intn(maxLen) + 1
		b := make([]byte, n)
		for j := range b {
			b[j] = alphabet[r.Intn(len(alphabet))]
		}
		out[i] = string(b)
	}
	return out
}

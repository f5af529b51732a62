package sortlib

import "testing"

func TestInsertionSort_DepthAware(t *testing.T) {
	arr := []string{"bb", "aa", "ba", "ab"}
	InsertionSort(arr, 0, len(arr), 1)
	// From depth 1, "aa" and "ba" both read "a", and "bb" and "ab" both read
	// "b"; ties keep their input order.
	want := []string{"aa", "ba", "bb", "ab"}
	for i := range want {
		if arr[i] != want[i] {
			t.Fatalf("got %v, want %v (sorted from depth 1)", arr, want)
		}
	}
}

func TestInsertionSort_SubrangeOnly(t *testing.T) {
	arr := []string{"z", "c", "b", "a", "y"}
	InsertionSort(arr, 1, 4, 0)
	if arr[0] != "z" || arr[4] != "y" {
		t.Fatalf("elements outside [lo,hi) were touched: %v", arr)
	}
	if !isSorted(arr[1:4]) {
		t.Fatalf("subrange not sorted: %v", arr[1:4])
	}
}

func TestInsertionSort_EmptyRange(t *testing.T) {
	arr := []string{"a", "b"}
	InsertionSort(arr, 1, 1, 0)
	if arr[0] != "a" || arr[1] != "b" {
		t.Fatalf("empty range mutated array: %v", arr)
	}
}

package burstsort

import (
	"github.com/nfiedler/mkqsortbench/sortlib"
)

// Sort sorts strings in place, with the same in-place, content-preserving
// contract as every other sorter in this repository. It builds a burst
// trie over the input, then writes the strings back in sorted order from a
// depth-first trie traversal.
//
// A nil slice is treated as a no-op, like an empty one. This differs from
// the sortlib entry points, which return ErrNilStrings for a nil slice;
// Sort has no error result.
func Sort(strings []string) {
	if len(strings) < 2 {
		return
	}
	alloc := newNodeAllocator()
	root := alloc.get()
	for _, s := range strings {
		insert(root, s, alloc)
	}
	out := strings[:0]
	flatten(root, &out)
}

// insert routes s into the trie rooted at n, bursting buckets that grow
// past burstThreshold.
func insert(n *node, s string, alloc *nodeAllocator) {
	for {
		if n.children == nil {
			if n.depth >= len(s) {
				n.terminal = append(n.terminal, s)
				return
			}
			n.bucket = append(n.bucket, s)
			if len(n.bucket) >= burstThreshold {
				burst(n, alloc)
			}
			return
		}
		if n.depth >= len(s) {
			n.terminal = append(n.terminal, s)
			return
		}
		c := charAtByte(s, n.depth)
		child := n.children[c]
		if child == nil {
			child = alloc.get()
			child.depth = n.depth + 1
			n.children[c] = child
		}
		n = child
	}
}

// burst redistributes n's bucket into 256 children keyed by the next
// character, one level deeper. A child that ends up oversized itself is
// not re-burst recursively here: it is sorted directly at flatten time by
// sortlib.Mkqsort, which already handles duplicate-heavy partitions
// efficiently via the all-zeros pruning multikey quicksort relies on, so a
// second burst pass would buy little for the added bookkeeping.
func burst(n *node, alloc *nodeAllocator) {
	var children [256]*node
	for _, s := range n.bucket {
		c := charAtByte(s, n.depth)
		child := children[c]
		if child == nil {
			child = alloc.get()
			child.depth = n.depth + 1
			children[c] = child
		}
		if child.depth >= len(s) {
			child.terminal = append(child.terminal, s)
		} else {
			child.bucket = append(child.bucket, s)
		}
	}
	n.children = &children
	n.bucket = nil
}

// flatten appends n's subtree, in sorted order, onto out. Terminal strings
// (every element identical: each one consumed exactly at this depth, and
// having matched every byte down to this node to get here) are emitted
// first, since a prefix sorts before any string it is a prefix of; then
// children are visited in byte order, each sorted the same way.
func flatten(n *node, out *[]string) {
	*out = append(*out, n.terminal...)
	if n.children != nil {
		for _, child := range n.children {
			if child != nil {
				flatten(child, out)
			}
		}
		return
	}
	if len(n.bucket) == 0 {
		return
	}
	sortlib.Mkqsort(n.bucket, 0, len(n.bucket), n.depth)
	*out = append(*out, n.bucket...)
}

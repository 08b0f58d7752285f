// Package itemmap provides ready-made position indexes for the binheap
// package: item-to-slot cross-reference maps satisfying binheap.Index,
// each initializing the entries it covers to binheap.PreHeap so the
// heap's caller contract holds by construction.
//
// Three implementations cover the usual item-universe shapes:
//   - Slice: a dense array for small non-negative integer handles, the
//     natural fit for graph algorithms whose nodes are numbered 0..n-1.
//   - Map: a hash map for sparse or non-integer handles.
//   - BTree: an ordered map for sparse handles when the caller also
//     wants ordered traversal of every item the heap has touched, for
//     example to reset only touched entries between runs.
//
// Basic usage:
//
//	ix := itemmap.NewSlice[int](n)
//	h := binheap.New[int, int](ix)
//	// ... run the computation ...
//	h.Clear()
//	ix.Reset() // ready for the next run
package itemmap

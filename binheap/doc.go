// Package binheap implements an indexed binary min-heap: a priority queue
// over items identified by opaque handles that supports, besides the usual
// insert and extract-min, O(log n) priority mutation and removal of any
// item, not just the minimum.
//
// The heap keeps an external cross-reference from each item to its current
// array slot, so an item's position is always known without searching. That
// cross-reference (the position index) is supplied by the caller and only
// borrowed by the heap, which makes the structure usable inside
// shortest-path and spanning-tree computations where the algorithm already
// owns a dense item universe. See the itemmap package for ready-made index
// implementations.
//
// Key features:
//   - Generic over the item handle and the priority type
//   - O(log n) push, pop, erase, decrease, increase and set
//   - O(1) minimum access and per-item priority lookup
//   - Pluggable ordering, fixed at construction (min-heap by default)
//   - Three-state item lifecycle: pre-heap, in-heap, post-heap
//
// Basic usage:
//
//	ix := itemmap.NewSlice[int](16)
//	h := binheap.New[int, float64](ix)
//
//	h.Push(3, 2.5)
//	h.Push(7, 0.5)
//	h.Push(1, 1.5)
//
//	h.Decrease(3, 0.1)      // tighten a queued priority
//	item := h.Top()         // item == 3
//	h.Pop()
//
// Operations state their preconditions and do not check them; calling an
// operation out of contract is a programming error, not a recoverable
// failure. The checked subpackage wraps the heap with explicit error
// returns for callers that want the violations surfaced.
//
// The heap is not safe for concurrent use. A single goroutine must own
// both the heap and its position index for the lifetime of a computation.
package binheap

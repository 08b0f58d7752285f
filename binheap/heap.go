package binheap

import "cmp"

// entry is one stored (item, priority) pair.
type entry[I comparable, P any] struct {
	item I
	prio P
}

// Heap is an indexed binary heap of (item, priority) pairs, ordered so
// that the pair whose priority precedes all others under the comparison
// relation sits at the root. The zero value is not usable; construct
// with New or NewFunc.
//
// Two invariants hold after every exported operation: heap order (no
// entry precedes its parent) and index coherence (the position index
// maps every in-heap item to its true slot).
type Heap[I comparable, P any] struct {
	data  []entry[I, P]
	index Index[I]
	less  func(a, b P) bool // true if a precedes b
}

// New returns a heap over the given position index ordered by the
// natural "less than" of the priority type, i.e. a min-heap.
//
// Every item the caller intends to use must read PreHeap in the index
// before its first Push.
func New[I comparable, P cmp.Ordered](index Index[I]) *Heap[I, P] {
	return NewFunc[I](index, cmp.Less[P])
}

// NewFunc returns a heap over the given position index ordered by the
// supplied comparison relation. The relation is fixed for the lifetime
// of the heap; less(a, b) must report whether a precedes b.
func NewFunc[I comparable, P any](index Index[I], less func(a, b P) bool) *Heap[I, P] {
	return &Heap[I, P]{index: index, less: less}
}

// Len returns the number of items in the heap.
func (h *Heap[I, P]) Len() int {
	return len(h.data)
}

// Empty reports whether the heap stores no items.
func (h *Heap[I, P]) Empty() bool {
	return len(h.data) == 0
}

// Clear drops every entry without touching the position index. Items
// that were in the heap keep their stale slot values; callers reusing
// the index must reset their entries to PreHeap first. The asymmetry is
// deliberate: when the whole index is about to be discarded or reset
// wholesale anyway, walking it here would be wasted work.
func (h *Heap[I, P]) Clear() {
	h.data = h.data[:0]
}

func parent(i int) int      { return (i - 1) / 2 }
func secondChild(i int) int { return 2*i + 2 }

// move writes e into the given slot and records the slot in the index.
func (h *Heap[I, P]) move(e entry[I, P], slot int) {
	h.data[slot] = e
	h.index.Set(e.item, slot)
}

// bubbleUp sifts e toward the root starting from hole, shifting parents
// down into the hole until e no longer precedes its parent. It returns
// the slot e came to rest in.
func (h *Heap[I, P]) bubbleUp(hole int, e entry[I, P]) int {
	for par := parent(hole); hole > 0 && h.less(e.prio, h.data[par].prio); par = parent(hole) {
		h.move(h.data[par], hole)
		hole = par
	}
	h.move(e, hole)
	return hole
}

// bubbleDown sifts e toward the leaves starting from hole, considering
// only slots below length, and returns the slot e came to rest in. At
// each level the preceding child of the pair is pulled up into the
// hole; a final lone left child is handled after the loop.
func (h *Heap[I, P]) bubbleDown(hole int, e entry[I, P], length int) int {
	child := secondChild(hole)
	for child < length {
		if h.less(h.data[child-1].prio, h.data[child].prio) {
			child--
		}
		if !h.less(h.data[child].prio, e.prio) {
			h.move(e, hole)
			return hole
		}
		h.move(h.data[child], hole)
		hole = child
		child = secondChild(hole)
	}
	child--
	if child < length && h.less(h.data[child].prio, e.prio) {
		h.move(h.data[child], hole)
		hole = child
	}
	h.move(e, hole)
	return hole
}

// Push inserts item with the given priority.
//
// Precondition: the item's index entry reads PreHeap (the item must not
// already be in the heap).
func (h *Heap[I, P]) Push(item I, prio P) {
	n := len(h.data)
	h.data = append(h.data, entry[I, P]{})
	h.bubbleUp(n, entry[I, P]{item: item, prio: prio})
}

// Top returns the item whose priority precedes all others.
//
// Precondition: the heap is non-empty.
func (h *Heap[I, P]) Top() I {
	return h.data[0].item
}

// MinPrio returns the priority of the top item.
//
// Precondition: the heap is non-empty.
func (h *Heap[I, P]) MinPrio() P {
	return h.data[0].prio
}

// Pop removes the top item and marks it PostHeap.
//
// Precondition: the heap is non-empty.
func (h *Heap[I, P]) Pop() {
	n := len(h.data) - 1
	h.index.Set(h.data[0].item, int(PostHeap))
	if n > 0 {
		h.bubbleDown(0, h.data[n], n)
	}
	h.data = h.data[:n]
}

// Erase removes item from the heap and marks it PostHeap. The entry
// vacating the last slot fills the freed slot; it is first sifted up,
// and only if it did not move is it sifted down. Sifting down alone is
// not enough: the relocated entry can precede its new parent.
//
// Precondition: item is in the heap.
func (h *Heap[I, P]) Erase(item I) {
	slot := h.index.Get(item)
	n := len(h.data) - 1
	h.index.Set(h.data[slot].item, int(PostHeap))
	if slot < n {
		if h.bubbleUp(slot, h.data[n]) == slot {
			h.bubbleDown(slot, h.data[n], n)
		}
	}
	h.data = h.data[:n]
}

// Prio returns the priority of item.
//
// Precondition: item is in the heap.
func (h *Heap[I, P]) Prio(item I) P {
	return h.data[h.index.Get(item)].prio
}

// Set gives item the given priority regardless of whether it is already
// in the heap: absent items are pushed, present items are repositioned
// in whichever direction the new priority requires. The membership and
// direction tests cost one index read and one comparison over calling
// Push, Decrease or Increase directly.
func (h *Heap[I, P]) Set(item I, prio P) {
	slot := h.index.Get(item)
	switch {
	case slot < 0:
		h.Push(item, prio)
	case h.less(prio, h.data[slot].prio):
		h.bubbleUp(slot, entry[I, P]{item: item, prio: prio})
	default:
		h.bubbleDown(slot, entry[I, P]{item: item, prio: prio}, len(h.data))
	}
}

// Decrease lowers item's priority to prio and sifts it up. No direction
// check is made; callers that know the change tightens the priority
// skip the comparison Set performs.
//
// Precondition: item is in the heap and prio does not follow the
// current priority under the comparison relation.
func (h *Heap[I, P]) Decrease(item I, prio P) {
	h.bubbleUp(h.index.Get(item), entry[I, P]{item: item, prio: prio})
}

// Increase raises item's priority to prio and sifts it down.
//
// Precondition: item is in the heap and prio does not precede the
// current priority under the comparison relation.
func (h *Heap[I, P]) Increase(item I, prio P) {
	h.bubbleDown(h.index.Get(item), entry[I, P]{item: item, prio: prio}, len(h.data))
}

// State returns whether item is in the heap, has never been in it, or
// has been removed from it. The exact slot of an in-heap item is not
// exposed.
func (h *Heap[I, P]) State(item I) State {
	s := h.index.Get(item)
	if s >= 0 {
		s = int(InHeap)
	}
	return State(s)
}

// SetState forces item's index entry to PreHeap or PostHeap. An in-heap
// item is erased first so the heap invariants keep holding. Requesting
// InHeap is a no-op: membership requires a priority and must go through
// Push or Set.
func (h *Heap[I, P]) SetState(item I, st State) {
	switch st {
	case PreHeap, PostHeap:
		if h.State(item) == InHeap {
			h.Erase(item)
		}
		h.index.Set(item, int(st))
	case InHeap:
	}
}

// Replace hands oldItem's slot and priority over to newItem. The two
// items swap index entries, so oldItem ends up with whatever state
// newItem had (typically PreHeap or PostHeap) and newItem is in the
// heap at oldItem's priority. Heap order is untouched.
//
// Precondition: oldItem is in the heap and newItem is not.
func (h *Heap[I, P]) Replace(oldItem, newItem I) {
	slot := h.index.Get(oldItem)
	h.index.Set(oldItem, h.index.Get(newItem))
	h.index.Set(newItem, slot)
	h.data[slot].item = newItem
}

// Package checked wraps a binheap.Heap with explicit precondition
// checks. The core heap treats out-of-contract calls as programming
// errors and does not look for them; this layer spends the extra index
// read or comparison to surface each violation as an error value
// instead, for callers that cannot statically guarantee membership or
// mutation direction.
package checked

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/OpenSourceEDA/lemon/binheap"
)

var (
	// ErrEmpty is returned when an operation needs a non-empty heap.
	ErrEmpty = errors.New("heap is empty")
	// ErrInHeap is returned when an operation needs its item to be
	// outside the heap.
	ErrInHeap = errors.New("item is already in the heap")
	// ErrNotInHeap is returned when an operation needs its item to be
	// in the heap.
	ErrNotInHeap = errors.New("item is not in the heap")
	// ErrDirection is returned when Decrease or Increase is asked to
	// move a priority the wrong way.
	ErrDirection = errors.New("new priority moves in the wrong direction")
)

// Heap is a binheap.Heap whose mutators and accessors verify their
// preconditions and report violations as errors. The underlying heap is
// private; mixing checked and unchecked calls on the same storage would
// defeat the point.
type Heap[I comparable, P any] struct {
	h    *binheap.Heap[I, P]
	less func(a, b P) bool
}

// New returns a checked min-heap over the given position index, ordered
// by the natural "less than" of the priority type.
func New[I comparable, P cmp.Ordered](index binheap.Index[I]) *Heap[I, P] {
	return NewFunc[I](index, cmp.Less[P])
}

// NewFunc returns a checked heap ordered by the supplied comparison
// relation.
func NewFunc[I comparable, P any](index binheap.Index[I], less func(a, b P) bool) *Heap[I, P] {
	return &Heap[I, P]{h: binheap.NewFunc[I](index, less), less: less}
}

// Len returns the number of items in the heap.
func (c *Heap[I, P]) Len() int { return c.h.Len() }

// Empty reports whether the heap stores no items.
func (c *Heap[I, P]) Empty() bool { return c.h.Empty() }

// Clear drops every entry without touching the position index, exactly
// like binheap.Heap.Clear.
func (c *Heap[I, P]) Clear() { c.h.Clear() }

// Push inserts item with the given priority. It returns ErrInHeap if
// item is already in the heap; pushing an item in the post-heap state
// is allowed, as with Set.
func (c *Heap[I, P]) Push(item I, prio P) error {
	if c.h.State(item) == binheap.InHeap {
		return fmt.Errorf("push %v: %w", item, ErrInHeap)
	}
	c.h.Push(item, prio)
	return nil
}

// Top returns the item whose priority precedes all others, or ErrEmpty.
func (c *Heap[I, P]) Top() (I, error) {
	if c.h.Empty() {
		var zero I
		return zero, ErrEmpty
	}
	return c.h.Top(), nil
}

// MinPrio returns the priority of the top item, or ErrEmpty.
func (c *Heap[I, P]) MinPrio() (P, error) {
	if c.h.Empty() {
		var zero P
		return zero, ErrEmpty
	}
	return c.h.MinPrio(), nil
}

// Pop removes the top item and returns it together with its priority,
// or ErrEmpty.
func (c *Heap[I, P]) Pop() (item I, prio P, err error) {
	if c.h.Empty() {
		return item, prio, ErrEmpty
	}
	item, prio = c.h.Top(), c.h.MinPrio()
	c.h.Pop()
	return item, prio, nil
}

// Erase removes item from the heap, or returns ErrNotInHeap.
func (c *Heap[I, P]) Erase(item I) error {
	if c.h.State(item) != binheap.InHeap {
		return fmt.Errorf("erase %v: %w", item, ErrNotInHeap)
	}
	c.h.Erase(item)
	return nil
}

// Prio returns the priority of item, or ErrNotInHeap.
func (c *Heap[I, P]) Prio(item I) (P, error) {
	if c.h.State(item) != binheap.InHeap {
		var zero P
		return zero, fmt.Errorf("prio %v: %w", item, ErrNotInHeap)
	}
	return c.h.Prio(item), nil
}

// Set gives item the given priority regardless of its current state.
// Set has no precondition and never fails.
func (c *Heap[I, P]) Set(item I, prio P) {
	c.h.Set(item, prio)
}

// Decrease lowers item's priority to prio. It returns ErrNotInHeap if
// item is absent and ErrDirection if the current priority precedes
// prio; setting an equal priority is allowed.
func (c *Heap[I, P]) Decrease(item I, prio P) error {
	if c.h.State(item) != binheap.InHeap {
		return fmt.Errorf("decrease %v: %w", item, ErrNotInHeap)
	}
	if c.less(c.h.Prio(item), prio) {
		return fmt.Errorf("decrease %v: %w", item, ErrDirection)
	}
	c.h.Decrease(item, prio)
	return nil
}

// Increase raises item's priority to prio. It returns ErrNotInHeap if
// item is absent and ErrDirection if prio precedes the current
// priority.
func (c *Heap[I, P]) Increase(item I, prio P) error {
	if c.h.State(item) != binheap.InHeap {
		return fmt.Errorf("increase %v: %w", item, ErrNotInHeap)
	}
	if c.less(prio, c.h.Prio(item)) {
		return fmt.Errorf("increase %v: %w", item, ErrDirection)
	}
	c.h.Increase(item, prio)
	return nil
}

// State returns item's current state.
func (c *Heap[I, P]) State(item I) binheap.State {
	return c.h.State(item)
}

// SetState forces item to PreHeap or PostHeap, erasing it first if it
// is in the heap. Requesting InHeap is a no-op.
func (c *Heap[I, P]) SetState(item I, st binheap.State) {
	c.h.SetState(item, st)
}

// Replace hands oldItem's slot and priority over to newItem. It returns
// ErrNotInHeap if oldItem is absent and ErrInHeap if newItem is already
// in the heap.
func (c *Heap[I, P]) Replace(oldItem, newItem I) error {
	if c.h.State(oldItem) != binheap.InHeap {
		return fmt.Errorf("replace %v: %w", oldItem, ErrNotInHeap)
	}
	if c.h.State(newItem) == binheap.InHeap {
		return fmt.Errorf("replace %v: %w", newItem, ErrInHeap)
	}
	c.h.Replace(oldItem, newItem)
	return nil
}

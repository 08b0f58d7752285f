package itemmap

import "github.com/OpenSourceEDA/lemon/binheap"

// Map is a hash-map position index for sparse or non-integer handles.
// Items never written read binheap.PreHeap, so no up-front
// initialization is needed.
type Map[I comparable] struct {
	slots map[I]int
}

// NewMap returns an empty Map.
func NewMap[I comparable]() *Map[I] {
	return &Map[I]{slots: make(map[I]int)}
}

// Get returns the stored slot value for item, or binheap.PreHeap if
// item was never written.
func (m *Map[I]) Get(item I) int {
	if s, ok := m.slots[item]; ok {
		return s
	}
	return int(binheap.PreHeap)
}

// Set overwrites the stored slot value for item.
func (m *Map[I]) Set(item I, slot int) {
	m.slots[item] = slot
}

// Len returns the number of items ever written.
func (m *Map[I]) Len() int {
	return len(m.slots)
}

// Reset drops every tracked item, returning them all to
// binheap.PreHeap.
func (m *Map[I]) Reset() {
	clear(m.slots)
}

package itemmap

import "github.com/OpenSourceEDA/lemon/binheap"

// Handle constrains the item types a Slice can key: integer handles
// used directly as offsets into the backing array.
type Handle interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Slice is a dense position index over the handle universe [0, n).
// Reads and writes are direct array accesses; handles outside the
// universe are out of contract and panic.
type Slice[I Handle] struct {
	slots []int
}

// NewSlice returns a Slice covering handles [0, n), every entry reading
// binheap.PreHeap.
func NewSlice[I Handle](n int) *Slice[I] {
	s := &Slice[I]{slots: make([]int, n)}
	s.Reset()
	return s
}

// Get returns the stored slot value for item.
func (s *Slice[I]) Get(item I) int {
	return s.slots[item]
}

// Set overwrites the stored slot value for item.
func (s *Slice[I]) Set(item I, slot int) {
	s.slots[item] = slot
}

// Len returns the size of the handle universe.
func (s *Slice[I]) Len() int {
	return len(s.slots)
}

// Grow extends the universe to [0, n), new entries reading
// binheap.PreHeap. Growing to a smaller n is a no-op.
func (s *Slice[I]) Grow(n int) {
	for len(s.slots) < n {
		s.slots = append(s.slots, int(binheap.PreHeap))
	}
}

// Reset sets every entry back to binheap.PreHeap. Call it together
// with the heap's Clear when reusing the index for another run.
func (s *Slice[I]) Reset() {
	for i := range s.slots {
		s.slots[i] = int(binheap.PreHeap)
	}
}

package binheap

// State describes an item's relationship to a heap. Every item is in
// exactly one of three states: it has never been pushed (PreHeap), it
// currently occupies a slot (InHeap), or it was pushed and has since
// been removed (PostHeap).
type State int

const (
	// InHeap reports that the item currently occupies a heap slot.
	InHeap State = 0
	// PreHeap reports that the item has never been in the heap, or was
	// manually reset. The position index must read PreHeap for an item
	// before its first Push.
	PreHeap State = -1
	// PostHeap reports that the item was in the heap and has been
	// removed. It may be pushed again later.
	PostHeap State = -2
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case InHeap:
		return "in-heap"
	case PreHeap:
		return "pre-heap"
	case PostHeap:
		return "post-heap"
	default:
		return "unknown"
	}
}

// Index is the item-to-slot cross-reference a Heap maintains its
// positions in. A value >= 0 is the array slot the item currently
// occupies; int(PreHeap) and int(PostHeap) mark items outside the heap.
//
// The caller owns the index and must hand it to the heap at
// construction. Before an item is first pushed, its entry must read
// int(PreHeap); the heap never initializes entries itself, and an
// uninitialized entry reading 0 would be taken as "in heap at slot 0".
// The index must outlive the heap and must not be shared with another
// heap at the same time.
type Index[I comparable] interface {
	// Get returns the stored slot value for item.
	Get(item I) int
	// Set overwrites the stored slot value for item.
	Set(item I, slot int)
}

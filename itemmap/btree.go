package itemmap

import (
	"cmp"

	"github.com/google/btree"

	"github.com/OpenSourceEDA/lemon/binheap"
)

type btreeEntry[I cmp.Ordered] struct {
	item I
	slot int
}

// BTree is an ordered position index for sparse handles. It behaves
// like Map but additionally supports ordered traversal of every item
// ever written, which lets a caller reset only the entries a run
// actually touched instead of a whole dense universe.
type BTree[I cmp.Ordered] struct {
	tr *btree.BTreeG[btreeEntry[I]]
}

// NewBTree returns an empty BTree.
func NewBTree[I cmp.Ordered]() *BTree[I] {
	return &BTree[I]{
		tr: btree.NewG(2, func(a, b btreeEntry[I]) bool {
			return a.item < b.item
		}),
	}
}

// Get returns the stored slot value for item, or binheap.PreHeap if
// item was never written.
func (m *BTree[I]) Get(item I) int {
	e, ok := m.tr.Get(btreeEntry[I]{item: item})
	if !ok {
		return int(binheap.PreHeap)
	}
	return e.slot
}

// Set overwrites the stored slot value for item.
func (m *BTree[I]) Set(item I, slot int) {
	m.tr.ReplaceOrInsert(btreeEntry[I]{item: item, slot: slot})
}

// Len returns the number of items ever written.
func (m *BTree[I]) Len() int {
	return m.tr.Len()
}

// Ascend visits every tracked item in increasing order until fn
// returns false.
func (m *BTree[I]) Ascend(fn func(item I, slot int) bool) {
	m.tr.Ascend(func(e btreeEntry[I]) bool {
		return fn(e.item, e.slot)
	})
}

// Reset sets every tracked entry back to binheap.PreHeap. The entries
// stay tracked; use Clear to drop them entirely.
func (m *BTree[I]) Reset() {
	items := make([]I, 0, m.tr.Len())
	m.tr.Ascend(func(e btreeEntry[I]) bool {
		items = append(items, e.item)
		return true
	})
	for _, item := range items {
		m.Set(item, int(binheap.PreHeap))
	}
}

// Clear drops every tracked item.
func (m *BTree[I]) Clear() {
	m.tr.Clear(false)
}

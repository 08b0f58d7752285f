package binheap

import (
	"math/rand"
	"sort"
	"testing"
)

// mapIndex is a minimal in-package Index so the white-box tests do not
// depend on the itemmap package.
type mapIndex map[int]int

func (m mapIndex) Get(item int) int {
	if s, ok := m[item]; ok {
		return s
	}
	return int(PreHeap)
}

func (m mapIndex) Set(item int, slot int) {
	m[item] = slot
}

// checkInvariants verifies heap order and index coherence over the
// backing storage.
func checkInvariants(t *testing.T, h *Heap[int, int], ix Index[int]) {
	t.Helper()
	for i := range h.data {
		if i > 0 {
			par := parent(i)
			if h.less(h.data[i].prio, h.data[par].prio) {
				t.Fatalf("order violated: slot %d (prio %d) precedes parent slot %d (prio %d)",
					i, h.data[i].prio, par, h.data[par].prio)
			}
		}
		if got := ix.Get(h.data[i].item); got != i {
			t.Fatalf("index incoherent: item %d at slot %d indexed as %d",
				h.data[i].item, i, got)
		}
	}
}

// TestHeapRandomOperations drives a heap through a long random mix of
// operations, checking both invariants after every mutation against a
// plain map model, and finally drains it expecting the model's
// priorities in sorted order.
func TestHeapRandomOperations(t *testing.T) {
	const (
		universe = 128
		steps    = 5000
	)
	rng := rand.New(rand.NewSource(42))

	ix := make(mapIndex)
	h := New[int, int](ix)
	model := make(map[int]int)

	members := func() []int {
		out := make([]int, 0, len(model))
		for item := range model {
			out = append(out, item)
		}
		sort.Ints(out)
		return out
	}

	for step := 0; step < steps; step++ {
		in := members()
		switch op := rng.Intn(6); {
		case op == 0 || len(in) == 0: // push a fresh item
			item := rng.Intn(universe)
			if _, ok := model[item]; ok {
				break
			}
			prio := rng.Intn(10000)
			h.Push(item, prio)
			model[item] = prio
		case op == 1: // pop the minimum
			top, prio := h.Top(), h.MinPrio()
			if want, ok := model[top]; !ok || want != prio {
				t.Fatalf("step %d: top (%d, %d) not in model", step, top, prio)
			}
			h.Pop()
			delete(model, top)
		case op == 2: // erase an arbitrary member
			item := in[rng.Intn(len(in))]
			h.Erase(item)
			delete(model, item)
		case op == 3: // set, member or not
			item := rng.Intn(universe)
			prio := rng.Intn(10000)
			h.Set(item, prio)
			model[item] = prio
		case op == 4: // directional update on a member
			item := in[rng.Intn(len(in))]
			prio := rng.Intn(10000)
			if prio <= model[item] {
				h.Decrease(item, prio)
			} else {
				h.Increase(item, prio)
			}
			model[item] = prio
		case op == 5: // rename a member to a fresh handle
			oldItem := in[rng.Intn(len(in))]
			newItem := rng.Intn(universe)
			if _, ok := model[newItem]; ok {
				break
			}
			h.Replace(oldItem, newItem)
			model[newItem] = model[oldItem]
			delete(model, oldItem)
		}
		checkInvariants(t, h, ix)

		if got, want := h.Len(), len(model); got != want {
			t.Fatalf("step %d: Len() = %d, model has %d", step, got, want)
		}
		for item, prio := range model {
			if h.State(item) != InHeap {
				t.Fatalf("step %d: item %d not in heap", step, item)
			}
			if got := h.Prio(item); got != prio {
				t.Fatalf("step %d: Prio(%d) = %d, want %d", step, item, got, prio)
			}
		}
	}

	want := make([]int, 0, len(model))
	for _, prio := range model {
		want = append(want, prio)
	}
	sort.Ints(want)

	for _, w := range want {
		if got := h.MinPrio(); got != w {
			t.Fatalf("drain: MinPrio() = %d, want %d", got, w)
		}
		h.Pop()
		checkInvariants(t, h, ix)
	}
	if !h.Empty() {
		t.Fatalf("heap not empty after drain, Len() = %d", h.Len())
	}
}

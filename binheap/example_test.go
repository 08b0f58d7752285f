package binheap_test

import (
	"fmt"

	"github.com/OpenSourceEDA/lemon/binheap"
	"github.com/OpenSourceEDA/lemon/itemmap"
)

// ExampleNew demonstrates basic min-heap usage with a dense index.
func ExampleNew() {
	// Items are handles 0..3; the index must cover the universe.
	ix := itemmap.NewSlice[int](4)
	h := binheap.New[int, int](ix)

	h.Push(0, 5)
	h.Push(1, 3)
	h.Push(2, 7)

	// Tighten a queued priority.
	h.Decrease(2, 1)

	for !h.Empty() {
		fmt.Printf("item %d, prio %d\n", h.Top(), h.MinPrio())
		h.Pop()
	}

	// Output:
	// item 2, prio 1
	// item 1, prio 3
	// item 0, prio 5
}

// ExampleNewFunc demonstrates a max-heap via a custom ordering.
func ExampleNewFunc() {
	ix := itemmap.NewMap[string]()
	h := binheap.NewFunc[string](ix, func(a, b int) bool {
		return a > b
	})

	h.Set("A", 10)
	h.Set("B", 20)
	h.Set("C", 15)
	h.Set("A", 25) // update an existing item

	for !h.Empty() {
		fmt.Printf("%s: %d\n", h.Top(), h.MinPrio())
		h.Pop()
	}

	// Output:
	// A: 25
	// B: 20
	// C: 15
}

// ExampleHeap_Decrease runs a shortest-path relaxation loop, the
// workload the indexed heap is built for: each node's tentative
// distance is tightened in place while the node is queued.
func ExampleHeap_Decrease() {
	// adjacency: node -> (neighbor, edge weight)
	adj := [][][2]int{
		0: {{1, 7}, {2, 2}},
		1: {{3, 1}},
		2: {{1, 3}, {3, 8}},
		3: {},
	}

	ix := itemmap.NewSlice[int](len(adj))
	h := binheap.New[int, int](ix)
	dist := make([]int, len(adj))

	h.Push(0, 0)
	for !h.Empty() {
		u, d := h.Top(), h.MinPrio()
		h.Pop()
		dist[u] = d

		for _, e := range adj[u] {
			v, w := e[0], e[1]
			switch h.State(v) {
			case binheap.PreHeap:
				h.Push(v, d+w)
			case binheap.InHeap:
				if d+w < h.Prio(v) {
					h.Decrease(v, d+w)
				}
			}
		}
	}

	fmt.Println(dist)

	// Output:
	// [0 5 2 6]
}

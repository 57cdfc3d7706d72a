package iftstate

import "container/heap"

// Heap is an indexed binary heap over integer element ids, ordered by an
// externally owned, caller-mutated cost array. Unlike the teacher's
// dijkstra.nodePQ (container/heap with lazy duplicate pushes, grounded in
// dijkstra/dijkstra.go), Heap tracks each element's slot so it supports
// true O(log n) Update and Remove — the "update"/"remove-element"/
// "contains" operations spec.md §4.2 requires and DIFT's subtree
// invalidation (spec.md §4.6) depends on.
//
// Ties are broken by container/heap's sift order under a strict comparison
// (<, or > in MaxFirst mode): the same sequence of operations always yields
// the same order, but equal-cost elements are not guaranteed to leave in
// first-arrival order.
type Heap struct {
	cost     []float64
	items    []int
	pos      []int // pos[id] = slot in items, or -1 if absent
	maxFirst bool
}

// NewHeap builds a Heap over n possible element ids (ids are 0..n-1) whose
// priority is read from cost, which must have length n and is never
// mutated by Heap itself. maxFirst=true pops the largest cost first
// (used by the relevance package's seed ranking); maxFirst=false pops the
// smallest first (used by the IFT priority queue).
func NewHeap(cost []float64, maxFirst bool) *Heap {
	pos := make([]int, len(cost))
	for i := range pos {
		pos[i] = -1
	}
	return &Heap{cost: cost, pos: pos, maxFirst: maxFirst}
}

// Len implements heap.Interface.
func (h *Heap) Len() int { return len(h.items) }

// Less implements heap.Interface.
func (h *Heap) Less(i, j int) bool {
	a, b := h.cost[h.items[i]], h.cost[h.items[j]]
	if h.maxFirst {
		return a > b
	}
	return a < b
}

// Swap implements heap.Interface.
func (h *Heap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}

// Push implements heap.Interface; use Insert from outside this file.
func (h *Heap) Push(x any) {
	id := x.(int)
	h.items = append(h.items, id)
	h.pos[id] = len(h.items) - 1
}

// Pop implements heap.Interface; use Extract from outside this file.
func (h *Heap) Pop() any {
	old := h.items
	n := len(old)
	id := old[n-1]
	h.items = old[:n-1]
	h.pos[id] = -1
	return id
}

// Insert pushes id into the heap. Complexity: O(log n).
func (h *Heap) Insert(id int) {
	heap.Push(h, id)
}

// Extract pops and returns the element with minimum (or, in MaxFirst mode,
// maximum) cost. Complexity: O(log n).
func (h *Heap) Extract() int {
	return heap.Pop(h).(int)
}

// Contains reports whether id is currently queued. Complexity: O(1).
func (h *Heap) Contains(id int) bool {
	return h.pos[id] != -1
}

// Update re-establishes the heap invariant for id after its cost changed
// in place. No-op if id is not queued. Complexity: O(log n).
func (h *Heap) Update(id int) {
	if p := h.pos[id]; p != -1 {
		heap.Fix(h, p)
	}
}

// Remove removes id from the heap regardless of its current cost. No-op
// if id is not queued. Complexity: O(log n).
func (h *Heap) Remove(id int) {
	if p := h.pos[id]; p != -1 {
		heap.Remove(h, p)
	}
}

// Reset empties the heap, clearing all membership state. Complexity: O(n)
// in the number of ids tracked (to clear pos), O(1) amortized thereafter.
func (h *Heap) Reset() {
	for _, id := range h.items {
		h.pos[id] = -1
	}
	h.items = h.items[:0]
}

package ift

import (
	"github.com/gosicle/sicle/connfunc"
	"github.com/gosicle/sicle/iftstate"
	"github.com/kelindar/bitmap"
)

// Context bundles the per-spel data and connectivity function a kernel
// needs. Features and Saliency are indexed by the same spel ordering as
// the forest State (Saliency nil means no saliency-aware term).
type Context struct {
	Features [][]float64
	Saliency []float64
	Conn     connfunc.Func
	Params   connfunc.Params
}

func (c Context) hasSal() bool { return c.Saliency != nil }

// Run grows a fresh forest over s from seeds, resetting s first.
//
// Grounded on original_source/src/iftSICLE.c's iftSICLE_RunSeedIFT.
func Run(s *iftstate.State, seeds []int, ctx Context) {
	s.Reset(seeds)
	h := iftstate.NewHeap(s.Cost, false)
	for _, sd := range seeds {
		h.Insert(sd)
	}
	done := make([]bool, s.Domain.N)
	growFrom(s, h, done, ctx)
}

// RunDifferential tears down the trees rooted at irreSeeds, relabels the
// surviving newSeeds, and recompetes the invalidated frontier in place,
// reusing every untouched part of s's current forest.
//
// Grounded on original_source/src/iftSICLE.c's iftSICLE_RunSeedDIFT.
func RunDifferential(s *iftstate.State, newSeeds, irreSeeds []int, ctx Context) {
	frontier := removeTrees(s, irreSeeds)
	s.RelabelSeeds(newSeeds)

	h := iftstate.NewHeap(s.Cost, false)
	for _, v := range frontier {
		h.Insert(v)
	}

	done := make([]bool, s.Domain.N)
	growFromDifferential(s, h, done, ctx)
}

// growFrom is the common pop-relax loop shared by a from-scratch IFT: pop
// the cheapest frontier vertex, mark it permanently settled, and relax
// every non-settled neighbour.
func growFrom(s *iftstate.State, h *iftstate.Heap, done []bool, ctx Context) {
	d := s.Domain
	for h.Len() > 0 {
		vi := h.Extract()
		done[vi] = true
		viRoot := s.Root[vi]
		d.EachNeighbor(vi, func(vj int) {
			if done[vj] {
				return
			}
			pathcost := evaluate(s, ctx, vi, vj, viRoot)
			if pathcost < s.Cost[vj] {
				conquer(s, h, vi, vj, viRoot, pathcost)
			}
		})
	}
}

// growFromDifferential is growFrom plus the inconsistency check: a
// neighbour whose existing predecessor is vi, but whose inherited cost or
// root no longer agrees with vi's current state, has its subtree torn
// down and re-opened for competition.
func growFromDifferential(s *iftstate.State, h *iftstate.Heap, done []bool, ctx Context) {
	d := s.Domain
	for h.Len() > 0 {
		vi := h.Extract()
		done[vi] = true
		viRoot := s.Root[vi]
		d.EachNeighbor(vi, func(vj int) {
			if done[vj] {
				return
			}
			pathcost := evaluate(s, ctx, vi, vj, viRoot)
			switch {
			case pathcost < s.Cost[vj]:
				conquer(s, h, vi, vj, viRoot, pathcost)
			case vi == s.Pred[vj] && (pathcost > s.Cost[vj] || viRoot != s.Root[vj]):
				removeSubtree(s, h, done, vj)
			}
		})
	}
}

func conquer(s *iftstate.State, h *iftstate.Heap, vi, vj, viRoot int, pathcost float64) {
	if h.Contains(vj) {
		h.Remove(vj)
	}
	s.Root[vj] = viRoot
	s.Pred[vj] = vi
	s.Cost[vj] = pathcost
	h.Insert(vj)
}

func evaluate(s *iftstate.State, ctx Context, vi, vj, viRoot int) float64 {
	hasSal := ctx.hasSal()
	var rootSal, vjSal float64
	if hasSal {
		rootSal = ctx.Saliency[viRoot]
		vjSal = ctx.Saliency[vj]
	}
	c := connfunc.Candidate{
		ViCost:   s.Cost[vi],
		RootFeat: ctx.Features[viRoot],
		VjFeat:   ctx.Features[vj],
		RootSal:  rootSal,
		VjSal:    vjSal,
		HasSal:   hasSal,
		ViCoord:  s.Domain.Coordinate(vi),
		VjCoord:  s.Domain.Coordinate(vj),
	}
	return ctx.Conn(c, ctx.Params)
}

// removeTrees tears down every tree rooted at an irrelevant seed: the seed
// and its whole subtree are reset to the unreached (TMP) state, and every
// still-valid neighbouring vertex reachable from the torn-down region
// becomes frontier for recompetition.
//
// Grounded on original_source/src/iftSICLE.c's iftSICLE_RemoveTrees.
func removeTrees(s *iftstate.State, irreSeeds []int) []int {
	d := s.Domain
	var marked bitmap.Bitmap
	if d.N > 0 {
		marked.Grow(uint32(d.N - 1))
	}

	stack := make([]int, 0, len(irreSeeds))
	for _, sd := range irreSeeds {
		s.Pred[sd] = iftstate.Nil
		s.Root[sd] = iftstate.Nil
		s.Cost[sd] = iftstate.TMP
		stack = append(stack, sd)
	}

	var frontier []int
	for len(stack) > 0 {
		vi := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d.EachNeighbor(vi, func(vj int) {
			if s.Cost[vj] == iftstate.BG {
				return
			}
			if s.Pred[vj] == vi {
				s.Pred[vj] = iftstate.Nil
				s.Root[vj] = iftstate.Nil
				s.Cost[vj] = iftstate.TMP
				stack = append(stack, vj)
				return
			}
			vjRoot := s.Root[vj]
			if vjRoot != iftstate.Nil && s.Root[vjRoot] != iftstate.Nil && !marked.Contains(uint32(vj)) {
				marked.Set(uint32(vj))
				frontier = append(frontier, vj)
			}
		})
	}
	return frontier
}

// removeSubtree tears down the subtree rooted at start (a predecessor
// inconsistency found mid-DIFT) and returns its boundary to the heap for a
// fresh competition.
//
// Grounded on original_source/src/iftSICLE.c's iftSICLE_RemoveSubtree. The
// original's heap-color WHITE/GRAY/BLACK bookkeeping is reproduced with the
// done slice plus iftstate.Heap's own membership tracking, rather than by
// clearing a bit in a shared bitmap — kelindar/bitmap's confirmed surface
// (Grow/Set/Contains) offers no single-bit unset, so "un-black" a vertex by
// writing done[v]=false directly.
func removeSubtree(s *iftstate.State, h *iftstate.Heap, done []bool, start int) {
	d := s.Domain
	var marked bitmap.Bitmap
	if d.N > 0 {
		marked.Grow(uint32(d.N - 1))
	}

	stack := []int{start}
	var frontier []int
	for len(stack) > 0 {
		vi := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s.Root[vi] = iftstate.Nil
		s.Pred[vi] = iftstate.Nil
		s.Cost[vi] = iftstate.TMP

		if h.Contains(vi) {
			h.Remove(vi)
		} else {
			done[vi] = false
		}

		d.EachNeighbor(vi, func(vj int) {
			if s.Pred[vj] == vi {
				stack = append(stack, vj)
				return
			}
			if s.Cost[vj] != iftstate.BG && s.Cost[vj] != iftstate.TMP && !marked.Contains(uint32(vj)) {
				marked.Set(uint32(vj))
				frontier = append(frontier, vj)
			}
		})
	}

	for _, vi := range frontier {
		if h.Contains(vi) {
			h.Remove(vi)
		}
		h.Insert(vi)
	}
}

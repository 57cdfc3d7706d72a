// Package iftstate owns the per-vertex forest produced by the Image
// Foresting Transform: root, predecessor (which doubles, for seeds, as a
// two's-complement-encoded label — spec.md §9), and path cost, plus the
// current seed array and the min-heap used to grow the forest.
package iftstate

import (
	"math"

	"github.com/gosicle/sicle/grid"
	"github.com/gosicle/sicle/internal/parallel"
)

// Nil marks an unset root or predecessor.
const Nil = -1

// BG and TMP are the cost sentinels from spec.md §3: BG marks a spel
// outside the ROI (never conquered), TMP marks a spel not yet reached.
var (
	BG  = math.Inf(-1)
	TMP = math.Inf(1)
)

// State holds the forest arrays for a domain of N spels.
//
// State is owned by the iteration driver and mutated only by the currently
// active kernel (sequential IFT or DIFT) — spec.md §5 "Shared resources".
type State struct {
	Domain *grid.Domain
	ROI    *grid.ROI

	Root []int
	Pred []int
	Cost []float64

	Seeds []int
}

// New allocates forest arrays sized to d.N. The arrays are left zero-valued
// until Reset is called.
func New(d *grid.Domain, roi *grid.ROI) *State {
	return &State{
		Domain: d,
		ROI:    roi,
		Root:   make([]int, d.N),
		Pred:   make([]int, d.N),
		Cost:   make([]float64, d.N),
	}
}

// Reset prepares the forest for a fresh sequential IFT over seeds: every
// vertex gets pred=root=Nil and cost=BG (outside ROI) or TMP (inside);
// every seed s at position i gets root[s]=s, pred[s]=-(i+1), cost[s]=0 —
// spec.md §4.5.
func (s *State) Reset(seeds []int) {
	s.Seeds = seeds
	n := s.Domain.N
	parallel.Range(n, func(v int) {
		s.Pred[v] = Nil
		s.Root[v] = Nil
		if s.ROI.In(v) {
			s.Cost[v] = TMP
		} else {
			s.Cost[v] = BG
		}
	})
	for i, sd := range seeds {
		s.Root[sd] = sd
		s.Pred[sd] = -(i + 1)
		s.Cost[sd] = 0
	}
}

// RelabelSeeds rewrites pred[s]=-(i+1) for each surviving seed, in its new
// position — DIFT step 2 of spec.md §4.6, run after tree removal so
// surviving seeds occupy dense positions 0..K-1.
func (s *State) RelabelSeeds(seeds []int) {
	s.Seeds = seeds
	parallel.Range(len(seeds), func(i int) {
		s.Pred[seeds[i]] = -(i + 1)
	})
}

// Label decodes the label of v as -pred[root[v]]-1 (spec.md §3). Returns -1
// for a vertex with no root (background, never reached).
func (s *State) Label(v int) int {
	r := s.Root[v]
	if r == Nil {
		return -1
	}
	return -(s.Pred[r]) - 1
}

// Settled reports whether v has a finite, non-background cost: it has been
// conquered by the forest (whether or not it is still in the heap).
func (s *State) Settled(v int) bool {
	c := s.Cost[v]
	return c != BG && c != TMP
}

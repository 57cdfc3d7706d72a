package treestats

import (
	"github.com/gosicle/sicle/grid"
	"github.com/gosicle/sicle/iftstate"
	"github.com/kelindar/bitmap"
)

// Stats holds per-tree aggregates over a completed forest, indexed by label
// 0..K-1.
type Stats struct {
	K        int
	FeatDim  int
	HasSal   bool
	Size     []int
	MeanFeat [][]float64
	Centroid [][]float64 // len 3 per tree: x, y, z
	MeanSal  []float64

	// Adjacency[i] has bit j set iff trees i and j share a boundary.
	Adjacency []bitmap.Bitmap
}

// Compute scans every settled spel of s exactly once, accumulating size,
// feature sum, centroid sum, and saliency sum per label and marking
// adjacency from cross-label neighbour pairs in the same pass, then divides
// sums into means.
//
// Grounded on original_source/src/iftSICLE.c's iftSICLE_CalcTStats.
func Compute(s *iftstate.State, feats [][]float64, sal []float64, featDim, k int) *Stats {
	hasSal := sal != nil
	st := &Stats{
		K:         k,
		FeatDim:   featDim,
		HasSal:    hasSal,
		Size:      make([]int, k),
		MeanFeat:  make([][]float64, k),
		Centroid:  make([][]float64, k),
		Adjacency: make([]bitmap.Bitmap, k),
	}
	for i := 0; i < k; i++ {
		st.MeanFeat[i] = make([]float64, featDim)
		st.Centroid[i] = make([]float64, 3)
		if k > 0 {
			st.Adjacency[i].Grow(uint32(k - 1))
		}
	}
	if hasSal {
		st.MeanSal = make([]float64, k)
	}

	d := s.Domain
	for v := 0; v < d.N; v++ {
		if !s.Settled(v) {
			continue
		}
		lbl := s.Label(v)
		st.Size[lbl]++
		for j := 0; j < featDim; j++ {
			st.MeanFeat[lbl][j] += feats[v][j]
		}
		coord := d.Coordinate(v)
		st.Centroid[lbl][0] += float64(coord.X)
		st.Centroid[lbl][1] += float64(coord.Y)
		st.Centroid[lbl][2] += float64(coord.Z)
		if hasSal {
			st.MeanSal[lbl] += sal[v]
		}

		d.EachNeighbor(v, func(w int) {
			if !s.Settled(w) {
				return
			}
			wlbl := s.Label(w)
			if wlbl == lbl {
				return
			}
			st.Adjacency[lbl].Set(uint32(wlbl))
			st.Adjacency[wlbl].Set(uint32(lbl))
		})
	}

	for i := 0; i < k; i++ {
		n := st.Size[i]
		if n == 0 {
			continue
		}
		fn := float64(n)
		for j := range st.MeanFeat[i] {
			st.MeanFeat[i][j] /= fn
		}
		for j := range st.Centroid[i] {
			st.Centroid[i][j] /= fn
		}
		if hasSal {
			st.MeanSal[i] /= fn
		}
	}
	return st
}

// Adjacent reports whether trees i and j share a boundary.
func (s *Stats) Adjacent(i, j int) bool {
	return s.Adjacency[i].Contains(uint32(j))
}

// CentroidVoxel returns tree i's centroid rounded to the nearest voxel, for
// callers that need a grid.Voxel rather than raw float coordinates.
func (s *Stats) CentroidVoxel(i int) grid.Voxel {
	c := s.Centroid[i]
	return grid.Voxel{X: int(c[0] + 0.5), Y: int(c[1] + 0.5), Z: int(c[2] + 0.5)}
}

package relevance

import (
	"math"

	"github.com/gosicle/sicle/iftstate"
	"github.com/gosicle/sicle/treestats"
)

// Criterion selects the base relevance formula.
type Criterion int

const (
	// CritSize scores by tree size alone.
	CritSize Criterion = iota
	// CritMinSC scores by size times the weakest feature gradient to a
	// neighbouring tree (favours merging near-uniform trees first).
	CritMinSC
	// CritMaxSC scores by size times the strongest feature gradient
	// (favours merging trees that stand out least).
	CritMaxSC
	// CritSpread scores by size times distance to the nearest neighbour's
	// centroid.
	CritSpread
	// CritCustom delegates to Params.CustomCrit.
	CritCustom
)

// Penalty selects the saliency-aware multiplier applied to the criterion.
type Penalty int

const (
	// PenNone applies no penalty.
	PenNone Penalty = iota
	// PenObj favours object saliency over border gradient.
	PenObj
	// PenBord favours border saliency gradient alone.
	PenBord
	// PenOSB blends object saliency with background distance.
	PenOSB
	// PenBOBS blends object and background relevance.
	PenBOBS
	// PenCustom delegates to Params.CustomPen.
	PenCustom
)

// Params configures Score. CustomCrit/CustomPen must be non-nil when the
// matching Custom option is selected.
type Params struct {
	Criterion Criterion
	Penalty   Penalty
	CustomCrit func(sizePerc, minColorGrad, maxColorGrad, minDist float64) float64
	CustomPen  func(base, meanSal, maxSalGrad, distPerc float64) float64
}

// Score computes one priority value per tree in st, in tree-index order.
// totalN is the domain's total spel count (sicle->mimg->n in the original),
// diagonal is the domain's diagonal size (used to normalise min_dist into a
// penalty-scale percentage).
//
// Grounded on original_source/src/iftSICLE.c's iftSICLE_CalcSeedPrio —
// the per-tree neighbour scan, criterion switch, and penalty switch are
// preserved formula-for-formula.
func Score(st *treestats.Stats, totalN int, diagonal float64, p Params) []float64 {
	prio := make([]float64, st.K)
	for i := 0; i < st.K; i++ {
		if st.Size[i] == 0 {
			continue
		}
		sizePerc := float64(st.Size[i]) / float64(totalN)

		minColorGrad := math.Inf(1)
		maxColorGrad := 0.0
		minDist := math.Inf(1)
		maxSalGrad := 0.0

		for j := 0; j < st.K; j++ {
			if i == j || !st.Adjacent(i, j) {
				continue
			}
			grad := euclid(st.MeanFeat[i], st.MeanFeat[j])
			dist := euclid(st.Centroid[i], st.Centroid[j])
			if grad < minColorGrad {
				minColorGrad = grad
			}
			if grad > maxColorGrad {
				maxColorGrad = grad
			}
			if dist < minDist {
				minDist = dist
			}
			if st.HasSal {
				sg := math.Abs(st.MeanSal[i] - st.MeanSal[j])
				if sg > maxSalGrad {
					maxSalGrad = sg
				}
			}
		}
		distPerc := minDist / diagonal

		var base float64
		switch p.Criterion {
		case CritSize:
			base = sizePerc
		case CritMinSC:
			base = sizePerc * minColorGrad
		case CritMaxSC:
			base = sizePerc * maxColorGrad
		case CritSpread:
			base = sizePerc * minDist
		case CritCustom:
			base = p.CustomCrit(sizePerc, minColorGrad, maxColorGrad, minDist)
		}

		var meanSal float64
		if st.HasSal {
			meanSal = st.MeanSal[i]
		}
		switch p.Penalty {
		case PenNone:
		case PenObj:
			base *= math.Max(meanSal, maxSalGrad)
		case PenBord:
			base *= maxSalGrad
		case PenOSB:
			bkg := (1 - meanSal) * distPerc
			base *= math.Max(meanSal, bkg)
		case PenBOBS:
			obj := meanSal * maxSalGrad
			bkg := (1 - meanSal) * distPerc
			base *= math.Max(obj, bkg)
		case PenCustom:
			base = p.CustomPen(base, meanSal, maxSalGrad, distPerc)
		}
		prio[i] = base
	}
	return prio
}

// Remove ranks seeds by prio (prio[i] corresponds to seeds[i], the tree
// each seed currently roots) and splits them into the numMaint most
// relevant — the next iteration's seed array, in descending-priority order
// — and the rest, the irrelevant set DIFT must tear down.
//
// Grounded on original_source/src/iftSICLE.c's iftSICLE_RemSeeds, reusing
// iftstate.Heap in max-first mode rather than a second heap type.
func Remove(seeds []int, prio []float64, numMaint int) (newSeeds, irreSeeds []int) {
	h := iftstate.NewHeap(prio, true)
	for i := range prio {
		h.Insert(i)
	}

	newSeeds = make([]int, 0, numMaint)
	for i := 0; i < numMaint && h.Len() > 0; i++ {
		id := h.Extract()
		newSeeds = append(newSeeds, seeds[id])
	}
	for h.Len() > 0 {
		id := h.Extract()
		irreSeeds = append(irreSeeds, seeds[id])
	}
	return newSeeds, irreSeeds
}

func euclid(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

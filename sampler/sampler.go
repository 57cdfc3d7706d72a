package sampler

import (
	"math"
	"math/rand"

	"github.com/gosicle/sicle/grid"
	"github.com/kelindar/bitmap"
)

// Kind selects a built-in sampling strategy.
type Kind int

const (
	// RandomKind draws N0 distinct ROI spels uniformly via rejection
	// sampling.
	RandomKind Kind = iota
	// GridKind places N0 spels on a stride lattice following the domain's
	// aspect ratio.
	GridKind
	// CustomKind delegates to a caller-supplied Func.
	CustomKind
)

// Func draws n0 seed indices from the domain, respecting roi (nil meaning
// unrestricted). It returns ErrROITooSmall or ErrGridStrideTooSmall (or any
// caller-defined error, for Custom) if n0 cannot be satisfied.
type Func func(d *grid.Domain, roi *grid.ROI, n0 int, rng *rand.Rand) ([]int, error)

// Get returns the Func for a built-in Kind, or custom if kind==CustomKind.
func Get(kind Kind, custom Func) Func {
	switch kind {
	case RandomKind:
		return Random
	case GridKind:
		return Grid
	case CustomKind:
		return custom
	default:
		return nil
	}
}

// Random draws n0 distinct indices from roi via rejection sampling, using
// rng as the sole source of randomness (never a package-global generator —
// grounded on tsp/rng.go's parameterized-RNG idiom).
//
// Grounded on original_source/src/iftSICLE.c's iftSICLE_RndOversampl.
func Random(d *grid.Domain, roi *grid.ROI, n0 int, rng *rand.Rand) ([]int, error) {
	avail := roi.Count(d.N)
	if avail < n0 {
		return nil, ErrROITooSmall
	}

	var marked bitmap.Bitmap
	if d.N > 0 {
		marked.Grow(uint32(d.N - 1))
	}
	seeds := make([]int, 0, n0)
	for len(seeds) < n0 {
		idx := rng.Intn(d.N)
		if marked.Contains(uint32(idx)) {
			continue
		}
		if !roi.In(idx) {
			continue
		}
		marked.Set(uint32(idx))
		seeds = append(seeds, idx)
	}
	return seeds, nil
}

// Grid places seeds on a stride lattice whose xyz strides follow the
// domain's aspect ratio, so that roughly n0 positions fall across the
// whole domain. A stride below one spel along any retained axis is fatal
// (spec.md §9's Open Question, resolved as fatal — see DESIGN.md).
//
// Grounded on original_source/src/iftSICLE.c's iftSICLE_GridOversampl.
func Grid(d *grid.Domain, roi *grid.ROI, n0 int, rng *rand.Rand) ([]int, error) {
	is3D := d.Is3D()
	allLength := float64(d.X + d.Y + d.Z)
	px := float64(d.X) / allLength
	py := float64(d.Y) / allLength
	pz := float64(d.Z) / allLength

	var c float64
	if is3D {
		c = math.Pow(float64(n0)/(px*py*pz), 1.0/3.0)
	} else {
		c = math.Sqrt(float64(n0) / (px * py))
	}

	xstride := float64(d.X) / (c * px)
	ystride := float64(d.Y) / (c * py)
	var zstride float64
	if is3D {
		zstride = float64(d.Z) / (c * pz)
	}

	if xstride < 1 || ystride < 1 || (is3D && zstride < 1) {
		return nil, ErrGridStrideTooSmall
	}

	var zOffsets []float64
	if is3D {
		for z := zstride / 2; z < float64(d.Z); z += zstride {
			zOffsets = append(zOffsets, z)
		}
	} else {
		zOffsets = []float64{0}
	}

	var seeds []int
	for _, zf := range zOffsets {
		z := int(math.Round(zf))
		for yf := ystride / 2; yf < float64(d.Y); yf += ystride {
			y := int(math.Round(yf))
			for xf := xstride / 2; xf < float64(d.X); xf += xstride {
				x := int(math.Round(xf))
				v := grid.Voxel{X: x, Y: y, Z: z}
				if !d.InBounds(v) {
					continue
				}
				idx := d.Index(v)
				if roi.In(idx) {
					seeds = append(seeds, idx)
				}
			}
		}
	}
	return seeds, nil
}

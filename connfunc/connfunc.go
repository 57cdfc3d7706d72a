// FMax and FSum are grounded on original_source/src/iftSICLE.c's
// iftSICLE_ConnFunction — the formulas are preserved literally, including
// the unresolved Open Question in spec.md §9: FSum's adherence exponent is
// applied via math.Pow without special-casing Adherence=0.
package connfunc

import (
	"errors"
	"math"

	"github.com/gosicle/sicle/grid"
)

// Kind selects which connectivity function the IFT uses.
type Kind int

const (
	// FMax is the root-based irregular path-cost function.
	FMax Kind = iota
	// FSum is the boundary- and adherence-controlled path-cost function.
	FSum
	// Custom delegates to a caller-supplied Func.
	Custom
)

// ErrNonMonotone names a Custom function's contract violation: a cost that
// regresses below the conquering vertex's own cost. No function in this
// package returns it; callers performing their own validation may use it
// as a sentinel.
var ErrNonMonotone = errors.New("connfunc: candidate cost must be >= conquering vertex cost")

// Params bundles the tunables spec.md §4.4 and §6 name.
type Params struct {
	Alpha        float64 // saliency weight, >= 0
	Irregularity float64 // fsum omega, >= 0
	Adherence    int     // fsum integer exponent a, >= 0
}

// Candidate carries everything a connectivity function needs to price the
// arc from the conquering vertex vi (whose tree root is Root) to candidate
// neighbour vj.
type Candidate struct {
	ViCost     float64 // C(vi), the conquering vertex's current path cost
	RootFeat   []float64
	VjFeat     []float64
	RootSal    float64
	VjSal      float64
	HasSal     bool
	ViCoord    grid.Voxel
	VjCoord    grid.Voxel
}

// Func computes the path cost offered to vj along the arc from vi, given
// the bundled Candidate and Params. A conforming Func must be
// monotonically non-decreasing along any path and finite for any vj inside
// the ROI (spec.md §4.4's Custom contract).
type Func func(c Candidate, p Params) float64

// Get returns the Func for a built-in Kind, or custom if kind==Custom.
// custom may be nil only if kind != Custom.
func Get(kind Kind, custom Func) Func {
	switch kind {
	case FMax:
		return FMaxFunc
	case FSum:
		return FSumFunc
	case Custom:
		return custom
	default:
		return nil
	}
}

func salDist(c Candidate) float64 {
	if !c.HasSal {
		return 0
	}
	return math.Abs(c.RootSal - c.VjSal)
}

// FMaxFunc implements C_new = max(C(vi), ||f(r)-f(vj)||^(1+alpha*|sal(r)-sal(vj)|)).
// Reduces to classical fmax when alpha=0 or saliency is absent.
func FMaxFunc(c Candidate, p Params) float64 {
	dist := euclidean(c.RootFeat, c.VjFeat)
	exp := 1.0 + p.Alpha*salDist(c)
	arc := math.Pow(dist, exp)
	return math.Max(c.ViCost, arc)
}

// FSumFunc implements
// C_new = C(vi) + ((omega + alpha*|sal(r)-sal(vj)|) * ||f(r)-f(vj)||)^a + ||coord(vi)-coord(vj)||.
// The literal formula is preserved: Adherence=0 collapses the bracketed
// term to 1 via math.Pow(x, 0), it is not special-cased to skip the term.
func FSumFunc(c Candidate, p Params) float64 {
	dist := euclidean(c.RootFeat, c.VjFeat)
	bracket := (p.Irregularity + p.Alpha*salDist(c)) * dist
	arc := math.Pow(bracket, float64(p.Adherence))
	spatial := grid.VoxelDistance(c.ViCoord, c.VjCoord)
	return c.ViCost + arc + spatial
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

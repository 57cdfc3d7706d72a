package sicle

import (
	"math"

	"github.com/gosicle/sicle/connfunc"
	"github.com/gosicle/sicle/grid"
	"github.com/gosicle/sicle/ift"
	"github.com/gosicle/sicle/iftstate"
	"github.com/gosicle/sicle/relevance"
	"github.com/gosicle/sicle/sampler"
	"github.com/gosicle/sicle/treestats"
	"go.uber.org/zap"
)

// FeatureImage is the caller-owned input feature volume: X, Y, Z spatial
// extents, M bands per spel, and a dense N-length slice of M-vectors
// (colour images must already be in a perceptually uniform space — out of
// scope per spec.md §1).
type FeatureImage struct {
	X, Y, Z int
	M       int
	Data    [][]float64
}

// Engine partitions a FeatureImage's domain into spatially connected,
// feature-homogeneous regions via iterative seed oversampling, an IFT/DIFT
// forest, and relevance-driven seed removal.
//
// Grounded on original_source/src/iftSICLE.c's iftRunSICLE/
// iftRunMultiscaleSICLE driver loop, expressed with dijkstra.go's
// functional-options constructor idiom.
type Engine struct {
	cfg    *Config
	domain *grid.Domain
	roi    *grid.ROI
	feats  [][]float64
	sal    []float64
	hasSal bool
	logger *zap.Logger

	lastSeeds []int
	lastState *iftstate.State
}

// NewEngine validates features/roi/saliency against cfg's options and
// returns a ready-to-run Engine.
func NewEngine(features FeatureImage, roi *grid.ROI, saliency []float64, opts ...Option) (*Engine, error) {
	n := features.X * features.Y * features.Z
	if len(features.Data) != n {
		return nil, &DomainError{Err: ErrDomainMismatch}
	}
	if saliency != nil && len(saliency) != n {
		return nil, &DomainError{Err: ErrDomainMismatch}
	}

	cfg := New(opts...)

	d, err := grid.NewDomain(features.X, features.Y, features.Z, cfg.UseDiagonals)
	if err != nil {
		return nil, err
	}

	numVtx := roi.Count(d.N)
	hasSal := saliency != nil
	if err := cfg.Validate(numVtx, hasSal); err != nil {
		return nil, err
	}

	return &Engine{
		cfg:    cfg,
		domain: d,
		roi:    roi,
		feats:  features.Data,
		sal:    saliency,
		hasSal: hasSal,
		logger: cfg.Logger,
	}, nil
}

// Run partitions the domain into at most Nf regions and returns the
// single-scale label image (0 outside the ROI, 1..K inside).
//
// Grounded on original_source/src/iftSICLE.c's iftRunSICLE.
func (e *Engine) Run() ([]int, error) {
	scales, err := e.run(false)
	if err != nil {
		return nil, err
	}
	return scales[len(scales)-1], nil
}

// RunMultiscale returns one label image per iteration of the Ni schedule,
// first-to-last (N0 down to Nf).
//
// Grounded on original_source/src/iftSICLE.c's iftRunMultiscaleSICLE.
func (e *Engine) RunMultiscale() ([][]int, error) {
	return e.run(true)
}

// SeedImage returns a sparse N-length array whose only nonzero entries are
// the current seed spels, each holding its owning tree's 1-based label —
// original_source/src/iftSICLE.c's iftSICLE_CreateSeedImage, exposed for
// debugging/visualisation.
func (e *Engine) SeedImage() []int {
	img := make([]int, e.domain.N)
	if e.lastState == nil {
		return img
	}
	for _, sd := range e.lastSeeds {
		img[sd] = e.lastState.Label(sd) + 1
	}
	return img
}

func (e *Engine) run(multiscale bool) ([][]int, error) {
	d := e.domain
	connFn := connfunc.Get(e.cfg.Connectivity, e.cfg.CustomConn)
	connParams := connfunc.Params{Alpha: e.cfg.Alpha, Irregularity: e.cfg.Irregularity, Adherence: e.cfg.Adherence}
	samplFn := sampler.Get(e.cfg.Sampling, e.cfg.CustomSampler)

	seeds, err := samplFn(d, e.roi, e.cfg.N0, e.cfg.RNG)
	if err != nil {
		return nil, err
	}

	ni := buildNiSchedule(len(seeds), e.cfg.Nf, e.cfg.MaxIters, e.cfg.UserNi)
	e.logger.Info("ni schedule built", zap.Int("n0", len(seeds)), zap.Ints("ni", ni))

	s := iftstate.New(d, e.roi)
	ctx := ift.Context{Features: e.feats, Saliency: e.sal, Conn: connFn, Params: connParams}

	var irreSeeds []int
	var scales [][]int

	for it := 1; it < len(ni); it++ {
		if !e.cfg.UseDIFT || it == 1 {
			ift.Run(s, seeds, ctx)
		} else {
			ift.RunDifferential(s, seeds, irreSeeds, ctx)
		}
		e.lastSeeds = seeds
		e.lastState = s
		e.logger.Info("iteration complete", zap.Int("iteration", it), zap.Int("seeds", len(seeds)))

		if multiscale {
			scales = append(scales, e.labelImage(s))
		}

		st := treestats.Compute(s, e.feats, e.sal, e.bandCount(), len(seeds))
		scoreParams := relevance.Params{
			Criterion:  e.cfg.Criterion,
			Penalty:    e.cfg.Penalty,
			CustomCrit: e.cfg.CustomCrit,
			CustomPen:  e.cfg.CustomPen,
		}
		prio := relevance.Score(st, d.N, d.DiagonalSize(), scoreParams)
		seeds, irreSeeds = relevance.Remove(seeds, prio, ni[it])
	}

	// Final pass with Nf seeds.
	if !e.cfg.UseDIFT {
		ift.Run(s, seeds, ctx)
	} else {
		ift.RunDifferential(s, seeds, irreSeeds, ctx)
	}
	e.lastSeeds = seeds
	e.lastState = s
	e.logger.Info("final iteration complete", zap.Int("seeds", len(seeds)))

	scales = append(scales, e.labelImage(s))
	return scales, nil
}

func (e *Engine) bandCount() int {
	if len(e.feats) == 0 {
		return 0
	}
	return len(e.feats[0])
}

// labelImage materialises a dense label image: 0 outside the ROI,
// label+1 inside — original_source/src/iftSICLE.c's
// iftSICLE_CreateLabelImage.
func (e *Engine) labelImage(s *iftstate.State) []int {
	out := make([]int, e.domain.N)
	for v := 0; v < e.domain.N; v++ {
		if e.roi.In(v) {
			out[v] = s.Label(v) + 1
		}
	}
	return out
}

// buildNiSchedule reproduces original_source/src/iftSICLE.c's
// iftSICLE_CreateNiArray: a geometric decay from n0 with rate
// 1/(maxIters-1), cut off once it would pass nf (so at most maxIters
// entries, ending at nf), or the caller-supplied user schedule spliced
// between n0 and nf.
func buildNiSchedule(n0, nf, maxIters int, userNi []int) []int {
	if userNi != nil {
		numIters := len(userNi) + 2
		ni := make([]int, numIters)
		ni[0] = n0
		ni[numIters-1] = nf
		copy(ni[1:numIters-1], userNi)
		return ni
	}

	omega := 1.0 / (float64(maxIters) - 1)
	approx := math.Log(float64(n0)/float64(nf)) / math.Log(math.Pow(float64(n0), omega))
	numIters := int(math.Ceil(approx)) + 1

	ni := make([]int, numIters)
	ni[0] = n0
	ni[numIters-1] = nf
	for i := 1; i < numIters-1; i++ {
		ni[i] = int(math.Round(math.Pow(float64(n0), 1.0-omega*float64(i))))
	}
	return ni
}

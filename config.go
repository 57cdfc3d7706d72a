package sicle

import (
	"math/rand"

	"github.com/gosicle/sicle/connfunc"
	"github.com/gosicle/sicle/relevance"
	"github.com/gosicle/sicle/sampler"
	"go.uber.org/zap"
)

// Config holds every tunable spec.md §6 names, plus the ambient-stack
// additions (WithLogger, WithRNG/WithSeed) spec.md §9 requires be
// constructor arguments rather than process-wide singletons.
//
// Grounded on dijkstra.Option/builder.BuilderOption's functional-options
// pattern: New(opts ...Option) fills a Config seeded with DefaultConfig(),
// later options override earlier ones, and Validate runs every bound from
// original_source/src/iftSICLE.c's iftVerifySICLEArgs.
type Config struct {
	UseDiagonals bool
	UseDIFT      bool

	N0       int
	Nf       int
	MaxIters int
	UserNi   []int

	Alpha        float64
	Irregularity float64
	Adherence    int

	Sampling     sampler.Kind
	Connectivity connfunc.Kind
	Criterion    relevance.Criterion
	Penalty      relevance.Penalty

	CustomSampler sampler.Func
	CustomConn    connfunc.Func
	CustomCrit    func(sizePerc, minColorGrad, maxColorGrad, minDist float64) float64
	CustomPen     func(base, meanSal, maxSalGrad, distPerc float64) float64

	Logger *zap.Logger
	RNG    *rand.Rand
}

// Option mutates a Config under construction.
type Option func(*Config)

// DefaultConfig reproduces original_source/src/iftSICLE.c's
// iftCreateSICLEArgs defaults exactly.
func DefaultConfig() *Config {
	return &Config{
		UseDiagonals: true,
		UseDIFT:      true,
		N0:           3000,
		Nf:           200,
		MaxIters:     5,
		Irregularity: 0.12,
		Adherence:    12,
		Alpha:        0.0,
		Sampling:     sampler.RandomKind,
		Connectivity: connfunc.FMax,
		Criterion:    relevance.CritMinSC,
		Penalty:      relevance.PenNone,
		Logger:       zap.NewNop(),
	}
}

// WithDiagonals toggles 8/26- vs 4/6-adjacency.
func WithDiagonals(use bool) Option { return func(c *Config) { c.UseDiagonals = use } }

// WithDIFT toggles differential recomputation after the first iteration.
func WithDIFT(use bool) Option { return func(c *Config) { c.UseDIFT = use } }

// WithN0 sets the requested initial seed count.
func WithN0(n0 int) Option { return func(c *Config) { c.N0 = n0 } }

// WithNf sets the final seed count.
func WithNf(nf int) Option { return func(c *Config) { c.Nf = nf } }

// WithMaxIters sets the iteration count used to build the geometric Ni
// schedule when UserNi is unset.
func WithMaxIters(n int) Option { return func(c *Config) { c.MaxIters = n } }

// WithUserNi supplies an explicit, strictly decreasing intermediate Ni
// schedule (values strictly between Nf and N0).
func WithUserNi(ni []int) Option { return func(c *Config) { c.UserNi = ni } }

// WithAlpha sets the saliency weight in the connectivity function.
func WithAlpha(alpha float64) Option { return func(c *Config) { c.Alpha = alpha } }

// WithIrregularity sets fsum's irregularity term omega.
func WithIrregularity(irreg float64) Option { return func(c *Config) { c.Irregularity = irreg } }

// WithAdherence sets fsum's boundary-adherence exponent.
func WithAdherence(a int) Option { return func(c *Config) { c.Adherence = a } }

// WithSampling selects the seed oversampling strategy.
func WithSampling(k sampler.Kind) Option { return func(c *Config) { c.Sampling = k } }

// WithConnectivity selects the path-cost function.
func WithConnectivity(k connfunc.Kind) Option { return func(c *Config) { c.Connectivity = k } }

// WithCriterion selects the relevance criterion.
func WithCriterion(v relevance.Criterion) Option { return func(c *Config) { c.Criterion = v } }

// WithPenalty selects the relevance penalty.
func WithPenalty(p relevance.Penalty) Option { return func(c *Config) { c.Penalty = p } }

// WithCustomSampler installs the Sampling=Custom hook.
func WithCustomSampler(f sampler.Func) Option {
	return func(c *Config) { c.CustomSampler = f }
}

// WithCustomConnectivity installs the Connectivity=Custom hook.
func WithCustomConnectivity(f connfunc.Func) Option {
	return func(c *Config) { c.CustomConn = f }
}

// WithCustomCriterion installs the Criterion=Custom hook.
func WithCustomCriterion(f func(sizePerc, minColorGrad, maxColorGrad, minDist float64) float64) Option {
	return func(c *Config) { c.CustomCrit = f }
}

// WithCustomPenalty installs the Penalty=Custom hook.
func WithCustomPenalty(f func(base, meanSal, maxSalGrad, distPerc float64) float64) Option {
	return func(c *Config) { c.CustomPen = f }
}

// WithLogger injects a structured logger. The default is zap.NewNop(), so
// library consumers pay nothing unless they opt in.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithRNG injects a parameterized random source for Random seed
// oversampling, never a package-level generator.
func WithRNG(rng *rand.Rand) Option {
	return func(c *Config) {
		if rng != nil {
			c.RNG = rng
		}
	}
}

// WithSeed is a convenience over WithRNG for callers who just want
// determinism without constructing a *rand.Rand themselves.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.RNG = rngFromSeed(seed) }
}

// New builds a Config from DefaultConfig with opts applied in order. The
// result still needs Validate against a concrete domain/saliency pair —
// NewEngine does this once it knows the ROI-eligible spel count.
func New(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.RNG == nil {
		cfg.RNG = rngFromSeed(0)
	}
	return cfg
}

// Validate applies every bound original_source/src/iftSICLE.c's
// iftVerifySICLEArgs enforces.
func (c *Config) Validate(numVtx int, hasSaliency bool) error {
	if c.N0 <= 2 || c.N0 >= numVtx {
		return &ConfigError{Field: "N0", Value: c.N0, Err: ErrInvalidN0}
	}
	if c.Nf < 2 || c.Nf >= c.N0 {
		return &ConfigError{Field: "Nf", Value: c.Nf, Err: ErrInvalidNf}
	}
	if c.MaxIters < 2 {
		return &ConfigError{Field: "MaxIters", Value: c.MaxIters, Err: ErrInvalidMaxIters}
	}
	if c.Irregularity < 0 {
		return &ConfigError{Field: "Irregularity", Value: c.Irregularity, Err: ErrInvalidIrregularity}
	}
	if c.Adherence < 0 {
		return &ConfigError{Field: "Adherence", Value: c.Adherence, Err: ErrInvalidAdherence}
	}
	if c.Alpha < 0 {
		return &ConfigError{Field: "Alpha", Value: c.Alpha, Err: ErrInvalidAlpha}
	}
	if c.UserNi != nil {
		n := len(c.UserNi)
		if n == 0 || c.UserNi[0] >= c.N0 || c.UserNi[n-1] <= c.Nf {
			return &ConfigError{Field: "UserNi", Value: c.UserNi, Err: ErrInvalidUserNi}
		}
		for i := 1; i < n; i++ {
			if c.UserNi[i-1] <= c.UserNi[i] {
				return &ConfigError{Field: "UserNi", Value: c.UserNi, Err: ErrInvalidUserNi}
			}
		}
	}
	if !hasSaliency && c.Penalty != relevance.PenNone {
		return &ConfigError{Field: "Penalty", Value: c.Penalty, Err: ErrPenaltyNeedsSaliency}
	}
	if c.Sampling == sampler.CustomKind && c.CustomSampler == nil {
		return &ConfigError{Field: "Sampling", Value: c.Sampling, Err: ErrMissingCustomSampler}
	}
	if c.Connectivity == connfunc.Custom && c.CustomConn == nil {
		return &ConfigError{Field: "Connectivity", Value: c.Connectivity, Err: ErrMissingCustomConn}
	}
	if c.Criterion == relevance.CritCustom && c.CustomCrit == nil {
		return &ConfigError{Field: "Criterion", Value: c.Criterion, Err: ErrMissingCustomCrit}
	}
	if c.Penalty == relevance.PenCustom && c.CustomPen == nil {
		return &ConfigError{Field: "Penalty", Value: c.Penalty, Err: ErrMissingCustomPen}
	}
	return nil
}

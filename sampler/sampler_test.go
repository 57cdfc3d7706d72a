package sampler

import (
	"math/rand"
	"testing"

	"github.com/gosicle/sicle/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_RespectsROIAndCount(t *testing.T) {
	d, err := grid.NewDomain(8, 8, 1, false)
	require.NoError(t, err)
	mask := make([]bool, d.N)
	for i := range mask {
		mask[i] = i%2 == 0
	}
	roi := grid.NewROI(mask, d.N)

	rng := rand.New(rand.NewSource(1))
	seeds, err := Random(d, roi, 10, rng)
	require.NoError(t, err)
	assert.Len(t, seeds, 10)

	seen := make(map[int]bool)
	for _, s := range seeds {
		assert.True(t, roi.In(s))
		assert.False(t, seen[s], "duplicate seed %d", s)
		seen[s] = true
	}
}

func TestRandom_ErrorsWhenROISmallerThanN0(t *testing.T) {
	d, err := grid.NewDomain(4, 4, 1, false)
	require.NoError(t, err)
	mask := make([]bool, d.N)
	mask[0] = true
	mask[1] = true
	roi := grid.NewROI(mask, d.N)

	rng := rand.New(rand.NewSource(1))
	_, err = Random(d, roi, 5, rng)
	assert.ErrorIs(t, err, ErrROITooSmall)
}

func TestRandom_DeterministicForFixedSeed(t *testing.T) {
	d, err := grid.NewDomain(10, 10, 1, false)
	require.NoError(t, err)

	r1 := rand.New(rand.NewSource(7))
	r2 := rand.New(rand.NewSource(7))
	s1, err := Random(d, nil, 20, r1)
	require.NoError(t, err)
	s2, err := Random(d, nil, 20, r2)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
}

func TestGrid_ProducesRoughlyN0PositionsWithinBounds(t *testing.T) {
	d, err := grid.NewDomain(32, 32, 1, false)
	require.NoError(t, err)

	seeds, err := Grid(d, nil, 64, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, seeds)
	for _, s := range seeds {
		assert.GreaterOrEqual(t, s, 0)
		assert.Less(t, s, d.N)
	}
	// Roughly on the order of the request; the stride lattice is not exact.
	assert.InDelta(t, 64, len(seeds), 40)
}

func TestGrid_FatalOnSubUnitStride(t *testing.T) {
	d, err := grid.NewDomain(4, 4, 1, false)
	require.NoError(t, err)

	_, err = Grid(d, nil, 10000, nil)
	assert.ErrorIs(t, err, ErrGridStrideTooSmall)
}

func TestGrid_RespectsROI(t *testing.T) {
	d, err := grid.NewDomain(16, 16, 1, false)
	require.NoError(t, err)
	mask := make([]bool, d.N)
	for i := range mask {
		v := d.Coordinate(i)
		mask[i] = v.X < 8
	}
	roi := grid.NewROI(mask, d.N)

	seeds, err := Grid(d, roi, 16, nil)
	require.NoError(t, err)
	for _, s := range seeds {
		assert.True(t, roi.In(s))
	}
}

func TestGet_DispatchesKnownKinds(t *testing.T) {
	assert.NotNil(t, Get(RandomKind, nil))
	assert.NotNil(t, Get(GridKind, nil))

	custom := func(d *grid.Domain, roi *grid.ROI, n0 int, rng *rand.Rand) ([]int, error) {
		return []int{1, 2, 3}, nil
	}
	f := Get(CustomKind, custom)
	got, err := f(d(t), nil, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func d(t *testing.T) *grid.Domain {
	t.Helper()
	dom, err := grid.NewDomain(2, 2, 1, false)
	require.NoError(t, err)
	return dom
}

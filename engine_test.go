package sicle

import (
	"testing"

	"github.com/gosicle/sicle/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockFeatures builds an 8x8 single-band image split into four 4x4
// quadrants with sharply distinct intensities, so a correct segmentation
// is expected to keep quadrant boundaries intact.
func blockFeatures(x, y int) FeatureImage {
	data := make([][]float64, x*y)
	for j := 0; j < y; j++ {
		for i := 0; i < x; i++ {
			v := 0.0
			if i >= x/2 {
				v += 100.0
			}
			if j >= y/2 {
				v += 10.0
			}
			data[j*x+i] = []float64{v}
		}
	}
	return FeatureImage{X: x, Y: y, Z: 1, M: 1, Data: data}
}

func TestNewEngine_RejectsMismatchedFeatureLength(t *testing.T) {
	img := FeatureImage{X: 4, Y: 4, Z: 1, M: 1, Data: make([][]float64, 10)}
	_, err := NewEngine(img, nil, nil, WithN0(5), WithNf(2))
	require.Error(t, err)
	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
}

func TestNewEngine_RejectsMismatchedSaliencyLength(t *testing.T) {
	img := blockFeatures(8, 8)
	_, err := NewEngine(img, nil, make([]float64, 3), WithN0(10), WithNf(2))
	require.Error(t, err)
	var domErr *DomainError
	require.ErrorAs(t, err, &domErr)
}

func TestNewEngine_PropagatesConfigValidationError(t *testing.T) {
	img := blockFeatures(8, 8)
	_, err := NewEngine(img, nil, nil, WithN0(1000), WithNf(2))
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestRun_LabelsEveryEligibleSpelAndStaysWithinK(t *testing.T) {
	img := blockFeatures(8, 8)
	e, err := NewEngine(img, nil, nil, WithN0(20), WithNf(4), WithMaxIters(3), WithSeed(7))
	require.NoError(t, err)

	labels, err := e.Run()
	require.NoError(t, err)
	require.Len(t, labels, 64)

	seen := map[int]bool{}
	for _, l := range labels {
		assert.GreaterOrEqual(t, l, 1, "every spel is inside the unrestricted ROI")
		assert.LessOrEqual(t, l, 4)
		seen[l] = true
	}
	assert.LessOrEqual(t, len(seen), 4)
}

func TestRun_RespectsROI(t *testing.T) {
	img := blockFeatures(8, 8)
	mask := make([]bool, 64)
	for i := range mask {
		mask[i] = i < 32 // only the top half of the image is eligible
	}
	roi := grid.NewROI(mask, 64)

	e, err := NewEngine(img, roi, nil, WithN0(10), WithNf(3), WithMaxIters(3), WithSeed(1))
	require.NoError(t, err)

	labels, err := e.Run()
	require.NoError(t, err)
	for i, l := range labels {
		if !mask[i] {
			assert.Equal(t, 0, l, "spel outside the ROI must stay unlabeled")
		}
	}
}

func TestRun_IsDeterministicForAFixedSeed(t *testing.T) {
	img := blockFeatures(8, 8)
	e1, err := NewEngine(img, nil, nil, WithN0(16), WithNf(4), WithMaxIters(3), WithSeed(99))
	require.NoError(t, err)
	e2, err := NewEngine(img, nil, nil, WithN0(16), WithNf(4), WithMaxIters(3), WithSeed(99))
	require.NoError(t, err)

	l1, err := e1.Run()
	require.NoError(t, err)
	l2, err := e2.Run()
	require.NoError(t, err)
	assert.Equal(t, l1, l2)
}

func TestRunMultiscale_ProducesOneImagePerIterationAndShrinksK(t *testing.T) {
	img := blockFeatures(8, 8)
	e, err := NewEngine(img, nil, nil, WithN0(30), WithNf(4), WithMaxIters(4), WithSeed(3))
	require.NoError(t, err)

	scales, err := e.RunMultiscale()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(scales), 2)

	countDistinct := func(labels []int) int {
		seen := map[int]bool{}
		for _, l := range labels {
			if l > 0 {
				seen[l] = true
			}
		}
		return len(seen)
	}

	first := countDistinct(scales[0])
	last := countDistinct(scales[len(scales)-1])
	assert.GreaterOrEqual(t, first, last, "seed count is non-increasing across the schedule")
	assert.LessOrEqual(t, last, 4)
}

func TestSeedImage_IsSparseAndMatchesLastSeeds(t *testing.T) {
	img := blockFeatures(8, 8)
	e, err := NewEngine(img, nil, nil, WithN0(12), WithNf(4), WithMaxIters(3), WithSeed(5))
	require.NoError(t, err)
	_, err = e.Run()
	require.NoError(t, err)

	seedImg := e.SeedImage()
	nonzero := 0
	for _, v := range seedImg {
		if v != 0 {
			nonzero++
		}
	}
	assert.Equal(t, len(e.lastSeeds), nonzero)
	for _, sd := range e.lastSeeds {
		assert.NotEqual(t, 0, seedImg[sd])
	}
}

func TestSeedImage_EmptyBeforeAnyRun(t *testing.T) {
	img := blockFeatures(8, 8)
	e, err := NewEngine(img, nil, nil, WithN0(10), WithNf(3))
	require.NoError(t, err)
	for _, v := range e.SeedImage() {
		assert.Equal(t, 0, v)
	}
}

// connectedComponentsMatchLabels verifies the Connectivity invariant: every
// maximal same-label group of spels must be connected under the domain's
// adjacency (8-connectivity with the default UseDiagonals) (spec.md §3
// "Partition" + "Connectivity").
func connectedComponentsMatchLabels(t *testing.T, d *grid.Domain, labels []int) {
	t.Helper()
	visited := make([]bool, len(labels))
	for start, l := range labels {
		if l == 0 || visited[start] {
			continue
		}
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			d.EachNeighbor(v, func(w int) {
				if !visited[w] && labels[w] == l {
					visited[w] = true
					stack = append(stack, w)
				}
			})
		}
		// Every other spel carrying label l anywhere in the image must have
		// been reached by this single flood fill.
		for idx, other := range labels {
			if other == l {
				assert.True(t, visited[idx], "label %d must form one connected region, spel %d unreached", l, idx)
			}
		}
	}
}

func TestRun_EveryLabelIsASingleConnectedRegion(t *testing.T) {
	img := blockFeatures(8, 8)
	e, err := NewEngine(img, nil, nil, WithN0(20), WithNf(4), WithMaxIters(3), WithSeed(11))
	require.NoError(t, err)

	labels, err := e.Run()
	require.NoError(t, err)
	connectedComponentsMatchLabels(t, e.domain, labels)
}

func TestRun_WithUserNiScheduleEndsWithAtMostNfLabels(t *testing.T) {
	img := blockFeatures(8, 8)
	e, err := NewEngine(img, nil, nil, WithN0(30), WithNf(4), WithUserNi([]int{20, 10}), WithSeed(2))
	require.NoError(t, err)

	labels, err := e.Run()
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, l := range labels {
		if l > 0 {
			seen[l] = true
		}
	}
	assert.LessOrEqual(t, len(seen), 4)
}

func TestRun_DIFTAndNonDIFTAgreeOnFinalSeedCount(t *testing.T) {
	img := blockFeatures(8, 8)
	eDIFT, err := NewEngine(img, nil, nil, WithN0(20), WithNf(4), WithMaxIters(3), WithSeed(4), WithDIFT(true))
	require.NoError(t, err)
	ePlain, err := NewEngine(img, nil, nil, WithN0(20), WithNf(4), WithMaxIters(3), WithSeed(4), WithDIFT(false))
	require.NoError(t, err)

	lDIFT, err := eDIFT.Run()
	require.NoError(t, err)
	lPlain, err := ePlain.Run()
	require.NoError(t, err)

	countDistinct := func(labels []int) int {
		seen := map[int]bool{}
		for _, l := range labels {
			if l > 0 {
				seen[l] = true
			}
		}
		return len(seen)
	}
	assert.Equal(t, countDistinct(lPlain), countDistinct(lDIFT))
}

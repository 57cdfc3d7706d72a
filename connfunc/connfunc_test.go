package connfunc

import (
	"math"
	"testing"

	"github.com/gosicle/sicle/grid"
	"github.com/stretchr/testify/assert"
)

func TestFMax_ReducesToClassical(t *testing.T) {
	c := Candidate{
		ViCost:   3,
		RootFeat: []float64{0, 0},
		VjFeat:   []float64{3, 4},
	}
	got := FMaxFunc(c, Params{})
	assert.Equal(t, math.Max(3, 5), got)
}

func TestFMax_SaliencyWidensArcCost(t *testing.T) {
	base := Candidate{ViCost: 0, RootFeat: []float64{0}, VjFeat: []float64{2}}
	withSal := base
	withSal.HasSal = true
	withSal.RootSal = 0
	withSal.VjSal = 1

	plain := FMaxFunc(base, Params{Alpha: 1})
	salient := FMaxFunc(withSal, Params{Alpha: 1})
	assert.Greater(t, salient, plain)
}

func TestFSum_AdherenceZeroCollapsesBracketToOne(t *testing.T) {
	c := Candidate{
		ViCost:   1,
		RootFeat: []float64{0, 0},
		VjFeat:   []float64{10, 10},
		ViCoord:  grid.Voxel{X: 0, Y: 0},
		VjCoord:  grid.Voxel{X: 1, Y: 0},
	}
	p := Params{Irregularity: 5, Adherence: 0}
	got := FSumFunc(c, p)
	want := c.ViCost + 1 + grid.VoxelDistance(c.ViCoord, c.VjCoord)
	assert.InDelta(t, want, got, 1e-9)
}

func TestFSum_MonotoneInAdherence(t *testing.T) {
	c := Candidate{
		ViCost:   0,
		RootFeat: []float64{0},
		VjFeat:   []float64{4},
	}
	p1 := Params{Irregularity: 2, Adherence: 1}
	p2 := Params{Irregularity: 2, Adherence: 2}
	assert.Less(t, FSumFunc(c, p1), FSumFunc(c, p2))
}

func TestGet_DispatchesKnownKinds(t *testing.T) {
	assert.NotNil(t, Get(FMax, nil))
	assert.NotNil(t, Get(FSum, nil))

	custom := func(c Candidate, p Params) float64 { return 42 }
	got := Get(Custom, custom)
	assert.Equal(t, 42.0, got(Candidate{}, Params{}))
}

func TestGet_UnknownKindReturnsNil(t *testing.T) {
	assert.Nil(t, Get(Kind(99), nil))
}

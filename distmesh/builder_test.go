package distmesh

import (
	"math/rand"
	"testing"

	"github.com/arl/go-distmesh/geom"
	"github.com/arl/go-distmesh/sdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDistributesPointsInsideDomain(t *testing.T) {
	e, err := NewBuilder(50).
		BBox(-10, -10, 10, 10).
		DistFn(sdf.Circle{Center: geom.Point{}, Radius: 8}).
		Rand(rand.New(rand.NewSource(1))).
		Build()
	require.NoError(t, err)
	assert.Len(t, e.Points, 50)
	assert.Len(t, e.Fixed, 50)
	for i, p := range e.Points {
		assert.Less(t, p.Length(), 8.0)
		assert.False(t, e.Fixed[i])
	}
	assert.Greater(t, len(e.Triangulation.Triangles), 0)
}

func TestBuildAppendsFixpointsAsFixed(t *testing.T) {
	corners := []geom.Point{{X: 1, Y: 1}, {X: 9, Y: 1}, {X: 9, Y: 9}, {X: 1, Y: 9}}
	e, err := NewBuilder(30).
		BBox(0, 0, 10, 10).
		AddFixpoint(corners[0]).
		AddFixpoint(corners[1]).
		AddFixpoint(corners[2]).
		AddFixpoint(corners[3]).
		Rand(rand.New(rand.NewSource(2))).
		Build()
	require.NoError(t, err)
	assert.Len(t, e.Points, 34)
	for i := 30; i < 34; i++ {
		assert.True(t, e.Fixed[i])
		assert.Equal(t, corners[i-30], e.Points[i])
	}
	for i := 0; i < 30; i++ {
		assert.False(t, e.Fixed[i])
	}
}

func TestBuildDefaultsDistFnToBoundingRect(t *testing.T) {
	e, err := NewBuilder(20).BBox(0, 0, 5, 5).Rand(rand.New(rand.NewSource(3))).Build()
	require.NoError(t, err)
	for _, p := range e.Points {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 5.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 5.0)
	}
}

func TestBuilderChainingReturnsSameBuilder(t *testing.T) {
	b := NewBuilder(10)
	b2 := b.BBox(0, 0, 1, 1).Bossen().VirtualEdges().BreakEdges()
	assert.Same(t, b, b2)
}

package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	p := Point{1, 2}
	q := Point{3, 4}

	assert.Equal(t, Point{4, 6}, p.Add(q))
	assert.Equal(t, Point{-2, -2}, p.Sub(q))
	assert.Equal(t, Point{2, 4}, p.Scale(2))
	assert.Equal(t, Point{2, 3}, p.Center(q))
	assert.InDelta(t, 8.0, p.DistanceSq(q), 1e-12)
	assert.InDelta(t, math.Sqrt(8), p.Distance(q), 1e-12)
}

func TestNormalize(t *testing.T) {
	p := Point{3, 4}
	n := p.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
	assert.Equal(t, Point{}, Point{}.Normalize())
}

func TestNearlyEquals(t *testing.T) {
	a := Point{1, 1}
	b := Point{1 + Epsilon/2, 1}
	assert.True(t, a.NearlyEquals(b))
	assert.False(t, a.NearlyEquals(Point{1.1, 1}))
}

func TestBBoxCenter(t *testing.T) {
	pts := []Point{{0, 0}, {2, 2}, {-1, 3}}
	c := BBoxCenter(pts)
	assert.Equal(t, Point{0.5, 1.5}, c)
	assert.Equal(t, Point{}, BBoxCenter(nil))
}

func TestFindClosestPoint(t *testing.T) {
	pts := []Point{{0, 0}, {5, 5}, {1, 1}}
	idx, ok := FindClosestPoint(pts, Point{1.1, 0.9})
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = FindClosestPoint(nil, Point{})
	assert.False(t, ok)
}

func TestEquilateralTriangle(t *testing.T) {
	p1, p2, p3 := EquilateralTriangle(1.0)
	assert.Equal(t, Point{0, 0}, p1)
	assert.Equal(t, Point{1, 0}, p2)
	assert.InDelta(t, 0.5, p3.X, 1e-12)
	assert.InDelta(t, math.Sqrt(3)/2, p3.Y, 1e-12)
	assert.True(t, p1.CCW(p2, p3))
}

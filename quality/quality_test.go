package quality

import (
	"math"
	"testing"

	"github.com/arl/go-distmesh/geom"
	"github.com/stretchr/testify/assert"
)

func TestEquilateralTriangleQuality(t *testing.T) {
	p1, p2, p3 := geom.EquilateralTriangle(1.0)
	q := TrianglePoints(p1, p2, p3)
	assert.Greater(t, q, 0.99)
}

func TestSliverQuality(t *testing.T) {
	p1 := geom.Point{X: 0, Y: 0}
	p2 := geom.Point{X: 1, Y: 0}
	p3 := geom.Point{X: 0.5, Y: 0.1}
	q := TrianglePoints(p1, p2, p3)
	assert.Less(t, q, 0.1)
}

func TestCollinearQualityIsZero(t *testing.T) {
	q := Triangle(1, 1, 2)
	assert.InDelta(t, 0, q, 1e-9)
}

func TestAverageOverTwoTriangles(t *testing.T) {
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	triangles := []int{0, 1, 2, 0, 2, 3}
	avg := Average(points, triangles)
	assert.Greater(t, avg, 0.0)
	assert.Less(t, avg, 1.0)
}

func TestAverageEmptyIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Average(nil, nil)))
}

package distmesh

import (
	"math"
	"math/rand"
	"testing"

	"github.com/arl/go-distmesh/geom"
	"github.com/arl/go-distmesh/quality"
	"github.com/arl/go-distmesh/sdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiskRelaxationImprovesQuality is a reduced-scale instance of
// spec.md S3 (disk domain, Bossen smoothing): a handful of free points
// over a handful of steps is not the full 600-points/200-steps
// ensemble scenario, but the same monotone-improving trend (property
// 6) must already be visible at this scale.
func TestDiskRelaxationImprovesQuality(t *testing.T) {
	e, err := NewBuilder(120).
		BBox(-300, -300, 300, 300).
		DistFn(sdf.Circle{Center: geom.Point{}, Radius: 300}).
		Bossen().
		Rand(rand.New(rand.NewSource(42))).
		Build()
	require.NoError(t, err)

	for i := 0; i < 40; i++ {
		e.Update(0.1)
	}

	final := quality.Average(e.Points, e.Triangulation.Triangles)
	require.False(t, math.IsNaN(final))
	assert.Greater(t, final, 0.5, "relaxation should drive average triangle quality well above a freshly-seeded Delaunay triangulation")
	assert.Equal(t, 40, e.StepCount())
}

// TestRingRelaxationProjectsOntoAnnulus is a reduced-scale instance of
// spec.md S4: after enough steps, pushback must have left no free point
// more than 1e-3 outside the annulus (ring distance <= 1e-3).
func TestRingRelaxationProjectsOntoAnnulus(t *testing.T) {
	ring := sdf.NewRing(geom.Point{}, 100, 300)
	e, err := NewBuilder(150).
		BBox(-300, -300, 300, 300).
		DistFn(ring).
		VirtualEdges().
		BreakEdges().
		Rand(rand.New(rand.NewSource(9))).
		Build()
	require.NoError(t, err)

	for i := 0; i < 30; i++ {
		e.Update(0.1)
	}

	for i, p := range e.Points {
		if e.Fixed[i] {
			continue
		}
		assert.LessOrEqual(t, ring.Distance(p), 1e-3)
	}
}

// TestRectRelaxationKeepsFixpointsExact is spec.md S5: four fix-points
// at (±250, ±250), added to the rectangle domain (0,0)-(500,500), must
// keep those exact coordinates across every step.
func TestRectRelaxationKeepsFixpointsExact(t *testing.T) {
	corners := []geom.Point{
		{X: -250, Y: -250}, {X: 250, Y: -250}, {X: 250, Y: 250}, {X: -250, Y: 250},
	}
	b := NewBuilder(100).BBox(0, 0, 500, 500).Rand(rand.New(rand.NewSource(3)))
	for _, c := range corners {
		b.AddFixpoint(c)
	}
	e, err := b.Build()
	require.NoError(t, err)

	fixedStart := len(e.Points) - len(corners)
	for step := 0; step < 20; step++ {
		e.Update(0.1)
		for i, c := range corners {
			assert.Equal(t, c, e.Points[fixedStart+i])
		}
	}
}

// TestUpdateOnDegenerateInputDoesNotPanic exercises spec.md §7: fewer
// than 3 non-collinear points leaves an empty triangulation, and
// Update must skip the force pipeline without terminating.
func TestUpdateOnDegenerateInputDoesNotPanic(t *testing.T) {
	e := &Engine{
		Points:    []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
		Fixed:     []bool{false, false},
		edgeLenFn: unitEdgeLen,
		distFn:    sdf.Rect{Min: geom.Point{X: -1, Y: -1}, Max: geom.Point{X: 1, Y: 1}},
	}
	assert.NotPanics(t, func() { e.Update(0.1) })
	assert.Equal(t, 1, e.StepCount())
	assert.Empty(t, e.Triangulation.Triangles)
}

func TestStepIsAliasForUpdate(t *testing.T) {
	e, err := NewBuilder(30).BBox(0, 0, 10, 10).Rand(rand.New(rand.NewSource(5))).Build()
	require.NoError(t, err)
	e.Step(0.1)
	assert.Equal(t, 1, e.StepCount())
}

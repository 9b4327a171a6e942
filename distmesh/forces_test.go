package distmesh

import (
	"math/rand"
	"testing"

	"github.com/arl/go-distmesh/geom"
	"github.com/arl/go-distmesh/sdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestForcesSumToZero exercises spec.md §9's force-accumulation
// asymmetry note: every bar (interior or hull) contributes +f to one
// endpoint and -f to the other exactly once, whether via its own
// half-edge and companion half-edge (interior) or via the explicit
// symmetric hull pass. No bar's force is ever counted twice on the
// same endpoint, so the total force over a closed mesh is always the
// zero vector.
func TestForcesSumToZero(t *testing.T) {
	e, err := NewBuilder(80).
		BBox(-20, -20, 20, 20).
		DistFn(sdf.Circle{Center: geom.Point{}, Radius: 18}).
		Rand(rand.New(rand.NewSource(7))).
		Build()
	require.NoError(t, err)

	scale := e.computeScale()
	forces := e.computeForces(scale)

	var total geom.Point
	for _, f := range forces {
		total = total.Add(f)
	}
	assert.InDelta(t, 0, total.X, 1e-6)
	assert.InDelta(t, 0, total.Y, 1e-6)
}

func TestBarForceIsAntisymmetric(t *testing.T) {
	e := &Engine{edgeLenFn: unitEdgeLen, kernel: Bossen}
	u := geom.Point{X: 0, Y: 0}
	v := geom.Point{X: 1, Y: 0}
	fuv := e.barForce(u, v, 1.0)
	fvu := e.barForce(v, u, 1.0)
	assert.InDelta(t, -fuv.X, fvu.X, 1e-12)
	assert.InDelta(t, -fuv.Y, fvu.Y, 1e-12)
}

func TestPerssonKernelIsRepulsiveOnly(t *testing.T) {
	assert.Equal(t, 0.0, smoothing(Persson, 1.5))
	assert.Greater(t, smoothing(Persson, 0.5), 0.0)
}

func TestBossenKernelAttractsBeyondUnitLambda(t *testing.T) {
	assert.Less(t, smoothing(Bossen, 1.5), 0.0)
	assert.Greater(t, smoothing(Bossen, 0.5), 0.0)
}

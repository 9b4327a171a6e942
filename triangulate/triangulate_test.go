package triangulate

import (
	"math/rand"
	"testing"

	"github.com/arl/go-distmesh/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDegenerateInputs(t *testing.T) {
	_, err := Build([]geom.Point{{0, 0}, {1, 0}})
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Build([]geom.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Build([]geom.Point{{0, 0}, {1, 0}, {1, 0}})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestBuildQuadIsValidDelaunay(t *testing.T) {
	points := []geom.Point{{0, 0}, {1, 0}, {2, 1}, {0, 1}}
	res, err := Build(points)
	require.NoError(t, err)

	require.Equal(t, 2, len(res.Triangles)/3)
	assertValidDelaunay(t, points, res)
}

func TestBuildRandomDiskIsValidDelaunay(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	var points []geom.Point
	for len(points) < 150 {
		p := geom.Point{X: r.Float64()*2 - 1, Y: r.Float64()*2 - 1}
		if p.LengthSq() <= 1 {
			points = append(points, p)
		}
	}

	res, err := Build(points)
	require.NoError(t, err)
	assertValidDelaunay(t, points, res)
	assertHalfedgeInvariants(t, res)
	assertHullIsConvex(t, points, res.Hull)
}

// assertValidDelaunay checks that every triangle is CCW and that no
// input point lies strictly inside any triangle's circumcircle (the
// defining Delaunay property).
func assertValidDelaunay(t *testing.T, points []geom.Point, res Result) {
	t.Helper()
	for k := 0; k < len(res.Triangles); k += 3 {
		a, b, c := res.Triangles[k], res.Triangles[k+1], res.Triangles[k+2]
		pa, pb, pc := points[a], points[b], points[c]
		require.True(t, pa.CCW(pb, pc), "triangle %d,%d,%d is not CCW", a, b, c)

		for i, p := range points {
			if i == a || i == b || i == c {
				continue
			}
			assert.False(t, p.InCircle(pa, pb, pc),
				"point %d lies inside circumcircle of triangle %d,%d,%d", i, a, b, c)
		}
	}
}

func assertHalfedgeInvariants(t *testing.T, res Result) {
	t.Helper()
	for i, twin := range res.Halfedges {
		if twin == Empty {
			continue
		}
		assert.NotEqual(t, i, twin, "half-edge %d is its own twin", i)
		assert.Equal(t, i, res.Halfedges[twin], "twin(twin(%d)) != %d", i, i)
	}
}

func assertHullIsConvex(t *testing.T, points []geom.Point, hull []int) {
	t.Helper()
	n := len(hull)
	require.GreaterOrEqual(t, n, 3)
	for i := 0; i < n; i++ {
		a := points[hull[i]]
		b := points[hull[(i+1)%n]]
		for _, p := range points {
			orient := a.Orient(b, p)
			assert.True(t, orient >= -1e-9,
				"hull edge %d->%d is not convex w.r.t. point %+v (orient=%v)", hull[i], hull[(i+1)%n], p, orient)
		}
	}
}

func TestNextPrev(t *testing.T) {
	assert.Equal(t, 1, Next(0))
	assert.Equal(t, 2, Next(1))
	assert.Equal(t, 0, Next(2))

	assert.Equal(t, 2, Prev(0))
	assert.Equal(t, 0, Prev(1))
	assert.Equal(t, 1, Prev(2))
}

func TestSuperTriangleEnclosesAllPoints(t *testing.T) {
	points := []geom.Point{{0, 0}, {10, 0}, {5, 8}, {3, 2}}
	a, b, c := superTriangle(points)
	require.True(t, a.CCW(b, c))
	for _, p := range points {
		assert.True(t, a.Orient(b, p) > 0 && b.Orient(c, p) > 0 && c.Orient(a, p) > 0,
			"super triangle should enclose %+v", p)
	}
}

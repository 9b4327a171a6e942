package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientSigns(t *testing.T) {
	o := Point{0, 0}

	// CCW triangle.
	assert.Greater(t, o.Orient(Point{1, 0}, Point{0, 1}), 0.0)
	assert.True(t, o.CCW(Point{1, 0}, Point{0, 1}))

	// CW triangle (swap q, r).
	assert.Less(t, o.Orient(Point{0, 1}, Point{1, 0}), 0.0)
	assert.False(t, o.CCW(Point{0, 1}, Point{1, 0}))

	// Collinear.
	assert.Equal(t, 0.0, o.Orient(Point{1, 0}, Point{2, 0}))
}

func TestInCircle(t *testing.T) {
	// Circumscribed circle of a CCW right triangle with legs of length 4.
	a := Point{0, 0}
	b := Point{4, 0}
	c := Point{0, 4}
	require := assert.New(t)
	require.True(a.CCW(b, c))

	center := Circumcenter(a, b, c)
	require.InDelta(2.0, center.X, 1e-9)
	require.InDelta(2.0, center.Y, 1e-9)

	inside := Point{2, 2}
	outside := Point{10, 10}
	onCircle := Point{4, 4}

	require.True(inside.InCircle(a, b, c))
	require.False(outside.InCircle(a, b, c))
	// A point exactly on the circumcircle is not strictly inside.
	require.False(onCircle.InCircle(a, b, c))
}

func TestCircumradiusSq(t *testing.T) {
	a, b, c := EquilateralTriangle(1.0)
	r2 := CircumradiusSq(a, b, c)
	// circumradius of an equilateral triangle with side s is s/sqrt(3)
	assert.InDelta(t, 1.0/3.0, r2, 1e-9)
}

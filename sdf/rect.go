package sdf

import (
	"math"

	"github.com/arl/go-distmesh/geom"
)

// Rect is the signed distance field of an axis-aligned rectangle.
//
// This is the proper Euclidean box SDF, not the Chebyshev/max-of-axes
// simplification: the latter has a degenerate (non-unit, discontinuous)
// gradient along the corner diagonals, which makes distmesh's pushback
// phase oscillate instead of converging. See spec.md §4.2 and §9.
type Rect struct {
	Min, Max geom.Point
}

// Distance implements SDF.
func (r Rect) Distance(p geom.Point) float64 {
	dx := math.Max(r.Min.X-p.X, p.X-r.Max.X)
	dy := math.Max(r.Min.Y-p.Y, p.Y-r.Max.Y)

	ax := math.Max(dx, 0)
	ay := math.Max(dy, 0)
	outside := math.Sqrt(ax*ax + ay*ay)
	inside := math.Min(math.Max(dx, dy), 0)
	return outside + inside
}

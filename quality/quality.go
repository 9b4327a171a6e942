// Package quality implements the triangle shape metric of spec.md
// §4.6: a dimensionless score in (-inf, 1], 1 for equilateral,
// approaching 0 for slivers. The teacher repo has no analogous
// per-triangle metric (Recast bakes navmeshes, it does not score
// triangle shape), so this follows spec.md's formula directly.
package quality

import (
	"math"

	"github.com/arl/go-distmesh/geom"
)

// Triangle returns the shape quality of the triangle with side lengths
// a, b, c: (b+c-a)(c+a-b)(a+b-c) / (a*b*c). An equilateral triangle
// scores ~1; a degenerate (collinear) triangle scores 0. Zero-length
// sides produce NaN or Inf, which is not guarded against here, per
// spec.md §7.
func Triangle(a, b, c float64) float64 {
	return (b + c - a) * (c + a - b) * (a + b - c) / (a * b * c)
}

// TrianglePoints is a convenience wrapper computing side lengths from
// three points before scoring.
func TrianglePoints(p1, p2, p3 geom.Point) float64 {
	a := p2.Distance(p3)
	b := p1.Distance(p3)
	c := p1.Distance(p2)
	return Triangle(a, b, c)
}

// Average returns the mean quality over triangles, a flat CCW index
// list as produced by package triangulate (triangles[3k..3k+3]).
// Returns NaN for an empty triangle list.
func Average(points []geom.Point, triangles []int) float64 {
	if len(triangles) == 0 {
		return math.NaN()
	}
	sum := 0.0
	n := 0
	for k := 0; k+2 < len(triangles); k += 3 {
		a, b, c := triangles[k], triangles[k+1], triangles[k+2]
		sum += TrianglePoints(points[a], points[b], points[c])
		n++
	}
	return sum / float64(n)
}

// Package geom provides the 2D geometric primitives shared by the sdf,
// triangulate, mesh and distmesh packages: points, vector arithmetic and
// the predicates (orientation, in-circle, circumcenter) that the rest of
// the module builds on.
package geom

import "math"

// Epsilon is the tolerance used by NearlyEquals, roughly 2 machine
// epsilons for float64.
const Epsilon = 4.440892098500626e-16 // 2 * 2^-52

// Point is a point or vector in the plane.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Center returns the midpoint of p and q.
func (p Point) Center(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// LengthSq returns the squared length of p, treated as a vector.
func (p Point) LengthSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Length returns the length of p, treated as a vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.LengthSq())
}

// Normalize returns p scaled to unit length. Returns the zero vector if
// p is the zero vector.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// DistanceSq returns the squared distance between p and q.
func (p Point) DistanceSq(q Point) float64 {
	return p.Sub(q).LengthSq()
}

// Distance returns the distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSq(q))
}

// NearlyEquals reports whether p and q are equal to within Epsilon,
// componentwise.
func (p Point) NearlyEquals(q Point) bool {
	return math.Abs(p.X-q.X) <= Epsilon && math.Abs(p.Y-q.Y) <= Epsilon
}

// BBoxCenter returns the center of the axis-aligned bounding box of
// points. Returns the zero point if points is empty.
func BBoxCenter(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Point{(minX + maxX) / 2, (minY + maxY) / 2}
}

// FindClosestPoint returns the index of the point in points nearest to q,
// and false if points is empty.
func FindClosestPoint(points []Point, q Point) (int, bool) {
	if len(points) == 0 {
		return 0, false
	}
	best := 0
	bestDSq := points[0].DistanceSq(q)
	for i := 1; i < len(points); i++ {
		d := points[i].DistanceSq(q)
		if d < bestDSq {
			bestDSq = d
			best = i
		}
	}
	return best, true
}

// EquilateralTriangle returns the three CCW vertices of an equilateral
// triangle with side length segLen, anchored at the origin with its
// first edge along the X axis.
func EquilateralTriangle(segLen float64) (p1, p2, p3 Point) {
	p1 = Point{0, 0}
	p2 = Point{segLen, 0}
	p3 = Point{segLen / 2, segLen * math.Sqrt(3) / 2}
	return
}

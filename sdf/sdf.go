// Package sdf provides signed distance fields over the plane: negative
// inside the target domain, zero on its boundary, positive outside.
package sdf

import "github.com/arl/go-distmesh/geom"

// SDF is a signed distance field. Distance is negative inside the
// domain, zero on its boundary, positive outside.
type SDF interface {
	Distance(p geom.Point) float64
}

// Gradient returns the finite-difference gradient of s at p, using
// forward differences with step eps. eps should be around 1e-4 for
// general queries and around 1e-6 when used to project a point back
// onto the domain boundary (see distmesh's pushback phase).
func Gradient(s SDF, p geom.Point, eps float64) geom.Point {
	f0 := s.Distance(p)
	fx := s.Distance(geom.Point{X: p.X + eps, Y: p.Y})
	fy := s.Distance(geom.Point{X: p.X, Y: p.Y + eps})
	return geom.Point{
		X: (fx - f0) / eps,
		Y: (fy - f0) / eps,
	}
}

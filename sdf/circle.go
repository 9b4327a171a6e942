package sdf

import "github.com/arl/go-distmesh/geom"

// Circle is the signed distance field of a disk of the given radius
// centered at Center.
type Circle struct {
	Center geom.Point
	Radius float64
}

// Distance implements SDF.
func (c Circle) Distance(p geom.Point) float64 {
	return p.Distance(c.Center) - c.Radius
}

package sdf

import "github.com/arl/go-distmesh/geom"

// Translate shifts S by By: a point p is distance-queried against S as
// if translated by -By.
//
// Mirrors how original_source/meshing/src/sfd.rs composes SDFs for its
// ring.rs sample binary: domains are built up from primitives via
// simple coordinate shifts and scales rather than reimplementing each
// variant.
type Translate struct {
	S  SDF
	By geom.Point
}

// Distance implements SDF.
func (t Translate) Distance(p geom.Point) float64 {
	return t.S.Distance(p.Sub(t.By))
}

// Scale uniformly scales S's domain by Factor (Factor > 1 grows it).
type Scale struct {
	S      SDF
	Factor float64
}

// Distance implements SDF.
func (s Scale) Distance(p geom.Point) float64 {
	return s.S.Distance(p.Scale(1/s.Factor)) * s.Factor
}

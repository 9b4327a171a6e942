package sdf

import (
	"math"

	"github.com/arl/go-distmesh/geom"
)

// Union is the pointwise minimum of its parts: the signed distance
// field of the union of their domains.
type Union struct {
	Parts []SDF
}

// Distance implements SDF.
func (u Union) Distance(p geom.Point) float64 {
	if len(u.Parts) == 0 {
		return math.Inf(1)
	}
	d := u.Parts[0].Distance(p)
	for _, part := range u.Parts[1:] {
		if v := part.Distance(p); v < d {
			d = v
		}
	}
	return d
}

package sdf

import (
	"math"

	"github.com/arl/assertgo"
	"github.com/arl/go-distmesh/geom"
)

// Ring is the signed distance field of an annulus centered at Center,
// between RIn and ROut.
type Ring struct {
	Center    geom.Point
	RIn, ROut float64
}

// NewRing returns the signed distance field of the annulus centered at
// center, between rIn and rOut.
func NewRing(center geom.Point, rIn, rOut float64) Ring {
	assert.True(rIn < rOut, "sdf.NewRing: rIn (%v) must be < rOut (%v)", rIn, rOut)
	return Ring{Center: center, RIn: rIn, ROut: rOut}
}

// Distance implements SDF.
func (r Ring) Distance(p geom.Point) float64 {
	r1 := (r.ROut + r.RIn) / 2
	r2 := (r.ROut - r.RIn) / 2
	return math.Abs(p.Distance(r.Center)-r1) - r2
}

package geom

import "math/big"

// orientErrBound bounds the relative rounding error of the naive
// orientation determinant, following Shewchuk's adaptive-precision
// predicates: an error of 4·Epsilon (about 8 ulps of 1.0, since Epsilon
// is itself 2 ulps) relative to the magnitude of the
// computation is the standard conservative bound for a three-term
// determinant evaluated in float64.
const orientErrBound = 4 * Epsilon

// Orient returns twice the signed area of the triangle (self, q, r):
// positive when self, q, r wind counter-clockwise, negative when
// clockwise, zero when collinear.
//
// The naive determinant is evaluated first; when its magnitude falls
// within orientErrBound of the inputs' magnitude (i.e. rounding error
// could have flipped its sign), the same determinant is recomputed
// exactly with big.Rat so the sign is always correct.
func (self Point) Orient(q, r Point) float64 {
	acx := self.X - r.X
	bcx := q.X - r.X
	acy := self.Y - r.Y
	bcy := q.Y - r.Y

	det := acx*bcy - acy*bcx

	bound := orientErrBound * (abs(acx)*abs(bcy) + abs(acy)*abs(bcx))
	if abs(det) > bound {
		return det
	}
	return orientExact(self, q, r)
}

func orientExact(self, q, r Point) float64 {
	toBig := func(f float64) *big.Rat { return new(big.Rat).SetFloat64(f) }

	acx := new(big.Rat).Sub(toBig(self.X), toBig(r.X))
	bcx := new(big.Rat).Sub(toBig(q.X), toBig(r.X))
	acy := new(big.Rat).Sub(toBig(self.Y), toBig(r.Y))
	bcy := new(big.Rat).Sub(toBig(q.Y), toBig(r.Y))

	t1 := new(big.Rat).Mul(acx, bcy)
	t2 := new(big.Rat).Mul(acy, bcx)
	det := new(big.Rat).Sub(t1, t2)

	f, _ := det.Float64()
	return f
}

// CCW reports whether self, q, r wind counter-clockwise.
func (self Point) CCW(q, r Point) bool {
	return self.Orient(q, r) > 0
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// InCircle reports whether self lies strictly inside the circumcircle
// of a, b, c, which must be given in CCW order.
//
// Evaluated via the 3x3 determinant form described in spec.md §4.1:
// with (dx,dy) = self-c, (ex,ey) = a-c, (fx,fy) = b-c, ap = dx²+dy²
// (and likewise ep, fp), self is inside iff
//
//	dx*(ey*fp - ep*fy) - dy*(ex*fp - ep*fx) + ap*(ex*fy - ey*fx) < 0
func (self Point) InCircle(a, b, c Point) bool {
	dx := self.X - c.X
	dy := self.Y - c.Y
	ex := a.X - c.X
	ey := a.Y - c.Y
	fx := b.X - c.X
	fy := b.Y - c.Y

	ap := dx*dx + dy*dy
	ep := ex*ex + ey*ey
	fp := fx*fx + fy*fy

	det := dx*(ey*fp-ep*fy) - dy*(ex*fp-ep*fx) + ap*(ex*fy-ey*fx)
	return det < 0
}

// CircumDelta returns the vector from c to the circumcenter of the
// triangle (a, b, c).
func CircumDelta(a, b, c Point) Point {
	ax := a.X - c.X
	ay := a.Y - c.Y
	bx := b.X - c.X
	by := b.Y - c.Y

	d := 2 * (ax*by - ay*bx)
	if d == 0 {
		return Point{}
	}
	ap := ax*ax + ay*ay
	bp := bx*bx + by*by
	return Point{
		X: (by*ap - ay*bp) / d,
		Y: (ax*bp - bx*ap) / d,
	}
}

// Circumcenter returns the circumcenter of the triangle (a, b, c).
func Circumcenter(a, b, c Point) Point {
	return c.Add(CircumDelta(a, b, c))
}

// CircumradiusSq returns the squared circumradius of the triangle
// (a, b, c).
func CircumradiusSq(a, b, c Point) float64 {
	return CircumDelta(a, b, c).LengthSq()
}

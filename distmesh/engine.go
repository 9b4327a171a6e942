// Package distmesh implements the DistMesh physical relaxation loop:
// a point cloud is alternately retriangulated and nudged by spring-like
// bar forces until triangle quality stabilizes, grounded on
// original_source's distmesh.rs (DistMesh/DistMeshBuilder) with the
// builder reshaped to the teacher's settings/builder idiom.
package distmesh

import (
	"math"

	"github.com/arl/go-distmesh/geom"
	"github.com/arl/go-distmesh/internal/buildlog"
	"github.com/arl/go-distmesh/sdf"
	"github.com/arl/go-distmesh/triangulate"
)

// Engine is the relaxing point cloud plus its last-computed
// triangulation. Construct one with Builder.Build; advance it with
// Update.
type Engine struct {
	Points []geom.Point
	Fixed  []bool

	Triangulation triangulate.Result

	distFn       sdf.SDF
	edgeLenFn    EdgeLenFn
	kernel       Kernel
	virtualEdges bool
	breakEdges   bool

	stepCounter int
	ctx         *buildlog.Context
}

// StepCount returns the number of completed Update calls.
func (e *Engine) StepCount() int { return e.stepCounter }

// Update advances the relaxation by one step of size dt, following the
// pipeline: compute scale, optionally split over-long hull bars,
// compute forces, integrate, project non-fixed points back onto the
// domain, retriangulate, and advance the step counter.
//
// If the current triangulation is empty (the previous retriangulation
// was degenerate: fewer than 3 non-collinear points), Update skips the
// force pipeline entirely for this step but still attempts to
// retriangulate and still advances the step counter, per spec.md §7.
//
// If break-edges splitting appended any points, Update retriangulates
// right away and ends the step there: forces, integration and
// projection are skipped for that step, and the step counter still
// advances.
func (e *Engine) Update(dt float64) {
	e.ctx.Progressf("update step %d", e.stepCounter)

	if len(e.Triangulation.Triangles) == 0 {
		e.retriangulate()
		e.stepCounter++
		return
	}

	e.ctx.StartTimer(buildlog.TimerScale)
	scale := e.computeScale()
	e.ctx.StopTimer(buildlog.TimerScale)

	if e.breakEdges {
		e.splitOverlongHullBars(scale)
		if e.stale() {
			// break_edges appended points past the end of the
			// triangulation that produced this step's Hull/Halfedges;
			// retriangulate immediately rather than compute forces
			// against topology that doesn't know about them.
			e.ctx.StartTimer(buildlog.TimerTriangulate)
			e.retriangulate()
			e.ctx.StopTimer(buildlog.TimerTriangulate)
			e.stepCounter++
			return
		}
	}

	e.ctx.StartTimer(buildlog.TimerForces)
	forces := e.computeForces(scale)
	e.ctx.StopTimer(buildlog.TimerForces)

	e.ctx.StartTimer(buildlog.TimerIntegrate)
	e.integrate(forces, dt)
	e.ctx.StopTimer(buildlog.TimerIntegrate)

	e.ctx.StartTimer(buildlog.TimerProject)
	e.project()
	e.ctx.StopTimer(buildlog.TimerProject)

	e.ctx.StartTimer(buildlog.TimerTriangulate)
	e.retriangulate()
	e.ctx.StopTimer(buildlog.TimerTriangulate)

	e.stepCounter++
}

// Step is an alias for Update, named after spec.md's "Step (update(Δt))"
// heading.
func (e *Engine) Step(dt float64) { e.Update(dt) }

// stale reports whether e.Triangulation was built from a point count
// different from the current e.Points, which happens once per step
// between splitOverlongHullBars appending midpoints and the following
// retriangulate call picking them up.
func (e *Engine) stale() bool {
	return e.Triangulation.NumPoints != len(e.Points)
}

// retriangulate rebuilds e.Triangulation from e.Points. A degenerate
// point set (fewer than 3 non-collinear points) leaves the
// triangulation empty rather than stale; Update detects that on the
// next call and skips the force pipeline.
func (e *Engine) retriangulate() {
	res, err := triangulate.Build(e.Points)
	if err != nil {
		e.ctx.Warningf("retriangulate: %v", err)
		e.Triangulation = triangulate.Result{}
		return
	}
	e.Triangulation = res
}

// barRatio returns (‖u-v‖², h(midpoint(u,v))²).
func (e *Engine) barRatio(u, v geom.Point) (lenSq, hSq float64) {
	center := u.Center(v)
	h := e.edgeLenFn(center)
	return u.DistanceSq(v), h * h
}

// computeScale computes s = sqrt(Σ‖u−v‖² / Σ h(midpoint)²) over every
// interior half-edge (each visited once per stored direction, since
// the loop below ranges over the full half-edge array rather than
// deduplicated bars) plus every hull bar counted in both directions.
func (e *Engine) computeScale() float64 {
	var sumLenSq, sumHSq float64

	tris, twins := e.Triangulation.Triangles, e.Triangulation.Halfedges
	for h, twin := range twins {
		if twin == triangulate.Empty {
			continue
		}
		u := e.Points[tris[h]]
		v := e.Points[tris[twin]]
		lenSq, hSq := e.barRatio(u, v)
		sumLenSq += lenSq
		sumHSq += hSq
	}

	scale := math.Sqrt(sumLenSq / sumHSq)

	hull := e.Triangulation.Hull
	if len(hull) < 2 {
		return scale
	}
	for i := range hull {
		iv := hull[i]
		iu := hull[(i+1)%len(hull)]
		u, v := e.Points[iu], e.Points[iv]

		lenSq, hSq := e.barRatio(u, v)
		sumLenSq += lenSq
		sumHSq += hSq

		lenSq, hSq = e.barRatio(v, u)
		sumLenSq += lenSq
		sumHSq += hSq
	}

	return math.Sqrt(sumLenSq / sumHSq)
}

// splitOverlongHullBars appends the midpoint of every hull bar whose
// normalized length exceeds breakThreshold as a new free point. Update
// retriangulates as soon as any point was appended, so the new points
// are part of the triangulation by the end of the same step.
func (e *Engine) splitOverlongHullBars(scale float64) {
	hull := e.Triangulation.Hull
	n := len(hull)
	for i := 0; i < n; i++ {
		iv := hull[i]
		iu := hull[(i+1)%n]
		u, v := e.Points[iu], e.Points[iv]

		center := u.Center(v)
		hK := e.edgeLenFn(center) * scale
		lambdaK := u.Distance(v) / hK
		if lambdaK > breakThreshold {
			e.Points = append(e.Points, center)
			e.Fixed = append(e.Fixed, false)
		}
	}
}

// barForce returns the force bar (u,v) exerts on u: normalize(u-v) *
// h_k * φ(λ_k), with h_k = h(midpoint(u,v))·Ω·scale and λ_k =
// ‖u−v‖/h_k.
func (e *Engine) barForce(u, v geom.Point, scale float64) geom.Point {
	uv := u.Sub(v)
	hK := e.edgeLenFn(u.Center(v)) * Omega * scale
	lambdaK := uv.Length() / hK
	nu := smoothing(e.kernel, lambdaK) * hK
	return uv.Normalize().Scale(nu)
}

func smoothing(k Kernel, lambda float64) float64 {
	switch k {
	case Persson:
		if 1-lambda > 0 {
			return 1 - lambda
		}
		return 0
	default: // Bossen
		l4 := lambda * lambda * lambda * lambda
		return (1 - l4) * math.Exp(-l4)
	}
}

// computeForces accumulates, per point, the forces of every bar
// incident to it: one pass over every interior half-edge (force
// applied only to end(h), the companion half-edge across the same
// undirected bar applies the opposite direction's force when the loop
// reaches it) plus a symmetric pass over hull bars, which have no
// companion half-edge to rely on.
func (e *Engine) computeForces(scale float64) []geom.Point {
	forces := make([]geom.Point, len(e.Points))

	tris, twins := e.Triangulation.Triangles, e.Triangulation.Halfedges
	for h, twin := range twins {
		if twin == triangulate.Empty {
			continue
		}
		iu, iv := tris[h], tris[twin]
		u, v := e.Points[iu], e.Points[iv]

		if e.virtualEdges {
			next := triangulate.Next(h)
			if twins[next] == triangulate.Empty {
				iw := tris[triangulate.Prev(h)]
				w := e.Points[iw]
				virtual := v.Center(w)
				forces[iu] = forces[iu].Add(e.barForce(u, virtual, scale*sqrt3over2))
			}
		}

		forces[iu] = forces[iu].Add(e.barForce(u, v, scale))
	}

	hull := e.Triangulation.Hull
	n := len(hull)
	if n < 2 {
		return forces
	}
	for i := 0; i < n; i++ {
		iv := hull[i]
		iu := hull[(i+1)%n]
		u, v := e.Points[iu], e.Points[iv]

		forces[iu] = forces[iu].Add(e.barForce(u, v, scale))
		forces[iv] = forces[iv].Add(e.barForce(v, u, scale))
	}

	return forces
}

const sqrt3over2 = 0.8660254037844386

// integrate moves every non-fixed point by dt*force.
func (e *Engine) integrate(forces []geom.Point, dt float64) {
	for i, f := range forces {
		if e.Fixed[i] {
			continue
		}
		e.Points[i] = e.Points[i].Add(f.Scale(dt))
	}
}

// project pushes every non-fixed point with sdf(p) > 0 back toward the
// domain boundary via a single step of gradient descent: no line
// search, no iteration to convergence, per spec.md §4.5.
func (e *Engine) project() {
	for i, p := range e.Points {
		if e.Fixed[i] {
			continue
		}
		dist := e.distFn.Distance(p)
		if dist <= 0 {
			continue
		}
		grad := sdf.Gradient(e.distFn, p, pushbackEps)
		e.Points[i] = p.Sub(grad.Scale(dist))
	}
}

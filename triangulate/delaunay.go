package triangulate

import (
	"sort"

	"github.com/arl/go-distmesh/geom"
)

type edge struct{ a, b int }

// bowyerWatson builds a Delaunay triangulation of points by incremental
// insertion against a bounding super-triangle, removed at the end.
//
// Grounded on other_examples' mrsimicsak-sdfx sdf-delaunay.go.go
// (V2Set.Delaunay2d): points are inserted in X order, and for each
// insertion every triangle whose circumcircle contains the new point is
// destroyed and re-triangulated from the boundary of the resulting
// cavity. The "done" early-exit (a triangle whose circumcircle cannot
// possibly contain any later, larger-X point is skipped for the rest of
// the sweep) is preserved as an optimization.
func bowyerWatson(points []geom.Point) ([]int, error) {
	n := len(points)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return points[order[i]].X < points[order[j]].X })

	superA, superB, superC := superTriangle(points)
	verts := make([]geom.Point, n, n+3)
	copy(verts, points)
	verts = append(verts, superA, superB, superC)
	sA, sB, sC := n, n+1, n+2

	type tri struct{ a, b, c int }
	tris := []tri{{sA, sB, sC}}
	done := []bool{false}

	for _, vi := range order {
		p := verts[vi]

		var edges []edge
		nt := len(tris)
		for j := 0; j < nt; j++ {
			if done[j] {
				continue
			}
			t := tris[j]
			a, b, c := verts[t.a], verts[t.b], verts[t.c]
			inside, complete := inCircumcircle(p, a, b, c)
			done[j] = complete
			if inside {
				edges = append(edges,
					edge{t.a, t.b}, edge{t.b, t.c}, edge{t.c, t.a})
				tris[j] = tris[nt-1]
				done[j] = done[nt-1]
				nt--
				j--
			}
		}
		tris = tris[:nt]
		done = done[:nt]

		// Tag shared edges (interior to the cavity) so only the cavity
		// boundary is re-triangulated with the new point.
		for j := 0; j < len(edges)-1; j++ {
			for k := j + 1; k < len(edges); k++ {
				if edges[j] == (edge{-1, -1}) {
					continue
				}
				if (edges[j].a == edges[k].b && edges[j].b == edges[k].a) ||
					(edges[j].a == edges[k].a && edges[j].b == edges[k].b) {
					edges[j] = edge{-1, -1}
					edges[k] = edge{-1, -1}
				}
			}
		}

		for _, e := range edges {
			if e.a < 0 || e.b < 0 {
				continue
			}
			tris = append(tris, tri{e.a, e.b, vi})
			done = append(done, false)
		}
	}

	// Drop triangles touching the super-triangle, and ensure CCW order.
	out := make([]int, 0, len(tris)*3)
	for _, t := range tris {
		if t.a >= n || t.b >= n || t.c >= n {
			continue
		}
		a, b, c := t.a, t.b, t.c
		if !points[a].CCW(points[b], points[c]) {
			b, c = c, b
		}
		out = append(out, a, b, c)
	}
	return out, nil
}

// superTriangle returns a triangle, in CCW order, enclosing all of
// points, generous enough that no input point lies on or outside it.
func superTriangle(points []geom.Point) (a, b, c geom.Point) {
	bmin, bmax := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < bmin.X {
			bmin.X = p.X
		}
		if p.Y < bmin.Y {
			bmin.Y = p.Y
		}
		if p.X > bmax.X {
			bmax.X = p.X
		}
		if p.Y > bmax.Y {
			bmax.Y = p.Y
		}
	}
	center := bmin.Center(bmax)
	size := bmax.Sub(bmin)
	d := size.X
	if size.Y > d {
		d = size.Y
	}
	if d == 0 {
		d = 1
	}
	k := d * 20

	a = geom.Point{X: center.X - k, Y: center.Y - d}
	b = geom.Point{X: center.X + k, Y: center.Y - d}
	c = geom.Point{X: center.X, Y: center.Y + k}
	return
}

// inCircumcircle reports whether p lies inside the circumcircle of
// (a, b, c), and whether that circumcircle lies entirely to the left of
// p, in which case (points being swept in increasing X order) no later
// point can fall inside it and this triangle can be skipped for the
// rest of the sweep.
func inCircumcircle(p, a, b, c geom.Point) (inside, done bool) {
	center := geom.Circumcenter(a, b, c)
	r2 := geom.CircumradiusSq(a, b, c)
	d2 := p.DistanceSq(center)

	inside = d2 <= r2+geom.Epsilon
	dx := p.X - center.X
	done = dx > 0 && dx*dx > r2
	return
}

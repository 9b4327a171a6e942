// Package triangulate provides the bulk Delaunay triangulator that
// distmesh's relaxation loop retriangulates with on every step.
//
// spec.md treats this triangulator as an external contract the engine
// merely consumes; this package ships a concrete Bowyer-Watson
// implementation so the module is self-contained, grounded on
// other_examples'
// mrsimicsak-sdfx sdf-delaunay.go.go (V2Set.Delaunay2d) and generalized
// to also emit the half-edge pairing and hull arrays spec.md §3
// requires.
package triangulate

import (
	"errors"
	"sort"

	"github.com/arl/go-distmesh/geom"
)

// Empty is the sentinel half-edge index meaning "no twin" (hull edge).
const Empty = -1

// Result is the output of Build: triangles in CCW order, the half-edge
// twin pairing, and the convex hull walked CCW.
type Result struct {
	// Triangles[3k:3k+3] are the vertex indices of triangle k, CCW.
	Triangles []int
	// Halfedges[i] is the index of the twin of half-edge i, or Empty.
	// Half-edge i belongs to triangle i/3; next(i) = i%3==2 ? i-2 : i+1.
	Halfedges []int
	// Hull walks the convex hull of the input points CCW.
	Hull []int
	// NumPoints is the length of the points slice Build was called
	// with. distmesh.Engine compares it against len(Points) to detect
	// a triangulation left stale by break_edges appending points
	// mid-step.
	NumPoints int
}

// ErrDegenerate is returned by Build when the input cannot be
// triangulated: fewer than 3 points, all points collinear, or
// duplicate points at machine precision.
var ErrDegenerate = errors.New("triangulate: degenerate point set")

// Next returns the index, within the same triangle, of the half-edge
// following h.
func Next(h int) int {
	if h%3 == 2 {
		return h - 2
	}
	return h + 1
}

// Prev returns the index, within the same triangle, of the half-edge
// preceding h.
func Prev(h int) int {
	if h%3 == 0 {
		return h + 2
	}
	return h - 1
}

// Build triangulates points, returning ErrDegenerate if points has
// fewer than 3 entries, is entirely collinear, or contains duplicates
// at machine precision.
func Build(points []geom.Point) (Result, error) {
	if len(points) < 3 {
		return Result{}, ErrDegenerate
	}
	if hasDuplicates(points) {
		return Result{}, ErrDegenerate
	}
	if allCollinear(points) {
		return Result{}, ErrDegenerate
	}

	tris, err := bowyerWatson(points)
	if err != nil {
		return Result{}, err
	}
	halfedges := pairHalfedges(tris)
	hull := convexHull(points)

	return Result{Triangles: tris, Halfedges: halfedges, Hull: hull, NumPoints: len(points)}, nil
}

func hasDuplicates(points []geom.Point) bool {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := points[order[i]], points[order[j]]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	for i := 1; i < len(order); i++ {
		if points[order[i]].NearlyEquals(points[order[i-1]]) {
			return true
		}
	}
	return false
}

func allCollinear(points []geom.Point) bool {
	for i := 2; i < len(points); i++ {
		if points[0].Orient(points[1], points[i]) != 0 {
			return false
		}
	}
	return true
}

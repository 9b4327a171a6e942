package triangulate

import (
	"sort"

	"github.com/arl/go-distmesh/geom"
)

// convexHull returns the indices of points on their convex hull, walked
// CCW, via Andrew's monotone chain.
func convexHull(points []geom.Point) []int {
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	sortByXY(points, idx)

	// There is no separate deduplication pass: Build rejects duplicate
	// points before computing the hull, and an exact duplicate would
	// give a zero orientation below and be popped anyway.
	build := func(order []int) []int {
		hull := make([]int, 0, len(order))
		for _, i := range order {
			for len(hull) >= 2 {
				a, b := points[hull[len(hull)-2]], points[hull[len(hull)-1]]
				if a.Orient(b, points[i]) > 0 {
					break
				}
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, i)
		}
		return hull
	}

	lower := build(idx)

	upperOrder := make([]int, len(idx))
	for i, v := range idx {
		upperOrder[len(idx)-1-i] = v
	}
	upper := build(upperOrder)

	// Concatenate, dropping the shared endpoints, to produce a CCW ring.
	if len(lower) > 0 {
		lower = lower[:len(lower)-1]
	}
	if len(upper) > 0 {
		upper = upper[:len(upper)-1]
	}
	return append(lower, upper...)
}

func sortByXY(points []geom.Point, idx []int) {
	sort.Slice(idx, func(i, j int) bool {
		a, b := points[idx[i]], points[idx[j]]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
}

package mesh

import "github.com/arl/go-distmesh/geom"

// FindVisibleEdge scans the Boundary face and returns the first
// half-edge h that has p strictly on the left of its directed edge:
// p.Orient(tail, head) > 0. Half-edges bounding the Boundary face run
// opposite the Normal faces they border, so the left of a border
// half-edge is the exterior side, the side Insert extends the mesh
// into (equivalently, p lies on the right of twin(h)). Returns (0,
// false) if p lies on the wrong side of every border edge (it is not
// visible from outside the current hull).
func (m *Mesh) FindVisibleEdge(p geom.Point) (int, bool) {
	border, ok := m.borderFace()
	if !ok {
		return 0, false
	}
	for it := m.IterFace(border); ; {
		h, ok := it.Next()
		if !ok {
			break
		}
		tail, head := m.TailPoint(h), m.EndPoint(h)
		if p.Orient(tail, head) > 0 {
			return h, true
		}
	}
	return 0, false
}

func (m *Mesh) borderFace() (int, bool) {
	for i, f := range m.Faces {
		if f.Kind == Boundary {
			return i, true
		}
	}
	return 0, false
}

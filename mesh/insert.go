package mesh

import (
	"github.com/arl/assertgo"
	"github.com/arl/go-distmesh/geom"
)

// Insert splits the Boundary or Hole face bounded by h by connecting a
// new vertex at p to tail(h) and head(h). It produces one new Normal
// face of three half-edges; the border edge h is repurposed in place
// as the first of the two new border half-edges (tail->p), and a
// second border half-edge (p->head) is appended, so a single insert
// grows the arena by four half-edges, not five. Insert returns the
// appended border half-edge (p->head).
//
// Precondition: face(h) is Boundary or Hole.
func (m *Mesh) Insert(h int, p geom.Point) int {
	borderFace := m.FaceOf(h)
	kind := m.Faces[borderFace].Kind
	assert.True(kind == Boundary || kind == Hole, "mesh.Insert: h must bound a Boundary or Hole face")

	tail := m.Tail(h)
	head := m.End(h)
	nextH := m.Next(h)
	twinH := m.Twin(h)

	v := m.addVertex(p)
	newFace := m.addFace(0, Normal)

	base := len(m.HalfEdges)
	i1 := base     // tail -> head, faces the unchanged neighbour across twinH
	i2 := base + 1 // head -> v
	i3 := base + 2 // v -> tail, twin of repurposed h
	b2 := base + 3 // v -> head, new border edge

	m.HalfEdges = append(m.HalfEdges,
		HalfEdge{End: head, Next: i2, Prev: i3, Twin: twinH, Face: newFace},
		HalfEdge{End: v, Next: i3, Prev: i1, Twin: b2, Face: newFace},
		HalfEdge{End: tail, Next: i1, Prev: i2, Twin: h, Face: newFace},
		HalfEdge{End: head, Next: nextH, Prev: h, Twin: i2, Face: borderFace},
	)
	m.Faces[newFace].HalfEdge = i1

	m.HalfEdges[twinH].Twin = i1
	m.HalfEdges[nextH].Prev = b2

	if m.Vertices[head].HalfEdge == h {
		m.Vertices[head].HalfEdge = i1
	}
	m.Vertices[v].HalfEdge = i2

	// h becomes the border half-edge tail -> v; its Prev and Face are
	// already correct since it stays within borderFace.
	m.HalfEdges[h].End = v
	m.HalfEdges[h].Next = b2
	m.HalfEdges[h].Twin = i3

	return b2
}

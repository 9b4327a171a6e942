// Package mesh implements the arena-indexed half-edge mesh of spec.md
// §3/§4.4: faces, half-edges and vertices are appended to growable
// slices and referenced purely by index, never relocated within a
// mesh's lifetime. Removal is logical (a face's Kind becomes
// Destroyed).
//
// Grounded on the teacher's recast/polymesh.go and recast/contour.go
// arena style (preallocated parallel slices, assert.True
// preconditions) and on other_examples' iceisfun-gomesh cdt-builder.go
// for the overall insert/legalize staged shape, generalized from a
// constrained-Delaunay pipeline down to the plain incremental
// insert->legalize path spec.md describes.
package mesh

import (
	"github.com/arl/assertgo"
	"github.com/arl/go-distmesh/geom"
)

// Empty is the sentinel arena index meaning "no such reference". It is
// never dereferenced; all traversal code checks against it first.
const Empty = -1

// FaceKind classifies a Face.
type FaceKind int

const (
	// Normal faces bound a triangle.
	Normal FaceKind = iota
	// Hole faces bound an internal void; at most a convenience for
	// callers, the core operations treat them like Boundary.
	Hole
	// Boundary is the single face wrapping the outside of the mesh.
	Boundary
	// Destroyed marks a logically removed face; its slot is never
	// reused.
	Destroyed
)

// Vertex is an arena-indexed mesh vertex.
type Vertex struct {
	// HalfEdge is some half-edge that references this vertex via End.
	HalfEdge int
	Point    geom.Point
}

// HalfEdge is one oriented edge of a face boundary. Half-edge h and
// twin(h) represent the same undirected edge from opposite sides.
type HalfEdge struct {
	End  int // vertex this half-edge points to
	Next int // next half-edge around the same face
	Prev int // previous half-edge around the same face
	Twin int // the opposing half-edge, or Empty
	Face int // the face this half-edge bounds
}

// Face is a triangle (Normal) or the single outside region (Boundary),
// or a logically removed slot (Destroyed).
type Face struct {
	HalfEdge int
	Kind     FaceKind
}

// Mesh is the half-edge arena. The zero value is not usable; construct
// one with Triangle.
type Mesh struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
	Faces     []Face
}

// Triangle seeds a mesh with a single Normal face (u1, u2, u3) and the
// Boundary face wrapping its three outside edges.
//
// Precondition: u1.CCW(u2, u3). Violating it is undefined behaviour
// (fatal assertion in debug builds, garbage topology in release).
func Triangle(u1, u2, u3 geom.Point) *Mesh {
	assert.True(u1.CCW(u2, u3), "mesh.Triangle: (u1, u2, u3) must be CCW")

	m := &Mesh{}

	v0 := m.addVertex(u1)
	v1 := m.addVertex(u2)
	v2 := m.addVertex(u3)

	// Inner half-edges 0,1,2 bound the Normal face in CCW order
	// v0->v1->v2->v0. Outer half-edges 3,4,5 are their twins, bounding
	// the Boundary face in the opposite (CW) cyclic order, per spec.md
	// §4.4.
	normal := m.addFace(0, Normal)
	boundary := m.addFace(3, Boundary)

	m.HalfEdges = append(m.HalfEdges,
		HalfEdge{End: v1, Next: 1, Prev: 2, Twin: 5, Face: normal}, // 0: v0->v1
		HalfEdge{End: v2, Next: 2, Prev: 0, Twin: 4, Face: normal}, // 1: v1->v2
		HalfEdge{End: v0, Next: 0, Prev: 1, Twin: 3, Face: normal}, // 2: v2->v0
		HalfEdge{End: v2, Next: 4, Prev: 5, Twin: 2, Face: boundary}, // 3: v0->v2 (twin of 2)
		HalfEdge{End: v1, Next: 5, Prev: 3, Twin: 1, Face: boundary}, // 4: v2->v1 (twin of 1)
		HalfEdge{End: v0, Next: 3, Prev: 4, Twin: 0, Face: boundary}, // 5: v1->v0 (twin of 0)
	)

	m.Vertices[v0].HalfEdge = 2 // v2->v0
	m.Vertices[v1].HalfEdge = 0 // v0->v1
	m.Vertices[v2].HalfEdge = 1 // v1->v2

	return m
}

func (m *Mesh) addVertex(p geom.Point) int {
	m.Vertices = append(m.Vertices, Vertex{HalfEdge: Empty, Point: p})
	return len(m.Vertices) - 1
}

func (m *Mesh) addFace(halfEdge int, kind FaceKind) int {
	m.Faces = append(m.Faces, Face{HalfEdge: halfEdge, Kind: kind})
	return len(m.Faces) - 1
}

// Next returns the index, within the same face, of the half-edge
// following h.
func (m *Mesh) Next(h int) int { return m.HalfEdges[h].Next }

// Prev returns the index, within the same face, of the half-edge
// preceding h.
func (m *Mesh) Prev(h int) int { return m.HalfEdges[h].Prev }

// Twin returns the opposing half-edge of h, or Empty.
func (m *Mesh) Twin(h int) int { return m.HalfEdges[h].Twin }

// End returns the vertex index h points to.
func (m *Mesh) End(h int) int { return m.HalfEdges[h].End }

// EndPoint returns the point of the vertex h points to.
func (m *Mesh) EndPoint(h int) geom.Point { return m.Vertices[m.End(h)].Point }

// Tail returns the vertex index h points from (End(Prev(h))).
func (m *Mesh) Tail(h int) int { return m.End(m.Prev(h)) }

// TailPoint returns the point of the vertex h points from.
func (m *Mesh) TailPoint(h int) geom.Point { return m.Vertices[m.Tail(h)].Point }

// FaceOf returns the face half-edge h bounds.
func (m *Mesh) FaceOf(h int) int { return m.HalfEdges[h].Face }

// Stats returns the number of live (non-Destroyed) Normal faces, the
// number of half-edges, and the number of vertices. A convenience for
// tests and the CLI, not a new topological notion.
func (m *Mesh) Stats() (faces, halfedges, vertices int) {
	for it := m.IterFaces(); ; {
		_, ok := it.Next()
		if !ok {
			break
		}
		faces++
	}
	return faces, len(m.HalfEdges), len(m.Vertices)
}

// Validate asserts the arena is internally consistent: every half-edge
// index referenced by a face, vertex or another half-edge falls within
// HalfEdges' bounds, and similarly for vertex and face references.
// Returns false (rather than panicking) on the first inconsistency
// found, so callers can assert on it in tests.
func (m *Mesh) Validate() bool {
	nv, nh, nf := len(m.Vertices), len(m.HalfEdges), len(m.Faces)
	inRange := func(i, n int) bool { return i == Empty || (i >= 0 && i < n) }

	for _, v := range m.Vertices {
		if !inRange(v.HalfEdge, nh) {
			return false
		}
	}
	for _, h := range m.HalfEdges {
		if !inRange(h.End, nv) || !inRange(h.Next, nh) || !inRange(h.Prev, nh) ||
			!inRange(h.Twin, nh) || !inRange(h.Face, nf) {
			return false
		}
	}
	for _, f := range m.Faces {
		if f.Kind == Destroyed {
			continue
		}
		if !inRange(f.HalfEdge, nh) {
			return false
		}
	}

	// I1: next(next(next(h))) == h for every half-edge bounding a
	// Normal face.
	for h, he := range m.HalfEdges {
		if m.Faces[he.Face].Kind != Normal {
			continue
		}
		if m.Next(m.Next(m.Next(h))) != h {
			return false
		}
	}
	// I2/I3: twin(twin(h)) == h and twin(h) != h.
	for h, he := range m.HalfEdges {
		if he.Twin == Empty {
			continue
		}
		if he.Twin == h {
			return false
		}
		if m.HalfEdges[he.Twin].Twin != h {
			return false
		}
	}
	return true
}

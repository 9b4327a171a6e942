package mesh

import "github.com/arl/assertgo"

// Flip rotates the diagonal of the quadrilateral formed by the two
// triangles sharing h. Precondition: h and its twin both bound Normal
// faces (flipping across a border is undefined).
func (m *Mesh) Flip(h int) {
	twinH := m.Twin(h)
	face1 := m.FaceOf(h)
	face2 := m.FaceOf(twinH)
	assert.True(m.Faces[face1].Kind == Normal && m.Faces[face2].Kind == Normal,
		"mesh.Flip: h and its twin must both bound Normal faces")

	a := m.Tail(h)
	b := m.End(h)

	eBC := m.Next(h)     // b -> c, in face1
	eCA := m.Prev(h)     // c -> a, in face1
	eAD := m.Next(twinH) // a -> d, in face2
	eDB := m.Prev(twinH) // d -> b, in face2

	c := m.End(eBC)
	d := m.End(eAD)

	// h becomes the new diagonal c->d, joining face2's triangle (d,b,c).
	m.HalfEdges[h].End = d
	m.HalfEdges[h].Next = eDB
	m.HalfEdges[h].Prev = eBC
	m.HalfEdges[h].Face = face2

	m.HalfEdges[eBC].Next = h
	m.HalfEdges[eBC].Prev = eDB
	m.HalfEdges[eBC].Face = face2

	m.HalfEdges[eDB].Next = eBC
	m.HalfEdges[eDB].Prev = h

	// twin(h) becomes the new diagonal d->c, joining face1's triangle (c,a,d).
	m.HalfEdges[twinH].End = c
	m.HalfEdges[twinH].Next = eCA
	m.HalfEdges[twinH].Prev = eAD
	m.HalfEdges[twinH].Face = face1

	m.HalfEdges[eAD].Next = twinH
	m.HalfEdges[eAD].Prev = eCA
	m.HalfEdges[eAD].Face = face1

	m.HalfEdges[eCA].Next = eAD
	m.HalfEdges[eCA].Prev = twinH

	if m.Faces[face1].HalfEdge == h || m.Faces[face1].HalfEdge == eBC {
		m.Faces[face1].HalfEdge = twinH
	}
	if m.Faces[face2].HalfEdge == twinH || m.Faces[face2].HalfEdge == eAD {
		m.Faces[face2].HalfEdge = h
	}

	if m.Vertices[a].HalfEdge == twinH {
		m.Vertices[a].HalfEdge = eCA
	}
	if m.Vertices[b].HalfEdge == h {
		m.Vertices[b].HalfEdge = eDB
	}
	m.Vertices[c].HalfEdge = twinH
	m.Vertices[d].HalfEdge = h

	assert.True(m.End(m.Next(m.Next(h))) == m.End(twinH),
		"mesh.Flip: post-condition failed, end(next(next(h))) must equal end(twin(h))")
}

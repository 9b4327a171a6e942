package mesh

// Lazy face/edge/vertex walks are stateful value objects carrying a
// mesh reference and a cursor, grounded on the teacher's recast/contour.go
// walk-the-boundary style (a running index advanced one step per call,
// rather than a materialized slice).

// FaceIter walks the half-edges bounding a single face exactly once,
// in the face's stored orientation.
type FaceIter struct {
	m       *Mesh
	start   int
	cur     int
	started bool
}

// IterFace returns an iterator over the half-edges bounding face,
// starting from its representative half-edge.
func (m *Mesh) IterFace(face int) *FaceIter {
	return &FaceIter{m: m, start: m.Faces[face].HalfEdge, cur: m.Faces[face].HalfEdge}
}

// Next returns the next half-edge index and true, or (0, false) once
// the face boundary has been walked once.
func (it *FaceIter) Next() (int, bool) {
	if it.started && it.cur == it.start {
		return 0, false
	}
	it.started = true
	h := it.cur
	it.cur = it.m.Next(it.cur)
	return h, true
}

// FacesIter walks every Normal face index.
type FacesIter struct {
	m   *Mesh
	cur int
}

// IterFaces returns an iterator over all Normal face indices, skipping
// Boundary, Hole and Destroyed faces.
func (m *Mesh) IterFaces() *FacesIter { return &FacesIter{m: m, cur: 0} }

// Next returns the next Normal face index and true, or (0, false) once
// all faces have been visited.
func (it *FacesIter) Next() (int, bool) {
	for it.cur < len(it.m.Faces) {
		i := it.cur
		it.cur++
		if it.m.Faces[i].Kind == Normal {
			return i, true
		}
	}
	return 0, false
}

// VerticesIter walks every vertex index, including ones referenced
// only by the Boundary face.
type VerticesIter struct {
	m   *Mesh
	cur int
}

// IterVertices returns an iterator over all vertex indices.
func (m *Mesh) IterVertices() *VerticesIter { return &VerticesIter{m: m, cur: 0} }

// Next returns the next vertex index and true, or (0, false) once all
// vertices have been visited.
func (it *VerticesIter) Next() (int, bool) {
	if it.cur >= len(it.m.Vertices) {
		return 0, false
	}
	i := it.cur
	it.cur++
	return i, true
}

// EdgeIter walks half-edges via a BFS over faces starting from some
// Normal face. A visited bitmap keeps each face from being queued more
// than once, and each half-edge belongs to exactly one face, so every
// half-edge of a reachable face is yielded exactly once.
type EdgeIter struct {
	m       *Mesh
	visited []bool
	faces   []int // pending face queue (FIFO)
	current []int // half-edges of the face currently being drained
	pos     int
}

// IterEdges returns a BFS-ordered half-edge iterator starting from the
// first Normal face found. If the mesh has no Normal face the
// iterator is immediately exhausted.
func (m *Mesh) IterEdges() *EdgeIter {
	it := &EdgeIter{m: m, visited: make([]bool, len(m.Faces))}
	fit := m.IterFaces()
	if f, ok := fit.Next(); ok {
		it.pushFace(f)
	}
	return it
}

func (it *EdgeIter) pushFace(face int) {
	if face == Empty || it.visited[face] {
		return
	}
	it.visited[face] = true
	it.faces = append(it.faces, face)
}

// Next returns the next half-edge index and true, or (0, false) once
// every reachable face has been drained.
func (it *EdgeIter) Next() (int, bool) {
	for {
		if it.pos < len(it.current) {
			h := it.current[it.pos]
			it.pos++
			return h, true
		}
		if len(it.faces) == 0 {
			return 0, false
		}
		face := it.faces[0]
		it.faces = it.faces[1:]

		it.current = it.current[:0]
		it.pos = 0
		for fit := it.m.IterFace(face); ; {
			h, ok := fit.Next()
			if !ok {
				break
			}
			it.current = append(it.current, h)
			if twin := it.m.Twin(h); twin != Empty {
				it.pushFace(it.m.FaceOf(twin))
			}
		}
	}
}

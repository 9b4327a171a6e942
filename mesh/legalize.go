package mesh

// IsIllegal reports whether h violates the Delaunay condition against
// its twin's triangle. Border edges (hull edges) are legal by fiat,
// whichever of their two half-edges h is.
//
// The argument order fed to InCircle below (pr, p1, pl rather than the
// canonical pl, pr, p1) is preserved from the source material this
// module generalizes; flagged, not re-derived, per the accompanying
// design notes.
func (m *Mesh) IsIllegal(h int) bool {
	twin := m.Twin(h)
	if twin == Empty || m.Faces[m.FaceOf(h)].Kind != Normal || m.Faces[m.FaceOf(twin)].Kind != Normal {
		return false
	}

	p0 := m.EndPoint(m.Next(h))
	pr := m.EndPoint(m.Prev(h))
	pl := m.EndPoint(m.Prev(twin))
	p1 := m.EndPoint(m.Next(twin))
	return p0.InCircle(pr, p1, pl)
}

// Legalize restores the Delaunay condition on h and outward from it,
// recursively. If h is already legal this is a no-op.
//
// After Flip(h), the vertex that was End(Next(h)) before the flip (the
// apex opposite h, typically the vertex just inserted) is a corner of
// both new triangles. The edges opposite it, Next(h) and Prev(twin) in
// their post-flip state, are the ones whose legality can have changed,
// so recursion continues there. Flip's implementation fixes which slot
// ends up where, so no branching on the flip's outcome is needed.
func (m *Mesh) Legalize(h int) {
	if !m.IsIllegal(h) {
		return
	}
	twin := m.Twin(h)
	m.Flip(h)
	m.Legalize(m.Next(h))
	m.Legalize(m.Prev(twin))
}

package trimesh

// RecomputeGeometry recomputes the barycenter, bounding radius, and
// per-vertex normals of m from its current Vertices/FaceVertices. It is run
// after any structural change produced by this package (Importer,
// SubdivisionEngine) — but not by the half-edge dump loader, which trusts
// normals as read from the file (see recomputeExtent).
func RecomputeGeometry(m *Mesh) {
	recomputeExtent(m)
	computeNormals(m)
}

// recomputeExtent recomputes only the barycenter and bounding radius.
func recomputeExtent(m *Mesh) {
	m.CentreOfGravity = barycenter(m.Vertices)
	m.ObjectSize = boundingRadius(m.Vertices, m.CentreOfGravity)
}

// barycenter is the arithmetic mean of vertices. An empty slice yields the
// zero vector.
func barycenter(vertices []Vector3) Vector3 {
	if len(vertices) == 0 {
		return Vector3{}
	}
	var sum Vector3
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float32(len(vertices)))
}

// boundingRadius is the maximum distance from centre to any vertex. An
// empty slice yields 0.
func boundingRadius(vertices []Vector3, centre Vector3) float32 {
	var radius float32
	for _, v := range vertices {
		if d := v.DistanceTo(centre); d > radius {
			radius = d
		}
	}
	return radius
}

// computeNormals accumulates, for each face (p,q,r), the cross product
// (q-p) x (r-p) onto each of its three incident vertex normals, then
// normalizes every accumulated vector to unit length. Degenerate or
// zero-length accumulations are left as the zero vector.
func computeNormals(m *Mesh) {
	normals := make([]Vector3, len(m.Vertices))

	for f := 0; f < len(m.FaceVertices); f += 3 {
		pId, qId, rId := m.FaceVertices[f], m.FaceVertices[f+1], m.FaceVertices[f+2]
		p, q, r := m.Vertices[pId], m.Vertices[qId], m.Vertices[rId]

		cross := q.Sub(p).Cross(r.Sub(p))

		normals[pId] = normals[pId].Add(cross)
		normals[qId] = normals[qId].Add(cross)
		normals[rId] = normals[rId].Add(cross)
	}

	for i, n := range normals {
		normals[i] = n.Unit()
	}

	m.Normals = normals
}

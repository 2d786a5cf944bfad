package trimesh

import "math"

// Loop's stencil weights for the edge and vertex rules below.
const (
	nearNeighbourWeight = 3.0 / 8.0
	farNeighbourWeight  = 1.0 / 8.0
	n3Alpha             = 3.0 / 16.0
)

// fullEdge pairs the two half-edges {h, twin(h)} that share one undirected
// edge of the mesh being subdivided.
type fullEdge struct {
	h, t HalfEdgeId
}

// Subdivide returns a new Mesh representing one Loop subdivision step of m.
// It does not mutate m: every positional stencil reads exclusively from m,
// even though the new mesh's topology is built first.
//
// Central subfaces of every original face are emitted before any adjacent
// subface: this order is part of the contract because it determines the
// resulting half-edge ids.
func (m *Mesh) Subdivide() (*Mesh, error) {
	oldVertexCount := len(m.Vertices)
	faceCount := m.FaceCount()

	fullEdgeOf, fullEdges := indexFullEdges(m)
	numFullEdges := len(fullEdges)

	result := &Mesh{
		Vertices:     make([]Vector3, oldVertexCount+numFullEdges),
		FaceVertices: buildSubdividedFaces(m, fullEdgeOf, faceCount, oldVertexCount),
	}

	result.buildFirstDirectedEdge()
	if err := result.buildTwins(); err != nil {
		return nil, err
	}

	positionEdgeVertices(m, fullEdges, result.Vertices[oldVertexCount:])
	if err := positionOldVertices(m, result.Vertices[:oldVertexCount]); err != nil {
		return nil, err
	}

	RecomputeGeometry(result)
	return result, nil
}

// indexFullEdges assigns every half-edge of m a full-edge id, the id shared
// by h and Twin[h].
func indexFullEdges(m *Mesh) (fullEdgeOf []uint32, fullEdges []fullEdge) {
	fullEdgeOf = make([]uint32, len(m.FaceVertices))
	for i := range fullEdgeOf {
		fullEdgeOf[i] = NoID
	}

	for h := range m.FaceVertices {
		if fullEdgeOf[h] != NoID {
			continue
		}
		k := uint32(len(fullEdges))
		twin := m.Twin[h]
		fullEdgeOf[h] = k
		fullEdgeOf[twin] = k
		fullEdges = append(fullEdges, fullEdge{h: HalfEdgeId(h), t: twin})
	}
	return fullEdgeOf, fullEdges
}

// buildSubdividedFaces emits, for each original face, a central subface
// (vc0,vc1,vc2) and three adjacent subfaces (v0,vc0,vc2), (v1,vc1,vc0),
// (v2,vc2,vc1) — all central faces first in face order, then all adjacent
// faces in face order. vcI is the edge vertex of half-edge 3f+I, which runs
// from vI to the next corner, so each adjacent subface keeps its corner's
// two incident edge vertices and the original winding.
func buildSubdividedFaces(m *Mesh, fullEdgeOf []uint32, faceCount, oldVertexCount int) []VertexId {
	faces := make([]VertexId, 0, 12*faceCount)

	edgeVertex := func(h int) VertexId {
		return VertexId(oldVertexCount) + fullEdgeOf[h]
	}

	for f := 0; f < faceCount; f++ {
		vc0, vc1, vc2 := edgeVertex(3*f), edgeVertex(3*f+1), edgeVertex(3*f+2)
		faces = append(faces, vc0, vc1, vc2)
	}

	for f := 0; f < faceCount; f++ {
		v0, v1, v2 := m.FaceVertices[3*f], m.FaceVertices[3*f+1], m.FaceVertices[3*f+2]
		vc0, vc1, vc2 := edgeVertex(3*f), edgeVertex(3*f+1), edgeVertex(3*f+2)
		faces = append(faces,
			v0, vc0, vc2,
			v1, vc1, vc0,
			v2, vc2, vc1,
		)
	}

	return faces
}

// positionEdgeVertices applies Loop's edge stencil to every full edge of m,
// writing results into dest (the new mesh's edge-vertex slice, in full-edge
// order). All reads are from m, the mesh being subdivided.
func positionEdgeVertices(m *Mesh, fullEdges []fullEdge, dest []Vector3) {
	for k, edge := range fullEdges {
		va, vb := m.Endpoints(edge.h)
		vc := m.FaceVertices[PrevInFace(edge.h)]
		vd := m.FaceVertices[PrevInFace(edge.t)]

		near := m.Vertices[va].Add(m.Vertices[vb]).Scale(nearNeighbourWeight)
		far := m.Vertices[vc].Add(m.Vertices[vd]).Scale(farNeighbourWeight)
		dest[k] = near.Add(far)
	}
}

// positionOldVertices applies Loop's vertex stencil to every old vertex of
// m, writing results into dest (the new mesh's old-vertex slice, by
// VertexId). All reads are from m's old 1-ring, before any new vertex
// exists.
func positionOldVertices(m *Mesh, dest []Vector3) error {
	for v := range dest {
		var sum Vector3
		n := 0
		err := m.VisitOneRing(VertexId(v), func(_ HalfEdgeId, _, head VertexId) {
			sum = sum.Add(m.Vertices[head])
			n++
		})
		if err != nil {
			return err
		}

		alpha := loopAlpha(n)
		dest[v] = m.Vertices[v].Scale(1 - float32(n)*alpha).Add(sum.Scale(alpha))
	}
	return nil
}

// loopAlpha is Loop's smoothing weight for a vertex of degree n.
func loopAlpha(n int) float32 {
	if n == 3 {
		return n3Alpha
	}
	beta := 3.0/8.0 + 0.25*math.Cos(2*math.Pi/float64(n))
	return float32((5.0/8.0 - beta*beta) / float64(n))
}

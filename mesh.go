package trimesh

import (
	"log"
	"math"
)

// VertexId, FaceId and HalfEdgeId are the three index spaces described in
// the data model: vertex ids index Mesh.Vertices/Normals/FirstDirectedEdge,
// face ids are implicit (face f owns half-edges [3f, 3f+1, 3f+2]), and
// half-edge ids index Mesh.FaceVertices/Twin.
type (
	VertexId   = uint32
	FaceId     = uint32
	HalfEdgeId = uint32
)

// NoID is the sentinel "absent" value for any of the three id spaces. It is
// never a valid index: no mesh built by this package reaches 2^32-1
// half-edges. It must never be used to index into a Mesh array directly.
const NoID = math.MaxUint32

// Mesh is a half-edge representation of a closed, 2-manifold triangulated
// surface. Its five parallel arrays are owned exclusively by the Mesh value
// that holds them; callers must not mutate them directly, only through the
// exported operations (Importer, half-edge deserializer, SubdivisionEngine).
type Mesh struct {
	// Vertices holds the spatial position of each vertex.
	Vertices []Vector3
	// Normals holds the unit normal at each vertex (zero when degenerate).
	Normals []Vector3
	// FaceVertices holds, for half-edge h, the VertexId at its tail. Length
	// is always a multiple of 3: half-edges [3f, 3f+1, 3f+2] form face f.
	FaceVertices []VertexId
	// FirstDirectedEdge holds, for vertex v, some half-edge whose tail is v.
	FirstDirectedEdge []HalfEdgeId
	// Twin holds, for half-edge h, the half-edge sharing the same undirected
	// edge but oriented oppositely.
	Twin []HalfEdgeId

	// CentreOfGravity is the barycenter of Vertices.
	CentreOfGravity Vector3
	// ObjectSize is the radius of the smallest sphere centred at
	// CentreOfGravity that contains every vertex.
	ObjectSize float32
}

// NewMesh returns an empty mesh: empty arrays, zero barycenter, zero size.
// It is a valid target for LoadTriangleSoup or LoadHalfEdgeDump.
func NewMesh() *Mesh {
	return &Mesh{}
}

// FaceCount returns the number of faces, |H|/3.
func (m *Mesh) FaceCount() int {
	return len(m.FaceVertices) / 3
}

// NextInFace returns the half-edge following h within its face, per
// Invariant 2: nextInFace(h) = 3*floor(h/3) + (h+1) mod 3.
func NextInFace(h HalfEdgeId) HalfEdgeId {
	face := h / 3
	return 3*face + (h+1)%3
}

// PrevInFace returns the half-edge preceding h within its face, per
// Invariant 3: prevInFace(h) = 3*floor(h/3) + (h+2) mod 3.
func PrevInFace(h HalfEdgeId) HalfEdgeId {
	face := h / 3
	return 3*face + (h+2)%3
}

// Endpoints returns the tail and head vertex of half-edge h, per
// Invariant 4: tail = faceVertices[h], head = faceVertices[nextInFace(h)].
func (m *Mesh) Endpoints(h HalfEdgeId) (tail, head VertexId) {
	return m.FaceVertices[h], m.FaceVertices[NextInFace(h)]
}

// FindHalfEdge performs a linear scan over every half-edge and returns the
// unique half-edge whose endpoints are (from, to), or NoID if none exists.
// It is O(|H|) by contract: callers needing repeated lookups after
// construction must use Twin instead. LoadTriangleSoup and Subdivide use an
// accelerated hash-based equivalent internally; FindHalfEdge remains the
// plain reference implementation.
func (m *Mesh) FindHalfEdge(from, to VertexId) HalfEdgeId {
	for h := range m.FaceVertices {
		edgeFrom, edgeTo := m.Endpoints(HalfEdgeId(h))
		if edgeFrom == from && edgeTo == to {
			return HalfEdgeId(h)
		}
	}
	return NoID
}

// RingVisitor is called once per outgoing half-edge during VisitOneRing,
// with the edge id and its tail/head vertices (tail is always the vertex
// being visited, head is the neighbour reached by that edge).
type RingVisitor func(edge HalfEdgeId, tail, head VertexId)

// VisitOneRing walks the outgoing half-edges at vertex v in order:
// h0 = FirstDirectedEdge[v]; h(i+1) = NextInFace(Twin[h(i)]); stopping when
// h(i+1) = h0. On a closed 2-manifold this terminates and visits every
// outgoing half-edge at v exactly once. If v is out of range, it logs an
// InvalidVertex error and returns without invoking visit.
func (m *Mesh) VisitOneRing(v VertexId, visit RingVisitor) error {
	if int(v) >= len(m.Vertices) {
		err := &InvalidVertex{Vertex: v}
		log.Printf("%v", err)
		return err
	}

	first := m.FirstDirectedEdge[v]
	current := first
	for {
		tail, head := m.Endpoints(current)
		visit(current, tail, head)
		current = NextInFace(m.Twin[current])
		if current == first {
			return nil
		}
	}
}

// Degree returns the number of vertices adjacent to v (the length of its
// 1-ring), by walking VisitOneRing and counting steps.
func (m *Mesh) Degree(v VertexId) (int, error) {
	n := 0
	err := m.VisitOneRing(v, func(HalfEdgeId, VertexId, VertexId) {
		n++
	})
	return n, err
}

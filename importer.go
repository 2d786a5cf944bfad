package trimesh

import (
	"bufio"
	"fmt"
	"io"
)

// LoadTriangleSoup populates m from a triangle-soup stream: a triangle count
// T followed by 3T whitespace-separated Vector3 positions in triangle order.
// Vertices are coalesced by exact position equality (Vector3.Equal), twin
// half-edges are paired by matching reversed endpoints, and the geometry
// summary is recomputed on success.
//
// Vertex coalescing and twin pairing use hash maps for O(1) average lookup
// instead of a plain O(|H|) scan; an exact-equality map preserves the plain
// scan's semantics by construction, so the acceleration is safe.
//
// m is left partially populated on failure; callers should discard it.
func (m *Mesh) LoadTriangleSoup(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	nextToken := func(what string) (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", wrapRead(what, err)
			}
			return "", wrapRead(what, io.ErrUnexpectedEOF)
		}
		return scanner.Text(), nil
	}

	triangleCount, err := readUint(nextToken, "triangle count")
	if err != nil {
		return err
	}

	totalVertices := int(triangleCount) * 3

	vertexIndex := make(map[Vector3]VertexId, totalVertices)
	m.Vertices = make([]Vector3, 0, totalVertices)
	m.FaceVertices = make([]VertexId, 0, totalVertices)

	for i := 0; i < totalVertices; i++ {
		x, err := readFloat(nextToken, "vertex x")
		if err != nil {
			return err
		}
		y, err := readFloat(nextToken, "vertex y")
		if err != nil {
			return err
		}
		z, err := readFloat(nextToken, "vertex z")
		if err != nil {
			return err
		}

		p := NewVector3(x, y, z)
		vid, known := vertexIndex[p]
		if !known {
			vid = VertexId(len(m.Vertices))
			m.Vertices = append(m.Vertices, p)
			vertexIndex[p] = vid
		}
		m.FaceVertices = append(m.FaceVertices, vid)
	}

	m.buildFirstDirectedEdge()

	if err := m.buildTwins(); err != nil {
		return err
	}

	RecomputeGeometry(m)
	return nil
}

// buildFirstDirectedEdge resizes FirstDirectedEdge to len(Vertices), absent
// everywhere, then for every half-edge in ascending order sets
// FirstDirectedEdge[tail] the first time that vertex is seen as a tail.
func (m *Mesh) buildFirstDirectedEdge() {
	m.FirstDirectedEdge = make([]HalfEdgeId, len(m.Vertices))
	for i := range m.FirstDirectedEdge {
		m.FirstDirectedEdge[i] = NoID
	}
	for h := range m.FaceVertices {
		tail := m.FaceVertices[h]
		if m.FirstDirectedEdge[tail] == NoID {
			m.FirstDirectedEdge[tail] = HalfEdgeId(h)
		}
	}
}

// buildTwins resizes Twin to len(FaceVertices), absent everywhere, then
// pairs every half-edge with the reverse-endpoint half-edge using a hash map
// keyed by (from,to), failing with OtherHalfNotFound when no twin exists.
func (m *Mesh) buildTwins() error {
	m.Twin = make([]HalfEdgeId, len(m.FaceVertices))
	for i := range m.Twin {
		m.Twin[i] = NoID
	}

	byEndpoints := make(map[[2]VertexId]HalfEdgeId, len(m.FaceVertices))
	for h := range m.FaceVertices {
		from, to := m.Endpoints(HalfEdgeId(h))
		byEndpoints[[2]VertexId{from, to}] = HalfEdgeId(h)
	}

	for h := range m.FaceVertices {
		he := HalfEdgeId(h)
		if m.Twin[he] != NoID {
			continue
		}
		from, to := m.Endpoints(he)
		other, found := byEndpoints[[2]VertexId{to, from}]
		if !found {
			return &OtherHalfNotFound{EdgeID: he, From: m.Vertices[from], To: m.Vertices[to]}
		}
		m.Twin[he] = other
		m.Twin[other] = he
	}
	return nil
}

func readUint(next func(string) (string, error), what string) (uint64, error) {
	tok, err := next(what)
	if err != nil {
		return 0, err
	}
	var v uint64
	if _, err := fmt.Sscanf(tok, "%d", &v); err != nil {
		return 0, wrapRead(what, err)
	}
	return v, nil
}

func readFloat(next func(string) (string, error), what string) (float32, error) {
	tok, err := next(what)
	if err != nil {
		return 0, err
	}
	var v float32
	if _, err := fmt.Sscanf(tok, "%g", &v); err != nil {
		return 0, wrapRead(what, err)
	}
	return v, nil
}

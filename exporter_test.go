package trimesh

import (
	"strconv"
	"strings"
	"testing"
)

func TestWriteHalfEdgeDumpThenLoadRoundTrips(t *testing.T) {
	// Writing a mesh to the half-edge dump format and loading it back must
	// reproduce the mesh within tolerance.
	m, err := loadTriSoup(tetrahedronTriSoup())
	if err != nil {
		t.Fatalf("loadTriSoup() error = %v", err)
	}

	var buf strings.Builder
	if err := m.WriteHalfEdgeDump(&buf); err != nil {
		t.Fatalf("WriteHalfEdgeDump() error = %v", err)
	}

	loaded := NewMesh()
	if err := loaded.LoadHalfEdgeDump(strings.NewReader(buf.String())); err != nil {
		t.Fatalf("LoadHalfEdgeDump() error = %v", err)
	}

	assertMeshesEqual(t, m, loaded)
}

func TestWriteHalfEdgeDumpRecordCounts(t *testing.T) {
	m, err := loadTriSoup(tetrahedronTriSoup())
	if err != nil {
		t.Fatalf("loadTriSoup() error = %v", err)
	}

	var buf strings.Builder
	if err := m.WriteHalfEdgeDump(&buf); err != nil {
		t.Fatalf("WriteHalfEdgeDump() error = %v", err)
	}

	var vertices, normals, fdes, faces, others int
	for _, line := range strings.Split(buf.String(), "\n") {
		switch {
		case strings.HasPrefix(line, "Vertex "):
			vertices++
		case strings.HasPrefix(line, "Normal "):
			normals++
		case strings.HasPrefix(line, "FirstDirectedEdge "):
			fdes++
		case strings.HasPrefix(line, "Face "):
			faces++
		case strings.HasPrefix(line, "OtherHalf "):
			others++
		}
	}

	if vertices != len(m.Vertices) {
		t.Errorf("Vertex records = %d, want %d", vertices, len(m.Vertices))
	}
	if normals != len(m.Normals) {
		t.Errorf("Normal records = %d, want %d", normals, len(m.Normals))
	}
	if fdes != len(m.FirstDirectedEdge) {
		t.Errorf("FirstDirectedEdge records = %d, want %d", fdes, len(m.FirstDirectedEdge))
	}
	if faces != m.FaceCount() {
		t.Errorf("Face records = %d, want %d", faces, m.FaceCount())
	}
	if others != len(m.Twin) {
		t.Errorf("OtherHalf records = %d, want %d", others, len(m.Twin))
	}
}

func TestWriteSurfaceFormat(t *testing.T) {
	m, err := loadTriSoup(tetrahedronTriSoup())
	if err != nil {
		t.Fatalf("loadTriSoup() error = %v", err)
	}

	var buf strings.Builder
	if err := m.WriteSurface(&buf); err != nil {
		t.Fatalf("WriteSurface() error = %v", err)
	}

	var vLines, vnLines, fLines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			vLines = append(vLines, line)
		case strings.HasPrefix(line, "vn "):
			vnLines = append(vnLines, line)
		case strings.HasPrefix(line, "f "):
			fLines = append(fLines, line)
		}
	}

	if len(vLines) != len(m.Vertices) {
		t.Errorf("v lines = %d, want %d", len(vLines), len(m.Vertices))
	}
	if len(vnLines) != len(m.Normals) {
		t.Errorf("vn lines = %d, want %d", len(vnLines), len(m.Normals))
	}
	if len(fLines) != m.FaceCount() {
		t.Errorf("f lines = %d, want %d", len(fLines), m.FaceCount())
	}

	// Face indices must be 1-based.
	fields := strings.Fields(fLines[0])
	for _, field := range fields[1:] {
		corner := strings.SplitN(field, "/", 2)[0]
		n, err := strconv.Atoi(corner)
		if err != nil {
			t.Fatalf("face corner %q is not numeric: %v", field, err)
		}
		if n < 1 {
			t.Errorf("face corner index = %d, want >= 1 (1-based)", n)
		}
	}
}

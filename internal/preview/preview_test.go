package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"trimesh"
)

func tetrahedron(t *testing.T) *trimesh.Mesh {
	t.Helper()
	soup := "4\n" +
		"0 0 0\n1 0 0\n0 1 0\n" +
		"0 0 0\n0 0 1\n1 0 0\n" +
		"0 0 0\n0 1 0\n0 0 1\n" +
		"1 0 0\n0 0 1\n0 1 0\n"

	m := trimesh.NewMesh()
	if err := m.LoadTriangleSoup(strings.NewReader(soup)); err != nil {
		t.Fatalf("LoadTriangleSoup() error = %v", err)
	}
	return m
}

func TestSnapshotDimensions(t *testing.T) {
	m := tetrahedron(t)

	img, err := Snapshot(m, mgl32.QuatIdent(), 64, 48)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 48 {
		t.Errorf("Snapshot() bounds = %v, want 64x48", bounds)
	}
}

func TestWriteWEBPProducesNonEmptyOutput(t *testing.T) {
	m := tetrahedron(t)

	img, err := Snapshot(m, mgl32.QuatIdent(), 32, 32)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteWEBP(&buf, img); err != nil {
		t.Fatalf("WriteWEBP() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Errorf("WriteWEBP() wrote 0 bytes")
	}
}

func TestSnapshotHandlesZeroObjectSize(t *testing.T) {
	// A mesh with all vertices coincident (ObjectSize 0) must not divide
	// by zero when normalizing coordinates.
	m := trimesh.NewMesh()
	m.Vertices = []trimesh.Vector3{trimesh.NewVector3(0, 0, 0)}
	m.Normals = []trimesh.Vector3{trimesh.NewVector3(0, 0, 1)}
	m.FaceVertices = nil
	m.CentreOfGravity = trimesh.NewVector3(0, 0, 0)
	m.ObjectSize = 0

	if _, err := Snapshot(m, mgl32.QuatIdent(), 16, 16); err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
}

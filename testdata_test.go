package trimesh

import (
	"fmt"
	"strings"
)

// tetraA..tetraD are the four tetrahedron corners used throughout the tests.
var (
	tetraA = NewVector3(0, 0, 0)
	tetraB = NewVector3(1, 0, 0)
	tetraC = NewVector3(0, 1, 0)
	tetraD = NewVector3(0, 0, 1)
)

// tetrahedronTriSoup renders a closed tetrahedron's triangle soup: faces
// (A,B,C),(A,D,B),(A,C,D),(B,D,C).
func tetrahedronTriSoup() string {
	faces := [][3]Vector3{
		{tetraA, tetraB, tetraC},
		{tetraA, tetraD, tetraB},
		{tetraA, tetraC, tetraD},
		{tetraB, tetraD, tetraC},
	}
	return triSoup(faces)
}

// triSoup renders a triangle-soup stream from a list of triangles.
func triSoup(faces [][3]Vector3) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", len(faces))
	for _, f := range faces {
		for _, v := range f {
			fmt.Fprintf(&sb, "%g %g %g\n", v.X, v.Y, v.Z)
		}
	}
	return sb.String()
}

// loadTriSoup loads a triangle-soup string into a fresh Mesh.
func loadTriSoup(soup string) (*Mesh, error) {
	m := NewMesh()
	err := m.LoadTriangleSoup(strings.NewReader(soup))
	return m, err
}

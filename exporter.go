package trimesh

import (
	"bufio"
	"fmt"
	"io"
)

// WriteHalfEdgeDump writes m in the half-edge dump format: a comment
// header, then dense, sequentially-indexed Vertex, Normal,
// FirstDirectedEdge, Face, and OtherHalf records, in that order.
func (m *Mesh) WriteHalfEdgeDump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Created by trimesh\n#\n# Surface vertices=%d faces=%d\n#\n",
		len(m.Vertices), m.FaceCount())

	for i, v := range m.Vertices {
		if _, err := fmt.Fprintf(bw, "Vertex %d %f %f %f\n", i, v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	for i, n := range m.Normals {
		if _, err := fmt.Fprintf(bw, "Normal %d %f %f %f\n", i, n.X, n.Y, n.Z); err != nil {
			return err
		}
	}
	for i, h := range m.FirstDirectedEdge {
		if _, err := fmt.Fprintf(bw, "FirstDirectedEdge %d %d\n", i, h); err != nil {
			return err
		}
	}
	for f := 0; f < len(m.FaceVertices); f += 3 {
		if _, err := fmt.Fprintf(bw, "Face %d %d %d %d\n", f/3,
			m.FaceVertices[f], m.FaceVertices[f+1], m.FaceVertices[f+2]); err != nil {
			return err
		}
	}
	for i, t := range m.Twin {
		if _, err := fmt.Fprintf(bw, "OtherHalf %d %d\n", i, t); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteSurface writes m in face-list surface format: a comment header, then
// one "v x y z" per vertex, one "vn x y z" per normal, and one
// "f a//a b//b c//c" per face, with 1-based indices.
func (m *Mesh) WriteSurface(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Created by trimesh\n#\n# Surface vertices=%d faces=%d\n#\n",
		len(m.Vertices), m.FaceCount())

	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(bw, "v %f %f %f\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	for _, n := range m.Normals {
		if _, err := fmt.Fprintf(bw, "vn %f %f %f\n", n.X, n.Y, n.Z); err != nil {
			return err
		}
	}
	for f := 0; f < len(m.FaceVertices); f += 3 {
		a := m.FaceVertices[f] + 1
		b := m.FaceVertices[f+1] + 1
		c := m.FaceVertices[f+2] + 1
		if _, err := fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c); err != nil {
			return err
		}
	}

	return bw.Flush()
}

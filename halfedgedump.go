package trimesh

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// LoadHalfEdgeDump populates m from a line-oriented half-edge dump: records
// "Vertex i x y z", "Normal i x y z", "FirstDirectedEdge i h", "Face i v0 v1
// v2", "OtherHalf i h", and "#" comment lines, in any order, anywhere in the
// stream. A record whose declared index disagrees with the current array
// length is a MalformedRecord: the rest of that line is skipped (logged,
// not returned as an error) and reading continues.
//
// After reading, the barycenter and bounding radius are recomputed, but
// normals are NOT recomputed — they are trusted as read from the file.
func (m *Mesh) LoadHalfEdgeDump(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] == "#" {
			continue
		}

		switch fields[0] {
		case "Vertex":
			if err := readIndexedVector3(fields, len(m.Vertices), func(v Vector3) {
				m.Vertices = append(m.Vertices, v)
			}); err != nil {
				return err
			}
		case "Normal":
			if err := readIndexedVector3(fields, len(m.Normals), func(v Vector3) {
				m.Normals = append(m.Normals, v)
			}); err != nil {
				return err
			}
		case "FirstDirectedEdge":
			if err := readIndexedHalfEdge(fields, len(m.FirstDirectedEdge), func(h HalfEdgeId) {
				m.FirstDirectedEdge = append(m.FirstDirectedEdge, h)
			}); err != nil {
				return err
			}
		case "Face":
			if err := readIndexedFace(fields, len(m.FaceVertices)/3, func(v0, v1, v2 VertexId) {
				m.FaceVertices = append(m.FaceVertices, v0, v1, v2)
			}); err != nil {
				return err
			}
		case "OtherHalf":
			if err := readIndexedHalfEdge(fields, len(m.Twin), func(h HalfEdgeId) {
				m.Twin = append(m.Twin, h)
			}); err != nil {
				return err
			}
		default:
			log.Printf("trimesh: malformed record, unknown keyword %q: skipping line", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return wrapRead("half-edge dump", err)
	}

	recomputeExtent(m)
	return nil
}

func readIndexedVector3(fields []string, expectedIndex int, store func(Vector3)) error {
	if len(fields) != 5 {
		log.Printf("trimesh: malformed record %q: skipping line", strings.Join(fields, " "))
		return nil
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return wrapRead("record index", err)
	}
	if index != expectedIndex {
		log.Printf("trimesh: malformed record: index %d does not match expected %d: skipping line", index, expectedIndex)
		return nil
	}
	x, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return wrapRead("vector x", err)
	}
	y, err := strconv.ParseFloat(fields[3], 32)
	if err != nil {
		return wrapRead("vector y", err)
	}
	z, err := strconv.ParseFloat(fields[4], 32)
	if err != nil {
		return wrapRead("vector z", err)
	}
	store(NewVector3(float32(x), float32(y), float32(z)))
	return nil
}

func readIndexedHalfEdge(fields []string, expectedIndex int, store func(HalfEdgeId)) error {
	if len(fields) != 3 {
		log.Printf("trimesh: malformed record %q: skipping line", strings.Join(fields, " "))
		return nil
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return wrapRead("record index", err)
	}
	if index != expectedIndex {
		log.Printf("trimesh: malformed record: index %d does not match expected %d: skipping line", index, expectedIndex)
		return nil
	}
	h, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return wrapRead("half-edge id", err)
	}
	store(HalfEdgeId(h))
	return nil
}

func readIndexedFace(fields []string, expectedIndex int, store func(v0, v1, v2 VertexId)) error {
	if len(fields) != 5 {
		log.Printf("trimesh: malformed record %q: skipping line", strings.Join(fields, " "))
		return nil
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return wrapRead("record index", err)
	}
	if index != expectedIndex {
		log.Printf("trimesh: malformed record: index %d does not match expected %d: skipping line", index, expectedIndex)
		return nil
	}
	ids := make([]VertexId, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(fields[2+i], 10, 32)
		if err != nil {
			return wrapRead("face vertex id", err)
		}
		ids[i] = VertexId(v)
	}
	store(ids[0], ids[1], ids[2])
	return nil
}

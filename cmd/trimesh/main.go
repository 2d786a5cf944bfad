package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"trimesh"
	"trimesh/arcball"
	"trimesh/internal/preview"
)

const (
	minSubdivisionLevel = 0
	maxSubdivisionLevel = 8

	previewWidth  = 256
	previewHeight = 256
)

func main() {
	levels := flag.Int("levels", maxSubdivisionLevel, "maximum subdivision level (clamped to [0,8])")
	doPreview := flag.Bool("preview", false, "also render a .webp snapshot for every level")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: trimesh <mesh-file>")
		return
	}

	path := args[0]
	mesh, err := loadMesh(path)
	if err != nil {
		fmt.Printf("Read failed for object %s: %v\n", path, err)
		return
	}

	maxLevel := clamp(*levels, minSubdivisionLevel, maxSubdivisionLevel)
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if err := os.MkdirAll("out", 0o755); err != nil {
		log.Fatalf("trimesh: could not create output directory: %v", err)
	}

	ball := arcball.New()
	sweepStep := float32(2) / float32(maxLevel+1)

	current := mesh
	for level := 0; level <= maxLevel; level++ {
		if err := writeLevel(current, stem, level); err != nil {
			log.Fatalf("trimesh: level %d: %v", level, err)
		}

		if *doPreview {
			x := -1 + sweepStep*float32(level)
			ball.BeginDrag(0, 0)
			ball.EndDrag(x, x*0.5)
			if err := writePreview(current, ball.Rotation(), stem, level); err != nil {
				log.Fatalf("trimesh: preview level %d: %v", level, err)
			}
		}

		if level == maxLevel {
			break
		}
		next, err := current.Subdivide()
		if err != nil {
			log.Fatalf("trimesh: subdividing to level %d: %v", level+1, err)
		}
		current = next
	}
}

// loadMesh dispatches on file extension: ".halfedge"/".hds" selects the
// half-edge dump loader, ".tri" selects the triangle-soup loader. Any other
// extension is a read failure.
func loadMesh(path string) (*trimesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := trimesh.NewMesh()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".halfedge", ".hds":
		if err := m.LoadHalfEdgeDump(f); err != nil {
			return nil, err
		}
	case ".tri":
		if err := m.LoadTriangleSoup(f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unrecognized mesh file extension %q", filepath.Ext(path))
	}
	return m, nil
}

func writeLevel(m *trimesh.Mesh, stem string, level int) error {
	halfedgePath := filepath.Join("out", fmt.Sprintf("%s_%d.halfedge", stem, level))
	if err := writeFile(halfedgePath, m.WriteHalfEdgeDump); err != nil {
		return err
	}

	objPath := filepath.Join("out", fmt.Sprintf("%s_%d.obj", stem, level))
	return writeFile(objPath, m.WriteSurface)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}

func writePreview(m *trimesh.Mesh, rotation mgl32.Quat, stem string, level int) error {
	img, err := preview.Snapshot(m, rotation, previewWidth, previewHeight)
	if err != nil {
		return err
	}

	webpPath := filepath.Join("out", fmt.Sprintf("%s_%d.webp", stem, level))
	f, err := os.Create(webpPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return preview.WriteWEBP(f, img)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

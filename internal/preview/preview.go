// Package preview renders a mesh to an offscreen wireframe snapshot,
// without opening a window or running a game loop.
package preview

import (
	"image"
	"image/color"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/draw"

	"trimesh"
)

// supersample is the render-then-downsample factor used to anti-alias the
// wireframe edges, the same technique drsaluml's mu-bmd-to-webp renderer
// uses for its texture snapshots.
const supersample = 2

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// backgroundColor matches the arcball widget's fixed palette: a light grey
// backdrop with a black wireframe. The wireframe is always this one color,
// so its components are unpacked once rather than per edge.
var (
	backgroundColor  = color.RGBA{235, 235, 235, 255}
	strokeWidthPixel = float32(1)

	strokeR, strokeG, strokeB, strokeA = colorComponents(color.RGBA{0, 0, 0, 255})
)

func colorComponents(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0, float32(c.A) / 255.0
}

// Snapshot renders m as a wireframe, viewed through rotation, into a
// width x height image. The mesh is recentred on its centre of gravity and
// scaled to fit within an orthographic [-1,1] viewing volume, matching the
// original arcball preview's fixed projection.
func Snapshot(m *trimesh.Mesh, rotation mgl32.Quat, width, height int) (*image.NRGBA, error) {
	screen := project(m, rotation, width*supersample, height*supersample)
	return downsample(screen, width, height), nil
}

// WriteWEBP encodes img as WEBP to w.
func WriteWEBP(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

// project draws m's wireframe edges onto an offscreen ebiten.Image of the
// given pixel size and returns it as a Go image.
func project(m *trimesh.Mesh, rotation mgl32.Quat, width, height int) *ebiten.Image {
	screen := ebiten.NewImage(width, height)
	screen.Fill(backgroundColor)

	view := rotation.Mat4()
	proj := mgl32.Ortho(-1, 1, -1, 1, -1, 1)
	transform := proj.Mul4(view)

	scale := m.ObjectSize
	if scale == 0 {
		scale = 1
	}
	centre := m.CentreOfGravity

	toScreen := func(v trimesh.Vector3) (float32, float32) {
		local := mgl32.Vec3{
			(v.X - centre.X) / scale,
			(v.Y - centre.Y) / scale,
			(v.Z - centre.Z) / scale,
		}
		clip := transform.Mul4x1(mgl32.Vec4{local[0], local[1], local[2], 1})
		x := (clip[0]*0.5 + 0.5) * float32(width)
		y := (1 - (clip[1]*0.5 + 0.5)) * float32(height)
		return x, y
	}

	for f := 0; f < len(m.FaceVertices); f += 3 {
		var xs, ys [3]float32
		for i := 0; i < 3; i++ {
			xs[i], ys[i] = toScreen(m.Vertices[m.FaceVertices[f+i]])
		}
		drawEdge(screen, xs[0], ys[0], xs[1], ys[1])
		drawEdge(screen, xs[1], ys[1], xs[2], ys[2])
		drawEdge(screen, xs[2], ys[2], xs[0], ys[0])
	}

	return screen
}

// drawEdge strokes the single line segment (x0,y0)-(x1,y1) in the fixed
// wireframe color, adapted from the arcball widget's polygon-outline
// stroker down to the one shape preview ever draws: a straight edge.
func drawEdge(screen *ebiten.Image, x0, y0, x1, y1 float32) {
	var path vector.Path
	path.MoveTo(x0, y0)
	path.LineTo(x1, y1)

	strokeOp := &vector.StrokeOptions{Width: strokeWidthPixel}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	for i := range vertices {
		vertices[i].ColorR = strokeR
		vertices[i].ColorG = strokeG
		vertices[i].ColorB = strokeB
		vertices[i].ColorA = strokeA
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	drawOp := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vertices, indices, whiteSub, drawOp)
}

// downsample reduces src (rendered at supersample scale) to width x height
// using premultiplied-alpha-aware Lanczos-like filtering, the same
// technique drsaluml's mu-bmd-to-webp postprocessing package uses.
func downsample(src *ebiten.Image, width, height int) *image.NRGBA {
	bounds := src.Bounds()
	rgba := &image.RGBA{
		Pix:    pixelsOf(src),
		Stride: 4 * bounds.Dx(),
		Rect:   bounds,
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), rgba, bounds, draw.Src, nil)

	result := image.NewNRGBA(dst.Bounds())
	draw.Draw(result, result.Bounds(), dst, image.Point{}, draw.Src)
	return result
}

// pixelsOf copies an ebiten.Image's pixels into a flat RGBA buffer.
func pixelsOf(img *ebiten.Image) []byte {
	bounds := img.Bounds()
	pix := make([]byte, 4*bounds.Dx()*bounds.Dy())
	img.ReadPixels(pix)
	return pix
}

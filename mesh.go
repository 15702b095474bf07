package touchrect

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// --- White pixel singleton (no sync.Once, touchrect is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Overlay and canvas meshes are untextured; color comes from the vertices.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// vertexColor returns c premultiplied, as DrawTriangles expects with
// ColorScaleModePremultipliedAlpha.
func vertexColor(c Color) (r, g, b, a float32) {
	a = float32(c.A)
	return float32(c.R) * a, float32(c.G) * a, float32(c.B) * a, a
}

// appendQuad appends 4 vertices and 6 indices for a quad with per-corner
// colors. Triangles are (0,1,2) and (0,2,3), which covers both windings.
func appendQuad(verts []ebiten.Vertex, inds []uint32, pos [4]Vec2, cols [4]Color) ([]ebiten.Vertex, []uint32) {
	base := uint32(len(verts))
	for i := 0; i < 4; i++ {
		r, g, b, a := vertexColor(cols[i])
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(pos[i].X),
			DstY:   float32(pos[i].Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	inds = append(inds,
		base+0, base+1, base+2,
		base+0, base+2, base+3,
	)
	return verts, inds
}

// appendLine appends a line from start to end as a quad whose corners are
// offset diagonally by ±offset on both axes.
func appendLine(verts []ebiten.Vertex, inds []uint32, start, end Vec2, offset float64, c Color) ([]ebiten.Vertex, []uint32) {
	pos := [4]Vec2{
		{start.X - offset, start.Y - offset},
		{end.X - offset, end.Y - offset},
		{end.X + offset, end.Y + offset},
		{start.X + offset, start.Y + offset},
	}
	return appendQuad(verts, inds, pos, [4]Color{c, c, c, c})
}

// lineOffset returns the half-width of an outline for the given screen size.
// Widths are authored against a 1920-pixel reference edge.
func lineOffset(lineWidth float64, screenW, screenH int) float64 {
	return lineWidth * math.Max(float64(screenW), float64(screenH)) / 1920 / 2
}

// projectVertices maps local-space vertex positions to screen space through
// the local-to-world matrix m and camera cam (nil = screen space).
func projectVertices(verts []ebiten.Vertex, m mgl64.Mat4, cam Projector) {
	for i := range verts {
		v := &verts[i]
		p := mgl64.TransformCoordinate(mgl64.Vec3{float64(v.DstX), float64(v.DstY), 0}, m)
		s := worldToScreen(cam, p)
		v.DstX = float32(s.X())
		v.DstY = float32(s.Y())
	}
}

// computeMeshAABB scans DstX/DstY of the given vertices and returns the
// axis-aligned bounding box.
func computeMeshAABB(verts []ebiten.Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX := float64(verts[0].DstX)
	minY := float64(verts[0].DstY)
	maxX := minX
	maxY := minY
	for i := 1; i < len(verts); i++ {
		x := float64(verts[i].DstX)
		y := float64(verts[i].DstY)
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// drawMesh submits verts as a single DrawTriangles32 call with the white
// pixel as source.
func drawMesh(dst *ebiten.Image, verts []ebiten.Vertex, inds []uint32) {
	if len(inds) == 0 {
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles32(verts, inds, ensureWhitePixel(), &triOp)
}

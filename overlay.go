package touchrect

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay is a debug layer hosted by a Scene. Update runs after the scene's
// canvases are rebuilt; Draw runs after they are drawn.
type Overlay interface {
	Update()
	Draw(dst *ebiten.Image)
}

// OverlaySpace places an overlay mesh: vertices are built in the local space
// of Transform and viewed through Camera. A nil Camera is screen space; a
// zero Transform is the identity.
type OverlaySpace struct {
	Camera    *Camera
	Transform mgl64.Mat4
}

func (s *OverlaySpace) projector() Projector {
	if s.Camera == nil {
		return nil
	}
	return s.Camera
}

func (s *OverlaySpace) matrix() mgl64.Mat4 {
	if s.Transform == (mgl64.Mat4{}) {
		return identityTransform
	}
	return s.Transform
}

// ScreenToLocal converts a screen point into the overlay's local space.
func (s *OverlaySpace) ScreenToLocal(p Vec2) (Vec2, bool) {
	return screenToLocal(s.projector(), s.matrix(), p.X, p.Y)
}

// toScreen maps the local-space mesh back onto the screen for drawing.
func (s *OverlaySpace) toScreen(verts []ebiten.Vertex) {
	projectVertices(verts, s.matrix(), s.projector())
}

// --- Target overlay ---

const defaultLineWidth = 4.0

// TargetOverlay outlines every element that is currently eligible to receive
// pointer input.
type TargetOverlay struct {
	OverlaySpace

	Enabled bool
	// LineWidth is the outline width on a 1920-pixel screen edge; it scales
	// with the larger screen dimension.
	LineWidth float64
	Color     Color
	Targets   *TargetEnumerator

	verts []ebiten.Vertex
	inds  []uint32
}

// NewTargetOverlay returns an enabled, green, screen-space target overlay
// enumerating the surfaces of reg.
func NewTargetOverlay(reg SurfaceRegistry) *TargetOverlay {
	return &TargetOverlay{
		Enabled:   true,
		LineWidth: defaultLineWidth,
		Color:     ColorGreen,
		Targets:   &TargetEnumerator{Registry: reg},
	}
}

// Update re-enumerates the targets. No-op while disabled.
func (o *TargetOverlay) Update() {
	if !o.Enabled || o.Targets == nil {
		return
	}
	o.Targets.Update()
}

// AppendMesh appends one outline per target, in overlay-local space, to
// verts and inds. Targets destroyed since Update are pruned first. Each
// corner is projected with the target's own camera and brought into local
// space through the overlay's camera.
func (o *TargetOverlay) AppendMesh(verts []ebiten.Vertex, inds []uint32, screenW, screenH int) ([]ebiten.Vertex, []uint32) {
	if o.Targets == nil {
		return verts, inds
	}
	o.Targets.PruneDestroyed()
	offset := lineOffset(o.LineWidth, screenW, screenH)
	for _, t := range o.Targets.Targets() {
		if t.Element.Surface() == nil {
			continue
		}
		var local [4]Vec2
		ok := true
		for i := range t.Quad {
			s := worldToScreen(t.Camera, t.Quad[i])
			if local[i], ok = o.ScreenToLocal(Vec2{s.X(), s.Y()}); !ok {
				break
			}
		}
		if !ok {
			continue
		}
		for i := range local {
			verts, inds = appendLine(verts, inds, local[i], local[(i+1)%len(local)], offset, o.Color)
		}
	}
	return verts, inds
}

// Draw renders the outlines onto dst.
func (o *TargetOverlay) Draw(dst *ebiten.Image) {
	if !o.Enabled {
		return
	}
	b := dst.Bounds()
	o.verts, o.inds = o.AppendMesh(o.verts[:0], o.inds[:0], b.Dx(), b.Dy())
	o.toScreen(o.verts)
	drawMesh(dst, o.verts, o.inds)
}

// --- Hit overlay ---

// HitOverlay fills the padded rectangle of the topmost element under every
// pointer, with one color per corner.
type HitOverlay struct {
	OverlaySpace

	// Color tints every corner color.
	Color Color
	// CornerColors are assigned to quad corners in order, cycling when
	// shorter than four. Empty draws translucent black.
	CornerColors []Color
	Hits         *HitTester

	verts []ebiten.Vertex
	inds  []uint32
}

// DefaultCornerColors is the HitOverlay palette: red, green, cyan and blue
// at 70% alpha.
func DefaultCornerColors() []Color {
	return []Color{
		{1, 0, 0, 0.7},
		{0, 1, 0, 0.7},
		{0, 1, 1, 0.7},
		{0, 0, 1, 0.7},
	}
}

var emptyPaletteColor = Color{0, 0, 0, 0.8}

// NewHitOverlay returns a screen-space hit overlay that draws touch rects
// and does not log.
func NewHitOverlay(router EventRouter, pointers *PointerSource) *HitOverlay {
	return &HitOverlay{
		Color:        ColorWhite,
		CornerColors: DefaultCornerColors(),
		Hits: &HitTester{
			Router:        router,
			Pointers:      pointers,
			DrawTouchRect: true,
		},
	}
}

// Update runs the hit tester.
func (o *HitOverlay) Update() {
	if o.Hits != nil {
		o.Hits.Update()
	}
}

func (o *HitOverlay) cornerColor(i int) Color {
	if len(o.CornerColors) == 0 {
		return emptyPaletteColor
	}
	return o.CornerColors[i%len(o.CornerColors)]
}

// AppendMesh appends one filled quad per hit record, in overlay-local space.
// Nothing is appended unless the tester keeps touch rects. Records whose
// element is gone or whose surface is missing are skipped.
func (o *HitOverlay) AppendMesh(verts []ebiten.Vertex, inds []uint32) ([]ebiten.Vertex, []uint32) {
	if o.Hits == nil || !o.Hits.DrawTouchRect {
		return verts, inds
	}
	for _, hit := range o.Hits.Hits() {
		if hit.Element == nil || hit.Surface == nil {
			continue
		}
		q, ok := WorldQuad(hit.Element)
		if !ok {
			continue
		}
		var pos [4]Vec2
		var cols [4]Color
		for i := range q {
			s := worldToScreen(hit.Camera, q[i])
			if pos[i], ok = o.ScreenToLocal(Vec2{s.X(), s.Y()}); !ok {
				break
			}
			cols[i] = o.cornerColor(i).Mul(o.Color)
		}
		if !ok {
			continue
		}
		verts, inds = appendQuad(verts, inds, pos, cols)
	}
	return verts, inds
}

// Draw renders the hit quads onto dst.
func (o *HitOverlay) Draw(dst *ebiten.Image) {
	o.verts, o.inds = o.AppendMesh(o.verts[:0], o.inds[:0])
	o.toScreen(o.verts)
	drawMesh(dst, o.verts, o.inds)
}

package touchrect

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at vertex submission time.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

var (
	// ColorWhite is the neutral tint.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorGreen is the default target outline color.
	ColorGreen = Color{0, 1, 0, 1}
)

// Mul returns the component-wise product of c and o.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for screen positions and local offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Padding holds raycast padding insets. Positive values shrink the raycast
// area inward from the named edge; negative values grow it.
type Padding struct {
	Left, Top, Right, Bottom float64
}

// Corner indexes a Quad.
type Corner uint8

const (
	CornerBottomLeft  Corner = iota // min-x, max-y (Y-down)
	CornerTopLeft                   // min-x, min-y
	CornerTopRight                  // max-x, min-y
	CornerBottomRight               // max-x, max-y
)

// Quad holds four corners in bottom-left, top-left, top-right, bottom-right
// order. Consumers may draw edges between adjacent corners or triangulate
// (0,1,2) and (0,2,3).
type Quad [4]mgl64.Vec3

// PointerKind identifies where a PointerSample came from.
type PointerKind uint8

const (
	PointerMouse PointerKind = iota // the mouse (or pen) device
	PointerTouch                    // a touch contact
)

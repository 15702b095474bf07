package touchrect

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	defaultCameraZ = -10.0
	defaultFarClip = 1000.0
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is an orthographic camera looking down +Z. It projects world space
// into its screen Viewport and implements Projector.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Z is the camera plane. Screen depth is world Z minus this value.
	Z float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect
	// FarClip is the maximum screen depth still rendered.
	FarClip float64

	// CullEnabled marks nodes whose screen AABB misses the viewport as culled.
	CullEnabled bool

	view    mgl64.Mat4
	invView mgl64.Mat4
	dirty   bool

	scrollTween *scrollAnim
}

// NewCamera creates a Camera with default values and the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Z:        defaultCameraZ,
		Zoom:     1.0,
		Viewport: viewport,
		FarClip:  defaultFarClip,
		dirty:    true,
	}
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is running.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// update advances the scroll animation. Called from Scene.Update.
func (c *Camera) update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
	c.dirty = true
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
//	view = Translate(cx, cy, 0) * Scale(zoom, zoom, 1) * RotateZ(-rotation) * Translate(-X, -Y, -Z)
//
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() mgl64.Mat4 {
	if !c.dirty {
		return c.view
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	c.view = mgl64.Translate3D(cx, cy, 0).
		Mul4(mgl64.Scale3D(c.Zoom, c.Zoom, 1)).
		Mul4(mgl64.HomogRotate3DZ(-c.Rotation)).
		Mul4(mgl64.Translate3D(-c.X, -c.Y, -c.Z))
	c.invView = c.view.Inv()
	return c.view
}

// WorldToScreen implements Projector. The returned Z is the distance in
// front of the camera plane.
func (c *Camera) WorldToScreen(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, c.computeViewMatrix())
}

// ScreenToWorld returns the world point on the camera plane under (sx, sy).
func (c *Camera) ScreenToWorld(sx, sy float64) mgl64.Vec3 {
	c.computeViewMatrix()
	return mgl64.TransformCoordinate(mgl64.Vec3{sx, sy, 0}, c.invView)
}

// ScreenRay implements Projector.
func (c *Camera) ScreenRay(sx, sy float64) (origin, dir mgl64.Vec3) {
	return c.ScreenToWorld(sx, sy), mgl64.Vec3{0, 0, 1}
}

// FarClipPlane implements Projector.
func (c *Camera) FarClipPlane() float64 {
	return c.FarClip
}

// screenAABB returns the screen-space bounding box of the given world points.
func (c *Camera) screenAABB(pts []mgl64.Vec3) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		s := c.WorldToScreen(p)
		minX = math.Min(minX, s.X())
		minY = math.Min(minY, s.Y())
		maxX = math.Max(maxX, s.X())
		maxY = math.Max(maxY, s.Y())
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

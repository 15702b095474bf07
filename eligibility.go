package touchrect

import "github.com/go-gl/mathgl/mgl64"

// DepthNotRendered is the depth reported by elements that are not drawn this
// tick. Such elements are never raycast targets.
const DepthNotRendered = -1

// TreeNode is one node of the host scene tree as seen by the eligibility walk.
type TreeNode interface {
	// ParentNode returns the parent, or nil at the root.
	ParentNode() TreeNode
	// Capabilities returns the capabilities attached to this node. The
	// returned slice MUST NOT be mutated by the caller.
	Capabilities() []Capability
}

// Element is a UI element owned by the host scene graph. The core only
// reads it. Implementations must be comparable (pointer types), since hit
// history compares elements by identity.
type Element interface {
	TreeNode
	// String names the element in logs.
	String() string
	RaycastTarget() bool
	Culled() bool
	Depth() int
	// Destroyed reports whether the element's transform is gone. Destroyed
	// elements are skipped wherever they are met.
	Destroyed() bool
	// LocalRect is the element's rectangle in its own coordinate space.
	LocalRect() Rect
	RaycastPadding() Padding
	LocalToWorld() mgl64.Mat4
	WorldPosition() mgl64.Vec3
	// Surface returns the owning surface, or nil if detached.
	Surface() Surface
}

// Projector maps between world and screen space for one camera.
type Projector interface {
	// WorldToScreen returns screen X/Y and, in Z, the distance in front of
	// the camera.
	WorldToScreen(p mgl64.Vec3) mgl64.Vec3
	// ScreenRay returns the world-space ray through a screen point.
	ScreenRay(sx, sy float64) (origin, dir mgl64.Vec3)
	FarClipPlane() float64
}

// Surface is a rendering/input context that owns UI elements.
type Surface interface {
	Name() string
	Active() bool
	// EventCamera returns the camera used for projection, or nil for
	// screen-space surfaces.
	EventCamera() Projector
	SortOrder() int
	// RaycastElements returns the elements registered as raycastable on
	// this surface. The returned slice MUST NOT be mutated by the caller.
	RaycastElements() []Element
}

// IsEligible reports whether e would currently intercept pointer input,
// ignoring position.
func IsEligible(e Element) bool {
	if e == nil || e.Destroyed() {
		return false
	}
	if !e.RaycastTarget() || e.Culled() || e.Depth() == DepthNotRendered {
		return false
	}
	if s := e.Surface(); s != nil {
		if cam := s.EventCamera(); cam != nil {
			if cam.WorldToScreen(e.WorldPosition()).Z() > cam.FarClipPlane() {
				return false
			}
		}
	}
	return passesAncestorFilters(e)
}

// passesAncestorFilters walks from e to the root visiting every capability.
// Any veto fails immediately; an enabled SortOverride ends the walk once its
// own node has been processed.
func passesAncestorFilters(e Element) bool {
	var st groupState
	for n := TreeNode(e); n != nil; n = n.ParentNode() {
		for _, c := range n.Capabilities() {
			if c.visitRaycast(&st) {
				return false
			}
		}
		if st.stop {
			break
		}
	}
	return true
}

// LocalQuad returns e's padded local rectangle as a Quad with Z = 0.
// Padding is not clamped: insets larger than the rectangle produce an
// inverted quad.
func LocalQuad(e Element) Quad {
	return paddedQuad(e.LocalRect(), e.RaycastPadding())
}

func paddedQuad(r Rect, p Padding) Quad {
	minX := r.X + p.Left
	maxX := r.X + r.Width - p.Right
	minY := r.Y + p.Top
	maxY := r.Y + r.Height - p.Bottom
	return Quad{
		CornerBottomLeft:  {minX, maxY, 0},
		CornerTopLeft:     {minX, minY, 0},
		CornerTopRight:    {maxX, minY, 0},
		CornerBottomRight: {maxX, maxY, 0},
	}
}

// WorldQuad returns e's padded raycast rectangle in world space. ok is false
// when e has been destroyed.
func WorldQuad(e Element) (q Quad, ok bool) {
	if e == nil || e.Destroyed() {
		return Quad{}, false
	}
	q = LocalQuad(e)
	m := e.LocalToWorld()
	for i := range q {
		q[i] = mgl64.TransformCoordinate(q[i], m)
	}
	return q, true
}

// ScreenQuad projects e's world quad to screen space with cam. A nil cam
// treats world X/Y as screen X/Y.
func ScreenQuad(e Element, cam Projector) (q Quad, ok bool) {
	q, ok = WorldQuad(e)
	if !ok {
		return Quad{}, false
	}
	for i := range q {
		q[i] = worldToScreen(cam, q[i])
	}
	return q, true
}

// worldToScreen projects p with cam; a nil cam is the screen-space identity.
func worldToScreen(cam Projector, p mgl64.Vec3) mgl64.Vec3 {
	if cam == nil {
		return mgl64.Vec3{p.X(), p.Y(), 0}
	}
	return cam.WorldToScreen(p)
}

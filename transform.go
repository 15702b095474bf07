package touchrect

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// identityTransform is the parent transform of canvas roots.
var identityTransform = mgl64.Ident4()

// screenSpaceRayZ is where rays for screen-space surfaces start.
const screenSpaceRayZ = -100.0

// computeLocalTransform computes the node's local matrix.
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> TiltX -> TiltY -> Rotate -> Translate(X, Y, Z)
func computeLocalTransform(n *Node) mgl64.Mat4 {
	m := mgl64.Translate3D(n.X, n.Y, n.Z).Mul4(mgl64.HomogRotate3DZ(n.Rotation))
	if n.TiltY != 0 {
		m = m.Mul4(mgl64.HomogRotate3DY(n.TiltY))
	}
	if n.TiltX != 0 {
		m = m.Mul4(mgl64.HomogRotate3DX(n.TiltX))
	}
	return m.Mul4(mgl64.Scale3D(n.ScaleX, n.ScaleY, 1)).
		Mul4(mgl64.Translate3D(-n.PivotX, -n.PivotY, 0))
}

// updateWorldTransform recomputes a node's worldTransform.
// parentRecomputed indicates whether the parent was recomputed this tick,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform mgl64.Mat4, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parentTransform.Mul4(computeLocalTransform(n))
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// rayToLocal intersects a world-space ray with the z=0 plane of the local
// space described by m and returns the hit in local coordinates. ok is false
// when the ray runs parallel to the plane or m is singular.
func rayToLocal(origin, dir mgl64.Vec3, m mgl64.Mat4) (p mgl64.Vec3, ok bool) {
	inv := m.Inv()
	o := mgl64.TransformCoordinate(origin, inv)
	d := mgl64.TransformNormal(dir, inv)
	if math.Abs(d.Z()) < 1e-12 {
		return mgl64.Vec3{}, false
	}
	t := -o.Z() / d.Z()
	return o.Add(d.Mul(t)), true
}

// screenToLocal converts a screen point to the local space m using cam's
// ray. A nil cam casts straight down +Z from the screen point.
func screenToLocal(cam Projector, m mgl64.Mat4, sx, sy float64) (Vec2, bool) {
	var origin, dir mgl64.Vec3
	if cam == nil {
		origin, dir = mgl64.Vec3{sx, sy, screenSpaceRayZ}, mgl64.Vec3{0, 0, 1}
	} else {
		origin, dir = cam.ScreenRay(sx, sy)
	}
	p, ok := rayToLocal(origin, dir, m)
	if !ok {
		return Vec2{}, false
	}
	return Vec2{p.X(), p.Y()}, true
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetDepthOffset sets the node's local Z and marks it dirty.
func (n *Node) SetDepthOffset(z float64) {
	n.Z = z
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetTilt sets the rotations about the X and Y axes (in radians) and marks
// the node dirty.
func (n *Node) SetTilt(tx, ty float64) {
	n.TiltX = tx
	n.TiltY = ty
	n.transformDirty = true
}

// SetPivot sets the node's PivotX and PivotY and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next tick. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// LocalToWorld returns the node's local-to-world matrix as of the last
// transform refresh.
func (n *Node) LocalToWorld() mgl64.Mat4 {
	return n.worldTransform
}

// WorldPosition returns the world position of the node's origin.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.worldTransform.Col(3).Vec3()
}

// WorldToLocal converts a world-space point to this node's local space.
func (n *Node) WorldToLocal(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, n.worldTransform.Inv())
}

// LocalPointToWorld converts a local-space point to world space.
func (n *Node) LocalPointToWorld(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, n.worldTransform)
}

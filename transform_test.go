package touchrect

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func vecApprox(a, b mgl64.Vec3) bool {
	return approxEqual(a.X(), b.X(), 1e-6) &&
		approxEqual(a.Y(), b.Y(), 1e-6) &&
		approxEqual(a.Z(), b.Z(), 1e-6)
}

func TestComputeLocalTransformIdentity(t *testing.T) {
	n := NewContainer("n")
	m := computeLocalTransform(n)
	if !m.ApproxEqualThreshold(mgl64.Ident4(), epsilon) {
		t.Errorf("default local transform = %v, want identity", m)
	}
}

func TestComputeLocalTransformTranslateScalePivot(t *testing.T) {
	n := NewContainer("n")
	n.X, n.Y = 10, 20
	n.ScaleX, n.ScaleY = 2, 3
	n.PivotX, n.PivotY = 5, 5
	m := computeLocalTransform(n)

	// The pivot lands on the position.
	got := mgl64.TransformCoordinate(mgl64.Vec3{5, 5, 0}, m)
	if !vecApprox(got, mgl64.Vec3{10, 20, 0}) {
		t.Errorf("pivot -> %v, want (10,20,0)", got)
	}
	got = mgl64.TransformCoordinate(mgl64.Vec3{6, 6, 0}, m)
	if !vecApprox(got, mgl64.Vec3{12, 23, 0}) {
		t.Errorf("pivot+1 -> %v, want (12,23,0)", got)
	}
}

func TestComputeLocalTransformRotation(t *testing.T) {
	n := NewContainer("n")
	n.Rotation = math.Pi / 2
	m := computeLocalTransform(n)
	// +90° about Z maps +X to +Y (clockwise on a Y-down screen).
	got := mgl64.TransformCoordinate(mgl64.Vec3{1, 0, 0}, m)
	if !vecApprox(got, mgl64.Vec3{0, 1, 0}) {
		t.Errorf("rotated (1,0) -> %v, want (0,1,0)", got)
	}
}

func TestUpdateWorldTransformHierarchy(t *testing.T) {
	parent := NewContainer("parent")
	parent.SetPosition(100, 0)
	child := NewContainer("child")
	child.SetPosition(10, 5)
	parent.AddChild(child)

	updateWorldTransform(parent, identityTransform, false)
	if got := child.WorldPosition(); !vecApprox(got, mgl64.Vec3{110, 5, 0}) {
		t.Errorf("child world = %v, want (110,5,0)", got)
	}
	if child.transformDirty || parent.transformDirty {
		t.Error("transforms still dirty after update")
	}

	// Moving only the parent must still move the child.
	parent.SetPosition(200, 0)
	updateWorldTransform(parent, identityTransform, false)
	if got := child.WorldPosition(); !vecApprox(got, mgl64.Vec3{210, 5, 0}) {
		t.Errorf("child world after parent move = %v, want (210,5,0)", got)
	}
}

func TestUpdateWorldTransformSkipsClean(t *testing.T) {
	n := NewContainer("n")
	updateWorldTransform(n, identityTransform, false)

	// Fields changed without MarkDirty are not picked up.
	n.X = 50
	updateWorldTransform(n, identityTransform, false)
	if got := n.WorldPosition(); got.X() != 0 {
		t.Errorf("clean node recomputed: x = %f", got.X())
	}
	n.MarkDirty()
	updateWorldTransform(n, identityTransform, false)
	if got := n.WorldPosition(); got.X() != 50 {
		t.Errorf("after MarkDirty x = %f, want 50", got.X())
	}
}

func TestSettersMarkDirty(t *testing.T) {
	tests := []struct {
		name string
		set  func(n *Node)
	}{
		{"SetPosition", func(n *Node) { n.SetPosition(1, 2) }},
		{"SetDepthOffset", func(n *Node) { n.SetDepthOffset(3) }},
		{"SetScale", func(n *Node) { n.SetScale(2, 2) }},
		{"SetRotation", func(n *Node) { n.SetRotation(0.5) }},
		{"SetTilt", func(n *Node) { n.SetTilt(0.1, 0.2) }},
		{"SetPivot", func(n *Node) { n.SetPivot(4, 4) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewContainer("n")
			updateWorldTransform(n, identityTransform, false)
			tt.set(n)
			if !n.transformDirty {
				t.Errorf("%s did not mark the node dirty", tt.name)
			}
		})
	}
}

func TestWorldToLocalRoundtrip(t *testing.T) {
	n := NewContainer("n")
	n.SetPosition(30, -40)
	n.SetRotation(0.7)
	n.SetScale(1.5, 0.5)
	n.SetTilt(0.2, -0.3)
	updateWorldTransform(n, identityTransform, false)

	p := mgl64.Vec3{12, 34, 0}
	back := n.WorldToLocal(n.LocalPointToWorld(p))
	if !vecApprox(back, p) {
		t.Errorf("roundtrip = %v, want %v", back, p)
	}
}

func TestRayToLocalIdentity(t *testing.T) {
	p, ok := rayToLocal(mgl64.Vec3{3, 4, -100}, mgl64.Vec3{0, 0, 1}, mgl64.Ident4())
	if !ok {
		t.Fatal("ray missed the z=0 plane")
	}
	if !vecApprox(p, mgl64.Vec3{3, 4, 0}) {
		t.Errorf("hit = %v, want (3,4,0)", p)
	}
}

func TestRayToLocalParallel(t *testing.T) {
	// A plane rotated 90° about Y contains the view direction.
	m := mgl64.HomogRotate3DY(math.Pi / 2)
	if _, ok := rayToLocal(mgl64.Vec3{0, 0, -100}, mgl64.Vec3{0, 0, 1}, m); ok {
		t.Error("parallel ray reported a hit")
	}
}

func TestScreenToLocalTilted(t *testing.T) {
	n := NewContainer("n")
	n.SetTilt(0, math.Pi/3) // cos = 0.5: local X appears half as wide
	updateWorldTransform(n, identityTransform, false)

	got, ok := screenToLocal(nil, n.LocalToWorld(), 25, 10)
	if !ok {
		t.Fatal("screenToLocal failed")
	}
	if !approxEqual(got.X, 50, 1e-6) || !approxEqual(got.Y, 10, 1e-6) {
		t.Errorf("local = %v, want (50,10)", got)
	}
}

func TestScreenToLocalCamera(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	n := NewContainer("n")
	n.SetPosition(100, 100)
	updateWorldTransform(n, identityTransform, false)

	// World (100,100) sits at screen (500,400) with the camera at the origin.
	got, ok := screenToLocal(cam, n.LocalToWorld(), 510, 420)
	if !ok {
		t.Fatal("screenToLocal failed")
	}
	if !approxEqual(got.X, 10, 1e-6) || !approxEqual(got.Y, 20, 1e-6) {
		t.Errorf("local = %v, want (10,20)", got)
	}
}

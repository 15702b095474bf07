package touchrect

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap/zapcore"
)

func addRect(parent *Node, name string, x, y, w, h float64) *Node {
	n := NewRect(name, w, h, ColorWhite)
	n.SetPosition(x, y)
	parent.AddChild(n)
	return n
}

func hitNames(rs []RaycastResult) []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Element.String()
	}
	return names
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRaycastAllOrdering(t *testing.T) {
	s := NewScene()
	back := s.NewCanvas("back", nil)
	front := s.NewCanvas("front", nil)
	front.Order = 1

	addRect(back.Root(), "back-low", 0, 0, 100, 100)
	addRect(back.Root(), "back-high", 0, 0, 100, 100)
	addRect(front.Root(), "front", 0, 0, 100, 100)
	addRect(front.Root(), "elsewhere", 200, 200, 10, 10)
	s.Update()

	got := hitNames(s.RaycastAll(Vec2{50, 50}, nil))
	want := []string{"front", "back-high", "back-low"}
	if !equalNames(got, want) {
		t.Errorf("RaycastAll = %v, want %v", got, want)
	}
}

func TestRaycastAllAppendsToDst(t *testing.T) {
	s := NewScene()
	c := s.NewCanvas("ui", nil)
	addRect(c.Root(), "a", 0, 0, 10, 10)
	s.Update()

	dst := []RaycastResult{{SortOrder: 99}}
	dst = s.RaycastAll(Vec2{5, 5}, dst)
	if len(dst) != 2 || dst[0].SortOrder != 99 || dst[1].Element.String() != "a" {
		t.Errorf("dst = %+v", dst)
	}
}

func TestRaycastAllZIndex(t *testing.T) {
	s := NewScene()
	c := s.NewCanvas("ui", nil)
	top := addRect(c.Root(), "top", 0, 0, 10, 10)
	addRect(c.Root(), "bottom", 0, 0, 10, 10)
	top.SetZIndex(1)
	s.Update()

	got := hitNames(s.RaycastAll(Vec2{5, 5}, nil))
	if !equalNames(got, []string{"top", "bottom"}) {
		t.Errorf("RaycastAll = %v, want [top bottom]", got)
	}
}

func TestRaycastAllPadding(t *testing.T) {
	s := NewScene()
	c := s.NewCanvas("ui", nil)
	shrunk := addRect(c.Root(), "shrunk", 0, 0, 100, 100)
	shrunk.Padding = Padding{Left: 10, Top: 10}
	grown := addRect(c.Root(), "grown", 200, 0, 100, 100)
	grown.Padding = Padding{Right: -20}
	inverted := addRect(c.Root(), "inverted", 400, 0, 100, 100)
	inverted.Padding = Padding{Left: 60, Right: 60}
	s.Update()

	tests := []struct {
		pos  Vec2
		want []string
	}{
		{Vec2{5, 50}, nil},
		{Vec2{50, 5}, nil},
		{Vec2{10, 10}, []string{"shrunk"}},
		{Vec2{315, 50}, []string{"grown"}},
		{Vec2{450, 50}, nil},
		{Vec2{470, 50}, nil},
	}
	for _, tt := range tests {
		got := hitNames(s.RaycastAll(tt.pos, nil))
		if !equalNames(got, tt.want) {
			t.Errorf("RaycastAll(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestRaycastAllSkipsIneligible(t *testing.T) {
	s := NewScene()
	c := s.NewCanvas("ui", nil)
	panel := NewContainer("panel")
	panel.AddCapability(&Group{BlocksRaycasts: false})
	c.Root().AddChild(panel)
	addRect(panel, "blocked", 0, 0, 10, 10)
	s.Update()

	if got := s.RaycastAll(Vec2{5, 5}, nil); len(got) != 0 {
		t.Errorf("RaycastAll = %v, want none", hitNames(got))
	}
}

func TestRaycastAllCameraViewport(t *testing.T) {
	s := NewScene()
	cam := s.NewCamera(Rect{X: 0, Y: 0, Width: 400, Height: 300})
	c := s.NewCanvas("world", cam)
	addRect(c.Root(), "big", -1000, -1000, 2000, 2000)
	s.Update()

	if got := s.RaycastAll(Vec2{200, 150}, nil); len(got) != 1 {
		t.Errorf("inside viewport: %d hits, want 1", len(got))
	}
	if got := s.RaycastAll(Vec2{500, 150}, nil); len(got) != 0 {
		t.Errorf("outside viewport: %d hits, want 0", len(got))
	}
}

func TestRaycastAllTilted(t *testing.T) {
	s := NewScene()
	c := s.NewCanvas("ui", nil)
	n := addRect(c.Root(), "tilted", 0, 0, 100, 50)
	n.SetTilt(0, 1.0471975511965976) // 60°: appears 50 wide
	s.Update()

	if got := s.RaycastAll(Vec2{45, 10}, nil); len(got) != 1 {
		t.Errorf("inside foreshortened rect: %d hits, want 1", len(got))
	}
	if got := s.RaycastAll(Vec2{55, 10}, nil); len(got) != 0 {
		t.Errorf("outside foreshortened rect: %d hits, want 0", len(got))
	}
}

func TestSceneAutoCull(t *testing.T) {
	s := NewScene()
	cam := s.NewCamera(Rect{Width: 400, Height: 300})
	cam.CullEnabled = true
	c := s.NewCanvas("world", cam)
	visible := addRect(c.Root(), "visible", 0, 0, 10, 10)
	offscreen := addRect(c.Root(), "offscreen", 5000, 0, 10, 10)
	s.Update()

	if visible.Culled() {
		t.Error("on-screen node culled")
	}
	if !offscreen.Culled() || IsEligible(offscreen) {
		t.Error("off-screen node not culled")
	}
}

func TestSceneDepthAssignment(t *testing.T) {
	s := NewScene()
	c := s.NewCanvas("ui", nil)
	a := addRect(c.Root(), "a", 0, 0, 10, 10)
	group := NewContainer("group")
	c.Root().AddChild(group)
	b := addRect(group, "b", 0, 0, 10, 10)
	hidden := addRect(c.Root(), "hidden", 0, 0, 10, 10)
	hidden.Visible = false
	s.Update()

	if a.Depth() != 0 || b.Depth() != 1 {
		t.Errorf("depths a=%d b=%d, want 0, 1", a.Depth(), b.Depth())
	}
	if group.Depth() != DepthNotRendered || hidden.Depth() != DepthNotRendered {
		t.Errorf("group=%d hidden=%d, want both %d", group.Depth(), hidden.Depth(), DepthNotRendered)
	}
	if len(c.RaycastElements()) != 3 {
		t.Errorf("raycast registry = %d, want 3", len(c.RaycastElements()))
	}
}

func TestSceneMissingOverlaysLogError(t *testing.T) {
	logs := observeLogs(t, zapcore.ErrorLevel)
	s := NewScene()
	s.SetTargetOverlay(true)
	s.SetHitOverlay(true, true)

	if logs.FilterMessage("TargetOverlay not found").Len() != 1 {
		t.Error("missing target overlay not logged")
	}
	if logs.FilterMessage("HitOverlay not found").Len() != 1 {
		t.Error("missing hit overlay not logged")
	}
}

func TestSceneSetOverlays(t *testing.T) {
	s := NewScene()
	target := s.NewTargetOverlay()
	hits := s.NewHitOverlay()

	s.SetTargetOverlay(false)
	if target.Enabled {
		t.Error("target overlay still enabled")
	}
	s.SetHitOverlay(false, true)
	if hits.Hits.DrawTouchRect || !hits.Hits.DumpTouchName {
		t.Errorf("hit flags = %v, %v; want false, true", hits.Hits.DrawTouchRect, hits.Hits.DumpTouchName)
	}
	if s.TargetOverlay() != target || s.HitOverlay() != hits {
		t.Error("overlay lookup returned the wrong overlay")
	}
}

func TestSceneNewTouchEndToEnd(t *testing.T) {
	logs := observeLogs(t, zapcore.InfoLevel)
	s := NewScene()
	c := s.NewCanvas("ui", nil)
	addRect(c.Root(), "ok", 0, 0, 100, 40)
	addRect(c.Root(), "cancel", 0, 50, 100, 40)
	in := &InjectedInput{}
	s.SetInput(in)
	s.NewHitOverlay()
	s.SetHitOverlay(true, true)

	in.MoveMouse(10, 10)
	s.Update()
	s.Update()
	in.PressTouch(1, 10, 60)
	s.Update()
	in.ReleaseTouch(1)
	s.Update()
	in.PressTouch(2, 10, 60)
	s.Update()

	var names []string
	for _, e := range logs.FilterMessage("touch").All() {
		names = append(names, e.ContextMap()["element"].(string))
	}
	want := []string{"ok", "cancel", "cancel"}
	if !equalNames(names, want) {
		t.Errorf("touches = %v, want %v", names, want)
	}
	if in.NumTouches() != 1 {
		t.Errorf("released contacts not retired: %d touches", in.NumTouches())
	}
}

func TestSceneTargetOverlaySeesNewCanvas(t *testing.T) {
	s := NewScene()
	target := s.NewTargetOverlay()
	s.Update()

	c := s.NewCanvas("late", nil)
	addRect(c.Root(), "a", 0, 0, 10, 10)
	s.Update()
	if len(target.Targets.Targets()) != 1 {
		t.Errorf("targets = %d, want 1", len(target.Targets.Targets()))
	}

	s.RemoveCanvas(c)
	s.Update()
	if len(target.Targets.Targets()) != 0 {
		t.Errorf("targets after RemoveCanvas = %d, want 0", len(target.Targets.Targets()))
	}
}

func TestSceneDebugMode(t *testing.T) {
	logs := observeLogs(t, zapcore.DebugLevel)
	s := NewScene()
	c := s.NewCanvas("ui", nil)
	addRect(c.Root(), "a", 0, 0, 10, 10)
	s.NewTargetOverlay()

	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	if logLevel.Level() != zapcore.DebugLevel {
		t.Errorf("log level = %v, want debug", logLevel.Level())
	}
	s.Update()

	entries := logs.FilterMessage("tick").All()
	if len(entries) != 1 {
		t.Fatalf("tick entries = %d, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["surfaces"] != int64(1) || ctx["targets"] != int64(1) {
		t.Errorf("tick stats = %v", ctx)
	}
}

func TestSceneDraw(t *testing.T) {
	s := NewScene()
	cam := s.NewCamera(Rect{X: 0, Y: 0, Width: 320, Height: 240})
	world := s.NewCanvas("world", cam)
	addRect(world.Root(), "tile", 0, 0, 32, 32)
	ui := s.NewCanvas("ui", nil)
	ui.Order = 1
	addRect(ui.Root(), "button", 10, 10, 80, 20)
	s.ApplyOverlayConfig(DefaultOverlayConfig())
	s.Update()

	screen := ebiten.NewImage(640, 480)
	// Should not panic
	s.Draw(screen)
}

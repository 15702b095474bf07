package touchrect

import (
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

// Scene is the top-level object that owns the canvases, cameras, input
// backend and debug overlays. It is the SurfaceRegistry and EventRouter the
// overlays inspect.
type Scene struct {
	canvases []*Canvas
	surfaces []Surface
	order    []*Canvas
	cameras  []*Camera
	overlays []Overlay

	input    InputBackend
	pointers *PointerSource
	script   *TouchScript

	debug        bool
	debugLimiter *rate.Limiter
}

// NewScene creates an empty scene with no input backend.
func NewScene() *Scene {
	return &Scene{pointers: NewPointerSource(nil)}
}

// --- Canvases & cameras ---

// NewCanvas creates a canvas drawn through cam (nil for screen space) and
// adds it to the scene.
func (s *Scene) NewCanvas(name string, cam *Camera) *Canvas {
	c := NewCanvas(name, cam)
	s.AddCanvas(c)
	return c
}

// AddCanvas registers c. Registering the same canvas twice is a no-op.
func (s *Scene) AddCanvas(c *Canvas) {
	for _, have := range s.canvases {
		if have == c {
			return
		}
	}
	s.canvases = append(s.canvases, c)
	s.surfaces = append(s.surfaces, c)
	s.refreshTargets()
}

// RemoveCanvas unregisters c.
func (s *Scene) RemoveCanvas(c *Canvas) {
	for i, have := range s.canvases {
		if have == c {
			s.canvases = append(s.canvases[:i], s.canvases[i+1:]...)
			s.surfaces = append(s.surfaces[:i], s.surfaces[i+1:]...)
			s.refreshTargets()
			return
		}
	}
}

// refreshTargets re-reads the surface list into every attached target
// overlay after the canvas set changed.
func (s *Scene) refreshTargets() {
	for _, o := range s.overlays {
		if t, ok := o.(*TargetOverlay); ok && t.Targets != nil {
			t.Targets.Refresh()
		}
	}
}

// Canvases returns the registered canvases. The returned slice MUST NOT be mutated.
func (s *Scene) Canvases() []*Canvas {
	return s.canvases
}

// ActiveSurfaces implements SurfaceRegistry. Disabled canvases are listed
// too; consumers check Active themselves.
func (s *Scene) ActiveSurfaces() []Surface {
	return s.surfaces
}

// NewCamera creates a camera with the given viewport and adds it to the scene.
// Scene cameras advance their ScrollTo animations on Update.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := NewCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// --- Input ---

// SetInput selects the input backend read by the scene's pointer source.
// Backends with a Poll method are polled at the start of every Update.
func (s *Scene) SetInput(in InputBackend) {
	s.input = in
	s.pointers.Input = in
}

// Input returns the current input backend.
func (s *Scene) Input() InputBackend {
	return s.input
}

// Pointers returns the pointer source shared by the scene's overlays.
func (s *Scene) Pointers() *PointerSource {
	return s.pointers
}

// --- Overlays ---

// AddOverlay attaches o. Overlays update and draw in the order added.
func (s *Scene) AddOverlay(o Overlay) {
	s.overlays = append(s.overlays, o)
}

// RemoveOverlay detaches o.
func (s *Scene) RemoveOverlay(o Overlay) {
	for i, have := range s.overlays {
		if have == o {
			s.overlays = append(s.overlays[:i], s.overlays[i+1:]...)
			return
		}
	}
}

// NewTargetOverlay creates a target overlay over this scene's canvases and
// attaches it.
func (s *Scene) NewTargetOverlay() *TargetOverlay {
	o := NewTargetOverlay(s)
	s.AddOverlay(o)
	return o
}

// NewHitOverlay creates a hit overlay routed through this scene and its
// pointer source, and attaches it.
func (s *Scene) NewHitOverlay() *HitOverlay {
	o := NewHitOverlay(s, s.pointers)
	s.AddOverlay(o)
	return o
}

// TargetOverlay returns the first attached target overlay, or nil.
func (s *Scene) TargetOverlay() *TargetOverlay {
	for _, o := range s.overlays {
		if t, ok := o.(*TargetOverlay); ok {
			return t
		}
	}
	return nil
}

// HitOverlay returns the first attached hit overlay, or nil.
func (s *Scene) HitOverlay() *HitOverlay {
	for _, o := range s.overlays {
		if h, ok := o.(*HitOverlay); ok {
			return h
		}
	}
	return nil
}

// SetTargetOverlay enables or disables the attached target overlay. Logs an
// error and does nothing when none is attached.
func (s *Scene) SetTargetOverlay(enabled bool) {
	o := s.TargetOverlay()
	if o == nil {
		Logger().Error("TargetOverlay not found")
		return
	}
	o.Enabled = enabled
}

// SetHitOverlay sets the draw and log switches of the attached hit overlay.
// Logs an error and does nothing when none is attached.
func (s *Scene) SetHitOverlay(drawTouchRect, dumpTouchName bool) {
	o := s.HitOverlay()
	if o == nil || o.Hits == nil {
		Logger().Error("HitOverlay not found")
		return
	}
	o.Hits.DrawTouchRect = drawTouchRect
	o.Hits.DumpTouchName = dumpTouchName
}

// --- Tick ---

// tickEnder is implemented by synthetic backends that retire released
// contacts once the tick has been read.
type tickEnder interface {
	EndTick()
}

// Update advances the touch script, polls input, advances cameras, rebuilds every canvas and then
// updates the overlays.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if s.script != nil {
		s.script.step(s)
	}
	if p, ok := s.input.(poller); ok {
		p.Poll()
	}
	for _, cam := range s.cameras {
		cam.update(dt)
	}
	for _, c := range s.canvases {
		c.rebuild()
	}
	for _, o := range s.overlays {
		o.Update()
	}

	if s.debug {
		s.debugLog(s.collectStats())
	}

	if e, ok := s.input.(tickEnder); ok {
		e.EndTick()
	}
}

func (s *Scene) collectStats() debugStats {
	st := debugStats{surfaces: len(s.canvases)}
	if t := s.TargetOverlay(); t != nil && t.Targets != nil {
		st.targets = len(t.Targets.Targets())
	}
	if h := s.HitOverlay(); h != nil && h.Hits != nil {
		st.hits = len(h.Hits.Hits())
		st.queries = h.Hits.Queries()
	}
	st.pointers = len(s.pointers.Read())
	return st
}

// Draw renders the enabled canvases in ascending Order, then the overlays.
// Canvases with a camera are clipped to its viewport.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.order = append(s.order[:0], s.canvases...)
	sort.SliceStable(s.order, func(i, j int) bool {
		return s.order[i].Order < s.order[j].Order
	})
	for _, c := range s.order {
		if !c.Enabled {
			continue
		}
		target := screen
		if cam := c.Camera; cam != nil {
			vp := cam.Viewport
			target = screen.SubImage(image.Rect(
				int(vp.X), int(vp.Y),
				int(vp.X+vp.Width), int(vp.Y+vp.Height),
			)).(*ebiten.Image)
		}
		c.draw(target)
	}
	for _, o := range s.overlays {
		o.Draw(screen)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// overlay stats are logged at debug level at most twice a second.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		s.debugLimiter = newDebugLimiter()
		logLevel.SetLevel(zapcore.DebugLevel)
	} else {
		logLevel.SetLevel(zapcore.InfoLevel)
	}
}

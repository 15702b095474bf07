package touchrect

// SurfaceRegistry lists the raycast-capable surfaces of the host.
type SurfaceRegistry interface {
	// ActiveSurfaces returns the registered surfaces. The returned slice
	// MUST NOT be mutated by the caller.
	ActiveSurfaces() []Surface
}

// Target is one eligible element and the world quad it occupies.
type Target struct {
	Element Element
	Surface Surface
	// Camera is the surface's event camera, nil for screen space.
	Camera Projector
	Quad   Quad
}

// TargetEnumerator collects every eligible raycast target once per tick.
type TargetEnumerator struct {
	Registry SurfaceRegistry
	// Inspect re-fetches the surface list every tick instead of caching it.
	// Use it when surfaces are not registered outside active simulation.
	Inspect bool

	surfaces []Surface
	cached   bool
	targets  []Target
}

// Refresh re-fetches the surface list from the registry.
func (te *TargetEnumerator) Refresh() {
	te.surfaces = te.surfaces[:0]
	te.cached = true
	if te.Registry == nil {
		return
	}
	te.surfaces = append(te.surfaces, te.Registry.ActiveSurfaces()...)
}

// Update replaces the target set with this tick's eligible elements, in
// surface order then element order.
func (te *TargetEnumerator) Update() {
	if te.Inspect || !te.cached {
		te.Refresh()
	}
	clear(te.targets)
	te.targets = te.targets[:0]
	for _, s := range te.surfaces {
		te.collect(s)
	}
}

func (te *TargetEnumerator) collect(s Surface) {
	if s == nil || !s.Active() {
		return
	}
	cam := s.EventCamera()
	for _, e := range s.RaycastElements() {
		if !IsEligible(e) {
			continue
		}
		q, ok := WorldQuad(e)
		if !ok {
			continue
		}
		te.targets = append(te.targets, Target{Element: e, Surface: s, Camera: cam, Quad: q})
	}
}

// PruneDestroyed drops targets whose element was destroyed since Update.
func (te *TargetEnumerator) PruneDestroyed() {
	kept := te.targets[:0]
	for _, t := range te.targets {
		if t.Element.Destroyed() {
			continue
		}
		kept = append(kept, t)
	}
	clear(te.targets[len(kept):])
	te.targets = kept
}

// Targets returns the current target set. The returned slice is reused and
// MUST NOT be retained past the next Update.
func (te *TargetEnumerator) Targets() []Target {
	return te.targets
}

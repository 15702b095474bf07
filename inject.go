package touchrect

// InjectedInput is a synthetic input backend. It implements ModernInput
// directly and LegacyInput through Legacy. Screen coordinates are used,
// matching what a screenshot shows.
type InjectedInput struct {
	mouse    Vec2
	hasMouse bool
	touches  []TouchContact
}

// MoveMouse places the mouse at (x, y), attaching it if absent.
func (in *InjectedInput) MoveMouse(x, y float64) {
	in.mouse = Vec2{x, y}
	in.hasMouse = true
}

// RemoveMouse detaches the mouse device.
func (in *InjectedInput) RemoveMouse() {
	in.hasMouse = false
}

// PressTouch starts (or restarts) touch id at (x, y). New contacts are
// appended, so enumeration order is press order.
func (in *InjectedInput) PressTouch(id int, x, y float64) {
	if t := in.find(id); t != nil {
		t.Position = Vec2{x, y}
		t.InProgress = true
		return
	}
	in.touches = append(in.touches, TouchContact{ID: id, Position: Vec2{x, y}, InProgress: true})
}

// MoveTouch moves an existing touch. Unknown ids are ignored.
func (in *InjectedInput) MoveTouch(id int, x, y float64) {
	if t := in.find(id); t != nil {
		t.Position = Vec2{x, y}
	}
}

// ReleaseTouch ends touch id. The contact stays listed, not in progress,
// until EndTick.
func (in *InjectedInput) ReleaseTouch(id int) {
	if t := in.find(id); t != nil {
		t.InProgress = false
	}
}

// EndTick drops released contacts. Call once per tick after reading.
func (in *InjectedInput) EndTick() {
	kept := in.touches[:0]
	for _, t := range in.touches {
		if t.InProgress {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(in.touches); i++ {
		in.touches[i] = TouchContact{}
	}
	in.touches = kept
}

func (in *InjectedInput) find(id int) *TouchContact {
	for i := range in.touches {
		if in.touches[i].ID == id {
			return &in.touches[i]
		}
	}
	return nil
}

// MousePosition implements InputBackend.
func (in *InjectedInput) MousePosition() (Vec2, bool) {
	return in.mouse, in.hasMouse
}

// NumTouches implements ModernInput.
func (in *InjectedInput) NumTouches() int { return len(in.touches) }

// TouchAt implements ModernInput.
func (in *InjectedInput) TouchAt(i int) TouchContact { return in.touches[i] }

// Legacy returns a LegacyInput view of the same state: the mouse is always
// reported and only in-progress touches are counted.
func (in *InjectedInput) Legacy() LegacyInput {
	return legacyView{in}
}

type legacyView struct {
	in *InjectedInput
}

func (v legacyView) MousePosition() (Vec2, bool) {
	return v.in.mouse, true
}

func (v legacyView) EndTick() { v.in.EndTick() }

func (v legacyView) TouchCount() int {
	n := 0
	for _, t := range v.in.touches {
		if t.InProgress {
			n++
		}
	}
	return n
}

func (v legacyView) TouchPosition(i int) Vec2 {
	for _, t := range v.in.touches {
		if !t.InProgress {
			continue
		}
		if i == 0 {
			return t.Position
		}
		i--
	}
	return Vec2{}
}

package touchrect

// PointerSample is one active pointer position in screen space for the
// current tick.
type PointerSample struct {
	Position Vec2
	Kind     PointerKind
	// Index is the touch index reported by the backend. Zero for the mouse.
	Index int
}

// InputBackend is an input device source. A backend must additionally
// implement ModernInput or LegacyInput to contribute touches.
type InputBackend interface {
	// MousePosition returns the mouse position and whether a mouse device
	// is present.
	MousePosition() (Vec2, bool)
}

// LegacyInput is a unified backend that always reports a mouse position and
// lists only the currently pressed touches.
type LegacyInput interface {
	InputBackend
	TouchCount() int
	TouchPosition(i int) Vec2
}

// TouchContact is one touch reported by a ModernInput backend.
type TouchContact struct {
	ID         int
	Position   Vec2
	InProgress bool
}

// ModernInput is a segmented backend: the mouse may be absent, and touch
// contacts carry their own in-progress state.
type ModernInput interface {
	InputBackend
	NumTouches() int
	TouchAt(i int) TouchContact
}

// PointerSource unifies the active input backend into one ordered list of
// pointer positions.
type PointerSource struct {
	Input InputBackend

	buf []PointerSample
}

// NewPointerSource returns a PointerSource reading from in.
func NewPointerSource(in InputBackend) *PointerSource {
	return &PointerSource{Input: in}
}

// Read returns this tick's pointer samples: the mouse first, then touches in
// backend order. The slice is reused across calls and is only valid until
// the next call.
func (p *PointerSource) Read() []PointerSample {
	p.buf = p.buf[:0]
	switch in := p.Input.(type) {
	case ModernInput:
		if pos, ok := in.MousePosition(); ok {
			p.buf = append(p.buf, PointerSample{Position: pos, Kind: PointerMouse})
		}
		for i, n := 0, in.NumTouches(); i < n; i++ {
			t := in.TouchAt(i)
			if !t.InProgress {
				continue
			}
			p.buf = append(p.buf, PointerSample{Position: t.Position, Kind: PointerTouch, Index: i})
		}
	case LegacyInput:
		pos, _ := in.MousePosition()
		p.buf = append(p.buf, PointerSample{Position: pos, Kind: PointerMouse})
		for i, n := 0, in.TouchCount(); i < n; i++ {
			p.buf = append(p.buf, PointerSample{Position: in.TouchPosition(i), Kind: PointerTouch, Index: i})
		}
	}
	return p.buf
}

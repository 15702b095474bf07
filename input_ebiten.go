package touchrect

import (
	"runtime"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput is a LegacyInput backed by Ebitengine's global input state.
// Touches are ordered by ID so indices stay stable while contacts persist.
// Call Poll once per tick before reading.
type EbitenInput struct {
	touchIDs []ebiten.TouchID
}

// Poll snapshots the current touch IDs.
func (e *EbitenInput) Poll() {
	e.touchIDs = ebiten.AppendTouchIDs(e.touchIDs[:0])
	slices.Sort(e.touchIDs)
}

// MousePosition returns the cursor position. Ebitengine always reports one.
func (e *EbitenInput) MousePosition() (Vec2, bool) {
	x, y := ebiten.CursorPosition()
	return Vec2{float64(x), float64(y)}, true
}

// TouchCount returns the number of pressed touches.
func (e *EbitenInput) TouchCount() int {
	return len(e.touchIDs)
}

// TouchPosition returns the position of the i-th pressed touch.
func (e *EbitenInput) TouchPosition(i int) Vec2 {
	x, y := ebiten.TouchPosition(e.touchIDs[i])
	return Vec2{float64(x), float64(y)}
}

// EbitenPointerInput is a ModernInput backed by Ebitengine. Touches pressed
// this tick are listed as in progress; touches released this tick follow
// them with InProgress false. Call Poll once per tick before reading.
type EbitenPointerInput struct {
	// MouseEnabled reports a mouse device. Defaults to false on mobile.
	MouseEnabled bool

	active   []ebiten.TouchID
	released []ebiten.TouchID
	contacts []TouchContact
}

// NewEbitenPointerInput returns a backend with MouseEnabled set for desktop
// platforms.
func NewEbitenPointerInput() *EbitenPointerInput {
	return &EbitenPointerInput{
		MouseEnabled: runtime.GOOS != "android" && runtime.GOOS != "ios",
	}
}

// Poll snapshots active and just-released touches.
func (e *EbitenPointerInput) Poll() {
	e.active = ebiten.AppendTouchIDs(e.active[:0])
	slices.Sort(e.active)
	e.released = inpututil.AppendJustReleasedTouchIDs(e.released[:0])
	slices.Sort(e.released)

	e.contacts = e.contacts[:0]
	for _, id := range e.active {
		x, y := ebiten.TouchPosition(id)
		e.contacts = append(e.contacts, TouchContact{
			ID:         int(id),
			Position:   Vec2{float64(x), float64(y)},
			InProgress: true,
		})
	}
	for _, id := range e.released {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		e.contacts = append(e.contacts, TouchContact{
			ID:       int(id),
			Position: Vec2{float64(x), float64(y)},
		})
	}
}

// MousePosition returns the cursor position when MouseEnabled is set.
func (e *EbitenPointerInput) MousePosition() (Vec2, bool) {
	if !e.MouseEnabled {
		return Vec2{}, false
	}
	x, y := ebiten.CursorPosition()
	return Vec2{float64(x), float64(y)}, true
}

// NumTouches returns the number of contacts captured by the last Poll.
func (e *EbitenPointerInput) NumTouches() int {
	return len(e.contacts)
}

// TouchAt returns the i-th contact captured by the last Poll.
func (e *EbitenPointerInput) TouchAt(i int) TouchContact {
	return e.contacts[i]
}

// poller is implemented by backends that snapshot device state once per tick.
type poller interface {
	Poll()
}

package touchrect

import "go.uber.org/zap"

// RaycastResult is one candidate returned by an EventRouter.
type RaycastResult struct {
	Element Element
	Surface Surface
	// Camera is the camera the hit was resolved with, nil for screen space.
	Camera Projector
	// Pointer is the sample that produced the hit.
	Pointer   PointerSample
	SortOrder int
	Depth     int
}

// EventRouter performs the host's authoritative hit test.
type EventRouter interface {
	// RaycastAll appends every element under pos to dst, topmost first,
	// and returns the extended slice.
	RaycastAll(pos Vec2, dst []RaycastResult) []RaycastResult
}

// TouchEvent reports an element that became the topmost hit of a pointer
// this tick.
type TouchEvent struct {
	Element Element
	Name    string
	Pointer PointerSample
}

// TouchReporter receives new-touch events in addition to the log.
type TouchReporter interface {
	ReportTouch(TouchEvent)
}

// HitTester finds the topmost element under every pointer each tick and
// reports elements that were not hit on the previous tick.
type HitTester struct {
	Router   EventRouter
	Pointers *PointerSource
	// DrawTouchRect keeps hit records for drawing.
	DrawTouchRect bool
	// DumpTouchName logs newly touched elements.
	DumpTouchName bool
	// Reporter, if set, receives a TouchEvent for every logged touch.
	Reporter TouchReporter

	hits    []RaycastResult
	prev    []RaycastResult
	tmp     []RaycastResult
	queries int
}

// Enabled reports whether Update does any work.
func (h *HitTester) Enabled() bool {
	return h.DrawTouchRect || h.DumpTouchName
}

// Update runs one tick of hit testing. It does nothing, and queries nothing,
// while both DrawTouchRect and DumpTouchName are off.
func (h *HitTester) Update() {
	h.queries = 0
	if !h.Enabled() {
		return
	}

	h.prev = append(h.prev[:0], h.hits...)
	h.updateFirstHits()

	if h.DumpTouchName {
		for _, hit := range h.hits {
			if !containsElement(h.prev, hit.Element) {
				h.reportTouch(hit)
			}
		}
	}
}

// updateFirstHits keeps the topmost candidate for every pointer sample.
func (h *HitTester) updateFirstHits() {
	clear(h.hits)
	h.hits = h.hits[:0]
	if h.Router == nil || h.Pointers == nil {
		return
	}
	for _, p := range h.Pointers.Read() {
		h.tmp = h.Router.RaycastAll(p.Position, h.tmp[:0])
		h.queries++
		if len(h.tmp) == 0 {
			continue
		}
		first := h.tmp[0]
		first.Pointer = p
		h.hits = append(h.hits, first)
	}
	clear(h.tmp)
	h.tmp = h.tmp[:0]
}

func (h *HitTester) reportTouch(hit RaycastResult) {
	name := hit.Element.String()
	Logger().Info("touch",
		zap.String("element", name),
		zap.Float64("x", hit.Pointer.Position.X),
		zap.Float64("y", hit.Pointer.Position.Y),
	)
	if h.Reporter != nil {
		h.Reporter.ReportTouch(TouchEvent{Element: hit.Element, Name: name, Pointer: hit.Pointer})
	}
}

// Hits returns this tick's topmost hit per pointer. The returned slice is
// reused and MUST NOT be retained past the next Update.
func (h *HitTester) Hits() []RaycastResult {
	return h.hits
}

// Queries returns the number of router queries made by the last Update.
func (h *HitTester) Queries() int {
	return h.queries
}

func containsElement(rs []RaycastResult, e Element) bool {
	for i := range rs {
		if rs[i].Element == e {
			return true
		}
	}
	return false
}

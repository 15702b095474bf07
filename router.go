package touchrect

import "sort"

// RaycastAll implements EventRouter. Every eligible raycast target whose
// padded rectangle contains pos is appended to dst, topmost first: higher
// canvas sort order wins, then greater depth. Canvases with a camera only
// accept points inside the camera viewport.
func (s *Scene) RaycastAll(pos Vec2, dst []RaycastResult) []RaycastResult {
	start := len(dst)
	for _, c := range s.canvases {
		if !c.Active() {
			continue
		}
		if c.Camera != nil && !c.Camera.Viewport.Contains(pos.X, pos.Y) {
			continue
		}
		cam := c.EventCamera()
		for _, e := range c.RaycastElements() {
			if !IsEligible(e) || !raycastContains(e, cam, pos) {
				continue
			}
			dst = append(dst, RaycastResult{
				Element:   e,
				Surface:   c,
				Camera:    cam,
				Pointer:   PointerSample{Position: pos},
				SortOrder: c.Order,
				Depth:     e.Depth(),
			})
		}
	}
	hits := dst[start:]
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].SortOrder != hits[j].SortOrder {
			return hits[i].SortOrder > hits[j].SortOrder
		}
		return hits[i].Depth > hits[j].Depth
	})
	return dst
}

// raycastContains reports whether the screen point pos, cast through cam,
// lands inside e's padded local rectangle. The bounds are taken from the
// padded corners as-is, so over-padded elements never contain anything.
func raycastContains(e Element, cam Projector, pos Vec2) bool {
	p, ok := screenToLocal(cam, e.LocalToWorld(), pos.X, pos.Y)
	if !ok {
		return false
	}
	q := LocalQuad(e)
	lo, hi := q[CornerTopLeft], q[CornerBottomRight]
	return p.X >= lo.X() && p.X <= hi.X() &&
		p.Y >= lo.Y() && p.Y <= hi.Y()
}

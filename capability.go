package touchrect

// Capability is something attached to a tree node that takes part in the
// raycast eligibility walk. The built-in kinds are Group, SortOverride and
// the filter adapters returned by Filter and FilterFunc.
type Capability interface {
	// visitRaycast applies the capability to the walk state and reports
	// whether it vetoes the raycast.
	visitRaycast(st *groupState) (veto bool)
}

// groupState accumulates the ancestor walk. Once ignoreParentGroups is
// latched, further groups no longer contribute; stop ends the ascent after
// the current node.
type groupState struct {
	ignoreParentGroups bool
	stop               bool
}

// Group is a group filter: it blocks raycasts for the node and its
// descendants unless a closer group set IgnoreParentGroups.
type Group struct {
	BlocksRaycasts     bool
	IgnoreParentGroups bool
}

func (g *Group) visitRaycast(st *groupState) bool {
	if st.ignoreParentGroups {
		return false
	}
	if g.IgnoreParentGroups {
		st.ignoreParentGroups = true
	}
	return !g.BlocksRaycasts
}

// SortOverride marks a node whose surface sorts independently of its
// siblings. An enabled override ends the ancestor walk at its node.
type SortOverride struct {
	Enabled bool
}

func (s *SortOverride) visitRaycast(st *groupState) bool {
	if s.Enabled {
		st.stop = true
	}
	return false
}

// RaycastFilter is implemented by anything that can veto a raycast on its own.
type RaycastFilter interface {
	IsRaycastValid() bool
}

type filterCapability struct {
	f RaycastFilter
}

func (c filterCapability) visitRaycast(*groupState) bool {
	return !c.f.IsRaycastValid()
}

// Filter wraps a RaycastFilter as a Capability.
func Filter(f RaycastFilter) Capability {
	return filterCapability{f: f}
}

// FilterFunc adapts a plain function to a RaycastFilter.
type FilterFunc func() bool

// IsRaycastValid calls f.
func (f FilterFunc) IsRaycastValid() bool { return f() }

func (f FilterFunc) visitRaycast(*groupState) bool {
	return !f()
}

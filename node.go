package touchrect

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// nodeIDCounter is a plain counter; touchrect is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of the reference UI tree. It implements Element so the
// overlays can inspect trees built with it; any other host can implement
// Element instead.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y, Z        float64
	ScaleX, ScaleY float64
	Rotation       float64
	TiltX, TiltY   float64
	PivotX, PivotY float64

	// Width and Height define the local rectangle (0, 0)-(Width, Height).
	Width, Height float64

	// Visibility & interaction
	Visible bool
	// Interactable marks the node as a raycast target.
	Interactable bool
	// Cull forces the node to be treated as culled.
	Cull bool
	// Padding insets the raycast area.
	Padding Padding
	Color   Color

	// Ordering
	ZIndex int

	// Metadata
	UserData any

	// Computed (updated by Scene.Update)
	worldTransform mgl64.Mat4
	transformDirty bool
	canvas         *Canvas
	depth          int
	autoCulled     bool

	caps []Capability

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Color = ColorWhite
	n.Visible = true
	n.worldTransform = mgl64.Ident4()
	n.transformDirty = true
	n.childrenSorted = true
	n.depth = DepthNotRendered
}

// NewContainer creates a node with no size that only groups children.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewRect creates a drawn, raycastable rectangle of the given size.
func NewRect(name string, w, h float64, c Color) *Node {
	n := &Node{Name: name, Width: w, Height: h}
	nodeDefaults(n)
	n.Color = c
	n.Interactable = true
	return n
}

// --- Capabilities ---

// AddCapability attaches c to the node.
func (n *Node) AddCapability(c Capability) {
	n.caps = append(n.caps, c)
}

// RemoveCapability detaches c. No-op if c is not attached. c must be
// comparable: a *Group, a *SortOverride, or a Filter of a pointer type.
func (n *Node) RemoveCapability(c Capability) {
	for i, have := range n.caps {
		if have == c {
			copy(n.caps[i:], n.caps[i+1:])
			n.caps[len(n.caps)-1] = nil
			n.caps = n.caps[:len(n.caps)-1]
			return
		}
	}
}

// --- Element ---

// ParentNode implements TreeNode.
func (n *Node) ParentNode() TreeNode {
	if n.Parent == nil {
		return nil
	}
	return n.Parent
}

// Capabilities implements TreeNode.
func (n *Node) Capabilities() []Capability { return n.caps }

// String returns the node name.
func (n *Node) String() string { return n.Name }

// RaycastTarget implements Element.
func (n *Node) RaycastTarget() bool { return n.Interactable }

// Culled reports whether the node is culled, either explicitly or because
// it fell outside its canvas camera's viewport on the last update.
func (n *Node) Culled() bool { return n.Cull || n.autoCulled }

// Depth returns the node's draw index within its canvas, or
// DepthNotRendered when it was not drawn on the last update.
func (n *Node) Depth() int { return n.depth }

// Destroyed implements Element.
func (n *Node) Destroyed() bool { return n.disposed }

// LocalRect implements Element.
func (n *Node) LocalRect() Rect { return Rect{Width: n.Width, Height: n.Height} }

// RaycastPadding implements Element.
func (n *Node) RaycastPadding() Padding { return n.Padding }

// Surface returns the canvas the node was found under on the last update.
func (n *Node) Surface() Surface {
	if n.canvas == nil {
		return nil
	}
	return n.canvas
}

// Canvas returns the owning canvas, or nil.
func (n *Node) Canvas() *Canvas { return n.canvas }

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("touchrect: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("touchrect: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("touchrect: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// orderedChildren returns the children in draw order (stable by ZIndex).
func (n *Node) orderedChildren() []*Node {
	if n.childrenSorted {
		if n.sortedChildren != nil {
			return n.sortedChildren
		}
		return n.children
	}
	n.sortedChildren = append(n.sortedChildren[:0], n.children...)
	sort.SliceStable(n.sortedChildren, func(i, j int) bool {
		return n.sortedChildren[i].ZIndex < n.sortedChildren[j].ZIndex
	})
	n.childrenSorted = true
	return n.sortedChildren
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Overlays holding a disposed
// node skip it.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.caps = nil
	n.canvas = nil
	n.depth = DepthNotRendered
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

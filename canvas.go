package touchrect

import "github.com/hajimehoshi/ebiten/v2"

// Canvas is a Surface of the reference host: a root node, an optional camera
// and a sort order. Nodes under Root belong to the canvas.
type Canvas struct {
	name string
	root *Node

	// Camera projects the canvas. Nil renders the canvas in screen space.
	Camera *Camera
	// Order sorts canvases against each other; higher draws on top.
	Order int
	// Enabled controls drawing and raycasting for the whole canvas.
	Enabled bool

	raycastables []Element
	drawList     []*Node
	verts        []ebiten.Vertex
	inds         []uint32
}

// NewCanvas creates an enabled canvas with an empty root container.
func NewCanvas(name string, cam *Camera) *Canvas {
	c := &Canvas{
		name:    name,
		root:    NewContainer(name),
		Camera:  cam,
		Enabled: true,
	}
	return c
}

// Root returns the canvas root container.
func (c *Canvas) Root() *Node { return c.root }

// Name implements Surface.
func (c *Canvas) Name() string { return c.name }

// Active implements Surface.
func (c *Canvas) Active() bool { return c.Enabled }

// EventCamera implements Surface.
func (c *Canvas) EventCamera() Projector {
	if c.Camera == nil {
		return nil
	}
	return c.Camera
}

// SortOrder implements Surface.
func (c *Canvas) SortOrder() int { return c.Order }

// RaycastElements returns the raycast-target nodes found on the last update,
// in draw order.
func (c *Canvas) RaycastElements() []Element { return c.raycastables }

// rebuild refreshes transforms, depths, culling and the raycast registry.
// Hidden subtrees and zero-size nodes keep DepthNotRendered.
func (c *Canvas) rebuild() {
	c.raycastables = c.raycastables[:0]
	c.drawList = c.drawList[:0]
	updateWorldTransform(c.root, identityTransform, false)

	var cull *Camera
	if c.Camera != nil && c.Camera.CullEnabled {
		cull = c.Camera
	}
	depth := 0
	c.visit(c.root, true, cull, &depth)
}

func (c *Canvas) visit(n *Node, visible bool, cull *Camera, depth *int) {
	visible = visible && n.Visible && c.Enabled
	n.canvas = c
	n.autoCulled = false
	n.depth = DepthNotRendered
	if visible && n.Width != 0 && n.Height != 0 {
		if cull != nil {
			q := paddedQuad(n.LocalRect(), Padding{})
			for i := range q {
				q[i] = n.LocalPointToWorld(q[i])
			}
			n.autoCulled = !cull.screenAABB(q[:]).Intersects(cull.Viewport)
		}
		n.depth = *depth
		*depth++
		c.drawList = append(c.drawList, n)
	}
	if n.Interactable {
		c.raycastables = append(c.raycastables, n)
	}
	for _, child := range n.orderedChildren() {
		c.visit(child, visible, cull, depth)
	}
}

// draw fills every drawn, unculled node's rectangle with its Color.
func (c *Canvas) draw(dst *ebiten.Image) {
	c.verts = c.verts[:0]
	c.inds = c.inds[:0]
	cam := c.EventCamera()
	for _, n := range c.drawList {
		if n.Culled() || n.Color.A == 0 {
			continue
		}
		q := paddedQuad(n.LocalRect(), Padding{})
		var pos [4]Vec2
		for i := range q {
			s := worldToScreen(cam, n.LocalPointToWorld(q[i]))
			pos[i] = Vec2{s.X(), s.Y()}
		}
		col := n.Color
		c.verts, c.inds = appendQuad(c.verts, c.inds, pos, [4]Color{col, col, col, col})
	}
	drawMesh(dst, c.verts, c.inds)
}

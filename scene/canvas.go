package scene

// Canvas is the root container of a scene tree. It carries the device size
// and the shape registry consulted for clip construction, and it is the
// consumer hook for the coarse per-element dirty flags.
type Canvas struct {
	Group
	width, height int
	shapeBase     *Registry
}

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	shapeBase *Registry
}

// WithShapeBase sets the shape registry the canvas hands to elements for
// clip construction. Without this option the canvas starts with an empty
// registry and every clip lookup misses.
//
// Example:
//
//	canvas := scene.NewCanvas(800, 600, scene.WithShapeBase(shape.Registry()))
func WithShapeBase(r *Registry) CanvasOption {
	return func(o *canvasOptions) {
		o.shapeBase = r
	}
}

// NewCanvas creates a canvas with the given device size.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	var o canvasOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.shapeBase == nil {
		o.shapeBase = NewRegistry()
	}

	c := &Canvas{
		width:     width,
		height:    height,
		shapeBase: o.shapeBase,
	}
	c.Init(c, nil)
	c.canvas = c
	return c
}

// Width returns the canvas width in device units.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in device units.
func (c *Canvas) Height() int { return c.height }

// ShapeBase returns the registry of shape constructors. Elements consult it
// when constructing clip shapes.
func (c *Canvas) ShapeBase() *Registry { return c.shapeBase }

// FlushUpdates walks the tree collecting every element whose pending-update
// flag is set, clearing the flags as it goes. The update loop calls this
// once per frame to learn what changed since the last flush.
func (c *Canvas) FlushUpdates() []Node {
	var dirty []Node
	var walk func(n Node)
	walk = func(n Node) {
		el := n.AsElement()
		if el.NeedsUpdate() {
			dirty = append(dirty, n)
			el.MarkUpdated()
		}
		if ct, ok := n.(Container); ok {
			for _, child := range ct.Children() {
				walk(child)
			}
		}
	}
	for _, child := range c.children {
		walk(child)
	}
	c.MarkUpdated()
	return dirty
}

package shape

import (
	g "github.com/IamIpanda/g"
	"github.com/IamIpanda/g/scene"
)

// Circle is a circle shape. Attributes: x, y (center), r (radius),
// lineWidth (stroke width, inflates bbox and hit tolerance).
type Circle struct {
	Base
}

// NewCircle creates a circle from the given attributes.
func NewCircle(attrs scene.Attrs) *Circle {
	c := &Circle{}
	c.Init(c, attrs)
	return c
}

// CalculateBBox returns the circle's bounds inflated by half the stroke
// width.
func (c *Circle) CalculateBBox() g.Rect {
	attrs := c.Attrs()
	x := attrs.Float("x")
	y := attrs.Float("y")
	r := attrs.Float("r")
	return g.Rect{
		MinX: x - r, MinY: y - r,
		MaxX: x + r, MaxY: y + r,
	}.Inflate(c.halfLineWidth())
}

// IsHit reports whether (x, y), in parent coordinates, falls on the circle,
// stroke included.
func (c *Circle) IsHit(x, y float64) bool {
	p := c.InvertFromMatrix(g.Pt(x, y))
	attrs := c.Attrs()
	r := attrs.Float("r") + c.halfLineWidth()
	dx := p.X - attrs.Float("x")
	dy := p.Y - attrs.Float("y")
	return dx*dx+dy*dy <= r*r
}

// Clone returns a detached copy of the circle.
func (c *Circle) Clone() scene.Node {
	clone := NewCircle(c.CloneAttrs())
	c.CopyConfigTo(clone.AsElement())
	return clone
}

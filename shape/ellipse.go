package shape

import (
	g "github.com/IamIpanda/g"
	"github.com/IamIpanda/g/scene"
)

// Ellipse is an axis-aligned ellipse shape. Attributes: x, y (center),
// rx, ry (radii), lineWidth.
type Ellipse struct {
	Base
}

// NewEllipse creates an ellipse from the given attributes.
func NewEllipse(attrs scene.Attrs) *Ellipse {
	e := &Ellipse{}
	e.Init(e, attrs)
	return e
}

// CalculateBBox returns the ellipse's bounds inflated by half the stroke
// width.
func (e *Ellipse) CalculateBBox() g.Rect {
	attrs := e.Attrs()
	x := attrs.Float("x")
	y := attrs.Float("y")
	rx := attrs.Float("rx")
	ry := attrs.Float("ry")
	return g.Rect{
		MinX: x - rx, MinY: y - ry,
		MaxX: x + rx, MaxY: y + ry,
	}.Inflate(e.halfLineWidth())
}

// IsHit reports whether (x, y), in parent coordinates, falls inside the
// ellipse, stroke included.
func (e *Ellipse) IsHit(x, y float64) bool {
	p := e.InvertFromMatrix(g.Pt(x, y))
	attrs := e.Attrs()
	half := e.halfLineWidth()
	rx := attrs.Float("rx") + half
	ry := attrs.Float("ry") + half
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx := (p.X - attrs.Float("x")) / rx
	dy := (p.Y - attrs.Float("y")) / ry
	return dx*dx+dy*dy <= 1
}

// Clone returns a detached copy of the ellipse.
func (e *Ellipse) Clone() scene.Node {
	clone := NewEllipse(e.CloneAttrs())
	e.CopyConfigTo(clone.AsElement())
	return clone
}

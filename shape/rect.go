package shape

import (
	g "github.com/IamIpanda/g"
	"github.com/IamIpanda/g/scene"
)

// Rect is an axis-aligned rectangle shape. Attributes: x, y (top-left),
// width, height, lineWidth.
type Rect struct {
	Base
}

// NewRect creates a rectangle from the given attributes.
func NewRect(attrs scene.Attrs) *Rect {
	r := &Rect{}
	r.Init(r, attrs)
	return r
}

// CalculateBBox returns the rectangle's bounds inflated by half the stroke
// width.
func (r *Rect) CalculateBBox() g.Rect {
	attrs := r.Attrs()
	x := attrs.Float("x")
	y := attrs.Float("y")
	return g.NewRect(x, y, attrs.Float("width"), attrs.Float("height")).
		Inflate(r.halfLineWidth())
}

// IsHit reports whether (x, y), in parent coordinates, falls on the
// rectangle, stroke included.
func (r *Rect) IsHit(x, y float64) bool {
	p := r.InvertFromMatrix(g.Pt(x, y))
	return r.GetBBox().Contains(p.X, p.Y)
}

// Clone returns a detached copy of the rectangle.
func (r *Rect) Clone() scene.Node {
	clone := NewRect(r.CloneAttrs())
	r.CopyConfigTo(clone.AsElement())
	return clone
}

package shape

import (
	g "github.com/IamIpanda/g"
	"github.com/IamIpanda/g/scene"
)

// hitTolerance is the minimum distance, in local units, at which thin
// strokes still register hits.
const hitTolerance = 1.0

// Line is a line segment shape. Attributes: x1, y1, x2, y2, lineWidth.
type Line struct {
	Base
}

// NewLine creates a line from the given attributes.
func NewLine(attrs scene.Attrs) *Line {
	l := &Line{}
	l.Init(l, attrs)
	return l
}

// CalculateBBox returns the segment's bounds inflated by half the stroke
// width.
func (l *Line) CalculateBBox() g.Rect {
	attrs := l.Attrs()
	box := g.EmptyRect().
		UnionPoint(attrs.Float("x1"), attrs.Float("y1")).
		UnionPoint(attrs.Float("x2"), attrs.Float("y2"))
	return box.Inflate(l.halfLineWidth())
}

// IsHit reports whether (x, y), in parent coordinates, falls on the stroked
// segment.
func (l *Line) IsHit(x, y float64) bool {
	p := l.InvertFromMatrix(g.Pt(x, y))
	attrs := l.Attrs()
	a := g.Pt(attrs.Float("x1"), attrs.Float("y1"))
	b := g.Pt(attrs.Float("x2"), attrs.Float("y2"))
	tol := l.halfLineWidth()
	if tol < hitTolerance {
		tol = hitTolerance
	}
	return p.DistanceToSegment(a, b) <= tol
}

// Clone returns a detached copy of the line.
func (l *Line) Clone() scene.Node {
	clone := NewLine(l.CloneAttrs())
	l.CopyConfigTo(clone.AsElement())
	return clone
}

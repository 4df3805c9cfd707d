package shape

import (
	g "github.com/IamIpanda/g"
	"github.com/IamIpanda/g/scene"
)

// Base is the element base shared by every concrete shape. It overrides the
// transform contract of scene.Element: shapes default to the identity
// matrix, and their ApplyToMatrix/InvertFromMatrix pair applies and undoes
// the current matrix.
type Base struct {
	scene.Element
}

// DefaultMatrix returns the identity matrix: shapes are transformable.
func (b *Base) DefaultMatrix() *g.Matrix {
	m := g.Identity()
	return &m
}

// ApplyToMatrix transforms a point by the shape's current matrix.
func (b *Base) ApplyToMatrix(p g.Point) g.Point {
	if m := b.GetMatrix(); m != nil {
		return m.TransformPoint(p)
	}
	return p
}

// InvertFromMatrix undoes the shape's current matrix, the exact inverse of
// ApplyToMatrix.
func (b *Base) InvertFromMatrix(p g.Point) g.Point {
	if m := b.GetMatrix(); m != nil {
		inv := m.Invert()
		return inv.TransformPoint(p)
	}
	return p
}

// halfLineWidth returns half the shape's stroke width, used to inflate
// bounding boxes and hit tolerances.
func (b *Base) halfLineWidth() float64 {
	return b.Attrs().Float("lineWidth") / 2
}

// Registry returns a registry preloaded with every shape in this package,
// keyed by capitalized type name.
func Registry() *scene.Registry {
	r := scene.NewRegistry()
	r.Register("Circle", func(attrs scene.Attrs) scene.Node { return NewCircle(attrs) })
	r.Register("Rect", func(attrs scene.Attrs) scene.Node { return NewRect(attrs) })
	r.Register("Ellipse", func(attrs scene.Attrs) scene.Node { return NewEllipse(attrs) })
	r.Register("Line", func(attrs scene.Attrs) scene.Node { return NewLine(attrs) })
	r.Register("Polyline", func(attrs scene.Attrs) scene.Node { return NewPolyline(attrs) })
	r.Register("Polygon", func(attrs scene.Attrs) scene.Node { return NewPolygon(attrs) })
	r.Register("Text", func(attrs scene.Attrs) scene.Node { return NewText(attrs) })
	return r
}

package shape

import (
	g "github.com/IamIpanda/g"
	"github.com/IamIpanda/g/scene"
)

// Polygon is a closed polygon shape. Attributes: points (vertex list, see
// parsePoints for accepted encodings), lineWidth.
type Polygon struct {
	Base
}

// NewPolygon creates a polygon from the given attributes.
func NewPolygon(attrs scene.Attrs) *Polygon {
	p := &Polygon{}
	p.Init(p, attrs)
	return p
}

// CalculateBBox returns the vertex bounds inflated by half the stroke
// width.
func (pg *Polygon) CalculateBBox() g.Rect {
	return pointsBBox(parsePoints(pg.Attrs())).Inflate(pg.halfLineWidth())
}

// IsHit reports whether (x, y), in parent coordinates, falls inside the
// polygon. Even-odd rule via ray casting.
func (pg *Polygon) IsHit(x, y float64) bool {
	p := pg.InvertFromMatrix(g.Pt(x, y))
	pts := parsePoints(pg.Attrs())
	if len(pts) < 3 {
		return false
	}

	inside := false
	j := len(pts) - 1
	for i := 0; i < len(pts); i++ {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Clone returns a detached copy of the polygon. The vertex list is copied
// one level deep, so moving a vertex on the clone leaves the original
// untouched.
func (pg *Polygon) Clone() scene.Node {
	clone := NewPolygon(pg.CloneAttrs())
	pg.CopyConfigTo(clone.AsElement())
	return clone
}

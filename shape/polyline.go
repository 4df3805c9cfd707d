package shape

import (
	g "github.com/IamIpanda/g"
	"github.com/IamIpanda/g/scene"
)

// Polyline is an open chain of line segments. Attributes: points (vertex
// list, see parsePoints), lineWidth.
type Polyline struct {
	Base
}

// NewPolyline creates a polyline from the given attributes.
func NewPolyline(attrs scene.Attrs) *Polyline {
	p := &Polyline{}
	p.Init(p, attrs)
	return p
}

// CalculateBBox returns the vertex bounds inflated by half the stroke
// width.
func (pl *Polyline) CalculateBBox() g.Rect {
	return pointsBBox(parsePoints(pl.Attrs())).Inflate(pl.halfLineWidth())
}

// IsHit reports whether (x, y), in parent coordinates, falls on any stroked
// segment of the chain.
func (pl *Polyline) IsHit(x, y float64) bool {
	p := pl.InvertFromMatrix(g.Pt(x, y))
	pts := parsePoints(pl.Attrs())
	if len(pts) < 2 {
		return false
	}

	tol := pl.halfLineWidth()
	if tol < hitTolerance {
		tol = hitTolerance
	}
	for i := 0; i+1 < len(pts); i++ {
		if p.DistanceToSegment(pts[i], pts[i+1]) <= tol {
			return true
		}
	}
	return false
}

// Clone returns a detached copy of the polyline.
func (pl *Polyline) Clone() scene.Node {
	clone := NewPolyline(pl.CloneAttrs())
	pl.CopyConfigTo(clone.AsElement())
	return clone
}

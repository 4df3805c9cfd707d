package shape

import (
	g "github.com/IamIpanda/g"
	"github.com/IamIpanda/g/scene"
)

// parsePoints reads the "points" attribute as a vertex list. Accepted
// encodings, covering both in-code construction and YAML decoding:
//
//	[][]float64            {{x1, y1}, {x2, y2}, ...}
//	[]float64              {x1, y1, x2, y2, ...}
//	[]any of []any/[]float64 pairs
//
// Malformed entries are skipped.
func parsePoints(attrs scene.Attrs) []g.Point {
	switch v := attrs["points"].(type) {
	case [][]float64:
		pts := make([]g.Point, 0, len(v))
		for _, pair := range v {
			if len(pair) >= 2 {
				pts = append(pts, g.Pt(pair[0], pair[1]))
			}
		}
		return pts
	case []float64:
		pts := make([]g.Point, 0, len(v)/2)
		for i := 0; i+1 < len(v); i += 2 {
			pts = append(pts, g.Pt(v[i], v[i+1]))
		}
		return pts
	case []any:
		pts := make([]g.Point, 0, len(v))
		for _, item := range v {
			if p, ok := pointOf(item); ok {
				pts = append(pts, p)
			}
		}
		return pts
	default:
		return nil
	}
}

// pointOf converts one vertex entry to a point.
func pointOf(item any) (g.Point, bool) {
	switch pair := item.(type) {
	case []float64:
		if len(pair) >= 2 {
			return g.Pt(pair[0], pair[1]), true
		}
	case []any:
		if len(pair) >= 2 {
			return g.Pt(floatOf(pair[0]), floatOf(pair[1])), true
		}
	}
	return g.Point{}, false
}

func floatOf(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

// pointsBBox returns the bounds of a vertex list.
func pointsBBox(pts []g.Point) g.Rect {
	box := g.EmptyRect()
	for _, p := range pts {
		box = box.UnionPoint(p.X, p.Y)
	}
	return box
}

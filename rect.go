package g

import "math"

// Rect is an axis-aligned rectangle, used throughout the scene graph as a
// bounding box. The zero-area "empty" rectangle has inverted bounds so that
// Union with any real rectangle produces that rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyRect returns an empty rectangle with inverted bounds.
func EmptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// NewRect creates a rectangle from an origin and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Width returns the width of the rectangle, or 0 if empty.
func (r Rect) Width() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle, or 0 if empty.
func (r Rect) Height() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		MinX: math.Min(r.MinX, other.MinX),
		MinY: math.Min(r.MinY, other.MinY),
		MaxX: math.Max(r.MaxX, other.MaxX),
		MaxY: math.Max(r.MaxY, other.MaxY),
	}
}

// UnionPoint returns the rectangle expanded to contain the point (x, y).
func (r Rect) UnionPoint(x, y float64) Rect {
	return Rect{
		MinX: math.Min(r.MinX, x),
		MinY: math.Min(r.MinY, y),
		MaxX: math.Max(r.MaxX, x),
		MaxY: math.Max(r.MaxY, y),
	}
}

// Contains returns true if the point (x, y) is inside the rectangle,
// boundary included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Inflate returns the rectangle grown by d on every side.
// Empty rectangles stay empty.
func (r Rect) Inflate(d float64) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect{
		MinX: r.MinX - d, MinY: r.MinY - d,
		MaxX: r.MaxX + d, MaxY: r.MaxY + d,
	}
}

// Transform returns the bounding box of the rectangle's four corners after
// applying the matrix. Empty rectangles are returned unchanged.
func (r Rect) Transform(m Matrix) Rect {
	if r.IsEmpty() {
		return r
	}

	corners := [4]Point{
		{r.MinX, r.MinY},
		{r.MaxX, r.MinY},
		{r.MaxX, r.MaxY},
		{r.MinX, r.MaxY},
	}

	result := EmptyRect()
	for _, c := range corners {
		p := m.TransformPoint(c)
		result = result.UnionPoint(p.X, p.Y)
	}
	return result
}

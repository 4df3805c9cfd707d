// Package scene implements the retained-mode scene-graph core: the Element
// base shared by every drawable or groupable node, plus the Group and Canvas
// containers and the shape registry used for clip construction.
//
// # Elements
//
// A concrete node type embeds Element (usually through shape.Base) and calls
// Init with itself so base methods can dispatch to the concrete type:
//
//	type Circle struct{ shape.Base }
//
//	func NewCircle(attrs scene.Attrs) *Circle {
//		c := &Circle{}
//		c.Init(c, attrs)
//		return c
//	}
//
// The concrete type supplies CalculateBBox (geometry from current
// attributes) and may override DefaultMatrix, ApplyToMatrix,
// InvertFromMatrix, IsHit and Clone.
//
// # Attributes and invalidation
//
// Every attribute write through Set or SetAttrs marks the element as having
// a pending visual update and invalidates the cached bounding box. The box
// is recomputed lazily on the next GetBBox call. Mutating the map returned
// by Attrs directly bypasses both effects; callers that do so must call
// ClearBBox themselves.
//
// # Threading
//
// The scene graph is single-threaded: one owner mutates the tree, driven by
// an external update loop. Nothing in this package locks.
package scene

package scene

import (
	"time"

	g "github.com/IamIpanda/g"
)

// Node is the polymorphic surface of every scene-graph element. Concrete
// types embed Element and override the geometry and transform methods they
// need; Element itself provides the defaults.
type Node interface {
	// AsElement returns the embedded Element base.
	AsElement() *Element

	// CalculateBBox computes the bounding box from current attributes.
	// It must be pure with respect to the attribute map.
	CalculateBBox() g.Rect

	// DefaultMatrix returns the transform installed at construction when
	// the caller supplies none. Nil means "no transform".
	DefaultMatrix() *g.Matrix

	// ApplyToMatrix transforms a point by the element's current matrix.
	ApplyToMatrix(p g.Point) g.Point

	// InvertFromMatrix undoes the element's current matrix. For any point
	// v, InvertFromMatrix(ApplyToMatrix(v)) == v within floating-point
	// tolerance.
	InvertFromMatrix(p g.Point) g.Point

	// IsHit reports whether the point (x, y), in parent coordinates, falls
	// on the element.
	IsHit(x, y float64) bool

	// Clone returns a detached copy of the element. See Element
	// documentation for what is and is not carried over.
	Clone() Node

	// Destroy releases the element. Idempotent.
	Destroy()
}

// Container is the parent capability consumed by tree-position operations:
// an ordered child sequence that can be replaced wholesale.
type Container interface {
	Children() []Node
	SetChildren(children []Node)
}

// Element is the base of every scene-graph node. It owns the attribute map,
// the lazily cached bounding box, the transform and clip contracts, and the
// element's position within its parent's child sequence.
//
// Element is not used directly; concrete types embed it and call Init.
type Element struct {
	attrs Attrs

	// bbox is the cached bounding box. Nil means "needs recompute".
	bbox *g.Rect

	// pendingUpdate is the coarse dirty flag consumed by the external
	// update loop. Set directly on every attribute write; attribute
	// writes are hot.
	pendingUpdate bool

	visible bool
	capture bool
	zIndex  int

	destroyed bool

	// parent and canvas are non-owning back-references; the tree owns
	// elements top-down, never the other way around.
	parent Container
	canvas *Canvas

	// clip is exclusively owned. Replaced clips are destroyed.
	clip Node

	animator Animator

	// self is the concrete node embedding this Element, set by Init.
	// Base methods dispatch through it so overrides take effect.
	self Node
}

// Init prepares the element base. The self argument is the concrete node
// embedding this Element; attrs are merged over the defaults (visible and
// capture on, zIndex 0, the concrete type's default matrix).
func (e *Element) Init(self Node, attrs Attrs) {
	e.self = self
	e.visible = true
	e.capture = true

	e.attrs = make(Attrs, len(attrs)+1)
	for k, v := range attrs {
		e.attrs[k] = v
	}
	if _, ok := e.attrs[AttrMatrix]; !ok {
		e.attrs[AttrMatrix] = e.node().DefaultMatrix()
	}
}

// node returns the concrete node, falling back to the base itself when Init
// was never called with one.
func (e *Element) node() Node {
	if e.self != nil {
		return e.self
	}
	return e
}

// AsElement returns the element base.
func (e *Element) AsElement() *Element { return e }

// Attrs returns the live attribute map, not a copy. Mutating it directly
// bypasses dirty marking and bbox invalidation; prefer Set and SetAttrs.
func (e *Element) Attrs() Attrs { return e.attrs }

// Attr returns the current value of one attribute. Pure read: no dirty
// marking, no bbox invalidation.
func (e *Element) Attr(name string) any { return e.attrs[name] }

// Set writes one attribute and runs the post-change hook. Values are stored
// verbatim; validation is the concern of concrete types and backends.
// Writes on a destroyed element are ignored. Chainable.
func (e *Element) Set(name string, value any) *Element {
	if e.destroyed {
		return e
	}
	e.attrs[name] = value
	e.onAttrsChanged()
	return e
}

// SetAttrs writes every pair in attrs and runs the post-change hook exactly
// once for the whole batch. Chainable.
func (e *Element) SetAttrs(attrs Attrs) *Element {
	if e.destroyed {
		return e
	}
	for k, v := range attrs {
		e.attrs[k] = v
	}
	e.onAttrsChanged()
	return e
}

// onAttrsChanged is the post-change hook: mark the element for the update
// loop and invalidate the cached bbox. Recomputation waits for GetBBox.
func (e *Element) onAttrsChanged() {
	e.pendingUpdate = true
	e.bbox = nil
}

// NeedsUpdate reports whether the element has visual changes not yet picked
// up by the update loop.
func (e *Element) NeedsUpdate() bool { return e.pendingUpdate }

// MarkUpdated clears the pending-update flag. Called by the update loop
// after consuming the element.
func (e *Element) MarkUpdated() { e.pendingUpdate = false }

// GetBBox returns the element's bounding box, computing and caching it when
// the cache is invalid.
func (e *Element) GetBBox() g.Rect {
	if e.bbox == nil {
		box := e.node().CalculateBBox()
		e.bbox = &box
	}
	return *e.bbox
}

// ClearBBox discards the cached bounding box.
func (e *Element) ClearBBox() { e.bbox = nil }

// CalculateBBox is the abstract geometry method; the base returns an empty
// box. Every concrete drawable overrides it.
func (e *Element) CalculateBBox() g.Rect { return g.EmptyRect() }

// GetMatrix returns the element's transform matrix, or nil when the element
// has none.
func (e *Element) GetMatrix() *g.Matrix {
	m, _ := e.attrs[AttrMatrix].(*g.Matrix)
	return m
}

// SetMatrix installs a transform matrix. Routed through the attribute
// protocol, so it marks the element dirty and invalidates the bbox like any
// other attribute write.
func (e *Element) SetMatrix(m *g.Matrix) *Element {
	return e.Set(AttrMatrix, m)
}

// ResetMatrix restores the concrete type's default matrix.
func (e *Element) ResetMatrix() *Element {
	return e.SetMatrix(e.node().DefaultMatrix())
}

// DefaultMatrix returns nil: the base element carries no transform.
// Transformable types override this with the identity matrix.
func (e *Element) DefaultMatrix() *g.Matrix { return nil }

// ApplyToMatrix is an identity passthrough on the base element.
// Coordinate-bearing types override it to apply their current matrix.
func (e *Element) ApplyToMatrix(p g.Point) g.Point { return p }

// InvertFromMatrix is an identity passthrough on the base element.
// Overrides must be the exact inverse of ApplyToMatrix.
func (e *Element) InvertFromMatrix(p g.Point) g.Point { return p }

// IsHit reports whether (x, y) falls inside the element's bounding box
// after undoing the element's transform. Concrete shapes override this
// with precise geometry.
func (e *Element) IsHit(x, y float64) bool {
	p := e.node().InvertFromMatrix(g.Pt(x, y))
	return e.GetBBox().Contains(p.X, p.Y)
}

// ClipConfig describes a clip shape to construct: a registry type name and
// the attributes to construct it with.
type ClipConfig struct {
	Type  string
	Attrs Attrs
}

// SetClip replaces the element's clip shape. Any previous clip shape is
// destroyed first. A nil cfg removes clipping. An unknown type name, or an
// element not attached to a canvas, leaves the element unclipped without
// error. Chainable.
func (e *Element) SetClip(cfg *ClipConfig) *Element {
	if e.clip != nil {
		e.clip.Destroy()
		e.clip = nil
	}
	if cfg == nil {
		return e
	}
	if e.canvas == nil {
		g.Logger().Debug("clip ignored: element has no canvas", "type", cfg.Type)
		return e
	}
	ctor, ok := e.canvas.ShapeBase().Lookup(cfg.Type)
	if !ok {
		g.Logger().Debug("clip ignored: unknown shape type", "type", cfg.Type)
		return e
	}
	e.clip = ctor(cfg.Attrs)
	return e
}

// GetClip returns the current clip shape, or nil when the element is
// unclipped.
func (e *Element) GetClip() Node { return e.clip }

// IsClipped reports whether the point (x, y) falls inside the clip shape.
// Without a clip shape the answer is always false; the clip shape's hit
// test is never consulted.
func (e *Element) IsClipped(x, y float64) bool {
	if e.clip == nil {
		return false
	}
	return e.clip.IsHit(x, y)
}

// Parent returns the owning container, or nil for a detached element.
func (e *Element) Parent() Container { return e.parent }

// Canvas returns the owning root canvas, or nil for a detached element.
func (e *Element) Canvas() *Canvas { return e.canvas }

// setParent installs the non-owning back-references. Called by containers.
func (e *Element) setParent(p Container, c *Canvas) {
	e.parent = p
	e.canvas = c
}

// ToFront moves the element to the end of its parent's child sequence, so
// it paints above its siblings. No-op without a parent.
func (e *Element) ToFront() {
	if e.parent == nil {
		return
	}
	children := e.parent.Children()
	idx := indexOf(children, e.node())
	if idx < 0 {
		return
	}
	children = append(children[:idx], children[idx+1:]...)
	children = append(children, e.node())
	e.parent.SetChildren(children)
}

// ToBack moves the element to the start of its parent's child sequence, so
// it paints below its siblings. No-op without a parent.
func (e *Element) ToBack() {
	if e.parent == nil {
		return
	}
	children := e.parent.Children()
	idx := indexOf(children, e.node())
	if idx < 0 {
		return
	}
	out := make([]Node, 0, len(children))
	out = append(out, e.node())
	out = append(out, children[:idx]...)
	out = append(out, children[idx+1:]...)
	e.parent.SetChildren(out)
}

// Remove detaches the element from its parent, if any, and destroys it
// unless the caller opts out with destroy=false.
func (e *Element) Remove(destroy bool) {
	if e.parent != nil {
		children := e.parent.Children()
		if idx := indexOf(children, e.node()); idx >= 0 {
			e.parent.SetChildren(append(children[:idx], children[idx+1:]...))
		}
		e.parent = nil
	}
	if destroy {
		e.node().Destroy()
	}
}

// Destroy releases the element: the clip shape is destroyed, the attribute
// map is cleared, and the element becomes unusable. Idempotent.
func (e *Element) Destroy() {
	if e.destroyed {
		return
	}
	if e.clip != nil {
		e.clip.Destroy()
		e.clip = nil
	}
	e.attrs = nil
	e.bbox = nil
	e.parent = nil
	e.canvas = nil
	e.animator = nil
	e.destroyed = true
}

// Destroyed reports whether Destroy has run.
func (e *Element) Destroyed() bool { return e.destroyed }

// Show makes the element visible. Bypasses the attribute protocol: no dirty
// marking, no bbox invalidation. Chainable.
func (e *Element) Show() *Element {
	e.visible = true
	return e
}

// Hide makes the element invisible. Chainable.
func (e *Element) Hide() *Element {
	e.visible = false
	return e
}

// Visible reports whether the element is visible.
func (e *Element) Visible() bool { return e.visible }

// Capture reports whether the element participates in hit testing.
func (e *Element) Capture() bool { return e.capture }

// SetCapture toggles hit-test participation.
func (e *Element) SetCapture(capture bool) { e.capture = capture }

// ZIndex returns the element's z-order hint used by Group.Sort.
func (e *Element) ZIndex() int { return e.zIndex }

// SetZIndex sets the z-order hint. The parent is not re-sorted
// automatically; call Group.Sort.
func (e *Element) SetZIndex(z int) { e.zIndex = z }

// CloneAttrs returns a copy of the attribute map under the one-level
// array-aware policy of Attrs.Clone. Used by concrete Clone
// implementations.
func (e *Element) CloneAttrs() Attrs { return e.attrs.Clone() }

// CopyConfigTo transfers the cloneable configuration fields (zIndex,
// capture, visible) to dst. Parent and canvas linkage, the bbox cache, and
// the clip shape are deliberately not transferred: a clone starts detached,
// unclipped, with a fresh cache.
func (e *Element) CopyConfigTo(dst *Element) {
	dst.zIndex = e.zIndex
	dst.capture = e.capture
	dst.visible = e.visible
}

// Clone returns a detached copy of the bare element. Concrete types
// override this to construct their own type.
func (e *Element) Clone() Node {
	clone := &Element{}
	clone.Init(clone, e.CloneAttrs())
	e.CopyConfigTo(clone)
	return clone
}

// SetAnimator installs the animation capability. Elements declare the
// animation surface but never implement it; a nil animator makes every
// animation call a no-op.
func (e *Element) SetAnimator(a Animator) { e.animator = a }

// Animate transitions the element's attributes toward to over duration,
// delegated to the installed animator.
func (e *Element) Animate(to Attrs, duration time.Duration) {
	if e.animator == nil {
		return
	}
	e.animator.Animate(e.node(), to, duration)
}

// StopAnimate stops any running animation on the element.
func (e *Element) StopAnimate() {
	if e.animator == nil {
		return
	}
	e.animator.StopAnimate(e.node())
}

// PauseAnimate pauses any running animation on the element.
func (e *Element) PauseAnimate() {
	if e.animator == nil {
		return
	}
	e.animator.PauseAnimate(e.node())
}

// ResumeAnimate resumes a paused animation on the element.
func (e *Element) ResumeAnimate() {
	if e.animator == nil {
		return
	}
	e.animator.ResumeAnimate(e.node())
}

// indexOf returns the position of n in children by identity, or -1.
// Linear search: sibling counts are small and reordering is not a hot path.
func indexOf(children []Node, n Node) int {
	for i, child := range children {
		if child == n {
			return i
		}
	}
	return -1
}

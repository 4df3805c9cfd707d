package scene

import (
	"sort"

	g "github.com/IamIpanda/g"
)

// Group is an element that holds an ordered sequence of children. Child
// order is paint order: later children paint above earlier ones. A group's
// bounding box is the union of its visible children's boxes, each taken
// through the child's own transform.
type Group struct {
	Element
	children []Node
}

// NewGroup creates a group with the given attributes.
func NewGroup(attrs Attrs) *Group {
	grp := &Group{}
	grp.Init(grp, attrs)
	return grp
}

// Children returns the live child sequence in paint order.
func (grp *Group) Children() []Node { return grp.children }

// SetChildren replaces the child sequence. Used by the tree-position
// operations on Element; back-references of the children are assumed to
// already point at this group.
func (grp *Group) SetChildren(children []Node) {
	grp.children = children
	grp.pendingUpdate = true
}

// Add appends nodes to the end of the child sequence and installs parent
// and canvas back-references, canvas recursively. Chainable.
func (grp *Group) Add(nodes ...Node) *Group {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		el := n.AsElement()
		el.setParent(grp, grp.canvas)
		propagateCanvas(n, grp.canvas)
		grp.children = append(grp.children, n)
	}
	grp.onAttrsChanged()
	return grp
}

// RemoveChild detaches one child by identity without destroying it.
// No-op if the node is not a child of this group.
func (grp *Group) RemoveChild(n Node) {
	idx := indexOf(grp.children, n)
	if idx < 0 {
		return
	}
	grp.children = append(grp.children[:idx], grp.children[idx+1:]...)
	n.AsElement().setParent(nil, nil)
	grp.onAttrsChanged()
}

// Clear removes all children, destroying them unless destroy is false.
func (grp *Group) Clear(destroy bool) {
	children := grp.children
	grp.children = nil
	for _, child := range children {
		child.AsElement().setParent(nil, nil)
		if destroy {
			child.Destroy()
		}
	}
	grp.onAttrsChanged()
}

// Count returns the number of direct children.
func (grp *Group) Count() int { return len(grp.children) }

// Sort stably reorders the children by ascending zIndex. Children with
// equal zIndex keep their insertion order.
func (grp *Group) Sort() {
	sort.SliceStable(grp.children, func(i, j int) bool {
		return grp.children[i].AsElement().ZIndex() < grp.children[j].AsElement().ZIndex()
	})
	grp.pendingUpdate = true
}

// CalculateBBox returns the union of the visible children's bounding boxes,
// each transformed by the child's own matrix.
func (grp *Group) CalculateBBox() g.Rect {
	box := g.EmptyRect()
	for _, child := range grp.children {
		el := child.AsElement()
		if !el.Visible() {
			continue
		}
		childBox := el.GetBBox()
		if m := el.GetMatrix(); m != nil {
			childBox = childBox.Transform(*m)
		}
		box = box.Union(childBox)
	}
	return box
}

// Clone returns a detached copy of the group with every child cloned into
// it. Children keep their relative order. Like any fresh element, the clone
// starts with a clean pending-update flag even though Add marks as it goes.
func (grp *Group) Clone() Node {
	clone := NewGroup(grp.CloneAttrs())
	grp.CopyConfigTo(&clone.Element)
	for _, child := range grp.children {
		clone.Add(child.Clone())
	}
	clone.MarkUpdated()
	return clone
}

// Destroy destroys every child, then the group itself. Idempotent.
func (grp *Group) Destroy() {
	if grp.Destroyed() {
		return
	}
	children := grp.children
	grp.children = nil
	for _, child := range children {
		child.Destroy()
	}
	grp.Element.Destroy()
}

// propagateCanvas updates the canvas back-reference of a node and all of
// its descendants. Run when a subtree moves under a new root.
func propagateCanvas(n Node, c *Canvas) {
	n.AsElement().canvas = c
	if ct, ok := n.(Container); ok {
		for _, child := range ct.Children() {
			propagateCanvas(child, c)
		}
	}
}

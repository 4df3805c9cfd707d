package scene

import (
	"math"
	"testing"

	g "github.com/IamIpanda/g"
)

func TestGroupAddSetsBackReferences(t *testing.T) {
	canvas := NewCanvas(100, 100)
	grp := NewGroup(nil)
	canvas.Add(grp)

	n := newBoxNode(nil)
	grp.Add(n)

	if n.Parent() != Container(grp) {
		t.Error("child parent not set to the group")
	}
	if n.Canvas() != canvas {
		t.Error("child canvas not propagated from the group")
	}
}

func TestGroupAddPropagatesCanvasToSubtree(t *testing.T) {
	// Building a subtree first and attaching it later must fix up the
	// canvas link of every descendant.
	inner := NewGroup(nil)
	leaf := newBoxNode(nil)
	inner.Add(leaf)

	canvas := NewCanvas(100, 100)
	canvas.Add(inner)

	if leaf.Canvas() != canvas {
		t.Error("canvas link not propagated to grandchildren")
	}
}

func TestGroupAddNilIsIgnored(t *testing.T) {
	grp := NewGroup(nil)
	grp.Add(nil)

	if grp.Count() != 0 {
		t.Errorf("Count() = %d after Add(nil), want 0", grp.Count())
	}
}

func TestGroupRemoveChild(t *testing.T) {
	grp := NewGroup(nil)
	a := newBoxNode(nil)
	b := newBoxNode(nil)
	grp.Add(a, b)

	grp.RemoveChild(a)

	if grp.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", grp.Count())
	}
	if grp.Children()[0] != Node(b) {
		t.Error("wrong child removed")
	}
	if a.Parent() != nil {
		t.Error("removed child still has a parent")
	}
	if a.Destroyed() {
		t.Error("RemoveChild must not destroy the child")
	}

	// Removing a non-child is a no-op.
	grp.RemoveChild(a)
	if grp.Count() != 1 {
		t.Errorf("Count() = %d after removing a non-child, want 1", grp.Count())
	}
}

func TestGroupClear(t *testing.T) {
	grp := NewGroup(nil)
	a := newBoxNode(nil)
	b := newBoxNode(nil)
	grp.Add(a, b)

	grp.Clear(true)

	if grp.Count() != 0 {
		t.Errorf("Count() = %d, want 0", grp.Count())
	}
	if !a.Destroyed() || !b.Destroyed() {
		t.Error("Clear(true) should destroy the children")
	}
}

func TestGroupClearKeepChildren(t *testing.T) {
	grp := NewGroup(nil)
	a := newBoxNode(nil)
	grp.Add(a)

	grp.Clear(false)

	if a.Destroyed() {
		t.Error("Clear(false) should keep children usable")
	}
	if a.Parent() != nil {
		t.Error("cleared child still has a parent")
	}
}

func TestGroupSortStable(t *testing.T) {
	grp := NewGroup(nil)
	a := newBoxNode(nil)
	b := newBoxNode(nil)
	c := newBoxNode(nil)
	a.SetZIndex(2)
	b.SetZIndex(1)
	c.SetZIndex(2)
	grp.Add(a, b, c)

	grp.Sort()

	want := []Node{b, a, c} // equal zIndex keeps insertion order
	for i, n := range want {
		if grp.Children()[i] != n {
			t.Fatalf("Children()[%d] = %v, want %v", i, grp.Children()[i], n)
		}
	}
}

func TestGroupBBoxUnionsVisibleChildren(t *testing.T) {
	grp := NewGroup(nil)
	a := newBoxNode(Attrs{"x": 0.0, "y": 0.0, "w": 10.0, "h": 10.0})
	b := newBoxNode(Attrs{"x": 20.0, "y": 20.0, "w": 10.0, "h": 10.0})
	hidden := newBoxNode(Attrs{"x": 500.0, "y": 500.0, "w": 10.0, "h": 10.0})
	hidden.Hide()
	grp.Add(a, b, hidden)

	box := grp.GetBBox()

	if box.MinX != 0 || box.MinY != 0 || box.MaxX != 30 || box.MaxY != 30 {
		t.Errorf("group bbox = %+v, want (0,0)-(30,30)", box)
	}
}

func TestGroupBBoxAppliesChildMatrix(t *testing.T) {
	grp := NewGroup(nil)
	a := newBoxNode(Attrs{"x": 0.0, "y": 0.0, "w": 10.0, "h": 10.0})
	m := g.Translate(100, 0)
	a.SetMatrix(&m)
	grp.Add(a)

	box := grp.GetBBox()

	if math.Abs(box.MinX-100) > 1e-9 || math.Abs(box.MaxX-110) > 1e-9 {
		t.Errorf("group bbox = %+v, want x in [100,110]", box)
	}
}

func TestGroupBBoxEmptyWithoutChildren(t *testing.T) {
	grp := NewGroup(nil)
	if !grp.GetBBox().IsEmpty() {
		t.Errorf("empty group bbox = %+v, want empty", grp.GetBBox())
	}
}

func TestGroupCloneIsDeep(t *testing.T) {
	grp := NewGroup(Attrs{"name": "root"})
	child := newBoxNode(Attrs{"x": 1.0})
	grp.Add(child)

	clone := grp.Clone().(*Group)

	if clone.Count() != 1 {
		t.Fatalf("clone Count() = %d, want 1", clone.Count())
	}
	if clone.Children()[0] == Node(child) {
		t.Fatal("clone shares a child with the original")
	}
	cloneChild := clone.Children()[0].AsElement()
	if got := cloneChild.Attrs().Float("x"); got != 1 {
		t.Errorf("cloned child x = %v, want 1", got)
	}
	if cloneChild.Parent() != Container(clone) {
		t.Error("cloned child should be parented to the clone")
	}

	cloneChild.Set("x", 50.0)
	if got := child.Attrs().Float("x"); got != 1 {
		t.Errorf("mutating the cloned child leaked into the original: x = %v", got)
	}
}

func TestGroupCloneStartsClean(t *testing.T) {
	grp := NewGroup(nil)
	inner := NewGroup(nil)
	inner.Add(newBoxNode(nil))
	grp.Add(inner)

	clone := grp.Clone().(*Group)

	if clone.NeedsUpdate() {
		t.Error("fresh clone has the pending-update flag set")
	}
	innerClone := clone.Children()[0].(*Group)
	if innerClone.NeedsUpdate() {
		t.Error("nested group clone has the pending-update flag set")
	}
	if innerClone.Children()[0].AsElement().NeedsUpdate() {
		t.Error("cloned leaf has the pending-update flag set")
	}
}

func TestGroupDestroyCascades(t *testing.T) {
	grp := NewGroup(nil)
	child := newBoxNode(nil)
	grandchild := newBoxNode(nil)
	inner := NewGroup(nil)
	inner.Add(grandchild)
	grp.Add(child, inner)

	grp.Destroy()
	grp.Destroy()

	if !grp.Destroyed() || !child.Destroyed() || !inner.Destroyed() || !grandchild.Destroyed() {
		t.Error("Destroy should cascade through the whole subtree")
	}
}

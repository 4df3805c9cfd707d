package scene

import "testing"

func TestNewCanvas(t *testing.T) {
	canvas := NewCanvas(800, 600)

	if canvas.Width() != 800 {
		t.Errorf("Width() = %d, want 800", canvas.Width())
	}
	if canvas.Height() != 600 {
		t.Errorf("Height() = %d, want 600", canvas.Height())
	}
	if canvas.ShapeBase() == nil {
		t.Error("default ShapeBase() = nil, want an empty registry")
	}
	if canvas.Canvas() != canvas {
		t.Error("a canvas should be its own canvas back-reference")
	}
}

func TestCanvasWithShapeBase(t *testing.T) {
	reg := NewRegistry()
	canvas := NewCanvas(10, 10, WithShapeBase(reg))

	if canvas.ShapeBase() != reg {
		t.Error("WithShapeBase registry not installed")
	}
}

func TestFlushUpdatesCollectsDirtyNodes(t *testing.T) {
	canvas := NewCanvas(100, 100)
	grp := NewGroup(nil)
	a := newBoxNode(nil)
	b := newBoxNode(nil)
	grp.Add(a, b)
	canvas.Add(grp)
	canvas.FlushUpdates() // drain construction dirt

	a.Set("x", 5.0)

	dirty := canvas.FlushUpdates()
	if len(dirty) != 1 {
		t.Fatalf("dirty count = %d, want 1", len(dirty))
	}
	if dirty[0] != Node(a) {
		t.Errorf("dirty[0] = %v, want the written node", dirty[0])
	}
	if a.NeedsUpdate() {
		t.Error("flush should clear the pending-update flag")
	}

	if again := canvas.FlushUpdates(); len(again) != 0 {
		t.Errorf("second flush = %d nodes, want 0", len(again))
	}
}

func TestFlushUpdatesWalksNestedGroups(t *testing.T) {
	canvas := NewCanvas(100, 100)
	outer := NewGroup(nil)
	inner := NewGroup(nil)
	leaf := newBoxNode(nil)
	inner.Add(leaf)
	outer.Add(inner)
	canvas.Add(outer)
	canvas.FlushUpdates()

	leaf.Set("x", 1.0)

	dirty := canvas.FlushUpdates()
	if len(dirty) != 1 || dirty[0] != Node(leaf) {
		t.Errorf("dirty = %v, want just the leaf", dirty)
	}
}

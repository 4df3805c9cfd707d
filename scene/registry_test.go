package scene

import "testing"

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Circle", func(attrs Attrs) Node {
		n := &Element{}
		n.Init(n, attrs)
		return n
	})

	tests := []struct {
		name string
		want bool
	}{
		{"Circle", true},
		{"circle", true}, // lookup capitalizes the first rune
		{"Rect", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, ok := reg.Lookup(tt.name); ok != tt.want {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.want)
		}
	}
}

func TestRegistryRegisterNormalizes(t *testing.T) {
	reg := NewRegistry()
	reg.Register("circle", func(attrs Attrs) Node { return nil })

	if _, ok := reg.Lookup("Circle"); !ok {
		t.Error("registration under a lowercase name should be found capitalized")
	}
}

func TestRegistryRegisterNilConstructor(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Circle", nil)

	if _, ok := reg.Lookup("Circle"); ok {
		t.Error("nil constructor should not be registered")
	}
}

func TestRegistryTypes(t *testing.T) {
	reg := NewRegistry()
	ctor := func(attrs Attrs) Node { return nil }
	reg.Register("Rect", ctor)
	reg.Register("Circle", ctor)
	reg.Register("Line", ctor)

	got := reg.Types()
	want := []string{"Circle", "Line", "Rect"}
	if len(got) != len(want) {
		t.Fatalf("Types() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Types()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistryConstructorReceivesAttrs(t *testing.T) {
	reg := NewRegistry()
	var seen Attrs
	reg.Register("Probe", func(attrs Attrs) Node {
		seen = attrs
		n := &Element{}
		n.Init(n, attrs)
		return n
	})

	ctor, ok := reg.Lookup("probe")
	if !ok {
		t.Fatal("Lookup(probe) failed")
	}
	ctor(Attrs{"r": 5.0})

	if seen.Float("r") != 5 {
		t.Errorf("constructor attrs = %+v, want r=5", seen)
	}
}

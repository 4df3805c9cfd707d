package scene

import g "github.com/IamIpanda/g"

// AttrMatrix is the attribute key holding an element's transform matrix.
// The value is a *g.Matrix; nil means "no transform".
const AttrMatrix = "matrix"

// Attrs maps attribute names to values. Values are primitives, arrays, or
// one-level nested arrays (for point lists and path data). The map always
// contains an AttrMatrix entry after element construction.
type Attrs map[string]any

// Clone returns a copy of the attribute map with a one-level array-aware
// copy policy: array values are copied into new arrays, and array elements
// that are themselves arrays are shallow-copied into new arrays. Anything
// deeper, including maps or struct pointers inside arrays, is copied by
// reference. Matrices are duplicated so two elements never share one
// mutable transform.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = cloneAttrValue(v)
	}
	return out
}

func cloneAttrValue(v any) any {
	switch val := v.(type) {
	case []any:
		cp := make([]any, len(val))
		for i, item := range val {
			cp[i] = cloneArrayElement(item)
		}
		return cp
	case []float64:
		cp := make([]float64, len(val))
		copy(cp, val)
		return cp
	case [][]float64:
		cp := make([][]float64, len(val))
		for i, inner := range val {
			innerCp := make([]float64, len(inner))
			copy(innerCp, inner)
			cp[i] = innerCp
		}
		return cp
	case *g.Matrix:
		return val.Clone()
	default:
		return v
	}
}

// cloneArrayElement copies one element of an array attribute: nested arrays
// get fresh backing, everything else is a reference copy.
func cloneArrayElement(item any) any {
	switch inner := item.(type) {
	case []any:
		cp := make([]any, len(inner))
		copy(cp, inner)
		return cp
	case []float64:
		cp := make([]float64, len(inner))
		copy(cp, inner)
		return cp
	default:
		return item
	}
}

// Float reads a numeric attribute as float64. Missing or non-numeric
// attributes read as zero. Integer values (common after YAML decoding)
// are widened.
func (a Attrs) Float(name string) float64 {
	switch v := a[name].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// String reads a string attribute. Missing or non-string attributes read
// as the empty string.
func (a Attrs) String(name string) string {
	s, _ := a[name].(string)
	return s
}

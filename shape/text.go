package shape

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	g "github.com/IamIpanda/g"
	"github.com/IamIpanda/g/scene"
)

// defaultFontSize is used when a text element carries no fontSize attribute.
const defaultFontSize = 12

// builtinFont is the embedded Go Regular face data, parsed once.
var (
	builtinFontOnce sync.Once
	builtinFont     *opentype.Font
	builtinFontErr  error
)

func parsedBuiltinFont() (*opentype.Font, error) {
	builtinFontOnce.Do(func() {
		builtinFont, builtinFontErr = opentype.Parse(goregular.TTF)
	})
	return builtinFont, builtinFontErr
}

// Text is a single-line text shape. Attributes: x, y (baseline origin),
// text (string), fontSize (pixels, default 12).
//
// Bounds are measured against the embedded Go Regular face. Backends that
// paint with another face should treat the box as approximate.
type Text struct {
	Base
}

// NewText creates a text shape from the given attributes.
func NewText(attrs scene.Attrs) *Text {
	t := &Text{}
	t.Init(t, attrs)
	return t
}

// CalculateBBox measures the text against the built-in face and returns its
// bounds relative to the baseline origin.
func (t *Text) CalculateBBox() g.Rect {
	attrs := t.Attrs()
	s := attrs.String("text")
	if s == "" {
		return g.EmptyRect()
	}

	size := attrs.Float("fontSize")
	if size <= 0 {
		size = defaultFontSize
	}

	face, err := t.face(size)
	if err != nil {
		g.Logger().Warn("text bbox unavailable: font face failed", "err", err)
		return g.EmptyRect()
	}

	x := attrs.Float("x")
	y := attrs.Float("y")
	bounds, _ := font.BoundString(face, s)
	return g.Rect{
		MinX: x + fixedToFloat(bounds.Min.X),
		MinY: y + fixedToFloat(bounds.Min.Y),
		MaxX: x + fixedToFloat(bounds.Max.X),
		MaxY: y + fixedToFloat(bounds.Max.Y),
	}
}

// face returns a face of the built-in font at the given pixel size.
func (t *Text) face(size float64) (font.Face, error) {
	f, err := parsedBuiltinFont()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// Clone returns a detached copy of the text shape.
func (t *Text) Clone() scene.Node {
	clone := NewText(t.CloneAttrs())
	t.CopyConfigTo(clone.AsElement())
	return clone
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

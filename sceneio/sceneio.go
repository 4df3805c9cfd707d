// Package sceneio loads YAML scene descriptions into scene trees.
//
// A document declares the canvas size and a tree of elements:
//
//	width: 800
//	height: 600
//	elements:
//	  - type: circle
//	    attrs: {x: 100, y: 100, r: 50}
//	    zIndex: 2
//	  - type: group
//	    children:
//	      - type: rect
//	        attrs: {x: 0, y: 0, width: 40, height: 40}
//	        clip: {type: circle, attrs: {x: 20, y: 20, r: 20}}
//
// Element types resolve through a scene.Registry; "group" is built in.
// Unlike clip resolution at runtime, an unknown type here is an authoring
// error and fails the load.
package sceneio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	g "github.com/IamIpanda/g"
	"github.com/IamIpanda/g/scene"
)

// ErrUnknownType reports an element type missing from the registry.
var ErrUnknownType = errors.New("sceneio: unknown element type")

// Document is the top-level YAML structure.
type Document struct {
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	Elements []NodeSpec `yaml:"elements"`
}

// NodeSpec describes one element in a scene document.
type NodeSpec struct {
	Type     string         `yaml:"type"`
	Attrs    map[string]any `yaml:"attrs"`
	ZIndex   int            `yaml:"zIndex"`
	Visible  *bool          `yaml:"visible"`
	Capture  *bool          `yaml:"capture"`
	Clip     *ClipSpec      `yaml:"clip"`
	Children []NodeSpec     `yaml:"children"`
}

// ClipSpec describes a clip shape on an element.
type ClipSpec struct {
	Type  string         `yaml:"type"`
	Attrs map[string]any `yaml:"attrs"`
}

// Load reads a YAML scene document and builds the canvas. The registry
// resolves element types and is installed as the canvas shape base, so
// clip declarations resolve through it as well.
func Load(r io.Reader, reg *scene.Registry) (*scene.Canvas, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("sceneio: read: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sceneio: parse: %w", err)
	}

	canvas := scene.NewCanvas(doc.Width, doc.Height, scene.WithShapeBase(reg))
	for _, spec := range doc.Elements {
		if err := addNode(&canvas.Group, spec, reg); err != nil {
			return nil, err
		}
	}
	canvas.Sort()
	return canvas, nil
}

// LoadFile is Load over a file path.
func LoadFile(path string, reg *scene.Registry) (*scene.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sceneio: open: %w", err)
	}
	defer f.Close()
	return Load(f, reg)
}

// addNode builds one spec, attaches it to parent, then applies clip and
// recurses into children. Attachment happens before clip application
// because clip resolution needs the canvas back-reference.
func addNode(parent *scene.Group, spec NodeSpec, reg *scene.Registry) error {
	var n scene.Node
	var grp *scene.Group

	if isGroupType(spec.Type) {
		grp = scene.NewGroup(decodeAttrs(spec.Attrs))
		n = grp
	} else {
		ctor, ok := reg.Lookup(spec.Type)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownType, spec.Type)
		}
		n = ctor(decodeAttrs(spec.Attrs))
	}

	el := n.AsElement()
	el.SetZIndex(spec.ZIndex)
	if spec.Visible != nil && !*spec.Visible {
		el.Hide()
	}
	if spec.Capture != nil {
		el.SetCapture(*spec.Capture)
	}

	parent.Add(n)

	if spec.Clip != nil {
		el.SetClip(&scene.ClipConfig{
			Type:  spec.Clip.Type,
			Attrs: decodeAttrs(spec.Clip.Attrs),
		})
	}

	if grp != nil {
		for _, child := range spec.Children {
			if err := addNode(grp, child, reg); err != nil {
				return err
			}
		}
		grp.Sort()
	} else if len(spec.Children) > 0 {
		return fmt.Errorf("sceneio: element type %q cannot have children", spec.Type)
	}

	return nil
}

// isGroupType reports whether a type name selects the built-in group. Only
// the first rune is case-insensitive, the same normalization the registry
// applies to shape types, so "GROUP" is an unknown type just like "CIRCLE".
func isGroupType(name string) bool {
	return name == "group" || name == "Group"
}

// decodeAttrs converts a decoded YAML mapping into scene attributes. A
// "matrix" entry given as a six-number sequence becomes a *g.Matrix so the
// transform contract sees its native type. The sequence uses the SVG
// [a, b, c, d, e, f] convention with translation in the last two slots:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// g.Matrix is row-major, so the sequence is transposed into it.
func decodeAttrs(raw map[string]any) scene.Attrs {
	if raw == nil {
		return nil
	}
	attrs := make(scene.Attrs, len(raw))
	for k, v := range raw {
		attrs[k] = v
	}
	if seq, ok := attrs[scene.AttrMatrix].([]any); ok && len(seq) == 6 {
		attrs[scene.AttrMatrix] = &g.Matrix{
			A: numberOf(seq[0]), B: numberOf(seq[2]), C: numberOf(seq[4]),
			D: numberOf(seq[1]), E: numberOf(seq[3]), F: numberOf(seq[5]),
		}
	}
	return attrs
}

func numberOf(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

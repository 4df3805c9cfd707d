// Package g provides the geometry primitives shared by the g scene-graph
// engine: affine matrices, points, axis-aligned rectangles, and the
// library-wide logger.
//
// # Overview
//
// g is a retained-mode 2D scene-graph engine. Elements (shapes and groups)
// live in a tree rooted at a canvas; each element owns an attribute map, a
// lazily cached bounding box, an optional transform matrix, and an optional
// clip shape. Rendering backends consume the tree; this module defines the
// tree itself and is backend-independent.
//
// # Packages
//
//   - g: Matrix, Point, Rect, logging
//   - scene: the Element core, Group and Canvas containers, shape registry
//   - shape: concrete shapes (Circle, Rect, Ellipse, Line, Polygon, Text)
//   - sceneio: YAML scene-description loader
//
// # Quick Start
//
//	reg := shape.Registry()
//	canvas := scene.NewCanvas(800, 600, scene.WithShapeBase(reg))
//	circle := shape.NewCircle(scene.Attrs{"x": 100.0, "y": 100.0, "r": 50.0})
//	canvas.Add(circle)
//	box := circle.GetBBox()
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down, angles in
// radians.
package g

// Version is the current version of the library.
const Version = "0.2.0"

// Package shape provides the concrete drawable shapes of the g scene graph:
// Circle, Rect, Ellipse, Line, Polyline, Polygon, and Text. Every shape
// embeds Base, which layers the transform contract over scene.Element, and
// implements precise bounding boxes and hit tests over its attribute map.
//
// Registry returns a scene.Registry preloaded with every shape in this
// package, for clip construction and scene loading:
//
//	canvas := scene.NewCanvas(800, 600, scene.WithShapeBase(shape.Registry()))
package shape

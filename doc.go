// Package layers implements the geometry core of a layered image
// annotation editor.
//
// # Overview
//
// An annotation is a stack of layers (rectangles, circles, arrows, text,
// stars, custom SVG shapes and so on) drawn over an image. Layers are
// authored against a base canvas size and shown at whatever size the
// display surface has. This package provides the pure geometry the editor
// needs around that: mapping pointer positions into canvas space,
// resolving a layer's bounding box, accounting for rotation, rescaling
// layers between sizes and deciding which layer a point hits.
//
// # Quick Start
//
//	set, err := layers.DecodeLayerSet(r)
//	if err != nil {
//	    return err
//	}
//	shown := set.ScaledTo(layers.Size{Width: 640, Height: 480})
//
//	for _, l := range shown.Layers {
//	    box, ok := layers.LayerAABB(l)
//	    ...
//	}
//
//	if l, ok := layers.TopmostHit(shown.Layers, pt); ok {
//	    select(l)
//	}
//
// # Layers
//
// A Layer keeps every coordinate field optional so that absent fields
// survive decoding, scaling and re-encoding. Layer.Geometry resolves the
// type tag and the editor's defaults into one Geometry variant, which the
// bounds and hit-testing code switch on. Unknown layer types are handled
// as a 50x50 box at the layer position.
//
// # Custom Shapes
//
// Custom shapes are SVG path data drawn into the layer box through a
// view box. ParseSVGPath compiles path data into a Path; PathCache keeps
// compiled paths in insertion order and drops the oldest when full;
// ShapeHitTester tests points against them under nonzero or even-odd
// filling.
//
// # Coordinate System
//
// Canvas coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Layer rotation is in degrees, clockwise on screen
//
// # Logging
//
// The package is silent by default. See SetLogger.
package layers

// Package wand provides raster region selection for image editors.
//
// # Overview
//
// wand computes selection masks over RGBA pixel surfaces: magic-wand
// flood fill, Sobel edge selection, and geometric selections (rectangle,
// ellipse, lasso). Masks can be feathered, combined, applied to layers,
// and composited into a final surface, or traced into an SVG outline.
//
// # Quick Start
//
//	import "github.com/inkpad/wand"
//
//	surf, _ := wand.LoadPNG("shirt.png")
//
//	// Magic wand: select the region around (120, 80).
//	mask := wand.Flood(surf, image.Pt(120, 80), wand.WithTolerancePercent(30))
//
//	// Preview the selection.
//	wand.Overlay(surf, mask).SavePNG("preview.png")
//
// # Design
//
// Selectors are pure functions: they take a surface and parameters and
// return a fresh Mask sized exactly like the surface. Applying a mask to
// a layer and recompositing is a separate, explicit step (see Layer and
// Composite). Nothing in the package touches shared global state except
// the logger.
//
// # Concurrency
//
// All operations run synchronously on the calling goroutine and complete
// before returning. The package performs no background work. Distinct
// surfaces and masks may be used from distinct goroutines; a single
// Surface or Mask must not be mutated concurrently.
//
// # Coordinate System
//
// Origin (0,0) at top-left, x increases right, y increases down,
// row-major pixel storage.
package wand

package wand

import (
	"github.com/inkpad/wand/internal/blend"
)

// Layer is one entry in a compositing stack: pixel content plus an
// optional persistent mask restricting its visible contribution.
type Layer struct {
	// Content holds the layer's pixels. A nil content layer contributes
	// nothing to the composite.
	Content *Surface

	// Mask restricts the layer's contribution to the selected region.
	// Nil means unmasked.
	Mask *Mask

	// Visible excludes the layer from compositing when false.
	Visible bool

	// Opacity scales the layer's contribution, range [0, 1].
	Opacity float64
}

// NewLayer creates a visible, unmasked, fully opaque layer around
// content.
func NewLayer(content *Surface) *Layer {
	return &Layer{
		Content: content,
		Visible: true,
		Opacity: 1.0,
	}
}

// ApplyMask replaces the target layer's mask with mask. The previous
// mask, if any, is discarded, never merged. A nil layer or nil mask
// makes the call a no-op; hosts calling "apply" with no active layer or
// no computed selection get nothing instead of an error.
func ApplyMask(layer *Layer, mask *Mask) {
	if layer == nil || mask == nil {
		Logger().Warn("wand: apply mask skipped",
			"haveLayer", layer != nil, "haveMask", mask != nil)
		return
	}
	layer.Mask = mask
}

// Composite flattens layers bottom-to-top into a fresh width x height
// surface. Each visible layer is drawn source-over with its opacity;
// if the layer carries a mask, the accumulated result is then clipped
// to the mask (destination-in) before the next layer is drawn.
//
// Composite is idempotent: the same layers, content and masks always
// produce a byte-identical surface. Layers whose content dimensions
// differ from the composite are skipped with a warning.
func Composite(width, height int, layers []*Layer) *Surface {
	dst := NewSurface(width, height)

	for _, layer := range layers {
		if layer == nil || !layer.Visible || layer.Content == nil {
			continue
		}
		if layer.Content.width != width || layer.Content.height != height {
			Logger().Warn("wand: layer skipped, dimensions differ",
				"layer", layer.Content.Bounds(), "composite", dst.Bounds())
			continue
		}

		opacity := layer.Opacity
		if opacity < 0 {
			opacity = 0
		}
		if opacity > 1 {
			opacity = 1
		}

		blend.SourceOver(dst.data, layer.Content.data, opacity)
		if layer.Mask != nil {
			blend.DestinationIn(dst.data, layer.Mask.data)
		}
	}
	return dst
}

package wand

import (
	"github.com/inkpad/wand/internal/blend"
)

// overlayColor is the default selection highlight.
var overlayColor = RGB(0.25, 0.45, 1.0)

// Overlay renders the selection as a semi-transparent highlight over a
// copy of s, the preview a host shows while a selection is pending. The
// highlight is multiply-blended at 50% strength scaled by mask
// membership, so feathered edges fade out. s itself is not modified.
func Overlay(s *Surface, mask *Mask) *Surface {
	return OverlayColor(s, mask, overlayColor)
}

// OverlayColor is Overlay with a custom highlight color.
func OverlayColor(s *Surface, mask *Mask, c RGBA) *Surface {
	out := s.Clone()
	if mask == nil {
		Logger().Warn("wand: overlay skipped, no mask")
		return out
	}
	if mask.width != s.width || mask.height != s.height {
		Logger().Warn("wand: overlay skipped, mask dimensions differ",
			"surface", s.Bounds(), "mask", mask.Bounds())
		return out
	}

	cr := uint8(clamp255(c.R * 255))
	cg := uint8(clamp255(c.G * 255))
	cb := uint8(clamp255(c.B * 255))

	blend.MultiplyTint(out.data, mask.data, cr, cg, cb, 0.5)
	return out
}

package wand

import (
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = RGBA{0, 0, 0, 0}
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
)

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Distance returns the Euclidean distance between two colors across all
// four channels, measured in 8-bit channel units. The range is
// [0, 510] (510 = sqrt(4*255*255)). Alpha participates like any other
// channel; this is a byte-space metric, not a perceptual one.
func (c RGBA) Distance(o RGBA) float64 {
	dr := (c.R - o.R) * 255
	dg := (c.G - o.G) * 255
	db := (c.B - o.B) * 255
	da := (c.A - o.A) * 255
	return math.Sqrt(dr*dr + dg*dg + db*db + da*da)
}

// distanceBytes is the hot-path form of Distance used by the flood fill:
// Euclidean distance between two raw RGBA byte quads.
func distanceBytes(r1, g1, b1, a1, r2, g2, b2, a2 uint8) float64 {
	dr := float64(r1) - float64(r2)
	dg := float64(g1) - float64(g2)
	db := float64(b1) - float64(b2)
	da := float64(a1) - float64(a2)
	return math.Sqrt(dr*dr + dg*dg + db*db + da*da)
}

// clamp255 clamps a value to the range [0, 255].
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

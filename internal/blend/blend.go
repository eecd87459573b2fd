// Package blend implements the compositing operators used when
// flattening layer stacks: source-over with opacity, destination-in
// masking, and multiply tinting for selection previews.
//
// All operations work on straight (non-premultiplied) RGBA byte
// buffers, 4 bytes per pixel, matching the surface pixel layout.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// mulDiv255 multiplies two bytes and divides by 255 exactly, using
// Alvy Ray Smith's shift formula instead of integer division.
func mulDiv255(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 1
	return uint8((t + (t >> 8)) >> 8)
}

// SourceOver composites src over dst in place, scaling the source
// contribution by opacity in [0, 1]. Both buffers hold straight-alpha
// RGBA bytes and must have equal length.
//
// Formula (alphas normalized to [0, 1]):
//
//	Ra = Sa + Da*(1 - Sa)
//	Rc = (Sc*Sa + Dc*Da*(1 - Sa)) / Ra
func SourceOver(dst, src []uint8, opacity float64) {
	if len(src) < len(dst) {
		return
	}
	for i := 0; i+3 < len(dst); i += 4 {
		sa := float64(src[i+3]) / 255 * opacity
		if sa <= 0 {
			continue
		}
		da := float64(dst[i+3]) / 255

		outA := sa + da*(1-sa)
		if outA <= 0 {
			dst[i], dst[i+1], dst[i+2], dst[i+3] = 0, 0, 0, 0
			continue
		}

		ws := sa / outA
		wd := da * (1 - sa) / outA
		dst[i+0] = uint8(float64(src[i+0])*ws + float64(dst[i+0])*wd + 0.5)
		dst[i+1] = uint8(float64(src[i+1])*ws + float64(dst[i+1])*wd + 0.5)
		dst[i+2] = uint8(float64(src[i+2])*ws + float64(dst[i+2])*wd + 0.5)
		dst[i+3] = uint8(outA*255 + 0.5)
	}
}

// DestinationIn keeps dst only where the mask is selected: each pixel's
// alpha is scaled by the mask's membership value. With straight alpha
// the color channels are untouched. mask holds one byte per pixel.
//
// Formula: Ra = Da * Ma
func DestinationIn(dst []uint8, mask []uint8) {
	n := len(dst) / 4
	if len(mask) < n {
		return
	}
	for p := 0; p < n; p++ {
		dst[p*4+3] = mulDiv255(dst[p*4+3], mask[p])
	}
}

// MultiplyTint multiply-blends the tint color (tr, tg, tb) into dst at
// per-pixel strength opacity * mask/255. Used for rendering selection
// highlights; alpha is left unchanged so the tint never reveals or
// hides content.
//
// Formula per channel: Rc = Dc*(1 - a) + Dc*Tc/255*a, a = Ma/255 * opacity
func MultiplyTint(dst []uint8, mask []uint8, tr, tg, tb uint8, opacity float64) {
	n := len(dst) / 4
	if len(mask) < n {
		return
	}
	for p := 0; p < n; p++ {
		m := mask[p]
		if m == 0 {
			continue
		}
		a := float64(m) / 255 * opacity
		i := p * 4
		dst[i+0] = tint(dst[i+0], tr, a)
		dst[i+1] = tint(dst[i+1], tg, a)
		dst[i+2] = tint(dst[i+2], tb, a)
	}
}

func tint(d, t uint8, a float64) uint8 {
	mul := float64(mulDiv255(d, t))
	return uint8(float64(d)*(1-a) + mul*a + 0.5)
}

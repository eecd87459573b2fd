package wand

import "image"

// Flood computes a magic-wand selection: the set of pixels whose color
// lies within the tolerance of the color sampled at seed. With
// Contiguous (the default) only pixels reachable from the seed through a
// chain of 4-connected in-tolerance neighbors are selected; otherwise
// every in-tolerance pixel on the surface is selected.
//
// Tolerance is always measured against the fixed seed color, never the
// previously visited pixel, so the selection cannot drift through
// gradual color transitions beyond the seed's own tolerance envelope.
//
// A seed outside the surface bounds yields an empty mask.
func Flood(s *Surface, seed image.Point, opts ...Option) *Mask {
	p := applyOptions(opts)
	mask := NewMask(s.width, s.height)

	if !seed.In(s.Bounds()) {
		Logger().Warn("wand: flood seed outside surface bounds",
			"seed", seed, "bounds", s.Bounds())
		return mask
	}

	sr, sg, sb, sa := s.pixelBytes(seed.X, seed.Y)

	if p.Contiguous {
		floodContiguous(s, mask, seed, sr, sg, sb, sa, p.Tolerance)
	} else {
		floodGlobal(s, mask, sr, sg, sb, sa, p.Tolerance)
	}

	if p.Feather > 0 {
		mask.Feather(p.Feather)
	}
	Logger().Debug("wand: flood selection complete",
		"seed", seed, "tolerance", p.Tolerance, "contiguous", p.Contiguous,
		"selected", mask.Count())
	return mask
}

// floodContiguous grows the selection outward from the seed with an
// iterative depth-first fill. An explicit stack avoids call-stack limits
// on large surfaces; the visited bitset guarantees each pixel is
// examined at most once.
func floodContiguous(s *Surface, mask *Mask, seed image.Point, sr, sg, sb, sa uint8, tolerance float64) {
	w, h := s.width, s.height
	visited := make([]bool, w*h)

	stack := make([]image.Point, 0, 1024)
	stack = append(stack, seed)

	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if pt.X < 0 || pt.X >= w || pt.Y < 0 || pt.Y >= h {
			continue
		}
		idx := pt.Y*w + pt.X
		if visited[idx] {
			continue
		}
		visited[idx] = true

		r, g, b, a := s.pixelBytes(pt.X, pt.Y)
		if distanceBytes(r, g, b, a, sr, sg, sb, sa) > tolerance {
			continue
		}
		mask.data[idx] = 255

		stack = append(stack,
			image.Pt(pt.X+1, pt.Y),
			image.Pt(pt.X-1, pt.Y),
			image.Pt(pt.X, pt.Y+1),
			image.Pt(pt.X, pt.Y-1),
		)
	}
}

// floodGlobal selects every in-tolerance pixel with a single linear
// scan, ignoring connectivity.
func floodGlobal(s *Surface, mask *Mask, sr, sg, sb, sa uint8, tolerance float64) {
	for i := 0; i < len(mask.data); i++ {
		r := s.data[i*4]
		g := s.data[i*4+1]
		b := s.data[i*4+2]
		a := s.data[i*4+3]
		if distanceBytes(r, g, b, a, sr, sg, sb, sa) <= tolerance {
			mask.data[i] = 255
		}
	}
}

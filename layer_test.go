package wand

import (
	"bytes"
	"image"
	"testing"
)

func solidLayer(w, h int, c RGBA) *Layer {
	s := NewSurface(w, h)
	s.Clear(c)
	return NewLayer(s)
}

func TestCompositeIdempotent(t *testing.T) {
	bottom := solidLayer(16, 16, RGB(1, 0, 0))
	top := solidLayer(16, 16, RGBA{0, 1, 0, 0.5})
	top.Mask = Rect(16, 16, image.Rect(4, 4, 12, 12))
	layers := []*Layer{bottom, top}

	first := Composite(16, 16, layers)
	second := Composite(16, 16, layers)

	if !bytes.Equal(first.Data(), second.Data()) {
		t.Error("recompositing identical layers produced different output")
	}
}

func TestCompositeMaskClips(t *testing.T) {
	layer := solidLayer(10, 10, RGB(1, 0, 0))
	layer.Mask = Rect(10, 10, image.Rect(0, 0, 5, 10)) // keep left half

	out := Composite(10, 10, []*Layer{layer})

	if got := out.GetPixel(2, 5); got.A != 1 || got.R != 1 {
		t.Errorf("masked-in pixel is %+v, want opaque red", got)
	}
	if got := out.GetPixel(7, 5); got.A != 0 {
		t.Errorf("masked-out pixel has alpha %v, want 0", got.A)
	}
}

func TestCompositeMaskClipsLowerLayers(t *testing.T) {
	// The mask restricts everything drawn so far, not just the masked
	// layer's own content.
	bottom := solidLayer(10, 10, RGB(0, 0, 1))
	top := solidLayer(10, 10, RGB(1, 0, 0))
	top.Mask = Rect(10, 10, image.Rect(0, 0, 5, 10))

	out := Composite(10, 10, []*Layer{bottom, top})

	if got := out.GetPixel(7, 5); got.A != 0 {
		t.Errorf("pixel outside the top layer's mask has alpha %v, want 0", got.A)
	}
}

func TestCompositeSkipsInvisible(t *testing.T) {
	visible := solidLayer(8, 8, RGB(0, 0, 1))
	hidden := solidLayer(8, 8, RGB(1, 0, 0))
	hidden.Visible = false

	out := Composite(8, 8, []*Layer{visible, hidden})

	if got := out.GetPixel(4, 4); got.B != 1 || got.R != 0 {
		t.Errorf("got %+v, want the visible blue layer only", got)
	}
}

func TestCompositeOpacity(t *testing.T) {
	layer := solidLayer(8, 8, White)
	layer.Opacity = 0.5

	out := Composite(8, 8, []*Layer{layer})

	a := out.GetPixel(4, 4).A
	if a < 0.45 || a > 0.55 {
		t.Errorf("half-opacity layer composited with alpha %v, want ~0.5", a)
	}
}

func TestCompositeSkipsMismatchedLayer(t *testing.T) {
	out := Composite(8, 8, []*Layer{solidLayer(4, 4, White)})

	if got := out.GetPixel(2, 2); got.A != 0 {
		t.Errorf("mismatched layer contributed alpha %v, want 0", got.A)
	}
}

func TestApplyMaskReplaces(t *testing.T) {
	layer := solidLayer(8, 8, White)
	first := Rect(8, 8, image.Rect(0, 0, 2, 2))
	second := Rect(8, 8, image.Rect(4, 4, 8, 8))

	ApplyMask(layer, first)
	ApplyMask(layer, second)

	if layer.Mask != second {
		t.Error("second ApplyMask did not replace the first mask")
	}
	if layer.Mask.At(1, 1) != 0 {
		t.Error("replaced mask still contains the first selection")
	}
}

func TestApplyMaskNoop(t *testing.T) {
	layer := solidLayer(8, 8, White)
	existing := Rect(8, 8, image.Rect(0, 0, 4, 4))
	layer.Mask = existing

	ApplyMask(nil, existing) // no active layer
	ApplyMask(layer, nil)    // no computed selection

	if layer.Mask != existing {
		t.Error("no-op apply modified the layer mask")
	}
}

func TestOverlay(t *testing.T) {
	s := NewSurface(10, 10)
	s.Clear(RGB(0.5, 0.5, 0.5))
	orig := s.Clone()
	mask := Rect(10, 10, image.Rect(0, 0, 5, 10))

	out := Overlay(s, mask)

	// Unselected pixels are untouched.
	if got, want := out.GetPixel(7, 5), s.GetPixel(7, 5); got != want {
		t.Errorf("unselected pixel changed: got %+v, want %+v", got, want)
	}
	// Selected pixels are tinted but keep their alpha.
	sel := out.GetPixel(2, 5)
	if sel == s.GetPixel(2, 5) {
		t.Error("selected pixel was not highlighted")
	}
	if sel.A != 1 {
		t.Errorf("highlight changed alpha to %v, want 1", sel.A)
	}
	// The source surface is never modified.
	if !bytes.Equal(s.Data(), orig.Data()) {
		t.Error("overlay mutated the source surface")
	}
}

package wand

import (
	"image"
	"testing"
)

func TestRectSelection(t *testing.T) {
	mask := Rect(20, 20, image.Rect(2, 3, 7, 7))

	if got, want := mask.Count(), 5*4; got != want {
		t.Errorf("selected %d pixels, want %d", got, want)
	}
	if mask.At(2, 3) != 255 {
		t.Error("top-left corner not selected")
	}
	if mask.At(6, 6) != 255 {
		t.Error("bottom-right interior pixel not selected")
	}
	// Max edges are exclusive.
	if mask.At(7, 3) != 0 {
		t.Error("pixel at x=max is selected")
	}
	if mask.At(2, 7) != 0 {
		t.Error("pixel at y=max is selected")
	}
}

func TestRectClipsToSurface(t *testing.T) {
	mask := Rect(10, 10, image.Rect(5, 5, 100, 100))

	if got, want := mask.Count(), 5*5; got != want {
		t.Errorf("selected %d pixels, want %d", got, want)
	}
}

func TestRectDegenerate(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(3, 3, 3, 8), // zero width
		image.Rect(3, 3, 8, 3), // zero height
		image.Rect(5, 5, 5, 5), // zero both
	} {
		mask := Rect(10, 10, r)
		if got := mask.Count(); got != 0 {
			t.Errorf("rect %v: selected %d pixels, want 0", r, got)
		}
	}
}

func TestEllipseDegenerate(t *testing.T) {
	mask := Ellipse(10, 10, image.Rect(2, 2, 2, 8))
	if got := mask.Count(); got != 0 {
		t.Errorf("zero-width ellipse selected %d pixels, want 0", got)
	}
}

func TestEllipseCoverage(t *testing.T) {
	mask := Ellipse(20, 20, image.Rect(0, 0, 20, 20), WithAntiAlias(false))

	if mask.At(10, 10) != 255 {
		t.Error("circle center not selected")
	}
	if mask.At(1, 1) != 0 {
		t.Error("corner outside the circle is selected")
	}

	// A radius-10 disc covers ~314 pixels.
	got := mask.Count()
	if got < 280 || got > 340 {
		t.Errorf("disc covers %d pixels, want roughly 314", got)
	}
}

func TestLassoTooFewPoints(t *testing.T) {
	for _, pts := range [][]Point{
		nil,
		{Pt(1, 1)},
		{Pt(1, 1), Pt(8, 8)},
	} {
		mask := Lasso(10, 10, pts)
		if got := mask.Count(); got != 0 {
			t.Errorf("%d-point lasso selected %d pixels, want 0", len(pts), got)
		}
	}
}

func TestLassoTriangle(t *testing.T) {
	// Implicitly closed triangle: the closing edge from the last point
	// back to the first is not listed.
	pts := []Point{Pt(2, 2), Pt(17, 2), Pt(2, 17)}

	mask := Lasso(20, 20, pts, WithAntiAlias(false))

	if mask.At(5, 5) != 255 {
		t.Error("point inside the triangle not selected")
	}
	if mask.At(16, 16) != 0 {
		t.Error("point outside the triangle is selected")
	}
	if got := mask.Count(); got == 0 {
		t.Error("triangle selected no pixels")
	}
}

func TestAntiAliasToggle(t *testing.T) {
	box := image.Rect(3, 3, 16, 16)

	hard := Ellipse(20, 20, box, WithAntiAlias(false))
	for i, v := range hard.Data() {
		if v != 0 && v != 255 {
			t.Fatalf("aliased mask has fractional value %d at index %d", v, i)
		}
	}

	soft := Ellipse(20, 20, box, WithAntiAlias(true))
	fractional := false
	for _, v := range soft.Data() {
		if v > 0 && v < 255 {
			fractional = true
			break
		}
	}
	if !fractional {
		t.Error("anti-aliased ellipse has no fractional coverage")
	}
}

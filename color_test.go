package wand

import (
	"image/color"
	"math"
	"testing"
)

func TestColorDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b RGBA
		want float64
	}{
		{"identical", RGB(0.3, 0.6, 0.9), RGB(0.3, 0.6, 0.9), 0},
		{"black to white", Black, White, 255 * math.Sqrt(3)},
		{"opaque to transparent black", Black, Transparent, 255},
		{"single channel", RGB(0, 0, 0), RGB(1, 0, 0), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Distance(tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
			// Symmetric.
			if rev := tt.b.Distance(tt.a); rev != got {
				t.Errorf("Distance not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestDistanceBytesMatchesDistance(t *testing.T) {
	a := RGBA{R: 10.0 / 255, G: 200.0 / 255, B: 50.0 / 255, A: 1}
	b := RGBA{R: 60.0 / 255, G: 20.0 / 255, B: 0, A: 128.0 / 255}

	want := a.Distance(b)
	got := distanceBytes(10, 200, 50, 255, 60, 20, 0, 128)

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("distanceBytes = %v, Distance = %v", got, want)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	in := color.NRGBA{R: 255, G: 0, B: 255, A: 255}
	c := FromColor(in)

	if c.R != 1 || c.G != 0 || c.B != 1 || c.A != 1 {
		t.Errorf("FromColor gave %+v, want magenta", c)
	}
	if got := c.Color(); got != in {
		t.Errorf("round trip gave %+v, want %+v", got, in)
	}
}

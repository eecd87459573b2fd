package wand

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Surface represents a rectangular RGBA pixel buffer. It is the raster
// the selectors read from and the compositor writes to.
type Surface struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewSurface creates a new transparent surface with the given dimensions.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.height
}

// Data returns the raw pixel data (RGBA format).
func (s *Surface) Data() []uint8 {
	return s.data
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the surface bounds are ignored.
func (s *Surface) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.data[i+0] = uint8(clamp255(c.R * 255))
	s.data[i+1] = uint8(clamp255(c.G * 255))
	s.data[i+2] = uint8(clamp255(c.B * 255))
	s.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
// Returns Transparent for coordinates outside the surface bounds.
func (s *Surface) GetPixel(x, y int) RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return RGBA{
		R: float64(s.data[i+0]) / 255,
		G: float64(s.data[i+1]) / 255,
		B: float64(s.data[i+2]) / 255,
		A: float64(s.data[i+3]) / 255,
	}
}

// pixelBytes returns the raw RGBA bytes at (x, y). The caller must
// ensure the coordinate is in bounds.
func (s *Surface) pixelBytes(x, y int) (r, g, b, a uint8) {
	i := (y*s.width + x) * 4
	return s.data[i], s.data[i+1], s.data[i+2], s.data[i+3]
}

// Clear fills the entire surface with a color.
func (s *Surface) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = r
		s.data[i+1] = g
		s.data[i+2] = b
		s.data[i+3] = a
	}
}

// Clone creates a copy of the surface.
func (s *Surface) Clone() *Surface {
	clone := NewSurface(s.width, s.height)
	copy(clone.data, s.data)
	return clone
}

// ToImage converts the surface to an image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.data)
	return img
}

// FromImage creates a surface from an image.
func FromImage(img image.Image) *Surface {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	surf := NewSurface(width, height)
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == width*4 {
		copy(surf.data, nrgba.Pix)
		return surf
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			surf.SetPixel(x, y, FromColor(c))
		}
	}
	return surf
}

// LoadPNG loads a PNG file into a surface.
func LoadPNG(path string) (*Surface, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.ToImage())
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

package wand

import (
	"image"

	"github.com/inkpad/wand/internal/blur"
)

// Mask represents a per-pixel selection membership buffer shaped like a
// Surface. Values range from 0 (unselected) to 255 (fully selected);
// intermediate values express feathered or anti-aliased membership.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (nothing selected).
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clear clears the mask (sets all values to 0).
func (m *Mask) Clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Invert inverts all mask values (255 - value).
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = 255 - m.data[i]
	}
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data slice.
func (m *Mask) Data() []uint8 {
	return m.data
}

// Count returns the number of pixels with nonzero membership.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// SelectionBounds returns the tight bounding rectangle of all nonzero
// pixels. Returns the zero rectangle when nothing is selected.
func (m *Mask) SelectionBounds() image.Rectangle {
	minX, minY := m.width, m.height
	maxX, maxY := -1, -1
	for y := 0; y < m.height; y++ {
		row := m.data[y*m.width : (y+1)*m.width]
		for x, v := range row {
			if v == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// CombineMode selects how a new selection merges into an existing one.
type CombineMode uint8

const (
	// CombineReplace discards the existing selection.
	CombineReplace CombineMode = iota
	// CombineAdd keeps the union of both selections.
	CombineAdd
	// CombineSubtract removes the new selection from the existing one.
	CombineSubtract
	// CombineIntersect keeps only pixels selected in both.
	CombineIntersect
)

// Combine merges other into m according to mode. Both masks must have
// the same dimensions; mismatched masks leave m unchanged and log a
// warning.
func (m *Mask) Combine(other *Mask, mode CombineMode) {
	if other == nil {
		return
	}
	if other.width != m.width || other.height != m.height {
		Logger().Warn("wand: combine skipped, mask dimensions differ",
			"dst", m.Bounds(), "src", other.Bounds())
		return
	}
	switch mode {
	case CombineReplace:
		copy(m.data, other.data)
	case CombineAdd:
		for i, v := range other.data {
			if v > m.data[i] {
				m.data[i] = v
			}
		}
	case CombineSubtract:
		for i, v := range other.data {
			if v >= m.data[i] {
				m.data[i] = 0
			} else {
				m.data[i] -= v
			}
		}
	case CombineIntersect:
		for i, v := range other.data {
			if v < m.data[i] {
				m.data[i] = v
			}
		}
	}
}

// Feather softens the selection boundary with a Gaussian blur of the
// given radius in pixels. A radius <= 0 is a no-op.
func (m *Mask) Feather(radius float64) {
	if radius <= 0 {
		return
	}
	blur.Gaussian(m.data, m.width, m.height, radius)
}

// ToGray converts the mask to an image.Gray (membership as luminance).
func (m *Mask) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.width, m.height))
	copy(img.Pix, m.data)
	return img
}

// ToAlpha converts the mask to an image.Alpha suitable for use as a
// draw mask with the standard library.
func (m *Mask) ToAlpha() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, m.width, m.height))
	copy(img.Pix, m.data)
	return img
}

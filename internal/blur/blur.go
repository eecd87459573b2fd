// Package blur applies separable Gaussian blur to single-channel
// buffers. It backs selection feathering: softening a mask's hard
// boundary into a gradual membership falloff.
//
// The separable algorithm processes horizontal and vertical passes
// independently, achieving O(w*h*r) complexity instead of O(w*h*r*r).
package blur

import "math"

// kernel builds a normalized 1D Gaussian kernel for the given radius
// (radius is used as sigma; kernel half-size is ceil(3*sigma)).
func kernel(radius float64) []float64 {
	if radius <= 0 {
		return []float64{1.0}
	}

	sigma := radius
	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1

	k := make([]float64, size)
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		v := math.Exp(-(x * x) / twoSigmaSq)
		k[i] = v
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// Gaussian blurs a width x height single-channel buffer in place with
// the given radius. Edges are clamp-extended. A radius <= 0 leaves the
// buffer unchanged.
func Gaussian(data []uint8, width, height int, radius float64) {
	if radius <= 0 || width == 0 || height == 0 {
		return
	}

	k := kernel(radius)
	half := len(k) / 2
	temp := make([]float64, width*height)

	// Horizontal pass: data -> temp.
	for y := 0; y < height; y++ {
		row := data[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			var sum float64
			for i, w := range k {
				kx := x + i - half
				if kx < 0 {
					kx = 0
				} else if kx >= width {
					kx = width - 1
				}
				sum += float64(row[kx]) * w
			}
			temp[y*width+x] = sum
		}
	}

	// Vertical pass: temp -> data.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64
			for i, w := range k {
				ky := y + i - half
				if ky < 0 {
					ky = 0
				} else if ky >= height {
					ky = height - 1
				}
				sum += temp[ky*width+x] * w
			}
			data[y*width+x] = uint8(sum + 0.5)
		}
	}
}

package wand

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sobel kernel pair, row-major 3x3.
var (
	sobelX = [9]float64{-1, 0, 1, -2, 0, 2, -1, 0, 1}
	sobelY = [9]float64{-1, -2, -1, 0, 0, 0, 1, 2, 1}
)

// Edges computes an edge selection: pixels whose local luminance
// gradient magnitude (Sobel operator) exceeds the threshold. Luminance
// is the unweighted average of R, G and B.
//
// The outermost 1-pixel ring is never selected: the 3x3 kernels have no
// full support there, so no gradient is computed for border pixels. This
// is intended behavior, not an artifact.
func Edges(s *Surface, opts ...Option) *Mask {
	p := applyOptions(opts)
	mask := NewMask(s.width, s.height)
	if s.width < 3 || s.height < 3 {
		return mask
	}

	grad := gradientMagnitude(s)

	threshold := p.Threshold
	if p.AutoThreshold {
		threshold = otsuThreshold(grad, s.width, s.height)
		Logger().Debug("wand: auto edge threshold", "threshold", threshold)
	}

	for y := 1; y < s.height-1; y++ {
		for x := 1; x < s.width-1; x++ {
			if grad[y*s.width+x] > threshold {
				mask.data[y*s.width+x] = 255
			}
		}
	}

	if p.Feather > 0 {
		mask.Feather(p.Feather)
	}
	return mask
}

// gradientMagnitude returns the Sobel gradient magnitude for every
// interior pixel; border entries stay 0.
func gradientMagnitude(s *Surface) []float64 {
	w, h := s.width, s.height

	// Grayscale pass first so each luminance is computed once instead of
	// up to nine times during convolution.
	lum := make([]float64, w*h)
	for i := 0; i < w*h; i++ {
		r := float64(s.data[i*4])
		g := float64(s.data[i*4+1])
		b := float64(s.data[i*4+2])
		lum[i] = (r + g + b) / 3
	}

	grad := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			var gx, gy float64
			k := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					v := lum[(y+dy)*w+(x+dx)]
					gx += v * sobelX[k]
					gy += v * sobelY[k]
					k++
				}
			}
			grad[y*w+x] = math.Hypot(gx, gy)
		}
	}
	return grad
}

// otsuThreshold picks the gradient threshold that maximizes
// between-class variance over a 256-bin magnitude histogram (Otsu's
// method), considering interior pixels only.
func otsuThreshold(grad []float64, w, h int) float64 {
	hist := make([]float64, 256)
	total := 0.0
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			bin := int(grad[y*w+x])
			if bin > 255 {
				bin = 255
			}
			hist[bin]++
			total++
		}
	}
	if total == 0 {
		return defaultThreshold
	}

	weighted := make([]float64, 256)
	for i := range hist {
		hist[i] /= total
		weighted[i] = float64(i) * hist[i]
	}

	omega := make([]float64, 256)
	mu := make([]float64, 256)
	floats.CumSum(omega, hist)
	floats.CumSum(mu, weighted)
	muT := mu[255]

	sigma := make([]float64, 256)
	for t := 0; t < 256; t++ {
		denom := omega[t] * (1 - omega[t])
		if denom <= 0 {
			continue
		}
		d := muT*omega[t] - mu[t]
		sigma[t] = d * d / denom
	}
	return float64(floats.MaxIdx(sigma))
}

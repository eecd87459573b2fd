package wand

import (
	"image"

	"golang.org/x/image/vector"
)

// Point is a position on a surface in pixel coordinates. Geometric
// selections take float64 points so pointer input does not have to be
// snapped to the pixel grid before rasterization.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect computes a rectangular selection over a width x height surface:
// all pixels within r (intersected with the surface bounds) become fully
// selected. A zero-area rectangle yields an empty mask.
func Rect(width, height int, r image.Rectangle, opts ...Option) *Mask {
	p := applyOptions(opts)
	mask := NewMask(width, height)

	r = r.Canon().Intersect(image.Rect(0, 0, width, height))
	if r.Empty() {
		Logger().Warn("wand: rectangle selection is empty", "rect", r)
		return mask
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := mask.data[y*width : (y+1)*width]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = 255
		}
	}

	if p.Feather > 0 {
		mask.Feather(p.Feather)
	}
	return mask
}

// kappa approximates a quarter circle with a cubic Bezier.
const kappa = 0.5522847498307936

// Ellipse computes an elliptical selection inscribed in the bounding box
// r. A zero-area box yields an empty mask.
func Ellipse(width, height int, r image.Rectangle, opts ...Option) *Mask {
	r = r.Canon()
	if r.Dx() == 0 || r.Dy() == 0 {
		Logger().Warn("wand: ellipse selection is empty", "rect", r)
		return NewMask(width, height)
	}

	cx := float32(r.Min.X) + float32(r.Dx())/2
	cy := float32(r.Min.Y) + float32(r.Dy())/2
	rx := float32(r.Dx()) / 2
	ry := float32(r.Dy()) / 2
	kx := rx * kappa
	ky := ry * kappa

	ras := vector.NewRasterizer(width, height)
	ras.MoveTo(cx+rx, cy)
	ras.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	ras.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	ras.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	ras.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	ras.ClosePath()

	return rasterize(ras, width, height, opts)
}

// Lasso computes a freehand polygon selection. The path is implicitly
// closed (last point connected back to the first) and filled with the
// nonzero winding rule. Fewer than 3 points yield an empty mask.
func Lasso(width, height int, points []Point, opts ...Option) *Mask {
	if len(points) < 3 {
		Logger().Warn("wand: lasso needs at least 3 points", "points", len(points))
		return NewMask(width, height)
	}

	ras := vector.NewRasterizer(width, height)
	ras.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, pt := range points[1:] {
		ras.LineTo(float32(pt.X), float32(pt.Y))
	}
	ras.ClosePath()

	return rasterize(ras, width, height, opts)
}

// rasterize renders accumulated path coverage into a mask, optionally
// thresholding away fractional anti-aliased coverage.
func rasterize(ras *vector.Rasterizer, width, height int, opts []Option) *Mask {
	p := applyOptions(opts)

	alpha := image.NewAlpha(image.Rect(0, 0, width, height))
	ras.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	mask := NewMask(width, height)
	copy(mask.data, alpha.Pix)

	if !p.AntiAlias {
		for i, v := range mask.data {
			if v >= 128 {
				mask.data[i] = 255
			} else {
				mask.data[i] = 0
			}
		}
	}

	if p.Feather > 0 {
		mask.Feather(p.Feather)
	}
	return mask
}

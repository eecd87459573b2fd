// Command wanddemo runs a selection over a PNG and writes the
// resulting mask, a highlight preview, and an SVG outline.
//
// Examples:
//
//	wanddemo -input shirt.png -mode flood -seed 120,80 -tolerance 30
//	wanddemo -input shirt.png -mode edges -auto
//	wanddemo -input shirt.png -mode ellipse -rect 40,40,200,160
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"github.com/inkpad/wand"
)

// maxPreviewSize bounds the preview dimensions; larger inputs are
// scaled down before the overlay is written.
const maxPreviewSize = 1024

func main() {
	var (
		input     = flag.String("input", "", "input PNG file")
		mode      = flag.String("mode", "flood", "selection mode: flood, edges, rect, ellipse")
		seed      = flag.String("seed", "0,0", "flood seed as x,y")
		tolerance = flag.Int("tolerance", 30, "flood tolerance, 1-100")
		global    = flag.Bool("global", false, "flood: select all matching pixels, not just the connected region")
		threshold = flag.Float64("threshold", 50, "edge gradient threshold")
		auto      = flag.Bool("auto", false, "edges: derive threshold automatically")
		rect      = flag.String("rect", "", "rect/ellipse bounds as x,y,w,h")
		feather   = flag.Float64("feather", 0, "feather radius in pixels")
		maskOut   = flag.String("mask", "mask.png", "output mask file")
		preview   = flag.String("preview", "preview.png", "output preview file")
		svgOut    = flag.String("svg", "", "output SVG outline file (optional)")
		verbose   = flag.Bool("v", false, "log diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		wand.SetLogger(slog.Default())
	}
	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	surf, err := wand.LoadPNG(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}

	mask, err := computeMask(surf, *mode, *seed, *tolerance, *global, *threshold, *auto, *rect, *feather)
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	log.Printf("Selected %d of %d pixels", mask.Count(), surf.Width()*surf.Height())

	if err := savePNG(mask.ToGray(), *maskOut); err != nil {
		log.Fatalf("Failed to save mask: %v", err)
	}

	if err := savePreview(surf, mask, *preview); err != nil {
		log.Fatalf("Failed to save preview: %v", err)
	}

	if *svgOut != "" {
		svg, err := wand.OutlineSVG(mask)
		if err != nil {
			log.Fatalf("Failed to trace outline: %v", err)
		}
		if err := os.WriteFile(*svgOut, []byte(svg), 0o644); err != nil {
			log.Fatalf("Failed to save SVG: %v", err)
		}
	}
}

func computeMask(surf *wand.Surface, mode, seed string, tolerance int, global bool,
	threshold float64, auto bool, rect string, feather float64) (*wand.Mask, error) {

	opts := []wand.Option{
		wand.WithTolerancePercent(tolerance),
		wand.WithContiguous(!global),
		wand.WithFeather(feather),
	}

	switch mode {
	case "flood":
		var x, y int
		if _, err := fmt.Sscanf(seed, "%d,%d", &x, &y); err != nil {
			return nil, fmt.Errorf("bad -seed %q: %w", seed, err)
		}
		return wand.Flood(surf, image.Pt(x, y), opts...), nil

	case "edges":
		if auto {
			opts = append(opts, wand.WithAutoThreshold())
		} else {
			opts = append(opts, wand.WithThreshold(threshold))
		}
		return wand.Edges(surf, opts...), nil

	case "rect", "ellipse":
		r, err := parseRect(rect)
		if err != nil {
			return nil, err
		}
		if mode == "rect" {
			return wand.Rect(surf.Width(), surf.Height(), r, opts...), nil
		}
		return wand.Ellipse(surf.Width(), surf.Height(), r, opts...), nil

	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

func parseRect(s string) (image.Rectangle, error) {
	var x, y, w, h int
	if _, err := fmt.Sscanf(s, "%d,%d,%d,%d", &x, &y, &w, &h); err != nil {
		return image.Rectangle{}, fmt.Errorf("bad -rect %q: %w", s, err)
	}
	return image.Rect(x, y, x+w, y+h), nil
}

// savePreview writes the selection highlight over the source image,
// scaled down when the source exceeds the preview size limit.
func savePreview(surf *wand.Surface, mask *wand.Mask, path string) error {
	img := wand.Overlay(surf, mask).ToImage()

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w > maxPreviewSize || h > maxPreviewSize {
		scale := float64(maxPreviewSize) / float64(max(w, h))
		dst := image.NewNRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		return savePNG(dst, path)
	}
	return savePNG(img, path)
}

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}

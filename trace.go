package wand

import (
	"bytes"

	"github.com/gotranspile/gotrace"
)

// OutlineSVG traces the selection boundary into vector paths and
// returns them as an SVG document sized like the mask. This is the
// bridge from a raster selection to path-editing hosts: the traced
// outline can be loaded into a vector editor as a regular closed path.
//
// An empty mask produces a valid SVG document with no paths.
func OutlineSVG(mask *Mask) (string, error) {
	bm := gotrace.BitmapFromGray(mask.ToGray(), nil)

	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := gotrace.Render("svg", nil, &buf, paths, mask.width, mask.height); err != nil {
		return "", err
	}

	pathCount := 0
	for p := paths; p != nil; p = p.Next {
		pathCount++
	}
	Logger().Debug("wand: selection outline traced", "paths", pathCount)
	return buf.String(), nil
}

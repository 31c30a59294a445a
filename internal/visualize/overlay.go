package visualize

import (
	"image"
	"math"

	"gocv.io/x/gocv"

	"mushroom-segmenter/internal/segment"
)

// DefaultAlpha is the overlay transparency used when the caller has no
// preference.
const DefaultAlpha = 0.3

// Overlay blends translucent filled discs over each detection so the
// covered area reads at a glance. Discs use the equalized-map radius;
// the full annotation (center dot and both rings) is drawn solid on
// top. The caller owns the returned Mat.
func Overlay(img gocv.Mat, circles []segment.Circle, opts Options, alpha float64) gocv.Mat {
	if img.Empty() {
		return gocv.NewMat()
	}

	filled := img.Clone()
	defer filled.Close()
	for _, c := range circles {
		center := image.Point{X: c.X, Y: c.Y}
		gocv.Circle(&filled, center, int(math.Round(c.Radius2)), opts.Radius2Color, -1)
	}

	dst := gocv.NewMat()
	gocv.AddWeighted(filled, alpha, img, 1.0-alpha, 0, &dst)
	drawCircles(&dst, circles, opts)
	return dst
}

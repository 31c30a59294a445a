// Package visualize renders segmentation results onto images for
// inspection: annotated circles, translucent overlays and side-by-side
// comparisons.
package visualize

import (
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"

	"mushroom-segmenter/internal/segment"
	"mushroom-segmenter/pkg/colorutil"
)

// Options controls how detections are drawn. Colors follow gocv
// conventions: the RGBA fields are mapped onto BGR channels by the
// drawing calls.
type Options struct {
	CenterColor  color.RGBA
	Radius1Color color.RGBA
	Radius2Color color.RGBA
	Thickness    int
	CenterRadius int
}

// DefaultOptions marks centers in blue, the plain-map radius in green
// and the equalized-map radius in red.
func DefaultOptions() Options {
	return Options{
		CenterColor:  colorutil.Blue,
		Radius1Color: colorutil.Green,
		Radius2Color: colorutil.Red,
		Thickness:    2,
		CenterRadius: 3,
	}
}

// Annotate draws each detection onto a copy of the image: a filled
// center dot plus one ring per radius estimate. The input is not
// modified; the caller owns the returned Mat.
func Annotate(img gocv.Mat, circles []segment.Circle, opts Options) gocv.Mat {
	dst := img.Clone()
	drawCircles(&dst, circles, opts)
	return dst
}

func drawCircles(dst *gocv.Mat, circles []segment.Circle, opts Options) {
	for _, c := range circles {
		center := image.Point{X: c.X, Y: c.Y}
		gocv.Circle(dst, center, opts.CenterRadius, opts.CenterColor, -1)
		gocv.Circle(dst, center, int(math.Round(c.Radius1)), opts.Radius1Color, opts.Thickness)
		gocv.Circle(dst, center, int(math.Round(c.Radius2)), opts.Radius2Color, opts.Thickness)
	}
}

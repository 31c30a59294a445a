package segment

import (
	"image"
	"sort"

	"mushroom-segmenter/pkg/geometry"

	"gocv.io/x/gocv"
)

// Peak is a local maximum of a distance map: a candidate object center and
// the map value at that coordinate.
type Peak struct {
	Pos   geometry.PointInt
	Value float64
}

// detectPeaks finds local maxima of the distance map that exceed
// relThreshold times the global maximum, then enforces the minimum
// peak-to-peak separation. Peaks come back strongest first; ties keep
// row-major scan order, so identical input always yields the identical
// sequence. A flat map has no peaks.
func detectPeaks(dist gocv.Mat, minDistance int, relThreshold float64) []Peak {
	// A constant map has no local maxima. An all-foreground mask
	// degenerates to one: with no background seed the distance transform
	// saturates every pixel at the same value.
	minVal, maxVal, _, _ := gocv.MinMaxLoc(dist)
	if maxVal <= 0 || minVal == maxVal {
		return nil
	}
	floor := relThreshold * float64(maxVal)

	// Dilate to find local maxima efficiently: a pixel is a peak if its
	// value equals the dilated value (i.e., it's the max in its
	// neighborhood). The window spans the minimum separation on each side.
	window := 2*minDistance + 1
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{window, window})
	defer kernel.Close()

	dilated := gocv.NewMat()
	defer dilated.Close()
	gocv.Dilate(dist, &dilated, kernel)

	var candidates []Peak
	rows, cols := dist.Rows(), dist.Cols()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			val := float64(dist.GetFloatAt(y, x))
			if val <= floor {
				continue
			}
			// Local maximum: value equals dilated value
			if val < float64(dilated.GetFloatAt(y, x)) {
				continue
			}
			candidates = append(candidates, Peak{
				Pos:   geometry.PointInt{X: x, Y: y},
				Value: val,
			})
		}
	}

	return enforceSpacing(candidates, float64(minDistance))
}

// enforceSpacing greedily accepts peaks strongest-first, dropping any peak
// within minDistance of one already accepted. Plateaus in the distance map
// pass the dilate-compare test at every plateau pixel; this pass collapses
// each plateau to its first row-major pixel.
func enforceSpacing(peaks []Peak, minDistance float64) []Peak {
	if len(peaks) <= 1 {
		return peaks
	}

	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Value > peaks[j].Value
	})

	var kept []Peak
	for _, p := range peaks {
		tooClose := false
		for i := range kept {
			if p.Pos.ToFloat().Distance(kept[i].Pos.ToFloat()) < minDistance {
				tooClose = true
				break
			}
		}
		if !tooClose {
			kept = append(kept, p)
		}
	}
	return kept
}

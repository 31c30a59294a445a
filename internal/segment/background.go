package segment

import (
	"image"

	"gocv.io/x/gocv"
)

// reconnectDilations is the number of dilation passes applied after the
// opening to rejoin object fragments split by thresholding. The resulting
// overestimate of object extent is corrected by the compensation
// coefficient during circle extraction.
const reconnectDilations = 5

// segmentBackground builds the binary foreground mask from the blurred
// grayscale. Pixels brighter than BackThreshold become foreground (255);
// caps are expected to be lighter than the substrate. The caller owns
// the returned Mat.
func segmentBackground(blurred gocv.Mat, s Settings) gocv.Mat {
	mask := gocv.NewMat()
	gocv.Threshold(blurred, &mask, float32(s.BackThreshold), 255, gocv.ThresholdBinary)

	k := s.MorphologyKernelSize
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{k, k})
	defer kernel.Close()

	// Opening depth scales with the smallest object we care about, so
	// noise blobs well below MinDiameter cannot survive to become peaks.
	// An n-iteration opening is n erosions followed by n dilations, not
	// n independent open passes.
	iterations := s.MinDiameter / 3
	if iterations < 1 {
		iterations = 1
	}
	for i := 0; i < iterations; i++ {
		gocv.Erode(mask, &mask, kernel)
	}
	for i := 0; i < iterations; i++ {
		gocv.Dilate(mask, &mask, kernel)
	}

	for i := 0; i < reconnectDilations; i++ {
		gocv.Dilate(mask, &mask, kernel)
	}

	return mask
}

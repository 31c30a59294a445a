package segment

import (
	"image"

	"gocv.io/x/gocv"
)

// preprocess converts the input to grayscale and produces the two variants
// the rest of the pipeline works on: a Gaussian-blurred grayscale and a
// CLAHE contrast-equalized copy of it. Both returned Mats are owned by the
// caller.
func preprocess(src gocv.Mat, s Settings) (blurred, equalized gocv.Mat) {
	var gray gocv.Mat
	if src.Channels() == 1 {
		gray = src.Clone()
	} else {
		gray = gocv.NewMat()
		gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)
	}
	defer gray.Close()

	k := s.GaussianKernelSize
	blurred = gocv.NewMat()
	gocv.GaussianBlur(gray, &blurred, image.Point{k, k}, 0, 0, gocv.BorderDefault)

	// A fresh CLAHE per call keeps concurrent segmenters from sharing
	// mutable OpenCV state.
	clahe := gocv.NewCLAHEWithParams(s.CLAHEClipLimit, image.Point{s.CLAHETileSize, s.CLAHETileSize})
	defer clahe.Close()

	equalized = gocv.NewMat()
	clahe.Apply(blurred, &equalized)

	return blurred, equalized
}

package segment

import (
	"gocv.io/x/gocv"
)

// distanceMap computes the Euclidean distance transform of a binary mask:
// each foreground pixel holds its distance to the nearest background pixel,
// background pixels hold 0. For a roughly circular blob the maximum sits
// near the geometric center and approximates the inscribed radius. The
// caller owns the returned CV_32F Mat.
func distanceMap(mask gocv.Mat) gocv.Mat {
	dist := gocv.NewMat()
	labels := gocv.NewMat()
	defer labels.Close()
	gocv.DistanceTransform(mask, &dist, &labels, gocv.DistL2, gocv.DistanceMask3, gocv.DistanceLabelCComp)
	return dist
}

// objectMask re-thresholds the contrast-equalized grayscale inside the
// foreground: the equalized image is restricted to the foreground mask and
// cut at Threshold, giving the second, independently-thresholded mask the
// equalized distance map is computed from. The caller owns the returned
// Mat.
func objectMask(equalized, foreground gocv.Mat, s Settings) gocv.Mat {
	masked := gocv.NewMat()
	defer masked.Close()
	equalized.CopyToWithMask(&masked, foreground)

	obj := gocv.NewMat()
	gocv.Threshold(masked, &obj, float32(s.Threshold), 255, gocv.ThresholdBinary)
	return obj
}

package visualize

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// SideBySide stitches the original and annotated images into one Mat
// for comparison. Both images must share dimensions and type. The
// caller owns the returned Mat.
func SideBySide(left, right gocv.Mat) (gocv.Mat, error) {
	if left.Empty() || right.Empty() {
		return gocv.Mat{}, fmt.Errorf("cannot compare empty images")
	}
	if left.Rows() != right.Rows() || left.Type() != right.Type() {
		return gocv.Mat{}, fmt.Errorf("image mismatch: %dx%d type %d vs %dx%d type %d",
			left.Cols(), left.Rows(), left.Type(),
			right.Cols(), right.Rows(), right.Type())
	}

	dst := gocv.NewMatWithSize(left.Rows(), left.Cols()+right.Cols(), left.Type())

	leftROI := dst.Region(image.Rect(0, 0, left.Cols(), left.Rows()))
	left.CopyTo(&leftROI)
	leftROI.Close()

	rightROI := dst.Region(image.Rect(left.Cols(), 0, left.Cols()+right.Cols(), right.Rows()))
	right.CopyTo(&rightROI)
	rightROI.Close()

	return dst, nil
}

// Stacked stitches the images vertically. Both images must share width
// and type. The caller owns the returned Mat.
func Stacked(top, bottom gocv.Mat) (gocv.Mat, error) {
	if top.Empty() || bottom.Empty() {
		return gocv.Mat{}, fmt.Errorf("cannot compare empty images")
	}
	if top.Cols() != bottom.Cols() || top.Type() != bottom.Type() {
		return gocv.Mat{}, fmt.Errorf("image mismatch: %dx%d type %d vs %dx%d type %d",
			top.Cols(), top.Rows(), top.Type(),
			bottom.Cols(), bottom.Rows(), bottom.Type())
	}

	dst := gocv.NewMatWithSize(top.Rows()+bottom.Rows(), top.Cols(), top.Type())

	topROI := dst.Region(image.Rect(0, 0, top.Cols(), top.Rows()))
	top.CopyTo(&topROI)
	topROI.Close()

	bottomROI := dst.Region(image.Rect(0, top.Rows(), bottom.Cols(), top.Rows()+bottom.Rows()))
	bottom.CopyTo(&bottomROI)
	bottomROI.Close()

	return dst, nil
}

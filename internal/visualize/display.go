package visualize

import "gocv.io/x/gocv"

// Show opens a window with the image and blocks until a key is
// pressed. Requires a display; headless runs should skip it.
func Show(title string, img gocv.Mat) {
	window := gocv.NewWindow(title)
	defer window.Close()

	window.IMShow(img)
	window.WaitKey(0)
}

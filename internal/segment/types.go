// Package segment detects roughly-circular objects (mushroom caps) in
// photographs. The pipeline blurs and contrast-equalizes the image,
// separates foreground from background, then computes two distance
// transforms whose local maxima become circle centers with the map
// values as radii.
package segment

// Circle is a detected object: a center in image pixel coordinates and two
// independently-estimated radii. Radius1 is read from the plain distance
// map and is the reference for size filtering; Radius2 is read from the
// contrast-equalized distance map and is more stable under uneven lighting.
type Circle struct {
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Radius1 float64 `json:"radius_1"`
	Radius2 float64 `json:"radius_2"`
}

package segment

import (
	"gocv.io/x/gocv"
)

// extractCircles reads, for each peak, the radius value from both distance
// maps at the peak coordinate, applies the compensation coefficient, and
// drops circles whose plain-map diameter falls below MinDiameter. Output
// order follows the peak order.
func extractCircles(peaks []Peak, plain, equalized gocv.Mat, s Settings) []Circle {
	coeff := s.Coefficient()

	circles := make([]Circle, 0, len(peaks))
	for _, p := range peaks {
		// Peaks come from the plain map, so coordinates are in bounds
		// for both maps by construction.
		if p.Pos.Y >= equalized.Rows() || p.Pos.X >= equalized.Cols() {
			continue
		}

		radius1 := float64(plain.GetFloatAt(p.Pos.Y, p.Pos.X)) * coeff
		radius2 := float64(equalized.GetFloatAt(p.Pos.Y, p.Pos.X)) * coeff

		if 2*radius1 < float64(s.MinDiameter) {
			continue
		}

		circles = append(circles, Circle{
			X:       p.Pos.X,
			Y:       p.Pos.Y,
			Radius1: radius1,
			Radius2: radius2,
		})
	}
	return circles
}

package segment

import (
	"fmt"
)

// Settings holds the tuning parameters for one segmentation run. A
// Settings value is immutable once validated; every pipeline stage reads
// from it and none writes back.
type Settings struct {
	// BackThreshold is the background/foreground cut intensity (0-255).
	// Pixels brighter than it are classified foreground.
	BackThreshold int `json:"back_threshold"`

	// Threshold is the object-boundary cut intensity (0-255) applied to
	// the contrast-equalized image.
	Threshold int `json:"threshold"`

	// MinDiameter is the minimum accepted object diameter in pixels. It
	// also derives the minimum peak separation (half the diameter) and
	// the morphological opening depth.
	MinDiameter int `json:"min_diameter"`

	// PeaksRelThreshold is the fraction of the distance-map maximum a
	// local maximum must exceed to count as a peak (0-1).
	PeaksRelThreshold float64 `json:"peaks_rel_threshold"`

	// GaussianKernelSize is the blur kernel extent. Must be a positive
	// odd integer.
	GaussianKernelSize int `json:"gaussian_kernel_size"`

	// CLAHEClipLimit and CLAHETileSize control the contrast equalization
	// strength and granularity.
	CLAHEClipLimit float64 `json:"clahe_clip_limit"`
	CLAHETileSize  int     `json:"clahe_tile_size"`

	// MorphologyKernelSize is the structuring element size for noise
	// removal. Must be a positive odd integer.
	MorphologyKernelSize int `json:"morphology_kernel_size"`

	// CompensationCoeff is the multiplicative radius correction. Zero
	// means derive it from the two thresholds (see Coefficient).
	CompensationCoeff float64 `json:"compensation_coeff,omitempty"`
}

// DefaultSettings returns settings tuned for well-lit mushroom photographs.
func DefaultSettings() Settings {
	return Settings{
		BackThreshold:        100,
		Threshold:            150,
		MinDiameter:          30,
		PeaksRelThreshold:    0.1,
		GaussianKernelSize:   5,
		CLAHEClipLimit:       2.0,
		CLAHETileSize:        8,
		MorphologyKernelSize: 3,
	}
}

// WithThresholds returns a copy with both cut intensities replaced.
func (s Settings) WithThresholds(back, object int) Settings {
	s.BackThreshold = back
	s.Threshold = object
	return s
}

// WithMinDiameter returns a copy with the minimum object diameter replaced.
func (s Settings) WithMinDiameter(d int) Settings {
	s.MinDiameter = d
	return s
}

// WithCompensation returns a copy with a fixed radius correction factor,
// overriding the threshold-derived coefficient.
func (s Settings) WithCompensation(coeff float64) Settings {
	s.CompensationCoeff = coeff
	return s
}

// Coefficient returns the radius correction factor. Thresholding cuts the
// measured mask boundary inside the true object boundary by an amount that
// grows with the threshold, so raw distance values underestimate radii.
// When CompensationCoeff is zero the factor is derived from the two cut
// intensities:
//
//	1 + (Threshold - BackThreshold) / (255 - BackThreshold)
func (s Settings) Coefficient() float64 {
	if s.CompensationCoeff > 0 {
		return s.CompensationCoeff
	}
	return 1 + float64(s.Threshold-s.BackThreshold)/float64(255-s.BackThreshold)
}

// minPeakDistance is the minimum separation between accepted peaks: half
// the minimum diameter, never less than one pixel.
func (s Settings) minPeakDistance() int {
	d := s.MinDiameter / 2
	if d < 1 {
		d = 1
	}
	return d
}

// Validate checks every parameter and returns a *ParameterError naming the
// first invalid one. It must pass before any pixel processing starts.
func (s Settings) Validate() error {
	if s.BackThreshold < 0 || s.BackThreshold > 255 {
		return &ParameterError{Param: "back_threshold", Reason: "must be between 0 and 255"}
	}
	if s.Threshold < 0 || s.Threshold > 255 {
		return &ParameterError{Param: "threshold", Reason: "must be between 0 and 255"}
	}
	if s.CompensationCoeff == 0 && s.BackThreshold == 255 {
		return &ParameterError{Param: "back_threshold", Reason: "must be below 255 when the compensation coefficient is threshold-derived"}
	}
	if s.CompensationCoeff < 0 {
		return &ParameterError{Param: "compensation_coeff", Reason: "must not be negative"}
	}
	if s.MinDiameter < 1 {
		return &ParameterError{Param: "min_diameter", Reason: "must be a positive integer"}
	}
	if s.PeaksRelThreshold < 0 || s.PeaksRelThreshold > 1 {
		return &ParameterError{Param: "peaks_rel_threshold", Reason: "must be between 0 and 1"}
	}
	if s.GaussianKernelSize < 1 || s.GaussianKernelSize%2 == 0 {
		return &ParameterError{Param: "gaussian_kernel_size", Reason: "must be a positive odd integer"}
	}
	if s.CLAHEClipLimit < 0 {
		return &ParameterError{Param: "clahe_clip_limit", Reason: "must not be negative"}
	}
	if s.CLAHETileSize < 1 {
		return &ParameterError{Param: "clahe_tile_size", Reason: "must be a positive integer"}
	}
	if s.MorphologyKernelSize < 1 || s.MorphologyKernelSize%2 == 0 {
		return &ParameterError{Param: "morphology_kernel_size", Reason: "must be a positive odd integer"}
	}
	return nil
}

// ParameterError reports a settings value that failed validation.
type ParameterError struct {
	Param  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

package segment

import (
	"fmt"
	"image"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"
)

// Segmenter runs the detection pipeline with a fixed, validated Settings
// value. It holds no per-image state, so one Segmenter may serve any
// number of goroutines, each segmenting its own image.
type Segmenter struct {
	settings Settings
	log      zerolog.Logger
}

// New validates the settings and returns a ready Segmenter. Logging is
// disabled by default; see WithLogger.
func New(settings Settings) (*Segmenter, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Segmenter{settings: settings, log: zerolog.Nop()}, nil
}

// WithLogger returns a copy of the Segmenter that logs pipeline stages to
// the given logger.
func (s *Segmenter) WithLogger(log zerolog.Logger) *Segmenter {
	out := *s
	out.log = log
	return &out
}

// Segment runs the full pipeline on a BGR color or single-channel
// grayscale Mat and returns the detected circles. Degenerate inputs
// (an empty Mat, an all-background image) yield an empty slice, not an
// error. The input Mat is not modified.
func (s *Segmenter) Segment(img gocv.Mat) ([]Circle, error) {
	if img.Empty() {
		s.log.Debug().Msg("empty input image, nothing to segment")
		return []Circle{}, nil
	}
	if c := img.Channels(); c != 1 && c != 3 {
		return nil, fmt.Errorf("unsupported image format: %d channels", c)
	}

	blurred, equalized := preprocess(img, s.settings)
	defer blurred.Close()
	defer equalized.Close()

	foreground := segmentBackground(blurred, s.settings)
	defer foreground.Close()

	fgPixels := gocv.CountNonZero(foreground)
	s.log.Debug().Int("foreground_pixels", fgPixels).Msg("background removed")
	if fgPixels == 0 {
		return []Circle{}, nil
	}

	plainDist := distanceMap(foreground)
	defer plainDist.Close()

	objMask := objectMask(equalized, foreground, s.settings)
	defer objMask.Close()
	equalizedDist := distanceMap(objMask)
	defer equalizedDist.Close()

	peaks := detectPeaks(plainDist, s.settings.minPeakDistance(), s.settings.PeaksRelThreshold)
	s.log.Debug().Int("peaks", len(peaks)).Msg("local maxima located")

	circles := extractCircles(peaks, plainDist, equalizedDist, s.settings)
	s.log.Info().Int("count", len(circles)).Msg("segmentation complete")
	return circles, nil
}

// SegmentImage runs the pipeline on a Go image.Image.
func (s *Segmenter) SegmentImage(src image.Image) ([]Circle, error) {
	mat, err := imageToMat(src)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	defer mat.Close()
	return s.Segment(mat)
}

// Segment is a convenience wrapper that validates settings and runs the
// pipeline once.
func Segment(img gocv.Mat, settings Settings) ([]Circle, error) {
	s, err := New(settings)
	if err != nil {
		return nil, err
	}
	return s.Segment(img)
}

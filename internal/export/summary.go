package export

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"mushroom-segmenter/internal/segment"
)

// Stats summarizes one radius column across all detections.
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// RadiusSummary aggregates both radius estimates of a run.
type RadiusSummary struct {
	Radius1 Stats `json:"radius_1"`
	Radius2 Stats `json:"radius_2"`
}

// Summarize computes radius statistics for a set of detections. Returns
// nil when there are no circles to summarize.
func Summarize(circles []segment.Circle) *RadiusSummary {
	if len(circles) == 0 {
		return nil
	}

	radius1 := make([]float64, len(circles))
	radius2 := make([]float64, len(circles))
	for i, circle := range circles {
		radius1[i] = circle.Radius1
		radius2[i] = circle.Radius2
	}

	return &RadiusSummary{
		Radius1: summarizeColumn(radius1),
		Radius2: summarizeColumn(radius2),
	}
}

func summarizeColumn(values []float64) Stats {
	s := Stats{
		Mean: stat.Mean(values, nil),
		Min:  floats.Min(values),
		Max:  floats.Max(values),
	}
	// StdDev of a single sample is NaN, which JSON cannot encode.
	if len(values) > 1 {
		s.StdDev = stat.StdDev(values, nil)
	}
	return s
}

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mushroom-segmenter/internal/segment"
	"mushroom-segmenter/internal/version"
)

// Result is the top-level JSON document written for a segmentation run.
type Result struct {
	Circles  []segment.Circle `json:"circles"`
	Count    int              `json:"count"`
	Metadata *Metadata        `json:"metadata,omitempty"`
}

// Metadata records the provenance of a run so results can be traced
// back to the image and parameters that produced them.
type Metadata struct {
	RunID       string           `json:"run_id"`
	SourceImage string           `json:"source_image,omitempty"`
	Tool        string           `json:"tool"`
	Version     string           `json:"version"`
	Timestamp   time.Time        `json:"timestamp"`
	Settings    segment.Settings `json:"settings"`
	Summary     *RadiusSummary   `json:"summary,omitempty"`
}

// NewResult wraps circles for serialization. A nil slice is exported as
// an empty JSON array, never null.
func NewResult(circles []segment.Circle, meta *Metadata) Result {
	if circles == nil {
		circles = []segment.Circle{}
	}
	return Result{
		Circles:  circles,
		Count:    len(circles),
		Metadata: meta,
	}
}

// NewMetadata stamps a run with a fresh ID, the tool version and a
// radius summary of the detections.
func NewMetadata(sourceImage string, settings segment.Settings, circles []segment.Circle) *Metadata {
	return &Metadata{
		RunID:       uuid.NewString(),
		SourceImage: sourceImage,
		Tool:        version.Tool,
		Version:     version.Version,
		Timestamp:   time.Now().UTC(),
		Settings:    settings,
		Summary:     Summarize(circles),
	}
}

// WriteJSON saves a result document, creating parent directories as
// needed.
func WriteJSON(path string, result Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return nil
}

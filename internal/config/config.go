// Package config layers optional overrides onto the segmentation
// defaults. Precedence is defaults, then config file, then
// environment variables, then command-line flags; each layer only
// touches the fields it sets.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"mushroom-segmenter/internal/segment"
	"mushroom-segmenter/internal/visualize"
	"mushroom-segmenter/pkg/colorutil"
)

// Config holds optional overrides. Nil fields leave the current value
// alone, so partial configs are safe.
type Config struct {
	BackThreshold        *int     `json:"back_threshold,omitempty"`
	Threshold            *int     `json:"threshold,omitempty"`
	MinDiameter          *int     `json:"min_diameter,omitempty"`
	PeaksRelThreshold    *float64 `json:"peaks_rel_threshold,omitempty"`
	GaussianKernelSize   *int     `json:"gaussian_kernel_size,omitempty"`
	CLAHEClipLimit       *float64 `json:"clahe_clip_limit,omitempty"`
	CLAHETileSize        *int     `json:"clahe_tile_size,omitempty"`
	MorphologyKernelSize *int     `json:"morphology_kernel_size,omitempty"`
	CompensationCoeff    *float64 `json:"compensation_coeff,omitempty"`

	// Visualization overrides, colors as hex strings like "#00ff00" or
	// palette names like "green".
	CenterColor   *string `json:"center_color,omitempty"`
	Radius1Color  *string `json:"radius_1_color,omitempty"`
	Radius2Color  *string `json:"radius_2_color,omitempty"`
	LineThickness *int    `json:"line_thickness,omitempty"`
}

// Load reads a config file. Fields omitted from the JSON retain
// whatever value the previous layer set.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return cfg, nil
}

// FromEnv builds a config from environment variables. Unset variables
// leave their fields nil.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	intVars := []struct {
		name string
		dst  **int
	}{
		{"BACK_THRESHOLD", &cfg.BackThreshold},
		{"THRESHOLD", &cfg.Threshold},
		{"MIN_DIAMETER", &cfg.MinDiameter},
		{"GAUSSIAN_KERNEL_SIZE", &cfg.GaussianKernelSize},
		{"CLAHE_TILE_SIZE", &cfg.CLAHETileSize},
		{"MORPHOLOGY_KERNEL_SIZE", &cfg.MorphologyKernelSize},
		{"LINE_THICKNESS", &cfg.LineThickness},
	}
	for _, v := range intVars {
		raw, ok := os.LookupEnv(v.name)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", v.name, raw, err)
		}
		*v.dst = &parsed
	}

	floatVars := []struct {
		name string
		dst  **float64
	}{
		{"PEAKS_REL_THRESHOLD", &cfg.PeaksRelThreshold},
		{"CLAHE_CLIP_LIMIT", &cfg.CLAHEClipLimit},
		{"COMPENSATION_COEFF", &cfg.CompensationCoeff},
	}
	for _, v := range floatVars {
		raw, ok := os.LookupEnv(v.name)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", v.name, raw, err)
		}
		*v.dst = &parsed
	}

	stringVars := []struct {
		name string
		dst  **string
	}{
		{"CENTER_COLOR", &cfg.CenterColor},
		{"RADIUS_1_COLOR", &cfg.Radius1Color},
		{"RADIUS_2_COLOR", &cfg.Radius2Color},
	}
	for _, v := range stringVars {
		raw, ok := os.LookupEnv(v.name)
		if !ok {
			continue
		}
		value := raw
		*v.dst = &value
	}

	return cfg, nil
}

// Apply overlays the set fields onto settings and returns the result.
func (c *Config) Apply(s segment.Settings) segment.Settings {
	if c.BackThreshold != nil {
		s.BackThreshold = *c.BackThreshold
	}
	if c.Threshold != nil {
		s.Threshold = *c.Threshold
	}
	if c.MinDiameter != nil {
		s.MinDiameter = *c.MinDiameter
	}
	if c.PeaksRelThreshold != nil {
		s.PeaksRelThreshold = *c.PeaksRelThreshold
	}
	if c.GaussianKernelSize != nil {
		s.GaussianKernelSize = *c.GaussianKernelSize
	}
	if c.CLAHEClipLimit != nil {
		s.CLAHEClipLimit = *c.CLAHEClipLimit
	}
	if c.CLAHETileSize != nil {
		s.CLAHETileSize = *c.CLAHETileSize
	}
	if c.MorphologyKernelSize != nil {
		s.MorphologyKernelSize = *c.MorphologyKernelSize
	}
	if c.CompensationCoeff != nil {
		s.CompensationCoeff = *c.CompensationCoeff
	}
	return s
}

// Visualization overlays the set drawing fields onto opts.
func (c *Config) Visualization(opts visualize.Options) (visualize.Options, error) {
	if c.CenterColor != nil {
		parsed, err := parseColor(*c.CenterColor)
		if err != nil {
			return opts, fmt.Errorf("invalid center_color: %w", err)
		}
		opts.CenterColor = parsed
	}
	if c.Radius1Color != nil {
		parsed, err := parseColor(*c.Radius1Color)
		if err != nil {
			return opts, fmt.Errorf("invalid radius_1_color: %w", err)
		}
		opts.Radius1Color = parsed
	}
	if c.Radius2Color != nil {
		parsed, err := parseColor(*c.Radius2Color)
		if err != nil {
			return opts, fmt.Errorf("invalid radius_2_color: %w", err)
		}
		opts.Radius2Color = parsed
	}
	if c.LineThickness != nil {
		opts.Thickness = *c.LineThickness
	}
	return opts, nil
}

// parseColor accepts a palette name ("green", case-insensitive) or a hex
// string ("#00ff00").
func parseColor(value string) (color.RGBA, error) {
	if c, ok := colorutil.Named[strings.ToLower(value)]; ok {
		return c, nil
	}
	parsed, err := colorful.Hex(value)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := parsed.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

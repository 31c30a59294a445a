// Command segment detects mushroom caps in a photograph and reports
// their centers and radii.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"mushroom-segmenter/internal/config"
	"mushroom-segmenter/internal/export"
	"mushroom-segmenter/internal/imageio"
	"mushroom-segmenter/internal/segment"
	"mushroom-segmenter/internal/version"
	"mushroom-segmenter/internal/visualize"
)

func main() {
	imagePath := flag.String("image", "", "Path to input image (JPEG, PNG, BMP or TIFF)")
	csvPath := flag.String("csv", "results.csv", "Write detections to a CSV file (empty to skip)")
	jsonPath := flag.String("json", "", "Write detections and run metadata to a JSON file")
	annotatePath := flag.String("annotate", "", "Write an annotated copy of the image")
	overlayPath := flag.String("overlay", "", "Write a translucent overlay image")
	show := flag.Bool("show", false, "Display the annotated image in a window")
	configPath := flag.String("config", "", "Path to a JSON config file")
	backThreshold := flag.Int("back-threshold", 0, "Background cut intensity (0-255)")
	threshold := flag.Int("threshold", 0, "Object boundary cut intensity (0-255)")
	minDiameter := flag.Int("min-diameter", 0, "Smallest reported diameter in pixels")
	peaksThreshold := flag.Float64("peaks-threshold", 0, "Relative peak threshold (0-1)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s (built %s, commit %s)\n",
			version.Tool, version.Version, version.BuildTime, version.GitCommit)
		return
	}

	if *imagePath == "" {
		fmt.Println("Usage: segment -image <path> [-csv results.csv] [-json results.json] [-annotate out.png] [-show]")
		os.Exit(1)
	}

	logLevel := zerolog.InfoLevel
	if *verbose {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	settings := segment.DefaultSettings()
	opts := visualize.DefaultOptions()

	if *configPath != "" {
		fileCfg, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load config")
		}
		settings = fileCfg.Apply(settings)
		opts, err = fileCfg.Visualization(opts)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load config")
		}
	}

	envCfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read environment")
	}
	settings = envCfg.Apply(settings)
	opts, err = envCfg.Visualization(opts)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read environment")
	}

	// Flags set on the command line beat both config file and
	// environment. Unset flags keep the layered values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "back-threshold":
			settings.BackThreshold = *backThreshold
		case "threshold":
			settings.Threshold = *threshold
		case "min-diameter":
			settings.MinDiameter = *minDiameter
		case "peaks-threshold":
			settings.PeaksRelThreshold = *peaksThreshold
		}
	})

	segmenter, err := segment.New(settings)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid settings")
	}
	segmenter = segmenter.WithLogger(logger)

	img, err := imageio.Read(*imagePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load image")
	}
	defer img.Close()
	logger.Info().
		Str("image", *imagePath).
		Int("width", img.Cols()).
		Int("height", img.Rows()).
		Msg("image loaded")

	circles, err := segmenter.Segment(img)
	if err != nil {
		logger.Fatal().Err(err).Msg("segmentation failed")
	}

	fmt.Printf("Detected %d circles:\n", len(circles))
	fmt.Printf("%8s %8s %10s %10s\n", "X", "Y", "Radius1", "Radius2")
	fmt.Println(strings.Repeat("-", 40))
	for _, c := range circles {
		fmt.Printf("%8d %8d %10.1f %10.1f\n", c.X, c.Y, c.Radius1, c.Radius2)
	}

	if *csvPath != "" {
		if err := export.WriteCSV(*csvPath, circles); err != nil {
			logger.Fatal().Err(err).Msg("CSV export failed")
		}
		logger.Info().Str("path", *csvPath).Msg("CSV written")
	}

	if *jsonPath != "" {
		meta := export.NewMetadata(*imagePath, settings, circles)
		if err := export.WriteJSON(*jsonPath, export.NewResult(circles, meta)); err != nil {
			logger.Fatal().Err(err).Msg("JSON export failed")
		}
		logger.Info().Str("path", *jsonPath).Str("run_id", meta.RunID).Msg("JSON written")
	}

	if *annotatePath != "" || *show {
		annotated := visualize.Annotate(img, circles, opts)
		defer annotated.Close()

		if *annotatePath != "" {
			if err := imageio.Write(*annotatePath, annotated); err != nil {
				logger.Fatal().Err(err).Msg("failed to save annotated image")
			}
			logger.Info().Str("path", *annotatePath).Msg("annotated image written")
		}
		if *show {
			visualize.Show("Segmentation Results", annotated)
		}
	}

	if *overlayPath != "" {
		overlay := visualize.Overlay(img, circles, opts, visualize.DefaultAlpha)
		defer overlay.Close()

		if err := imageio.Write(*overlayPath, overlay); err != nil {
			logger.Fatal().Err(err).Msg("failed to save overlay image")
		}
		logger.Info().Str("path", *overlayPath).Msg("overlay image written")
	}
}

// Package export persists segmentation results as CSV and JSON files.
package export

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"mushroom-segmenter/internal/segment"
)

// WriteCSV saves detected circles with the header X,Y,Radius_1,Radius_2,
// creating parent directories as needed. Radii are rounded to whole
// pixels.
func WriteCSV(path string, circles []segment.Circle) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"X", "Y", "Radius_1", "Radius_2"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, circle := range circles {
		record := []string{
			strconv.Itoa(circle.X),
			strconv.Itoa(circle.Y),
			strconv.Itoa(int(math.Round(circle.Radius1))),
			strconv.Itoa(int(math.Round(circle.Radius2))),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}

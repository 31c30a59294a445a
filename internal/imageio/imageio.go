// Package imageio loads and saves the image files the segmentation
// pipeline works on. The OpenCV path (Read/Write) is what the CLI uses;
// ReadImage decodes into a Go image.Image for callers feeding
// Segmenter.SegmentImage directly.
package imageio

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gocv.io/x/gocv"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// IsSupported reports whether the path has a recognized image extension.
func IsSupported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// SupportedFormats returns the recognized extensions, sorted.
func SupportedFormats() []string {
	formats := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		formats = append(formats, ext)
	}
	sort.Strings(formats)
	return formats
}

// Read loads an image as a BGR Mat. The caller owns the returned Mat.
func Read(path string) (gocv.Mat, error) {
	if !IsSupported(path) {
		return gocv.Mat{}, fmt.Errorf("unsupported image format %q, supported: %s",
			filepath.Ext(path), strings.Join(SupportedFormats(), ", "))
	}

	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, fmt.Errorf("failed to load image: %s", path)
	}
	return mat, nil
}

// Write saves a Mat, creating parent directories as needed.
func Write(path string, img gocv.Mat) error {
	if !IsSupported(path) {
		return fmt.Errorf("unsupported image format %q, supported: %s",
			filepath.Ext(path), strings.Join(SupportedFormats(), ", "))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if ok := gocv.IMWrite(path, img); !ok {
		return fmt.Errorf("failed to save image: %s", path)
	}
	return nil
}

// ReadImage decodes an image file into a Go image.Image. JPEG, PNG, BMP
// and TIFF decoders are registered.
func ReadImage(path string) (image.Image, error) {
	if !IsSupported(path) {
		return nil, fmt.Errorf("unsupported image format %q, supported: %s",
			filepath.Ext(path), strings.Join(SupportedFormats(), ", "))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

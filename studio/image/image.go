package image

import (
	"bytes"
	"fmt"
	stdimage "image"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/watzon/randomcolor/studio/config"
)

// Handler handles image processing operations
type Handler struct {
	config *config.Config
}

// NewHandler creates a new image handler
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		config: cfg,
	}
}

// Resize resizes an image maintaining aspect ratio
// to fit within maxWidth x maxHeight bounds
func (h *Handler) Resize(img stdimage.Image) stdimage.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// If image is already small enough, return as is
	if width <= h.config.MaxWidth && height <= h.config.MaxHeight {
		return img
	}

	// Calculate scaling factor to fit within bounds
	widthRatio := float64(h.config.MaxWidth) / float64(width)
	heightRatio := float64(h.config.MaxHeight) / float64(height)
	ratio := math.Min(widthRatio, heightRatio)

	newWidth := uint(float64(width) * ratio)
	newHeight := uint(float64(height) * ratio)

	// Resize using Lanczos resampling
	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}

// ToJPEG converts an image to JPEG bytes
func (h *Handler) ToJPEG(img stdimage.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToPNG converts an image to PNG bytes
func (h *Handler) ToPNG(img stdimage.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save resizes the image and writes it into the output directory. The
// encoding follows the name's extension: .jpg/.jpeg or PNG otherwise.
func (h *Handler) Save(img stdimage.Image, name string) (string, error) {
	if err := os.MkdirAll(h.config.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	img = h.Resize(img)

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		data, err = h.ToJPEG(img)
	default:
		data, err = h.ToPNG(img)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	path := filepath.Join(h.config.OutputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}

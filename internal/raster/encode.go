package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/ironsheep/color-splash-mcp/internal/splash"
)

// EncodedImage carries a rendered buffer in transport form: base64 PNG plus
// its dimensions.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG serializes an engine buffer as base64-encoded PNG.
func EncodePNG(r *splash.RasterImage) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, ToImage(r)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return &EncodedImage{
		Width:       r.Width,
		Height:      r.Height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// DecodeBase64 decodes a base64 image payload (any registered format) into an
// engine buffer.
func DecodeBase64(data string) (*splash.RasterImage, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	return FromImage(img), nil
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	Width         int   `json:"width"`
	Height        int   `json:"height"`
	HasAlpha      bool  `json:"has_alpha"`
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Info loads an image (through the cache) and reports its dimensions, whether
// any pixel is less than fully opaque, and its size on disk.
func (l *Loader) Info(path string) (*ImageInfo, error) {
	img, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	hasAlpha := false
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			hasAlpha = true
			break
		}
	}

	return &ImageInfo{
		Width:         img.Width,
		Height:        img.Height,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

package raster

import (
	"fmt"
	"image"
	_ "image/gif" // register GIF decoding; PNG/JPEG/BMP come in with imgio
	"path/filepath"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-splash-mcp/internal/splash"
)

// Loader provides thread-safe caching of decoded images to avoid redundant
// disk reads. Images are keyed by the exact path string used to load them;
// different spellings of the same path produce separate entries.
type Loader struct {
	mu     sync.RWMutex
	images map[string]*splash.RasterImage
}

// NewLoader creates an empty loader ready for concurrent use.
func NewLoader() *Loader {
	return &Loader{
		images: make(map[string]*splash.RasterImage),
	}
}

// Load returns the image at path as an engine pixel buffer, reading and
// decoding it on the first call and serving the cached buffer afterwards.
// PNG, JPEG, GIF, and BMP files are supported.
//
// The returned buffer is a copy; callers may mutate it freely without
// affecting the cache.
func (l *Loader) Load(path string) (*splash.RasterImage, error) {
	l.mu.RLock()
	if img, ok := l.images[path]; ok {
		l.mu.RUnlock()
		return img.Clone(), nil
	}
	l.mu.RUnlock()

	decoded, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	img := FromImage(decoded)

	l.mu.Lock()
	l.images[path] = img
	l.mu.Unlock()

	return img.Clone(), nil
}

// Evict removes a specific image from the cache by its path.
func (l *Loader) Evict(path string) {
	l.mu.Lock()
	delete(l.images, path)
	l.mu.Unlock()
}

// Clear removes all cached images, freeing the associated memory.
func (l *Loader) Clear() {
	l.mu.Lock()
	l.images = make(map[string]*splash.RasterImage)
	l.mu.Unlock()
}

// FromImage converts any image.Image into an engine pixel buffer. The image
// is normalized to 8-bit non-premultiplied RGBA first, so 16-bit and YCbCr
// sources are scaled down on the way in.
func FromImage(img image.Image) *splash.RasterImage {
	n := imaging.Clone(img) // *image.NRGBA, zero-origin bounds
	w := n.Bounds().Dx()
	h := n.Bounds().Dy()

	out := splash.NewRasterImage(w, h)
	for y := 0; y < h; y++ {
		row := n.Pix[y*n.Stride : y*n.Stride+w*4]
		copy(out.Pix[y*w*4:], row)
	}
	return out
}

// ToImage wraps an engine pixel buffer in an image.NRGBA sharing the same
// memory layout.
func ToImage(r *splash.RasterImage) *image.NRGBA {
	n := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	copy(n.Pix, r.Pix)
	return n
}

// Save writes an engine pixel buffer to path, choosing the encoder from the
// file extension: .png, .jpg/.jpeg, or .bmp.
func Save(r *splash.RasterImage, path string) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, ToImage(r), enc); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

func encoderFor(path string) (imgio.Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(95), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", ext)
	}
}

package splash

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// DefaultMaxPreviewDimension clamps the larger preview dimension when the
// caller does not override it.
const DefaultMaxPreviewDimension = 800

// ErrNoPreviewConfig is returned by Session.UpdatePreview when no full
// preview configuration has been stored yet.
var ErrNoPreviewConfig = errors.New("no stored preview configuration: call CreateFastPreview first")

// Engine is the color-splash facade. It sequences scaling, masking, and
// compositing into the fast-preview and full-resolution workflows, owns the
// preview cache and performance monitor, and optionally delegates the fused
// mask+compose pass to an accelerated Renderer with silent CPU fallback.
type Engine struct {
	cache         *PreviewCache
	perf          *PerformanceMonitor
	cpu           CPURenderer
	renderer      Renderer
	log           *logrus.Logger
	maxPreviewDim int
}

// NewEngine creates an engine with the default cache capacity and preview
// clamp. A nil logger disables logging.
func NewEngine(logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Engine{
		cache:         NewPreviewCache(DefaultCacheCapacity),
		perf:          NewPerformanceMonitor(),
		log:           logger,
		maxPreviewDim: DefaultMaxPreviewDimension,
	}
}

// SetRenderer installs an accelerated backend. The engine tries it first for
// every mask+compose pass and silently falls back to the CPU path when it
// fails; the failure is logged at debug level only and never surfaced.
func (e *Engine) SetRenderer(r Renderer) { e.renderer = r }

// SetMaxPreviewDimension overrides the preview size clamp.
func (e *Engine) SetMaxPreviewDimension(maxDim int) {
	if maxDim > 0 {
		e.maxPreviewDim = maxDim
	}
}

// Perf exposes the engine's performance monitor.
func (e *Engine) Perf() *PerformanceMonitor { return e.perf }

// CacheLen reports the number of cached previews.
func (e *Engine) CacheLen() int { return e.cache.Len() }

// PreviewConfig carries the parameters of a fast-preview render. Zero values
// of ColorSpace, GrayscaleMethod, and Quality resolve to HSV, luminance, and
// realtime respectively.
type PreviewConfig struct {
	TargetColors    []Color         `json:"target_colors"`
	Tolerance       Tolerance       `json:"tolerance"`
	ColorSpace      ColorSpace      `json:"color_space"`
	GrayscaleMethod GrayscaleMethod `json:"grayscale_method"`
	Quality         Quality         `json:"quality"`
}

// resolved fills in defaults for unset fields.
func (c PreviewConfig) resolved() PreviewConfig {
	if c.ColorSpace == "" {
		c.ColorSpace = ColorSpaceHSV
	}
	if c.GrayscaleMethod == "" {
		c.GrayscaleMethod = GrayscaleLuminance
	}
	if c.Quality == "" {
		c.Quality = QualityRealtime
	}
	return c
}

func (c PreviewConfig) validate() error {
	if err := c.ColorSpace.Validate(); err != nil {
		return err
	}
	if err := c.GrayscaleMethod.Validate(); err != nil {
		return err
	}
	if err := c.Quality.Validate(); err != nil {
		return err
	}
	return c.Tolerance.Validate()
}

// PreviewPatch is a partial PreviewConfig for incremental updates; nil fields
// keep the previously stored value.
type PreviewPatch struct {
	TargetColors    []Color          `json:"target_colors,omitempty"`
	Tolerance       *Tolerance       `json:"tolerance,omitempty"`
	ColorSpace      *ColorSpace      `json:"color_space,omitempty"`
	GrayscaleMethod *GrayscaleMethod `json:"grayscale_method,omitempty"`
	Quality         *Quality         `json:"quality,omitempty"`
}

// apply merges the patch over a base configuration.
func (p PreviewPatch) apply(base PreviewConfig) PreviewConfig {
	if p.TargetColors != nil {
		base.TargetColors = p.TargetColors
	}
	if p.Tolerance != nil {
		base.Tolerance = *p.Tolerance
	}
	if p.ColorSpace != nil {
		base.ColorSpace = *p.ColorSpace
	}
	if p.GrayscaleMethod != nil {
		base.GrayscaleMethod = *p.GrayscaleMethod
	}
	if p.Quality != nil {
		base.Quality = *p.Quality
	}
	return base
}

// CreateFastPreview renders a reduced-resolution color splash of img,
// consulting and populating the preview cache. It does not require a
// preloaded session; for incremental updates, preload the image first and use
// the returned Session.
func (e *Engine) CreateFastPreview(img *RasterImage, cfg PreviewConfig) (*RasterImage, error) {
	out, _, err := e.renderPreview(img, cfg)
	return out, err
}

// renderPreview is the shared preview path; it also returns the resolved
// configuration so sessions can store it as "last" on success.
func (e *Engine) renderPreview(img *RasterImage, cfg PreviewConfig) (*RasterImage, PreviewConfig, error) {
	cfg = cfg.resolved()
	if err := cfg.validate(); err != nil {
		return nil, cfg, err
	}

	stop := e.perf.StartTimer("create_preview")
	defer stop()

	key := CacheKey(img, cfg.TargetColors, cfg.Tolerance, cfg.ColorSpace, cfg.Quality)
	if cached, ok := e.cache.Get(key); ok {
		e.log.WithFields(logrus.Fields{
			"width":   cached.Width,
			"height":  cached.Height,
			"quality": cfg.Quality,
		}).Debug("preview cache hit")
		return cached, cfg, nil
	}

	w, h, err := OptimalSize(img.Width, img.Height, cfg.Quality, e.maxPreviewDim)
	if err != nil {
		return nil, cfg, err
	}
	reduced := ResizeNearest(img, w, h)

	out, err := e.render(reduced, SplashConfig{
		TargetColors:    cfg.TargetColors,
		Tolerance:       cfg.Tolerance,
		ColorSpace:      cfg.ColorSpace,
		GrayscaleMethod: cfg.GrayscaleMethod,
	})
	if err != nil {
		return nil, cfg, err
	}

	e.cache.Set(key, out)
	e.log.WithFields(logrus.Fields{
		"width":   w,
		"height":  h,
		"quality": cfg.Quality,
		"targets": len(cfg.TargetColors),
	}).Debug("preview rendered")
	return out, cfg, nil
}

// ApplyColorSplash renders the effect at full resolution. The result is never
// cached and no session state is touched. When cfg.Area is set, the effect is
// scoped to the selection with feathered edges.
func (e *Engine) ApplyColorSplash(img *RasterImage, cfg SplashConfig) (*RasterImage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stop := e.perf.StartTimer("apply_color_splash")
	defer stop()

	if cfg.Area != nil {
		return e.applyInSelection(img, *cfg.Area, cfg)
	}
	return e.render(img, cfg)
}

// ApplyColorSplashInSelection renders the full-resolution effect restricted
// to a selection: the splash is computed for the whole frame, then blended
// over the original through the selection's feathered alpha mask.
func (e *Engine) ApplyColorSplashInSelection(img *RasterImage, area SelectionArea, cfg SplashConfig) (*RasterImage, error) {
	cfg.Area = nil
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := area.Validate(); err != nil {
		return nil, err
	}

	stop := e.perf.StartTimer("apply_color_splash_selection")
	defer stop()

	return e.applyInSelection(img, area, cfg)
}

func (e *Engine) applyInSelection(img *RasterImage, area SelectionArea, cfg SplashConfig) (*RasterImage, error) {
	alpha, err := AlphaMask(img.Width, img.Height, area)
	if err != nil {
		return nil, err
	}

	cfg.Area = nil
	effect, err := e.render(img, cfg)
	if err != nil {
		return nil, err
	}
	return BlendAlpha(img, effect, alpha), nil
}

// render runs the fused mask+compose pass, preferring the accelerated
// renderer when one is installed. Any renderer failure is recovered locally
// with a silent fallback to the CPU reference path.
func (e *Engine) render(img *RasterImage, cfg SplashConfig) (*RasterImage, error) {
	if e.renderer != nil {
		out, err := e.renderer.Render(img, cfg)
		if err == nil {
			return out, nil
		}
		e.log.WithError(err).WithField("renderer", e.renderer.Name()).
			Debug("accelerated renderer failed, falling back to CPU")
	}
	return e.cpu.Render(img, cfg)
}

// PreloadImage primes the engine for interactive preview work on one image:
// the preview cache is cleared and a fresh Session without a stored
// configuration is returned. The image is copied, so later mutations by the
// caller do not leak into the session.
func (e *Engine) PreloadImage(img *RasterImage) *Session {
	e.cache.Clear()
	e.log.WithFields(logrus.Fields{
		"width":  img.Width,
		"height": img.Height,
	}).Debug("image preloaded")
	return &Session{engine: e, image: img.Clone()}
}

// Session is the primed state of the engine: a preloaded image plus the last
// fully resolved preview configuration. Incremental updates are only possible
// through a Session, which makes the preload-then-update contract visible in
// the type system instead of hidden facade state.
type Session struct {
	engine *Engine
	image  *RasterImage
	last   *PreviewConfig
}

// Image returns a copy of the preloaded image.
func (s *Session) Image() *RasterImage { return s.image.Clone() }

// CreateFastPreview renders a preview of the preloaded image and, on full
// success, stores the resolved configuration as the base for UpdatePreview.
func (s *Session) CreateFastPreview(cfg PreviewConfig) (*RasterImage, error) {
	out, resolved, err := s.engine.renderPreview(s.image, cfg)
	if err != nil {
		return nil, err
	}
	s.last = &resolved
	return out, nil
}

// UpdatePreview merges a partial configuration over the last stored one and
// re-renders the preview. It returns ErrNoPreviewConfig if no full preview
// has succeeded on this session yet.
func (s *Session) UpdatePreview(patch PreviewPatch) (*RasterImage, error) {
	if s.last == nil {
		return nil, ErrNoPreviewConfig
	}
	return s.CreateFastPreview(patch.apply(*s.last))
}

// SelectColor samples the pixel color at (x, y). Coordinates clamp to
// [0,width-1]×[0,height-1]; non-finite inputs clamp to 0, so the call is
// total over any float input.
func SelectColor(img *RasterImage, x, y float64) Color {
	return img.ColorAt(
		clampCoord(x, img.Width-1),
		clampCoord(y, img.Height-1),
	)
}

func clampCoord(v float64, max int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	// Compare in the float domain: int(v) is implementation-specific once v
	// exceeds the int range.
	if v >= float64(max) {
		return max
	}
	return int(v)
}

// String implements fmt.Stringer for diagnostics.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X (a=%d)", c.R, c.G, c.B, c.A)
}

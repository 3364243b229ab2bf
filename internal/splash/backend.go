package splash

// SplashConfig carries all parameters of a color-splash pass.
type SplashConfig struct {
	TargetColors    []Color         `json:"target_colors"`
	Tolerance       Tolerance       `json:"tolerance"`
	ColorSpace      ColorSpace      `json:"color_space"`
	GrayscaleMethod GrayscaleMethod `json:"grayscale_method"`
	Area            *SelectionArea  `json:"area,omitempty"`
}

// Validate fails fast on an unknown color space, grayscale method, area type,
// or out-of-domain tolerance/feather values, before any pixel work.
func (c SplashConfig) Validate() error {
	if err := c.ColorSpace.Validate(); err != nil {
		return err
	}
	if err := c.GrayscaleMethod.Validate(); err != nil {
		return err
	}
	if err := c.Tolerance.Validate(); err != nil {
		return err
	}
	if c.Area != nil {
		return c.Area.Validate()
	}
	return nil
}

// Renderer is the capability behind a fused mask+compose pass. Alternate
// implementations (for example a GPU shader backend) must reproduce the CPU
// matching semantics exactly: circular hue distance, per-axis tolerance with
// absent axes passing, and alpha carried through unchanged. The conformance
// fixtures in backend_test.go express that contract and run against any
// Renderer.
//
// A Renderer instance may hold mutable state and must not be invoked
// concurrently from two call sites; the engine serializes access to its own
// renderer.
type Renderer interface {
	// Name identifies the backend in logs and diagnostics.
	Name() string

	// Render produces the color-splash of img under cfg, ignoring cfg.Area
	// (selection scoping is composed around the renderer by the engine).
	Render(img *RasterImage, cfg SplashConfig) (*RasterImage, error)
}

// CPURenderer is the reference Renderer: BuildMask followed by Compose.
type CPURenderer struct{}

// Name returns "cpu".
func (CPURenderer) Name() string { return "cpu" }

// Render builds the match mask and composites in a single pass over the
// reference implementations.
func (CPURenderer) Render(img *RasterImage, cfg SplashConfig) (*RasterImage, error) {
	mask, err := BuildMask(img, cfg.TargetColors, cfg.Tolerance, cfg.ColorSpace)
	if err != nil {
		return nil, err
	}
	return Compose(img, mask, cfg.GrayscaleMethod)
}

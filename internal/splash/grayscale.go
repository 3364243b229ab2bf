package splash

import (
	"fmt"
	"math"
)

// GrayscaleMethod selects the desaturation formula applied to non-matching
// pixels.
type GrayscaleMethod string

const (
	// GrayscaleLuminance weights channels by perceived brightness:
	// round(0.299R + 0.587G + 0.114B).
	GrayscaleLuminance GrayscaleMethod = "luminance"

	// GrayscaleAverage is the arithmetic mean: round((R+G+B)/3).
	GrayscaleAverage GrayscaleMethod = "average"

	// GrayscaleDesaturation is the HSL lightness: round((max+min)/2).
	GrayscaleDesaturation GrayscaleMethod = "desaturation"
)

// Validate returns an error naming the method if it is not a known variant.
func (m GrayscaleMethod) Validate() error {
	switch m {
	case GrayscaleLuminance, GrayscaleAverage, GrayscaleDesaturation:
		return nil
	default:
		return fmt.Errorf("unsupported grayscale method: %q", string(m))
	}
}

// Grayscale reduces a color to a single gray level using the given method.
// The method must be one of the declared constants; Compose and the engine
// validate it before any pixel work, so an unknown value here yields 0.
func Grayscale(c Color, method GrayscaleMethod) uint8 {
	r := float64(c.R)
	g := float64(c.G)
	b := float64(c.B)

	switch method {
	case GrayscaleLuminance:
		return uint8(math.Round(0.299*r + 0.587*g + 0.114*b))
	case GrayscaleAverage:
		return uint8(math.Round((r + g + b) / 3))
	case GrayscaleDesaturation:
		max := math.Max(r, math.Max(g, b))
		min := math.Min(r, math.Min(g, b))
		return uint8(math.Round((max + min) / 2))
	default:
		return 0
	}
}

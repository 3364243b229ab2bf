package splash

import (
	"fmt"
	"math"
)

// ColorSpace selects the space tolerance matching and distance calculation
// operate in.
type ColorSpace string

const (
	// ColorSpaceHSV matches per axis: circular hue distance plus saturation
	// and value deltas, each checked against its own tolerance.
	ColorSpaceHSV ColorSpace = "hsv"

	// ColorSpaceLAB matches on a single perceptual Euclidean distance.
	ColorSpaceLAB ColorSpace = "lab"

	// ColorSpaceRGB matches on a single Euclidean distance over raw channels.
	ColorSpaceRGB ColorSpace = "rgb"
)

// Validate returns an error naming the space if it is not a known variant.
func (s ColorSpace) Validate() error {
	switch s {
	case ColorSpaceHSV, ColorSpaceLAB, ColorSpaceRGB:
		return nil
	default:
		return fmt.Errorf("unsupported color space: %q", string(s))
	}
}

// Tolerance is a set of per-axis thresholds controlling how close a pixel's
// color must be to a target to count as a match. An absent (nil) axis is
// unconstrained and always passes.
//
// Hue, Saturation, and Lightness apply in HSV space (Lightness checks the V
// axis); Euclidean applies in LAB and RGB space.
type Tolerance struct {
	Hue        *float64 `json:"hue,omitempty"`
	Saturation *float64 `json:"saturation,omitempty"`
	Lightness  *float64 `json:"lightness,omitempty"`
	Euclidean  *float64 `json:"euclidean,omitempty"`
}

// Validate rejects non-finite or negative values on any supplied axis.
func (t Tolerance) Validate() error {
	axes := map[string]*float64{
		"hue":        t.Hue,
		"saturation": t.Saturation,
		"lightness":  t.Lightness,
		"euclidean":  t.Euclidean,
	}
	for name, v := range axes {
		if v == nil {
			continue
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
			return fmt.Errorf("tolerance axis %s must be a non-negative finite number, got %v", name, *v)
		}
	}
	return nil
}

// ToleranceOf is a convenience constructor setting all four axes.
func ToleranceOf(hue, saturation, lightness, euclidean float64) Tolerance {
	return Tolerance{Hue: &hue, Saturation: &saturation, Lightness: &lightness, Euclidean: &euclidean}
}

// IsSimilar reports whether c1 and c2 are within tolerance of each other in
// the given color space.
//
// In HSV space every supplied axis must pass: hue uses circular distance
// (min(|Δh|, 360-|Δh|), so 0-180), saturation and lightness use absolute
// deltas against the S and V axes. In LAB and RGB space a single Euclidean
// distance is checked against the euclidean axis. Omitted axes always pass,
// so an empty Tolerance matches everything.
func IsSimilar(c1, c2 Color, tol Tolerance, space ColorSpace) (bool, error) {
	switch space {
	case ColorSpaceHSV:
		h1 := RGBToHSV(c1)
		h2 := RGBToHSV(c2)
		if tol.Hue != nil && hueDistance(h1.H, h2.H) > *tol.Hue {
			return false, nil
		}
		if tol.Saturation != nil && math.Abs(h1.S-h2.S) > *tol.Saturation {
			return false, nil
		}
		if tol.Lightness != nil && math.Abs(h1.V-h2.V) > *tol.Lightness {
			return false, nil
		}
		return true, nil
	case ColorSpaceLAB:
		return tol.Euclidean == nil || labDistance(c1, c2) <= *tol.Euclidean, nil
	case ColorSpaceRGB:
		return tol.Euclidean == nil || rgbDistance(c1, c2) <= *tol.Euclidean, nil
	default:
		return false, fmt.Errorf("unsupported color space: %q", string(space))
	}
}

// ColorDistance is a diagnostic breakdown of how far apart two colors are.
//
// For HSV the hue, saturation, and value deltas are reported separately; for
// LAB and RGB a single Euclidean scalar is reported. The breakdown is computed
// independently of IsSimilar, and the two must agree on semantics.
type ColorDistance struct {
	Space      ColorSpace `json:"space"`
	Hue        float64    `json:"hue,omitempty"`
	Saturation float64    `json:"saturation,omitempty"`
	Value      float64    `json:"value,omitempty"`
	Euclidean  float64    `json:"euclidean,omitempty"`
}

// Distance computes the per-axis or scalar distance between two colors in the
// given color space.
func Distance(c1, c2 Color, space ColorSpace) (*ColorDistance, error) {
	switch space {
	case ColorSpaceHSV:
		h1 := RGBToHSV(c1)
		h2 := RGBToHSV(c2)
		return &ColorDistance{
			Space:      space,
			Hue:        hueDistance(h1.H, h2.H),
			Saturation: math.Abs(h1.S - h2.S),
			Value:      math.Abs(h1.V - h2.V),
		}, nil
	case ColorSpaceLAB:
		return &ColorDistance{Space: space, Euclidean: labDistance(c1, c2)}, nil
	case ColorSpaceRGB:
		return &ColorDistance{Space: space, Euclidean: rgbDistance(c1, c2)}, nil
	default:
		return nil, fmt.Errorf("unsupported color space: %q", string(space))
	}
}

// hueDistance is the circular distance between two hues in degrees, always in
// [0,180].
func hueDistance(h1, h2 float64) float64 {
	d := math.Abs(h1 - h2)
	return math.Min(d, 360-d)
}

// labDistance is the CIE76 Euclidean distance in L*a*b* units.
func labDistance(c1, c2 Color) float64 {
	return toColorful(c1).DistanceLab(toColorful(c2)) * 100
}

// rgbDistance is the Euclidean distance over raw 8-bit channels.
func rgbDistance(c1, c2 Color) float64 {
	dr := float64(c1.R) - float64(c2.R)
	dg := float64(c1.G) - float64(c2.G)
	db := float64(c1.B) - float64(c2.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

package splash

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with 8-bit components.
//
// Alpha is opacity: 0 = fully transparent, 255 = fully opaque. The zero value
// is transparent black; use NewColor for the common opaque case.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// NewColor returns an opaque color with the given RGB components.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// HSV represents a color in the HSV (Hue, Saturation, Value) color space.
//
// HSV is the space most tolerance matching happens in:
//   - Hue identifies the color family on the color wheel
//   - Saturation measures how vivid the color is (0 = gray)
//   - Value measures brightness (0 = black)
type HSV struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-100 percent
	V float64 `json:"v"` // Value: 0-100 percent
}

// LAB represents a color in the CIE L*a*b* color space (D65 white point).
//
// LAB is perceptually uniform, so Euclidean distance in it approximates how
// different two colors look:
//   - L: lightness, 0 (black) to 100 (white)
//   - A: green–red axis, roughly -128 to 127
//   - B: blue–yellow axis, roughly -128 to 127
type LAB struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// RGBToHSV converts an RGB color to HSV.
//
// Hue is wrapped into [0,360) and all three components are rounded to one
// decimal place. Saturation and value are percentages: pure red maps to
// {H:0, S:100, V:100} and mid gray (128,128,128) to {H:0, S:0, V:50.2}.
func RGBToHSV(c Color) HSV {
	h, s, v := toColorful(c).Hsv()
	return HSV{
		H: round1(math.Mod(h, 360)),
		S: round1(s * 100),
		V: round1(v * 100),
	}
}

// HSVToRGB converts an HSV color back to opaque RGB. It is the exact inverse
// of RGBToHSV within per-channel rounding.
func HSVToRGB(hsv HSV) Color {
	r, g, b := colorful.Hsv(hsv.H, hsv.S/100, hsv.V/100).RGB255()
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBToLAB converts an RGB color to CIE L*a*b* under the sRGB/D65 reference:
// gamma decode to linear RGB, the sRGB/D65 matrix into XYZ, then the nonlinear
// L*a*b* transform (cube-root branch above 0.008856, linear segment below).
func RGBToLAB(c Color) LAB {
	l, a, b := toColorful(c).Lab()
	// go-colorful keeps L*a*b* scaled down by 100; rescale to CIE units.
	return LAB{L: l * 100, A: a * 100, B: b * 100}
}

// toColorful normalizes 8-bit components into go-colorful's [0,1] space.
func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// round2 rounds to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

package splash

import (
	"math"
	"testing"
)

func TestRGBToHSV_FixedPoints(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  HSV
	}{
		{"pure red", NewColor(255, 0, 0), HSV{H: 0, S: 100, V: 100}},
		{"pure green", NewColor(0, 255, 0), HSV{H: 120, S: 100, V: 100}},
		{"pure blue", NewColor(0, 0, 255), HSV{H: 240, S: 100, V: 100}},
		{"mid gray", NewColor(128, 128, 128), HSV{H: 0, S: 0, V: 50.2}},
		{"black", NewColor(0, 0, 0), HSV{H: 0, S: 0, V: 0}},
		{"white", NewColor(255, 255, 255), HSV{H: 0, S: 0, V: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSV(tt.color)
			if got != tt.want {
				t.Errorf("RGBToHSV(%v) = %+v, want %+v", tt.color, got, tt.want)
			}
		})
	}
}

func TestRGBToHSV_HueRange(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				hsv := RGBToHSV(NewColor(uint8(r), uint8(g), uint8(b)))
				if hsv.H < 0 || hsv.H >= 360 {
					t.Fatalf("hue out of [0,360): %v for rgb(%d,%d,%d)", hsv.H, r, g, b)
				}
				if hsv.S < 0 || hsv.S > 100 || hsv.V < 0 || hsv.V > 100 {
					t.Fatalf("s/v out of [0,100]: %+v for rgb(%d,%d,%d)", hsv, r, g, b)
				}
			}
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	// hsvToRgb(rgbToHsv(c)) must reproduce every channel within ±1.
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				in := NewColor(uint8(r), uint8(g), uint8(b))
				out := HSVToRGB(RGBToHSV(in))
				if absDiff(in.R, out.R) > 1 || absDiff(in.G, out.G) > 1 || absDiff(in.B, out.B) > 1 {
					t.Fatalf("round trip rgb(%d,%d,%d) -> rgb(%d,%d,%d) drifts more than ±1",
						in.R, in.G, in.B, out.R, out.G, out.B)
				}
			}
		}
	}
}

func TestRGBToLAB_KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		wantL float64
		tolL  float64
	}{
		{"white", NewColor(255, 255, 255), 100, 0.1},
		{"black", NewColor(0, 0, 0), 0, 0.1},
		{"mid gray", NewColor(119, 119, 119), 50, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lab := RGBToLAB(tt.color)
			if math.Abs(lab.L-tt.wantL) > tt.tolL {
				t.Errorf("L = %v, want %v (±%v)", lab.L, tt.wantL, tt.tolL)
			}
		})
	}
}

func TestRGBToLAB_Axes(t *testing.T) {
	red := RGBToLAB(NewColor(255, 0, 0))
	if red.A <= 0 {
		t.Errorf("red should sit on the +a (red) side, got a=%v", red.A)
	}
	green := RGBToLAB(NewColor(0, 255, 0))
	if green.A >= 0 {
		t.Errorf("green should sit on the -a (green) side, got a=%v", green.A)
	}
	blue := RGBToLAB(NewColor(0, 0, 255))
	if blue.B >= 0 {
		t.Errorf("blue should sit on the -b (blue) side, got b=%v", blue.B)
	}
	// Neutral grays carry no chroma.
	gray := RGBToLAB(NewColor(128, 128, 128))
	if math.Abs(gray.A) > 0.01 || math.Abs(gray.B) > 0.01 {
		t.Errorf("gray should have a≈0, b≈0, got a=%v b=%v", gray.A, gray.B)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

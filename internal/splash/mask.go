package splash

import "math"

// matcher precomputes target colors in the working color space so the
// per-pixel test in BuildMask does not reconvert targets for every pixel.
// It is constructed only after the color space has been validated.
type matcher struct {
	space ColorSpace
	tol   Tolerance
	hsv   []HSV
	lab   []LAB
	rgb   []Color
}

func newMatcher(targets []Color, tol Tolerance, space ColorSpace) (*matcher, error) {
	if err := space.Validate(); err != nil {
		return nil, err
	}
	m := &matcher{space: space, tol: tol}
	switch space {
	case ColorSpaceHSV:
		m.hsv = make([]HSV, len(targets))
		for i, t := range targets {
			m.hsv[i] = RGBToHSV(t)
		}
	case ColorSpaceLAB:
		m.lab = make([]LAB, len(targets))
		for i, t := range targets {
			m.lab[i] = RGBToLAB(t)
		}
	case ColorSpaceRGB:
		m.rgb = targets
	}
	return m, nil
}

// matches reports whether c is within tolerance of any target.
func (m *matcher) matches(c Color) bool {
	switch m.space {
	case ColorSpaceHSV:
		h := RGBToHSV(c)
		for _, t := range m.hsv {
			if m.tol.Hue != nil && hueDistance(h.H, t.H) > *m.tol.Hue {
				continue
			}
			if m.tol.Saturation != nil && math.Abs(h.S-t.S) > *m.tol.Saturation {
				continue
			}
			if m.tol.Lightness != nil && math.Abs(h.V-t.V) > *m.tol.Lightness {
				continue
			}
			return true
		}
	case ColorSpaceLAB:
		if m.tol.Euclidean == nil {
			return len(m.lab) > 0
		}
		l := RGBToLAB(c)
		for _, t := range m.lab {
			dl := l.L - t.L
			da := l.A - t.A
			db := l.B - t.B
			if math.Sqrt(dl*dl+da*da+db*db) <= *m.tol.Euclidean {
				return true
			}
		}
	case ColorSpaceRGB:
		if m.tol.Euclidean == nil {
			return len(m.rgb) > 0
		}
		for _, t := range m.rgb {
			if rgbDistance(c, t) <= *m.tol.Euclidean {
				return true
			}
		}
	}
	return false
}

// BuildMask computes the per-pixel match mask: element i is true iff pixel i
// is similar to ANY of the target colors. The mask has length Width*Height in
// row-major order.
//
// An empty target list yields an all-false mask; that is an explicit policy,
// not an error. An unknown color space fails before any pixel work.
func BuildMask(img *RasterImage, targets []Color, tol Tolerance, space ColorSpace) ([]bool, error) {
	m, err := newMatcher(targets, tol, space)
	if err != nil {
		return nil, err
	}

	mask := make([]bool, img.Width*img.Height)
	if len(targets) == 0 {
		return mask, nil
	}

	for i := range mask {
		p := i * 4
		c := Color{R: img.Pix[p], G: img.Pix[p+1], B: img.Pix[p+2], A: img.Pix[p+3]}
		mask[i] = m.matches(c)
	}
	return mask, nil
}

package splash

import (
	"fmt"
	"math"
)

// Quality is a coarse preview resolution tier trading fidelity for speed.
type Quality string

const (
	QualityLow    Quality = "low"    // 1/8 scale
	QualityMedium Quality = "medium" // 1/4 scale
	QualityHigh   Quality = "high"   // 1/2 scale

	// QualityRealtime picks a scale adaptively from the source pixel count:
	// 1/8 above 2,000,000 pixels, 1/4 above 500,000, otherwise 1/2.
	QualityRealtime Quality = "realtime"
)

// Validate returns an error naming the quality if it is not a known tier.
func (q Quality) Validate() error {
	switch q {
	case QualityLow, QualityMedium, QualityHigh, QualityRealtime:
		return nil
	default:
		return fmt.Errorf("unsupported preview quality: %q", string(q))
	}
}

// scaleFactor maps a tier to its scale for a source of the given pixel count.
func (q Quality) scaleFactor(totalPixels int) float64 {
	switch q {
	case QualityLow:
		return 1.0 / 8
	case QualityMedium:
		return 1.0 / 4
	case QualityHigh:
		return 1.0 / 2
	case QualityRealtime:
		switch {
		case totalPixels > 2_000_000:
			return 1.0 / 8
		case totalPixels > 500_000:
			return 1.0 / 4
		default:
			return 1.0 / 2
		}
	default:
		return 1
	}
}

// OptimalSize computes the preview dimensions for a source image at the given
// quality tier: the tier's scale factor is applied, then the larger scaled
// dimension is clamped to maxDim preserving aspect ratio.
//
// If the source already fits within maxDim on both axes, the original size is
// returned unchanged regardless of tier; small images preview at full
// resolution.
func OptimalSize(width, height int, quality Quality, maxDim int) (int, int, error) {
	if err := quality.Validate(); err != nil {
		return 0, 0, err
	}

	if width <= maxDim && height <= maxDim {
		return width, height, nil
	}

	factor := quality.scaleFactor(width * height)
	w := scaleDim(width, factor)
	h := scaleDim(height, factor)

	if larger := math.Max(float64(w), float64(h)); larger > float64(maxDim) {
		clamp := float64(maxDim) / larger
		w = scaleDim(w, clamp)
		h = scaleDim(h, clamp)
	}
	return w, h, nil
}

func scaleDim(d int, factor float64) int {
	s := int(math.Round(float64(d) * factor))
	if s < 1 {
		return 1
	}
	return s
}

// ResizeNearest scales an image to the target dimensions with pure
// nearest-neighbor sampling: the target pixel (tx, ty) samples the source at
// (floor(tx*srcW/targetW), floor(ty*srcH/targetH)). No interpolation.
func ResizeNearest(img *RasterImage, targetW, targetH int) *RasterImage {
	out := NewRasterImage(targetW, targetH)
	for ty := 0; ty < targetH; ty++ {
		sy := ty * img.Height / targetH
		for tx := 0; tx < targetW; tx++ {
			sx := tx * img.Width / targetW
			src := (sy*img.Width + sx) * 4
			dst := (ty*targetW + tx) * 4
			copy(out.Pix[dst:dst+4], img.Pix[src:src+4])
		}
	}
	return out
}

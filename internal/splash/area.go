package splash

import (
	"fmt"
	"math"
)

// AreaType identifies the geometric form of a selection.
type AreaType string

const (
	// AreaRectangle is an axis-aligned box when given exactly two corner
	// points; with more points it is treated as a polygon, which allows
	// rotated rectangles.
	AreaRectangle AreaType = "rectangle"

	// AreaCircle is encoded as a center point plus one edge point; the radius
	// is their distance and the boundary is inclusive.
	AreaCircle AreaType = "circle"

	// AreaPolygon is a closed ordered vertex list of at least three points.
	AreaPolygon AreaType = "polygon"

	// AreaFreehand is a closed hand-drawn path, tested like a polygon. Paths
	// with fewer than three points select nothing instead of erroring.
	AreaFreehand AreaType = "freehand"
)

// Validate returns an error naming the type if it is not a known variant.
func (t AreaType) Validate() error {
	switch t {
	case AreaRectangle, AreaCircle, AreaPolygon, AreaFreehand:
		return nil
	default:
		return fmt.Errorf("unsupported area type: %q", string(t))
	}
}

// Point is a 2D coordinate in pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SelectionArea is a geometric selection: an area type, its ordered point
// list, and an optional feather radius in pixels. A zero feather radius means
// a hard edge.
type SelectionArea struct {
	Type          AreaType `json:"type"`
	Points        []Point  `json:"points"`
	FeatherRadius float64  `json:"feather_radius,omitempty"`
}

// Validate fails fast on an unknown area type or an out-of-domain feather
// radius. Point-count minimums are checked by the containment test itself.
func (a SelectionArea) Validate() error {
	if err := a.Type.Validate(); err != nil {
		return err
	}
	if math.IsNaN(a.FeatherRadius) || math.IsInf(a.FeatherRadius, 0) || a.FeatherRadius < 0 {
		return fmt.Errorf("feather radius must be a non-negative finite number, got %v", a.FeatherRadius)
	}
	return nil
}

// Contains reports whether p falls inside the selection. Boundaries are
// inclusive for rectangles and circles.
//
// Insufficient geometry is a validation error naming the minimum, with one
// intentional asymmetry: a freehand path with fewer than three points returns
// false rather than an error.
func Contains(area SelectionArea, p Point) (bool, error) {
	switch area.Type {
	case AreaRectangle:
		if len(area.Points) < 2 {
			return false, fmt.Errorf("rectangle selection requires at least 2 points, got %d", len(area.Points))
		}
		if len(area.Points) == 2 {
			a, b := area.Points[0], area.Points[1]
			return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
				p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y), nil
		}
		// More than two points describes a rotated rectangle; fall through to
		// the polygon test.
		return pointInPolygon(area.Points, p), nil
	case AreaCircle:
		if len(area.Points) < 1 {
			return false, fmt.Errorf("circle selection requires at least 1 point, got %d", len(area.Points))
		}
		center := area.Points[0]
		radius := 0.0
		if len(area.Points) > 1 {
			radius = distance(center, area.Points[1])
		}
		return distance(center, p) <= radius, nil
	case AreaPolygon:
		if len(area.Points) < 3 {
			return false, fmt.Errorf("polygon selection requires at least 3 points, got %d", len(area.Points))
		}
		return pointInPolygon(area.Points, p), nil
	case AreaFreehand:
		if len(area.Points) < 3 {
			return false, nil
		}
		return pointInPolygon(area.Points, p), nil
	default:
		return false, fmt.Errorf("unsupported area type: %q", string(area.Type))
	}
}

// SelectionMask rasterizes the selection into a hard per-pixel boolean mask
// of length width*height in row-major order.
func SelectionMask(width, height int, area SelectionArea) ([]bool, error) {
	if err := area.Validate(); err != nil {
		return nil, err
	}

	mask := make([]bool, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			inside, err := Contains(area, Point{X: float64(x), Y: float64(y)})
			if err != nil {
				return nil, err
			}
			mask[y*width+x] = inside
		}
	}
	return mask, nil
}

// AlphaMask rasterizes the selection into a per-pixel alpha mask with values
// in [0,1], feathering the edge over the selection's feather radius.
//
// Pixels inside the selection get alpha 1. For an outside pixel, the distance
// to the nearest selected pixel is found by a bounded local search over a
// window of side 2*ceil(featherRadius)+1; within the radius the alpha follows
// a cosine falloff, 1 at the boundary down to 0 at the radius, and beyond it
// alpha is 0. The search is O(featherRadius²) per outside pixel, which is the
// documented performance ceiling of soft selections.
func AlphaMask(width, height int, area SelectionArea) ([]float64, error) {
	hard, err := SelectionMask(width, height, area)
	if err != nil {
		return nil, err
	}

	alpha := make([]float64, width*height)
	fr := area.FeatherRadius
	reach := int(math.Ceil(fr))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			if hard[i] {
				alpha[i] = 1
				continue
			}
			if fr <= 0 {
				continue
			}

			nearest := math.Inf(1)
			for dy := -reach; dy <= reach; dy++ {
				ny := y + dy
				if ny < 0 || ny >= height {
					continue
				}
				for dx := -reach; dx <= reach; dx++ {
					nx := x + dx
					if nx < 0 || nx >= width {
						continue
					}
					if !hard[ny*width+nx] {
						continue
					}
					d := math.Sqrt(float64(dx*dx + dy*dy))
					if d < nearest {
						nearest = d
					}
				}
			}

			if nearest <= fr {
				alpha[i] = 0.5 * (1 + math.Cos(math.Pi*nearest/fr))
			}
		}
	}
	return alpha, nil
}

// BlendAlpha interpolates between two buffers per pixel: alpha 1 takes the
// effect pixel, alpha 0 the original, with each channel rounded to the
// nearest integer in between. The alpha mask must have length Width*Height.
func BlendAlpha(original, effect *RasterImage, alpha []float64) *RasterImage {
	out := NewRasterImage(original.Width, original.Height)
	for i, a := range alpha {
		p := i * 4
		for ch := 0; ch < 4; ch++ {
			o := float64(original.Pix[p+ch])
			e := float64(effect.Pix[p+ch])
			out.Pix[p+ch] = uint8(math.Round(e*a + o*(1-a)))
		}
	}
	return out
}

// pointInPolygon runs the standard even-odd ray-casting test over an ordered
// vertex list.
func pointInPolygon(pts []Point, p Point) bool {
	inside := false
	j := len(pts) - 1
	for i := 0; i < len(pts); i++ {
		pi, pj := pts[i], pts[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// distance is the Euclidean distance between two points.
func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

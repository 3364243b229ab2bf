package splash

// RasterImage is a width×height pixel buffer in row-major RGBA order with
// 8 bits per channel and non-premultiplied alpha.
//
// Pix has length Width*Height*4; the pixel at (x, y) starts at offset
// (y*Width+x)*4. Engine operations treat a RasterImage as immutable input and
// always allocate a new buffer for output.
type RasterImage struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewRasterImage allocates a zeroed (fully transparent black) image.
func NewRasterImage(width, height int) *RasterImage {
	return &RasterImage{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// Clone returns a deep copy sharing no memory with the receiver.
func (r *RasterImage) Clone() *RasterImage {
	pix := make([]uint8, len(r.Pix))
	copy(pix, r.Pix)
	return &RasterImage{Width: r.Width, Height: r.Height, Pix: pix}
}

// ColorAt returns the pixel at (x, y). Coordinates must be in bounds.
func (r *RasterImage) ColorAt(x, y int) Color {
	i := (y*r.Width + x) * 4
	return Color{R: r.Pix[i], G: r.Pix[i+1], B: r.Pix[i+2], A: r.Pix[i+3]}
}

// SetColorAt writes the pixel at (x, y). Coordinates must be in bounds.
func (r *RasterImage) SetColorAt(x, y int, c Color) {
	i := (y*r.Width + x) * 4
	r.Pix[i] = c.R
	r.Pix[i+1] = c.G
	r.Pix[i+2] = c.B
	r.Pix[i+3] = c.A
}

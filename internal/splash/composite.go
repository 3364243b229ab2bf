package splash

// Compose merges the original and desaturated versions of an image according
// to a match mask: masked pixels keep their RGB verbatim, unmasked pixels are
// replaced with the grayscale value in all three channels. The alpha channel
// always carries over from the source, independent of the mask outcome.
//
// The mask must have length Width*Height. A new buffer is allocated; the
// input is never mutated.
func Compose(img *RasterImage, mask []bool, method GrayscaleMethod) (*RasterImage, error) {
	if err := method.Validate(); err != nil {
		return nil, err
	}

	out := NewRasterImage(img.Width, img.Height)
	for i := range mask {
		p := i * 4
		if mask[i] {
			out.Pix[p] = img.Pix[p]
			out.Pix[p+1] = img.Pix[p+1]
			out.Pix[p+2] = img.Pix[p+2]
		} else {
			gray := Grayscale(Color{R: img.Pix[p], G: img.Pix[p+1], B: img.Pix[p+2]}, method)
			out.Pix[p] = gray
			out.Pix[p+1] = gray
			out.Pix[p+2] = gray
		}
		out.Pix[p+3] = img.Pix[p+3]
	}
	return out, nil
}

package splash

import "testing"

func TestCompose_MaskedPixelsVerbatim(t *testing.T) {
	img := newTestImage(t, 2, 1, []Color{NewColor(200, 50, 25), NewColor(200, 50, 25)})
	out, err := Compose(img, []bool{true, false}, GrayscaleLuminance)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if got := out.ColorAt(0, 0); got != NewColor(200, 50, 25) {
		t.Errorf("masked pixel changed: %v", got)
	}
	gray := out.ColorAt(1, 0)
	if gray.R != gray.G || gray.G != gray.B {
		t.Errorf("unmasked pixel not gray: %v", gray)
	}
	if want := Grayscale(NewColor(200, 50, 25), GrayscaleLuminance); gray.R != want {
		t.Errorf("gray value = %d, want %d", gray.R, want)
	}
}

func TestCompose_AlphaAlwaysPreserved(t *testing.T) {
	img := NewRasterImage(2, 2)
	alphas := []uint8{0, 64, 128, 255}
	for i, a := range alphas {
		img.SetColorAt(i%2, i/2, Color{R: 10, G: 200, B: 30, A: a})
	}

	for _, mask := range [][]bool{
		{true, true, true, true},
		{false, false, false, false},
		{true, false, true, false},
	} {
		out, err := Compose(img, mask, GrayscaleAverage)
		if err != nil {
			t.Fatalf("Compose failed: %v", err)
		}
		for i, a := range alphas {
			if got := out.ColorAt(i%2, i/2).A; got != a {
				t.Errorf("pixel %d alpha = %d, want %d (mask=%v)", i, got, a, mask[i])
			}
		}
	}
}

func TestCompose_DoesNotMutateInput(t *testing.T) {
	img := newTestImage(t, 1, 1, []Color{NewColor(200, 50, 25)})
	before := img.Clone()

	if _, err := Compose(img, []bool{false}, GrayscaleLuminance); err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	for i := range img.Pix {
		if img.Pix[i] != before.Pix[i] {
			t.Fatal("Compose mutated its input buffer")
		}
	}
}

func TestCompose_UnknownMethod(t *testing.T) {
	img := newTestImage(t, 1, 1, []Color{NewColor(1, 2, 3)})
	if _, err := Compose(img, []bool{true}, GrayscaleMethod("bt2100")); err == nil {
		t.Fatal("expected error for unknown grayscale method")
	}
}

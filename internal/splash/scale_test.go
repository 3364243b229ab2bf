package splash

import "testing"

func TestOptimalSize_Tiers(t *testing.T) {
	const maxDim = 4000 // large enough not to clamp

	tests := []struct {
		name    string
		w, h    int
		quality Quality
		wantW   int
		wantH   int
	}{
		{"low is 1/8", 1600, 800, QualityLow, 200, 100},
		{"medium is 1/4", 1600, 800, QualityMedium, 400, 200},
		{"high is 1/2", 1600, 800, QualityHigh, 800, 400},
		{"realtime small source is 1/2", 900, 500, QualityRealtime, 450, 250}, // 450k px
		{"realtime medium source is 1/4", 1200, 900, QualityRealtime, 300, 225},
		{"realtime large source is 1/8", 2400, 1200, QualityRealtime, 300, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := OptimalSize(tt.w, tt.h, tt.quality, maxDim)
			if err != nil {
				t.Fatalf("OptimalSize failed: %v", err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("OptimalSize = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestOptimalSize_SmallSourceUnchanged(t *testing.T) {
	// A source that already fits within maxDim is returned unchanged even at
	// the lowest tier.
	for _, q := range []Quality{QualityLow, QualityMedium, QualityHigh, QualityRealtime} {
		w, h, err := OptimalSize(640, 480, q, 800)
		if err != nil {
			t.Fatalf("OptimalSize failed: %v", err)
		}
		if w != 640 || h != 480 {
			t.Errorf("quality %s: got %dx%d, want 640x480 unchanged", q, w, h)
		}
	}
}

func TestOptimalSize_ClampsToMaxDim(t *testing.T) {
	// 6400x1600 at high -> 3200x800; larger side clamps to 800 -> 800x200.
	w, h, err := OptimalSize(6400, 1600, QualityHigh, 800)
	if err != nil {
		t.Fatalf("OptimalSize failed: %v", err)
	}
	if w != 800 || h != 200 {
		t.Errorf("got %dx%d, want 800x200", w, h)
	}
}

func TestOptimalSize_TierMonotonicity(t *testing.T) {
	lw, lh, err := OptimalSize(3000, 2000, QualityLow, 4000)
	if err != nil {
		t.Fatal(err)
	}
	mw, mh, err := OptimalSize(3000, 2000, QualityMedium, 4000)
	if err != nil {
		t.Fatal(err)
	}
	hw, hh, err := OptimalSize(3000, 2000, QualityHigh, 4000)
	if err != nil {
		t.Fatal(err)
	}

	if lw > mw || mw > hw || lh > mh || mh > hh {
		t.Errorf("sizes must grow with quality: low=%dx%d medium=%dx%d high=%dx%d",
			lw, lh, mw, mh, hw, hh)
	}
}

func TestOptimalSize_UnknownQuality(t *testing.T) {
	if _, _, err := OptimalSize(100, 100, Quality("ultra"), 800); err == nil {
		t.Fatal("expected error for unknown quality tier")
	}
}

func TestResizeNearest_ExactSampling(t *testing.T) {
	// 4x1 source halved: target pixel tx samples source floor(tx*4/2).
	img := newTestImage(t, 4, 1, []Color{
		NewColor(10, 0, 0), NewColor(20, 0, 0), NewColor(30, 0, 0), NewColor(40, 0, 0),
	})

	out := ResizeNearest(img, 2, 1)
	if out.Width != 2 || out.Height != 1 {
		t.Fatalf("resize produced %dx%d, want 2x1", out.Width, out.Height)
	}
	if got := out.ColorAt(0, 0); got != NewColor(10, 0, 0) {
		t.Errorf("pixel 0 = %v, want the sample at source x=0", got)
	}
	if got := out.ColorAt(1, 0); got != NewColor(30, 0, 0) {
		t.Errorf("pixel 1 = %v, want the sample at source x=2", got)
	}
}

func TestResizeNearest_Upscale(t *testing.T) {
	img := newTestImage(t, 2, 1, []Color{NewColor(10, 0, 0), NewColor(20, 0, 0)})

	out := ResizeNearest(img, 4, 2)
	want := []uint8{10, 10, 20, 20}
	for x, w := range want {
		for y := 0; y < 2; y++ {
			if got := out.ColorAt(x, y).R; got != w {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, w)
			}
		}
	}
}

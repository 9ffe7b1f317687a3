package canvas

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/dandybouquet/dandy-merch-tools/internal/mask"
)

func setRect(m *mask.Mask, x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			m.Set(x, y, true)
		}
	}
}

func TestCatalogSelect(t *testing.T) {
	catalog := Catalog{1, 2, 3, 4}
	tests := []struct {
		art  float64
		want float64
	}{
		{0.5, 1},
		{2.5, 3},
		{1.0, 2},
		{3.999, 4},
	}
	for _, tt := range tests {
		got, err := catalog.Select(tt.art)
		if err != nil {
			t.Errorf("Select(%g): %v", tt.art, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Select(%g) = %g, want %g", tt.art, got, tt.want)
		}
	}
}

func TestCatalogSelectExactFitBumpsUp(t *testing.T) {
	catalog := Catalog{1, 2, 3, 4}
	if got, err := catalog.Select(2.0); err != nil || got != 3 {
		t.Errorf("Select(2.0) = %g, %v; want 3, nil", got, err)
	}
	// Exactly matching the largest entry leaves nothing strictly bigger.
	_, err := catalog.Select(4.0)
	var sizing *SizingError
	if !errors.As(err, &sizing) {
		t.Fatalf("Select(4.0): err = %v, want SizingError", err)
	}
	if sizing.ArtInches != 4.0 || sizing.MaxInches != 4.0 {
		t.Errorf("SizingError = %+v, want ArtInches 4, MaxInches 4", sizing)
	}
}

func TestCatalogSelectUnsorted(t *testing.T) {
	catalog := Catalog{4, 1, 3, 2}
	if got, err := catalog.Select(2.5); err != nil || got != 3 {
		t.Errorf("unsorted Select(2.5) = %g, %v; want 3, nil", got, err)
	}
}

func TestCatalogSelectEmpty(t *testing.T) {
	var sizing *SizingError
	if _, err := Catalog(nil).Select(1); !errors.As(err, &sizing) {
		t.Fatalf("empty catalog: err = %v, want SizingError", err)
	}
}

func TestFitCentersAllBuffers(t *testing.T) {
	// Bleed extent is 6x4 at (5,1). With dpi 2 the max dimension is 3",
	// so a [4] catalog selects 4" = 8px.
	colorImg := image.NewNRGBA(image.Rect(0, 0, 12, 6))
	marker := color.NRGBA{R: 250, G: 1, B: 2, A: 255}
	colorImg.SetNRGBA(6, 2, marker)

	bleed := mask.New(12, 6)
	setRect(bleed, 5, 1, 10, 4)
	cut := mask.New(12, 6)
	setRect(cut, 6, 2, 9, 3)
	contour := mask.New(12, 6)
	contour.Set(6, 2, true)

	fit, err := Fit(Buffers{Color: colorImg, Bleed: bleed, Cut: cut, Contour: contour}, 2, Catalog{4}, color.NRGBA{})
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	if fit.SizeInches != 4 || fit.SizePixels != 8 {
		t.Errorf("size = %g\" %dpx, want 4\" 8px", fit.SizeInches, fit.SizePixels)
	}
	if fit.ArtPixels != 6 {
		t.Errorf("ArtPixels = %d, want 6", fit.ArtPixels)
	}
	if math.Abs(fit.ArtInches-3.0) > 1e-9 {
		t.Errorf("ArtInches = %g, want 3", fit.ArtInches)
	}

	// Every buffer is the square target size.
	if b := fit.Color.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("color bounds = %v, want 8x8", b)
	}
	for name, m := range map[string]*mask.Mask{"bleed": fit.Bleed, "cut": fit.Cut, "contour": fit.Contour} {
		if m.Width() != 8 || m.Height() != 8 {
			t.Errorf("%s mask = %dx%d, want 8x8", name, m.Width(), m.Height())
		}
	}

	// Pad offsets: (8-6)/2 = 1 horizontal, (8-4)/2 = 2 vertical. The
	// marker at (6,2) sits at (1,1) in the crop, so (2,3) after centering.
	if got := fit.Color.NRGBAAt(2, 3); got != marker {
		t.Errorf("marker landed at wrong place: (2,3) = %v, want %v", got, marker)
	}
	if !fit.Contour.At(2, 3) {
		t.Error("contour pixel should track the color marker at (2,3)")
	}
	if !fit.Cut.At(2, 3) || fit.Cut.At(0, 0) {
		t.Error("cut mask not centered as expected")
	}
	if fit.Bleed.Count() != bleed.Count() {
		t.Errorf("bleed pixel count changed: %d -> %d", bleed.Count(), fit.Bleed.Count())
	}
}

func TestFitOddPaddingGoesAfter(t *testing.T) {
	// Width 5 into 8 pads 1 before and 2 after.
	colorImg := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	bleed := mask.New(10, 10)
	setRect(bleed, 2, 4, 6, 6)

	fit, err := Fit(Buffers{Color: colorImg, Bleed: bleed, Cut: mask.New(10, 10), Contour: mask.New(10, 10)},
		1, Catalog{8}, color.NRGBA{})
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if fit.SizePixels != 8 {
		t.Fatalf("SizePixels = %d, want 8", fit.SizePixels)
	}
	row := 3 // content rows land at (8-3)/2 = 2..4
	if fit.Bleed.At(0, row) {
		t.Error("column 0 should be leading padding")
	}
	for x := 1; x <= 5; x++ {
		if !fit.Bleed.At(x, row) {
			t.Errorf("column %d should hold centered content", x)
		}
	}
	for x := 6; x <= 7; x++ {
		if fit.Bleed.At(x, row) {
			t.Errorf("column %d should be trailing padding", x)
		}
	}
}

func TestFitSizingError(t *testing.T) {
	colorImg := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	bleed := mask.New(20, 20)
	setRect(bleed, 0, 0, 19, 19)

	_, err := Fit(Buffers{Color: colorImg, Bleed: bleed, Cut: mask.New(20, 20), Contour: mask.New(20, 20)},
		2, Catalog{1, 2, 3}, color.NRGBA{})
	var sizing *SizingError
	if !errors.As(err, &sizing) {
		t.Fatalf("err = %v, want SizingError", err)
	}
	if sizing.ArtInches != 10 {
		t.Errorf("ArtInches = %g, want 10", sizing.ArtInches)
	}
}

func TestFitEmptyBleed(t *testing.T) {
	colorImg := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	_, err := Fit(Buffers{Color: colorImg, Bleed: mask.New(4, 4), Cut: mask.New(4, 4), Contour: mask.New(4, 4)},
		1, Catalog{1}, color.NRGBA{})
	if err == nil {
		t.Fatal("empty bleed mask should fail")
	}
}

func TestFitRejectsBadDPI(t *testing.T) {
	colorImg := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	bleed := mask.New(4, 4)
	bleed.Set(1, 1, true)
	_, err := Fit(Buffers{Color: colorImg, Bleed: bleed, Cut: mask.New(4, 4), Contour: mask.New(4, 4)},
		0, Catalog{1}, color.NRGBA{})
	if err == nil {
		t.Fatal("zero dpi should fail")
	}
}

func TestFitIgnoresStrayBleedDebris(t *testing.T) {
	// A lone stray pixel far from the main region must not widen the
	// bounding box: only the largest connected region is measured.
	colorImg := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	bleed := mask.New(16, 16)
	setRect(bleed, 2, 2, 7, 7)
	bleed.Set(15, 15, true)

	fit, err := Fit(Buffers{Color: colorImg, Bleed: bleed, Cut: mask.New(16, 16), Contour: mask.New(16, 16)},
		2, Catalog{4}, color.NRGBA{})
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if fit.ArtPixels != 6 {
		t.Errorf("ArtPixels = %d, want 6 (stray pixel should be ignored)", fit.ArtPixels)
	}
}

package scaler

import "testing"

func TestColormapImageHorizontal(t *testing.T) {
	img, err := ColormapImage(Gray, 64, 8, false)
	if err != nil {
		t.Fatalf("ColormapImage() = %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 64 || b.Dy() != 8 {
		t.Fatalf("size = %dx%d, want 64x8", b.Dx(), b.Dy())
	}
	// gray ramps dark to bright left to right
	left := img.NRGBAAt(1, 4)
	right := img.NRGBAAt(62, 4)
	if left.R >= right.R {
		t.Errorf("ramp not increasing: left %d, right %d", left.R, right.R)
	}
}

func TestColormapImageVertical(t *testing.T) {
	img, err := ColormapImage(Gray, 8, 64, true)
	if err != nil {
		t.Fatalf("ColormapImage() = %v", err)
	}
	// vertical strips sweep bottom to top
	bottom := img.NRGBAAt(4, 62)
	top := img.NRGBAAt(4, 1)
	if bottom.R >= top.R {
		t.Errorf("vertical ramp not increasing upward: bottom %d, top %d", bottom.R, top.R)
	}
}

func TestColormapImageErrors(t *testing.T) {
	if _, err := ColormapImage(nil, 8, 8, false); err == nil {
		t.Error("expected error for nil colormap")
	}
	if _, err := ColormapImage(Gray, 0, 8, false); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestColormapIconFallback(t *testing.T) {
	img, err := ColormapIcon("definitely-not-registered", 16, 4)
	if err != nil {
		t.Fatalf("ColormapIcon() = %v", err)
	}
	if img.Bounds().Dx() != 16 {
		t.Errorf("width = %d, want 16", img.Bounds().Dx())
	}
}

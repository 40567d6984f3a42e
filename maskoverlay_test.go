package scaler

import (
	"errors"
	"testing"
)

func TestOverlayMaskOpaque(t *testing.T) {
	mask := NewField[uint8](2, 2)
	mask.Fill(1)

	dst := NewPixBuffer(2, 2)
	dst.Clear(White.PackARGB())
	if _, err := OverlayMask(mask, RectF{X1: 2, Y1: 2}, dst, MakeRect(0, 0, 2, 2),
		MaskStyle{Masked: Red, MaskedAlpha: 1}); err != nil {
		t.Fatalf("OverlayMask() = %v", err)
	}
	// fully opaque overlay replaces every masked pixel
	for i, p := range dst.Pix() {
		if p != Red.PackARGB() {
			t.Errorf("pixel %d = %#08x, want opaque red", i, p)
		}
	}
}

func TestOverlayMaskLeavesUnmasked(t *testing.T) {
	mask := NewField[uint8](2, 2)
	mask.Set(0, 0, 1)

	white := White.PackARGB()
	dst := NewPixBuffer(2, 2)
	dst.Clear(white)
	if _, err := OverlayMask(mask, RectF{X1: 2, Y1: 2}, dst, MakeRect(0, 0, 2, 2),
		MaskStyle{Masked: Red, MaskedAlpha: 1}); err != nil {
		t.Fatalf("OverlayMask() = %v", err)
	}
	if dst.GetPixel(0, 0) != Red.PackARGB() {
		t.Error("masked pixel not painted")
	}
	for _, pos := range [][2]int{{1, 0}, {0, 1}, {1, 1}} {
		if got := dst.GetPixel(pos[0], pos[1]); got != white {
			t.Errorf("unmasked pixel (%d,%d) = %#08x, want untouched white", pos[0], pos[1], got)
		}
	}
}

func TestOverlayMaskUnmaskedColor(t *testing.T) {
	// an all-zero mask with an opaque unmasked color floods the window
	mask := NewField[uint8](2, 2)

	dst := NewPixBuffer(2, 2)
	dst.Clear(White.PackARGB())
	if _, err := OverlayMask(mask, RectF{X1: 2, Y1: 2}, dst, MakeRect(0, 0, 2, 2),
		MaskStyle{Masked: Red, MaskedAlpha: 1, Unmasked: Blue, UnmaskedAlpha: 1}); err != nil {
		t.Fatalf("OverlayMask() = %v", err)
	}
	for i, p := range dst.Pix() {
		if p != Blue.PackARGB() {
			t.Errorf("pixel %d = %#08x, want opaque blue", i, p)
		}
	}
}

func TestOverlayMaskBlends(t *testing.T) {
	mask := NewField[uint8](1, 1)
	mask.Fill(1)

	dst := NewPixBuffer(1, 1)
	dst.Clear(Black.PackARGB())
	if _, err := OverlayMask(mask, RectF{X1: 1, Y1: 1}, dst, MakeRect(0, 0, 1, 1),
		MaskStyle{Masked: White, MaskedAlpha: 0.5}); err != nil {
		t.Fatalf("OverlayMask() = %v", err)
	}
	got := UnpackARGB(dst.GetPixel(0, 0))
	// half-opaque white over opaque black gives mid gray
	if absDiff(got.R, 0.5) > 0.01 || got.A < 0.99 {
		t.Errorf("blended pixel = %+v, want mid gray, opaque", got)
	}
}

func TestOverlayMaskZeroAlphaNoop(t *testing.T) {
	mask := NewField[uint8](1, 1)
	mask.Fill(1)

	white := White.PackARGB()
	dst := NewPixBuffer(1, 1)
	dst.Clear(white)
	written, err := OverlayMask(mask, RectF{X1: 1, Y1: 1}, dst, MakeRect(0, 0, 1, 1),
		MaskStyle{Masked: Red, MaskedAlpha: 0})
	if err != nil {
		t.Fatalf("OverlayMask() = %v", err)
	}
	if !written.Empty() || dst.GetPixel(0, 0) != white {
		t.Error("zero-alpha overlay should write nothing")
	}
}

func TestOverlayMaskErrors(t *testing.T) {
	dst := NewPixBuffer(2, 2)
	var gerr *GeometryError
	if _, err := OverlayMask(nil, RectF{X1: 1, Y1: 1}, dst, MakeRect(0, 0, 2, 2),
		MaskStyle{Masked: Red, MaskedAlpha: 1}); !errors.As(err, &gerr) {
		t.Errorf("nil mask: want GeometryError, got %v", err)
	}

	mask := NewField[uint8](1, 1)
	var cerr *ConfigError
	if _, err := OverlayMask(mask, RectF{X1: 1, Y1: 1}, dst, MakeRect(0, 0, 2, 2),
		MaskStyle{Masked: Red, MaskedAlpha: 2}); !errors.As(err, &cerr) {
		t.Errorf("bad masked alpha: want ConfigError, got %v", err)
	}
	if _, err := OverlayMask(mask, RectF{X1: 1, Y1: 1}, dst, MakeRect(0, 0, 2, 2),
		MaskStyle{Masked: Red, MaskedAlpha: 1, UnmaskedAlpha: -0.5}); !errors.As(err, &cerr) {
		t.Errorf("bad unmasked alpha: want ConfigError, got %v", err)
	}
}

func TestBlendOver(t *testing.T) {
	tests := []struct {
		name     string
		dst, src uint32
		want     uint32
	}{
		{"opaque src wins", 0xFF112233, 0xFFAABBCC, 0xFFAABBCC},
		{"transparent src keeps dst", 0xFF112233, 0x00FFFFFF, 0xFF112233},
		{"over transparent dst", 0x00000000, 0x80FF0000, 0x80FF0000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blendOver(tt.dst, tt.src); got != tt.want {
				t.Errorf("blendOver(%#08x, %#08x) = %#08x, want %#08x",
					tt.dst, tt.src, got, tt.want)
			}
		})
	}
}

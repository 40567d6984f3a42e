package scaler

import (
	"errors"
	"math"
	"testing"
)

func TestSetRange(t *testing.T) {
	l := NewColorLUT(1024)
	tests := []struct {
		name       string
		vmin, vmax float64
	}{
		{"unit range", 0, 1},
		{"wide range", -500, 1500},
		{"negative range", -10, -2},
		{"tiny range", 0, 1e-9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, offset := l.SetRange(tt.vmin, tt.vmax)
			// vmin maps to index 0, vmax to the last index
			lo := tt.vmin*scale + offset
			hi := tt.vmax*scale + offset
			if math.Abs(lo) > 1e-6 {
				t.Errorf("vmin maps to %g, want 0", lo)
			}
			if math.Abs(hi-1023) > 1e-6 {
				t.Errorf("vmax maps to %g, want 1023", hi)
			}
		})
	}
}

func TestSetRangeDegenerate(t *testing.T) {
	// the historical degenerate mapping: scale = size-1, offset = vmin
	l := NewColorLUT(1024)
	scale, offset := l.SetRange(5, 5)
	if scale != 1023 || offset != 5 {
		t.Errorf("degenerate SetRange = (%g, %g), want (1023, 5)", scale, offset)
	}
	vmin, vmax := l.Range()
	if vmin != 5 || vmax != 5 {
		t.Errorf("Range() = (%g, %g), want (5, 5)", vmin, vmax)
	}
}

func TestBuildGrayLUT(t *testing.T) {
	l := NewColorLUT(256)
	if err := l.Build(Gray, false, AlphaNone, 1); err != nil {
		t.Fatalf("Build() = %v", err)
	}
	table := l.Table()
	if table[0] != 0xFF000000 {
		t.Errorf("first entry = %#08x, want opaque black", table[0])
	}
	if table[255] != 0xFFFFFFFF {
		t.Errorf("last entry = %#08x, want opaque white", table[255])
	}
	// monotone gray ramp
	for i := 1; i < 256; i++ {
		if table[i]&0xFF < table[i-1]&0xFF {
			t.Fatalf("gray ramp not monotone at %d", i)
		}
	}
}

func TestBuildInvert(t *testing.T) {
	plain := NewColorLUT(256)
	inverted := NewColorLUT(256)
	if err := plain.Build(Gray, false, AlphaNone, 1); err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if err := inverted.Build(Gray, true, AlphaNone, 1); err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if inverted.Table()[0] != plain.Table()[255] {
		t.Errorf("inverted first entry %#08x != plain last entry %#08x",
			inverted.Table()[0], plain.Table()[255])
	}
}

func TestBuildAlphaFuncs(t *testing.T) {
	tests := []struct {
		name      string
		fn        AlphaFunc
		alpha     float64
		wantFirst uint32 // alpha byte of entry 0
		wantLast  uint32 // alpha byte of the last entry
	}{
		{"none", AlphaNone, 0.5, 255, 255},
		{"constant", AlphaConstant, 0.5, 128, 128},
		{"linear", AlphaLinear, 1, 0, 255},
		{"step", AlphaStep, 1, 0, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewColorLUT(256)
			if err := l.Build(Gray, false, tt.fn, tt.alpha); err != nil {
				t.Fatalf("Build() = %v", err)
			}
			first := l.Table()[0] >> 24
			last := l.Table()[255] >> 24
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("alpha bytes = (%d, %d), want (%d, %d)",
					first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestBuildAlphaCurvesMonotone(t *testing.T) {
	for _, fn := range []AlphaFunc{AlphaSigmoid, AlphaTanh} {
		l := NewColorLUT(256)
		if err := l.Build(Gray, false, fn, 1); err != nil {
			t.Fatalf("Build() = %v", err)
		}
		table := l.Table()
		for i := 1; i < 256; i++ {
			if table[i]>>24 < table[i-1]>>24 {
				t.Fatalf("alpha func %d not monotone at %d", fn, i)
			}
		}
	}
}

func TestBuildInvalidAlphaFunc(t *testing.T) {
	l := NewColorLUT(256)
	err := l.Build(Gray, false, AlphaFunc(99), 1)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Errorf("want ConfigError, got %v", err)
	}
}

func TestBuildCache(t *testing.T) {
	l := NewColorLUT(256)
	if err := l.Build(Gray, false, AlphaNone, 1); err != nil {
		t.Fatalf("Build() = %v", err)
	}
	// poke the table, then rebuild with identical parameters: the cached
	// build must be kept as-is
	l.Table()[0] = 0x12345678
	if err := l.Build(Gray, false, AlphaNone, 1); err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if l.Table()[0] != 0x12345678 {
		t.Error("identical rebuild should be a no-op")
	}
	// changing any parameter forces a rebuild
	if err := l.Build(Gray, true, AlphaNone, 1); err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if l.Table()[0] == 0x12345678 {
		t.Error("parameter change should rebuild the table")
	}
}

func TestParamsBackground(t *testing.T) {
	l := NewColorLUT(16)
	p := l.Params()
	if p.HasBackground {
		t.Error("fresh LUT should have no background")
	}
	l.SetBackground(Red)
	p = l.Params()
	if !p.HasBackground || p.Background != Red.PackARGB() {
		t.Errorf("background = %#08x (has=%v), want opaque red", p.Background, p.HasBackground)
	}
	l.ClearBackground()
	if l.Params().HasBackground {
		t.Error("ClearBackground should drop the background")
	}
}

func TestNewColorLUTSize(t *testing.T) {
	if got := NewColorLUT(0).Size(); got != DefaultLUTSize {
		t.Errorf("Size() = %d, want default %d", got, DefaultLUTSize)
	}
	if got := NewColorLUT(64).Size(); got != 64 {
		t.Errorf("Size() = %d, want 64", got)
	}
}

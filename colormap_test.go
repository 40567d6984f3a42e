package scaler

import "testing"

func TestColormapAt(t *testing.T) {
	cm := NewColormap("test", []ColorStop{
		stop(0, "000000"), stop(1, "FFFFFF"),
	})
	tests := []struct {
		name string
		t    float64
		want RGBA
	}{
		{"start", 0, Black},
		{"end", 1, White},
		{"middle", 0.5, RGBA{0.5, 0.5, 0.5, 1}},
		{"clamped below", -1, Black},
		{"clamped above", 2, White},
	}
	const tolerance = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cm.At(tt.t)
			if absDiff(got.R, tt.want.R) > tolerance ||
				absDiff(got.G, tt.want.G) > tolerance ||
				absDiff(got.B, tt.want.B) > tolerance {
				t.Errorf("At(%g) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestColormapAtEdgeCases(t *testing.T) {
	empty := NewColormap("empty", nil)
	if got := empty.At(0.5); got != Transparent {
		t.Errorf("empty colormap At() = %+v, want transparent", got)
	}

	single := NewColormap("single", []ColorStop{stop(0.5, "FF0000")})
	if got := single.At(0.1); got != Hex("FF0000") {
		t.Errorf("single-stop colormap At() = %+v, want red", got)
	}

	coincident := NewColormap("coincident", []ColorStop{
		stop(0, "000000"), stop(0.5, "FF0000"), stop(0.5, "0000FF"), stop(1, "FFFFFF"),
	})
	// must not divide by zero at the coincident offset
	_ = coincident.At(0.5)
}

func TestColormapUnsortedStops(t *testing.T) {
	cm := NewColormap("unsorted", []ColorStop{
		stop(1, "FFFFFF"), stop(0, "000000"),
	})
	if got := cm.At(0); got != Black {
		t.Errorf("At(0) = %+v, want black after sorting", got)
	}
}

func TestGetColormap(t *testing.T) {
	if GetColormap("gray") != Gray {
		t.Error("GetColormap(gray) should return the builtin")
	}
	if GetColormap("GRAY") != Gray {
		t.Error("lookup should be case-insensitive")
	}
	if GetColormap("no-such-map") != Jet {
		t.Error("unknown names should fall back to jet")
	}
}

func TestRegisterColormap(t *testing.T) {
	cm := NewColormap("custom-map", []ColorStop{
		stop(0, "112233"), stop(1, "445566"),
	})
	RegisterColormap(cm)
	t.Cleanup(func() { delete(colormaps, "custom-map") })

	if !ColormapExists("Custom-Map") {
		t.Error("registered colormap not found")
	}
	if GetColormap("custom-map") != cm {
		t.Error("GetColormap should return the registered colormap")
	}
}

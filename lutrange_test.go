package scaler

import (
	"errors"
	"math"
	"testing"
)

func TestNaNRange(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name       string
		data       []float64
		vmin, vmax float64
	}{
		{"plain", []float64{3, 1, 4, 1, 5}, 1, 5},
		{"with NaN", []float64{nan, 2, nan, 8, nan}, 2, 8},
		{"single value", []float64{7}, 7, 7},
		{"negative", []float64{-3, -1, -2}, -3, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := FieldFromSlice(1, len(tt.data), tt.data)
			if err != nil {
				t.Fatal(err)
			}
			vmin, vmax, err := NaNRange(f)
			if err != nil {
				t.Fatalf("NaNRange() = %v", err)
			}
			if vmin != tt.vmin || vmax != tt.vmax {
				t.Errorf("NaNRange() = (%g, %g), want (%g, %g)", vmin, vmax, tt.vmin, tt.vmax)
			}
		})
	}
}

func TestNaNRangeInteger(t *testing.T) {
	f, err := FieldFromSlice(2, 2, []uint16{9, 3, 7, 5})
	if err != nil {
		t.Fatal(err)
	}
	vmin, vmax, err := NaNRange(f)
	if err != nil {
		t.Fatalf("NaNRange() = %v", err)
	}
	if vmin != 3 || vmax != 9 {
		t.Errorf("NaNRange() = (%g, %g), want (3, 9)", vmin, vmax)
	}
}

func TestNaNRangeDegenerate(t *testing.T) {
	var derr *DomainError

	_, _, err := NaNRange(NewField[float64](0, 0))
	if !errors.As(err, &derr) {
		t.Errorf("empty field: want DomainError, got %v", err)
	}

	nan := math.NaN()
	f, _ := FieldFromSlice(1, 3, []float64{nan, nan, nan})
	_, _, err = NaNRange(f)
	if !errors.As(err, &derr) {
		t.Errorf("all-NaN field: want DomainError, got %v", err)
	}
}

func TestThresholdRangeFull(t *testing.T) {
	// percent = 100 keeps everything: full edge-to-edge range
	hist := []uint32{5, 0, 3, 9, 1}
	edges := []float64{0, 1, 2, 3, 4, 5}
	vmin, vmax, err := ThresholdRange(hist, edges, 100, false)
	if err != nil {
		t.Fatalf("ThresholdRange() = %v", err)
	}
	if vmin != 0 || vmax != 5 {
		t.Errorf("ThresholdRange(100%%) = (%g, %g), want (0, 5)", vmin, vmax)
	}
}

func TestThresholdRangeEliminatesOutliers(t *testing.T) {
	// 10 outliers on each side around a dense center of 1000
	hist := []uint32{10, 1000, 10}
	edges := []float64{0, 1, 2, 3}
	vmin, vmax, err := ThresholdRange(hist, edges, 90, false)
	if err != nil {
		t.Fatalf("ThresholdRange() = %v", err)
	}
	if vmin != 1 || vmax != 2 {
		t.Errorf("ThresholdRange(90%%) = (%g, %g), want (1, 2)", vmin, vmax)
	}
}

func TestThresholdRangeIntegerBins(t *testing.T) {
	// the first bin holds the zero background and is excluded from the
	// mass when integerBins is set
	hist := []uint32{100000, 10, 1000, 10}
	edges := []float64{0, 1, 2, 3, 4}
	vmin, vmax, err := ThresholdRange(hist, edges, 90, true)
	if err != nil {
		t.Fatalf("ThresholdRange() = %v", err)
	}
	if vmin != 1 || vmax != 3 {
		t.Errorf("ThresholdRange(90%%, integer) = (%g, %g), want (1, 3)", vmin, vmax)
	}
}

func TestThresholdRangeErrors(t *testing.T) {
	hist := []uint32{1, 2, 3}
	edges := []float64{0, 1, 2, 3}

	var cerr *ConfigError
	if _, _, err := ThresholdRange(hist, edges, 0, false); !errors.As(err, &cerr) {
		t.Errorf("percent 0: want ConfigError, got %v", err)
	}
	if _, _, err := ThresholdRange(hist, edges, 120, false); !errors.As(err, &cerr) {
		t.Errorf("percent 120: want ConfigError, got %v", err)
	}

	var gerr *GeometryError
	if _, _, err := ThresholdRange(hist, []float64{0, 1}, 50, false); !errors.As(err, &gerr) {
		t.Errorf("bad edges: want GeometryError, got %v", err)
	}
}

func TestThresholdRangeNonEmpty(t *testing.T) {
	// even a brutal percentile keeps at least one bin
	hist := []uint32{1, 1, 1, 1}
	edges := []float64{0, 1, 2, 3, 4}
	vmin, vmax, err := ThresholdRange(hist, edges, 1, false)
	if err != nil {
		t.Fatalf("ThresholdRange() = %v", err)
	}
	if vmax <= vmin {
		t.Errorf("ThresholdRange(1%%) = (%g, %g), want non-empty", vmin, vmax)
	}
}

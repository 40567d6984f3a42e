package scaler

import (
	"math"
	"testing"
)

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", MakeRect(0, 0, 10, 10), MakeRect(5, 5, 15, 15), MakeRect(5, 5, 10, 10)},
		{"contained", MakeRect(0, 0, 10, 10), MakeRect(2, 3, 4, 5), MakeRect(2, 3, 4, 5)},
		{"disjoint", MakeRect(0, 0, 5, 5), MakeRect(10, 10, 20, 20), Rect{X0: 10, Y0: 10, X1: 5, Y1: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
	if !MakeRect(0, 0, 5, 5).Intersect(MakeRect(10, 10, 20, 20)).Empty() {
		t.Error("disjoint intersection should be empty")
	}
}

func TestMakeRectNormalizes(t *testing.T) {
	got := MakeRect(10, 8, 2, 3)
	want := Rect{X0: 2, Y0: 3, X1: 10, Y1: 8}
	if got != want {
		t.Errorf("MakeRect(10, 8, 2, 3) = %+v, want %+v", got, want)
	}
}

func TestToBins(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want []float64
	}{
		{"empty", nil, nil},
		{"single center", []float64{3}, []float64{2.5, 3.5}},
		{"two centers", []float64{0, 2}, []float64{-1, 1, 3}},
		{"uniform", []float64{0, 1, 2, 3}, []float64{-0.5, 0.5, 1.5, 2.5, 3.5}},
		{"non-uniform", []float64{0, 1, 4}, []float64{-0.5, 0.5, 2.5, 5.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToBins(tt.x)
			if len(got) != len(tt.want) {
				t.Fatalf("ToBins(%v) has %d edges, want %d", tt.x, len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("ToBins(%v)[%d] = %g, want %g", tt.x, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestToBinsCoversCenters(t *testing.T) {
	// every center must lie strictly inside its bin
	x := []float64{1, 2, 5, 6.5, 10}
	edges := ToBins(x)
	for i, c := range x {
		if c < edges[i] || c > edges[i+1] {
			t.Errorf("center %g not inside bin [%g, %g]", c, edges[i], edges[i+1])
		}
	}
}

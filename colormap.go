package scaler

import (
	"sort"
	"strings"
)

// ColorStop represents a color at a specific position in a colormap.
type ColorStop struct {
	Offset float64 // Position in the colormap, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Colormap maps a normalized value in [0, 1] to a color by piecewise
// linear interpolation between its stops. Stops must be sorted by offset.
type Colormap struct {
	Name  string
	Stops []ColorStop
}

// NewColormap creates a colormap from stops, sorting them by offset.
func NewColormap(name string, stops []ColorStop) *Colormap {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return &Colormap{Name: name, Stops: sorted}
}

// At returns the interpolated color at position t, clamped to [0, 1].
// Handles edge cases: no stops, single stop, coincident stops.
func (cm *Colormap) At(t float64) RGBA {
	stops := cm.Stops
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	t = clamp01(t)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return s1.Color.Lerp(s2.Color, localT)
}

// stop is a shorthand constructor for hex-colored stops.
func stop(offset float64, hex string) ColorStop {
	return ColorStop{Offset: offset, Color: Hex(hex)}
}

// colormaps holds the registry of named colormaps, keyed by lower-case
// name. The engine is single-threaded by contract, so no locking.
var colormaps = map[string]*Colormap{}

func registerBuiltin(name string, stops []ColorStop) *Colormap {
	cm := NewColormap(name, stops)
	colormaps[strings.ToLower(name)] = cm
	return cm
}

var (
	// Gray is the linear black-to-white colormap.
	Gray = registerBuiltin("gray", []ColorStop{
		stop(0, "000000"), stop(1, "FFFFFF"),
	})

	// Jet is the classic blue-cyan-yellow-red colormap and the fallback
	// for unknown names.
	Jet = registerBuiltin("jet", []ColorStop{
		stop(0, "00007F"), stop(0.125, "0000FF"), stop(0.375, "00FFFF"),
		stop(0.625, "FFFF00"), stop(0.875, "FF0000"), stop(1, "7F0000"),
	})

	// Hot runs black-red-yellow-white.
	Hot = registerBuiltin("hot", []ColorStop{
		stop(0, "000000"), stop(0.365, "FF0000"),
		stop(0.746, "FFFF00"), stop(1, "FFFFFF"),
	})

	// Cool runs cyan to magenta.
	Cool = registerBuiltin("cool", []ColorStop{
		stop(0, "00FFFF"), stop(1, "FF00FF"),
	})

	// Bone is a grayscale map with a slight blue tint.
	Bone = registerBuiltin("bone", []ColorStop{
		stop(0, "000000"), stop(0.375, "545474"),
		stop(0.75, "A9C8C8"), stop(1, "FFFFFF"),
	})

	// Viridis is a perceptually uniform dark-purple-to-yellow map.
	Viridis = registerBuiltin("viridis", []ColorStop{
		stop(0, "440154"), stop(0.25, "3B528B"), stop(0.5, "21918C"),
		stop(0.75, "5EC962"), stop(1, "FDE725"),
	})

	// CoolWarm is a diverging blue-white-red map.
	CoolWarm = registerBuiltin("coolwarm", []ColorStop{
		stop(0, "3B4CC0"), stop(0.5, "DDDDDD"), stop(1, "B40426"),
	})
)

// GetColormap returns the colormap registered under the given name
// (case-insensitive). Unknown names fall back to Jet.
func GetColormap(name string) *Colormap {
	if cm, ok := colormaps[strings.ToLower(name)]; ok {
		return cm
	}
	Logger().Warn("scaler: unknown colormap, falling back to jet", "name", name)
	return Jet
}

// ColormapExists reports whether a colormap is registered under the
// given name (case-insensitive).
func ColormapExists(name string) bool {
	_, ok := colormaps[strings.ToLower(name)]
	return ok
}

// RegisterColormap adds a colormap to the registry, replacing any
// existing entry with the same name.
func RegisterColormap(cm *Colormap) {
	colormaps[strings.ToLower(cm.Name)] = cm
}

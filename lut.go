package scaler

import "math"

// DefaultLUTSize is the number of entries in a lookup table unless the
// caller requests otherwise.
const DefaultLUTSize = 1024

// AlphaFunc selects the parametric curve shaping a LUT's alpha channel
// across its range.
type AlphaFunc int

const (
	// AlphaNone makes every entry fully opaque.
	AlphaNone AlphaFunc = iota
	// AlphaConstant applies the global alpha uniformly.
	AlphaConstant
	// AlphaLinear ramps alpha linearly from 0 to the global alpha.
	AlphaLinear
	// AlphaSigmoid applies alpha/(1+exp(-10x)).
	AlphaSigmoid
	// AlphaTanh applies alpha*tanh(5x).
	AlphaTanh
	// AlphaStep makes the lowest value fully transparent and applies the
	// global alpha everywhere else.
	AlphaStep
)

// LUTParams is the per-call lookup parameter tuple passed to the
// resampling kernels: index = clamp(round(value*Scale+Offset), 0, len-1).
// A nil Table selects LUT-bypass mode, where kernels hand raw sample
// values through instead of packing colors.
type LUTParams struct {
	Scale  float64
	Offset float64
	// Background, when HasBackground is set, is the packed pixel written
	// for NaN samples and out-of-source-bounds destination pixels.
	Background    uint32
	HasBackground bool
	Table         []uint32
}

// ColorLUT is a fixed-size packed-color lookup table built from a
// colormap, an alpha function, a global alpha factor and an invert flag.
// Rebuilding with value-identical parameters is a no-op.
type ColorLUT struct {
	table []uint32

	// current range mapping
	vmin, vmax    float64
	scale, offset float64

	// background pixel for out-of-bounds/NaN samples
	background    uint32
	hasBackground bool

	// cached build parameters
	built    bool
	cmap     *Colormap
	invert   bool
	alphaFn  AlphaFunc
	alphaVal float64
}

// NewColorLUT creates an empty LUT with the given number of entries.
// Sizes below 2 fall back to DefaultLUTSize.
func NewColorLUT(size int) *ColorLUT {
	if size < 2 {
		size = DefaultLUTSize
	}
	l := &ColorLUT{table: make([]uint32, size)}
	l.SetRange(0, float64(size-1))
	return l
}

// Size returns the number of LUT entries.
func (l *ColorLUT) Size() int { return len(l.table) }

// Table returns the packed 0xAARRGGBB entries.
func (l *ColorLUT) Table() []uint32 { return l.table }

// Build fills the table from the colormap. For entry i, x = i/(size-1);
// the entry color is cmap(x) (x reversed when invert is set) with its
// alpha channel shaped by the alpha function and global alpha factor.
// Building twice with value-identical parameters skips the rebuild.
func (l *ColorLUT) Build(cmap *Colormap, invert bool, fn AlphaFunc, alpha float64) error {
	if l.built && cmap == l.cmap && invert == l.invert && fn == l.alphaFn && alpha == l.alphaVal {
		return nil
	}
	if cmap == nil {
		return configErrorf("nil colormap")
	}

	size := len(l.table)
	for i := 0; i < size; i++ {
		x := float64(i) / float64(size-1)

		var pixAlpha float64
		switch fn {
		case AlphaNone:
			pixAlpha = 1.0
		case AlphaConstant:
			pixAlpha = alpha
		case AlphaLinear:
			pixAlpha = alpha * x
		case AlphaSigmoid:
			pixAlpha = alpha / (1 + math.Exp(-10*x))
		case AlphaTanh:
			pixAlpha = alpha * math.Tanh(5*x)
		case AlphaStep:
			if x > 0 {
				pixAlpha = alpha
			}
		default:
			return configErrorf("invalid alpha function %d", fn)
		}

		cx := x
		if invert {
			cx = 1 - x
		}
		alphaChannel := uint32(clamp255(255*pixAlpha+0.5)) << 24
		l.table[i] = cmap.At(cx).PackARGB()&0x00FFFFFF | alphaChannel
	}

	l.built = true
	l.cmap = cmap
	l.invert = invert
	l.alphaFn = fn
	l.alphaVal = alpha
	Logger().Debug("scaler: LUT rebuilt", "colormap", cmap.Name, "size", size)
	return nil
}

// SetRange sets the data range mapped onto the LUT and returns the
// resulting (scale, offset) pair such that value*scale+offset is the
// LUT index. When max == min the mapping degenerates to scale = size-1
// with the raw minimum as offset; this asymmetry with the regular
// branch is kept for compatibility with historical renderings.
func (l *ColorLUT) SetRange(vmin, vmax float64) (scale, offset float64) {
	l.vmin, l.vmax = vmin, vmax
	lutMax := float64(len(l.table) - 1)
	if vmax == vmin {
		l.scale, l.offset = lutMax, vmin
	} else {
		l.scale = lutMax / (vmax - vmin)
		l.offset = -lutMax * vmin / (vmax - vmin)
	}
	return l.scale, l.offset
}

// Range returns the data range currently mapped onto the LUT.
func (l *ColorLUT) Range() (vmin, vmax float64) {
	return l.vmin, l.vmax
}

// SetBackground sets the pixel used for NaN and out-of-bounds samples.
func (l *ColorLUT) SetBackground(c RGBA) {
	l.background = c.PackARGB()
	l.hasBackground = true
}

// ClearBackground restores the default fully transparent background.
func (l *ColorLUT) ClearBackground() {
	l.background = 0
	l.hasBackground = false
}

// Params returns the per-call parameter tuple for the resampling kernels.
func (l *ColorLUT) Params() LUTParams {
	return LUTParams{
		Scale:         l.scale,
		Offset:        l.offset,
		Background:    l.background,
		HasBackground: l.hasBackground,
		Table:         l.table,
	}
}

package scaler

import "math"

// Interpolation selects how source samples are combined for each
// destination pixel.
type Interpolation int

const (
	// Nearest picks the closest source pixel.
	Nearest Interpolation = iota
	// Linear applies bilinear interpolation between the four closest
	// source pixels.
	Linear
	// Antialias averages an NxN box of source pixels, for downsampling.
	// The kernel size is set with WithAAKernel and clamped to [2, 7].
	Antialias
)

const (
	minAAKernel     = 2
	maxAAKernel     = 7
	defaultAAKernel = 5
)

// renderOptions holds optional per-call kernel configuration.
type renderOptions struct {
	aaSize    int
	gridColor uint32
	gridLines bool
	flat      bool
	uflat     float64
	vflat     float64
}

// Option configures a resampling call.
type Option func(*renderOptions)

// WithAAKernel sets the box size used by Antialias interpolation.
// Values outside [2, 7] are clamped.
func WithAAKernel(n int) Option {
	return func(o *renderOptions) {
		if n < minAAKernel {
			n = minAAKernel
		}
		if n > maxAAKernel {
			n = maxAAKernel
		}
		o.aaSize = n
	}
}

// WithGridLines overlays mesh cell borders in the given color.
// Only honored by ScaleQuads.
func WithGridLines(c RGBA) Option {
	return func(o *renderOptions) {
		o.gridLines = true
		o.gridColor = c.PackARGB()
	}
}

// WithFlatShading renders each mesh cell with the single value
// interpolated at fixed cell parameters (u, v) instead of per-pixel
// bilinear localization. Only honored by ScaleQuads.
func WithFlatShading(u, v float64) Option {
	return func(o *renderOptions) {
		o.flat = true
		o.uflat = clamp01(u)
		o.vflat = clamp01(v)
	}
}

func applyOptions(opts []Option) renderOptions {
	o := renderOptions{aaSize: defaultAAKernel, uflat: 0.5, vflat: 0.5}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// sampler produces the source value at continuous source pixel
// coordinates. ok is false outside the source bounds; NaN values flow
// through as NaN.
type sampler func(x, y float64) (v float64, ok bool)

// newSampler resolves the interpolation strategy once per call so the
// per-pixel loops stay free of mode dispatch and allocation.
func newSampler[T Number](f *Field[T], mode Interpolation, aaSize int) sampler {
	rows, cols := f.Rows(), f.Cols()
	data := f.Data()

	switch mode {
	case Linear:
		return func(x, y float64) (float64, bool) {
			if x < 0 || y < 0 || x >= float64(cols) || y >= float64(rows) {
				return 0, false
			}
			i := int(x)
			j := int(y)
			fx := x - float64(i)
			fy := y - float64(j)
			i1 := i + 1
			if i1 >= cols {
				i1 = cols - 1
			}
			j1 := j + 1
			if j1 >= rows {
				j1 = rows - 1
			}
			v00 := float64(data[j*cols+i])
			v01 := float64(data[j*cols+i1])
			v10 := float64(data[j1*cols+i])
			v11 := float64(data[j1*cols+i1])
			top := v00 + (v01-v00)*fx
			bot := v10 + (v11-v10)*fx
			return top + (bot-top)*fy, true
		}

	case Antialias:
		n := aaSize
		return func(x, y float64) (float64, bool) {
			if x < 0 || y < 0 || x >= float64(cols) || y >= float64(rows) {
				return 0, false
			}
			i0 := int(x) - n/2
			j0 := int(y) - n/2
			sum := 0.0
			count := 0
			for j := j0; j < j0+n; j++ {
				if j < 0 || j >= rows {
					continue
				}
				for i := i0; i < i0+n; i++ {
					if i < 0 || i >= cols {
						continue
					}
					v := data[j*cols+i]
					if isNaN(v) {
						continue
					}
					sum += float64(v)
					count++
				}
			}
			if count == 0 {
				return math.NaN(), true
			}
			return sum / float64(count), true
		}

	default: // Nearest
		return func(x, y float64) (float64, bool) {
			if x < 0 || y < 0 || x >= float64(cols) || y >= float64(rows) {
				return 0, false
			}
			return float64(data[int(y)*cols+int(x)]), true
		}
	}
}

// pixelFunc converts a sampled value to a packed pixel.
type pixelFunc func(v float64, ok bool) uint32

// newPixelFunc resolves the LUT lookup once per call. NaN samples and
// out-of-bounds positions map to the background pixel if one is set,
// fully transparent otherwise.
func newPixelFunc(lut LUTParams) pixelFunc {
	table := lut.Table
	scale := lut.Scale
	offset := lut.Offset
	last := len(table) - 1
	bg := uint32(0)
	if lut.HasBackground {
		bg = lut.Background
	}
	return func(v float64, ok bool) uint32 {
		if !ok || math.IsNaN(v) {
			return bg
		}
		idx := int(math.Round(v*scale + offset))
		if idx < 0 {
			idx = 0
		} else if idx > last {
			idx = last
		}
		return table[idx]
	}
}

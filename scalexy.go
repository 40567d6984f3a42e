package scaler

import (
	"math"
	"sort"
)

// axisLookup precomputes, for every destination index of the clipped
// rectangle, the continuous source coordinate along one axis of a
// non-uniform grid. Entries outside the axis span are NaN.
func axisLookup(edges []float64, m destToSrc, lo, hi int, out []float64) {
	n := len(edges) - 1 // number of cells
	for i := lo; i < hi; i++ {
		p := m.at(i)
		if p < edges[0] || p >= edges[n] {
			out[i-lo] = math.NaN()
			continue
		}
		// cell index such that edges[c] <= p < edges[c+1]
		c := sort.SearchFloat64s(edges, p)
		if c >= len(edges) || edges[c] > p {
			c--
		}
		if c >= n {
			c = n - 1
		}
		// continuous coordinate: cell index plus fraction through the cell
		frac := (p - edges[c]) / (edges[c+1] - edges[c])
		out[i-lo] = float64(c) + frac
	}
}

// normalizeEdges accepts either n cell centers or n+1 precomputed bin
// edges for an axis with n cells, returning strictly increasing edges.
func normalizeEdges(coords []float64, cells int, axis string) ([]float64, error) {
	var edges []float64
	switch len(coords) {
	case cells:
		edges = ToBins(coords)
	case cells + 1:
		edges = coords
	default:
		return nil, geometryErrorf("%s must have %d or %d entries, got %d", axis, cells, cells+1, len(coords))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, geometryErrorf("%s coordinates must be strictly increasing", axis)
		}
	}
	return edges, nil
}

// ScaleXY renders a field whose columns and rows sit on non-uniform 1D
// axes. x and y hold either the cell centers (len cols / len rows) or
// precomputed bin edges (one entry more); srcRect is the plot-coordinate
// window mapped onto dstRect. Destination pixels falling outside the
// axis spans receive the LUT background.
func ScaleXY[T Number](src *Field[T], x, y []float64, srcRect RectF, dst *PixBuffer, dstRect Rect, lut LUTParams, interp Interpolation, opts ...Option) (Rect, error) {
	if src == nil || dst == nil {
		return Rect{}, geometryErrorf("nil source or destination")
	}
	if lut.Table == nil {
		return Rect{}, configErrorf("ScaleXY requires a color table")
	}
	xEdges, err := normalizeEdges(x, src.Cols(), "x")
	if err != nil {
		return Rect{}, err
	}
	yEdges, err := normalizeEdges(y, src.Rows(), "y")
	if err != nil {
		return Rect{}, err
	}
	if srcRect.Empty() || dstRect.Empty() {
		return Rect{}, nil
	}
	clip := clipDst(dstRect, dst.Width(), dst.Height())
	if clip.Empty() {
		return Rect{}, nil
	}

	o := applyOptions(opts)
	mx, my := rectMapping(srcRect, dstRect)
	sample := newSampler(src, interp, o.aaSize)
	pixel := newPixelFunc(lut)

	xs := make([]float64, clip.Dx())
	ys := make([]float64, clip.Dy())
	axisLookup(xEdges, mx, clip.X0, clip.X1, xs)
	axisLookup(yEdges, my, clip.Y0, clip.Y1, ys)

	w := dst.Width()
	pix := dst.Pix()
	for y := clip.Y0; y < clip.Y1; y++ {
		sy := ys[y-clip.Y0]
		row := pix[y*w : (y+1)*w]
		if math.IsNaN(sy) {
			for x := clip.X0; x < clip.X1; x++ {
				row[x] = pixel(0, false)
			}
			continue
		}
		for x := clip.X0; x < clip.X1; x++ {
			sx := xs[x-clip.X0]
			if math.IsNaN(sx) {
				row[x] = pixel(0, false)
				continue
			}
			row[x] = pixel(sample(sx, sy))
		}
	}
	return clip, nil
}

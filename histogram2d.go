package scaler

import "math"

// AggMode selects how Histogram2DFunc reduces the samples falling into
// each bin.
type AggMode int

const (
	// AggCount counts the samples per bin.
	AggCount AggMode = iota
	// AggMax keeps the largest sample per bin.
	AggMax
	// AggMin keeps the smallest sample per bin.
	AggMin
	// AggSum adds the samples per bin.
	AggSum
	// AggProduct multiplies the samples per bin.
	AggProduct
	// AggAverage averages the samples per bin.
	AggAverage
)

type bin2d struct {
	nx, ny         int
	xmin, ymin     float64
	xscale, yscale float64
	xmax, ymax     float64
}

func newBin2D(xmin, xmax, ymin, ymax float64, out *Field[float64]) (bin2d, error) {
	if out == nil || out.Rows() == 0 || out.Cols() == 0 {
		return bin2d{}, geometryErrorf("nil or empty output field")
	}
	if xmax <= xmin || ymax <= ymin {
		return bin2d{}, domainErrorf("invalid bounds [%g, %g] x [%g, %g]", xmin, xmax, ymin, ymax)
	}
	nx, ny := out.Cols(), out.Rows()
	return bin2d{
		nx: nx, ny: ny,
		xmin: xmin, ymin: ymin,
		xmax: xmax, ymax: ymax,
		xscale: float64(nx) / (xmax - xmin),
		yscale: float64(ny) / (ymax - ymin),
	}, nil
}

// locate returns the bin index of a sample, or ok=false when the sample
// is NaN or out of bounds. The upper bound is inclusive and falls in
// the last bin.
func (b bin2d) locate(xv, yv float64) (idx int, ok bool) {
	if math.IsNaN(xv) || math.IsNaN(yv) {
		return 0, false
	}
	if xv < b.xmin || xv > b.xmax || yv < b.ymin || yv > b.ymax {
		return 0, false
	}
	ix := int((xv - b.xmin) * b.xscale)
	if ix >= b.nx {
		ix = b.nx - 1
	}
	iy := int((yv - b.ymin) * b.yscale)
	if iy >= b.ny {
		iy = b.ny - 1
	}
	return iy*b.nx + ix, true
}

// Histogram2D bins the (x, y) point cloud over the given bounds into
// out, whose shape sets the bin grid (rows along y, columns along x).
// Counts accumulate onto out's existing contents so tiles can be
// composed; pass a zeroed field for a fresh histogram. With logScale
// the final counts are mapped through log(1+n). Returns the number of
// samples that landed inside the bounds.
func Histogram2D(x, y []float64, xmin, xmax, ymin, ymax float64, out *Field[float64], logScale bool) (inside int, err error) {
	if len(x) != len(y) {
		return 0, geometryErrorf("x and y lengths differ: %d vs %d", len(x), len(y))
	}
	b, err := newBin2D(xmin, xmax, ymin, ymax, out)
	if err != nil {
		return 0, err
	}

	data := out.Data()
	for k := range x {
		idx, ok := b.locate(x[k], y[k])
		if !ok {
			continue
		}
		data[idx]++
		inside++
	}
	if logScale {
		for i, v := range data {
			data[i] = math.Log1p(v)
		}
	}
	return inside, nil
}

// Histogram2DFunc bins the (x, y, z) samples over the given bounds and
// reduces the z values of each bin with the aggregation mode. Bins that
// received no samples are set to NaN so they render as background.
// Returns the number of samples that landed inside the bounds.
func Histogram2DFunc(x, y, z []float64, xmin, xmax, ymin, ymax float64, mode AggMode, out *Field[float64]) (inside int, err error) {
	if len(x) != len(y) || len(x) != len(z) {
		return 0, geometryErrorf("x, y and z lengths differ: %d, %d, %d", len(x), len(y), len(z))
	}
	b, err := newBin2D(xmin, xmax, ymin, ymax, out)
	if err != nil {
		return 0, err
	}

	data := out.Data()
	counts := make([]uint32, len(data))

	// neutral element per aggregation
	var neutral float64
	switch mode {
	case AggMax:
		neutral = math.Inf(-1)
	case AggMin:
		neutral = math.Inf(1)
	case AggProduct:
		neutral = 1
	case AggCount, AggSum, AggAverage:
		neutral = 0
	default:
		return 0, configErrorf("invalid aggregation mode %d", mode)
	}
	for i := range data {
		data[i] = neutral
	}

	for k := range x {
		idx, ok := b.locate(x[k], y[k])
		if !ok {
			continue
		}
		zv := z[k]
		if math.IsNaN(zv) {
			continue
		}
		switch mode {
		case AggCount:
			data[idx]++
		case AggMax:
			if zv > data[idx] {
				data[idx] = zv
			}
		case AggMin:
			if zv < data[idx] {
				data[idx] = zv
			}
		case AggSum, AggAverage:
			data[idx] += zv
		case AggProduct:
			data[idx] *= zv
		}
		counts[idx]++
		inside++
	}

	for i := range data {
		if counts[i] == 0 {
			data[i] = math.NaN()
		} else if mode == AggAverage {
			data[i] /= float64(counts[i])
		}
	}
	return inside, nil
}

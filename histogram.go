package scaler

// Histogram counts values into bins equally spaced over [vmin, vmax].
// NaN values and values outside the range are skipped; vmax itself
// falls in the last bin. A degenerate range (vmax == vmin) is widened
// by half a unit on each side. The returned edges slice has bins+1
// entries.
func Histogram[T Number](values []T, bins int, vmin, vmax float64) (counts []uint32, edges []float64, err error) {
	if bins < 1 {
		return nil, nil, configErrorf("bin count must be positive, got %d", bins)
	}
	if vmax < vmin {
		return nil, nil, domainErrorf("inverted range [%g, %g]", vmin, vmax)
	}
	if vmax == vmin {
		vmin -= 0.5
		vmax += 0.5
	}

	counts = make([]uint32, bins)
	scale := float64(bins) / (vmax - vmin)
	for _, v := range values {
		if isNaN(v) {
			continue
		}
		fv := float64(v)
		if fv < vmin || fv > vmax {
			continue
		}
		b := int((fv - vmin) * scale)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}

	edges = make([]float64, bins+1)
	step := (vmax - vmin) / float64(bins)
	for i := range edges {
		edges[i] = vmin + float64(i)*step
	}
	edges[bins] = vmax
	return counts, edges, nil
}

// HistogramEngine computes and caches the histogram of a fixed dataset.
// Recomputing with unchanged bin count and range returns the cached
// result, which makes repeated contrast adjustments over the same image
// cheap.
type HistogramEngine[T Number] struct {
	data []T

	bins       int
	vmin, vmax float64
	auto       bool

	counts []uint32
	edges  []float64
	valid  bool
}

// NewHistogramEngine wraps a dataset with auto-ranged binning. The
// engine keeps a reference to the slice; callers mutating the data
// should create a fresh engine.
func NewHistogramEngine[T Number](data []T, bins int) *HistogramEngine[T] {
	if bins < 1 {
		bins = 256
	}
	return &HistogramEngine[T]{data: data, bins: bins, auto: true}
}

// SetBins changes the bin count, invalidating the cache if it differs.
func (e *HistogramEngine[T]) SetBins(bins int) error {
	if bins < 1 {
		return configErrorf("bin count must be positive, got %d", bins)
	}
	if bins != e.bins {
		e.bins = bins
		e.valid = false
	}
	return nil
}

// SetRange fixes the histogram range instead of deriving it from the
// data extrema.
func (e *HistogramEngine[T]) SetRange(vmin, vmax float64) {
	if e.auto || vmin != e.vmin || vmax != e.vmax {
		e.valid = false
	}
	e.auto = false
	e.vmin, e.vmax = vmin, vmax
}

// Invalidate drops the cached result, forcing the next Compute to
// recount. Needed after mutating the underlying data slice in place.
func (e *HistogramEngine[T]) Invalidate() {
	e.valid = false
}

// AutoRange restores range derivation from the data extrema.
func (e *HistogramEngine[T]) AutoRange() {
	if !e.auto {
		e.auto = true
		e.valid = false
	}
}

// Compute returns the bin counts and edges, reusing the cached result
// when neither the bin count nor the range changed since the last call.
func (e *HistogramEngine[T]) Compute() (counts []uint32, edges []float64, err error) {
	if e.valid {
		return e.counts, e.edges, nil
	}
	vmin, vmax := e.vmin, e.vmax
	if e.auto {
		f, ferr := FieldFromSlice(1, len(e.data), e.data)
		if ferr != nil {
			return nil, nil, ferr
		}
		vmin, vmax, err = NaNRange(f)
		if err != nil {
			return nil, nil, err
		}
	}
	counts, edges, err = Histogram(e.data, e.bins, vmin, vmax)
	if err != nil {
		return nil, nil, err
	}
	e.counts, e.edges = counts, edges
	e.valid = true
	return counts, edges, nil
}

// LevelsRange runs the outlier-elimination threshold over the cached
// histogram, returning the data range holding the central percent% of
// the mass. See ThresholdRange for the integerBins convention.
func (e *HistogramEngine[T]) LevelsRange(percent float64, integerBins bool) (vmin, vmax float64, err error) {
	counts, edges, err := e.Compute()
	if err != nil {
		return 0, 0, err
	}
	return ThresholdRange(counts, edges, percent, integerBins)
}

package scaler

import "math"

// NaNRange returns the (min, max) of a field, ignoring NaN values in
// float-typed fields. Integer-typed fields use the raw extrema.
// An empty or all-NaN field yields a DomainError.
func NaNRange[T Number](f *Field[T]) (vmin, vmax float64, err error) {
	if f == nil || len(f.Data()) == 0 {
		return 0, 0, domainErrorf("empty field has no range")
	}
	vmin = math.Inf(1)
	vmax = math.Inf(-1)
	for _, v := range f.Data() {
		if isNaN(v) {
			continue
		}
		fv := float64(v)
		if fv < vmin {
			vmin = fv
		}
		if fv > vmax {
			vmax = fv
		}
	}
	if vmin > vmax {
		return 0, 0, domainErrorf("all-NaN field has no range")
	}
	return vmin, vmax, nil
}

// ThresholdRange returns the range holding the central percent% of the
// histogram mass, eliminating outliers symmetrically on both sides.
// percent must lie in (0, 100]; percent == 100 returns the full range
// (edges[0], edges[len-1]).
//
// integerBins marks a histogram built from integer-valued data, where
// the first bin is assumed to hold the value 0 background and is
// excluded from the mass sum (legacy convention).
func ThresholdRange(hist []uint32, edges []float64, percent float64, integerBins bool) (vmin, vmax float64, err error) {
	if percent <= 0 || percent > 100 {
		return 0, 0, configErrorf("percent must be in (0, 100], got %g", percent)
	}
	if len(edges) != len(hist)+1 {
		return 0, 0, geometryErrorf("edges length %d does not match %d bins", len(edges), len(hist))
	}
	if len(hist) == 0 {
		return 0, 0, domainErrorf("empty histogram has no range")
	}

	histLen := len(hist)
	h := hist
	if integerBins {
		// the dropped bin shifts the kept indices one bin left when
		// looking up edges, a quirk kept for rendering compatibility
		h = hist[1:]
	}

	var total float64
	for _, c := range h {
		total += float64(c)
	}
	// mass eliminated on each side
	threshold := 0.5 * (100 - percent) / 100 * total

	// first index whose left cumulative sum reaches the threshold
	iMin := len(h)
	cum := 0.0
	for i, c := range h {
		cum += float64(c)
		if cum >= threshold {
			iMin = i
			break
		}
	}

	// symmetric scan from the right
	right := 0
	cum = 0.0
	for i := len(h) - 1; i >= 0; i-- {
		cum += float64(h[i])
		if cum >= threshold {
			break
		}
		right++
	}
	iMax := histLen - right
	if iMax > histLen {
		iMax = histLen
	}
	if iMax <= iMin {
		iMax = iMin + 1
	}

	return edges[iMin], edges[iMax], nil
}

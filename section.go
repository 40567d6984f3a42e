package scaler

import "math"

// XSection extracts the horizontal profile of a field along one row,
// returning the column positions and raw values. NaN values pass
// through unchanged.
func XSection[T Number](f *Field[T], row int) (x, v []float64, err error) {
	if f == nil {
		return nil, nil, geometryErrorf("nil field")
	}
	if row < 0 || row >= f.Rows() {
		return nil, nil, geometryErrorf("row %d out of range for %d rows", row, f.Rows())
	}
	cols := f.Cols()
	data := f.Data()[row*cols : (row+1)*cols]
	x = make([]float64, cols)
	v = make([]float64, cols)
	for i := range data {
		x[i] = float64(i)
		v[i] = float64(data[i])
	}
	return x, v, nil
}

// YSection extracts the vertical profile of a field along one column.
func YSection[T Number](f *Field[T], col int) (y, v []float64, err error) {
	if f == nil {
		return nil, nil, geometryErrorf("nil field")
	}
	if col < 0 || col >= f.Cols() {
		return nil, nil, geometryErrorf("column %d out of range for %d columns", col, f.Cols())
	}
	rows, cols := f.Rows(), f.Cols()
	data := f.Data()
	y = make([]float64, rows)
	v = make([]float64, rows)
	for j := 0; j < rows; j++ {
		y[j] = float64(j)
		v[j] = float64(data[j*cols+col])
	}
	return y, v, nil
}

// sectionRect clips a region of interest to the field and rejects empty
// results.
func sectionRect[T Number](f *Field[T], r Rect) (Rect, error) {
	if f == nil {
		return Rect{}, geometryErrorf("nil field")
	}
	clip := r.Intersect(Rect{X1: f.Cols(), Y1: f.Rows()})
	if clip.Empty() {
		return Rect{}, geometryErrorf("region %v lies outside the field", r)
	}
	return clip, nil
}

// AverageXSection averages the rows of a rectangular region into a
// single horizontal profile. NaN cells are excluded per column; a
// column with no valid cells yields NaN.
func AverageXSection[T Number](f *Field[T], r Rect) (x, v []float64, err error) {
	clip, err := sectionRect(f, r)
	if err != nil {
		return nil, nil, err
	}
	cols := f.Cols()
	data := f.Data()
	x = make([]float64, clip.Dx())
	v = make([]float64, clip.Dx())
	for i := clip.X0; i < clip.X1; i++ {
		sum := 0.0
		count := 0
		for j := clip.Y0; j < clip.Y1; j++ {
			val := data[j*cols+i]
			if isNaN(val) {
				continue
			}
			sum += float64(val)
			count++
		}
		x[i-clip.X0] = float64(i)
		if count == 0 {
			v[i-clip.X0] = math.NaN()
		} else {
			v[i-clip.X0] = sum / float64(count)
		}
	}
	return x, v, nil
}

// AverageYSection averages the columns of a rectangular region into a
// single vertical profile.
func AverageYSection[T Number](f *Field[T], r Rect) (y, v []float64, err error) {
	clip, err := sectionRect(f, r)
	if err != nil {
		return nil, nil, err
	}
	cols := f.Cols()
	data := f.Data()
	y = make([]float64, clip.Dy())
	v = make([]float64, clip.Dy())
	for j := clip.Y0; j < clip.Y1; j++ {
		sum := 0.0
		count := 0
		for i := clip.X0; i < clip.X1; i++ {
			val := data[j*cols+i]
			if isNaN(val) {
				continue
			}
			sum += float64(val)
			count++
		}
		y[j-clip.Y0] = float64(j)
		if count == 0 {
			v[j-clip.Y0] = math.NaN()
		} else {
			v[j-clip.Y0] = sum / float64(count)
		}
	}
	return y, v, nil
}

// StretchLUT maps raw values through the LUT index transform, returning
// the clamped table index of each value. NaN values map to -1. Useful
// for shading profile curves with the colors of the image they cut
// through.
func StretchLUT(values []float64, lut LUTParams) []int {
	last := len(lut.Table) - 1
	out := make([]int, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = -1
			continue
		}
		idx := int(math.Round(v*lut.Scale + lut.Offset))
		if idx < 0 {
			idx = 0
		} else if idx > last {
			idx = last
		}
		out[i] = idx
	}
	return out
}

package scaler

// Number is the closed set of element kinds a scalar field may hold.
type Number interface {
	~uint8 | ~uint16 | ~int8 | ~int16 | ~float32 | ~float64
}

// Field is an owned row-major 2D numeric array. Float-typed fields may
// contain NaN as a "no data" sentinel; integer-typed fields cannot.
type Field[T Number] struct {
	rows, cols int
	data       []T
}

// NewField creates a zero-filled field with the given shape.
func NewField[T Number](rows, cols int) *Field[T] {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Field[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// FieldFromSlice wraps an existing row-major slice without copying.
// The slice length must equal rows*cols.
func FieldFromSlice[T Number](rows, cols int, data []T) (*Field[T], error) {
	if len(data) != rows*cols {
		return nil, geometryErrorf("data length %d does not match shape %dx%d", len(data), rows, cols)
	}
	return &Field[T]{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (f *Field[T]) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *Field[T]) Cols() int { return f.cols }

// Data returns the underlying row-major slice.
func (f *Field[T]) Data() []T { return f.data }

// At returns the value at (row, col). No bounds check is performed
// beyond the slice's own.
func (f *Field[T]) At(row, col int) T {
	return f.data[row*f.cols+col]
}

// Set sets the value at (row, col).
func (f *Field[T]) Set(row, col int, v T) {
	f.data[row*f.cols+col] = v
}

// Fill sets every element to v.
func (f *Field[T]) Fill(v T) {
	for i := range f.data {
		f.data[i] = v
	}
}

// isNaN reports whether v is NaN. For integer element kinds this is
// always false and compiles down to a constant comparison.
func isNaN[T Number](v T) bool {
	return v != v
}

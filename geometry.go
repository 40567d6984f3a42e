package scaler

// Rect is an integer rectangle with half-open bounds [X0, X1) x [Y0, Y1),
// used for destination pixel areas.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// MakeRect creates a rectangle from two corner points, normalizing the
// corner order.
func MakeRect(x0, y0, x1, y1 int) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Dx returns the rectangle width.
func (r Rect) Dx() int { return r.X1 - r.X0 }

// Dy returns the rectangle height.
func (r Rect) Dy() int { return r.Y1 - r.Y0 }

// Empty reports whether the rectangle has zero or negative area.
func (r Rect) Empty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Intersect returns the intersection of two rectangles.
func (r Rect) Intersect(o Rect) Rect {
	if o.X0 > r.X0 {
		r.X0 = o.X0
	}
	if o.Y0 > r.Y0 {
		r.Y0 = o.Y0
	}
	if o.X1 < r.X1 {
		r.X1 = o.X1
	}
	if o.Y1 < r.Y1 {
		r.Y1 = o.Y1
	}
	return r
}

// RectF is a float rectangle describing an area in source or plot
// coordinates.
type RectF struct {
	X0, Y0, X1, Y1 float64
}

// Dx returns the rectangle width.
func (r RectF) Dx() float64 { return r.X1 - r.X0 }

// Dy returns the rectangle height.
func (r RectF) Dy() float64 { return r.Y1 - r.Y0 }

// Empty reports whether the rectangle has zero or negative area.
func (r RectF) Empty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// ToBins converts point centers to point bounds: bin edge i is the
// midpoint of x[i-1] and x[i], extrapolated symmetrically at both ends.
// A single center x0 yields exactly [x0-0.5, x0+0.5].
func ToBins(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}
	bx := make([]float64, n+1)
	if n == 1 {
		bx[0] = x[0] - 0.5
		bx[1] = x[0] + 0.5
		return bx
	}
	for i := 1; i < n; i++ {
		bx[i] = (x[i-1] + x[i]) / 2
	}
	bx[0] = x[0] - (x[1]-x[0])/2
	bx[n] = x[n-1] + (x[n-1]-x[n-2])/2
	return bx
}

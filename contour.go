package scaler

// ContourLine is one iso-line of a contour set: the polyline vertices
// in plot coordinates and the level it traces. Closed lines loop back
// to their first vertex implicitly.
type ContourLine struct {
	Level  float64
	X, Y   []float64
	Closed bool
}

// edgeKey identifies a grid edge so that the crossing point computed by
// two neighboring cells is bit-identical and segments chain exactly.
type edgeKey struct {
	horiz bool
	j, i  int
}

type contourSeg struct {
	a, b edgeKey
}

// contourGrid holds the per-level extraction state. Node positions come
// through the nodeX/nodeY accessors so orthogonal 1D axes and
// curvilinear 2D coordinate grids share the extraction code.
type contourGrid[T Number] struct {
	z            *Field[T]
	nodeX, nodeY func(j, i int) float64
	level        float64
}

// point interpolates the level crossing on a grid edge. The edge's
// canonical corner order fixes the interpolation direction.
func (g *contourGrid[T]) point(k edgeKey) (x, y float64) {
	cols := g.z.Cols()
	data := g.z.Data()
	j1, i1 := k.j, k.i+1
	if !k.horiz {
		j1, i1 = k.j+1, k.i
	}
	v0 := float64(data[k.j*cols+k.i])
	v1 := float64(data[j1*cols+i1])
	t := (g.level - v0) / (v1 - v0)
	x0, y0 := g.nodeX(k.j, k.i), g.nodeY(k.j, k.i)
	return x0 + t*(g.nodeX(j1, i1)-x0), y0 + t*(g.nodeY(j1, i1)-y0)
}

// segments runs marching squares over every cell, emitting one or two
// crossing segments per cell. Cells touching a NaN corner are skipped.
func (g *contourGrid[T]) segments() []contourSeg {
	rows, cols := g.z.Rows(), g.z.Cols()
	data := g.z.Data()
	var segs []contourSeg

	for j := 0; j < rows-1; j++ {
		for i := 0; i < cols-1; i++ {
			v00 := data[j*cols+i]
			v01 := data[j*cols+i+1]
			v11 := data[(j+1)*cols+i+1]
			v10 := data[(j+1)*cols+i]
			if isNaN(v00) || isNaN(v01) || isNaN(v11) || isNaN(v10) {
				continue
			}

			code := 0
			if float64(v00) >= g.level {
				code |= 1
			}
			if float64(v01) >= g.level {
				code |= 2
			}
			if float64(v11) >= g.level {
				code |= 4
			}
			if float64(v10) >= g.level {
				code |= 8
			}
			if code == 0 || code == 15 {
				continue
			}

			top := edgeKey{horiz: true, j: j, i: i}
			bottom := edgeKey{horiz: true, j: j + 1, i: i}
			left := edgeKey{horiz: false, j: j, i: i}
			right := edgeKey{horiz: false, j: j, i: i + 1}

			switch code {
			case 1, 14:
				segs = append(segs, contourSeg{left, top})
			case 2, 13:
				segs = append(segs, contourSeg{top, right})
			case 3, 12:
				segs = append(segs, contourSeg{left, right})
			case 4, 11:
				segs = append(segs, contourSeg{right, bottom})
			case 6, 9:
				segs = append(segs, contourSeg{top, bottom})
			case 7, 8:
				segs = append(segs, contourSeg{left, bottom})
			case 5, 10:
				// saddle, disambiguated by the cell center
				center := (float64(v00) + float64(v01) + float64(v11) + float64(v10)) / 4
				if (center >= g.level) == (code == 10) {
					segs = append(segs, contourSeg{left, top}, contourSeg{right, bottom})
				} else {
					segs = append(segs, contourSeg{top, right}, contourSeg{left, bottom})
				}
			}
		}
	}
	return segs
}

// chain links the crossing segments into polylines by matching shared
// edge keys. Lines shorter than two points are dropped.
func (g *contourGrid[T]) chain(segs []contourSeg) []ContourLine {
	// each edge key belongs to at most two segments of a level set
	adj := make(map[edgeKey][]int, len(segs)*2)
	for idx, s := range segs {
		adj[s.a] = append(adj[s.a], idx)
		adj[s.b] = append(adj[s.b], idx)
	}

	used := make([]bool, len(segs))
	next := func(key edgeKey, from int) (int, bool) {
		for _, idx := range adj[key] {
			if idx != from && !used[idx] {
				return idx, true
			}
		}
		return 0, false
	}

	var lines []ContourLine
	for start := range segs {
		if used[start] {
			continue
		}
		used[start] = true
		keys := []edgeKey{segs[start].a, segs[start].b}

		// extend forward from the tail
		closed := false
		for {
			tail := keys[len(keys)-1]
			idx, ok := next(tail, -1)
			if !ok {
				break
			}
			used[idx] = true
			k := segs[idx].a
			if k == tail {
				k = segs[idx].b
			}
			if k == keys[0] {
				closed = true
				break
			}
			keys = append(keys, k)
		}

		// extend backward from the head for open lines
		if !closed {
			for {
				head := keys[0]
				idx, ok := next(head, -1)
				if !ok {
					break
				}
				used[idx] = true
				k := segs[idx].a
				if k == head {
					k = segs[idx].b
				}
				keys = append([]edgeKey{k}, keys...)
			}
		}

		if len(keys) < 2 {
			continue
		}
		line := ContourLine{
			Level:  g.level,
			X:      make([]float64, len(keys)),
			Y:      make([]float64, len(keys)),
			Closed: closed,
		}
		for n, k := range keys {
			line.X[n], line.Y[n] = g.point(k)
		}
		lines = append(lines, line)
	}
	return lines
}

func validateContour[T Number](z *Field[T], levels []float64) error {
	if z == nil || z.Rows() < 2 || z.Cols() < 2 {
		return geometryErrorf("contour input needs at least 2x2 values")
	}
	if len(levels) == 0 {
		return configErrorf("no contour levels given")
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			return configErrorf("contour levels must be strictly increasing")
		}
	}
	return nil
}

func extractContours[T Number](z *Field[T], nodeX, nodeY func(j, i int) float64, levels []float64) []ContourLine {
	var lines []ContourLine
	for _, level := range levels {
		g := &contourGrid[T]{z: z, nodeX: nodeX, nodeY: nodeY, level: level}
		lines = append(lines, g.chain(g.segments())...)
	}
	return lines
}

// Contour extracts iso-lines of the field at each of the given levels
// using marching squares. x and y optionally carry the plot coordinates
// of the grid columns and rows; nil axes default to the array indices.
// levels must be strictly increasing. The lines of all levels are
// returned in level order.
func Contour[T Number](z *Field[T], x, y []float64, levels []float64) ([]ContourLine, error) {
	if err := validateContour(z, levels); err != nil {
		return nil, err
	}
	xs, err := axisCoords(x, z.Cols(), "x")
	if err != nil {
		return nil, err
	}
	ys, err := axisCoords(y, z.Rows(), "y")
	if err != nil {
		return nil, err
	}
	nodeX := func(_, i int) float64 { return xs[i] }
	nodeY := func(j, _ int) float64 { return ys[j] }
	return extractContours(z, nodeX, nodeY, levels), nil
}

// ContourGrid extracts iso-lines over a curvilinear grid: xc and yc are
// 2D coordinate fields sharing z's shape, giving each node's plot
// position. levels must be strictly increasing.
func ContourGrid[T Number](z *Field[T], xc, yc *Field[float64], levels []float64) ([]ContourLine, error) {
	if err := validateContour(z, levels); err != nil {
		return nil, err
	}
	if xc == nil || yc == nil {
		return nil, geometryErrorf("nil coordinate grid")
	}
	if xc.Rows() != z.Rows() || xc.Cols() != z.Cols() ||
		yc.Rows() != z.Rows() || yc.Cols() != z.Cols() {
		return nil, geometryErrorf("coordinate grids must share the value shape %dx%d", z.Rows(), z.Cols())
	}
	return extractContours(z, xc.At, yc.At, levels), nil
}

// axisCoords validates an optional coordinate axis, substituting array
// indices when the axis is nil.
func axisCoords(coords []float64, n int, axis string) ([]float64, error) {
	if coords == nil {
		out := make([]float64, n)
		for i := range out {
			out[i] = float64(i)
		}
		return out, nil
	}
	if len(coords) != n {
		return nil, geometryErrorf("%s axis has %d entries for %d grid lines", axis, len(coords), n)
	}
	return coords, nil
}

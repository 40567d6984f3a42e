package scaler

import "math"

const quadEps = 1e-9

// invBilinear locates p inside the quad (a, b, c, d) listed in
// circulation order, returning the bilinear cell parameters. ok is
// false when p lies outside the quad.
func invBilinear(p, a, b, c, d Point) (u, v float64, ok bool) {
	e := b.Sub(a)
	f := d.Sub(a)
	g := a.Sub(b).Add(c).Sub(d)
	h := p.Sub(a)

	k2 := g.Cross(f)
	k1 := e.Cross(f) + h.Cross(g)
	k0 := h.Cross(e)

	if math.Abs(k2) < quadEps {
		if math.Abs(k1) < quadEps {
			return 0, 0, false
		}
		u = -k0 / k1
	} else {
		disc := k1*k1 - 4*k0*k2
		if disc < 0 {
			return 0, 0, false
		}
		root := math.Sqrt(disc)
		u = (-k1 - root) / (2 * k2)
		if u < -quadEps || u > 1+quadEps {
			u = (-k1 + root) / (2 * k2)
		}
	}
	if u < -quadEps || u > 1+quadEps {
		return 0, 0, false
	}

	// solve for v along whichever axis is better conditioned
	dx := f.X + u*g.X
	dy := f.Y + u*g.Y
	if math.Abs(dx) >= math.Abs(dy) {
		if math.Abs(dx) < quadEps {
			return 0, 0, false
		}
		v = (h.X - u*e.X) / dx
	} else {
		v = (h.Y - u*e.Y) / dy
	}
	if v < -quadEps || v > 1+quadEps {
		return 0, 0, false
	}
	return clamp01(u), clamp01(v), true
}

// insideTri reports whether p lies inside the triangle (a, b, c),
// accepting either winding.
func insideTri(p, a, b, c Point) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func insideQuad(p, a, b, c, d Point) bool {
	return insideTri(p, a, b, c) || insideTri(p, a, c, d)
}

// drawSegment rasterizes a straight segment into the buffer with a DDA
// walk, clipped to the given rectangle. Used for mesh grid lines.
func drawSegment(pix []uint32, w int, clip Rect, p0, p1 Point, color uint32) {
	steps := int(math.Max(math.Abs(p1.X-p0.X), math.Abs(p1.Y-p0.Y))) + 1
	dx := (p1.X - p0.X) / float64(steps)
	dy := (p1.Y - p0.Y) / float64(steps)
	x, y := p0.X, p0.Y
	for i := 0; i <= steps; i++ {
		xi, yi := int(x), int(y)
		if xi >= clip.X0 && xi < clip.X1 && yi >= clip.Y0 && yi < clip.Y1 {
			pix[yi*w+xi] = color
		}
		x += dx
		y += dy
	}
}

// ScaleQuads renders a structured quadrilateral mesh. xc, yc and z all
// share the same rows x cols shape: (xc, yc) give the plot-space corner
// positions of the mesh nodes and z the node values. Each of the
// (rows-1) x (cols-1) cells is rasterized in destination space, with
// the value at every covered pixel interpolated bilinearly between the
// four corner values, or fixed per cell under WithFlatShading.
//
// The returned rectangle bounds the pixels actually covered by the
// mesh, which is usually smaller than dstRect.
func ScaleQuads[T Number](xc, yc *Field[float64], z *Field[T], srcRect RectF, dst *PixBuffer, dstRect Rect, lut LUTParams, opts ...Option) (Rect, error) {
	if xc == nil || yc == nil || z == nil || dst == nil {
		return Rect{}, geometryErrorf("nil source or destination")
	}
	if lut.Table == nil {
		return Rect{}, configErrorf("ScaleQuads requires a color table")
	}
	rows, cols := z.Rows(), z.Cols()
	if xc.Rows() != rows || xc.Cols() != cols || yc.Rows() != rows || yc.Cols() != cols {
		return Rect{}, geometryErrorf("coordinate shape %dx%d / %dx%d does not match values %dx%d",
			xc.Rows(), xc.Cols(), yc.Rows(), yc.Cols(), rows, cols)
	}
	if rows < 2 || cols < 2 {
		return Rect{}, geometryErrorf("mesh needs at least 2x2 nodes, got %dx%d", rows, cols)
	}
	if srcRect.Empty() || dstRect.Empty() {
		return Rect{}, nil
	}
	clip := clipDst(dstRect, dst.Width(), dst.Height())
	if clip.Empty() {
		return Rect{}, nil
	}

	o := applyOptions(opts)
	pixel := newPixelFunc(lut)
	mx, my := rectMapping(srcRect, dstRect)
	// plot coordinate to destination pixel
	toDest := func(px, py float64) Point {
		return Point{X: (px - mx.origin) / mx.step, Y: (py - my.origin) / my.step}
	}

	xd := xc.Data()
	yd := yc.Data()
	zd := z.Data()
	w := dst.Width()
	pix := dst.Pix()

	// written-bounds accumulator, starts inverted
	written := Rect{X0: clip.X1, Y0: clip.Y1, X1: clip.X0, Y1: clip.Y0}
	expand := func(r Rect) {
		if r.X0 < written.X0 {
			written.X0 = r.X0
		}
		if r.Y0 < written.Y0 {
			written.Y0 = r.Y0
		}
		if r.X1 > written.X1 {
			written.X1 = r.X1
		}
		if r.Y1 > written.Y1 {
			written.Y1 = r.Y1
		}
	}

	for j := 0; j < rows-1; j++ {
		for i := 0; i < cols-1; i++ {
			i00 := j*cols + i
			i01 := i00 + 1
			i10 := i00 + cols
			i11 := i10 + 1

			a := toDest(xd[i00], yd[i00])
			b := toDest(xd[i01], yd[i01])
			c := toDest(xd[i11], yd[i11])
			d := toDest(xd[i10], yd[i10])

			x0 := int(math.Floor(math.Min(math.Min(a.X, b.X), math.Min(c.X, d.X))))
			x1 := int(math.Ceil(math.Max(math.Max(a.X, b.X), math.Max(c.X, d.X)))) + 1
			y0 := int(math.Floor(math.Min(math.Min(a.Y, b.Y), math.Min(c.Y, d.Y))))
			y1 := int(math.Ceil(math.Max(math.Max(a.Y, b.Y), math.Max(c.Y, d.Y)))) + 1
			box := Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}.Intersect(clip)
			if box.Empty() {
				continue
			}

			v00 := float64(zd[i00])
			v01 := float64(zd[i01])
			v11 := float64(zd[i11])
			v10 := float64(zd[i10])

			var flatValue float64
			if o.flat {
				u, v := o.uflat, o.vflat
				flatValue = v00 + u*(v01-v00) + v*(v10-v00) + u*v*(v00-v01+v11-v10)
			}

			covered := false
			for y := box.Y0; y < box.Y1; y++ {
				row := pix[y*w : (y+1)*w]
				for x := box.X0; x < box.X1; x++ {
					p := Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
					if o.flat {
						if !insideQuad(p, a, b, c, d) {
							continue
						}
						row[x] = pixel(flatValue, true)
					} else {
						u, v, ok := invBilinear(p, a, b, c, d)
						if !ok {
							continue
						}
						val := v00 + u*(v01-v00) + v*(v10-v00) + u*v*(v00-v01+v11-v10)
						row[x] = pixel(val, true)
					}
					covered = true
				}
			}
			if covered {
				expand(box)
			}
		}
	}

	if o.gridLines {
		for j := 0; j < rows; j++ {
			for i := 0; i < cols; i++ {
				p := toDest(xd[j*cols+i], yd[j*cols+i])
				if i+1 < cols {
					q := toDest(xd[j*cols+i+1], yd[j*cols+i+1])
					drawSegment(pix, w, clip, p, q, o.gridColor)
				}
				if j+1 < rows {
					q := toDest(xd[(j+1)*cols+i], yd[(j+1)*cols+i])
					drawSegment(pix, w, clip, p, q, o.gridColor)
				}
			}
		}
	}

	if written.X1 <= written.X0 || written.Y1 <= written.Y0 {
		return Rect{}, nil
	}
	return written, nil
}

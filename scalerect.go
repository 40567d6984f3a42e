package scaler

// destToSrc is the per-axis linear mapping from destination pixel index
// to source coordinate used by the rect kernels.
type destToSrc struct {
	origin float64 // source coordinate of destination index 0
	step   float64 // source units per destination pixel
}

func (m destToSrc) at(i int) float64 {
	return m.origin + float64(i)*m.step
}

// rectMapping derives the X and Y destination-to-source mappings for an
// axis-aligned rect-to-rect projection.
func rectMapping(srcRect RectF, dstRect Rect) (mx, my destToSrc) {
	dx := srcRect.Dx() / float64(dstRect.Dx())
	dy := srcRect.Dy() / float64(dstRect.Dy())
	mx = destToSrc{origin: srcRect.X0 - float64(dstRect.X0)*dx, step: dx}
	my = destToSrc{origin: srcRect.Y0 - float64(dstRect.Y0)*dy, step: dy}
	return mx, my
}

// clipDst clips a destination rectangle to a buffer of the given size.
func clipDst(dstRect Rect, w, h int) Rect {
	return dstRect.Intersect(Rect{X0: 0, Y0: 0, X1: w, Y1: h})
}

// ScaleRect renders an axis-aligned view of the source field into the
// destination buffer. Each destination pixel of dstRect is projected
// into srcRect (source pixel coordinates), sampled with the requested
// interpolation, passed through the LUT and written as a packed pixel.
//
// Pixels projecting outside the source bounds receive the LUT background
// (transparent if unset). The returned rectangle is the area actually
// written, which may be smaller than dstRect. Zero-area source or
// destination rectangles are a silent no-op.
func ScaleRect[T Number](src *Field[T], srcRect RectF, dst *PixBuffer, dstRect Rect, lut LUTParams, interp Interpolation, opts ...Option) (Rect, error) {
	if src == nil || dst == nil {
		return Rect{}, geometryErrorf("nil source or destination")
	}
	if lut.Table == nil {
		return Rect{}, configErrorf("ScaleRect requires a color table; use ExtractRect for raw values")
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

	w := dst.Width()
	pix := dst.Pix()
	for y := clip.Y0; y < clip.Y1; y++ {
		ys := my.at(y)
		row := pix[y*w : (y+1)*w]
		for x := clip.X0; x < clip.X1; x++ {
			row[x] = pixel(sample(mx.at(x), ys))
		}
	}
	return clip, nil
}

// ExtractRect is the LUT-bypass variant of ScaleRect used for raw ROI
// extraction: sampled source values are written unmodified as float64
// into the destination field. Out-of-source-bounds pixels are NaN if
// the source is float-typed, and left untouched otherwise.
func ExtractRect[T Number](src *Field[T], srcRect RectF, dst *Field[float64], dstRect Rect, interp Interpolation, opts ...Option) (Rect, error) {
	if src == nil || dst == nil {
		return Rect{}, geometryErrorf("nil source or destination")
	}
	if srcRect.Empty() || dstRect.Empty() {
		return Rect{}, nil
	}
	clip := clipDst(dstRect, dst.Cols(), dst.Rows())
	if clip.Empty() {
		return Rect{}, nil
	}

	o := applyOptions(opts)
	mx, my := rectMapping(srcRect, dstRect)
	sample := newSampler(src, interp, o.aaSize)

	cols := dst.Cols()
	out := dst.Data()
	for y := clip.Y0; y < clip.Y1; y++ {
		ys := my.at(y)
		row := out[y*cols : (y+1)*cols]
		for x := clip.X0; x < clip.X1; x++ {
			if v, ok := sample(mx.at(x), ys); ok {
				row[x] = v
			}
		}
	}
	return clip, nil
}

// Resize resamples the whole source field to the given shape and
// returns the raw values, a convenience wrapper over ExtractRect.
func Resize[T Number](src *Field[T], rows, cols int, interp Interpolation, opts ...Option) (*Field[float64], error) {
	if src == nil {
		return nil, geometryErrorf("nil source")
	}
	if rows <= 0 || cols <= 0 {
		return nil, geometryErrorf("invalid target shape %dx%d", rows, cols)
	}
	out := NewField[float64](rows, cols)
	srcRect := RectF{X1: float64(src.Cols()), Y1: float64(src.Rows())}
	dstRect := Rect{X1: cols, Y1: rows}
	if _, err := ExtractRect(src, srcRect, out, dstRect, interp, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

package scaler

// ScaleTr renders a field placed in plot space by an affine transform.
// tr maps source pixel coordinates to plot coordinates (see
// TransformFromParams); srcRect is the plot-coordinate window shown in
// dstRect. Each destination pixel is mapped back through the inverse
// transform to its source sample position.
func ScaleTr[T Number](src *Field[T], tr Matrix, srcRect RectF, dst *PixBuffer, dstRect Rect, lut LUTParams, interp Interpolation, opts ...Option) (Rect, error) {
	if src == nil || dst == nil {
		return Rect{}, geometryErrorf("nil source or destination")
	}
	if lut.Table == nil {
		return Rect{}, configErrorf("ScaleTr requires a color table")
	}
	inv, ok := tr.Invert()
	if !ok {
		return Rect{}, domainErrorf("transform is not invertible")
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

	// The dest-to-source mapping is affine, so each row walks with a
	// constant step instead of a full matrix multiply per pixel.
	dxCol := inv.A * mx.step
	dyCol := inv.D * mx.step

	w := dst.Width()
	pix := dst.Pix()
	for y := clip.Y0; y < clip.Y1; y++ {
		py := my.at(y)
		px := mx.at(clip.X0)
		sx := inv.A*px + inv.B*py + inv.C
		sy := inv.D*px + inv.E*py + inv.F
		row := pix[y*w : (y+1)*w]
		for x := clip.X0; x < clip.X1; x++ {
			row[x] = pixel(sample(sx, sy))
			sx += dxCol
			sy += dyCol
		}
	}
	return clip, nil
}

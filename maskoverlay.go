package scaler

// MaskStyle configures the two-color overlay painted from a boolean
// mask: masked cells get one color, unmasked cells the other. Either
// side can be disabled by setting its alpha to zero; the usual masked
// image rendering leaves unmasked cells fully transparent.
type MaskStyle struct {
	Masked        RGBA
	MaskedAlpha   float64
	Unmasked      RGBA
	UnmaskedAlpha float64
}

// blendOver composites src over dst, both packed 0xAARRGGBB with
// straight (non-premultiplied) alpha.
func blendOver(dst, src uint32) uint32 {
	sa := float64(src>>24&0xFF) / 255
	if sa >= 1 {
		return src
	}
	if sa <= 0 {
		return dst
	}
	da := float64(dst>>24&0xFF) / 255
	oa := sa + da*(1-sa)
	if oa == 0 {
		return 0
	}
	blend := func(shift uint) uint32 {
		s := float64(src >> shift & 0xFF)
		d := float64(dst >> shift & 0xFF)
		return uint32((s*sa+d*da*(1-sa))/oa+0.5) << shift
	}
	return uint32(oa*255+0.5)<<24 | blend(16) | blend(8) | blend(0)
}

// OverlayMask composites the two-color rendering of a boolean field
// over an already rendered destination. mask shares the geometry of the
// image it annotates: srcRect and dstRect are the same rectangles the
// image was rendered with. Cells are sampled nearest-neighbor through a
// two-entry table independent of the base image's LUT; pixels mapping
// outside the mask are untouched.
func OverlayMask(mask *Field[uint8], srcRect RectF, dst *PixBuffer, dstRect Rect, style MaskStyle) (Rect, error) {
	if mask == nil || dst == nil {
		return Rect{}, geometryErrorf("nil mask or destination")
	}
	if style.MaskedAlpha < 0 || style.MaskedAlpha > 1 ||
		style.UnmaskedAlpha < 0 || style.UnmaskedAlpha > 1 {
		return Rect{}, configErrorf("mask alphas must be in [0, 1], got (%g, %g)",
			style.MaskedAlpha, style.UnmaskedAlpha)
	}
	if srcRect.Empty() || dstRect.Empty() {
		return Rect{}, nil
	}
	clip := clipDst(dstRect, dst.Width(), dst.Height())
	if clip.Empty() {
		return Rect{}, nil
	}

	unmasked := style.Unmasked
	unmasked.A *= style.UnmaskedAlpha
	masked := style.Masked
	masked.A *= style.MaskedAlpha
	table := [2]uint32{unmasked.PackARGB(), masked.PackARGB()}
	if table[0]&0xFF000000 == 0 && table[1]&0xFF000000 == 0 {
		return Rect{}, nil
	}

	mx, my := rectMapping(srcRect, dstRect)
	rows, cols := mask.Rows(), mask.Cols()
	data := mask.Data()
	w := dst.Width()
	pix := dst.Pix()
	for y := clip.Y0; y < clip.Y1; y++ {
		sy := my.at(y)
		if sy < 0 || sy >= float64(rows) {
			continue
		}
		base := int(sy) * cols
		row := pix[y*w : (y+1)*w]
		for x := clip.X0; x < clip.X1; x++ {
			sx := mx.at(x)
			if sx < 0 || sx >= float64(cols) {
				continue
			}
			entry := table[0]
			if data[base+int(sx)] != 0 {
				entry = table[1]
			}
			row[x] = blendOver(row[x], entry)
		}
	}
	return clip, nil
}

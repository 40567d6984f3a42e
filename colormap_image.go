package scaler

import (
	"image"

	"golang.org/x/image/draw"
)

// ColormapImage renders a colormap as a gradient strip of the given
// size, sweeping left to right (or bottom to top when vertical is set).
// The strip is sampled at full colormap resolution and rescaled with
// bilinear filtering, so narrow strips keep smooth ramps.
func ColormapImage(cmap *Colormap, width, height int, vertical bool) (*image.NRGBA, error) {
	if cmap == nil {
		return nil, configErrorf("nil colormap")
	}
	if width < 1 || height < 1 {
		return nil, geometryErrorf("invalid strip size %dx%d", width, height)
	}

	n := DefaultLUTSize
	strip := image.NewNRGBA(image.Rect(0, 0, n, 1))
	for i := 0; i < n; i++ {
		c := cmap.At(float64(i) / float64(n-1))
		p := i * 4
		strip.Pix[p+0] = uint8(clamp255(c.R*255 + 0.5))
		strip.Pix[p+1] = uint8(clamp255(c.G*255 + 0.5))
		strip.Pix[p+2] = uint8(clamp255(c.B*255 + 0.5))
		strip.Pix[p+3] = uint8(clamp255(c.A*255 + 0.5))
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	if vertical {
		// rotate the strip so the sweep runs bottom to top
		rotated := image.NewNRGBA(image.Rect(0, 0, 1, n))
		for i := 0; i < n; i++ {
			copy(rotated.Pix[(n-1-i)*4:(n-1-i)*4+4], strip.Pix[i*4:i*4+4])
		}
		draw.ApproxBiLinear.Scale(out, out.Bounds(), rotated, rotated.Bounds(), draw.Src, nil)
	} else {
		draw.ApproxBiLinear.Scale(out, out.Bounds(), strip, strip.Bounds(), draw.Src, nil)
	}
	return out, nil
}

// ColormapIcon renders the named colormap as a small horizontal
// gradient, falling back to jet for unknown names like GetColormap.
func ColormapIcon(name string, width, height int) (*image.NRGBA, error) {
	return ColormapImage(GetColormap(name), width, height, false)
}

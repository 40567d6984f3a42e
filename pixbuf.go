package scaler

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// PixBuffer is a caller-owned destination buffer of packed 0xAARRGGBB
// pixels. It is reused across frames and reallocated only when the
// viewport size changes.
type PixBuffer struct {
	width  int
	height int
	pix    []uint32
}

// NewPixBuffer creates a new pixel buffer with the given dimensions.
func NewPixBuffer(width, height int) *PixBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixBuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the width of the buffer.
func (p *PixBuffer) Width() int { return p.width }

// Height returns the height of the buffer.
func (p *PixBuffer) Height() int { return p.height }

// Pix returns the raw packed pixel data.
func (p *PixBuffer) Pix() []uint32 { return p.pix }

// Resize reallocates the buffer if the dimensions changed. Existing
// pixel contents are discarded on reallocation.
func (p *PixBuffer) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	Logger().Debug("scaler: pixel buffer reallocated",
		"old_width", p.width, "old_height", p.height,
		"width", width, "height", height)
	p.width = width
	p.height = height
	p.pix = make([]uint32, width*height)
}

// Clear fills the entire buffer with the given packed pixel.
func (p *PixBuffer) Clear(pixel uint32) {
	for i := range p.pix {
		p.pix[i] = pixel
	}
}

// ClearRect fills a sub-rectangle (clipped to the buffer) with the given
// packed pixel.
func (p *PixBuffer) ClearRect(r Rect, pixel uint32) {
	r = r.Intersect(Rect{X0: 0, Y0: 0, X1: p.width, Y1: p.height})
	if r.Empty() {
		return
	}
	for y := r.Y0; y < r.Y1; y++ {
		row := p.pix[y*p.width : (y+1)*p.width]
		for x := r.X0; x < r.X1; x++ {
			row[x] = pixel
		}
	}
}

// SetPixel sets a single packed pixel. Out-of-bounds writes are ignored.
func (p *PixBuffer) SetPixel(x, y int, pixel uint32) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = pixel
}

// GetPixel returns a single packed pixel, or 0 outside the buffer.
func (p *PixBuffer) GetPixel(x, y int) uint32 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.pix[y*p.width+x]
}

// ToImage converts the buffer to an image.NRGBA.
func (p *PixBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i, v := range p.pix {
		img.Pix[i*4+0] = uint8(v >> 16 & 0xFF)
		img.Pix[i*4+1] = uint8(v >> 8 & 0xFF)
		img.Pix[i*4+2] = uint8(v & 0xFF)
		img.Pix[i*4+3] = uint8(v >> 24 & 0xFF)
	}
	return img
}

// SavePNG saves the buffer to a PNG file.
func (p *PixBuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *PixBuffer) At(x, y int) color.Color {
	return UnpackARGB(p.GetPixel(x, y)).Color()
}

// Bounds implements the image.Image interface.
func (p *PixBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *PixBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}

package sweep

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a rectangular buffer of premultiplied floating-point
// colors. The rasterizer accumulates coverage-scaled color into it
// additively; quantization to 8-bit channels happens only on output.
type Pixmap struct {
	width  int
	height int
	data   []RGBA // premultiplied, row-major
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]RGBA, width*height),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Pixel returns the premultiplied color of a single pixel.
func (p *Pixmap) Pixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	return p.data[y*p.width+x]
}

// SetPixel overwrites the premultiplied color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.data[y*p.width+x] = c
}

// AddPixel accumulates a premultiplied color into a pixel. A single
// pixel may receive contributions from several strips and rows, so
// coverage is added, never overwritten.
func (p *Pixmap) AddPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := y*p.width + x
	p.data[i] = p.data[i].Add(c)
}

// Image quantizes the pixmap to an 8-bit non-premultiplied image.
// Each pixel is unpremultiplied, scaled to [0, 255], and rounded.
func (p *Pixmap) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i, c := range p.data {
		c = c.Unpremultiply()
		img.Pix[i*4+0] = uint8(clamp255(c.R*255 + 0.5))
		img.Pix[i*4+1] = uint8(clamp255(c.G*255 + 0.5))
		img.Pix[i*4+2] = uint8(clamp255(c.B*255 + 0.5))
		img.Pix[i*4+3] = uint8(clamp255(c.A*255 + 0.5))
	}
	return img
}

// ImageDithered quantizes the pixmap with per-channel dithering to
// reduce banding in smooth gradients. The noise generator is seeded
// once per call, so the output is deterministic for a given pixmap.
func (p *Pixmap) ImageDithered() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	d := newDitherer()
	for i, c := range p.data {
		c = c.Unpremultiply()
		img.Pix[i*4+0] = d.dither(c.R)
		img.Pix[i*4+1] = d.dither(c.G)
		img.Pix[i*4+2] = d.dither(c.B)
		img.Pix[i*4+3] = d.dither(c.A)
	}
	return img
}

// SavePNG saves the pixmap to a PNG file using the standard encoder.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.Image())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.Pixel(x, y).Unpremultiply().Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

package sweep

import (
	"image"
	"testing"
)

// TestAddPixelAccumulates verifies coverage contributions add instead
// of overwriting.
func TestAddPixelAccumulates(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.AddPixel(1, 1, RGBA{R: 0.25, A: 0.25})
	pm.AddPixel(1, 1, RGBA{R: 0.25, A: 0.25})

	got := pm.Pixel(1, 1)
	want := RGBA{R: 0.5, A: 0.5}
	if !colorsClose(got, want, 1e-12) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestAddPixelOutOfBounds verifies out-of-bounds writes are silently
// ignored.
func TestAddPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(2, 2)
	for _, c := range []struct{ x, y int }{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		pm.AddPixel(c.x, c.y, White.Premultiply())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := pm.Pixel(x, y); got != Transparent {
				t.Fatalf("pixel (%d,%d) = %v, want transparent", x, y, got)
			}
		}
	}
}

// TestImageQuantization verifies unpremultiplication and rounding at
// 8-bit output.
func TestImageQuantization(t *testing.T) {
	pm := NewPixmap(1, 1)
	pm.SetPixel(0, 0, RGBA{R: 0.5, A: 0.5}) // premultiplied 50% red

	img := pm.Image()
	want := [4]uint8{255, 0, 0, 128}
	got := [4]uint8{img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3]}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestImageClampsOverflow verifies accumulated values above 1 clamp at
// quantization rather than wrapping.
func TestImageClampsOverflow(t *testing.T) {
	pm := NewPixmap(1, 1)
	pm.SetPixel(0, 0, RGBA{R: 1.5, G: -0.5, A: 1})

	img := pm.Image()
	if img.Pix[0] != 255 || img.Pix[1] != 0 {
		t.Errorf("got R=%d G=%d, want R=255 G=0", img.Pix[0], img.Pix[1])
	}
}

// TestPixmapImageInterface verifies Pixmap satisfies image.Image.
func TestPixmapImageInterface(t *testing.T) {
	var _ image.Image = NewPixmap(1, 1)

	pm := NewPixmap(3, 2)
	if got := pm.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v, want (0,0)-(3,2)", got)
	}
}

package banyan

import (
	"fmt"
	"image"
)

// Framebuffer is the CPU color buffer the software rasterizer paints into.
// Pixels are stored as straight-alpha RGBA bytes, origin at the top-left,
// ready to hand to (*ebiten.Image).WritePixels each frame.
type Framebuffer struct {
	w, h int
	pix  []uint8
}

// NewFramebuffer creates a w×h framebuffer cleared to transparent black.
func NewFramebuffer(w, h int) *Framebuffer {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("banyan: NewFramebuffer: dimensions must be positive, got %dx%d", w, h))
	}
	return &Framebuffer{w: w, h: h, pix: make([]uint8, 4*w*h)}
}

// Size returns the framebuffer dimensions.
func (f *Framebuffer) Size() (w, h int) {
	return f.w, f.h
}

// Clear fills the framebuffer with the given color.
func (f *Framebuffer) Clear(c Color) {
	r, g, b, a := c.toBytes()
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i] = r
		f.pix[i+1] = g
		f.pix[i+2] = b
		f.pix[i+3] = a
	}
}

// SetPixel writes a color at (x, y). Out-of-range writes are dropped.
func (f *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	i := 4 * (y*f.w + x)
	f.pix[i], f.pix[i+1], f.pix[i+2], f.pix[i+3] = c.toBytes()
}

// At returns the color at (x, y). Out-of-range reads are transparent black.
func (f *Framebuffer) At(x, y int) Color {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return Color{}
	}
	i := 4 * (y*f.w + x)
	return Color{
		R: float64(f.pix[i]) / 255,
		G: float64(f.pix[i+1]) / 255,
		B: float64(f.pix[i+2]) / 255,
		A: float64(f.pix[i+3]) / 255,
	}
}

// Pix returns the raw RGBA byte slice. The slice is owned by the
// framebuffer and MUST NOT be resized; it may be handed directly to
// (*ebiten.Image).WritePixels.
func (f *Framebuffer) Pix() []uint8 {
	return f.pix
}

// ToImage copies the framebuffer into a new NRGBA image, for screenshots.
func (f *Framebuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.w, f.h))
	copy(img.Pix, f.pix)
	return img
}

// toBytes converts a Color to clamped 8-bit channels.
func (c Color) toBytes() (r, g, b, a uint8) {
	return clampByte(c.R), clampByte(c.G), clampByte(c.B), clampByte(c.A)
}

// clampByte converts a [0, 1] component to a byte, clamping out-of-range
// values instead of wrapping.
func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

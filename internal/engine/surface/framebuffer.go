// Package surface provides an in-memory drawing surface for headless rendering.
package surface

import (
	"image"

	"github.com/Faultbox/voxelspace/internal/terrain"
)

// Framebuffer is a software render target backed by an RGBA image.
// Lines outside the image are clipped.
type Framebuffer struct {
	img      *image.RGBA
	presents int
}

// NewFramebuffer allocates a framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int { return f.img.Rect.Dx() }

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int { return f.img.Rect.Dy() }

// DrawVerticalLine fills column x from yTop to yBottom inclusive.
func (f *Framebuffer) DrawVerticalLine(x, yTop, yBottom int, c terrain.RGB) {
	if x < 0 || x >= f.Width() {
		return
	}
	yTop = max(yTop, 0)
	yBottom = min(yBottom, f.Height()-1)

	pos := f.img.PixOffset(x, yTop)
	for y := yTop; y <= yBottom; y++ {
		f.img.Pix[pos+0] = c.R
		f.img.Pix[pos+1] = c.G
		f.img.Pix[pos+2] = c.B
		f.img.Pix[pos+3] = 255
		pos += f.img.Stride
	}
}

// Clear fills every pixel with c.
func (f *Framebuffer) Clear(c terrain.RGB) {
	pix := f.img.Pix
	if len(pix) == 0 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, 255
	// Double the filled prefix until the buffer is full.
	for n := 4; n < len(pix); n *= 2 {
		copy(pix[n:], pix[:n])
	}
}

// Present counts the frame; the image is always up to date.
func (f *Framebuffer) Present() error {
	f.presents++
	return nil
}

// Presents returns the number of frames presented.
func (f *Framebuffer) Presents() int { return f.presents }

// At returns the colour at (x, y).
func (f *Framebuffer) At(x, y int) terrain.RGB {
	c := f.img.RGBAAt(x, y)
	return terrain.RGB{R: c.R, G: c.G, B: c.B}
}

// Image returns the backing image. It is shared, not copied.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

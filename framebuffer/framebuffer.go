// Package framebuffer implements drawing into a packed 2-bit-per-pixel
// display buffer.
//
// The buffer stores four horizontally adjacent pixels per byte. The leftmost
// pixel of each group occupies the least significant bit pair:
//
// bits |
// 0-1  | pixel 0 (leftmost)
// 2-3  | pixel 1
// 4-5  | pixel 2
// 6-7  | pixel 3
//
// Shape primitives resolve their colors through a DrawColors register that is
// owned by the host. Nothing is clipped: drawing outside of the Width x Height
// grid is the caller's responsibility.
package framebuffer

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
)

const (
	Width  = 160
	Height = 160

	// Size is the number of bytes needed to hold Width*Height pixels.
	Size = (Width*Height + 3) >> 2
)

type Framebuffer struct {
	drawColors *DrawColors
	pix        []byte

	// Face is used by Text.
	Face font.Face
}

// New binds the engine to host owned storage. Neither the register nor the
// pixel buffer are copied; pix must be at least Size bytes long.
func New(drawColors *DrawColors, pix []byte) *Framebuffer {
	return &Framebuffer{
		drawColors: drawColors,
		pix:        pix,
		Face:       inconsolata.Regular8x16,
	}
}

// Bytes returns the bound pixel storage.
func (fb *Framebuffer) Bytes() []byte { return fb.pix }

// DrawColors returns the current register value.
func (fb *Framebuffer) DrawColors() DrawColors { return *fb.drawColors }

// Point stores a 2-bit color at x, y without touching the other three pixels
// sharing the same byte.
func (fb *Framebuffer) Point(color uint8, x, y int) {
	assertInBounds(x, y)
	idx := Width*y + x
	shift := uint(idx&0x3) << 1
	mask := uint8(0x3) << shift
	i := idx >> 2
	fb.pix[i] = (color&0x3)<<shift | fb.pix[i]&^mask
}

// Pixel reads back the stored color at x, y.
func (fb *Framebuffer) Pixel(x, y int) uint8 {
	assertInBounds(x, y)
	idx := Width*y + x
	shift := uint(idx&0x3) << 1
	return (fb.pix[idx>>2] >> shift) & 0x3
}

// Clear sets every pixel to color.
func (fb *Framebuffer) Clear(color uint8) {
	c := color & 0x3
	b := c | c<<2 | c<<4 | c<<6
	for i, max := 0, len(fb.pix); i < max; i++ {
		fb.pix[i] = b
	}
}

// Rect fills [x, x+width) x [y, y+height) with draw color 0. A transparent
// draw color leaves the buffer untouched.
func (fb *Framebuffer) Rect(x, y, width, height int) {
	// TODO clipping against Width/Height
	fill, ok := fb.drawColors.Resolve(0)
	if !ok {
		return
	}
	fb.fillRect(fill, x, y, width, height)
}

func (fb *Framebuffer) fillRect(color uint8, x, y, width, height int) {
	for yy := y; yy < y+height; yy++ {
		for xx := x; xx < x+width; xx++ {
			fb.Point(color, xx, yy)
		}
	}
}

// StrokeRect outlines [x, x+width) x [y, y+height) with draw color 1.
func (fb *Framebuffer) StrokeRect(x, y, width, height int) {
	stroke, ok := fb.drawColors.Resolve(1)
	if !ok || width <= 0 || height <= 0 {
		return
	}
	fb.hline(stroke, x, y, width)
	fb.hline(stroke, x, y+height-1, width)
	fb.vline(stroke, x, y, height)
	fb.vline(stroke, x+width-1, y, height)
}

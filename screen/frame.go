package screen

import (
	"image"
	"image/color"

	"github.com/32bitkid/w4/framebuffer"
)

// Frame presents a packed framebuffer as an image.PalettedImage. Pixels are
// read from the framebuffer on every access, so a Frame always reflects the
// current contents.
type Frame struct {
	fb      *framebuffer.Framebuffer
	palette Palette
}

var _ image.PalettedImage = (*Frame)(nil)

func NewFrame(fb *framebuffer.Framebuffer, palette Palette) *Frame {
	return &Frame{fb: fb, palette: palette}
}

func (f *Frame) SetPalette(palette Palette) { f.palette = palette }

func (f *Frame) ColorModel() color.Model { return f.palette.colorPalette() }

func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, framebuffer.Width, framebuffer.Height)
}

func (f *Frame) ColorIndexAt(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}.In(f.Bounds())) {
		return 0
	}
	return f.fb.Pixel(x, y)
}

func (f *Frame) At(x, y int) color.Color {
	return f.palette[f.ColorIndexAt(x, y)]
}

// Image copies the current frame into an *image.Paletted.
func (f *Frame) Image() *image.Paletted {
	img := image.NewPaletted(f.Bounds(), f.palette.colorPalette())
	for y := 0; y < framebuffer.Height; y++ {
		offset := y * img.Stride
		for x := 0; x < framebuffer.Width; x++ {
			img.Pix[offset+x] = f.fb.Pixel(x, y)
		}
	}
	return img
}

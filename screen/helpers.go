package screen

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// rgb24Color is a 0xRRGGBB value as stored in the palette registers.
type rgb24Color uint32

func (rgb24 rgb24Color) channels() (r, g, b uint8) {
	return uint8(rgb24 >> 16), uint8(rgb24 >> 8), uint8(rgb24)
}

func (rgb24 rgb24Color) RGBA() (r, g, b, a uint32) {
	rb, gb, bb := rgb24.channels()
	r = uint32(rb)<<8 | uint32(rb)
	g = uint32(gb)<<8 | uint32(gb)
	b = uint32(bb)<<8 | uint32(bb)
	a = 0xFFFF
	return
}

func (rgb24 rgb24Color) colorful() clr.Color {
	r, g, b := rgb24.channels()
	return clr.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// toColorful converts any color to go-colorful's representation, taking the
// exact route for palette register colors.
func toColorful(c color.Color) clr.Color {
	switch c := c.(type) {
	case rgb24Color:
		return c.colorful()
	case clr.Color:
		return c
	}
	cc, _ := clr.MakeColor(c)
	return cc
}

func isGray(c clr.Color) bool { return c.R == c.G && c.G == c.B }

// rgbMix blends in Lab space, falling back to RGB when either side is a gray
// since Lab hue drifts on neutrals.
func rgbMix(c1, c2 color.Color, t float64) color.Color {
	a, b := toColorful(c1), toColorful(c2)
	if isGray(a) || isGray(b) {
		return a.BlendRgb(b, t).Clamped()
	}
	return a.BlendLab(b, t).Clamped()
}

func shiftLuminance(src color.Color, p float64) color.Color {
	h, c, l := toColorful(src).Hcl()
	return clr.Hcl(h, c, l+p).Clamped()
}

func lighten(src color.Color, p float64) color.Color { return shiftLuminance(src, p) }

func darken(src color.Color, p float64) color.Color { return shiftLuminance(src, -p) }

func clamp(i int, min int, max int) int {
	if i < min {
		return min
	}
	if i > max {
		return max
	}
	return i
}

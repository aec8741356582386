package screen

import (
	"image"
	"image/color"
)

var (
	red   = color.RGBA{R: 0xFF, G: 0x99, B: 0x99, A: 0xff}
	green = color.RGBA{G: 0xFF, R: 0x99, B: 0x99, A: 0xff}
	blue  = color.RGBA{B: 0xFF, R: 0x99, G: 0x99, A: 0xff}
)

// CRTScale is the size of the block each source pixel becomes.
const CRTScale = 6

// Per sub-pixel column: negative values bleed in from the left neighbour,
// positive values bleed out toward the right neighbour.
var crtBleed = [CRTScale]float64{-3.0 / 6.0, -2.0 / 6.0, -1.0 / 6.0, 0, 1.0 / 6.0, 2.0 / 6.0}

// Per sub-pixel row.
var crtScanline = [CRTScale]float64{0.7, 0.2, 0, 0, 0.1, 0.4}

// Shadow mask phosphors; odd rows are offset.
var crtMask = [2][CRTScale]color.Color{
	{red, red, green, green, blue, blue},
	{green, blue, blue, red, red, green},
}

func rgbMul(a, b color.Color) color.Color {
	r1, g1, b1, _ := a.RGBA()
	r2, g2, b2, _ := b.RGBA()
	return color.RGBA{
		R: uint8((r1 * r2 / 0xffff) >> 8),
		G: uint8((g1 * g2 / 0xffff) >> 8),
		B: uint8((b1 * b2 / 0xffff) >> 8),
		A: 0xFF,
	}
}

func crtPixel(lc, c, rc color.Color, ix, iy int) color.Color {
	co := c

	switch t := crtBleed[ix]; {
	case t < 0:
		co = rgbMix(lc, c, 1+t)
	case t > 0:
		co = rgbMix(c, rc, t)
	}

	if p := crtScanline[iy]; p > 0 {
		co = darken(co, p)
	}

	return rgbMul(co, crtMask[iy%2][ix])
}

// RenderToCRT renders src at CRTScale times its size with horizontal bleed,
// scanlines and a shadow mask.
func RenderToCRT(src image.Image) image.Image {
	srcRect := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, srcRect.Dx()*CRTScale, srcRect.Dy()*CRTScale))
	for sy, dy := srcRect.Min.Y, 0; sy < srcRect.Max.Y; sy, dy = sy+1, dy+CRTScale {
		for sx, dx := srcRect.Min.X, 0; sx < srcRect.Max.X; sx, dx = sx+1, dx+CRTScale {
			lc := src.At(clamp(sx-1, srcRect.Min.X, srcRect.Max.X-1), sy)
			c := src.At(sx, sy)
			rc := src.At(clamp(sx+1, srcRect.Min.X, srcRect.Max.X-1), sy)
			for i := 0; i < CRTScale*CRTScale; i++ {
				ix, iy := i%CRTScale, i/CRTScale
				dst.Set(dx+ix, dy+iy, crtPixel(lc, c, rc, ix, iy))
			}
		}
	}

	return dst
}

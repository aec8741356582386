package screen

import (
	"image/color"
)

// Palette maps the four stored colors to display colors.
type Palette [4]color.Color

// DefaultPalette is the palette a console starts up with.
var DefaultPalette = PaletteFromRGB([4]uint32{
	0xe0f8cf,
	0x86c06c,
	0x306850,
	0x071821,
})

// PaletteFromRGB builds a palette from 0xRRGGBB values, the layout used by
// the console's palette registers.
func PaletteFromRGB(rgb [4]uint32) Palette {
	var p Palette
	for i, c := range rgb {
		p[i] = rgb24Color(c & 0xFFFFFF)
	}
	return p
}

func (p Palette) colorPalette() color.Palette {
	return color.Palette{p[0], p[1], p[2], p[3]}
}

// Lighten returns a copy of the palette with every entry lightened by amount
// in HCL space.
func (p Palette) Lighten(amount float64) Palette {
	for i, c := range p {
		p[i] = lighten(c, amount)
	}
	return p
}

// Darken returns a copy of the palette with every entry darkened by amount
// in HCL space.
func (p Palette) Darken(amount float64) Palette {
	for i, c := range p {
		p[i] = darken(c, amount)
	}
	return p
}

// Mix blends each entry toward the matching entry of other.
func (p Palette) Mix(other Palette, t float64) Palette {
	for i := range p {
		p[i] = rgbMix(p[i], other[i], t)
	}
	return p
}

package framebuffer

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Text draws s with the top-left of the first glyph cell at x, y. Glyph
// pixels use draw color 0 and the rest of each cell uses draw color 1. A
// newline returns to x and moves down one line.
//
// Each cell is advance wide and one line tall. Glyph masks reaching past
// their cell are cut off so neighbouring cells never overlap.
func (fb *Framebuffer) Text(s string, x, y int) {
	dc := *fb.drawColors
	fg, hasFg := dc.Resolve(0)
	bg, hasBg := dc.Resolve(1)
	if !hasFg && !hasBg {
		return
	}

	metrics := fb.Face.Metrics()
	lineHeight, ascent := metrics.Height.Ceil(), metrics.Ascent.Ceil()

	cx, cy := x, y
	for _, r := range s {
		if r == '\n' {
			cx, cy = x, cy+lineHeight
			continue
		}

		dr, mask, mp, advance, ok := fb.Face.Glyph(fixed.P(cx, cy+ascent), r)
		if !ok {
			continue
		}

		cell := image.Rect(cx, cy, cx+advance.Round(), cy+lineHeight)
		for py := cell.Min.Y; py < cell.Max.Y; py++ {
			for px := cell.Min.X; px < cell.Max.X; px++ {
				set := false
				if p := (image.Point{X: px, Y: py}); p.In(dr) {
					m := mp.Add(p.Sub(dr.Min))
					_, _, _, a := mask.At(m.X, m.Y).RGBA()
					set = a >= 0x8000
				}
				switch {
				case set && hasFg:
					fb.Point(fg, px, py)
				case !set && hasBg:
					fb.Point(bg, px, py)
				}
			}
		}

		cx += advance.Round()
	}
}

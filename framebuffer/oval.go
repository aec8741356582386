package framebuffer

// Oval draws the ellipse inscribed in [x, x+width) x [y, y+height). Interior
// pixels use draw color 0, pixels on the edge use draw color 1. Either may be
// transparent.
func (fb *Framebuffer) Oval(x, y, width, height int) {
	dc := *fb.drawColors
	fill, hasFill := dc.Resolve(0)
	stroke, hasStroke := dc.Resolve(1)
	if (!hasFill && !hasStroke) || width <= 0 || height <= 0 {
		return
	}

	e := ellipse{x: x, y: y, w: width, h: height}
	for yy := y; yy < y+height; yy++ {
		for xx := x; xx < x+width; xx++ {
			if !e.inside(xx, yy) {
				continue
			}
			edge := !e.inside(xx-1, yy) || !e.inside(xx+1, yy) ||
				!e.inside(xx, yy-1) || !e.inside(xx, yy+1)
			switch {
			case edge && hasStroke:
				fb.Point(stroke, xx, yy)
			case !edge && hasFill:
				fb.Point(fill, xx, yy)
			}
		}
	}
}

type ellipse struct{ x, y, w, h int }

// inside tests the center of pixel px, py against the ellipse equation,
// scaled by 2 to stay in integers:
//
//  ((2px+1) - (2x+w))^2 * h^2 + ((2py+1) - (2y+h))^2 * w^2 <= w^2 * h^2
func (e ellipse) inside(px, py int) bool {
	if px < e.x || px >= e.x+e.w || py < e.y || py >= e.y+e.h {
		return false
	}
	dx := int64(2*px + 1 - (2*e.x + e.w))
	dy := int64(2*py + 1 - (2*e.y + e.h))
	w2, h2 := int64(e.w)*int64(e.w), int64(e.h)*int64(e.h)
	return dx*dx*h2+dy*dy*w2 <= w2*h2
}

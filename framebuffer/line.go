package framebuffer

// HLine draws length pixels to the right of x, y with draw color 0.
func (fb *Framebuffer) HLine(x, y, length int) {
	if c, ok := fb.drawColors.Resolve(0); ok {
		fb.hline(c, x, y, length)
	}
}

// VLine draws length pixels downwards from x, y with draw color 0.
func (fb *Framebuffer) VLine(x, y, length int) {
	if c, ok := fb.drawColors.Resolve(0); ok {
		fb.vline(c, x, y, length)
	}
}

func (fb *Framebuffer) hline(color uint8, x, y, length int) {
	for xx := x; xx < x+length; xx++ {
		fb.Point(color, xx, y)
	}
}

func (fb *Framebuffer) vline(color uint8, x, y, length int) {
	for yy := y; yy < y+length; yy++ {
		fb.Point(color, x, yy)
	}
}

// Line draws from x1, y1 to x2, y2 inclusive with draw color 0.
func (fb *Framebuffer) Line(x1, y1, x2, y2 int) {
	color, ok := fb.drawColors.Resolve(0)
	if !ok {
		return
	}

	switch {
	case x1 == x2:
		swapIf(&y1, &y2, y1 > y2)
		fb.vline(color, x1, y1, y2-y1+1)
	case y1 == y2:
		swapIf(&x1, &x2, x1 > x2)
		fb.hline(color, x1, y1, x2-x1+1)
	default:
		// bresenham
		dx, dy := x2-x1, y2-y1
		stepX, stepY := sign(dx), sign(dy)
		dx, dy = absInt(dx)<<1, absInt(dy)<<1

		fb.Point(color, x1, y1)

		if dx > dy {
			fraction := dy - (dx >> 1)
			for x1 != x2 {
				if fraction >= 0 {
					y1 += stepY
					fraction -= dx
				}
				x1 += stepX
				fraction += dy
				fb.Point(color, x1, y1)
			}
		} else {
			fraction := dx - (dy >> 1)
			for y1 != y2 {
				if fraction >= 0 {
					x1 += stepX
					fraction -= dy
				}
				y1 += stepY
				fraction += dx
				fb.Point(color, x1, y1)
			}
		}
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func swapIf(a, b *int, cond bool) {
	if cond {
		*a, *b = *b, *a
	}
}

package framebuffer

import "github.com/32bitkid/w4/sprite"

type BlitFlags uint32

const (
	// TwoBPP is kept for flag compatibility with packed sprite data; the
	// depth of a decoded sprite is carried by the sprite itself.
	TwoBPP BlitFlags = 1 << iota
	FlipX
	FlipY
	Rotate
)

// Blit draws the whole sprite with its top-left corner at x, y.
func (fb *Framebuffer) Blit(s *sprite.Sprite, x, y int, flags BlitFlags) {
	fb.BlitSub(s, x, y, s.Width, s.Height, 0, 0, flags)
}

// BlitSub draws the width x height region of s starting at srcX, srcY. A
// sprite pixel with palette index i is drawn with draw color i, and skipped
// when that slot is transparent. Rotate turns the region 90 degrees
// anticlockwise.
func (fb *Framebuffer) BlitSub(s *sprite.Sprite, x, y, width, height, srcX, srcY int, flags BlitFlags) {
	dc := *fb.drawColors

	flipX := flags&FlipX != 0
	flipY := flags&FlipY != 0
	rotate := flags&Rotate != 0
	if rotate {
		flipX = !flipX
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			tx, ty := x+col, y+row
			if rotate {
				tx, ty = x+row, y+col
			}

			sx, sy := srcX+col, srcY+row
			if flipX {
				sx = srcX + width - col - 1
			}
			if flipY {
				sy = srcY + height - row - 1
			}

			if color, ok := dc.Resolve(int(s.At(sx, sy))); ok {
				fb.Point(color, tx, ty)
			}
		}
	}
}

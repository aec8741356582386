package screen

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale enlarges src by an integer factor without filtering.
func Scale(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	sr := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sr.Dx()*factor, sr.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sr, draw.Src, nil)
	return dst
}

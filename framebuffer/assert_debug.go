//go:build w4debug
// +build w4debug

package framebuffer

import "fmt"

func assertInBounds(x, y int) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		panic(fmt.Sprintf("framebuffer: point (%d, %d) outside of %dx%d", x, y, Width, Height))
	}
}

package framebuffer

import "testing"

func cellCount(fb *Framebuffer, x, y, w, h int, c uint8) int {
	n := 0
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if fb.Pixel(xx, yy) == c {
				n++
			}
		}
	}
	return n
}

func TestTextCell(t *testing.T) {
	fb, _, _ := newTestFramebuffer(0x0032)
	fb.Text("A", 8, 8)

	fg := cellCount(fb, 8, 8, 8, 16, 1)
	bg := cellCount(fb, 8, 8, 8, 16, 2)
	if fg == 0 {
		t.Error("no glyph pixels drawn")
	}
	if fg+bg != 8*16 {
		t.Errorf("expected the whole cell to be drawn, got %d pixels", fg+bg)
	}
	if n := countColor(fb, 0); n != Width*Height-8*16 {
		t.Errorf("text drew outside of its cell")
	}
}

func TestTextTransparentBackground(t *testing.T) {
	fb, _, _ := newTestFramebuffer(0x0004)
	fb.Text(" ", 0, 0)
	if n := countColor(fb, 0); n != Width*Height {
		t.Errorf("space with transparent background drew %d pixels", Width*Height-n)
	}
}

func TestTextNewline(t *testing.T) {
	fb, _, _ := newTestFramebuffer(0x0004)
	fb.Text("\nH", 4, 0)

	if cellCount(fb, 4, 0, 8, 16, 3) != 0 {
		t.Error("first line should be empty")
	}
	if cellCount(fb, 4, 16, 8, 16, 3) == 0 {
		t.Error("second line should hold a glyph")
	}
}

func TestTextCellsDoNotOverlap(t *testing.T) {
	fb, _, _ := newTestFramebuffer(0x0032)
	fb.Text("AA\nAA", 0, 0)

	if n := countColor(fb, 0); n != Width*Height-4*8*16 {
		t.Errorf("expected four 8x16 cells, %d pixels drawn", Width*Height-n)
	}
	for i := 0; i < 32; i++ {
		if fb.Pixel(16, i) != 0 || fb.Pixel(i, 32) != 0 {
			t.Fatalf("glyph spilled past its cell at %d", i)
		}
	}

	// every cell holds the same glyph, untouched by its neighbours
	for _, origin := range [][2]int{{8, 0}, {0, 16}, {8, 16}} {
		for y := 0; y < 16; y++ {
			for x := 0; x < 8; x++ {
				want := fb.Pixel(x, y)
				if got := fb.Pixel(origin[0]+x, origin[1]+y); got != want {
					t.Fatalf("cell %v differs at (%d, %d): expected(%d) != actual(%d)", origin, x, y, want, got)
				}
			}
		}
	}
}

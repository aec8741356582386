package framebuffer

import (
	"testing"

	"github.com/32bitkid/w4/sprite"
)

func mustDecode(t *testing.T, b []byte, width, height int, depth sprite.Depth) *sprite.Sprite {
	t.Helper()
	s, err := sprite.Decode(b, width, height, depth)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func row(fb *Framebuffer, x, y, n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = fb.Pixel(x+i, y)
	}
	return out
}

func equalRow(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBlit1BPPTransparency(t *testing.T) {
	fb, _, _ := newTestFramebuffer(0x0040)
	fb.Clear(1)
	fb.Blit(mustDecode(t, []byte{0x81}, 8, 1, sprite.OneBPP), 0, 0, 0)

	want := []uint8{3, 1, 1, 1, 1, 1, 1, 3}
	if got := row(fb, 0, 0, 8); !equalRow(got, want) {
		t.Errorf("expected(%v) != actual(%v)", want, got)
	}
}

func TestBlit2BPP(t *testing.T) {
	s := mustDecode(t, []byte{0x1B}, 4, 1, sprite.TwoBPP)

	cases := []struct {
		name  string
		flags BlitFlags
		want  []uint8
	}{
		{"plain", TwoBPP, []uint8{0, 1, 2, 3}},
		{"flip x", TwoBPP | FlipX, []uint8{3, 2, 1, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fb, _, _ := newTestFramebuffer(0x4321)
			fb.Clear(3)
			fb.Blit(s, 4, 2, c.flags)
			if got := row(fb, 4, 2, 4); !equalRow(got, c.want) {
				t.Errorf("expected(%v) != actual(%v)", c.want, got)
			}
		})
	}
}

func TestBlitFlipY(t *testing.T) {
	fb, _, _ := newTestFramebuffer(0x0021)
	fb.Clear(3)
	fb.Blit(mustDecode(t, []byte{0xFF, 0x00}, 8, 2, sprite.OneBPP), 0, 0, FlipY)

	if got := row(fb, 0, 0, 8); !equalRow(got, []uint8{0, 0, 0, 0, 0, 0, 0, 0}) {
		t.Errorf("row 0: %v", got)
	}
	if got := row(fb, 0, 1, 8); !equalRow(got, []uint8{1, 1, 1, 1, 1, 1, 1, 1}) {
		t.Errorf("row 1: %v", got)
	}
}

func TestBlitRotate(t *testing.T) {
	fb, _, _ := newTestFramebuffer(0x4321)
	fb.Clear(3)
	fb.Blit(mustDecode(t, []byte{0x60}, 2, 1, sprite.TwoBPP), 10, 10, Rotate)

	if fb.Pixel(10, 10) != 2 || fb.Pixel(10, 11) != 1 {
		t.Errorf("unexpected pixels %d %d", fb.Pixel(10, 10), fb.Pixel(10, 11))
	}
	if fb.Pixel(11, 10) != 3 {
		t.Error("rotated sprite is too wide")
	}
}

func TestBlitSub(t *testing.T) {
	fb, _, _ := newTestFramebuffer(0x4321)
	fb.Clear(2)
	s := mustDecode(t, []byte{0x00, 0x0D}, 4, 2, sprite.TwoBPP)
	fb.BlitSub(s, 0, 0, 2, 1, 2, 1, TwoBPP)

	if got := row(fb, 0, 0, 3); !equalRow(got, []uint8{3, 1, 2}) {
		t.Errorf("unexpected row %v", got)
	}
	if fb.Pixel(0, 1) != 2 {
		t.Error("sub-region is too tall")
	}
}

// Package sprite unpacks 1 and 2 bit-per-pixel sprite data.
//
// Sprite data is a continuous bit-stream of palette indices, most significant
// bit first, with rows laid end to end. Rows are not padded.
package sprite

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/32bitkid/bitreader"
)

type Depth uint

const (
	OneBPP Depth = 1
	TwoBPP Depth = 2
)

var ErrShortData = errors.New("sprite: not enough data")

type Sprite struct {
	Width  int
	Height int
	Depth
	Pixels []uint8
}

// Decode unpacks width*height palette indices from b.
func Decode(b []byte, width, height int, depth Depth) (*Sprite, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sprite: invalid dimensions %dx%d", width, height)
	}
	if depth != OneBPP && depth != TwoBPP {
		return nil, fmt.Errorf("sprite: unsupported depth %d", depth)
	}

	total := width * height
	if len(b)*8 < total*int(depth) {
		return nil, fmt.Errorf("%w: %dx%d at %dbpp needs %d bytes, got %d",
			ErrShortData, width, height, depth, (total*int(depth)+7)>>3, len(b))
	}

	br := bitreader.NewReader(bytes.NewReader(b))
	pixels := make([]uint8, total)
	for i := range pixels {
		v, err := br.Read8(uint(depth))
		if err != nil {
			return nil, fmt.Errorf("sprite: pixel %d: %w", i, err)
		}
		pixels[i] = v
	}

	return &Sprite{
		Width:  width,
		Height: height,
		Depth:  depth,
		Pixels: pixels,
	}, nil
}

// At returns the palette index at x, y.
func (s *Sprite) At(x, y int) uint8 {
	return s.Pixels[y*s.Width+x]
}

var shades = [...]string{" ", "░", "▒", "█"}

func (s *Sprite) String() string {
	var sb strings.Builder
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			v := s.At(x, y) & 0x3
			if s.Depth == OneBPP && v != 0 {
				v = 3
			}
			sb.WriteString(shades[v])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

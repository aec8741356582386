// Package w4 implements the display side of a small fantasy console.
//
// The console exposes 64KiB of linear memory. A handful of addresses at the
// bottom of memory are registers; the packed 160x160 framebuffer follows at
// AddrFramebuffer:
//
// addr   | size | register
// 0x0004 |   16 | PALETTE, four 0xRRGGBB little-endian words
// 0x0014 |    2 | DRAW_COLORS
// 0x0016 |    4 | GAMEPADS
// 0x001a |    2 | MOUSE_X
// 0x001c |    2 | MOUSE_Y
// 0x001e |    1 | MOUSE_BUTTONS
// 0x001f |    1 | SYSTEM_FLAGS
// 0x0020 |    1 | NETPLAY
// 0x00a0 | 6400 | FRAMEBUFFER
// 0x19a0 |      | free for the cartridge
package w4

import (
	"encoding/binary"

	"github.com/32bitkid/w4/framebuffer"
	"github.com/32bitkid/w4/screen"
)

const (
	AddrPalette      = 0x04
	AddrDrawColors   = 0x14
	AddrGamepads     = 0x16
	AddrMouseX       = 0x1a
	AddrMouseY       = 0x1c
	AddrMouseButtons = 0x1e
	AddrSystemFlags  = 0x1f
	AddrNetplay      = 0x20
	AddrFramebuffer  = 0xa0

	MemorySize = 1 << 16
)

const (
	// SystemPreserveFramebuffer keeps the previous frame instead of clearing
	// it before each update.
	SystemPreserveFramebuffer uint8 = 1 << iota
	SystemHideGamepadOverlay
)

// DefaultDrawColors is the value of DRAW_COLORS at power on.
const DefaultDrawColors framebuffer.DrawColors = 0x1203

type Console struct {
	mem        [MemorySize]uint8
	drawColors framebuffer.DrawColors

	fb    *framebuffer.Framebuffer
	frame *screen.Frame
}

func NewConsole() *Console {
	c := &Console{}
	c.Reset()
	return c
}

// Reset restores power on state. The framebuffer engine is bound once per
// console; resetting only changes the memory it points at.
func (c *Console) Reset() {
	c.mem = [MemorySize]uint8{}
	c.drawColors = DefaultDrawColors
	for i, rgb := range defaultPaletteRGB {
		binary.LittleEndian.PutUint32(c.mem[AddrPalette+i*4:], rgb)
	}

	if c.fb == nil {
		c.fb = framebuffer.New(&c.drawColors, c.mem[AddrFramebuffer:AddrFramebuffer+framebuffer.Size])
		c.frame = screen.NewFrame(c.fb, c.Palette())
	}
	c.frame.SetPalette(c.Palette())
}

var defaultPaletteRGB = [4]uint32{0xe0f8cf, 0x86c06c, 0x306850, 0x071821}

func (c *Console) Framebuffer() *framebuffer.Framebuffer { return c.fb }

// DrawColors returns the current DRAW_COLORS register.
func (c *Console) DrawColors() framebuffer.DrawColors { return c.drawColors }

func (c *Console) SetDrawColors(dc framebuffer.DrawColors) { c.drawColors = dc }

func (c *Console) SystemFlags() uint8 { return c.mem[AddrSystemFlags] }

// Palette decodes the PALETTE registers.
func (c *Console) Palette() screen.Palette {
	var rgb [4]uint32
	for i := range rgb {
		rgb[i] = binary.LittleEndian.Uint32(c.mem[AddrPalette+i*4:])
	}
	return screen.PaletteFromRGB(rgb)
}

// Frame returns the framebuffer as an image using the current palette.
func (c *Console) Frame() *screen.Frame {
	c.frame.SetPalette(c.Palette())
	return c.frame
}

// BeginFrame prepares the framebuffer for the next update, clearing it unless
// the cartridge asked for it to be preserved.
func (c *Console) BeginFrame() {
	if c.SystemFlags()&SystemPreserveFramebuffer == 0 {
		c.fb.Clear(0)
	}
}

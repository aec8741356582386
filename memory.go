package w4

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/32bitkid/w4/framebuffer"
)

// Load8 reads a byte of console memory. DRAW_COLORS is backed by the register
// the framebuffer reads, not by memory.
func (c *Console) Load8(addr uint16) uint8 {
	switch addr {
	case AddrDrawColors:
		return uint8(c.drawColors)
	case AddrDrawColors + 1:
		return uint8(c.drawColors >> 8)
	}
	return c.mem[addr]
}

func (c *Console) Store8(addr uint16, v uint8) {
	switch addr {
	case AddrDrawColors:
		c.drawColors = c.drawColors&0xFF00 | framebuffer.DrawColors(v)
	case AddrDrawColors + 1:
		c.drawColors = c.drawColors&0x00FF | framebuffer.DrawColors(v)<<8
	default:
		c.mem[addr] = v
	}
}

// Load16 reads a little-endian word.
func (c *Console) Load16(addr uint16) uint16 {
	return uint16(c.Load8(addr)) | uint16(c.Load8(addr+1))<<8
}

func (c *Console) Store16(addr uint16, v uint16) {
	c.Store8(addr, uint8(v))
	c.Store8(addr+1, uint8(v>>8))
}

// Load32 reads a little-endian double word.
func (c *Console) Load32(addr uint16) uint32 {
	return uint32(c.Load16(addr)) | uint32(c.Load16(addr+2))<<16
}

func (c *Console) Store32(addr uint16, v uint32) {
	c.Store16(addr, uint16(v))
	c.Store16(addr+2, uint16(v>>16))
}

// Registers is the register block at the bottom of memory.
type Registers struct {
	_            [4]uint8
	Palette      [4]uint32
	DrawColors   framebuffer.DrawColors
	Gamepads     [4]uint8
	MouseX       int16
	MouseY       int16
	MouseButtons uint8
	SystemFlags  uint8
	Netplay      uint8
	_            [AddrFramebuffer - AddrNetplay - 1]uint8
}

func (c *Console) snapshot() [MemorySize]uint8 {
	mem := c.mem
	binary.LittleEndian.PutUint16(mem[AddrDrawColors:], uint16(c.drawColors))
	return mem
}

// Registers decodes the current register block.
func (c *Console) Registers() (Registers, error) {
	mem := c.snapshot()
	var regs Registers
	err := binary.Read(bytes.NewReader(mem[:AddrFramebuffer]), binary.LittleEndian, &regs)
	return regs, err
}

// WriteTo writes a snapshot of the whole of memory.
func (c *Console) WriteTo(w io.Writer) (int64, error) {
	mem := c.snapshot()
	n, err := w.Write(mem[:])
	return int64(n), err
}

// ReadFrom restores memory from a snapshot written by WriteTo.
func (c *Console) ReadFrom(r io.Reader) (int64, error) {
	var mem [MemorySize]uint8
	n, err := io.ReadFull(r, mem[:])
	if err != nil {
		return int64(n), fmt.Errorf("read snapshot: %w", err)
	}

	c.mem = mem
	c.drawColors = framebuffer.DrawColors(binary.LittleEndian.Uint16(mem[AddrDrawColors:]))
	c.frame.SetPalette(c.Palette())
	return int64(n), nil
}

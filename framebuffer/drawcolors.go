package framebuffer

// DrawColors maps the four logical color slots used by the drawing
// primitives to stored colors. Each slot is a nibble, slot 0 in bits 0-3:
//
// nibble |
// 0      | transparent, the pixel is skipped
// 1-4    | stored color 0-3
type DrawColors uint16

// Slot returns the raw nibble for slot i.
func (dc DrawColors) Slot(i int) uint8 {
	return uint8(dc>>(uint(i&0x3)<<2)) & 0xF
}

// Resolve returns the stored color for slot i, or false if the slot is
// transparent.
func (dc DrawColors) Resolve(i int) (uint8, bool) {
	n := dc.Slot(i)
	if n == 0 {
		return 0, false
	}
	return (n - 1) & 0x3, true
}

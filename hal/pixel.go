package hal

// packRGB565 narrows 8-bit channels into the framebuffer's native 16-bit
// layout (5 red, 6 green, 5 blue).
func packRGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// unpackRGB565 widens a framebuffer pixel back to 8-bit channels for the
// window blit, scaling so a full channel maps back to 0xFF exactly.
func unpackRGB565(p uint16) (r, g, b uint8) {
	r = uint8((p >> 11 & 0x1F) * 255 / 31)
	g = uint8((p >> 5 & 0x3F) * 255 / 63)
	b = uint8((p & 0x1F) * 255 / 31)
	return r, g, b
}

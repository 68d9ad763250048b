package shaping

// symbolFor maps a non-letter codepoint to a glyph code. ASCII printables
// pass through unchanged, Arabic-Indic digits from both Unicode ranges fold
// onto the Western digit glyphs, and the handful of Arabic punctuation marks
// the fonts carry map to their dedicated codes. Everything else returns 0,
// meaning no glyph.
func symbolFor(cp rune) byte {
	switch {
	case cp >= 0x0020 && cp <= 0x007E:
		return byte(cp)
	case cp >= 0x0660 && cp <= 0x0669:
		return byte('0' + cp - 0x0660)
	case cp >= 0x06F0 && cp <= 0x06F9:
		return byte('0' + cp - 0x06F0)
	}
	switch cp {
	case 0x060C: // arabic comma
		return GlyphComma
	case 0x061F: // arabic question mark
		return GlyphQuestion
	case 0x0640: // tatweel
		return GlyphTatweel
	}
	return 0
}

package shaping

// maxCodepoints bounds the decoded codepoint buffer; input beyond it is
// ignored.
const maxCodepoints = 256

// decodeString decodes UTF-8 input into codepoints. Only 1-3 byte sequences
// (up to U+FFFF) are understood, which covers the Latin and Arabic ranges
// the glyph tables can express. A malformed lead byte is skipped together
// with any trailing continuation bytes and decoding resumes, so decoding
// never fails; it only drops the offending unit.
func decodeString(s string) []rune {
	cps := make([]rune, 0, maxCodepoints)
	for i := 0; i < len(s) && len(cps) < maxCodepoints; {
		b := s[i]
		switch {
		case b&0x80 == 0:
			cps = append(cps, rune(b))
			i++
		case b&0xE0 == 0xC0 && i+1 < len(s):
			cps = append(cps, rune(b&0x1F)<<6|rune(s[i+1]&0x3F))
			i += 2
		case b&0xF0 == 0xE0 && i+2 < len(s):
			cps = append(cps, rune(b&0x0F)<<12|rune(s[i+1]&0x3F)<<6|rune(s[i+2]&0x3F))
			i += 3
		default:
			i++
			for i < len(s) && s[i]&0xC0 == 0x80 {
				i++
			}
		}
	}
	return cps
}

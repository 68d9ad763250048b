package shaping

// Glyph codes above the ASCII range carry the shaped Arabic repertoire.
// The assignments match the layout produced by cmd/fontgen: four positional
// forms per joining letter starting at 0x80, then punctuation and the
// Lam-Alef ligature forms at the top of the byte range.
const (
	GlyphTatweel         = 0xEF
	GlyphSpace           = 0xF0
	GlyphDigitZero       = 0xF1
	GlyphComma           = 0xFB
	GlyphDot             = 0xFC
	GlyphQuestion        = 0xFD
	GlyphLamAlefIsolated = 0xFE
	GlyphLamAlefFinal    = 0xFF
)

// letterForm describes one Arabic letter: the glyph code of each positional
// form and whether the letter connects to its logical neighbours. Letters
// that only join on one side repeat the matching form codes.
type letterForm struct {
	isolated, final, initial, medial byte
	joinBefore, joinAfter            bool
}

// letterForms is exhaustive over the supported Arabic letter repertoire
// plus tatweel, which joins on both sides by definition.
var letterForms = map[rune]letterForm{
	0x0621: {0x80, 0x80, 0x80, 0x80, false, false}, // hamza
	0x0622: {0x81, 0x82, 0x81, 0x82, true, false},  // alef madda
	0x0623: {0x83, 0x84, 0x83, 0x84, true, false},  // alef hamza above
	0x0625: {0x85, 0x86, 0x85, 0x86, true, false},  // alef hamza below
	0x0627: {0x87, 0x88, 0x87, 0x88, true, false},  // alef
	0x0628: {0x89, 0x8A, 0x8B, 0x8C, true, true},   // beh
	0x0629: {0x8D, 0x8E, 0x8D, 0x8E, true, false},  // teh marbuta
	0x062A: {0x8F, 0x90, 0x91, 0x92, true, true},   // teh
	0x062B: {0x93, 0x94, 0x95, 0x96, true, true},   // theh
	0x062C: {0x97, 0x98, 0x99, 0x9A, true, true},   // jeem
	0x062D: {0x9B, 0x9C, 0x9D, 0x9E, true, true},   // hah
	0x062E: {0x9F, 0xA0, 0xA1, 0xA2, true, true},   // khah
	0x062F: {0xA3, 0xA4, 0xA3, 0xA4, true, false},  // dal
	0x0630: {0xA5, 0xA6, 0xA5, 0xA6, true, false},  // thal
	0x0631: {0xA7, 0xA8, 0xA7, 0xA8, true, false},  // reh
	0x0632: {0xA9, 0xAA, 0xA9, 0xAA, true, false},  // zain
	0x0633: {0xAB, 0xAC, 0xAD, 0xAE, true, true},   // seen
	0x0634: {0xAF, 0xB0, 0xB1, 0xB2, true, true},   // sheen
	0x0635: {0xB3, 0xB4, 0xB5, 0xB6, true, true},   // sad
	0x0636: {0xB7, 0xB8, 0xB9, 0xBA, true, true},   // dad
	0x0637: {0xBB, 0xBC, 0xBD, 0xBE, true, true},   // tah
	0x0638: {0xBF, 0xC0, 0xC1, 0xC2, true, true},   // zah
	0x0639: {0xC3, 0xC4, 0xC5, 0xC6, true, true},   // ain
	0x063A: {0xC7, 0xC8, 0xC9, 0xCA, true, true},   // ghain
	0x0641: {0xCB, 0xCC, 0xCD, 0xCE, true, true},   // feh
	0x0642: {0xCF, 0xD0, 0xD1, 0xD2, true, true},   // qaf
	0x0643: {0xD3, 0xD4, 0xD5, 0xD6, true, true},   // kaf
	0x0644: {0xD7, 0xD8, 0xD9, 0xDA, true, true},   // lam
	0x0645: {0xDB, 0xDC, 0xDD, 0xDE, true, true},   // meem
	0x0646: {0xDF, 0xE0, 0xE1, 0xE2, true, true},   // noon
	0x0647: {0xE3, 0xE4, 0xE5, 0xE6, true, true},   // heh
	0x0648: {0xE7, 0xE8, 0xE7, 0xE8, true, false},  // waw
	0x0649: {0xE9, 0xEA, 0xE9, 0xEA, true, false},  // alef maksura
	0x064A: {0xEB, 0xEC, 0xED, 0xEE, true, true},   // yeh
	0x0640: {0xEF, 0xEF, 0xEF, 0xEF, true, true},   // tatweel
}

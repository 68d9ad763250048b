package shaping

const (
	cpLam            = 0x0644
	cpAlef           = 0x0627
	cpAlefMadda      = 0x0622
	cpAlefHamzaAbove = 0x0623
	cpAlefHamzaBelow = 0x0625
)

func isAlefVariant(cp rune) bool {
	return cp == cpAlef || cp == cpAlefMadda || cp == cpAlefHamzaAbove || cp == cpAlefHamzaBelow
}

// joinsAfter reports whether the codepoint is a letter that connects to the
// letter following it.
func joinsAfter(cp rune) bool {
	f, ok := letterForms[cp]
	return ok && f.joinAfter
}

// Shape converts UTF-8 text to a run of glyph codes in logical order: for
// Arabic, index 0 is the rightmost character on screen. Each Arabic letter
// gets the positional form implied by its immediate logical neighbours, a
// Lam followed by any Alef variant collapses into a single ligature glyph,
// and anything that is not a letter falls back to the symbol map. Codepoints
// with no mapping at all are dropped. The result is truncated at RunCapacity
// glyphs.
//
// Joining decisions only ever consult immediate neighbours; there is no
// lookahead beyond the two-codepoint ligature window.
func Shape(text string) Run {
	cps := decodeString(text)

	var run Run
	for i := 0; i < len(cps); i++ {
		cp := cps[i]
		var mapped byte

		// Lam-Alef ligature consumes two codepoints and emits one glyph.
		if cp == cpLam && i+1 < len(cps) && isAlefVariant(cps[i+1]) {
			mapped = GlyphLamAlefIsolated
			if i > 0 && joinsAfter(cps[i-1]) {
				mapped = GlyphLamAlefFinal
			}
			i++
		} else if cur, ok := letterForms[cp]; ok {
			joinWithPrev := false
			if i > 0 {
				if prev, ok := letterForms[cps[i-1]]; ok {
					joinWithPrev = prev.joinAfter && cur.joinBefore
				}
			}
			joinWithNext := false
			if i+1 < len(cps) {
				if next, ok := letterForms[cps[i+1]]; ok {
					joinWithNext = cur.joinAfter && next.joinBefore
				}
			}
			switch {
			case joinWithPrev && joinWithNext:
				mapped = cur.medial
			case joinWithPrev:
				mapped = cur.final
			case joinWithNext:
				mapped = cur.initial
			default:
				mapped = cur.isolated
			}
		} else {
			mapped = symbolFor(cp)
		}

		if mapped == 0 {
			continue
		}
		if !run.Append(mapped) {
			break
		}
	}
	return run
}

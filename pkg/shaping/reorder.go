package shaping

// ReorderVisual rearranges the run from logical order into raster
// (left-to-right) order. The whole buffer is reversed to flip right-to-left
// flow, then each maximal run of ASCII glyph codes (0x20-0x7E: Latin
// letters, Western digits and passed-through punctuation) is reversed back,
// since those substrings read left to right even when embedded in Arabic
// text. This is a two-class approximation of directional runs, not a full
// bidi implementation: any ASCII glyph is treated as part of an LTR island.
func (r *Run) ReorderVisual() {
	buf := r.glyphs[:r.n]
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	for i := 0; i < len(buf); {
		if buf[i] < 0x20 || buf[i] > 0x7E {
			i++
			continue
		}
		start := i
		for i < len(buf) && buf[i] >= 0x20 && buf[i] <= 0x7E {
			i++
		}
		for a, b := start, i-1; a < b; a, b = a+1, b-1 {
			buf[a], buf[b] = buf[b], buf[a]
		}
	}
}

// Package shaping converts UTF-8 text into DMD glyph codes: it decodes
// codepoints, selects contextual Arabic letter forms, substitutes the
// Lam-Alef ligature and reorders the result into left-to-right raster order.
//
// The pipeline never fails. Malformed input bytes are skipped, unmapped
// codepoints are dropped and oversized input is truncated, so every entry
// point returns a usable (possibly empty) run.
package shaping

// RunCapacity is the maximum number of glyph codes a Run can hold. Input
// mapping to more glyphs than this is truncated, which is documented
// behaviour rather than an error.
const RunCapacity = 255

// A Run is a bounded sequence of glyph codes in a single order (logical
// until ReorderVisual is called, raster afterwards). The zero value is an
// empty run ready for use. Appends beyond RunCapacity are refused, so a Run
// can never overflow its backing storage.
type Run struct {
	glyphs [RunCapacity]byte
	n      int
}

// Append adds one glyph code to the run. It reports false, leaving the run
// unchanged, once the run is full.
func (r *Run) Append(code byte) bool {
	if r.n >= RunCapacity {
		return false
	}
	r.glyphs[r.n] = code
	r.n++
	return true
}

// Len returns the number of glyph codes in the run.
func (r *Run) Len() int {
	return r.n
}

// Glyphs returns the glyph codes as a slice backed by the run's storage.
// The slice is only valid until the next mutation of the run.
func (r *Run) Glyphs() []byte {
	return r.glyphs[:r.n]
}

// Reset empties the run.
func (r *Run) Reset() {
	r.n = 0
}

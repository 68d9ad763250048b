package shaping

import (
	"strings"
	"testing"
)

// TestShape tests contextual form selection, ligatures and symbol fallback
func TestShape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{
			name:  "isolated letter",
			input: "ب", // beh alone
			want:  []byte{0x89},
		},
		{
			name:  "initial medial final",
			input: "بتج", // beh teh jeem
			want:  []byte{0x8B, 0x92, 0x98},
		},
		{
			name:  "right joining letter ends the connection",
			input: "باب", // beh alef beh: alef does not join forward
			want:  []byte{0x8B, 0x88, 0x89},
		},
		{
			name:  "non joining letter stays isolated",
			input: "ءب", // hamza never connects
			want:  []byte{0x80, 0x89},
		},
		{
			name:  "lam alef isolated ligature",
			input: "لا",
			want:  []byte{GlyphLamAlefIsolated},
		},
		{
			name:  "lam alef final ligature after joining letter",
			input: "بلا", // beh then lam-alef
			want:  []byte{0x8B, GlyphLamAlefFinal},
		},
		{
			name:  "lam alef isolated after non joining letter",
			input: "رلآ", // reh then lam with alef madda
			want:  []byte{0xA7, GlyphLamAlefIsolated},
		},
		{
			name:  "lam without alef shapes normally",
			input: "لب", // lam beh
			want:  []byte{0xD9, 0x8A},
		},
		{
			name:  "ascii passthrough",
			input: "Hi!",
			want:  []byte{'H', 'i', '!'},
		},
		{
			name:  "arabic indic digits fold to western",
			input: "٠١۹",
			want:  []byte{'0', '1', '9'},
		},
		{
			name:  "arabic punctuation",
			input: "،؟",
			want:  []byte{GlyphComma, GlyphQuestion},
		},
		{
			name:  "tatweel joins both sides",
			input: "بـب", // beh tatweel beh
			want:  []byte{0x8B, GlyphTatweel, 0x8A},
		},
		{
			name:  "unmapped codepoints dropped",
			input: "a中b", // CJK ideograph has no glyph
			want:  []byte{'a', 'b'},
		},
		{
			name:  "digits break letter joining",
			input: "بج2026", // jeem cannot join a digit
			want:  []byte{0x8B, 0x98, '2', '0', '2', '6'},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := Shape(tt.input)
			got := run.Glyphs()
			if len(got) != len(tt.want) {
				t.Fatalf("Shape() = % 02X, want % 02X", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("glyph %d = 0x%02X, want 0x%02X", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestShapeTruncation tests that overlong input truncates at the run capacity
func TestShapeTruncation(t *testing.T) {
	run := Shape(strings.Repeat("ء", 300))
	if run.Len() != RunCapacity {
		t.Errorf("Len() = %d, want %d", run.Len(), RunCapacity)
	}
}

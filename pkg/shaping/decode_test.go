package shaping

import (
	"strings"
	"testing"
)

// TestDecodeString tests UTF-8 decoding including malformed input recovery
func TestDecodeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []rune
	}{
		{
			name:  "ascii",
			input: "Az9",
			want:  []rune{'A', 'z', '9'},
		},
		{
			name:  "two byte sequence",
			input: "ب", // arabic beh
			want:  []rune{0x0628},
		},
		{
			name:  "three byte sequence",
			input: "€", // euro sign
			want:  []rune{0x20AC},
		},
		{
			name:  "mixed scripts",
			input: "aلاb",
			want:  []rune{'a', 0x0644, 0x0627, 'b'},
		},
		{
			name:  "empty",
			input: "",
			want:  []rune{},
		},
		{
			name:  "malformed lead byte skipped with continuations",
			input: string([]byte{'A', 0xFF, 0x80, 0x80, 'B'}),
			want:  []rune{'A', 'B'},
		},
		{
			name:  "truncated sequence at end of input",
			input: string([]byte{'A', 0xD8}),
			want:  []rune{'A'},
		},
		{
			name:  "bare continuation byte skipped",
			input: string([]byte{0x80, 'x'}),
			want:  []rune{'x'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeString(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("decodeString() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("codepoint %d = U+%04X, want U+%04X", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestDecodeStringCapacity tests that decoding stops at the codepoint buffer size
func TestDecodeStringCapacity(t *testing.T) {
	got := decodeString(strings.Repeat("a", 500))
	if len(got) != maxCodepoints {
		t.Errorf("decoded %d codepoints, want %d", len(got), maxCodepoints)
	}
}

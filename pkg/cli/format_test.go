package cli

import (
	"strings"
	"testing"
)

func TestDotPad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "normal case",
			input:    "leaf1-ny",
			width:    30,
			expected: "leaf1-ny " + strings.Repeat(".", 21),
		},
		{
			name:     "short name",
			input:    "ok",
			width:    10,
			expected: "ok " + strings.Repeat(".", 7),
		},
		{
			name:     "name equals width",
			input:    "abcdef",
			width:    6,
			expected: "abcdef",
		},
		{
			name:     "name longer than width",
			input:    "very-long-name",
			width:    5,
			expected: "very-long-name",
		},
		{
			name:     "zero width",
			input:    "x",
			width:    0,
			expected: "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DotPad(tt.input, tt.width); got != tt.expected {
				t.Errorf("DotPad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestColorDisabled(t *testing.T) {
	// Test binaries never run with stdout on a terminal, so the color
	// helpers must pass strings through unchanged.
	for name, fn := range map[string]func(string) string{
		"Green": Green, "Yellow": Yellow, "Red": Red, "Bold": Bold, "Dim": Dim,
	} {
		t.Run(name, func(t *testing.T) {
			if got := fn("text"); got != "text" {
				t.Errorf("%s(\"text\") = %q, want plain passthrough", name, got)
			}
		})
	}
}

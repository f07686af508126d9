// File: scan_test.go
// Title: Bounded Scanning Tests
// Description: Length caps, terminators and index results of the scanning
//              primitives.
// Author: msto63
// Version: v0.3.1
// Created: 2026-09-29
// Modified: 2026-10-06
//
// Change History:
// - 2026-09-29 v0.3.0: Initial tests
// - 2026-10-06 v0.3.1: Line break variants

package stringx

import (
	"testing"
)

func TestStrnlen(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected int
	}{
		{"zero max", "test", 0, 0},
		{"negative max", "test", -3, 0},
		{"capped", "test", 2, 2},
		{"large max", "test", 1 << 20, 4},
		{"unbounded", "test", Unbounded, 4},
		{"embedded terminator", "te\x00st", Unbounded, 2},
		{"empty", "", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strnlen(tt.input, tt.max); got != tt.expected {
				t.Errorf("Strnlen(%q, %d) = %d; want %d", tt.input, tt.max, got, tt.expected)
			}
			if got := Strnlen([]byte(tt.input), tt.max); got != tt.expected {
				t.Errorf("Strnlen([]byte(%q), %d) = %d; want %d", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}

func TestStrnlenNilBuffer(t *testing.T) {
	var buf []byte
	if got := Strnlen(buf, 10); got != 0 {
		t.Errorf("Strnlen(nil, 10) = %d; want 0", got)
	}
	if got := Strlen(buf); got != 0 {
		t.Errorf("Strlen(nil) = %d; want 0", got)
	}
}

func TestStrnchr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		ch       byte
		max      int
		expected int
	}{
		{"zero max", "test", 's', 0, -1},
		{"outside bound", "test", 's', 2, -1},
		{"unbounded", "test", 's', Unbounded, 2},
		{"first of many", "test", 't', Unbounded, 0},
		{"absent", "test", 'x', Unbounded, -1},
		{"after terminator", "te\x00st", 's', Unbounded, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strnchr(tt.input, tt.ch, tt.max); got != tt.expected {
				t.Errorf("Strnchr(%q, %q, %d) = %d; want %d", tt.input, tt.ch, tt.max, got, tt.expected)
			}
		})
	}

	if got := Strchr("test", 's'); got != 2 {
		t.Errorf("Strchr(test, s) = %d; want 2", got)
	}
}

func TestStrnrchr(t *testing.T) {
	tests := []struct {
		input    string
		ch       byte
		max      int
		expected int
	}{
		{"test", 't', Unbounded, 3},
		{"test", 't', 3, 0},
		{"test", 't', 0, -1},
		{"test", 'x', Unbounded, -1},
		{"a/b/c", '/', Unbounded, 3},
	}

	for _, tt := range tests {
		if got := Strnrchr(tt.input, tt.ch, tt.max); got != tt.expected {
			t.Errorf("Strnrchr(%q, %q, %d) = %d; want %d", tt.input, tt.ch, tt.max, got, tt.expected)
		}
	}

	if got := Strrchr("test", 't'); got != 3 {
		t.Errorf("Strrchr(test, t) = %d; want 3", got)
	}
}

func TestWhitespaceAndWordSkipping(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		fn     func(string) int
		expect int
	}{
		{"strws leading", " \t\r\nword", Strws[string], 4},
		{"strws none", "word", Strws[string], 0},
		{"strws all", "   ", Strws[string], 3},
		{"strnws word", "word rest", Strnws[string], 4},
		{"strnws empty", "", Strnws[string], 0},
		{"strnws to terminator", "word\x00 x", Strnws[string], 4},
		{"strword identifier", "foo_bar1(x)", Strword[string], 8},
		{"strword leading punct", "(x)", Strword[string], 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); got != tt.expect {
				t.Errorf("%s(%q) = %d; want %d", tt.name, tt.input, got, tt.expect)
			}
		})
	}
}

func TestLineScanning(t *testing.T) {
	tests := []struct {
		input   string
		wantEol int
		wantNl  int
	}{
		{"line\nnext", 4, 5},
		{"line\r\nnext", 4, 6},
		{"line\rnext", 4, 5},
		{"line", 4, 4},
		{"\n", 0, 1},
		{"", 0, 0},
		{"line\n\nnext", 4, 5},
	}

	for _, tt := range tests {
		if got := Streol(tt.input); got != tt.wantEol {
			t.Errorf("Streol(%q) = %d; want %d", tt.input, got, tt.wantEol)
		}
		if got := Strnl(tt.input); got != tt.wantNl {
			t.Errorf("Strnl(%q) = %d; want %d", tt.input, got, tt.wantNl)
		}
	}
}

func TestStrmb(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"flat", "{abc}", 4},
		{"nested", "{a{b}c}d}", 6},
		{"prefix before open", "x = {a}", 6},
		{"unbalanced", "{a{b}", -1},
		{"close first", "}{", -1},
		{"terminator inside", "{a\x00}", -1},
		{"no open", "abc", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strmb(tt.input, '{', '}'); got != tt.expected {
				t.Errorf("Strmb(%q) = %d; want %d", tt.input, got, tt.expected)
			}
		})
	}
}

// File: compare_test.go
// Title: Comparison and Search Tests
// Description: Case folding, bounds and match confinement of the compare
//              and search primitives.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.3.0: Initial tests

package stringx

import (
	"testing"
)

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestStrincmp(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		max      int
		expected int
	}{
		{"equal", "test", "test", Unbounded, 0},
		{"prefix bound", "test", "testestes", 4, 0},
		{"longer rhs", "test", "testestes", Unbounded, -1},
		{"different", "preprocess", "platform", Unbounded, 1},
		{"case folded prefix", "abvgd", "ABVGX", 4, 0},
		{"case folded tail", "abvgd", "ABVGX", Unbounded, -1},
		{"tail reversed", "abvgx", "ABVGD", Unbounded, 1},
		{"empty vs non-empty", "", "a", Unbounded, -1},
		{"non-empty vs empty", "a", "", Unbounded, 1},
		{"both empty", "", "", Unbounded, 0},
		{"zero max", "abc", "xyz", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sign(Strincmp(tt.a, tt.b, tt.max)); got != tt.expected {
				t.Errorf("Strincmp(%q, %q, %d) sign = %d; want %d", tt.a, tt.b, tt.max, got, tt.expected)
			}
		})
	}
}

func TestStrincmpDifferenceValue(t *testing.T) {
	if got := Stricmp("abvgd", "ABVGX"); got != int('d')-int('x') {
		t.Errorf("Stricmp(abvgd, ABVGX) = %d; want %d", got, int('d')-int('x'))
	}
	if got := Stricmp([]byte("Test"), "tEST"); got != 0 {
		t.Errorf("Stricmp mixed inputs = %d; want 0", got)
	}
}

func TestStrncmp(t *testing.T) {
	tests := []struct {
		a, b     string
		max      int
		expected int
	}{
		{"test", "test", Unbounded, 0},
		{"test", "Test", Unbounded, 1},
		{"copycat", "copy", 4, 0},
		{"copycat", "copy", Unbounded, 1},
		{"abc", "abd", Unbounded, -1},
	}

	for _, tt := range tests {
		if got := sign(Strncmp(tt.a, tt.b, tt.max)); got != tt.expected {
			t.Errorf("Strncmp(%q, %q, %d) sign = %d; want %d", tt.a, tt.b, tt.max, got, tt.expected)
		}
	}

	if Strcmp("same", []byte("same")) != 0 {
		t.Error("Strcmp should treat string and []byte content alike")
	}
}

func TestSubstringSearch(t *testing.T) {
	const test = "The Quick Brown Fox Jumps Over The Lazy Dog."

	tests := []struct {
		name     string
		fn       func(string, string, int) int
		find     string
		max      int
		expected int
	}{
		{"stristr bound cuts match", Stristr[string, string], "quick", 8, -1},
		{"stristr bound fits match", Stristr[string, string], "quick", 9, 4},
		{"stristr unbounded", Stristr[string, string], "quick", Unbounded, 4},
		{"strnstr wrong case", Strnstr[string, string], "quick", Unbounded, -1},
		{"strnstr bound cuts match", Strnstr[string, string], "Quick", 8, -1},
		{"strnstr bound fits match", Strnstr[string, string], "Quick", 9, 4},
		{"strnstr unbounded", Strnstr[string, string], "Quick", Unbounded, 4},
		{"strnstr later word", Strnstr[string, string], "Dog", Unbounded, 40},
		{"stristr repeated word", Stristr[string, string], "the", Unbounded, 0},
		{"absent", Stristr[string, string], "cat", Unbounded, -1},
		{"empty find", Strnstr[string, string], "", Unbounded, 0},
		{"find longer than str", Strnstr[string, string], test + "!", Unbounded, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(test, tt.find, tt.max); got != tt.expected {
				t.Errorf("%s: got %d; want %d", tt.name, got, tt.expected)
			}
		})
	}

	if got := Strstr(test, "Fox"); got != 16 {
		t.Errorf("Strstr(Fox) = %d; want 16", got)
	}
}

func TestSearchStopsAtTerminator(t *testing.T) {
	buf := []byte("abc\x00def")
	if got := Strstr(buf, "def"); got != -1 {
		t.Errorf("Strstr past terminator = %d; want -1", got)
	}
	if got := Stristr(buf, "ABC", Unbounded); got != 0 {
		t.Errorf("Stristr(ABC) = %d; want 0", got)
	}
}

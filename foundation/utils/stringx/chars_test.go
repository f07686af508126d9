// File: chars_test.go
// Title: Character Classifier Tests
// Description: Exhaustive checks of the ASCII classifiers over all bytes.
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

func TestUpperCaseLetters(t *testing.T) {
	for ch := byte('A'); ch <= 'Z'; ch++ {
		if !IsUpper(ch) || IsLower(ch) || !IsAlpha(ch) || !IsAlphaNum(ch) {
			t.Errorf("classification of %q is wrong", ch)
		}
		if !IsLower(ToLower(ch)) {
			t.Errorf("IsLower(ToLower(%q)) = false", ch)
		}
		if ToUpper(ToLower(ch)) != ch {
			t.Errorf("ToUpper(ToLower(%q)) = %q", ch, ToUpper(ToLower(ch)))
		}
	}
}

func TestClassifiersMatchASCIITable(t *testing.T) {
	for i := 0; i < 256; i++ {
		ch := byte(i)
		lower := ch >= 'a' && ch <= 'z'
		upper := ch >= 'A' && ch <= 'Z'
		digit := ch >= '0' && ch <= '9'

		if IsLower(ch) != lower || IsUpper(ch) != upper || IsNumeric(ch) != digit {
			t.Fatalf("classifier mismatch for byte %d", i)
		}
		if IsAlphaNum(ch) != (lower || upper || digit) {
			t.Fatalf("IsAlphaNum(%d) mismatch", i)
		}
		if IsIdentifierChar(ch) != (lower || upper || digit || ch == '_') {
			t.Fatalf("IsIdentifierChar(%d) mismatch", i)
		}
		if !upper && ToLower(ch) != ch {
			t.Fatalf("ToLower(%d) changed a non-upper byte", i)
		}
		if !lower && ToUpper(ch) != ch {
			t.Fatalf("ToUpper(%d) changed a non-lower byte", i)
		}
	}
}

func TestIsSpace(t *testing.T) {
	tests := []struct {
		ch       byte
		expected bool
	}{
		{' ', true},
		{'\t', true},
		{'\n', true},
		{'\r', true},
		{'\v', true},
		{'\f', true},
		{0, false},
		{'a', false},
		{0xa0, false},
	}

	for _, tt := range tests {
		if got := IsSpace(tt.ch); got != tt.expected {
			t.Errorf("IsSpace(%q) = %v; want %v", tt.ch, got, tt.expected)
		}
	}
}

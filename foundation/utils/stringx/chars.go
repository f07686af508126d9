// File: chars.go
// Title: ASCII Character Classifiers
// Description: Branch-only predicates and case mapping over single bytes.
//              ASCII only; bytes >= 0x80 are never letters or digits.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.3.0: Initial implementation

package stringx

import "math"

// Bytes is any raw character buffer. Content ends at the first 0x00 byte or
// at the end of the buffer, whichever comes first.
type Bytes interface {
	~string | ~[]byte
}

const (
	// Unbounded disables a length cap.
	Unbounded = math.MaxInt

	// DefaultViewLength caps the terminator scan of NewView and ViewString.
	DefaultViewLength = 65535
)

// at reads str[i], treating anything outside the buffer as a terminator.
func at[T Bytes](str T, i int) byte {
	if i < 0 || i >= len(str) {
		return 0
	}
	return str[i]
}

// IsLower reports whether ch is in 'a'..'z'.
func IsLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }

// IsUpper reports whether ch is in 'A'..'Z'.
func IsUpper(ch byte) bool { return ch >= 'A' && ch <= 'Z' }

// IsAlpha reports whether ch is an ASCII letter.
func IsAlpha(ch byte) bool { return IsLower(ch) || IsUpper(ch) }

// IsNumeric reports whether ch is in '0'..'9'.
func IsNumeric(ch byte) bool { return ch >= '0' && ch <= '9' }

// IsAlphaNum reports whether ch is an ASCII letter or digit.
func IsAlphaNum(ch byte) bool { return IsAlpha(ch) || IsNumeric(ch) }

// IsSpace reports whether ch is space, tab, newline, carriage return,
// vertical tab or form feed.
func IsSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// IsIdentifierChar reports whether ch may appear inside an identifier.
func IsIdentifierChar(ch byte) bool { return IsAlphaNum(ch) || ch == '_' }

// ToLower maps 'A'..'Z' to 'a'..'z' and leaves every other byte alone.
func ToLower(ch byte) byte {
	if IsUpper(ch) {
		return ch + ('a' - 'A')
	}
	return ch
}

// ToUpper maps 'a'..'z' to 'A'..'Z' and leaves every other byte alone.
func ToUpper(ch byte) byte {
	if IsLower(ch) {
		return ch - ('a' - 'A')
	}
	return ch
}

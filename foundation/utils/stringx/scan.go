// File: scan.go
// Title: Bounded Scanning Primitives
// Description: Length-limited measuring and searching plus whitespace, word,
//              line and bracket scanning. Positions are indexes into the
//              input; -1 stands for "not found".
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-29
// Modified: 2026-10-06
//
// Change History:
// - 2026-09-29 v0.3.0: Initial implementation
// - 2026-10-06 v0.3.1: Strnl accepts a lone carriage return

package stringx

// Strnlen returns the number of bytes before the terminator, capped at max.
// It never reads str[max] or beyond; max <= 0 returns 0.
func Strnlen[T Bytes](str T, max int) int {
	if max <= 0 {
		return 0
	}
	n := min(max, len(str))
	for i := 0; i < n; i++ {
		if str[i] == 0 {
			return i
		}
	}
	return n
}

// Strlen is Strnlen without a cap.
func Strlen[T Bytes](str T) int {
	return Strnlen(str, Unbounded)
}

// Strnchr returns the index of the first ch within the first max content
// bytes of str, or -1.
func Strnchr[T Bytes](str T, ch byte, max int) int {
	n := Strnlen(str, max)
	for i := 0; i < n; i++ {
		if str[i] == ch {
			return i
		}
	}
	return -1
}

// Strchr is Strnchr without a cap.
func Strchr[T Bytes](str T, ch byte) int {
	return Strnchr(str, ch, Unbounded)
}

// Strnrchr returns the index of the last ch within the first max content
// bytes of str, or -1.
func Strnrchr[T Bytes](str T, ch byte, max int) int {
	for i := Strnlen(str, max) - 1; i >= 0; i-- {
		if str[i] == ch {
			return i
		}
	}
	return -1
}

// Strrchr is Strnrchr without a cap.
func Strrchr[T Bytes](str T, ch byte) int {
	return Strnrchr(str, ch, Unbounded)
}

// Strws skips leading whitespace and returns the index of the first
// non-whitespace byte or of the terminator.
func Strws[T Bytes](str T) int {
	i := 0
	for IsSpace(at(str, i)) {
		i++
	}
	return i
}

// Strnws skips leading non-whitespace and returns the index of the first
// whitespace byte or of the terminator.
func Strnws[T Bytes](str T) int {
	i := 0
	for ch := at(str, i); ch != 0 && !IsSpace(ch); ch = at(str, i) {
		i++
	}
	return i
}

// Strword returns the index just past the identifier run at the start of
// str. Identifier bytes are letters, digits and '_'.
func Strword[T Bytes](str T) int {
	i := 0
	for IsIdentifierChar(at(str, i)) {
		i++
	}
	return i
}

// Streol returns the index of the first '\n', '\r' or terminator.
func Streol[T Bytes](str T) int {
	i := 0
	for {
		switch at(str, i) {
		case 0, '\n', '\r':
			return i
		}
		i++
	}
}

// Strnl returns the index where the next line starts. The line break may
// be "\r\n", "\n" or a lone "\r". Without a line break the terminator
// index is returned.
func Strnl[T Bytes](str T) int {
	i := Streol(str)
	switch at(str, i) {
	case '\r':
		i++
		if at(str, i) == '\n' {
			i++
		}
	case '\n':
		i++
	}
	return i
}

// Strmb returns the index of the closeCh matching the first openCh,
// counting nested pairs. It returns -1 when the terminator comes first or
// a closeCh appears before any openCh.
func Strmb[T Bytes](str T, openCh, closeCh byte) int {
	depth := 0
	for i := 0; ; i++ {
		ch := at(str, i)
		switch {
		case ch == 0:
			return -1
		case ch == openCh:
			depth++
		case ch == closeCh:
			depth--
			if depth == 0 {
				return i
			}
			if depth < 0 {
				return -1
			}
		}
	}
}

// File: misc.go
// Title: Miscellaneous String Utilities
// Description: Byte-size prettifying, base names, line ending
//              normalization, identifier matching, boolean parsing and
//              hashing of views.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-02 v0.3.0: Initial implementation
// - 2026-10-09 v0.3.1: Prettify renders IEC units through go-humanize

package stringx

import (
	"github.com/dustin/go-humanize"

	"github.com/msto63/strcore/foundation/utils/hashx"
)

// truthy lists every input ToBool accepts, compared case-insensitively.
var truthy = [...]string{"true", "yes", "on", "1"}

// Prettify renders size with binary scaling and IEC suffixes, for example
// "5 B", "1.0 KiB" or "79 MiB", into dst with Strlcpy semantics. It returns
// the length of the full rendering.
func Prettify(dst []byte, size uint64) int {
	return Strlcpy(dst, humanize.IBytes(size))
}

// BaseName returns the index where the last path component starts. Both
// '/' and '\\' separate components.
func BaseName[T Bytes](path T) int {
	start := 0
	for i, n := 0, Strlen(path); i < n; i++ {
		if path[i] == '/' || path[i] == '\\' {
			start = i + 1
		}
	}
	return start
}

// EolLF copies src into dst converting "\r\n" and lone "\r" to "\n". It
// writes at most len(dst)-1 bytes plus a terminator and returns the number
// of bytes written before the terminator.
func EolLF[T Bytes](dst []byte, src T) int {
	if len(dst) == 0 {
		return 0
	}
	n := 0
	for i := 0; n < len(dst)-1; i++ {
		ch := at(src, i)
		if ch == 0 {
			break
		}
		if ch == '\r' {
			if at(src, i+1) == '\n' {
				i++
			}
			ch = '\n'
		}
		dst[n] = ch
		n++
	}
	dst[n] = 0
	return n
}

// FindIdentifierMatch returns the index of the first occurrence of word in
// str that is not part of a longer identifier, or -1. An empty word never
// matches.
func FindIdentifierMatch[T Bytes](str T, word string) int {
	m := Strlen(word)
	if m == 0 {
		return -1
	}
	limit := Strlen(str)
	for i := search(str, word, 0, limit, false); i >= 0; i = search(str, word, i+1, limit, false) {
		if IsIdentifierChar(at(str, i-1)) || IsIdentifierChar(at(str, i+m)) {
			continue
		}
		return i
	}
	return -1
}

// FindAnyIdentifierMatch tries words in order and returns the match of the
// first word found by FindIdentifierMatch, or -1.
func FindAnyIdentifierMatch[T Bytes](str T, words ...string) int {
	for _, word := range words {
		if i := FindIdentifierMatch(str, word); i >= 0 {
			return i
		}
	}
	return -1
}

// ToBool reports whether str, up to its terminator, is one of "true",
// "yes", "on" or "1" in any letter case.
func ToBool[T Bytes](str T) bool {
	n := Strlen(str)
	for _, t := range truthy {
		if n == len(t) && Strincmp(str, t, n) == 0 {
			return true
		}
	}
	return false
}

// HashMurmur2A hashes the content of v.
func HashMurmur2A(v StringView) uint32 {
	return hashx.Sum32Bytes(v.Ptr())
}

// HashMurmur2AString hashes str up to its terminator.
func HashMurmur2AString[T Bytes](str T) uint32 {
	var h hashx.Murmur2A
	switch s := any(str).(type) {
	case string:
		h.WriteString(s[:Strlen(s)])
	case []byte:
		h.Write(s[:Strlen(s)])
	default:
		h.WriteString(string(str)[:Strlen(str)])
	}
	return h.Sum32()
}

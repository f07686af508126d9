// File: copy.go
// Title: Bounded Copy and Concatenation
// Description: strlcpy/strlcat style copy and append that always terminate
//              a non-empty destination, plus count-capped variants that
//              report the bytes actually written.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.3.0: Initial implementation

package stringx

// Strlcpy copies src into dst, truncating to len(dst)-1 bytes, and
// terminates dst when len(dst) > 0. It returns Strlen(src); a result of
// len(dst) or more means the copy was truncated.
func Strlcpy[T Bytes](dst []byte, src T) int {
	n := Strlen(src)
	if len(dst) > 0 {
		terminate(dst, copyN(dst, src, min(n, len(dst)-1)))
	}
	return n
}

// Strlcat appends src to the string in dst. len(dst) is the total
// capacity, not the room left. It returns Strlen(src) plus the initial
// content length of dst capped at len(dst); a result of len(dst) or more
// means the append was truncated.
func Strlcat[T Bytes](dst []byte, src T) int {
	dlen := Strnlen(dst, len(dst))
	n := Strlen(src)
	if dlen < len(dst) {
		Strlncpy(dst[dlen:], src, n)
	}
	return dlen + n
}

// Strlncpy copies at most min(num, Strlen(src), len(dst)-1) bytes and
// terminates dst. It returns the number of bytes copied, which differs
// from Strlcpy. An empty dst is left untouched and yields 0.
func Strlncpy[T Bytes](dst []byte, src T, num int) int {
	if len(dst) == 0 {
		return 0
	}
	n := copyN(dst, src, min(Strnlen(src, num), len(dst)-1))
	terminate(dst, n)
	return n
}

// Strlncat appends at most num bytes of src after the content of dst and
// returns the number of bytes appended; 0 when dst has no room left.
func Strlncat[T Bytes](dst []byte, src T, num int) int {
	return Strlncpy(dst[Strnlen(dst, len(dst)):], src, num)
}

// copyN copies n bytes of src into dst and returns n.
func copyN[T Bytes](dst []byte, src T, n int) int {
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
	return n
}

func terminate(dst []byte, n int) {
	if n < len(dst) {
		dst[n] = 0
	}
}

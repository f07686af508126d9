// File: format.go
// Title: Bounded Formatting
// Description: snprintf-style formatting over fmt verbs that reports the
//              untruncated length, a UTF-16 variant, printf into growable
//              outputs and substring replacement.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-01
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-01 v0.3.0: Initial implementation
// - 2026-10-09 v0.3.1: Appender outputs and ReplaceAllString

package stringx

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf16"
)

// printfScratchSize is the stack buffer StringPrintf formats into first.
const printfScratchSize = 2048

// truncWriter keeps what fits in dst and counts everything.
type truncWriter struct {
	dst   []byte
	n     int
	total int
}

func (w *truncWriter) Write(p []byte) (int, error) {
	w.n += copy(w.dst[w.n:], p)
	w.total += len(p)
	return len(p), nil
}

// Vsnprintf formats into dst using fmt verbs. At most len(dst)-1 bytes are
// stored, followed by a terminator when len(dst) > 0. The return value is
// always the length the full output would have, so a result >= len(dst)
// means truncation.
func Vsnprintf(dst []byte, format string, args []any) int {
	w := truncWriter{}
	if len(dst) > 0 {
		w.dst = dst[:len(dst)-1]
	}
	_, _ = fmt.Fprintf(&w, format, args...)
	if len(dst) > 0 {
		dst[w.n] = 0
	}
	return w.total
}

// Snprintf is the variadic form of Vsnprintf.
func Snprintf(dst []byte, format string, args ...any) int {
	return Vsnprintf(dst, format, args)
}

// Vsnwprintf formats into a UTF-16 buffer. Capacity and result are counted
// in UTF-16 code units; otherwise it behaves like Vsnprintf.
func Vsnwprintf(dst []uint16, format string, args []any) int {
	units := utf16.Encode([]rune(fmt.Sprintf(format, args...)))
	if len(dst) > 0 {
		n := copy(dst[:len(dst)-1], units)
		dst[n] = 0
	}
	return len(units)
}

// Swnprintf is the variadic form of Vsnwprintf.
func Swnprintf(dst []uint16, format string, args ...any) int {
	return Vsnwprintf(dst, format, args)
}

// Appender is a growable output. *String satisfies it.
type Appender interface {
	Append(p []byte) error
}

// BufferAppender adapts a bytes.Buffer to Appender.
type BufferAppender struct {
	Buf *bytes.Buffer
}

// Append writes p to the buffer.
func (b BufferAppender) Append(p []byte) error {
	_, err := b.Buf.Write(p)
	return err
}

// StringPrintfVargs formats and appends the result to out. Output that
// fits the scratch buffer is appended directly; longer output is measured
// first and formatted again into a buffer of exactly the right size.
func StringPrintfVargs(out Appender, format string, args []any) error {
	var scratch [printfScratchSize]byte
	n := Vsnprintf(scratch[:], format, args)
	if n < len(scratch) {
		return out.Append(scratch[:n])
	}

	buf := make([]byte, n+1)
	Vsnprintf(buf, format, args)
	return out.Append(buf[:n])
}

// StringPrintf is the variadic form of StringPrintfVargs.
func StringPrintf(out Appender, format string, args ...any) error {
	return StringPrintfVargs(out, format, args)
}

// ReplaceAll replaces every occurrence of from in str with to. Matches are
// found left to right and never overlap; scanning resumes after the
// replaced span. str is read up to its terminator. An empty from leaves
// str unchanged.
func ReplaceAll[T Bytes](str T, from, to string) string {
	n := Strlen(str)
	from = from[:Strlen(from)]
	if len(from) == 0 {
		return string(str)[:n]
	}

	var b strings.Builder
	b.Grow(n)
	start := 0
	for {
		i := search(str, from, start, n, false)
		if i < 0 {
			break
		}
		writeRange(&b, str, start, i)
		b.WriteString(to)
		start = i + len(from)
	}
	writeRange(&b, str, start, n)
	return b.String()
}

// ReplaceAllString returns a new String, bound to the allocator of src,
// holding src with every from replaced by to.
func ReplaceAllString(src *String, from, to string) (*String, error) {
	out := NewString(src.Allocator())
	if err := out.SetString(ReplaceAll(src.Bytes(), from, to)); err != nil {
		return nil, err
	}
	return out, nil
}

func writeRange[T Bytes](b *strings.Builder, str T, from, to int) {
	for i := from; i < to; i++ {
		b.WriteByte(str[i])
	}
}

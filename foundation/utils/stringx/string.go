// File: string.go
// Title: Owning Allocator-Bound String
// Description: String owns a terminated, growable buffer obtained from one
//              allocx.Allocator and returns it to the same allocator.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-30
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-30 v0.3.0: Initial implementation
// - 2026-10-14 v0.3.2: Coded out-of-memory errors, aliasing-safe Append

package stringx

import (
	"unsafe"

	scerror "github.com/msto63/strcore/foundation/core/error"
	"github.com/msto63/strcore/foundation/utils/allocx"
)

// emptyBuf backs every String without an owned buffer. It is never written.
var emptyBuf = [1]byte{0}

// String owns a buffer of at least Len()+1 bytes that always holds a
// terminator after the content. The allocator is bound on construction, or
// on first use for the zero value, and never changes afterwards.
//
// A String is not safe for concurrent mutation. Release returns the buffer;
// a released String is empty and may be reused.
type String struct {
	alloc allocx.Allocator
	buf   []byte
	n     uint32
}

// NewString returns an empty String bound to a. A nil a binds
// allocx.Default().
func NewString(a allocx.Allocator) *String {
	if a == nil {
		a = allocx.Default()
	}
	return &String{alloc: a}
}

// NewStringFrom returns a String bound to a holding a copy of p up to its
// terminator.
func NewStringFrom(a allocx.Allocator, p []byte) (*String, error) {
	s := NewString(a)
	if err := s.Set(p); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStringFromView returns a String bound to a holding a copy of v.
func NewStringFromView(a allocx.Allocator, v StringView) (*String, error) {
	return NewStringFrom(a, v.Ptr())
}

// Allocator returns the bound allocator, binding the default if needed.
func (s *String) Allocator() allocx.Allocator {
	if s.alloc == nil {
		s.alloc = allocx.Default()
	}
	return s.alloc
}

// Set replaces the content with p up to its terminator. A fresh buffer of
// exactly n+1 bytes is allocated before the old one is freed, so p may
// alias the current content. On error the String is unchanged.
func (s *String) Set(p []byte) error {
	n := Strlen(p)
	if n == 0 {
		s.Clear()
		return nil
	}
	if err := checkLength(n, "Set"); err != nil {
		return err
	}

	a := s.Allocator()
	buf, err := a.Allocate(n + 1)
	if err != nil {
		return outOfMemory(err, "Set", n+1)
	}
	copyN(buf, p, n)
	buf[n] = 0

	if s.buf != nil {
		a.Free(s.buf)
	}
	s.buf = buf
	s.n = uint32(n)
	return nil
}

// SetString replaces the content with str up to its terminator.
func (s *String) SetString(str string) error {
	return s.Set(stringBytes(str))
}

// SetView replaces the content with a copy of v.
func (s *String) SetView(v StringView) error {
	return s.Set(v.Ptr())
}

// Append grows the buffer to Len()+n+1 bytes through Reallocate and copies
// p up to its terminator behind the current content. On error the String
// is unchanged.
func (s *String) Append(p []byte) error {
	n := Strlen(p)
	if n == 0 {
		return nil
	}
	total := int(s.n) + n
	if err := checkLength(total, "Append"); err != nil {
		return err
	}
	if overlaps(s.buf, p) {
		p = append([]byte(nil), p[:n]...)
	}

	a := s.Allocator()
	var buf []byte
	var err error
	if s.buf == nil {
		buf, err = a.Allocate(total + 1)
	} else {
		buf, err = a.Reallocate(s.buf, total+1)
	}
	if err != nil {
		return outOfMemory(err, "Append", total+1)
	}
	copyN(buf[s.n:], p, n)
	buf[total] = 0

	s.buf = buf
	s.n = uint32(total)
	return nil
}

// AppendString appends str up to its terminator.
func (s *String) AppendString(str string) error {
	return s.Append(stringBytes(str))
}

// AppendView appends the content of v.
func (s *String) AppendView(v StringView) error {
	return s.Append(v.Ptr())
}

// Clear sets the length to 0 and keeps the buffer for reuse.
func (s *String) Clear() {
	if s.buf != nil {
		s.buf[0] = 0
	}
	s.n = 0
}

// Release frees the buffer through the bound allocator. It is safe to call
// more than once.
func (s *String) Release() {
	if s.buf != nil {
		s.Allocator().Free(s.buf)
		s.buf = nil
	}
	s.n = 0
}

// Bytes returns the content without the terminator.
func (s *String) Bytes() []byte {
	if s.buf == nil {
		return emptyBuf[:0:0]
	}
	return s.buf[:s.n]
}

// Ptr returns the content followed by its terminator, Len()+1 bytes. The
// result must not be modified.
func (s *String) Ptr() []byte {
	if s.buf == nil {
		return emptyBuf[:1:1]
	}
	return s.buf[:s.n+1]
}

// Len returns the content length.
func (s *String) Len() uint32 { return s.n }

// IsEmpty reports whether the content is empty.
func (s *String) IsEmpty() bool { return s.n == 0 }

// View returns a view of the content. Its Term() starts with the
// terminator. The view is invalidated by the next mutation of s.
func (s *String) View() StringView {
	return StringView{ptr: s.Ptr(), len: s.n}
}

// String copies the content into a Go string.
func (s *String) String() string { return string(s.Bytes()) }

// Clone returns an independent copy bound to the same allocator.
func (s *String) Clone() (*String, error) {
	return NewStringFrom(s.Allocator(), s.Bytes())
}

func checkLength(n int, op string) error {
	if uint64(n)+1 > allocx.MaxAllocSize {
		return scerror.New("string length exceeds allocator limit").
			WithCode(scerror.CodeOutOfMemory).
			WithOperation("stringx.String." + op).
			WithDetail("length", n)
	}
	return nil
}

func outOfMemory(err error, op string, size int) error {
	return scerror.Wrap(err, "stringx: "+op+" could not allocate").
		WithCode(scerror.CodeOutOfMemory).
		WithSeverity(scerror.SeverityHigh).
		WithOperation("stringx.String." + op).
		WithDetail("requested", size)
}

// overlaps reports whether p points into the backing array of buf.
func overlaps(buf, p []byte) bool {
	if cap(buf) == 0 || len(p) == 0 {
		return false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	return ptr >= base && ptr < base+uintptr(cap(buf))
}

// File: view.go
// Title: Non-Owning String View
// Description: StringView pairs borrowed bytes with an explicit length. It
//              never allocates, copies or terminates.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-30
// Modified: 2026-10-06
//
// Change History:
// - 2026-09-30 v0.3.0: Initial implementation
// - 2026-10-06 v0.3.1: Zero-copy views over Go strings

package stringx

import "unsafe"

// StringView is a borrowed (bytes, length) pair. The bytes belong to the
// caller and must outlive the view. Content is not guaranteed to be
// followed by a terminator; use Term only when the backing store is known
// to be terminated, or copy into a String.
//
// Copies of a StringView are shallow.
type StringView struct {
	ptr []byte
	len uint32
}

// NewView views p up to its terminator, scanning at most DefaultViewLength
// bytes.
func NewView(p []byte) StringView {
	var v StringView
	v.Set(p)
	return v
}

// NewViewN views the first n bytes of p without looking for a terminator.
// n is capped at len(p).
func NewViewN(p []byte, n uint32) StringView {
	var v StringView
	v.SetN(p, n)
	return v
}

// ViewString views s without copying, with the same terminator scan as
// NewView. The returned view aliases the string's memory, which must never
// be written through.
func ViewString(s string) StringView {
	return NewView(stringBytes(s))
}

// stringBytes aliases the bytes of s. The result is read-only.
func stringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Set rebinds the view to p up to its terminator.
func (v *StringView) Set(p []byte) {
	v.ptr = p
	v.len = uint32(Strnlen(p, DefaultViewLength))
}

// SetN rebinds the view to the first n bytes of p.
func (v *StringView) SetN(p []byte, n uint32) {
	if uint64(n) > uint64(len(p)) {
		n = uint32(len(p))
	}
	v.ptr = p
	v.len = n
}

// Clear resets the view to nil with length 0.
func (v *StringView) Clear() {
	v.ptr = nil
	v.len = 0
}

// Ptr returns the viewed content.
func (v StringView) Ptr() []byte { return v.ptr[:v.len] }

// Term returns the backing bytes following the content. Its first byte is
// a terminator only if the backing store happens to have one there; an
// empty result means the content runs to the end of the backing store.
func (v StringView) Term() []byte { return v.ptr[v.len:] }

// Len returns the content length.
func (v StringView) Len() uint32 { return v.len }

// IsEmpty reports whether the view has no content.
func (v StringView) IsEmpty() bool { return v.len == 0 }

// String copies the content into a Go string.
func (v StringView) String() string { return string(v.Ptr()) }

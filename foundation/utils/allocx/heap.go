// File: heap.go
// Title: Heap Allocator
// Description: Allocator backed directly by the Go heap.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation

package allocx

// Heap allocates with make and lets the garbage collector reclaim freed
// buffers. The zero value is ready to use.
type Heap struct{}

// Allocate returns a zeroed buffer of exactly size bytes.
func (Heap) Allocate(size int) ([]byte, error) {
	if err := checkSize("allocx.Heap.Allocate", size); err != nil {
		return nil, err
	}
	return make([]byte, size), nil
}

// Reallocate grows in place when capacity allows, otherwise copies.
func (Heap) Reallocate(buf []byte, size int) ([]byte, error) {
	if err := checkSize("allocx.Heap.Reallocate", size); err != nil {
		return nil, err
	}
	if size <= cap(buf) {
		return buf[:size], nil
	}
	grown := make([]byte, size)
	copy(grown, buf)
	return grown, nil
}

// Free is a no-op.
func (Heap) Free([]byte) {}

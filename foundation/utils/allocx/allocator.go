// File: allocator.go
// Title: Allocator Interface and Process Default
// Description: The allocate/reallocate/free contract plus the process-wide
//              default used by zero-value owning strings.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-30
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Error helpers shared by all allocators

package allocx

import (
	"sync"

	scerror "github.com/msto63/strcore/foundation/core/error"
)

// MaxAllocSize is the largest single buffer any allocator in this package
// hands out. Owning strings store their length as uint32.
const MaxAllocSize = 1<<32 - 1

// Allocator is the capability owning buffers are built on.
//
// Allocate returns a buffer with len == size. Reallocate returns a buffer
// with len == size whose first min(len(buf), size) bytes equal buf; buf must
// not be used afterwards. A nil buf makes Reallocate behave like Allocate.
// Free returns buf to the allocator; passing nil is a no-op.
//
// Failure is reported as a *error.Error with CodeOutOfMemory or
// CodeInvalidInput. A failed Reallocate leaves buf valid and untouched.
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Reallocate(buf []byte, size int) ([]byte, error)
	Free(buf []byte)
}

var (
	defaultMu        sync.RWMutex
	defaultAllocator Allocator = Heap{}
)

// Default returns the process-wide allocator.
func Default() Allocator {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultAllocator
}

// SetDefault replaces the process-wide allocator and returns the previous
// one. Strings already bound to the previous allocator keep using it.
// A nil allocator restores Heap.
func SetDefault(a Allocator) Allocator {
	if a == nil {
		a = Heap{}
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultAllocator
	defaultAllocator = a
	return prev
}

func checkSize(op string, size int) error {
	if size < 0 {
		return scerror.New("negative allocation size").
			WithCode(scerror.CodeInvalidInput).
			WithOperation(op).
			WithDetail("requested", size)
	}
	if uint64(size) > MaxAllocSize {
		return outOfMemory(op, size, "request exceeds MaxAllocSize")
	}
	return nil
}

func outOfMemory(op string, size int, reason string) *scerror.Error {
	return scerror.New("out of memory: "+reason).
		WithCode(scerror.CodeOutOfMemory).
		WithOperation(op).
		WithDetail("requested", size)
}

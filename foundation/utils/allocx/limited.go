// File: limited.go
// Title: Budget-Limited Allocator
// Description: Decorator that caps the number of bytes outstanding through
//              an underlying allocator.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial implementation

package allocx

import (
	"sync"
)

// Limited fails allocations with CodeOutOfMemory once the bytes handed out
// and not yet freed would exceed Budget. Accounting uses len of the buffers
// passed in, so callers must Free exactly what they were given.
type Limited struct {
	next   Allocator
	budget int

	mu   sync.Mutex
	used int
}

// NewLimited wraps next with a byte budget. A nil next uses Heap.
func NewLimited(next Allocator, budget int) *Limited {
	if next == nil {
		next = Heap{}
	}
	if budget < 0 {
		budget = 0
	}
	return &Limited{next: next, budget: budget}
}

// Budget returns the configured limit.
func (l *Limited) Budget() int { return l.budget }

// Used returns the bytes currently outstanding.
func (l *Limited) Used() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.used
}

// Allocate reserves size bytes from the budget before delegating.
func (l *Limited) Allocate(size int) ([]byte, error) {
	const op = "allocx.Limited.Allocate"
	if err := checkSize(op, size); err != nil {
		return nil, err
	}
	if err := l.reserve(op, size); err != nil {
		return nil, err
	}
	buf, err := l.next.Allocate(size)
	if err != nil {
		l.release(size)
		return nil, err
	}
	return buf, nil
}

// Reallocate reserves only the growth; shrinking gives bytes back.
func (l *Limited) Reallocate(buf []byte, size int) ([]byte, error) {
	const op = "allocx.Limited.Reallocate"
	if err := checkSize(op, size); err != nil {
		return nil, err
	}
	delta := size - len(buf)
	if delta > 0 {
		if err := l.reserve(op, delta); err != nil {
			return nil, err
		}
	}
	out, err := l.next.Reallocate(buf, size)
	if err != nil {
		if delta > 0 {
			l.release(delta)
		}
		return nil, err
	}
	if delta < 0 {
		l.release(-delta)
	}
	return out, nil
}

// Free gives len(buf) bytes back to the budget.
func (l *Limited) Free(buf []byte) {
	if buf == nil {
		return
	}
	l.release(len(buf))
	l.next.Free(buf)
}

func (l *Limited) reserve(op string, n int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > l.budget-l.used {
		return outOfMemory(op, n, "budget exhausted").
			WithDetail("budget", l.budget).
			WithDetail("used", l.used)
	}
	l.used += n
	return nil
}

func (l *Limited) release(n int) {
	l.mu.Lock()
	l.used -= n
	if l.used < 0 {
		l.used = 0
	}
	l.mu.Unlock()
}

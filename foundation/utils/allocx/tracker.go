// File: tracker.go
// Title: Tracking Allocator
// Description: Decorator counting allocator traffic and tracing each event.
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

	"github.com/msto63/strcore/foundation/core/log"
)

// Stats is a snapshot of a Tracker's counters.
type Stats struct {
	Allocations   int64
	Reallocations int64
	Frees         int64
	Failures      int64
	LiveBytes     int64
	PeakBytes     int64
}

// Tracker forwards to another allocator and records what passes through.
type Tracker struct {
	next   Allocator
	logger *log.Logger

	mu    sync.Mutex
	stats Stats
}

// NewTracker wraps next. A nil next uses Heap, a nil logger discards.
func NewTracker(next Allocator, logger *log.Logger) *Tracker {
	if next == nil {
		next = Heap{}
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Tracker{next: next, logger: logger.WithName("allocx")}
}

// Stats returns a copy of the current counters.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// Allocate forwards and records the allocation.
func (t *Tracker) Allocate(size int) ([]byte, error) {
	buf, err := t.next.Allocate(size)
	if err != nil {
		t.fail(err)
		return nil, err
	}
	t.mu.Lock()
	t.stats.Allocations++
	t.grow(int64(len(buf)))
	t.mu.Unlock()
	t.logger.Trace("allocate", log.Fields{"size": size})
	return buf, nil
}

// Reallocate forwards and records the size change.
func (t *Tracker) Reallocate(buf []byte, size int) ([]byte, error) {
	old := len(buf)
	out, err := t.next.Reallocate(buf, size)
	if err != nil {
		t.fail(err)
		return nil, err
	}
	t.mu.Lock()
	if buf == nil {
		t.stats.Allocations++
	} else {
		t.stats.Reallocations++
	}
	t.grow(int64(len(out) - old))
	t.mu.Unlock()
	t.logger.Trace("reallocate", log.Fields{"from": old, "to": size})
	return out, nil
}

// Free forwards and records the release.
func (t *Tracker) Free(buf []byte) {
	if buf == nil {
		return
	}
	t.mu.Lock()
	t.stats.Frees++
	t.grow(-int64(len(buf)))
	t.mu.Unlock()
	t.logger.Trace("free", log.Fields{"size": len(buf)})
	t.next.Free(buf)
}

// grow must be called with mu held.
func (t *Tracker) grow(delta int64) {
	t.stats.LiveBytes += delta
	if t.stats.LiveBytes > t.stats.PeakBytes {
		t.stats.PeakBytes = t.stats.LiveBytes
	}
}

func (t *Tracker) fail(err error) {
	t.mu.Lock()
	t.stats.Failures++
	t.mu.Unlock()
	t.logger.LogError(err)
}

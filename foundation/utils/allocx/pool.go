// File: pool.go
// Title: Pooled Size-Class Allocator
// Description: Recycles buffers in power-of-two size classes through
//              sync.Pool. Requests above the largest class fall through to
//              the heap.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-08
// Modified: 2026-10-08
//
// Change History:
// - 2026-10-08 v0.1.1: Initial implementation

package allocx

import (
	"math/bits"
	"sync"
)

const (
	minClassShift = 4  // 16 bytes
	maxClassShift = 20 // 1 MiB
	numClasses    = maxClassShift - minClassShift + 1
)

// Pool is an Allocator recycling buffers by size class. Use NewPool; the
// zero value is not usable.
type Pool struct {
	classes [numClasses]sync.Pool
}

// NewPool creates an empty pool allocator.
func NewPool() *Pool {
	p := &Pool{}
	for i := range p.classes {
		size := 1 << (minClassShift + i)
		p.classes[i].New = func() interface{} {
			return make([]byte, size)
		}
	}
	return p
}

// classFor returns the class index for size, or -1 when size exceeds the
// largest class.
func classFor(size int) int {
	if size <= 1<<minClassShift {
		return 0
	}
	shift := bits.Len(uint(size - 1))
	if shift > maxClassShift {
		return -1
	}
	return shift - minClassShift
}

// Allocate returns a buffer of len size whose capacity is the class size.
// Recycled buffers are not zeroed.
func (p *Pool) Allocate(size int) ([]byte, error) {
	if err := checkSize("allocx.Pool.Allocate", size); err != nil {
		return nil, err
	}
	class := classFor(size)
	if class < 0 {
		return make([]byte, size), nil
	}
	buf := p.classes[class].Get().([]byte)
	return buf[:size], nil
}

// Reallocate reuses buf when its class already fits size.
func (p *Pool) Reallocate(buf []byte, size int) ([]byte, error) {
	if err := checkSize("allocx.Pool.Reallocate", size); err != nil {
		return nil, err
	}
	if buf == nil {
		return p.Allocate(size)
	}
	if size <= cap(buf) {
		return buf[:size], nil
	}
	grown, err := p.Allocate(size)
	if err != nil {
		return nil, err
	}
	copy(grown, buf)
	p.Free(buf)
	return grown, nil
}

// Free returns buf to its class. Buffers whose capacity is not an exact
// class size came from elsewhere and are left to the garbage collector.
func (p *Pool) Free(buf []byte) {
	c := cap(buf)
	if c == 0 || c&(c-1) != 0 {
		return
	}
	class := classFor(c)
	if class < 0 || 1<<(minClassShift+class) != c {
		return
	}
	p.classes[class].Put(buf[:c])
}

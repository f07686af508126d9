// File: murmur2a.go
// Title: MurmurHash2A Implementation
// Description: One-shot and streaming MurmurHash2A over byte sequences.
//              Blocks are read little-endian regardless of host byte order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation

package hashx

import (
	"encoding/binary"
	"hash"
)

const (
	murmurM = 0x5bd1e995
	murmurR = 24
)

// Murmur2A is a streaming MurmurHash2A state. The zero value is ready to
// use with seed 0.
type Murmur2A struct {
	seed  uint32
	hash  uint32
	tail  uint32
	count uint32
	size  uint32
}

var _ hash.Hash32 = (*Murmur2A)(nil)

// NewMurmur2A returns a streaming hash seeded with seed.
func NewMurmur2A(seed uint32) *Murmur2A {
	return &Murmur2A{seed: seed, hash: seed}
}

// Sum32Bytes hashes data with seed 0.
func Sum32Bytes(data []byte) uint32 {
	return Sum32Seed(data, 0)
}

// Sum32String hashes s with seed 0 without copying it.
func Sum32String(s string) uint32 {
	var h Murmur2A
	h.WriteString(s)
	return h.Sum32()
}

// Sum32Seed hashes data with the given seed.
func Sum32Seed(data []byte, seed uint32) uint32 {
	h := NewMurmur2A(seed)
	_, _ = h.Write(data)
	return h.Sum32()
}

func mmix(h, k uint32) uint32 {
	k *= murmurM
	k ^= k >> murmurR
	k *= murmurM
	h *= murmurM
	h ^= k
	return h
}

// Write adds p to the running hash. It never returns an error.
func (m *Murmur2A) Write(p []byte) (int, error) {
	n := len(p)
	m.size += uint32(n)

	p = m.mixTail(p)
	for len(p) >= 4 {
		m.hash = mmix(m.hash, binary.LittleEndian.Uint32(p))
		p = p[4:]
	}
	m.mixTail(p)

	return n, nil
}

// WriteString adds s to the running hash.
func (m *Murmur2A) WriteString(s string) (int, error) {
	n := len(s)
	m.size += uint32(n)

	for len(s) > 0 && (len(s) < 4 || m.count != 0) {
		m.pushTail(s[0])
		s = s[1:]
	}
	for len(s) >= 4 {
		k := uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
		m.hash = mmix(m.hash, k)
		s = s[4:]
	}
	for i := 0; i < len(s); i++ {
		m.pushTail(s[i])
	}

	return n, nil
}

// mixTail feeds bytes into the partial block while one is pending or
// fewer than four bytes remain.
func (m *Murmur2A) mixTail(p []byte) []byte {
	for len(p) > 0 && (len(p) < 4 || m.count != 0) {
		m.pushTail(p[0])
		p = p[1:]
	}
	return p
}

func (m *Murmur2A) pushTail(b byte) {
	m.tail |= uint32(b) << (m.count * 8)
	m.count++
	if m.count == 4 {
		m.hash = mmix(m.hash, m.tail)
		m.tail = 0
		m.count = 0
	}
}

// Sum32 returns the hash of everything written so far. The state is not
// modified, so writing may continue.
func (m *Murmur2A) Sum32() uint32 {
	h := mmix(m.hash, m.tail)
	h = mmix(h, m.size)

	h ^= h >> 13
	h *= murmurM
	h ^= h >> 15

	return h
}

// Sum appends the big-endian hash to b.
func (m *Murmur2A) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, m.Sum32())
}

// Reset restores the initial seeded state.
func (m *Murmur2A) Reset() {
	*m = Murmur2A{seed: m.seed, hash: m.seed}
}

// Size returns 4.
func (m *Murmur2A) Size() int { return 4 }

// BlockSize returns 4.
func (m *Murmur2A) BlockSize() int { return 4 }

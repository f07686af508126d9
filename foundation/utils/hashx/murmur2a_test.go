// File: murmur2a_test.go
// Title: MurmurHash2A Tests
// Description: Reference vectors and streaming/one-shot equivalence.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.1.0: Initial tests

package hashx

import (
	"testing"
)

func TestSum32Vectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint32
	}{
		{"empty", "", 0x00000000},
		{"single byte", "a", 0x0803888b},
		{"one block", "test", 0x3d31ccc8},
		{"block plus tail", "hello, world", 0x8b5516c4},
		{"sentence", "The Quick Brown Fox Jumps Over The Lazy Dog.", 0x7f9f3f0d},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum32Bytes([]byte(tt.input)); got != tt.want {
				t.Errorf("Sum32Bytes(%q) = %#08x, want %#08x", tt.input, got, tt.want)
			}
			if got := Sum32String(tt.input); got != tt.want {
				t.Errorf("Sum32String(%q) = %#08x, want %#08x", tt.input, got, tt.want)
			}
		})
	}
}

func TestSum32Seed(t *testing.T) {
	if got := Sum32Seed([]byte("test"), 1); got != 0x2a322c4b {
		t.Errorf("Sum32Seed(test, 1) = %#08x, want 0x2a322c4b", got)
	}
	if Sum32Seed([]byte("test"), 1) == Sum32Bytes([]byte("test")) {
		t.Error("seed should change the result")
	}
}

func TestStreamingMatchesOneShot(t *testing.T) {
	input := []byte("The Quick Brown Fox Jumps Over The Lazy Dog.")
	want := Sum32Bytes(input)

	for chunk := 1; chunk <= len(input); chunk++ {
		h := NewMurmur2A(0)
		for i := 0; i < len(input); i += chunk {
			end := i + chunk
			if end > len(input) {
				end = len(input)
			}
			if i%2 == 0 {
				h.Write(input[i:end])
			} else {
				h.WriteString(string(input[i:end]))
			}
		}
		if got := h.Sum32(); got != want {
			t.Errorf("chunk %d: Sum32() = %#08x, want %#08x", chunk, got, want)
		}
	}
}

func TestSumDoesNotFinalizeState(t *testing.T) {
	var h Murmur2A
	h.WriteString("hello, ")
	_ = h.Sum32()
	h.WriteString("world")

	if got := h.Sum32(); got != 0x8b5516c4 {
		t.Errorf("Sum32() after continued writes = %#08x", got)
	}
}

func TestResetAndSum(t *testing.T) {
	h := NewMurmur2A(1)
	h.WriteString("garbage")
	h.Reset()
	h.WriteString("test")

	if got := h.Sum32(); got != 0x2a322c4b {
		t.Errorf("Sum32() after Reset = %#08x", got)
	}

	sum := h.Sum([]byte{0xff})
	if len(sum) != 5 || sum[0] != 0xff || sum[1] != 0x2a || sum[4] != 0x4b {
		t.Errorf("Sum() = %x", sum)
	}
	if h.Size() != 4 || h.BlockSize() != 4 {
		t.Error("Size and BlockSize must be 4")
	}
}

// File: misc_test.go
// Title: Miscellaneous Utility Tests
// Description: Prettify units, base names, line ending normalization,
//              identifier matching, boolean parsing and hashing.
// Author: msto63
// Version: v0.3.1
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-02 v0.3.0: Initial tests
// - 2026-10-09 v0.3.1: IEC prettify output

package stringx

import (
	"testing"

	"github.com/msto63/strcore/foundation/utils/hashx"
)

func TestPrettify(t *testing.T) {
	tests := []struct {
		size     uint64
		expected string
	}{
		{0, "0 B"},
		{5, "5 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{82854982, "79 MiB"},
		{1 << 30, "1.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			dst := make([]byte, 32)
			n := Prettify(dst, tt.size)
			if n != len(tt.expected) || content(dst) != tt.expected {
				t.Errorf("Prettify(%d) = %d, %q; want %q", tt.size, n, content(dst), tt.expected)
			}
		})
	}
}

func TestPrettifyTruncates(t *testing.T) {
	dst := make([]byte, 4)
	if n := Prettify(dst, 1024); n != len("1.0 KiB") {
		t.Errorf("Prettify() = %d; want %d", n, len("1.0 KiB"))
	}
	if content(dst) != "1.0" {
		t.Errorf("dst = %q; want 1.0", content(dst))
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/usr/local/bin/strx", "strx"},
		{`C:\tools\strx.exe`, "strx.exe"},
		{"mixed/dir\\file.txt", "file.txt"},
		{"plain", "plain"},
		{"trailing/", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := tt.path[BaseName(tt.path):]; got != tt.expected {
			t.Errorf("BaseName(%q) = %q; want %q", tt.path, got, tt.expected)
		}
	}
}

func TestEolLF(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		size     int
		expected string
	}{
		{"mixed", "a\r\nb\rc", 32, "a\nb\nc"},
		{"lf untouched", "a\nb\n", 32, "a\nb\n"},
		{"crlf at end", "line\r\n", 32, "line\n"},
		{"double cr", "a\r\r\nb", 32, "a\n\nb"},
		{"truncated", "a\r\nbcdef", 4, "a\nb"},
		{"single byte buffer", "abc", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.size)
			n := EolLF(dst, tt.input)
			if n != len(tt.expected) || content(dst) != tt.expected {
				t.Errorf("EolLF(%q) = %d, %q; want %q", tt.input, n, content(dst), tt.expected)
			}
		})
	}

	if n := EolLF(nil, "abc"); n != 0 {
		t.Errorf("EolLF(nil) = %d; want 0", n)
	}
}

func TestFindIdentifierMatch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		word     string
		expected int
	}{
		{"standalone", "int foo = bar;", "foo", 4},
		{"at start", "foo(bar)", "foo", 0},
		{"at end", "return foo", "foo", 7},
		{"prefix of longer", "foobar foo", "foo", 7},
		{"suffix of longer", "my_foo foo", "foo", 7},
		{"underscore joins", "foo_ foo", "foo", 5},
		{"digit joins", "foo1", "foo", -1},
		{"absent", "bar baz", "foo", -1},
		{"empty word", "foo", "", -1},
		{"punctuation boundary", "x.foo+1", "foo", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindIdentifierMatch(tt.input, tt.word); got != tt.expected {
				t.Errorf("FindIdentifierMatch(%q, %q) = %d; want %d", tt.input, tt.word, got, tt.expected)
			}
		})
	}
}

func TestFindAnyIdentifierMatch(t *testing.T) {
	const src = "uniform vec4 u_color; varying vec2 v_uv;"

	if got := FindAnyIdentifierMatch(src, "vec2", "vec4"); got != 30 {
		t.Errorf("list order should win: got %d; want 30", got)
	}
	if got := FindAnyIdentifierMatch(src, "vec3", "color"); got != -1 {
		t.Errorf("got %d; want -1", got)
	}
	if got := FindAnyIdentifierMatch(src); got != -1 {
		t.Errorf("empty list = %d; want -1", got)
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"yes", true},
		{"On", true},
		{"1", true},
		{"true\x00junk", true},
		{"false", false},
		{"no", false},
		{"0", false},
		{"", false},
		{"truth", false},
		{" true", false},
		{"yes!", false},
		{"10", false},
	}

	for _, tt := range tests {
		if got := ToBool(tt.input); got != tt.expected {
			t.Errorf("ToBool(%q) = %v; want %v", tt.input, got, tt.expected)
		}
	}
}

func TestHashMurmur2A(t *testing.T) {
	if got := HashMurmur2AString("test"); got != hashx.Sum32String("test") {
		t.Errorf("HashMurmur2AString(test) = %#08x", got)
	}
	if HashMurmur2AString([]byte("test\x00ignored")) != HashMurmur2AString("test") {
		t.Error("hash must stop at the terminator")
	}

	v := NewViewN([]byte("testing"), 4)
	if HashMurmur2A(v) != hashx.Sum32String("test") {
		t.Error("view hash must cover only the viewed range")
	}
	if HashMurmur2A(StringView{}) != 0 {
		t.Error("empty view must hash to 0")
	}
}

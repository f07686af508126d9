// File: compare.go
// Title: Bounded Comparison and Search
// Description: Case-sensitive and ASCII case-insensitive comparison and
//              substring search, each confined by an explicit length cap.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.3.0: Initial implementation

package stringx

// Strincmp compares up to max bytes of a and b after ASCII lower-casing.
// It stops at the first mismatch or at a terminator in either input and
// returns the difference of the lower-cased bytes there, or 0 once max
// bytes compared equal.
func Strincmp[A, B Bytes](a A, b B, max int) int {
	for i := 0; i < max; i++ {
		ca, cb := ToLower(at(a, i)), ToLower(at(b, i))
		if ca != cb || ca == 0 {
			return int(ca) - int(cb)
		}
	}
	return 0
}

// Stricmp is Strincmp without a cap.
func Stricmp[A, B Bytes](a A, b B) int {
	return Strincmp(a, b, Unbounded)
}

// Strncmp is the case-sensitive form of Strincmp.
func Strncmp[A, B Bytes](a A, b B, max int) int {
	for i := 0; i < max; i++ {
		ca, cb := at(a, i), at(b, i)
		if ca != cb || ca == 0 {
			return int(ca) - int(cb)
		}
	}
	return 0
}

// Strcmp is Strncmp without a cap.
func Strcmp[A, B Bytes](a A, b B) int {
	return Strncmp(a, b, Unbounded)
}

// Strnstr returns the index of the first occurrence of find that lies
// entirely within the first size content bytes of str, or -1. An empty
// find matches at 0.
func Strnstr[A, B Bytes](str A, find B, size int) int {
	return search(str, find, 0, Strnlen(str, size), false)
}

// Strstr is Strnstr without a cap.
func Strstr[A, B Bytes](str A, find B) int {
	return Strnstr(str, find, Unbounded)
}

// Stristr is the ASCII case-insensitive form of Strnstr.
func Stristr[A, B Bytes](str A, find B, max int) int {
	return search(str, find, 0, Strnlen(str, max), true)
}

// search looks for find in str[from:limit]. limit must not exceed the
// content length of str.
func search[A, B Bytes](str A, find B, from, limit int, fold bool) int {
	m := Strlen(find)
	if m == 0 {
		if from <= limit {
			return from
		}
		return -1
	}
	for i := from; i+m <= limit; i++ {
		j := 0
		for ; j < m; j++ {
			cs, cf := str[i+j], find[j]
			if fold {
				cs, cf = ToLower(cs), ToLower(cf)
			}
			if cs != cf {
				break
			}
		}
		if j == m {
			return i
		}
	}
	return -1
}

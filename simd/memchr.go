// Package simd provides portable bit-parallel byte-search primitives for the
// label matchers.
//
// All functions use SWAR (SIMD Within A Register) techniques: eight haystack
// bytes are processed per step using uint64 bitwise operations, which is 2-5x
// faster than byte-by-byte comparison on medium and large inputs while
// remaining pure Go and architecture-independent.
//
// The primary use case is locating candidate positions for a quoted JSON key
// inside fixed-size input blocks; candidates found here are always verified by
// the caller before being treated as matches.
package simd

import (
	"encoding/binary"
	"math/bits"
)

// SWAR constants for zero-byte detection (Hacker's Delight, 6-1).
const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Equivalent to bytes.IndexByte. Eight bytes are checked per step: the needle
// is broadcast to every byte of a uint64, XORed against the haystack chunk so
// matching bytes become zero, and the zero-byte detection formula marks match
// positions with their high bit.
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)

	// Small inputs: the SWAR setup overhead is not worth it.
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(chunk ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present. Both needles are checked
// in parallel within each 8-byte chunk.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)

	if n < 8 {
		for i := 0; i < n; i++ {
			if c := haystack[i]; c == needle1 || c == needle2 {
				return i
			}
		}
		return -1
	}

	mask1 := uint64(needle1) * lo8
	mask2 := uint64(needle2) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		z := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2)
		if z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	for ; i < n; i++ {
		if c := haystack[i]; c == needle1 || c == needle2 {
			return i
		}
	}
	return -1
}

// zeroBytes returns a word with the high bit set in every byte lane of v that
// is zero. Subtracting 0x01 from each lane borrows exactly when the lane was
// zero; masking with ^v discards lanes that had their own high bit set.
func zeroBytes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

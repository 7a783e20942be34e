package memmem

import "encoding/binary"

// SWAR constants: lo8 has the low bit of every byte lane set, hi8 the high
// bit. gather packs the high bit of each lane into the top byte of a product
// (each lane k contributes 1<<k there, and no lane sum can carry).
const (
	lo8    = 0x0101010101010101
	hi8    = 0x8080808080808080
	gather = 0x0102040810204080
)

// eqMask64 returns a bitmask over a 64-byte window where bit i is set iff
// window[i] == b. The window must be exactly 64 bytes.
//
// Each 8-byte word is XORed against the broadcast needle so matching lanes
// become zero, zero lanes are flagged in their high bit (Hacker's Delight
// 6-1), and a multiply-shift gathers the eight flags into one byte of the
// mask, emulating a vector movemask.
func eqMask64(window []byte, b byte) uint64 {
	_ = window[63]

	needle := uint64(b) * lo8

	var mask uint64
	for i := 0; i < 64; i += 8 {
		chunk := binary.LittleEndian.Uint64(window[i:])
		x := chunk ^ needle
		zeros := (x - lo8) & ^x & hi8
		mask |= (((zeros >> 7) * gather) >> 56) << i
	}
	return mask
}

// eqMask64Ref is the obviously-correct reference used by tests to pin down
// eqMask64's SWAR tricks.
func eqMask64Ref(window []byte, b byte) uint64 {
	var mask uint64
	for i, c := range window[:64] {
		if c == b {
			mask |= 1 << i
		}
	}
	return mask
}

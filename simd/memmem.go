package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Equivalent to bytes.Index, but built on Memchr with a rare-byte heuristic:
// the needle byte least likely to occur in surrounding text is located first,
// and only those candidate positions are verified against the full needle.
// For quoted JSON keys this skips almost all of the haystack, since the key's
// distinctive characters are far rarer than structural bytes.
//
// Example:
//
//	pos := simd.Memmem([]byte(`{"a":1,"key":2}`), []byte(`"key"`))
//	// pos == 7
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	if needleLen == 0 {
		return 0
	}
	if len(haystack) < needleLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	rareByte, rareIdx := selectRareByte(needle)

	at := 0
	for {
		i := Memchr(haystack[at:], rareByte)
		if i == -1 {
			return -1
		}
		at += i

		start := at - rareIdx
		if start >= 0 && start+needleLen <= len(haystack) &&
			bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}

		at++
		if at+needleLen-rareIdx > len(haystack) {
			return -1
		}
	}
}

// byteRank ranks bytes by how common they are in JSON-ish text. Lower rank
// means rarer. Structural characters, digits and lowercase ASCII letters are
// common; everything else is treated as rare.
func byteRank(b byte) int {
	switch {
	case b == ' ' || b == ',' || b == ':' || b == '"':
		return 3
	case b >= 'a' && b <= 'z':
		return 2
	case b >= '0' && b <= '9':
		return 2
	case b >= 'A' && b <= 'Z':
		return 1
	default:
		return 0
	}
}

// selectRareByte returns the needle byte with the lowest rank and its index.
// Ties go to the later position, which tends to fail candidates faster.
func selectRareByte(needle []byte) (byte, int) {
	rare, idx := needle[0], 0
	for i, b := range needle {
		if byteRank(b) <= byteRank(rare) {
			rare, idx = b, i
		}
	}
	return rare, idx
}

package memmem

import (
	"math/bits"

	"github.com/coregx/jsonlabel/input"
	"github.com/coregx/jsonlabel/query"
)

// FindInMask extracts and verifies all candidate positions encoded by a pair
// of 64-bit marker masks over one 64-byte window starting at absolute offset.
//
// Bit i of first marks a position holding the label's first character (byte 1
// of the quoted form); bit i of second marks one holding byte 2 of the quoted
// form, which for a one-character label is its closing quote. A candidate is
// any position where second holds and first held one position earlier:
//
//	result = (previousBlock | first<<1) & second
//
// previousBlock carries bit 63 of the previous window's first mask into bit
// 0, so a marker pair straddling the window boundary is detected without
// re-scanning the previous window.
//
// A set bit idx therefore sits two bytes past the opening quote, giving the
// candidate span [offset+idx-2, offset+idx+labelSize-3]. Bits are processed
// from least significant upward, so the first verified candidate is also the
// lowest absolute offset. Returns that offset+idx-2, or -1 if no candidate in
// this window verifies; the caller advances to the next window and supplies
// the next carry.
func FindInMask(in input.Input, label *query.Label, previousBlock, first, second uint64, offset int) int {
	labelSize := len(label.BytesWithQuotes())

	result := (previousBlock | first<<1) & second
	for result != 0 {
		idx := bits.TrailingZeros64(result)
		if offset+idx >= 2 && in.IsMemberMatch(offset+idx-2, offset+idx+labelSize-3, label) {
			return offset + idx - 2
		}
		result &= result - 1
	}
	return -1
}

// MaskFinder is the bit-parallel label-matching strategy. Each 64-byte
// window of each block is classified into the two marker masks consumed by
// FindInMask, with the carry bit threaded across window and block boundaries.
type MaskFinder struct {
	input input.Input
	iter  *input.BlockIterator
}

// NewMask builds a mask finder pulling blocks from iter. Ownership of the
// iterator follows the same rules as NewSequential.
func NewMask(in input.Input, iter *input.BlockIterator) *MaskFinder {
	return &MaskFinder{input: in, iter: iter}
}

// FindLabel implements Finder.
func (f *MaskFinder) FindLabel(firstBlock input.Block, startIdx int, label *query.Label) (int, input.Block, error) {
	if firstBlock != nil {
		if pos, ok := findLabelInFirstBlock(f.input, firstBlock, startIdx, label); ok {
			return pos, firstBlock, nil
		}
	}

	quoted := label.BytesWithQuotes()
	markerA := quoted[1]
	markerB := quoted[2]
	offset := f.iter.Offset()

	var carry uint64
	for {
		block, err := f.iter.Next()
		if err != nil {
			return -1, nil, err
		}
		if block == nil {
			return -1, nil, nil
		}

		for w := 0; w < len(block); w += 64 {
			window := block[w : w+64]
			first := eqMask64(window, markerA)
			second := eqMask64(window, markerB)

			if pos := FindInMask(f.input, label, carry, first, second, offset+w); pos != -1 {
				return pos, block, nil
			}
			carry = first >> 63
		}

		offset += len(block)
	}
}

package memmem

import (
	"github.com/coregx/jsonlabel/input"
	"github.com/coregx/jsonlabel/query"
	"github.com/coregx/jsonlabel/simd"
)

// SequentialFinder is the portable label-matching strategy: each block is
// scanned for the label's first character and every hit is verified against
// the input. First verified candidate in stream order wins.
type SequentialFinder struct {
	input input.Input
	iter  *input.BlockIterator
}

// NewSequential builds a sequential finder pulling blocks from iter. The
// iterator stays owned by the caller; its position after FindLabel returns is
// exactly where scanning stopped, so the caller can resume from there.
func NewSequential(in input.Input, iter *input.BlockIterator) *SequentialFinder {
	return &SequentialFinder{input: in, iter: iter}
}

// FindLabel implements Finder.
func (f *SequentialFinder) FindLabel(firstBlock input.Block, startIdx int, label *query.Label) (int, input.Block, error) {
	if firstBlock != nil {
		if pos, ok := findLabelInFirstBlock(f.input, firstBlock, startIdx, label); ok {
			return pos, firstBlock, nil
		}
	}

	labelSize := len(label.BytesWithQuotes())
	first := label.Bytes()[0]
	offset := f.iter.Offset()

	for {
		block, err := f.iter.Next()
		if err != nil {
			return -1, nil, err
		}
		if block == nil {
			return -1, nil, nil
		}

		rel := 0
		for rel < len(block) {
			i := simd.Memchr(block[rel:], first)
			if i == -1 {
				break
			}
			rel += i

			// The hit is the character after the opening quote; the byte
			// before it must be the quote itself for the span to verify.
			j := offset + rel
			if f.input.IsMemberMatch(j-1, j+labelSize-2, label) {
				return j - 1, block, nil
			}
			rel++
		}

		offset += len(block)
	}
}

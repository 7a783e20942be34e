// Package memmem locates quoted JSON object keys in a windowed input.
//
// Two interchangeable strategies implement the same Finder contract:
//
//   - SequentialFinder scans each block for the label's first character and
//     verifies every hit. It needs no bit-parallel primitives beyond a SWAR
//     byte search and serves as the portable fallback.
//   - MaskFinder classifies each 64-byte window into two marker bitmasks and
//     extracts all candidate positions bit-parallel, threading a carry bit
//     between windows so pairs straddling a window or block boundary are
//     still found exactly once.
//
// Both strategies only ever produce candidates; input.Input.IsMemberMatch is
// the single arbiter that confirms them, so the two finders are
// observationally identical and differ only in speed.
package memmem

import (
	"github.com/coregx/jsonlabel/input"
	"github.com/coregx/jsonlabel/query"
	"github.com/coregx/jsonlabel/simd"
)

// Finder searches a block stream for a label occurring as a key.
//
// FindLabel returns the absolute position of the opening quote of the first
// confirmed occurrence at or after startIdx, together with the block the
// occurrence was found in, so the caller can continue processing from that
// block without re-fetching it. A position of -1 with a nil error means the
// input was exhausted without a match.
//
// If the caller already holds the block spanning startIdx it passes it as
// firstBlock (the block must have been produced by the same iterator, so it
// is BlockSize-aligned); otherwise firstBlock is nil and scanning starts at
// the iterator's current offset.
type Finder interface {
	FindLabel(firstBlock input.Block, startIdx int, label *query.Label) (int, input.Block, error)
}

// findLabelInFirstBlock scans the tail of an already-in-hand block, beginning
// at absolute position startIdx, and verifies every first-character hit.
// Blocks come out of the iterator BlockSize-aligned, which pins the block's
// absolute start without the iterator's help.
func findLabelInFirstBlock(in input.Input, block input.Block, startIdx int, label *query.Label) (int, bool) {
	blockStart := startIdx - startIdx%input.BlockSize
	labelSize := len(label.BytesWithQuotes())
	first := label.Bytes()[0]

	rel := startIdx - blockStart
	for rel < len(block) {
		i := simd.Memchr(block[rel:], first)
		if i == -1 {
			return -1, false
		}
		rel += i

		// The hit is the first character after the hypothesized opening
		// quote, so the candidate span starts one byte earlier.
		j := blockStart + rel
		if in.IsMemberMatch(j-1, j+labelSize-2, label) {
			return j - 1, true
		}
		rel++
	}
	return -1, false
}

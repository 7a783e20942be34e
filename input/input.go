// Package input provides the windowed byte-source abstraction the label
// matchers scan over.
//
// An Input exposes the underlying JSON document two ways at once: a
// forward-only iterator yielding fixed-size blocks, and out-of-band
// random-access helpers (backward seek, whitespace skip, and the
// IsMemberMatch verifier that decides whether a candidate span really is the
// searched-for key). Matchers produce candidates from block contents alone;
// IsMemberMatch is the single arbiter that confirms or rejects them, which is
// what makes matches straddling a block boundary safe.
//
// Two backends are provided: BytesInput over an owned buffer and MmapInput
// over a memory-mapped file. Both pad their logical length up to the next
// multiple of MaxBlockSize, so a block iterator never yields a short final
// block; the padding bytes are zero and can never verify as a member match.
//
// Inputs are read-only once constructed and safe to share between concurrent
// scans, as long as each scan uses its own BlockIterator.
package input

import "github.com/coregx/jsonlabel/query"

const (
	// MaxBlockSize is the granularity inputs pad their logical length to.
	// Any block size dividing it always yields full blocks.
	MaxBlockSize = 128

	// BlockSize is the block size produced by IterBlocks, and the window
	// width assumed by the mask-based matcher.
	BlockSize = 64
)

// Block is a fixed-length read-only view into an Input at a known absolute
// offset. It borrows from the Input's storage and must not outlive it or be
// modified.
type Block []byte

// Input is the windowed byte-source contract consumed by the label matchers.
type Input interface {
	// IterBlocks starts a fresh forward cursor at offset 0, yielding blocks
	// of exactly BlockSize bytes.
	IterBlocks() *BlockIterator

	// IsMemberMatch reports whether the inclusive span [from, to] is an
	// occurrence of the label as a correctly delimited key: the bytes must
	// equal label.BytesWithQuotes() exactly, and the opening quote at from
	// must not be escaped by a preceding backslash. Out-of-range spans
	// report false.
	IsMemberMatch(from, to int, label *query.Label) bool

	// SeekBackward returns the largest position <= from holding needle,
	// or false if there is none.
	SeekBackward(from int, needle byte) (int, bool)

	// SeekNonWhitespaceForward returns the first position >= from holding a
	// non-whitespace byte, along with that byte, or false past the end.
	SeekNonWhitespaceForward(from int) (int, byte, bool)

	// SeekNonWhitespaceBackward returns the last position <= from holding a
	// non-whitespace byte, along with that byte, or false if there is none.
	SeekNonWhitespaceBackward(from int) (int, byte, bool)
}

// SliceInput is implemented by backends whose bytes are contiguous in memory.
// It adds whole-document operations that cannot be expressed block by block.
type SliceInput interface {
	Input

	// Bytes returns the padded backing storage. The slice is read-only and
	// valid for the Input's lifetime.
	Bytes() []byte

	// FindMember returns the position of the opening quote of the first
	// verified occurrence of the label as a key at or after from, or false
	// if there is none. This is the direct fast path used to skip ahead
	// without block iteration.
	FindMember(from int, label *query.Label) (int, bool)
}

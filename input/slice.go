package input

import (
	"bytes"

	"github.com/coregx/jsonlabel/query"
	"github.com/coregx/jsonlabel/simd"
)

// sliceInput implements the full Input and SliceInput surface over a padded
// contiguous byte slice. Both backends embed it; they differ only in where
// the slice comes from and how it is released.
type sliceInput struct {
	data []byte
}

func (s *sliceInput) IterBlocks() *BlockIterator {
	return &BlockIterator{data: s.data}
}

func (s *sliceInput) Bytes() []byte {
	return s.data
}

// IsMemberMatch is the arbiter for every candidate the matchers produce: the
// inclusive span [from, to] must hold exactly the quoted label, and the
// opening quote must not itself be escaped. Spans reaching outside the data
// (including candidates whose hypothesized opening quote would sit before
// offset 0) report false.
func (s *sliceInput) IsMemberMatch(from, to int, label *query.Label) bool {
	if from < 0 || to >= len(s.data) || from > to {
		return false
	}
	if !bytes.Equal(s.data[from:to+1], label.BytesWithQuotes()) {
		return false
	}
	return from == 0 || s.data[from-1] != '\\'
}

func (s *sliceInput) SeekBackward(from int, needle byte) (int, bool) {
	if from >= len(s.data) {
		from = len(s.data) - 1
	}
	for idx := from; idx >= 0; idx-- {
		if s.data[idx] == needle {
			return idx, true
		}
	}
	return 0, false
}

func (s *sliceInput) SeekNonWhitespaceForward(from int) (int, byte, bool) {
	if from < 0 {
		from = 0
	}
	for idx := from; idx < len(s.data); idx++ {
		if !isJSONWhitespace(s.data[idx]) {
			return idx, s.data[idx], true
		}
	}
	return 0, 0, false
}

func (s *sliceInput) SeekNonWhitespaceBackward(from int) (int, byte, bool) {
	if from >= len(s.data) {
		from = len(s.data) - 1
	}
	for idx := from; idx >= 0; idx-- {
		if !isJSONWhitespace(s.data[idx]) {
			return idx, s.data[idx], true
		}
	}
	return 0, 0, false
}

// FindMember is the direct fast path: scan for the quoted label with Memmem
// and verify each hit, skipping escaped or otherwise invalid occurrences.
func (s *sliceInput) FindMember(from int, label *query.Label) (int, bool) {
	quoted := label.BytesWithQuotes()
	if from < 0 {
		from = 0
	}
	for from < len(s.data) {
		i := simd.Memmem(s.data[from:], quoted)
		if i == -1 {
			return 0, false
		}
		pos := from + i
		if s.IsMemberMatch(pos, pos+len(quoted)-1, label) {
			return pos, true
		}
		from = pos + 1
	}
	return 0, false
}

// isJSONWhitespace reports whether b is insignificant whitespace per RFC 8259.
func isJSONWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// pad returns data extended with zero bytes up to the next multiple of
// MaxBlockSize. Zero bytes never verify as part of a member match, so the
// matchers can treat padding like any other content.
func pad(data []byte) []byte {
	rem := len(data) % MaxBlockSize
	if rem == 0 {
		return data
	}
	padded := make([]byte, len(data)+MaxBlockSize-rem)
	copy(padded, data)
	return padded
}

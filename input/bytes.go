package input

import (
	"fmt"
	"io"
)

// BytesInput is an Input backed by an owned in-memory buffer.
//
// The buffer is copied at construction and padded with zero bytes to a
// multiple of MaxBlockSize, so block iteration always yields full blocks.
type BytesInput struct {
	sliceInput
}

// NewBytesInput builds an input over a copy of data.
func NewBytesInput(data []byte) *BytesInput {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &BytesInput{sliceInput{data: pad(owned)}}
}

// ReadInput drains r into memory and builds an input over the result. Use
// this for sources that cannot be memory-mapped, such as pipes or terminals.
func ReadInput(r io.Reader) (*BytesInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("input: reading source: %w", err)
	}
	return &BytesInput{sliceInput{data: pad(data)}}, nil
}

// Len returns the padded logical length of the input.
func (i *BytesInput) Len() int {
	return len(i.data)
}

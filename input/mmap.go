package input

import "errors"

// ErrUnsupportedPlatform is returned by MapFile on platforms without a usable
// memory-mapping facility.
var ErrUnsupportedPlatform = errors.New("input: memory mapping is not supported on this platform")

// MmapInput is an Input backed by a read-only memory-mapped file.
//
// A memory map is by far the fastest backend for file sources: block reads
// become page-cache hits and the kernel handles readahead. The logical length
// is the file length rounded up to a multiple of MaxBlockSize, so iteration
// always yields full blocks; the rounded-up tail lands in the zero-filled
// remainder of the file's last page and never verifies as a member match.
//
// Construct with MapFile and release with Close. After Close every Block and
// slice previously obtained from the input is invalid.
type MmapInput struct {
	sliceInput
}

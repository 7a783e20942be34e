//go:build unix

package input

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MapFile maps f into memory and returns an input over the mapping.
//
// The caller must ensure that the file is not modified, in or out of process,
// for as long as the input is alive. This precondition cannot be enforced or
// detected here; violating it is undefined behavior, not an error. Sources
// that are not regular mappable files (for example a terminal) fail with the
// underlying system error.
//
// The mapping length is the file length rounded up to a multiple of
// MaxBlockSize. MaxBlockSize is smaller than a page, so the rounded-up tail
// stays inside the zero-filled remainder of the file's last page and is
// always safe to read.
func MapFile(f *os.File) (*MmapInput, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("input: stat %q: %w", f.Name(), err)
	}

	fileLen := int(info.Size())
	if fileLen == 0 {
		// Zero-length mappings are invalid; an empty input needs no mapping.
		return &MmapInput{}, nil
	}

	rem := fileLen % MaxBlockSize
	mapLen := fileLen
	if rem != 0 {
		mapLen += MaxBlockSize - rem
	}

	data, err := unix.Mmap(int(f.Fd()), 0, mapLen, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("input: mapping %q: %w", f.Name(), err)
	}

	return &MmapInput{sliceInput{data: data}}, nil
}

// Close unmaps the file. The input must not be used afterwards.
func (m *MmapInput) Close() error {
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("input: unmapping: %w", err)
	}
	return nil
}

//go:build !unix

package input

import "os"

// MapFile is unavailable on this platform; callers should fall back to
// ReadInput.
func MapFile(f *os.File) (*MmapInput, error) {
	return nil, ErrUnsupportedPlatform
}

// Close releases nothing on platforms without memory mapping.
func (m *MmapInput) Close() error {
	return nil
}

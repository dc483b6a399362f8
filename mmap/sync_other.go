//go:build unix && !linux

package mmap

import "os"

// fdatasync falls back to a full fsync where fdatasync(2) is unavailable.
func fdatasync(f *os.File) error {
	return f.Sync()
}

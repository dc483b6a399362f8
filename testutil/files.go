package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"unsafe"
)

// WriteFile writes data to a fresh file in t.TempDir and returns its path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("testutil: write %s: %v", path, err)
	}
	return path
}

// FixedBytes returns the in-memory image of a packed column of values.
func FixedBytes[T any](values []T) []byte {
	if len(values) == 0 {
		return nil
	}
	var zero T
	n := len(values) * int(unsafe.Sizeof(zero))
	src := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(values))), n)
	return append([]byte(nil), src...)
}

// WriteFixed writes values as a packed column file.
func WriteFixed[T any](t testing.TB, values []T) string {
	t.Helper()
	return WriteFile(t, "fixed.col", FixedBytes(values))
}

// StringsBytes returns the image of a variable-length column holding
// entries, with payloads packed after the slot table in entry order.
func StringsBytes(entries []string) []byte {
	const header, slot = 8, 16

	size := header + slot*len(entries)
	for _, e := range entries {
		size += len(e)
	}

	buf := make([]byte, size)
	binary.NativeEndian.PutUint64(buf[0:8], uint64(len(entries)))

	off := header + slot*len(entries)
	for i, e := range entries {
		base := header + i*slot
		binary.NativeEndian.PutUint64(buf[base:base+8], uint64(len(e)))
		binary.NativeEndian.PutUint64(buf[base+8:base+16], uint64(off))
		off += copy(buf[off:], e)
	}
	return buf
}

// WriteStrings writes entries as a variable-length column file.
func WriteStrings(t testing.TB, entries []string) string {
	t.Helper()
	return WriteFile(t, "strings.col", StringsBytes(entries))
}

// PutSlot overwrites slot i of a variable-length column image.
func PutSlot(buf []byte, i int, size, offset uint64) {
	base := 8 + i*16
	binary.NativeEndian.PutUint64(buf[base:base+8], size)
	binary.NativeEndian.PutUint64(buf[base+8:base+16], offset)
}

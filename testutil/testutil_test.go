package testutil

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	rng := NewRNG(4711)

	b := rng.Bytes(256, "ab|")

	assert.Len(t, b, 256)
	for _, c := range b {
		assert.Contains(t, "ab|", string(c))
	}
}

func TestRecords(t *testing.T) {
	rng := NewRNG(4711)

	buf := rng.Records(10, 4, ',', '\n')

	assert.Equal(t, 10, bytes.Count(buf, []byte{'\n'}))
	assert.Equal(t, 30, bytes.Count(buf, []byte{','}))
	assert.Equal(t, byte('\n'), buf[len(buf)-1])
}

func TestStrings(t *testing.T) {
	rng := NewRNG(4711)

	s := rng.Strings(50, 8, "xyz")

	assert.Len(t, s, 50)
	for _, e := range s {
		assert.LessOrEqual(t, len(e), 8)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	b1 := rng.Bytes(32, "abcdef")

	rng.Reset()
	b2 := rng.Bytes(32, "abcdef")

	assert.Equal(t, b1, b2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestFixedBytes(t *testing.T) {
	b := FixedBytes([]uint32{1, 2})
	require.Len(t, b, 8)
	assert.Equal(t, uint32(1), binary.NativeEndian.Uint32(b[0:4]))
	assert.Equal(t, uint32(2), binary.NativeEndian.Uint32(b[4:8]))

	assert.Nil(t, FixedBytes[int64](nil))
}

func TestStringsBytes(t *testing.T) {
	b := StringsBytes([]string{"ab", "", "cde"})

	require.Len(t, b, 8+3*16+5)
	assert.Equal(t, uint64(3), binary.NativeEndian.Uint64(b[0:8]))
	// slot 2: size 3 at offset 56+2
	assert.Equal(t, uint64(3), binary.NativeEndian.Uint64(b[40:48]))
	assert.Equal(t, uint64(58), binary.NativeEndian.Uint64(b[48:56]))
	assert.Equal(t, "abcde", string(b[56:]))

	PutSlot(b, 0, 9, 1)
	assert.Equal(t, uint64(9), binary.NativeEndian.Uint64(b[8:16]))
	assert.Equal(t, uint64(1), binary.NativeEndian.Uint64(b[16:24]))
}

func TestWriteFixed(t *testing.T) {
	path := WriteFixed(t, []int16{7, 8, 9})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, 6)
}

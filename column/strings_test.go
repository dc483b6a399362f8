package column

import (
	"bytes"
	"testing"

	"github.com/hupe1980/scanio/mmap"
	"github.com/hupe1980/scanio/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinSize(t *testing.T) {
	assert.Equal(t, 8, MinSize(0))
	assert.Equal(t, 8+16*3, MinSize(3))
}

func TestStrings(t *testing.T) {
	entries := []string{"alpha", "", "gamma", "δέλτα"}
	col, err := OpenStrings(testutil.WriteStrings(t, entries))
	require.NoError(t, err)
	defer col.Close()

	require.NoError(t, col.Validate())
	assert.Equal(t, len(entries), col.Len())

	t.Run("At", func(t *testing.T) {
		for i, want := range entries {
			b, err := col.At(i)
			require.NoError(t, err)
			assert.Equal(t, want, string(b))
			assert.Equal(t, len(b), cap(b))
			assert.Equal(t, want, string(col.Unchecked(i)))
		}
	})

	t.Run("String", func(t *testing.T) {
		for i, want := range entries {
			s, err := col.String(i)
			require.NoError(t, err)
			assert.Equal(t, want, s)
		}
	})

	t.Run("Slot", func(t *testing.T) {
		s, err := col.Slot(2)
		require.NoError(t, err)
		assert.Equal(t, uint64(5), s.Size)
		assert.Equal(t, uint64(MinSize(4)+5), s.Offset)
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		_, err := col.At(4)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = col.String(-1)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = col.Slot(4)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("Iter", func(t *testing.T) {
		it := col.Iter()
		assert.Equal(t, -1, it.Index())

		var got []string
		for it.Next() {
			assert.Equal(t, len(got), it.Index())
			got = append(got, string(it.Bytes()))
		}
		require.NoError(t, it.Err())
		assert.Equal(t, entries, got)
		assert.False(t, it.Next())
	})

	t.Run("All", func(t *testing.T) {
		var got []string
		for _, b := range col.All() {
			got = append(got, string(b))
		}
		assert.Equal(t, entries, got)
	})

	t.Run("Select", func(t *testing.T) {
		bm, err := col.Select(func(b []byte) bool { return bytes.HasSuffix(b, []byte("a")) })
		require.NoError(t, err)
		assert.Equal(t, []uint64{0, 2}, bm.ToArray())
	})
}

func TestStrings_RoundTripRandom(t *testing.T) {
	rng := testutil.NewRNG(99)
	entries := rng.Strings(500, 40, "abc,|\n\x00")

	col, err := OpenStrings(testutil.WriteStrings(t, entries))
	require.NoError(t, err)
	defer col.Close()

	require.Equal(t, len(entries), col.Len())
	for i, want := range entries {
		s, err := col.String(i)
		require.NoError(t, err)
		require.Equal(t, want, s)
	}
}

func TestStrings_Empty(t *testing.T) {
	col, err := OpenStrings(testutil.WriteStrings(t, nil))
	require.NoError(t, err)
	defer col.Close()

	assert.Equal(t, 0, col.Len())
	assert.NoError(t, col.Validate())
	assert.False(t, col.Iter().Next())
}

func TestNewStrings_ClosedMapping(t *testing.T) {
	m, err := mmap.Open(testutil.WriteStrings(t, []string{"a"}))
	require.NoError(t, err)
	require.NoError(t, m.Close())

	_, err = NewStrings(m)
	assert.ErrorIs(t, err, mmap.ErrClosed)
	assert.NotErrorIs(t, err, ErrLayoutViolation)
}

func TestStrings_LayoutViolation(t *testing.T) {
	t.Run("ShortHeader", func(t *testing.T) {
		_, err := OpenStrings(testutil.WriteFile(t, "short.col", []byte{1, 2, 3}))
		assert.ErrorIs(t, err, ErrLayoutViolation)
	})

	t.Run("EmptyFile", func(t *testing.T) {
		_, err := OpenStrings(testutil.WriteFile(t, "empty.col", nil))
		assert.ErrorIs(t, err, ErrLayoutViolation)
	})

	t.Run("TableExceedsFile", func(t *testing.T) {
		img := testutil.StringsBytes([]string{"a", "b"})
		img[0] = 200
		_, err := OpenStrings(testutil.WriteFile(t, "table.col", img))
		assert.ErrorIs(t, err, ErrLayoutViolation)
	})

	t.Run("HugeCount", func(t *testing.T) {
		img := testutil.StringsBytes([]string{"a"})
		for i := range 8 {
			img[i] = 0xff
		}
		_, err := OpenStrings(testutil.WriteFile(t, "huge.col", img))
		assert.ErrorIs(t, err, ErrLayoutViolation)
	})

	t.Run("SlotPastEnd", func(t *testing.T) {
		img := testutil.StringsBytes([]string{"ok", "bad", "ok"})
		testutil.PutSlot(img, 1, 10, uint64(len(img)-2))

		col, err := OpenStrings(testutil.WriteFile(t, "slot.col", img))
		require.NoError(t, err)
		defer col.Close()

		_, err = col.At(1)
		assert.ErrorIs(t, err, ErrLayoutViolation)
		assert.ErrorIs(t, col.Validate(), ErrLayoutViolation)

		b, err := col.At(0)
		require.NoError(t, err)
		assert.Equal(t, "ok", string(b))

		it := col.Iter()
		require.True(t, it.Next())
		assert.False(t, it.Next())
		assert.ErrorIs(t, it.Err(), ErrLayoutViolation)
		assert.False(t, it.Next())

		n := 0
		for range col.All() {
			n++
		}
		assert.Equal(t, 1, n)

		_, err = col.Select(func([]byte) bool { return true })
		assert.ErrorIs(t, err, ErrLayoutViolation)
	})

	t.Run("OverflowingSlot", func(t *testing.T) {
		img := testutil.StringsBytes([]string{"x"})
		testutil.PutSlot(img, 0, ^uint64(0), 20)

		col, err := OpenStrings(testutil.WriteFile(t, "overflow.col", img))
		require.NoError(t, err)
		defer col.Close()

		_, err = col.At(0)
		assert.ErrorIs(t, err, ErrLayoutViolation)
	})
}

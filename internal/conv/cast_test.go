package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint64ToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Uint64ToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := Uint64ToInt(uint64(math.MaxInt))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt(math.MaxUint64)
		assert.Error(t, err)
	})
}

func TestSpan(t *testing.T) {
	tests := []struct {
		name         string
		offset, size uint64
		limit        int
		start, end   int
		ok           bool
	}{
		{"inside", 8, 4, 16, 8, 12, true},
		{"touches limit", 12, 4, 16, 12, 16, true},
		{"empty at limit", 16, 0, 16, 16, 16, true},
		{"past limit", 13, 4, 16, 0, 0, false},
		{"offset past limit", 17, 0, 16, 0, 0, false},
		{"overflowing sum", 8, math.MaxUint64, 16, 0, 0, false},
		{"huge offset", math.MaxUint64, 1, 16, 0, 0, false},
		{"negative limit", 0, 0, -1, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := Span(tt.offset, tt.size, tt.limit)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestFitsTable(t *testing.T) {
	assert.True(t, FitsTable(8, 16, 0, 8))
	assert.True(t, FitsTable(8, 16, 2, 40))
	assert.False(t, FitsTable(8, 16, 3, 40))
	assert.False(t, FitsTable(8, 16, 0, 7))
	assert.False(t, FitsTable(8, 16, math.MaxUint64, 1<<20))
	assert.False(t, FitsTable(8, 0, 1, 16))
}

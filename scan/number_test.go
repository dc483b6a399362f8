package scan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUint(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    uint64
		wantPos int
		wantErr error
	}{
		{"StopsAtSentinel", "1234|56", 1234, 4, nil},
		{"StopsAtLimit", "987", 987, 3, nil},
		{"SingleDigit", "0,", 0, 1, nil},
		{"MaxUint64", "18446744073709551615", 18446744073709551615, 20, nil},
		{"Overflow", "18446744073709551616", 0, 0, ErrNumberOverflow},
		{"LeadingNonDigit", "|12", 0, 0, ErrMalformedNumber},
		{"Negative", "-1", 0, 0, ErrMalformedNumber},
		{"Empty", "", 0, 0, ErrMalformedNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor([]byte(tt.in))
			v, err := ParseUint(c)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var ne *NumberError
				require.True(t, errors.As(err, &ne))
				assert.Equal(t, 0, ne.Offset)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.wantPos, c.Pos())
		})
	}
}

func TestParseUint_Sequence(t *testing.T) {
	c := NewCursor([]byte("12|345|6"))
	var got []uint64
	for !c.Done() {
		v, err := ParseUint(c)
		require.NoError(t, err)
		got = append(got, v)
		c.Advance(1)
	}
	assert.Equal(t, []uint64{12, 345, 6}, got)
}

func TestParser(t *testing.T) {
	t.Run("Uint", func(t *testing.T) {
		c := NewCursor([]byte("42,7\n"))
		p := NewParser[uint64](',', '\n')

		v, err := p.Parse(c)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), v)
		assert.True(t, c.Is(','))

		c.Advance(1)
		v, err = p.Parse(c)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), v)
		assert.True(t, c.Is('\n'))
	})

	t.Run("UintTrailingGarbage", func(t *testing.T) {
		c := NewCursor([]byte("12ab,3"))
		_, err := NewParser[uint64](',', '\n').Parse(c)
		require.ErrorIs(t, err, ErrMalformedNumber)
		assert.Equal(t, 0, c.Pos())
	})

	t.Run("Int", func(t *testing.T) {
		p := NewParser[int64]('|', '\n')
		for in, want := range map[string]int64{
			"-17":                  -17,
			"+5":                   5,
			"0":                    0,
			"-9223372036854775808": -9223372036854775808,
			"9223372036854775807":  9223372036854775807,
		} {
			v, err := p.Parse(NewCursor([]byte(in + "|")))
			require.NoError(t, err, in)
			assert.Equal(t, want, v, in)
		}

		_, err := p.Parse(NewCursor([]byte("9223372036854775808")))
		require.ErrorIs(t, err, ErrNumberOverflow)
		_, err = p.Parse(NewCursor([]byte("-")))
		require.ErrorIs(t, err, ErrMalformedNumber)
	})

	t.Run("Float", func(t *testing.T) {
		p := NewParser[float64](',', '\n')
		v, err := p.Parse(NewCursor([]byte("3.25,x")))
		require.NoError(t, err)
		assert.InDelta(t, 3.25, v, 1e-12)

		_, err = p.Parse(NewCursor([]byte(",x")))
		require.ErrorIs(t, err, ErrMalformedNumber)
		_, err = p.Parse(NewCursor([]byte("1e999")))
		require.ErrorIs(t, err, ErrNumberOverflow)
	})

	t.Run("BytesAreZeroCopy", func(t *testing.T) {
		buf := []byte("alpha,beta\n")
		c := NewCursor(buf)
		v, err := NewParser[[]byte](',', '\n').Parse(c)
		require.NoError(t, err)
		assert.Equal(t, []byte("alpha"), v)
		assert.Same(t, &buf[0], &v[0])
		assert.Equal(t, 5, cap(v))
	})

	t.Run("String", func(t *testing.T) {
		c := NewCursor([]byte("alpha,beta\ngamma"))
		p := NewParser[string](',', '\n')
		var got []string
		for !c.Done() {
			v, err := p.Parse(c)
			require.NoError(t, err)
			got = append(got, v)
			c.Advance(1)
		}
		assert.Equal(t, []string{"alpha", "beta", "gamma"}, got)
	})

	t.Run("EmptyString", func(t *testing.T) {
		c := NewCursor([]byte(",x"))
		v, err := NewParser[string](',', '\n').Parse(c)
		require.NoError(t, err)
		assert.Equal(t, "", v)
		assert.Equal(t, 0, c.Pos())
	})
}

package generator

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("honors requested length", func(t *testing.T) {
		pw, err := Generate(16, false)
		require.NoError(t, err)
		assert.Len(t, pw, 16)
	})

	t.Run("always covers upper lower and digit", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			pw, err := Generate(12, false)
			require.NoError(t, err)
			assert.True(t, strings.ContainsFunc(pw, unicode.IsUpper))
			assert.True(t, strings.ContainsFunc(pw, unicode.IsLower))
			assert.True(t, strings.ContainsFunc(pw, unicode.IsDigit))
		}
	})

	t.Run("includes a symbol when required", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			pw, err := Generate(12, true)
			require.NoError(t, err)
			assert.True(t, strings.ContainsFunc(pw, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r)
			}), "expected a non-alphanumeric character in %q", pw)
		}
	})

	t.Run("never includes a symbol when not required", func(t *testing.T) {
		pw, err := Generate(32, false)
		require.NoError(t, err)
		assert.True(t, strings.ContainsFunc(pw, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		}))
		assert.False(t, strings.ContainsFunc(pw, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}))
	})

	t.Run("tiny lengths are raised to cover the required sets", func(t *testing.T) {
		pw, err := Generate(1, true)
		require.NoError(t, err)
		assert.Len(t, pw, 4)
	})

	t.Run("rejects absurd lengths", func(t *testing.T) {
		_, err := Generate(MaxLength+1, false)
		assert.ErrorIs(t, err, ErrLengthTooLong)
	})

	t.Run("successive calls differ", func(t *testing.T) {
		a, err := Generate(16, true)
		require.NoError(t, err)
		b, err := Generate(16, true)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

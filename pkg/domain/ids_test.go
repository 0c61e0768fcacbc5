package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "passgate/pkg/domain-errors"
)

func TestParseUserID(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := NewUserID()
		parsed, err := ParseUserID(original.String())
		require.NoError(t, err)
		assert.Equal(t, original, parsed)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseUserID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseUserID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("nil uuid", func(t *testing.T) {
		_, err := ParseUserID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestUserIDIsNil(t *testing.T) {
	assert.True(t, UserID{}.IsNil())
	assert.False(t, NewUserID().IsNil())
}

func TestParseResetTokenID(t *testing.T) {
	original := NewResetTokenID()
	parsed, err := ParseResetTokenID(original.String())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)

	_, err = ParseResetTokenID("garbage")
	assert.Error(t, err)
}

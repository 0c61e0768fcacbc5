package credstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "passgate/pkg/domain"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("set then verify", func(t *testing.T) {
		store := NewInMemoryStore()
		userID := id.NewUserID()
		require.NoError(t, store.Set(ctx, userID, "secret1!"))

		match, err := store.Verify(ctx, userID, "secret1!")
		require.NoError(t, err)
		assert.True(t, match)

		match, err = store.Verify(ctx, userID, "wrong")
		require.NoError(t, err)
		assert.False(t, match)
	})

	t.Run("verify unknown user", func(t *testing.T) {
		store := NewInMemoryStore()
		_, err := store.Verify(ctx, id.NewUserID(), "whatever")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("verify and set replaces only on match", func(t *testing.T) {
		store := NewInMemoryStore()
		userID := id.NewUserID()
		require.NoError(t, store.Set(ctx, userID, "first1!"))

		ok, err := store.VerifyAndSet(ctx, userID, "wrong", "second2@")
		require.NoError(t, err)
		assert.False(t, ok)

		match, err := store.Verify(ctx, userID, "first1!")
		require.NoError(t, err)
		assert.True(t, match, "failed change must not mutate the credential")

		ok, err = store.VerifyAndSet(ctx, userID, "first1!", "second2@")
		require.NoError(t, err)
		assert.True(t, ok)

		match, err = store.Verify(ctx, userID, "second2@")
		require.NoError(t, err)
		assert.True(t, match)
	})

	t.Run("hashes are salted", func(t *testing.T) {
		store := NewInMemoryStore()
		a := id.NewUserID()
		b := id.NewUserID()
		require.NoError(t, store.Set(ctx, a, "same-password"))
		require.NoError(t, store.Set(ctx, b, "same-password"))
		assert.NotEqual(t, store.hashes[a], store.hashes[b])
	})
}

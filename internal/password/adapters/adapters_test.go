package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passgate/internal/credstore"
	"passgate/internal/legacy"
	"passgate/internal/password"
	"passgate/internal/password/resettoken"
	id "passgate/pkg/domain"
	dErrors "passgate/pkg/domain-errors"
)

func newModern(t *testing.T) (*ModernAdapter, *credstore.InMemoryStore) {
	t.Helper()
	creds := credstore.NewInMemoryStore()
	tokens := resettoken.NewInMemoryStore()
	minter := resettoken.NewMinter("test-signing-key", 15*time.Minute)
	return NewModernAdapter(creds, tokens, minter), creds
}

func TestModernAdapter_Change(t *testing.T) {
	ctx := context.Background()
	adapter, creds := newModern(t)
	identity := password.Identity{ID: id.NewUserID(), Username: "alice"}
	require.NoError(t, creds.Set(ctx, identity.ID, "correct1!"))

	t.Run("correct old password changes the credential", func(t *testing.T) {
		ok, err := adapter.Change(ctx, identity, "correct1!", "next2@")
		require.NoError(t, err)
		assert.True(t, ok)

		match, err := creds.Verify(ctx, identity.ID, "next2@")
		require.NoError(t, err)
		assert.True(t, match)
	})

	t.Run("wrong old password mutates nothing", func(t *testing.T) {
		ok, err := adapter.Change(ctx, identity, "wrong", "other3#")
		require.NoError(t, err)
		assert.False(t, ok)

		match, err := creds.Verify(ctx, identity.ID, "next2@")
		require.NoError(t, err)
		assert.True(t, match, "credential must be untouched after a failed change")
	})

	t.Run("unknown account reads as bad credentials", func(t *testing.T) {
		ok, err := adapter.Change(ctx, password.Identity{ID: id.NewUserID(), Username: "ghost"}, "a", "b")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestModernAdapter_Reset(t *testing.T) {
	ctx := context.Background()
	adapter, creds := newModern(t)
	identity := password.Identity{ID: id.NewUserID(), Username: "alice"}
	require.NoError(t, creds.Set(ctx, identity.ID, "before1!"))

	err := adapter.Reset(ctx, identity, "", "after2@")
	require.NoError(t, err)

	match, err := creds.Verify(ctx, identity.ID, "after2@")
	require.NoError(t, err)
	assert.True(t, match)
}

func TestModernAdapter_Unsupported(t *testing.T) {
	ctx := context.Background()
	adapter, _ := newModern(t)
	identity := password.Identity{ID: id.NewUserID(), Username: "alice"}

	_, err := adapter.RetrieveCurrent(ctx, identity, "")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnsupported))

	_, err = adapter.ChangeManual(ctx, identity, "x")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnsupported))
}

func TestLegacyAdapter_Passthrough(t *testing.T) {
	ctx := context.Background()
	provider := legacy.NewMemoryProvider(legacy.Settings{
		EnablePasswordReset:       true,
		RequiresQuestionAndAnswer: true,
		AllowManualPasswordChange: true,
		EnablePasswordRetrieval:   true,
		MinPasswordLength:         8,
	})
	provider.AddAccount("bob", "secret1!", "favorite color", "blue")
	adapter := NewLegacyAdapter(provider)
	identity := password.Identity{ID: id.NewUserID(), Username: "bob"}

	t.Run("retrieve with correct answer", func(t *testing.T) {
		current, err := adapter.RetrieveCurrent(ctx, identity, "blue")
		require.NoError(t, err)
		assert.Equal(t, "secret1!", current)
	})

	t.Run("retrieve with wrong answer", func(t *testing.T) {
		_, err := adapter.RetrieveCurrent(ctx, identity, "red")
		require.Error(t, err)
	})

	t.Run("change and manual change", func(t *testing.T) {
		ok, err := adapter.Change(ctx, identity, "secret1!", "second2@")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = adapter.ChangeManual(ctx, identity, "third3#")
		require.NoError(t, err)
		assert.True(t, ok)

		current, err := adapter.RetrieveCurrent(ctx, identity, "blue")
		require.NoError(t, err)
		assert.Equal(t, "third3#", current)
	})

	t.Run("reset with answer", func(t *testing.T) {
		err := adapter.Reset(ctx, identity, "blue", "fresh4$")
		require.NoError(t, err)

		current, err := adapter.RetrieveCurrent(ctx, identity, "blue")
		require.NoError(t, err)
		assert.Equal(t, "fresh4$", current)
	})
}

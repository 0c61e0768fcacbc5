// Package adapters bridges the password engine's uniform Adapter port to the
// concrete backends: the modern credential store and whatever legacy provider
// serves an account. It also hosts the backend selector.
package adapters

import (
	"context"

	"passgate/internal/legacy"
	"passgate/internal/password"
)

// LegacyAdapter exposes a legacy provider through the uniform port. It is a
// thin translation layer; capability enforcement happens in the engine, and
// the provider itself still rejects operations its configuration forbids.
type LegacyAdapter struct {
	provider legacy.Provider
}

func NewLegacyAdapter(provider legacy.Provider) *LegacyAdapter {
	return &LegacyAdapter{provider: provider}
}

func (a *LegacyAdapter) Reset(ctx context.Context, identity password.Identity, answer, newPassword string) error {
	return a.provider.ResetPassword(ctx, identity.Username, answer, newPassword)
}

func (a *LegacyAdapter) RetrieveCurrent(ctx context.Context, identity password.Identity, answer string) (string, error) {
	return a.provider.GetPassword(ctx, identity.Username, answer)
}

func (a *LegacyAdapter) Change(ctx context.Context, identity password.Identity, oldPassword, newPassword string) (bool, error) {
	return a.provider.ChangePassword(ctx, identity.Username, oldPassword, newPassword)
}

func (a *LegacyAdapter) ChangeManual(ctx context.Context, identity password.Identity, newPassword string) (bool, error) {
	return a.provider.SetPassword(ctx, identity.Username, newPassword)
}

package adapters

import (
	"context"

	"passgate/internal/credstore"
	"passgate/internal/password"
	"passgate/internal/password/resettoken"
	dErrors "passgate/pkg/domain-errors"
	"passgate/pkg/platform/sentinel"
)

// ModernAdapter fronts the modern credential store. Resets run the store's
// token-based flow: a single-use token is minted, recorded, and consumed
// before the new credential is written, so a reset can never be replayed.
type ModernAdapter struct {
	creds  credstore.Store
	tokens resettoken.Store
	minter *resettoken.Minter
}

func NewModernAdapter(creds credstore.Store, tokens resettoken.Store, minter *resettoken.Minter) *ModernAdapter {
	return &ModernAdapter{
		creds:  creds,
		tokens: tokens,
		minter: minter,
	}
}

func (a *ModernAdapter) Reset(ctx context.Context, identity password.Identity, _ string, newPassword string) error {
	signed, tokenID, err := a.minter.Mint(identity.ID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not start password reset")
	}
	if err := a.tokens.Save(ctx, tokenID, identity.ID, a.minter.TTL()); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "could not start password reset")
	}

	// Round-trip the signed token before honoring it, the same path an
	// out-of-band reset confirmation takes.
	parsedID, userID, err := a.minter.Parse(signed)
	if err != nil {
		return err
	}
	if _, err := a.tokens.Consume(ctx, parsedID); err != nil {
		return err
	}

	if err := a.creds.Set(ctx, userID, newPassword); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not reset the password")
	}
	return nil
}

func (a *ModernAdapter) RetrieveCurrent(_ context.Context, _ password.Identity, _ string) (string, error) {
	// Modern stores never expose plaintext.
	return "", dErrors.Wrap(sentinel.ErrUnsupported, dErrors.CodeUnsupported, "password retrieval is not supported")
}

func (a *ModernAdapter) Change(ctx context.Context, identity password.Identity, oldPassword, newPassword string) (bool, error) {
	ok, err := a.creds.VerifyAndSet(ctx, identity.ID, oldPassword, newPassword)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			// Unknown account reads as bad credentials, not as a
			// distinct probe signal.
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

func (a *ModernAdapter) ChangeManual(_ context.Context, _ password.Identity, _ string) (bool, error) {
	return false, dErrors.Wrap(sentinel.ErrUnsupported, dErrors.CodeUnsupported, "manual password change is not supported")
}

// Package credstore implements the modern credential store: argon2id hashes
// keyed by user ID, with in-memory and postgres backings. The store enforces
// its own verification rules; callers never see hashes or plaintext.
package credstore

import (
	"context"

	id "passgate/pkg/domain"
	dErrors "passgate/pkg/domain-errors"
)

var (
	// ErrNotFound keeps storage-specific 404s consistent across
	// implementations.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "credential record not found")
)

// Store persists one credential per user.
type Store interface {
	// Set stores a new credential for the user, replacing any existing one.
	Set(ctx context.Context, userID id.UserID, password string) error

	// Verify reports whether password matches the stored credential.
	Verify(ctx context.Context, userID id.UserID, password string) (bool, error)

	// VerifyAndSet atomically verifies oldPassword and, only on a match,
	// stores newPassword. A false return with nil error means the old
	// password did not match and nothing was changed.
	VerifyAndSet(ctx context.Context, userID id.UserID, oldPassword, newPassword string) (bool, error)
}

// Package resettoken backs the modern reset flow: every reset mints a
// single-use token that must be consumed before the new credential is written.
// Consumption is atomic so a token can never authorize two resets.
package resettoken

import (
	"context"
	"time"

	id "passgate/pkg/domain"
)

// Store persists pending reset tokens with a TTL.
type Store interface {
	// Save records a pending token for the user.
	Save(ctx context.Context, tokenID id.ResetTokenID, userID id.UserID, ttl time.Duration) error

	// Consume removes the token and returns the user it was minted for.
	// Returns sentinel.ErrNotFound (wrapped) when the token is missing,
	// expired, or already consumed.
	Consume(ctx context.Context, tokenID id.ResetTokenID) (id.UserID, error)
}

// Package domain holds shared identifier types. Typed UUIDs keep user and
// token identifiers from being mixed up at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "passgate/pkg/domain-errors"
)

// UserID identifies an account across backends.
type UserID uuid.UUID

// ResetTokenID identifies a single-use password reset token.
type ResetTokenID uuid.UUID

// NewUserID generates a fresh random UserID.
func NewUserID() UserID {
	return UserID(uuid.New())
}

// ParseUserID parses and validates a user ID from its string form. IDs must be
// valid, non-empty, non-nil UUIDs.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID(u), nil
}

func (id UserID) String() string {
	return uuid.UUID(id).String()
}

func (id UserID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// NewResetTokenID generates a fresh random ResetTokenID.
func NewResetTokenID() ResetTokenID {
	return ResetTokenID(uuid.New())
}

// ParseResetTokenID parses and validates a reset token ID from its string form.
func ParseResetTokenID(s string) (ResetTokenID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return ResetTokenID{}, err
	}
	return ResetTokenID(u), nil
}

func (id ResetTokenID) String() string {
	return uuid.UUID(id).String()
}

func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "id is not a valid uuid")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must not be nil")
	}
	return u, nil
}

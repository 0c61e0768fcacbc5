// Package legacy defines the contract for capability-limited legacy credential
// providers. The orchestration layer never talks to a provider directly; it
// goes through the adapter in internal/password/adapters, which normalizes the
// provider's behavior behind the uniform Adapter port.
package legacy

import "context"

// Settings describes what a legacy provider supports. The values mirror the
// provider's own configuration and are read once at selection time; nothing in
// the request path mutates them.
type Settings struct {
	EnablePasswordReset       bool
	RequiresQuestionAndAnswer bool
	AllowManualPasswordChange bool
	EnablePasswordRetrieval   bool

	// MinPasswordLength of zero means the provider exposes no validation
	// policy and the caller must substitute a default.
	MinPasswordLength      int
	RequireNonAlphanumeric bool
}

// Provider is the uniform surface over a legacy credential backend.
//
// Implementations must not mutate stored credentials on failed calls, and all
// calls must honor context cancellation.
type Provider interface {
	// Settings returns the provider's capability configuration.
	Settings() Settings

	// ResetPassword replaces the stored credential with newPassword. When the
	// provider requires a question and answer, answer must match the stored
	// one.
	ResetPassword(ctx context.Context, username, answer, newPassword string) error

	// GetPassword returns the current plaintext password. Only valid when
	// EnablePasswordRetrieval is set.
	GetPassword(ctx context.Context, username, answer string) (string, error)

	// ChangePassword verifies oldPassword and stores newPassword. A false
	// return with nil error means the credentials did not match.
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) (bool, error)

	// SetPassword stores newPassword without verifying the old one. Only
	// valid when AllowManualPasswordChange is set.
	SetPassword(ctx context.Context, username, newPassword string) (bool, error)
}

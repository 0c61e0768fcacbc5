package password

import "context"

// Adapter is the uniform contract both backend families implement. Failed
// calls must not mutate stored state, and every call honors context
// cancellation.
type Adapter interface {
	// Reset replaces the credential with newPassword, checking answer when
	// the backend requires one.
	Reset(ctx context.Context, identity Identity, answer, newPassword string) error

	// RetrieveCurrent returns the current plaintext password. Modern stores
	// never expose plaintext and always fail with an unsupported error.
	RetrieveCurrent(ctx context.Context, identity Identity, answer string) (string, error)

	// Change verifies oldPassword and stores newPassword. A false return
	// with nil error means the credentials did not match.
	Change(ctx context.Context, identity Identity, oldPassword, newPassword string) (bool, error)

	// ChangeManual stores newPassword without the old one. Legacy-only
	// escape hatch; modern stores fail with an unsupported error.
	ChangeManual(ctx context.Context, identity Identity, newPassword string) (bool, error)
}

// Generator produces a random password satisfying the given policy. Injected
// into the engine so tests can pin the generated value.
type Generator func(minLength int, requireNonAlphanumeric bool) (string, error)

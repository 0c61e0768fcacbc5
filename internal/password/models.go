// Package password is the credential-mutation policy engine. Given a change or
// reset request it selects the backend serving the account, validates the
// request against that backend's capabilities, and runs the correct mutation
// sequence, reporting a uniform Outcome.
package password

import (
	id "passgate/pkg/domain"

	"passgate/internal/legacy"
)

// Identity is the minimal account view the engine needs. Credentials
// themselves are opaque to this package; they flow straight to the adapters.
type Identity struct {
	ID       id.UserID
	Username string
}

// ChangeRequest carries one password change or reset. Immutable once built;
// lives for the duration of a single call.
type ChangeRequest struct {
	OldPassword string
	NewPassword string
	Reset       bool
	Answer      string
}

// BackendKind names which family of credential store serves an account.
type BackendKind string

const (
	BackendModern BackendKind = "modern"
	BackendLegacy BackendKind = "legacy"
)

// BackendConfig is the opaque per-account handle resolved by the caller. The
// selector reads it once per request; nothing here is mutated afterwards.
type BackendConfig struct {
	Kind BackendKind

	// AccountAwareHashing reports that the modern store hashes per account
	// and enforces its own rules, so legacy capability checks do not apply.
	AccountAwareHashing bool

	// Legacy is the provider serving the account when the modern path does
	// not apply.
	Legacy legacy.Provider
}

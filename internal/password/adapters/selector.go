package adapters

import (
	"passgate/internal/password"
	dErrors "passgate/pkg/domain-errors"
)

// Selector decides which adapter and capabilities apply to an account's
// backend configuration. The decision reads the configuration exactly once;
// no live backend objects are inspected.
type Selector struct {
	modern        password.Adapter
	defaultPolicy password.Capabilities
}

// NewSelector builds a selector sharing one modern adapter across requests.
// minLength and requireNonAlphanumeric form the policy applied to the modern
// path and to legacy backends that expose none.
func NewSelector(modern password.Adapter, minLength int, requireNonAlphanumeric bool) *Selector {
	return &Selector{
		modern: modern,
		defaultPolicy: password.Capabilities{
			MinLength:              minLength,
			RequireNonAlphanumeric: requireNonAlphanumeric,
		}.WithPolicyDefaults(),
	}
}

// Select resolves the adapter and capability snapshot for one request.
//
// A modern store with account-aware hashing is used directly and bypasses all
// legacy capability checks; it enforces its own rules internally. A modern
// store fronting a legacy provider that requires a question and answer is an
// unsupported configuration and fails fast. Everything else falls back to the
// legacy adapter with capabilities derived from the provider's settings.
func (s *Selector) Select(cfg password.BackendConfig) (password.Adapter, password.Capabilities, error) {
	if cfg.Kind == password.BackendModern && cfg.AccountAwareHashing {
		return s.modern, password.Capabilities{
			SupportsReset:          true,
			MinLength:              s.defaultPolicy.MinLength,
			RequireNonAlphanumeric: s.defaultPolicy.RequireNonAlphanumeric,
		}, nil
	}

	if cfg.Legacy == nil {
		return nil, password.Capabilities{}, dErrors.New(dErrors.CodeInternal, "backend configuration has no legacy provider")
	}
	settings := cfg.Legacy.Settings()

	if cfg.Kind == password.BackendModern && settings.RequiresQuestionAndAnswer {
		return nil, password.Capabilities{}, dErrors.New(dErrors.CodeUnsupported,
			"unsupported configuration: the legacy provider requires a question and answer")
	}

	caps := password.Capabilities{
		SupportsReset:             settings.EnablePasswordReset,
		RequiresQuestionAndAnswer: settings.RequiresQuestionAndAnswer,
		AllowsManualChange:        settings.AllowManualPasswordChange,
		RetrievalEnabled:          settings.EnablePasswordRetrieval,
		MinLength:                 settings.MinPasswordLength,
		RequireNonAlphanumeric:    settings.RequireNonAlphanumeric,
	}
	if caps.MinLength <= 0 {
		// No validation policy from the legacy backend: substitute the safe
		// default rather than failing.
		caps.MinLength = s.defaultPolicy.MinLength
		caps.RequireNonAlphanumeric = s.defaultPolicy.RequireNonAlphanumeric
	}

	return NewLegacyAdapter(cfg.Legacy), caps, nil
}

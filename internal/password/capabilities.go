package password

// Capabilities describes what the selected backend supports. It is derived
// once at selection time and treated as read-only for the rest of the request,
// which also makes it safe to share across concurrent requests.
type Capabilities struct {
	SupportsReset             bool
	RequiresQuestionAndAnswer bool
	AllowsManualChange        bool
	RetrievalEnabled          bool

	MinLength              int
	RequireNonAlphanumeric bool
}

// DefaultPolicy is substituted when a legacy backend exposes no password
// validation policy of its own. The rest of the orchestration keeps working
// with these values.
func DefaultPolicy() (minLength int, requireNonAlphanumeric bool) {
	return 8, true
}

// WithPolicyDefaults fills in the policy fields when the backend supplied
// none.
func (c Capabilities) WithPolicyDefaults() Capabilities {
	if c.MinLength <= 0 {
		c.MinLength, c.RequireNonAlphanumeric = DefaultPolicy()
	}
	return c
}

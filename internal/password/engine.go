package password

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	dErrors "passgate/pkg/domain-errors"
)

// Failure messages are part of the contract: callers route them to inputs by
// field and tests pin them.
const (
	msgResetNotEnabled     = "password reset is not enabled"
	msgAnswerRequired      = "a password answer is required"
	msgEmptyPassword       = "cannot set an empty password"
	msgOldPasswordRequired = "the old password is required"
	msgInvalidCredentials  = "invalid username or password"
	msgChangeRejected      = "could not change the password"
	msgCancelled           = "the request was cancelled"
)

// Engine runs one change or reset against a selected adapter. The change-path
// precedence is encoded as a linear guard list so the ordering the callers
// depend on (reset > manual change > old-password presence > retrieval >
// question/answer) stays auditable in one place.
type Engine struct {
	generate Generator
	logger   *slog.Logger
}

// generatedLength is the floor for generated reset passwords; backends with a
// longer minimum win.
const generatedLength = 12

type EngineOption func(*Engine)

func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

func NewEngine(generate Generator, opts ...EngineOption) (*Engine, error) {
	if generate == nil {
		return nil, errors.New("password generator is required")
	}

	e := &Engine{
		generate: generate,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// run bundles the per-request inputs handed to each guard.
type run struct {
	adapter  Adapter
	caps     Capabilities
	identity Identity
	req      ChangeRequest
}

// guard inspects one precondition in precedence order. The first guard that
// returns true decides the outcome; later guards never run.
type guard func(ctx context.Context, r *run) (Outcome, bool)

// Execute processes exactly one request and always produces exactly one
// Outcome. The reset flag short-circuits all change-path logic.
func (e *Engine) Execute(ctx context.Context, adapter Adapter, caps Capabilities, identity Identity, req ChangeRequest) Outcome {
	r := &run{
		adapter:  adapter,
		caps:     caps.WithPolicyDefaults(),
		identity: identity,
		req:      req,
	}

	if req.Reset {
		return e.reset(ctx, r)
	}

	for _, g := range e.changeGuards() {
		if outcome, done := g(ctx, r); done {
			return outcome
		}
	}
	// The guard list ends with a catch-all; reaching here is a bug.
	return Failed(msgChangeRejected, FieldValue)
}

func (e *Engine) changeGuards() []guard {
	return []guard{
		e.rejectEmptyNewPassword,
		e.manualChange,
		e.changeWithoutOldPassword,
		e.changeWithOldPassword,
	}
}

// --- Reset branch ---

func (e *Engine) reset(ctx context.Context, r *run) Outcome {
	if !r.caps.SupportsReset {
		return Failed(msgResetNotEnabled, FieldResetPassword)
	}
	if r.caps.RequiresQuestionAndAnswer && blank(r.req.Answer) {
		return Failed(msgAnswerRequired, FieldResetPassword)
	}

	generated, err := e.generate(max(r.caps.MinLength, generatedLength), r.caps.RequireNonAlphanumeric)
	if err != nil {
		e.logger.ErrorContext(ctx, "password generation failed", "user_id", r.identity.ID, "error", err)
		return failure(err, FieldResetPassword)
	}

	if err := r.adapter.Reset(ctx, r.identity, r.req.Answer, generated); err != nil {
		e.logger.WarnContext(ctx, "password reset rejected by backend", "user_id", r.identity.ID, "error", err)
		return failure(err, FieldResetPassword)
	}
	return SucceededWithPassword(generated)
}

// --- Change branch guards, in precedence order ---

func (e *Engine) rejectEmptyNewPassword(_ context.Context, r *run) (Outcome, bool) {
	if blank(r.req.NewPassword) {
		return Failed(msgEmptyPassword, FieldValue), true
	}
	return Outcome{}, false
}

// manualChange is the legacy-only escape hatch: the backend lets the password
// be replaced without knowing the old one.
func (e *Engine) manualChange(ctx context.Context, r *run) (Outcome, bool) {
	if !r.caps.AllowsManualChange {
		return Outcome{}, false
	}

	ok, err := r.adapter.ChangeManual(ctx, r.identity, r.req.NewPassword)
	if err != nil {
		return failure(err, FieldValue), true
	}
	if !ok {
		return Failed(msgChangeRejected, FieldValue), true
	}
	return Succeeded(), true
}

// changeWithoutOldPassword covers the retrieval path: when the caller has no
// old password the backend must either support retrieval or the request fails.
func (e *Engine) changeWithoutOldPassword(ctx context.Context, r *run) (Outcome, bool) {
	if !blank(r.req.OldPassword) {
		return Outcome{}, false
	}

	if !r.caps.RetrievalEnabled {
		return Failed(msgOldPasswordRequired, FieldOldPassword), true
	}
	if r.caps.RequiresQuestionAndAnswer && blank(r.req.Answer) {
		return Failed(msgAnswerRequired, FieldValue), true
	}

	current, err := r.adapter.RetrieveCurrent(ctx, r.identity, r.req.Answer)
	if err != nil {
		return failure(err, FieldValue), true
	}
	ok, err := r.adapter.Change(ctx, r.identity, current, r.req.NewPassword)
	if err != nil {
		return failure(err, FieldValue), true
	}
	if !ok {
		return Failed(msgInvalidCredentials, FieldValue), true
	}
	return Succeeded(), true
}

func (e *Engine) changeWithOldPassword(ctx context.Context, r *run) (Outcome, bool) {
	ok, err := r.adapter.Change(ctx, r.identity, r.req.OldPassword, r.req.NewPassword)
	if err != nil {
		return failure(err, FieldValue), true
	}
	if !ok {
		return Failed(msgInvalidCredentials, FieldOldPassword), true
	}
	return Succeeded(), true
}

// failure maps an adapter error to a field-attributed outcome. Cancellation is
// surfaced distinctly rather than dressed up as a backend failure, and
// unclassified errors are reduced to their safe message.
func failure(err error, field Field) Outcome {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Failed(msgCancelled, field)
	}
	return Failed(dErrors.MessageOf(err), field)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

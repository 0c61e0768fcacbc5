package password

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"passgate/internal/audit"
	"passgate/internal/password/metrics"
	dErrors "passgate/pkg/domain-errors"
)

var tracer = otel.Tracer("passgate/password")

// BackendSelector resolves which adapter and capabilities apply to a backend
// configuration.
type BackendSelector interface {
	Select(cfg BackendConfig) (Adapter, Capabilities, error)
}

// AuditPublisher records credential mutation events.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service is the public entry point of the engine. All validation and backend
// failures are normalized into the Outcome; the returned error is reserved for
// caller contract violations (nil identity, unresolvable backend
// configuration).
type Service struct {
	selector BackendSelector
	engine   *Engine
	logger   *slog.Logger
	metrics  *metrics.Metrics
	audit    AuditPublisher
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

func NewService(selector BackendSelector, engine *Engine, opts ...Option) (*Service, error) {
	if selector == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "backend selector is required")
	}
	if engine == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "engine is required")
	}

	svc := &Service{
		selector: selector,
		engine:   engine,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// ChangePassword processes exactly one change or reset request. Concurrent
// requests for the same identity are not coordinated here; last write wins at
// the backend. That race is a known property of the engine, not an oversight.
func (s *Service) ChangePassword(ctx context.Context, identity Identity, req ChangeRequest, cfg BackendConfig) (Outcome, error) {
	if identity.ID.IsNil() || blank(identity.Username) {
		return Outcome{}, dErrors.New(dErrors.CodeInvalidInput, "identity is required")
	}

	ctx, span := tracer.Start(ctx, "password.ChangePassword",
		trace.WithAttributes(
			attribute.String("backend.kind", string(cfg.Kind)),
			attribute.Bool("request.reset", req.Reset),
		),
	)
	defer span.End()

	adapter, caps, err := s.selector.Select(cfg)
	if err != nil {
		s.logger.ErrorContext(ctx, "backend selection failed",
			"user_id", identity.ID,
			"backend", cfg.Kind,
			"error", err,
		)
		return Outcome{}, err
	}

	outcome := s.engine.Execute(ctx, adapter, caps, identity, req)
	span.SetAttributes(attribute.Bool("outcome.ok", outcome.OK))

	s.observe(ctx, identity, req, cfg, outcome)
	return outcome, nil
}

func (s *Service) observe(ctx context.Context, identity Identity, req ChangeRequest, cfg BackendConfig, outcome Outcome) {
	switch {
	case outcome.OK && req.Reset:
		s.logger.InfoContext(ctx, "password reset", "user_id", identity.ID, "backend", cfg.Kind)
		if s.metrics != nil {
			s.metrics.RecordReset()
		}
		s.emit(ctx, audit.Event{
			UserID:  identity.ID.String(),
			Action:  audit.ActionPasswordReset,
			Backend: string(cfg.Kind),
		})
	case outcome.OK:
		s.logger.InfoContext(ctx, "password changed", "user_id", identity.ID, "backend", cfg.Kind)
		if s.metrics != nil {
			s.metrics.RecordChange()
		}
		s.emit(ctx, audit.Event{
			UserID:  identity.ID.String(),
			Action:  audit.ActionPasswordChanged,
			Backend: string(cfg.Kind),
		})
	default:
		s.logger.WarnContext(ctx, "password mutation rejected",
			"user_id", identity.ID,
			"backend", cfg.Kind,
			"field", outcome.Field,
			"reason", outcome.Message,
		)
		if s.metrics != nil {
			s.metrics.RecordFailure(string(outcome.Field))
		}
		s.emit(ctx, audit.Event{
			UserID:  identity.ID.String(),
			Action:  audit.ActionPasswordChangeFailed,
			Backend: string(cfg.Kind),
			Field:   string(outcome.Field),
			Reason:  outcome.Message,
		})
	}
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "audit emit failed", "action", event.Action, "error", err)
	}
}

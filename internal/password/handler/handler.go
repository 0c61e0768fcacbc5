package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"passgate/internal/directory"
	"passgate/internal/password"
	id "passgate/pkg/domain"
	"passgate/pkg/platform/httputil"
	"passgate/pkg/requestcontext"
)

// Service defines the interface for password mutations.
type Service interface {
	ChangePassword(ctx context.Context, identity password.Identity, req password.ChangeRequest, cfg password.BackendConfig) (password.Outcome, error)
}

// Handler wires the password endpoint to the engine.
type Handler struct {
	service   Service
	directory directory.Directory
	logger    *slog.Logger
}

// New constructs a password handler with its dependencies.
func New(service Service, dir directory.Directory, logger *slog.Logger) *Handler {
	return &Handler{
		service:   service,
		directory: dir,
		logger:    logger,
	}
}

// Register mounts the password endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/users/{userID}/password", h.HandleChangePassword)
}

// HandleChangePassword handles POST /users/{userID}/password.
func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, err := httputil.Decode[ChangePasswordRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	entry, err := h.directory.Lookup(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	outcome, err := h.service.ChangePassword(ctx, entry.Identity, req.ToDomain(), entry.Backend)
	if err != nil {
		h.logger.ErrorContext(ctx, "password change failed",
			"request_id", requestID,
			"user_id", userID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "password change processed",
		"request_id", requestID,
		"user_id", userID,
		"ok", outcome.OK,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	status := http.StatusOK
	if !outcome.OK {
		status = http.StatusUnprocessableEntity
	}
	httputil.WriteJSON(w, status, fromOutcome(outcome))
}

package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and backend providers return
// these (optionally wrapped) so the orchestration layer can translate them into
// outcome failures.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: account or record does not exist in the store
// - ErrExpired: reset token has expired
// - ErrAlreadyUsed: reset token already consumed
// - ErrUnsupported: operation not implemented by the active backend
// - ErrUnavailable: backing store temporarily unreachable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrExpired     = errors.New("expired")
	ErrAlreadyUsed = errors.New("already used")
	ErrUnsupported = errors.New("unsupported")
	ErrUnavailable = errors.New("unavailable")
)

package audit

import "time"

// Action names for password mutations.
const (
	ActionPasswordChanged      = "password_changed"
	ActionPasswordReset        = "password_reset"
	ActionPasswordChangeFailed = "password_change_failed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time
	UserID    string
	Action    string
	Backend   string
	Field     string
	Reason    string
}

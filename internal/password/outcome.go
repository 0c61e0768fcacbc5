package password

// Field names the request input a failure concerns, so callers can attach the
// message to the right place.
type Field string

const (
	FieldResetPassword Field = "resetPassword"
	FieldOldPassword   Field = "oldPassword"
	FieldValue         Field = "value"
)

// Outcome is the single result of one change or reset. Exactly one of the two
// shapes applies: success (optionally carrying a generated password) or
// failure with a field-attributed message.
type Outcome struct {
	OK bool

	// GeneratedPassword is set only for reset flows that produced a new
	// random password.
	GeneratedPassword string

	Message string
	Field   Field
}

// Succeeded builds a success outcome for a plain change.
func Succeeded() Outcome {
	return Outcome{OK: true}
}

// SucceededWithPassword builds a success outcome for a reset that generated a
// fresh password.
func SucceededWithPassword(generated string) Outcome {
	return Outcome{OK: true, GeneratedPassword: generated}
}

// Failed builds a failure outcome attributed to the given field.
func Failed(message string, field Field) Outcome {
	return Outcome{Message: message, Field: field}
}

package handler

import "passgate/internal/password"

// SuccessResponse is returned when the mutation went through. The generated
// password is present only for reset flows.
type SuccessResponse struct {
	Status            string `json:"status"`
	GeneratedPassword string `json:"generatedPassword,omitempty"`
}

// FailureResponse carries the field-attributed rejection so the caller can
// route the message to the right input.
type FailureResponse struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

func fromOutcome(outcome password.Outcome) any {
	if outcome.OK {
		return SuccessResponse{
			Status:            "ok",
			GeneratedPassword: outcome.GeneratedPassword,
		}
	}
	return FailureResponse{
		Message: outcome.Message,
		Field:   string(outcome.Field),
	}
}

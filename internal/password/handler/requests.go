package handler

import "passgate/internal/password"

// ChangePasswordRequest is the wire shape for one change or reset.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword,omitempty"`
	NewPassword string `json:"newPassword,omitempty"`
	Reset       bool   `json:"reset,omitempty"`
	Answer      string `json:"answer,omitempty"`
}

func (r ChangePasswordRequest) ToDomain() password.ChangeRequest {
	return password.ChangeRequest{
		OldPassword: r.OldPassword,
		NewPassword: r.NewPassword,
		Reset:       r.Reset,
		Answer:      r.Answer,
	}
}

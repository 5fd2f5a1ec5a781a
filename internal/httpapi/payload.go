package httpapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// LoginRequest is the POST /api/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate enforces presence of both fields. Presence is the only check the
// endpoint makes; matching the credentials is the directory's job, later.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

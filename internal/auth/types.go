// Package auth implements the stateless session core: credential
// verification against a read-only user directory and issuance/validation
// of signed, time-bounded session tokens.
package auth

import (
	"context"
)

// UserProjection is the subset of a directory record that is safe to expose
// to clients. It never carries the password; the conversion from a directory
// record is the single place that guarantee is enforced.
type UserProjection struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
}

// IdentityProvider is the read-only lookup collaborator used during login.
//
// VerifyIdentity returns ErrIdentityNotFound for both unknown email and
// wrong password; callers must not be able to tell the two apart.
type IdentityProvider interface {
	VerifyIdentity(ctx context.Context, email, password string) (*UserProjection, error)
}

// TokenService issues and validates signed session tokens.
type TokenService interface {
	Generate(user *UserProjection) (string, error)
	Validate(tokenString string) (*Claims, error)
}

// TokenValidator is the subset of TokenService needed by request middleware.
type TokenValidator interface {
	Validate(tokenString string) (*Claims, error)
}

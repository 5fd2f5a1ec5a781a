package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the token payload: the user projection as issued plus the
// registered claims (iat, exp, jti). Tokens are never re-fetched against
// the directory, so the embedded projection is exactly what was current
// at issuance.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int    `json:"uid"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
}

// Projection rebuilds the UserProjection embedded at issuance.
func (c *Claims) Projection() *UserProjection {
	return &UserProjection{
		ID:        c.UserID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Age:       c.Age,
		Email:     c.Email,
	}
}

// Expires returns the expiry timestamp, zero if absent.
func (c *Claims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issuance timestamp, zero if absent.
func (c *Claims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

func ensureTokenID(claims *jwt.RegisteredClaims) {
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}
}

package auth

import "errors"

// ErrIdentityNotFound is returned when no directory record matches the
// presented credentials. It deliberately covers both unknown email and
// wrong password.
var ErrIdentityNotFound = errors.New("identity not found")

// ErrTokenExpired is returned when a token's signature is fine but its
// expiry has passed.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenMalformed is returned when a token cannot be parsed or its
// signature does not verify.
var ErrTokenMalformed = errors.New("token malformed or signature invalid")

// ErrTokenInvalid is the collapsed, boundary-level rejection. HTTP handlers
// surface only this one regardless of the underlying cause.
var ErrTokenInvalid = errors.New("invalid or expired token")

// IsTokenError reports whether err is any of the token validation failures.
// The distinction between them exists for logging only; at the boundary
// they all collapse to ErrTokenInvalid.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrTokenInvalid)
}

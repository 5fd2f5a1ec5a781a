package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avidaldev/authgate/internal/logging"
)

// tokenService implements TokenService with HS256 over a process-wide
// signing key. The key and expiration are fixed at construction and never
// rotate at runtime.
type tokenService struct {
	signingKey []byte
	expiration time.Duration
	logger     logging.Logger
	timeFunc   func() time.Time
}

// TokenServiceOption configures a token service.
type TokenServiceOption func(*tokenService)

// WithTimeFunc overrides the clock used for issuance and expiry checks.
// Tests use it to pin the boundary conditions.
func WithTimeFunc(fn func() time.Time) TokenServiceOption {
	return func(ts *tokenService) {
		if fn != nil {
			ts.timeFunc = fn
		}
	}
}

// NewTokenService creates a TokenService signing with the given key and
// token lifetime.
func NewTokenService(signingKey []byte, expiration time.Duration, logger logging.Logger, opts ...TokenServiceOption) TokenService {
	if logger == nil {
		logger = logging.NewNop()
	}
	ts := &tokenService{
		signingKey: signingKey,
		expiration: expiration,
		logger:     logger,
		timeFunc:   time.Now,
	}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

// Generate signs a token whose payload is the projection plus an expiry at
// issuance+lifetime. Signing only fails on a broken key configuration,
// which is a fatal setup error rather than a per-request condition.
func (ts *tokenService) Generate(user *UserProjection) (string, error) {
	now := ts.timeFunc()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiration)),
		},
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Age:       user.Age,
		Email:     user.Email,
	}

	ensureTokenID(&claims.RegisteredClaims)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate checks the signature and then the expiry, returning the embedded
// claims. Expired, forged and structurally malformed tokens come back as
// distinct sentinels for logging; everything else about them is
// indistinguishable to callers.
func (ts *tokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("token validate encountered unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, jwt.WithTimeFunc(ts.timeFunc))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	ts.logger.Error("token validate could not decode claims")
	return nil, ErrTokenInvalid
}

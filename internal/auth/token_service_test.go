package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avidaldev/authgate/internal/auth"
)

var testProjection = &auth.UserProjection{
	ID:        7,
	FirstName: "Ada",
	LastName:  "Moreno",
	Age:       34,
	Email:     "ada.moreno@example.com",
}

func TestTokenService_RoundTrip(t *testing.T) {
	service := auth.NewTokenService([]byte("test-signing-key"), 24*time.Hour, nil)

	token, err := service.Generate(testProjection)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, testProjection, claims.Projection())
	assert.Equal(t, "7", claims.RegisteredClaims.Subject)
	assert.NotEmpty(t, claims.RegisteredClaims.ID, "token should carry a jti")
	assert.WithinDuration(t, claims.IssuedAt().Add(24*time.Hour), claims.Expires(), time.Second)
}

func TestTokenService_Expiry(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := issued

	service := auth.NewTokenService(
		[]byte("test-signing-key"),
		24*time.Hour,
		nil,
		auth.WithTimeFunc(func() time.Time { return current }),
	)

	token, err := service.Generate(testProjection)
	require.NoError(t, err)

	t.Run("valid just before expiry", func(t *testing.T) {
		current = issued.Add(24*time.Hour - time.Second)
		claims, err := service.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, testProjection, claims.Projection())
	})

	t.Run("expired at exactly issuance+24h", func(t *testing.T) {
		current = issued.Add(24 * time.Hour)
		_, err := service.Validate(token)
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})

	t.Run("expired well after", func(t *testing.T) {
		current = issued.Add(48 * time.Hour)
		_, err := service.Validate(token)
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})
}

func TestTokenService_RejectsTampering(t *testing.T) {
	service := auth.NewTokenService([]byte("test-signing-key"), 24*time.Hour, nil)

	token, err := service.Generate(testProjection)
	require.NoError(t, err)

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)

		// base64url of a different JSON object
		parts[1] = "eyJ1aWQiOjk5OX0"
		_, err := service.Validate(strings.Join(parts, "."))
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("tampered signature", func(t *testing.T) {
		tampered := token[:len(token)-2] + "xx"
		_, err := service.Validate(tampered)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := service.Validate("not-a-token")
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		other := auth.NewTokenService([]byte("some-other-key"), 24*time.Hour, nil)
		forged, err := other.Generate(testProjection)
		require.NoError(t, err)

		_, err = service.Validate(forged)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("unsigned token is rejected", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &auth.Claims{
			UserID: testProjection.ID,
			Email:  testProjection.Email,
		})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.Validate(raw)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})
}

func TestTokenService_FailuresAreUndifferentiatedAtBoundary(t *testing.T) {
	// Internal sentinels differ for logging, but all of them must count as
	// a token error so the HTTP layer can collapse them into one response.
	assert.True(t, auth.IsTokenError(auth.ErrTokenExpired))
	assert.True(t, auth.IsTokenError(auth.ErrTokenMalformed))
	assert.True(t, auth.IsTokenError(auth.ErrTokenInvalid))
	assert.False(t, auth.IsTokenError(auth.ErrIdentityNotFound))
	assert.False(t, auth.IsTokenError(nil))
}

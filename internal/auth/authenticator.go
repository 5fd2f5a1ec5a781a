package auth

import (
	"context"

	"github.com/avidaldev/authgate/internal/logging"
)

// Auther wires the credential verifier to the token service. It holds no
// per-request state; the provider and signing key are fixed at startup.
type Auther struct {
	provider IdentityProvider
	tokens   TokenService
	logger   logging.Logger
}

// NewAuthenticator returns an Auther backed by the given directory provider
// and token service.
func NewAuthenticator(provider IdentityProvider, tokens TokenService, logger logging.Logger) *Auther {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Auther{
		provider: provider,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login verifies the credentials and, on success, issues a token embedding
// the sanitized projection. The projection is returned alongside the token
// so the transport layer can hand both to the client.
func (a *Auther) Login(ctx context.Context, email, password string) (string, *UserProjection, error) {
	user, err := a.provider.VerifyIdentity(ctx, email, password)
	if err != nil {
		a.logger.Info("login rejected", "email", email)
		return "", nil, err
	}

	token, err := a.tokens.Generate(user)
	if err != nil {
		a.logger.Error("login token generation failed", "error", err)
		return "", nil, err
	}

	return token, user, nil
}

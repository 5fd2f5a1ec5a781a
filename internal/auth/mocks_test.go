package auth_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avidaldev/authgate/internal/auth"
)

// MockIdentityProvider implements auth.IdentityProvider for testing.
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, email, password string) (*auth.UserProjection, error) {
	args := m.Called(ctx, email, password)
	if user := args.Get(0); user != nil {
		return user.(*auth.UserProjection), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTokenService implements auth.TokenService for testing.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Generate(user *auth.UserProjection) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*auth.Claims, error) {
	args := m.Called(tokenString)
	if claims := args.Get(0); claims != nil {
		return claims.(*auth.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}

package ports

import (
	"context"

	"github.com/stockcart/storefront/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	SessionID string
	User      *domain.User
}

type AuthService interface {
	Register(ctx context.Context, username, password string, isSeller bool) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, sessionID string) (*domain.User, error)
}

package ports

import (
	"context"

	"github.com/stockcart/storefront/internal/core/domain"
)

// UserRepository defines persistence operations for storefront accounts.
type UserRepository interface {
	// GetUser returns domain.ErrUserNotFound when id is absent.
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	// GetUserByUsername scans in insertion order and returns the first exact
	// (case-sensitive) match. Uniqueness is the caller's concern.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, user domain.NewUser) (*domain.User, error)
}

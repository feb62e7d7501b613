package ports

import (
	"context"

	"github.com/stockcart/storefront/internal/core/domain"
)

// SessionStore tracks the logged-in identity behind each session id.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	// Get returns domain.ErrSessionNotFound for unknown or expired sessions.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

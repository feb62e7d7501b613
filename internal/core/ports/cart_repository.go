package ports

import (
	"context"

	"github.com/stockcart/storefront/internal/core/domain"
)

// CartRepository defines persistence operations for cart items.
type CartRepository interface {
	GetCartItems(ctx context.Context, userID int64) ([]domain.CartItem, error)
	// GetCartItem returns domain.ErrCartItemNotFound when id is absent.
	GetCartItem(ctx context.Context, id int64) (*domain.CartItem, error)
	// AddToCart never rejects duplicates of the same user and image.
	AddToCart(ctx context.Context, item domain.NewCartItem) (*domain.CartItem, error)
	// RemoveFromCart is a no-op when id is absent.
	RemoveFromCart(ctx context.Context, id int64) error
}

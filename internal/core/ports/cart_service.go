package ports

import (
	"context"

	"github.com/stockcart/storefront/internal/core/domain"
)

// CartLine is a cart item resolved against the catalog.
type CartLine struct {
	Item  domain.CartItem
	Image domain.Image
}

// CartSummary is the priced view of a user's cart. Items whose image no longer
// resolves are left out.
type CartSummary struct {
	Lines []CartLine
	Count int
	Total string
}

// CartService defines use-case operations over a user's cart.
type CartService interface {
	List(ctx context.Context, userID int64) ([]domain.CartItem, error)
	Add(ctx context.Context, userID, imageID int64) (*domain.CartItem, error)
	Remove(ctx context.Context, userID, itemID int64) error
	Summary(ctx context.Context, userID int64) (*CartSummary, error)
}

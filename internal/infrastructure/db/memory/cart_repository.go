package memory

import (
	"context"

	"github.com/stockcart/storefront/internal/core/domain"
)

// CartRepository implements ports.CartRepository over a Store.
type CartRepository struct {
	store *Store
}

func NewCartRepository(store *Store) *CartRepository {
	return &CartRepository{store: store}
}

func (r *CartRepository) GetCartItems(_ context.Context, userID int64) ([]domain.CartItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []domain.CartItem{}
	for item := range r.store.cartItems.all() {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *CartRepository) GetCartItem(_ context.Context, id int64) (*domain.CartItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.cartItems.get(id)
	if !ok {
		return nil, domain.ErrCartItemNotFound
	}
	return &item, nil
}

func (r *CartRepository) AddToCart(_ context.Context, in domain.NewCartItem) (*domain.CartItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item := domain.CartItem{
		ID:      r.store.allocateLocked(CollectionCartItems),
		UserID:  in.UserID,
		ImageID: in.ImageID,
		AddedAt: in.AddedAt,
	}
	r.store.cartItems.insert(item.ID, item)
	return &item, nil
}

func (r *CartRepository) RemoveFromCart(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.cartItems.delete(id)
	return nil
}

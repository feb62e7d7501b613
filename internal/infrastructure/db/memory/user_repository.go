package memory

import (
	"context"

	"github.com/stockcart/storefront/internal/core/domain"
)

// UserRepository implements ports.UserRepository over a Store.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) GetUser(_ context.Context, id int64) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for u := range r.store.users.all() {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) CreateUser(_ context.Context, in domain.NewUser) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u := domain.User{
		ID:           r.store.allocateLocked(CollectionUsers),
		Username:     in.Username,
		PasswordHash: in.PasswordHash,
		IsSeller:     in.IsSeller,
	}
	r.store.users.insert(u.ID, u)
	return &u, nil
}

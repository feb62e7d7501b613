// Package memory holds the in-process entity store and the repositories that
// expose typed CRUD over it. Nothing here survives a restart.
package memory

import (
	"sync"

	"github.com/stockcart/storefront/internal/core/domain"
)

// Collection names one identity counter.
type Collection string

const (
	CollectionUsers     Collection = "users"
	CollectionImages    Collection = "images"
	CollectionCartItems Collection = "cart_items"
)

// Store keeps every entity collection and its identity counter behind a
// single RWMutex. Build one per process and share it between repositories.
type Store struct {
	mu       sync.RWMutex
	counters map[Collection]int64

	users     *table[domain.User]
	images    *table[domain.Image]
	cartItems *table[domain.CartItem]
}

// NewStore returns an empty store whose counters all start at 1.
func NewStore() *Store {
	return &Store{
		counters:  make(map[Collection]int64),
		users:     newTable[domain.User](),
		images:    newTable[domain.Image](),
		cartItems: newTable[domain.CartItem](),
	}
}

// AllocateID returns the next identity for c. Identities are strictly
// increasing per collection and never handed out twice.
func (s *Store) AllocateID(c Collection) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocateLocked(c)
}

func (s *Store) allocateLocked(c Collection) int64 {
	s.counters[c]++
	return s.counters[c]
}

// Stats reports the number of live rows per collection.
func (s *Store) Stats() map[Collection]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[Collection]int{
		CollectionUsers:     s.users.len(),
		CollectionImages:    s.images.len(),
		CollectionCartItems: s.cartItems.len(),
	}
}

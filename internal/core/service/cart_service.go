package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/stockcart/storefront/internal/core/domain"
	"github.com/stockcart/storefront/internal/core/ports"
)

type CartService struct {
	cart   ports.CartRepository
	images ports.ImageRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewCartService(cart ports.CartRepository, images ports.ImageRepository, logger zerolog.Logger) *CartService {
	return &CartService{cart: cart, images: images, logger: logger, now: time.Now}
}

func (s *CartService) List(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	return s.cart.GetCartItems(ctx, userID)
}

// Add puts imageID into the user's cart. Neither the image's existence nor an
// earlier identical entry is checked.
func (s *CartService) Add(ctx context.Context, userID, imageID int64) (*domain.CartItem, error) {
	item, err := s.cart.AddToCart(ctx, domain.NewCartItem{
		UserID:  userID,
		ImageID: imageID,
		AddedAt: domain.FormatAddedAt(s.now()),
	})
	if err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}

	s.logger.Info().Int64("user_id", userID).Int64("image_id", imageID).Int64("cart_item_id", item.ID).Msg("cart item added")
	return item, nil
}

// Remove deletes itemID when it belongs to userID. Missing items and items
// owned by someone else are ignored without error.
func (s *CartService) Remove(ctx context.Context, userID, itemID int64) error {
	item, err := s.cart.GetCartItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrCartItemNotFound) {
			return nil
		}
		return fmt.Errorf("remove from cart: %w", err)
	}
	if item.UserID != userID {
		s.logger.Warn().Int64("user_id", userID).Int64("cart_item_id", itemID).Msg("ignored removal of foreign cart item")
		return nil
	}

	if err := s.cart.RemoveFromCart(ctx, itemID); err != nil {
		return fmt.Errorf("remove from cart: %w", err)
	}
	s.logger.Info().Int64("user_id", userID).Int64("cart_item_id", itemID).Msg("cart item removed")
	return nil
}

// Summary prices the user's cart. Items pointing at images that no longer
// resolve are dropped.
func (s *CartService) Summary(ctx context.Context, userID int64) (*ports.CartSummary, error) {
	items, err := s.cart.GetCartItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cart summary: %w", err)
	}

	lines := make([]ports.CartLine, 0, len(items))
	var total int64
	for _, item := range items {
		img, err := s.images.GetImageByID(ctx, item.ImageID)
		if err != nil {
			if errors.Is(err, domain.ErrImageNotFound) {
				continue
			}
			return nil, fmt.Errorf("cart summary: %w", err)
		}

		cents, err := domain.ParsePrice(img.Price)
		if err != nil {
			s.logger.Warn().Err(err).Int64("image_id", img.ID).Msg("unpriceable image in cart")
			continue
		}
		total += cents
		lines = append(lines, ports.CartLine{Item: item, Image: *img})
	}

	return &ports.CartSummary{
		Lines: lines,
		Count: len(lines),
		Total: domain.FormatCents(total),
	}, nil
}

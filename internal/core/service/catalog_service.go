package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stockcart/storefront/internal/core/domain"
	"github.com/stockcart/storefront/internal/core/ports"
)

type CatalogService struct {
	images ports.ImageRepository
	logger zerolog.Logger
}

func NewCatalogService(images ports.ImageRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{images: images, logger: logger}
}

func (s *CatalogService) ListImages(ctx context.Context) ([]domain.Image, error) {
	return s.images.GetImages(ctx)
}

// ListImagesByType filters on the raw type string; unknown types simply match nothing.
func (s *CatalogService) ListImagesByType(ctx context.Context, imageType string) ([]domain.Image, error) {
	return s.images.GetImagesByType(ctx, imageType)
}

func (s *CatalogService) GetImage(ctx context.Context, id int64) (*domain.Image, error) {
	return s.images.GetImageByID(ctx, id)
}

// CreateImage adds an image owned by sellerID. The price is stored at a
// fixed two-digit scale.
func (s *CatalogService) CreateImage(ctx context.Context, sellerID int64, input ports.CreateImageInput) (*domain.Image, error) {
	price, err := domain.NormalizePrice(input.Price)
	if err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	metadata := input.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	img, err := s.images.CreateImage(ctx, domain.NewImage{
		Title:       input.Title,
		Description: input.Description,
		Type:        domain.ImageType(input.Type),
		URL:         input.URL,
		Price:       price,
		Tags:        tags,
		SellerID:    sellerID,
		Metadata:    metadata,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create image")
		return nil, fmt.Errorf("create image: %w", err)
	}

	s.logger.Info().Int64("image_id", img.ID).Int64("seller_id", sellerID).Str("type", string(img.Type)).Msg("image created")
	return img, nil
}

package ports

import (
	"context"

	"github.com/stockcart/storefront/internal/core/domain"
)

// ImageRepository defines persistence operations for the image catalog.
type ImageRepository interface {
	GetImages(ctx context.Context) ([]domain.Image, error)
	// GetImagesByType returns an empty, non-nil slice when nothing matches.
	GetImagesByType(ctx context.Context, imageType string) ([]domain.Image, error)
	// GetImageByID returns domain.ErrImageNotFound when id is absent.
	GetImageByID(ctx context.Context, id int64) (*domain.Image, error)
	CreateImage(ctx context.Context, image domain.NewImage) (*domain.Image, error)
}

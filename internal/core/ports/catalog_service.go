package ports

import (
	"context"

	"github.com/stockcart/storefront/internal/core/domain"
)

// CreateImageInput is the DTO passed from the transport layer to CatalogService.
type CreateImageInput struct {
	Title       string
	Description string
	Type        string
	URL         string
	Price       string
	Tags        []string
	Metadata    map[string]any
}

// CatalogService defines use-case operations for browsing and extending the catalog.
type CatalogService interface {
	ListImages(ctx context.Context) ([]domain.Image, error)
	ListImagesByType(ctx context.Context, imageType string) ([]domain.Image, error)
	GetImage(ctx context.Context, id int64) (*domain.Image, error)
	CreateImage(ctx context.Context, sellerID int64, input CreateImageInput) (*domain.Image, error)
}

package memory

import (
	"context"
	"fmt"

	"github.com/stockcart/storefront/internal/core/domain"
	"github.com/stockcart/storefront/internal/core/ports"
)

// SampleImages is the catalog loaded at startup. The first entry keeps id 1.
func SampleImages() []domain.NewImage {
	return []domain.NewImage{
		{
			Title:       "Medical Professional at Work",
			Description: "Healthcare professional in clinical setting",
			Type:        domain.ImageTypePhoto,
			URL:         "https://images.unsplash.com/photo-1599814516142-dbecedc5eb32",
			Price:       "49.99",
			Tags:        []string{"medical", "healthcare", "professional"},
			SellerID:    1,
			Metadata:    map[string]any{"width": 1920, "height": 1080, "format": "jpg"},
		},
		{
			Title:       "Mountain Lake at Dawn",
			Description: "Still alpine lake reflecting the first light",
			Type:        domain.ImageTypePhoto,
			URL:         "https://images.unsplash.com/photo-1506744038136-46273834b3fb",
			Price:       "39.00",
			Tags:        []string{"nature", "landscape", "mountains"},
			SellerID:    1,
			Metadata:    map[string]any{"width": 2400, "height": 1600, "format": "jpg"},
		},
		{
			Title:       "Flat Business Icon Set",
			Description: "Sixty scalable icons for dashboards and decks",
			Type:        domain.ImageTypeVector,
			URL:         "https://cdn.stockcart.example/vectors/business-icons.svg",
			Price:       "19.99",
			Tags:        []string{"icons", "business", "flat"},
			SellerID:    1,
			Metadata:    map[string]any{"format": "svg", "artboards": 60},
		},
		{
			Title:       "Isometric City Block",
			Description: "Editable isometric buildings and streets",
			Type:        domain.ImageTypeVector,
			URL:         "https://cdn.stockcart.example/vectors/isometric-city.svg",
			Price:       "29.50",
			Tags:        []string{"isometric", "city", "architecture"},
			SellerID:    1,
			Metadata:    map[string]any{"format": "svg"},
		},
		{
			Title:       "Watercolor Botanicals",
			Description: "Hand-painted leaves and flowers on white",
			Type:        domain.ImageTypeIllustration,
			URL:         "https://cdn.stockcart.example/illustrations/botanicals.png",
			Price:       "24.99",
			Tags:        []string{"watercolor", "botanical", "floral"},
			SellerID:    1,
			Metadata:    map[string]any{"width": 3000, "height": 3000, "format": "png"},
		},
	}
}

// Seed inserts images into repo in order.
func Seed(ctx context.Context, repo ports.ImageRepository, images []domain.NewImage) error {
	for i, img := range images {
		if _, err := repo.CreateImage(ctx, img); err != nil {
			return fmt.Errorf("seed image %d: %w", i, err)
		}
	}
	return nil
}

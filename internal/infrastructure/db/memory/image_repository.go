package memory

import (
	"context"

	"github.com/stockcart/storefront/internal/core/domain"
)

// ImageRepository implements ports.ImageRepository over a Store.
// Stored images are deep-copied on the way in and out.
type ImageRepository struct {
	store *Store
}

func NewImageRepository(store *Store) *ImageRepository {
	return &ImageRepository{store: store}
}

func (r *ImageRepository) GetImages(_ context.Context) ([]domain.Image, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Image, 0, r.store.images.len())
	for img := range r.store.images.all() {
		out = append(out, img.Clone())
	}
	return out, nil
}

func (r *ImageRepository) GetImagesByType(_ context.Context, imageType string) ([]domain.Image, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []domain.Image{}
	for img := range r.store.images.all() {
		if string(img.Type) == imageType {
			out = append(out, img.Clone())
		}
	}
	return out, nil
}

func (r *ImageRepository) GetImageByID(_ context.Context, id int64) (*domain.Image, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	img, ok := r.store.images.get(id)
	if !ok {
		return nil, domain.ErrImageNotFound
	}
	img = img.Clone()
	return &img, nil
}

func (r *ImageRepository) CreateImage(_ context.Context, in domain.NewImage) (*domain.Image, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	img := domain.Image{
		ID:          r.store.allocateLocked(CollectionImages),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		URL:         in.URL,
		Price:       in.Price,
		Tags:        in.Tags,
		SellerID:    in.SellerID,
		Metadata:    in.Metadata,
	}.Clone()
	r.store.images.insert(img.ID, img)

	out := img.Clone()
	return &out, nil
}

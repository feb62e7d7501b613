package domain

// ImageType enumerates the catalog categories.
type ImageType string

const (
	ImageTypePhoto        ImageType = "photo"
	ImageTypeVector       ImageType = "vector"
	ImageTypeIllustration ImageType = "illustration"
)

// ImageTypes lists every category in display order.
var ImageTypes = []ImageType{ImageTypePhoto, ImageTypeVector, ImageTypeIllustration}

// Valid reports whether t is one of the known categories.
func (t ImageType) Valid() bool {
	for _, known := range ImageTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Image is a purchasable catalog entry.
type Image struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        ImageType      `json:"type"`
	URL         string         `json:"url"`
	Price       string         `json:"price"`
	Tags        []string       `json:"tags"`
	SellerID    int64          `json:"sellerId"`
	Metadata    map[string]any `json:"metadata"`
}

// NewImage carries the fields supplied when an image is added to the catalog.
type NewImage struct {
	Title       string
	Description string
	Type        ImageType
	URL         string
	Price       string
	Tags        []string
	SellerID    int64
	Metadata    map[string]any
}

// Clone returns a deep copy so callers never share tags or metadata with the store.
func (img Image) Clone() Image {
	img.Tags = cloneTags(img.Tags)
	img.Metadata = cloneMetadata(img.Metadata)
	return img
}

func cloneTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

// cloneMetadata copies nested maps and slices as well, since metadata is
// decoded from arbitrary JSON.
func cloneMetadata(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneMetadata(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return cloneTags(v)
	default:
		return v
	}
}

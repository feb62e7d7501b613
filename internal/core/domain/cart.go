package domain

import "time"

// AddedAtLayout matches the millisecond ISO-8601 form used for cart timestamps.
const AddedAtLayout = "2006-01-02T15:04:05.000Z"

// CartItem links one user to one image they intend to purchase.
type CartItem struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"userId"`
	ImageID int64  `json:"imageId"`
	AddedAt string `json:"addedAt"`
}

// NewCartItem carries the fields of a cart addition.
type NewCartItem struct {
	UserID  int64
	ImageID int64
	AddedAt string
}

// FormatAddedAt renders t in AddedAtLayout (UTC).
func FormatAddedAt(t time.Time) string {
	return t.UTC().Format(AddedAtLayout)
}

package handler

import "github.com/stockcart/storefront/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// validationErrorResponse is returned with 400 when a body breaks its schema.
type validationErrorResponse struct {
	Error   string           `json:"error"`
	Details []FieldViolation `json:"details"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
	IsSeller bool   `json:"isSeller"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Catalog ---

type createImageRequest struct {
	Title       string         `json:"title"       validate:"required,max=200"`
	Description string         `json:"description" validate:"max=2000"`
	Type        string         `json:"type"        validate:"required,imagetype"`
	URL         string         `json:"url"         validate:"required,url"`
	Price       string         `json:"price"       validate:"required,price"`
	Tags        []string       `json:"tags"        validate:"omitempty,dive,required"`
	Metadata    map[string]any `json:"metadata"`
}

// --- Cart ---

type addToCartRequest struct {
	ImageID int64 `json:"imageId" validate:"required,gt=0"`
}

type cartLineResponse struct {
	ID      int64        `json:"id"`
	ImageID int64        `json:"imageId"`
	AddedAt string       `json:"addedAt"`
	Image   domain.Image `json:"image"`
}

type cartSummaryResponse struct {
	Items []cartLineResponse `json:"items"`
	Count int                `json:"count"`
	Total string             `json:"total"`
}

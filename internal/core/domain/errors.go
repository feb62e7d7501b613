package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrSessionNotFound    = errors.New("session not found")

	ErrImageNotFound    = errors.New("image not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidPrice     = errors.New("invalid price")
)

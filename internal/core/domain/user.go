package domain

// User models a registered storefront account.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	IsSeller     bool   `json:"isSeller"`
}

// NewUser carries the fields supplied at registration.
type NewUser struct {
	Username     string
	PasswordHash string
	IsSeller     bool
}

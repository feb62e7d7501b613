package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/stockcart/storefront/internal/core/domain"
)

// RequireSeller lets through only users with the seller flag. It must run
// after Auth.
func RequireSeller() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(ContextUser).(*domain.User)
			if user == nil {
				return domain.ErrUnauthenticated
			}
			if !user.IsSeller {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

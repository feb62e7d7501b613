package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/stockcart/storefront/internal/core/domain"
)

const (
	// SessionCookie carries the session token for browser clients.
	SessionCookie = "storefront_session"

	ContextUser      = "user"
	ContextSessionID = "session_id"
)

// Authenticator resolves a session id to the user behind it.
type Authenticator interface {
	Authenticate(ctx context.Context, sessionID string) (*domain.User, error)
}

// Auth validates the session token (bearer header first, then cookie),
// resolves it through auth and injects the user and session id into context.
func Auth(jwtSecret string, auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := tokenFromRequest(c)
			if err != nil {
				return err
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sessionID, _ := claims["sid"].(string)
			if sessionID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing session")
			}

			user, err := auth.Authenticate(c.Request().Context(), sessionID)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired or revoked")
				}
				return err
			}

			c.Set(ContextUser, user)
			c.Set(ContextSessionID, sessionID)

			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) (string, error) {
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}
		return parts[1], nil
	}

	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
}

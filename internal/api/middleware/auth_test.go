package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/stockcart/storefront/internal/core/domain"
)

type stubAuthenticator struct {
	users map[string]*domain.User
	err   error
}

func (s *stubAuthenticator) Authenticate(_ context.Context, sessionID string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[sessionID]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return u, nil
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newAuthStub() *stubAuthenticator {
	return &stubAuthenticator{users: map[string]*domain.User{
		"sess-1": {ID: 1, Username: "alice"},
	}}
}

func TestAuthMiddleware_ValidBearerToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", jwt.MapClaims{"sid": "sess-1"}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret", newAuthStub())(func(c echo.Context) error {
		called = true
		user, _ := c.Get(ContextUser).(*domain.User)
		if user == nil || user.Username != "alice" {
			t.Fatalf("user not set: %+v", user)
		}
		if c.Get(ContextSessionID) != "sess-1" {
			t.Fatalf("session id not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_CookieToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signToken(t, "secret", jwt.MapClaims{"sid": "sess-1"})})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret", newAuthStub())(func(c echo.Context) error {
		called = true
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func assertUnauthorized(t *testing.T, req *http.Request, auth Authenticator) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", auth)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingCredentials(t *testing.T) {
	assertUnauthorized(t, httptest.NewRequest(http.MethodGet, "/", nil), newAuthStub())
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	assertUnauthorized(t, req, newAuthStub())
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	assertUnauthorized(t, req, newAuthStub())
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other", jwt.MapClaims{"sid": "sess-1"}))
	assertUnauthorized(t, req, newAuthStub())
}

func TestAuthMiddleware_RevokedSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", jwt.MapClaims{"sid": "sess-gone"}))
	assertUnauthorized(t, req, newAuthStub())
}

func TestAuthMiddleware_MissingSessionClaim(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", jwt.MapClaims{"username": "alice"}))
	assertUnauthorized(t, req, newAuthStub())
}

func TestAuthMiddleware_StoreFailurePropagates(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", jwt.MapClaims{"sid": "sess-1"}))
	c := e.NewContext(req, httptest.NewRecorder())

	boom := errors.New("redis down")
	handler := Auth("secret", &stubAuthenticator{err: boom})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stockcart/storefront/internal/core/domain"
	"github.com/stockcart/storefront/internal/core/ports"
)

type stubCartService struct {
	items    []domain.CartItem
	removed  []int64
	summary  *ports.CartSummary
	addFn    func(ctx context.Context, userID, imageID int64) (*domain.CartItem, error)
}

func (s *stubCartService) List(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	out := []domain.CartItem{}
	for _, it := range s.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stubCartService) Add(ctx context.Context, userID, imageID int64) (*domain.CartItem, error) {
	return s.addFn(ctx, userID, imageID)
}

func (s *stubCartService) Remove(ctx context.Context, userID, itemID int64) error {
	s.removed = append(s.removed, itemID)
	return nil
}

func (s *stubCartService) Summary(ctx context.Context, userID int64) (*ports.CartSummary, error) {
	return s.summary, nil
}

var alice = &domain.User{ID: 1, Username: "alice"}

func TestCartHandler_List_ScopedToUser(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{items: []domain.CartItem{
		{ID: 1, UserID: 1, ImageID: 1, AddedAt: "2026-01-02T03:04:05.000Z"},
		{ID: 2, UserID: 2, ImageID: 1, AddedAt: "2026-01-02T03:04:05.000Z"},
	}}
	h := NewCartHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/api/cart", "")
	withUser(c, alice, "sid")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(items) != 1 || items[0]["userId"] != float64(1) || items[0]["imageId"] != float64(1) {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestCartHandler_List_RequiresUser(t *testing.T) {
	e := newTestEcho()
	h := NewCartHandler(&stubCartService{})

	c, _ := newJSONContext(e, http.MethodGet, "/api/cart", "")

	var he *echo.HTTPError
	if err := h.List(c); !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestCartHandler_Add(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		addFn: func(ctx context.Context, userID, imageID int64) (*domain.CartItem, error) {
			if userID != 1 || imageID != 5 {
				t.Fatalf("unexpected args: %d %d", userID, imageID)
			}
			return &domain.CartItem{ID: 9, UserID: userID, ImageID: imageID, AddedAt: "2026-01-02T03:04:05.000Z"}, nil
		},
	}
	h := NewCartHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/api/cart", `{"imageId":5}`)
	withUser(c, alice, "sid")
	if err := h.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var item domain.CartItem
	if err := json.Unmarshal(rec.Body.Bytes(), &item); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if item.ID != 9 || item.ImageID != 5 {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestCartHandler_Add_InvalidBody(t *testing.T) {
	for _, body := range []string{`{}`, `{"imageId":0}`, `{"imageId":-3}`} {
		t.Run(body, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubCartService{
				addFn: func(ctx context.Context, userID, imageID int64) (*domain.CartItem, error) {
					t.Fatalf("should not be called")
					return nil, nil
				},
			}
			h := NewCartHandler(stub)

			c, _ := newJSONContext(e, http.MethodPost, "/api/cart", body)
			withUser(c, alice, "sid")

			var ve *ValidationError
			if err := h.Add(c); !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Details[0].Field != "imageId" {
				t.Fatalf("unexpected details: %+v", ve.Details)
			}
		})
	}
}

func TestCartHandler_Remove(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{}
	h := NewCartHandler(stub)

	c, rec := newJSONContext(e, http.MethodDelete, "/api/cart/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	withUser(c, alice, "sid")

	if err := h.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(stub.removed) != 1 || stub.removed[0] != 42 {
		t.Fatalf("unexpected removals: %v", stub.removed)
	}
}

func TestCartHandler_Remove_NonNumericIDIsNoop(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{}
	h := NewCartHandler(stub)

	c, rec := newJSONContext(e, http.MethodDelete, "/api/cart/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	withUser(c, alice, "sid")

	if err := h.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(stub.removed) != 0 {
		t.Fatalf("nothing should be removed, got %v", stub.removed)
	}
}

func TestCartHandler_Add_WrongTypeReportsField(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		addFn: func(ctx context.Context, userID, imageID int64) (*domain.CartItem, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewCartHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/cart", `{"imageId":"5"}`)
	withUser(c, alice, "sid")

	var ve *ValidationError
	if err := h.Add(c); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Details) != 1 || ve.Details[0].Field != "imageId" || ve.Details[0].Rule != "type" {
		t.Fatalf("unexpected details: %+v", ve.Details)
	}
	if ve.Details[0].Message != "imageId must be a number, got string" {
		t.Fatalf("unexpected message: %q", ve.Details[0].Message)
	}
}

func TestCartHandler_Add_MalformedJSON(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		addFn: func(ctx context.Context, userID, imageID int64) (*domain.CartItem, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewCartHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/cart", `{"imageId":`)
	withUser(c, alice, "sid")

	var he *echo.HTTPError
	if err := h.Add(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCartHandler_Summary(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{summary: &ports.CartSummary{
		Lines: []ports.CartLine{{
			Item:  domain.CartItem{ID: 1, UserID: 1, ImageID: 1, AddedAt: "2026-01-02T03:04:05.000Z"},
			Image: domain.Image{ID: 1, Title: "Medical Professional at Work", Price: "49.99"},
		}},
		Count: 1,
		Total: "49.99",
	}}
	h := NewCartHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/api/cart/summary", "")
	withUser(c, alice, "sid")
	if err := h.Summary(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp cartSummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 1 || resp.Total != "49.99" || len(resp.Items) != 1 || resp.Items[0].Image.Title != "Medical Professional at Work" {
		t.Fatalf("unexpected summary: %+v", resp)
	}
}

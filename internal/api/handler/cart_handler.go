package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockcart/storefront/internal/api/metrics"
	"github.com/stockcart/storefront/internal/core/ports"
)

// CartHandler serves the authenticated user's cart.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// List handles GET /api/cart.
//
// @Summary      List cart items
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CartItem
// @Failure      401  {object}  errorResponse
// @Router       /api/cart [get]
func (h *CartHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Add handles POST /api/cart.
//
// @Summary      Add an image to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addToCartRequest  true  "Image to add"
// @Success      201   {object}  domain.CartItem
// @Failure      400   {object}  validationErrorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.service.Add(c.Request().Context(), user.ID, req.ImageID)
	if err != nil {
		return err
	}

	metrics.CartItemsAddedTotal.Inc()
	return c.JSON(http.StatusCreated, item)
}

// Remove handles DELETE /api/cart/:id. It answers 200 whether or not the
// item existed; a non-numeric id names no item and removes nothing.
//
// @Summary      Remove a cart item
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Cart item id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/cart/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusOK, messageResponse{Message: "OK"})
	}

	if err := h.service.Remove(c.Request().Context(), user.ID, id); err != nil {
		return err
	}

	metrics.CartItemsRemovedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "OK"})
}

// Summary handles GET /api/cart/summary.
//
// @Summary      Priced cart summary
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartSummaryResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/cart/summary [get]
func (h *CartHandler) Summary(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	sum, err := h.service.Summary(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartSummaryResponse(sum))
}

func toCartSummaryResponse(s *ports.CartSummary) cartSummaryResponse {
	items := make([]cartLineResponse, len(s.Lines))
	for i, line := range s.Lines {
		items[i] = cartLineResponse{
			ID:      line.Item.ID,
			ImageID: line.Item.ImageID,
			AddedAt: line.Item.AddedAt,
			Image:   line.Image,
		}
	}
	return cartSummaryResponse{Items: items, Count: s.Count, Total: s.Total}
}

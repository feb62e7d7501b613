package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockcart/storefront/internal/api/metrics"
	"github.com/stockcart/storefront/internal/core/domain"
	"github.com/stockcart/storefront/internal/core/ports"
)

// ImageHandler serves the catalog.
type ImageHandler struct {
	service ports.CatalogService
}

func NewImageHandler(service ports.CatalogService) *ImageHandler {
	return &ImageHandler{service: service}
}

// List handles GET /api/images.
//
// @Summary      List all images
// @Tags         images
// @Produce      json
// @Success      200  {array}   domain.Image
// @Router       /api/images [get]
func (h *ImageHandler) List(c echo.Context) error {
	images, err := h.service.ListImages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, images)
}

// ListByType handles GET /api/images/:type. Unknown types yield an empty list.
//
// @Summary      List images of one type
// @Tags         images
// @Produce      json
// @Param        type  path      string  true  "photo, vector or illustration"
// @Success      200   {array}   domain.Image
// @Router       /api/images/{type} [get]
func (h *ImageHandler) ListByType(c echo.Context) error {
	images, err := h.service.ListImagesByType(c.Request().Context(), c.Param("type"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, images)
}

// Get handles GET /api/images/detail/:id. A non-numeric id cannot name an
// image and is answered like any other missing one.
//
// @Summary      Get an image by id
// @Tags         images
// @Produce      json
// @Param        id   path      int  true  "Image id"
// @Success      200  {object}  domain.Image
// @Failure      404  {object}  errorResponse
// @Router       /api/images/detail/{id} [get]
func (h *ImageHandler) Get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return domain.ErrImageNotFound
	}

	img, err := h.service.GetImage(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, img)
}

// Create handles POST /api/images for seller accounts.
//
// @Summary      Add an image to the catalog
// @Tags         images
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createImageRequest  true  "Image details"
// @Success      201   {object}  domain.Image
// @Failure      400   {object}  validationErrorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/images [post]
func (h *ImageHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createImageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	img, err := h.service.CreateImage(c.Request().Context(), user.ID, ports.CreateImageInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		URL:         req.URL,
		Price:       req.Price,
		Tags:        req.Tags,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return err
	}

	metrics.ImagesCreatedTotal.WithLabelValues(string(img.Type)).Inc()
	return c.JSON(http.StatusCreated, img)
}

package handler

import (
	"log/slog"
	"net/http"

	"sitesnap/internal/delivery/api/response"
	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/domain/entity"
	"sitesnap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StorefrontHandlerParams holds dependencies for StorefrontHandler, injected by Fx.
type StorefrontHandlerParams struct {
	fx.In

	StorefrontUC usecase.StorefrontUsecase
	Logger       *slog.Logger
}

// StorefrontHandler serves the public storefront endpoints
type StorefrontHandler struct {
	storefrontUC usecase.StorefrontUsecase
	logger       *slog.Logger
}

// NewStorefrontHandler is the constructor for StorefrontHandler
func NewStorefrontHandler(params StorefrontHandlerParams) *StorefrontHandler {
	return &StorefrontHandler{
		storefrontUC: params.StorefrontUC,
		logger:       params.Logger,
	}
}

// GetCatalog returns the brand, categories and visible products
func (h *StorefrontHandler) GetCatalog(c echo.Context) error {
	catalog, err := h.storefrontUC.Catalog(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, catalog)
}

// Checkout turns the posted cart into a prefilled chat link
func (h *StorefrontHandler) Checkout(c echo.Context) error {
	var cart entity.Cart
	if err := c.Bind(&cart); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid cart body")
	}

	if err := c.Validate(&cart); err != nil {
		return err
	}

	link, err := h.storefrontUC.Checkout(c.Request().Context(), cart)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, link)
}

// Inquiry builds the chat link asking about one product
func (h *StorefrontHandler) Inquiry(c echo.Context) error {
	input := usecase.InquiryInput{ProductID: c.Param("id")}
	if err := echo.QueryParamsBinder(c).Int("quantity", &input.Quantity).BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must be a whole number")
	}

	if err := c.Validate(&input); err != nil {
		return err
	}

	link, err := h.storefrontUC.Inquiry(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, link)
}

// QRCode serves the storefront QR code as PNG
func (h *StorefrontHandler) QRCode(c echo.Context) error {
	png, err := h.storefrontUC.QRCode(c.Request().Context())
	if err != nil {
		return err
	}

	return response.PNG(c, png)
}

package usecase

import (
	"context"

	"sitesnap/internal/domain/entity"
)

// InquiryInput identifies a product a visitor is asking about.
type InquiryInput struct {
	ProductID string `query:"productId" validate:"required"`
	Quantity  int    `query:"quantity" validate:"gte=0"`
}

// StorefrontUsecase is the visitor-facing side of a seller's store.
type StorefrontUsecase interface {
	// Catalog returns the brand header, the categories and the visible products.
	Catalog(ctx context.Context) (*entity.StorefrontCatalog, error)
	// Checkout builds the chat link carrying the order summary for cart.
	Checkout(ctx context.Context, cart entity.Cart) (*entity.MessageLink, error)
	// Inquiry builds the chat link asking about a single product.
	Inquiry(ctx context.Context, input InquiryInput) (*entity.MessageLink, error)
	// QRCode renders the storefront URL as a PNG.
	QRCode(ctx context.Context) ([]byte, error)
}

// SyncUsecase moves the whole seller dataset in and out as JSON text, the
// format shared with the web storefront.
type SyncUsecase interface {
	ExportJSON(ctx context.Context) ([]byte, error)
	ImportJSON(ctx context.Context, data []byte) error
	ResetToDefaults(ctx context.Context) error
	ClearAll(ctx context.Context) error
}

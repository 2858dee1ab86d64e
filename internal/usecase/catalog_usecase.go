// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"sitesnap/internal/domain/entity"
)

// --- Input DTOs ---

// CategoryInput defines the data required to add a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// CategoryUpdate is a partial category change.
type CategoryUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
}

// AttributeInput defines the data required to add an attribute.
type AttributeInput struct {
	Name    string   `json:"name" validate:"required"`
	Options []string `json:"options"`
}

// AttributeUpdate is a partial attribute change.
type AttributeUpdate struct {
	Name    *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Options *[]string `json:"options,omitempty"`
}

// ProductInput defines the data required to add a product. Attributes are
// transient name/values pairs; the catalog persists them as attribute
// documents and links them through AttributeIDs.
type ProductInput struct {
	CategoryID     string                    `json:"categoryId"`
	Name           string                    `json:"name" validate:"required"`
	Price          float64                   `json:"price" validate:"gte=0"`
	Description    string                    `json:"description"`
	Images         []string                  `json:"images"`
	Videos         []string                  `json:"videos"`
	Inventory      entity.Inventory          `json:"inventory" validate:"omitempty,oneof=none 'in stock' 'out of stock'"`
	Specifications []string                  `json:"specifications"`
	Attributes     []entity.ProductAttribute `json:"attributes" validate:"dive"`
	AttributeIDs   []string                  `json:"attribute_ids"`
	Visible        *int                      `json:"visible,omitempty" validate:"omitempty,oneof=0 1"`
}

// Product builds the product the input describes, with defaults applied.
func (in ProductInput) Product() entity.Product {
	visible := 1
	if in.Visible != nil {
		visible = *in.Visible
	}

	inventory := in.Inventory
	if inventory == "" {
		inventory = entity.InventoryNone
	}

	return entity.Product{
		CategoryID:     in.CategoryID,
		Name:           in.Name,
		Price:          in.Price,
		Description:    in.Description,
		Images:         nonNilStrings(in.Images),
		Videos:         nonNilStrings(in.Videos),
		Inventory:      inventory,
		Specifications: nonNilStrings(in.Specifications),
		Attributes:     append([]entity.ProductAttribute{}, in.Attributes...),
		AttributeIDs:   nonNilStrings(in.AttributeIDs),
		Visible:        visible,
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return append([]string{}, values...)
}

// CatalogUsecase is the seller-facing data contract. It has a network-backed
// and an offline implementation; both expose the same flat model.
type CatalogUsecase interface {
	// Seller
	GetSeller(ctx context.Context) (*entity.Seller, error)
	UpdateSeller(ctx context.Context, updates entity.SellerUpdate) (*entity.Seller, error)

	// Templates
	GetTemplates(ctx context.Context) ([]entity.Template, error)
	LinkTemplatesToSeller(ctx context.Context, templateIDs []string) error
	GetSelectedTemplates(ctx context.Context) ([]string, error)

	// Categories
	GetCategories(ctx context.Context) ([]entity.Category, error)
	AddCategory(ctx context.Context, input CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id string, updates CategoryUpdate) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// Attributes
	GetAttributes(ctx context.Context) ([]entity.Attribute, error)
	AddAttribute(ctx context.Context, input AttributeInput) (*entity.Attribute, error)
	UpdateAttribute(ctx context.Context, id string, updates AttributeUpdate) (*entity.Attribute, error)
	DeleteAttribute(ctx context.Context, id string) error

	// Products
	GetProducts(ctx context.Context) ([]entity.Product, error)
	GetProductDetail(ctx context.Context, id string) (*entity.ProductDetail, error)
	AddProduct(ctx context.Context, input ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, updates entity.ProductUpdate) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// Analytics never fails on the network variant; a fetch failure yields
	// a zeroed dashboard.
	GetAnalytics(ctx context.Context) (*entity.Analytics, error)
	// UpdateAnalytics merges counters into the stored dashboard. Only the
	// offline variant keeps one; the network variant returns ErrUnsupported.
	UpdateAnalytics(ctx context.Context, updates entity.AnalyticsUpdate) (*entity.Analytics, error)

	// Sync and maintenance. The network variant rejects the last three with
	// ErrUnsupported.
	ExportAllData(ctx context.Context) (*entity.DataExport, error)
	ImportAllData(ctx context.Context, data entity.DataExport) error
	ResetToDefaults(ctx context.Context) error
	ResetAllData(ctx context.Context) error
}

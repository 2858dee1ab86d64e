// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"time"

	"sitesnap/internal/infra/api"
	"sitesnap/internal/infra/api/media"
	"sitesnap/internal/infra/api/model"
)

// Backend is the part of the REST API the seller app consumes.
// *api.Client satisfies it.
type Backend interface {
	Login(ctx context.Context, creds api.Credentials) (*model.LoginResponse, error)
	Register(ctx context.Context, creds api.Credentials) (*model.LoginResponse, error)
	Me(ctx context.Context) (*model.UserRecord, error)

	GetSeller(ctx context.Context, id string) (*model.SellerRecord, error)
	CreateSeller(ctx context.Context, payload map[string]any) (*model.SellerRecord, error)
	UpdateSeller(ctx context.Context, id string, payload map[string]any) (*model.SellerRecord, error)

	BusinessesBySeller(ctx context.Context, sellerID string) ([]model.BusinessRecord, error)
	CreateBusiness(ctx context.Context, payload map[string]any) (*model.BusinessRecord, error)
	UpdateBusiness(ctx context.Context, id string, payload map[string]any) (*model.BusinessRecord, error)

	ListCategories(ctx context.Context) ([]model.CategoryRecord, error)
	CreateCategory(ctx context.Context, payload map[string]any) (*model.CategoryRecord, error)
	UpdateCategory(ctx context.Context, id string, payload map[string]any) (*model.CategoryRecord, error)
	DeleteCategory(ctx context.Context, id string) error

	ListAttributes(ctx context.Context) ([]model.AttributeRecord, error)
	CreateAttribute(ctx context.Context, payload map[string]any) (*model.AttributeRecord, error)
	UpdateAttribute(ctx context.Context, id string, payload map[string]any) (*model.AttributeRecord, error)
	DeleteAttribute(ctx context.Context, id string) error

	ListProducts(ctx context.Context) ([]model.ProductRecord, error)
	CreateProduct(ctx context.Context, sub media.Submission) (*model.ProductRecord, error)
	UpdateProduct(ctx context.Context, id string, sub media.Submission) (*model.ProductRecord, error)
	DeleteProduct(ctx context.Context, id string) error

	ListAnalytics(ctx context.Context) ([]model.AnalyticsRecord, error)
}

var _ Backend = (*api.Client)(nil)

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

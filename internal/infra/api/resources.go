package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"sitesnap/internal/infra/api/media"
	"sitesnap/internal/infra/api/model"
)

func (c *Client) call(ctx context.Context, method, path string, in any, key string, out any) error {
	if out == nil {
		return c.doJSON(ctx, method, path, in, nil)
	}

	var raw json.RawMessage
	if err := c.doJSON(ctx, method, path, in, &raw); err != nil {
		return err
	}

	return decodeAs(raw, key, out)
}

func escape(id string) string {
	return url.PathEscape(id)
}

// Credentials is the body of the login and register calls.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*model.LoginResponse, error) {
	var out model.LoginResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", creds, "", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Register creates an account. Some deployments log the new user straight in
// and answer with a token; others do not.
func (c *Client) Register(ctx context.Context, creds Credentials) (*model.LoginResponse, error) {
	var out model.LoginResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/register", creds, "", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*model.UserRecord, error) {
	var out model.UserRecord
	if err := c.call(ctx, http.MethodGet, "/api/auth/me", nil, "user", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetSeller fetches one seller.
func (c *Client) GetSeller(ctx context.Context, id string) (*model.SellerRecord, error) {
	var out model.SellerRecord
	if err := c.call(ctx, http.MethodGet, "/api/sellers/"+escape(id), nil, "seller", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateSeller creates the seller for the authenticated user.
func (c *Client) CreateSeller(ctx context.Context, payload map[string]any) (*model.SellerRecord, error) {
	var out model.SellerRecord
	if err := c.call(ctx, http.MethodPost, "/api/sellers", payload, "seller", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateSeller applies a partial seller update.
func (c *Client) UpdateSeller(ctx context.Context, id string, payload map[string]any) (*model.SellerRecord, error) {
	var out model.SellerRecord
	if err := c.call(ctx, http.MethodPut, "/api/sellers/"+escape(id), payload, "seller", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// BusinessesBySeller lists the businesses of a seller.
func (c *Client) BusinessesBySeller(ctx context.Context, sellerID string) ([]model.BusinessRecord, error) {
	var out []model.BusinessRecord
	if err := c.call(ctx, http.MethodGet, "/api/businesses/seller/"+escape(sellerID), nil, "businesses", &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CreateBusiness creates a business.
func (c *Client) CreateBusiness(ctx context.Context, payload map[string]any) (*model.BusinessRecord, error) {
	var out model.BusinessRecord
	if err := c.call(ctx, http.MethodPost, "/api/businesses", payload, "business", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateBusiness applies a partial business update.
func (c *Client) UpdateBusiness(ctx context.Context, id string, payload map[string]any) (*model.BusinessRecord, error) {
	var out model.BusinessRecord
	if err := c.call(ctx, http.MethodPut, "/api/businesses/"+escape(id), payload, "business", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ListCategories lists categories visible to the token.
func (c *Client) ListCategories(ctx context.Context) ([]model.CategoryRecord, error) {
	var out []model.CategoryRecord
	if err := c.call(ctx, http.MethodGet, "/api/categories", nil, "categories", &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, payload map[string]any) (*model.CategoryRecord, error) {
	var out model.CategoryRecord
	if err := c.call(ctx, http.MethodPost, "/api/categories", payload, "category", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateCategory renames or re-describes a category.
func (c *Client) UpdateCategory(ctx context.Context, id string, payload map[string]any) (*model.CategoryRecord, error) {
	var out model.CategoryRecord
	if err := c.call(ctx, http.MethodPut, "/api/categories/"+escape(id), payload, "category", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteCategory deletes a category. Products keep their dangling reference.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/api/categories/"+escape(id), nil, "", nil)
}

// ListAttributes lists attribute documents.
func (c *Client) ListAttributes(ctx context.Context) ([]model.AttributeRecord, error) {
	var out []model.AttributeRecord
	if err := c.call(ctx, http.MethodGet, "/api/attributes", nil, "attributes", &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CreateAttribute creates an attribute document.
func (c *Client) CreateAttribute(ctx context.Context, payload map[string]any) (*model.AttributeRecord, error) {
	var out model.AttributeRecord
	if err := c.call(ctx, http.MethodPost, "/api/attributes", payload, "attribute", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateAttribute replaces an attribute's name or options.
func (c *Client) UpdateAttribute(ctx context.Context, id string, payload map[string]any) (*model.AttributeRecord, error) {
	var out model.AttributeRecord
	if err := c.call(ctx, http.MethodPut, "/api/attributes/"+escape(id), payload, "attribute", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteAttribute deletes an attribute document.
func (c *Client) DeleteAttribute(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/api/attributes/"+escape(id), nil, "", nil)
}

// ListProducts lists products visible to the token.
func (c *Client) ListProducts(ctx context.Context) ([]model.ProductRecord, error) {
	var out []model.ProductRecord
	if err := c.call(ctx, http.MethodGet, "/api/products", nil, "products", &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CreateProduct submits a new product.
func (c *Client) CreateProduct(ctx context.Context, sub media.Submission) (*model.ProductRecord, error) {
	return c.submitProduct(ctx, http.MethodPost, "/api/products", sub)
}

// UpdateProduct submits a product change.
func (c *Client) UpdateProduct(ctx context.Context, id string, sub media.Submission) (*model.ProductRecord, error) {
	return c.submitProduct(ctx, http.MethodPut, "/api/products/"+escape(id), sub)
}

func (c *Client) submitProduct(ctx context.Context, method, path string, sub media.Submission) (*model.ProductRecord, error) {
	var raw json.RawMessage
	if err := c.Submit(ctx, method, path, sub, &raw); err != nil {
		return nil, err
	}

	var out model.ProductRecord
	if err := decodeAs(raw, "product", &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteProduct deletes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/api/products/"+escape(id), nil, "", nil)
}

// ListAnalytics lists raw analytics records visible to the token.
func (c *Client) ListAnalytics(ctx context.Context) ([]model.AnalyticsRecord, error) {
	var out []model.AnalyticsRecord
	if err := c.call(ctx, http.MethodGet, "/api/analytics", nil, "analytics", &out); err != nil {
		return nil, err
	}

	return out, nil
}

package impl

import (
	"context"
	"testing"
	"time"

	"sitesnap/internal/domain/entity"
	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRemoteCatalogService_UpdateSeller_CreatesSellerAndBusinessOnce(t *testing.T) {
	fx := createTestRemoteCatalog(t, newFakeAPI())
	ctx := context.Background()

	updates := entity.SellerUpdate{
		Name:                strPtr("Ama Mensah"),
		Phone:               strPtr("+233201234567"),
		WorkAddress:         strPtr("14 Market Street"),
		BusinessName:        strPtr("Ama's Naturals"),
		BusinessType:        strPtr("Handmade soap"),
		SelectedTemplateIDs: []string{"tech-showcase"},
	}

	seller, err := fx.service.UpdateSeller(ctx, updates)

	require.NoError(t, err)
	assert.Equal(t, 1, fx.api.callCount("POST /api/sellers"))
	assert.Equal(t, 1, fx.api.callCount("POST /api/businesses"))
	assert.NotEmpty(t, seller.ID)
	assert.True(t, seller.IsOnboarded)
	assert.Equal(t, "Ama Mensah", seller.Name)
	assert.Equal(t, "+233201234567", seller.Phone)
	assert.Equal(t, "14 Market Street", seller.WorkAddress)
	assert.Equal(t, "Ama's Naturals", seller.BusinessName)
	assert.Equal(t, "Handmade soap", seller.BusinessType)
	assert.Equal(t, []string{"tech-showcase"}, seller.SelectedTemplateIDs)

	created := fx.api.body("POST /api/sellers")
	assert.Equal(t, "+233201234567", created["whatsapp_number"])

	again, err := fx.service.GetSeller(ctx)
	require.NoError(t, err)
	assert.Equal(t, seller.ID, again.ID)
	assert.Equal(t, "Ama's Naturals", again.BusinessName)

	_, err = fx.service.UpdateSeller(ctx, entity.SellerUpdate{BusinessType: strPtr("Soap and butter")})
	require.NoError(t, err)
	assert.Equal(t, 1, fx.api.callCount("POST /api/sellers"))
	assert.Equal(t, 1, fx.api.callCount("POST /api/businesses"))
}

func TestRemoteCatalogService_UpdateSeller_DefaultsNameFromEmail(t *testing.T) {
	fx := createTestRemoteCatalog(t, newFakeAPI())

	seller, err := fx.service.UpdateSeller(context.Background(), entity.SellerUpdate{BusinessName: strPtr("Shop")})

	require.NoError(t, err)
	assert.Equal(t, "ama", seller.Name)
	assert.Equal(t, "ama", fx.api.body("POST /api/sellers")["name"])
}

func TestRemoteCatalogService_UpdateSeller_ValidationFails(t *testing.T) {
	fx := createTestRemoteCatalog(t, newFakeAPI())

	_, err := fx.service.UpdateSeller(context.Background(), entity.SellerUpdate{Name: strPtr("")})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Zero(t, fx.api.callCount("POST /api/sellers"))
}

func TestRemoteCatalogService_GetSeller_WithoutProfile(t *testing.T) {
	fx := createTestRemoteCatalog(t, newFakeAPI())

	seller, err := fx.service.GetSeller(context.Background())

	require.NoError(t, err)
	assert.False(t, seller.HasProfile())
	assert.False(t, seller.IsOnboarded)
	assert.Equal(t, []string{}, seller.SelectedTemplateIDs)
}

func TestRemoteCatalogService_RequiresSeller(t *testing.T) {
	fx := createTestRemoteCatalog(t, newFakeAPI())
	ctx := context.Background()

	_, err := fx.service.AddCategory(ctx, usecase.CategoryInput{Name: "Soaps"})
	assert.ErrorIs(t, err, domainerrors.ErrSellerRequired)

	_, err = fx.service.GetProducts(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrSellerRequired)

	_, err = fx.service.AddProduct(ctx, usecase.ProductInput{Name: "Mug", Price: 3})
	assert.ErrorIs(t, err, domainerrors.ErrSellerRequired)

	assert.Zero(t, fx.api.callCount("POST /api/categories"))
}

func TestRemoteCatalogService_GetCategories_FiltersBySeller(t *testing.T) {
	fake := newFakeAPI().withSeller("s1", "Ama")
	fake.categories = []doc{
		{"_id": "c1", "name": "Soaps", "seller_id": "s1"},
		{"_id": "c2", "name": "Other", "seller_id": "s2"},
		{"_id": "c3", "name": "Body", "seller_id": doc{"_id": "s1", "name": "Ama"}},
	}
	fx := createTestRemoteCatalog(t, fake)

	categories, err := fx.service.GetCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "c1", categories[0].ID)
	assert.Equal(t, "c3", categories[1].ID)
	assert.Equal(t, "s1", categories[1].SellerID)
}

func TestRemoteCatalogService_AddCategory_LinksSeller(t *testing.T) {
	fx := createTestRemoteCatalog(t, newFakeAPI().withSeller("s1", "Ama"))

	category, err := fx.service.AddCategory(context.Background(), usecase.CategoryInput{Name: "Soaps", Description: "Bars"})

	require.NoError(t, err)
	assert.Equal(t, "Soaps", category.Name)
	assert.Equal(t, "s1", category.SellerID)
	assert.Equal(t, "s1", fx.api.body("POST /api/categories")["seller_id"])
}

func TestRemoteCatalogService_GetProductDetail_OmitsMissingAttribute(t *testing.T) {
	fake := newFakeAPI().withSeller("s1", "Ama")
	fake.attributes = []doc{{"_id": "a1", "name": "Scent", "options": []string{"Lavender"}}}
	fake.products = []doc{{
		"_id":           "p1",
		"seller_id":     "s1",
		"category_id":   "deleted-category",
		"product_name":  "Bar Soap",
		"price":         "6.50",
		"attribute_ids": []any{"a1", doc{"_id": "a2"}},
	}}
	fx := createTestRemoteCatalog(t, fake)

	detail, err := fx.service.GetProductDetail(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "Unknown", detail.CategoryName)
	assert.InDelta(t, 6.5, detail.Product.Price, 1e-9)
	assert.Equal(t, []string{"a1", "a2"}, detail.Product.AttributeIDs)
	require.Len(t, detail.Attributes, 1)
	assert.Equal(t, "Scent", detail.Attributes[0].Name)
	assert.Equal(t, []string{"Lavender"}, detail.Attributes[0].Values)
}

func TestRemoteCatalogService_GetProductDetail_NotFound(t *testing.T) {
	fx := createTestRemoteCatalog(t, newFakeAPI().withSeller("s1", "Ama"))

	_, err := fx.service.GetProductDetail(context.Background(), "nope")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRemoteCatalogService_AddProduct_PersistsTransientAttributes(t *testing.T) {
	fx := createTestRemoteCatalog(t, newFakeAPI().withSeller("s1", "Ama"))

	product, err := fx.service.AddProduct(context.Background(), usecase.ProductInput{
		Name:         "Bar Soap",
		Price:        6.5,
		Images:       []string{"https://cdn.example.com/soap.png", "null", ""},
		Inventory:    entity.InventoryInStock,
		Attributes:   []entity.ProductAttribute{{Name: "Color", Values: []string{"Red", "Blue"}}},
		AttributeIDs: []string{"a-existing"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, fx.api.callCount("POST /api/attributes"))
	assert.Empty(t, product.Attributes)
	assert.Equal(t, 1, product.Visible)
	assert.Equal(t, entity.InventoryInStock, product.Inventory)

	sent := fx.api.body("POST /api/products")
	assert.NotContains(t, sent, "attributes")
	assert.Equal(t, "s1", sent["seller_id"])
	assert.Equal(t, []any{"https://cdn.example.com/soap.png"}, sent["images"])
	require.Len(t, sent["attribute_ids"], 2)
	assert.Equal(t, "a-existing", sent["attribute_ids"].([]any)[0])
	assert.Equal(t, product.AttributeIDs, []string{"a-existing", sent["attribute_ids"].([]any)[1].(string)})
}

func TestRemoteCatalogService_UpdateProduct_SendsKeepList(t *testing.T) {
	fake := newFakeAPI().withSeller("s1", "Ama")
	fake.products = []doc{{
		"_id":          "p1",
		"seller_id":    "s1",
		"product_name": "Bar Soap",
		"images":       []string{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"},
	}}
	fx := createTestRemoteCatalog(t, fake)

	keep := []string{"https://cdn.example.com/a.png", "data:image/png;base64,AAAA"}
	price := 7.0

	product, err := fx.service.UpdateProduct(context.Background(), "p1", entity.ProductUpdate{Price: &price, Images: &keep})

	require.NoError(t, err)
	sent := fx.api.body("PUT /api/products/p1")
	assert.NotContains(t, sent, "images")
	assert.Equal(t, []any{"https://cdn.example.com/a.png", "data:image/png;base64,AAAA"}, sent["imagesToKeep"])
	assert.Equal(t, keep, product.Images)
	assert.InDelta(t, 7.0, product.Price, 1e-9)
}

func TestRemoteCatalogService_UpdateProduct_WithoutImagesSendsNoKeepList(t *testing.T) {
	fake := newFakeAPI().withSeller("s1", "Ama")
	fake.products = []doc{{"_id": "p1", "seller_id": "s1", "product_name": "Bar Soap"}}
	fx := createTestRemoteCatalog(t, fake)

	_, err := fx.service.UpdateProduct(context.Background(), "p1", entity.ProductUpdate{Name: strPtr("Soap Bar")})

	require.NoError(t, err)
	sent := fx.api.body("PUT /api/products/p1")
	assert.NotContains(t, sent, "imagesToKeep")
	assert.NotContains(t, sent, "images")
	assert.Equal(t, "Soap Bar", sent["product_name"])
}

func TestRemoteCatalogService_GetAnalytics_ServerErrorYieldsZero(t *testing.T) {
	fake := newFakeAPI().withSeller("s1", "Ama")
	fake.failAnalytics = true
	fx := createTestRemoteCatalog(t, fake)

	stats, err := fx.service.GetAnalytics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "s1", stats.SellerID)
	assert.Zero(t, stats.TotalVisitors)
	assert.Zero(t, stats.WhatsappInquiries)
	assert.Empty(t, stats.VisitorData.Last15Days)
	assert.Empty(t, stats.ProductPerformance.AllTime)
}

func TestRemoteCatalogService_GetAnalytics_NetworkFailureYieldsZero(t *testing.T) {
	fx := createTestRemoteCatalog(t, newFakeAPI().withSeller("s1", "Ama"))
	ctx := context.Background()

	// Warm the identity cache, then take the backend away.
	_, err := fx.service.GetSeller(ctx)
	require.NoError(t, err)
	fx.server.Close()

	stats, err := fx.service.GetAnalytics(ctx)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Zero(t, stats.TotalVisitors)
	assert.NotNil(t, stats.VisitorData.Last30Days)
}

func TestRemoteCatalogService_GetAnalytics_Aggregates(t *testing.T) {
	fake := newFakeAPI().withSeller("s1", "Ama")
	fake.products = []doc{{"_id": "p1", "seller_id": "s1", "product_name": "Bar Soap"}}
	day := func(offset int) string {
		return fixedNow.AddDate(0, 0, -offset).Format(time.RFC3339)
	}
	fake.analytics = []doc{
		{"_id": "e1", "product_id": "p1", "seller_id": "s1", "date": day(0), "views": 10, "clicks": 2},
		{"_id": "e2", "product_id": "p1", "seller_id": "s1", "date": day(3), "views": 5, "clicks": 1},
		{"_id": "e3", "product_id": "px", "seller_id": "s2", "date": day(0), "views": 99, "clicks": 9},
	}
	fx := createTestRemoteCatalog(t, fake)

	stats, err := fx.service.GetAnalytics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 15, stats.TotalVisitors)
	assert.Equal(t, 15, stats.ProductViews)
	assert.Equal(t, 3, stats.WhatsappInquiries)
	require.Len(t, stats.VisitorData.Last15Days, 15)
	assert.Equal(t, 10, stats.VisitorData.Last15Days[14].Visitors)
	require.Len(t, stats.ProductPerformance.AllTime, 1)
	assert.Equal(t, stats.ProductPerformance.AllTime, stats.ProductPerformance.LastDay)
	assert.InDelta(t, 20.0, stats.ProductPerformance.AllTime[0].ConversionRate, 1e-9)
}

func TestRemoteCatalogService_MaintenanceIsUnsupported(t *testing.T) {
	fx := createTestRemoteCatalog(t, newFakeAPI().withSeller("s1", "Ama"))
	ctx := context.Background()

	assert.ErrorIs(t, fx.service.ImportAllData(ctx, entity.DataExport{}), domainerrors.ErrUnsupported)
	assert.ErrorIs(t, fx.service.ResetToDefaults(ctx), domainerrors.ErrUnsupported)
	assert.ErrorIs(t, fx.service.ResetAllData(ctx), domainerrors.ErrUnsupported)

	_, err := fx.service.UpdateAnalytics(ctx, entity.AnalyticsUpdate{})
	assert.ErrorIs(t, err, domainerrors.ErrUnsupported)
}

func TestSession_InvalidateRefetchesSeller(t *testing.T) {
	fx := createTestRemoteCatalog(t, newFakeAPI().withSeller("s1", "Ama"))
	ctx := context.Background()

	_, err := fx.session.FetchSellerRecord(ctx)
	require.NoError(t, err)
	_, err = fx.session.FetchSellerRecord(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fx.api.callCount("GET /api/sellers/s1"))

	fx.session.Invalidate()
	_, err = fx.session.FetchSellerRecord(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fx.api.callCount("GET /api/sellers/s1"))
	assert.Equal(t, 1, fx.api.callCount("GET /api/auth/me"))

	fx.session.Reset()
	_, err = fx.session.LoadUser(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, fx.api.callCount("GET /api/auth/me"))
}

func TestSession_EnsureBusinessCreatesDefault(t *testing.T) {
	fake := newFakeAPI()
	fake.sellers["s9"] = doc{"_id": "s9", "name": "Kofi"}
	fake.user["seller_id"] = "s9"
	fx := createTestRemoteCatalog(t, fake)

	business, err := fx.session.EnsureBusinessForSeller(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Kofi", business.BusinessName)
	assert.Equal(t, 1, int(business.TemplateID))
	sent := fake.body("POST /api/businesses")
	assert.Equal(t, "ama@example.com", sent["email"])
	assert.Equal(t, "s9", sent["seller_id"])
}

func TestRemoteCatalogService_UpdateSeller_BusinessFailureStillRefreshesSeller(t *testing.T) {
	fake := newFakeAPI().withSeller("s1", "Ama")
	fx := createTestRemoteCatalog(t, fake)
	ctx := context.Background()

	before, err := fx.service.GetSeller(ctx)
	require.NoError(t, err)
	require.Equal(t, "Ama", before.Name)

	fake.failBusiness = true
	_, err = fx.service.UpdateSeller(ctx, entity.SellerUpdate{
		Name:         strPtr("Ama Renamed"),
		BusinessType: strPtr("Candles"),
	})
	require.Error(t, err)
	assert.Equal(t, 1, fx.api.callCount("PUT /api/sellers/s1"))

	after, err := fx.service.GetSeller(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ama Renamed", after.Name)
	assert.Equal(t, "Handmade", after.BusinessType)
}

func TestRemoteCatalogService_GetProducts_ToleratesMalformedFields(t *testing.T) {
	fake := newFakeAPI().withSeller("s1", "Ama")
	fake.products = []doc{
		{"_id": "p1", "seller_id": "s1", "product_name": "Bar Soap", "views": "12", "clicks": "3", "createdAt": ""},
		{"_id": "p2", "seller_id": "s1", "product_name": "Shea Butter", "is_visible": "false", "updatedAt": "soon"},
	}
	fx := createTestRemoteCatalog(t, fake)

	products, err := fx.service.GetProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 12, products[0].Views)
	assert.InDelta(t, 25.0, products[0].ConversionRate, 1e-9)
	assert.Equal(t, fixedNow, products[0].CreatedAt)
	assert.Equal(t, 0, products[1].Visible)
	assert.Equal(t, fixedNow, products[1].UpdatedAt)
}

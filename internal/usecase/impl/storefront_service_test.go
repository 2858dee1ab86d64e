package impl

import (
	"context"
	"errors"
	"testing"

	"sitesnap/internal/domain/entity"
	domainerrors "sitesnap/internal/domain/errors"
	mockService "sitesnap/internal/mocks/service"
	"sitesnap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStorefrontURL = "https://shop.example.com/amas-naturals"

func createTestStorefront(t *testing.T, storefrontURL string) (usecase.StorefrontUsecase, *mockService.MockQRCodeService) {
	t.Helper()

	qr := mockService.NewMockQRCodeService(t)
	catalog := createTestLocalCatalog(t).service

	return NewStorefrontService(catalog, qr, storefrontURL, newDiscardLogger()), qr
}

func TestStorefrontService_Catalog_HidesInvisibleProducts(t *testing.T) {
	svc, _ := createTestStorefront(t, testStorefrontURL)

	catalog, err := svc.Catalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, entity.StorefrontBrand{
		Name:           "Ama's Naturals",
		Tagline:        "Handmade soaps and body care",
		WhatsappNumber: "233201234567",
		TemplateID:     "artisan-craft",
	}, catalog.Brand)
	assert.Len(t, catalog.Categories, 2)

	ids := make([]string, 0, len(catalog.Products))
	for _, p := range catalog.Products {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"product-lavender-bar", "product-shea-butter"}, ids)

	for _, p := range catalog.Products {
		switch p.ID {
		case "product-lavender-bar":
			assert.Equal(t, "Soaps", p.Category)
			assert.True(t, p.InStock)
			assert.Equal(t, "https://images.example.com/demo/lavender-bar.jpg", p.Image)
		case "product-shea-butter":
			assert.Equal(t, "Body Care", p.Category)
			assert.False(t, p.InStock)
		}
	}
}

func TestStorefrontService_Checkout(t *testing.T) {
	svc, _ := createTestStorefront(t, testStorefrontURL)

	link, err := svc.Checkout(context.Background(), entity.Cart{Items: []entity.CartItem{
		{ProductID: "product-lavender-bar", Name: "Lavender Bar Soap", Price: 6.5, Quantity: 2},
		{ProductID: "product-shea-butter", Name: "Whipped Shea Butter", Price: 12, Quantity: 1},
	}})
	require.NoError(t, err)

	assert.Equal(t, "Hi! I'd like to order:\n\nLavender Bar Soap (x2) - $13.00\nWhipped Shea Butter (x1) - $12.00\n\nTotal: $25.00", link.Message)
	assert.InDelta(t, 25.0, link.Total, 1e-9)
	assert.Contains(t, link.URL, "https://wa.me/233201234567?text=Hi%21%20I%27d%20like%20to%20order%3A%0A%0A")
}

func TestStorefrontService_Checkout_EmptyCart(t *testing.T) {
	svc, _ := createTestStorefront(t, testStorefrontURL)

	_, err := svc.Checkout(context.Background(), entity.Cart{})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStorefrontService_Inquiry(t *testing.T) {
	svc, _ := createTestStorefront(t, testStorefrontURL)
	ctx := context.Background()

	link, err := svc.Inquiry(ctx, usecase.InquiryInput{ProductID: "product-lavender-bar", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, "Hi! I'm interested in Lavender Bar Soap (3 units)", link.Message)
	assert.Equal(t, "https://wa.me/233201234567?text=Hi%21%20I%27m%20interested%20in%20Lavender%20Bar%20Soap%20%283%20units%29", link.URL)

	_, err = svc.Inquiry(ctx, usecase.InquiryInput{ProductID: "product-black-soap"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestInquiryMessage(t *testing.T) {
	assert.Equal(t, "Hi! I'm interested in Soap", InquiryMessage("Soap", 0))
	assert.Equal(t, "Hi! I'm interested in Soap (1 unit)", InquiryMessage("Soap", 1))
	assert.Equal(t, "Hi! I'm interested in Soap (2 units)", InquiryMessage("Soap", 2))
}

func TestChatURL_StripsPhoneFormatting(t *testing.T) {
	assert.Equal(t, "https://wa.me/233201234567?text=a%20b%26c", ChatURL("+233 (20) 123-4567", "a b&c"))
	assert.Equal(t, "https://wa.me/?text=hi", ChatURL("", "hi"))
}

func TestStorefrontService_QRCode(t *testing.T) {
	t.Run("renders configured URL", func(t *testing.T) {
		svc, qr := createTestStorefront(t, testStorefrontURL)
		qr.EXPECT().GenerateStorefrontQR(testStorefrontURL).Return([]byte("png"), nil).Once()

		png, err := svc.QRCode(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("renderer failure", func(t *testing.T) {
		svc, qr := createTestStorefront(t, testStorefrontURL)
		qr.EXPECT().GenerateStorefrontQR(testStorefrontURL).Return(nil, errors.New("boom")).Once()

		_, err := svc.QRCode(context.Background())

		assert.ErrorContains(t, err, "boom")
	})

	t.Run("missing URL", func(t *testing.T) {
		svc, _ := createTestStorefront(t, "")

		_, err := svc.QRCode(context.Background())

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

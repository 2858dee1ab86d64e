package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	deliverycontext "sitesnap/internal/delivery/context"
	"sitesnap/internal/domain/entity"
	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/domain/service"
	"sitesnap/internal/errors"
	"sitesnap/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const chatBaseURL = "https://wa.me/"

// storefrontService implements StorefrontUsecase over a seller catalog.
type storefrontService struct {
	catalog       usecase.CatalogUsecase
	qr            service.QRCodeService
	storefrontURL string
	logger        *slog.Logger
}

// NewStorefrontService is the constructor for storefrontService.
func NewStorefrontService(
	catalog usecase.CatalogUsecase,
	qr service.QRCodeService,
	storefrontURL string,
	logger *slog.Logger,
) usecase.StorefrontUsecase {
	return &storefrontService{
		catalog:       catalog,
		qr:            qr,
		storefrontURL: storefrontURL,
		logger:        logger,
	}
}

func (srv *storefrontService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Catalog lists what a visitor may see: hidden products are left out.
func (srv *storefrontService) Catalog(ctx context.Context) (*entity.StorefrontCatalog, error) {
	seller, err := srv.catalog.GetSeller(ctx)
	if err != nil {
		return nil, err
	}

	var (
		categories []entity.Category
		products   []entity.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = srv.catalog.GetCategories(gctx)

		return err
	})
	g.Go(func() error {
		var err error
		products, err = srv.catalog.GetProducts(gctx)

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	visible := make([]entity.StorefrontProduct, 0, len(products))
	for _, p := range products {
		if !p.IsVisible() {
			continue
		}
		visible = append(visible, toStorefrontProduct(p, names))
	}

	srv.log(ctx).Debug("Built storefront catalog",
		slog.String("seller_id", seller.ID),
		slog.Int("products", len(visible)),
	)

	return &entity.StorefrontCatalog{
		Brand:      brandOf(seller),
		Categories: categories,
		Products:   visible,
	}, nil
}

func brandOf(seller *entity.Seller) entity.StorefrontBrand {
	brand := entity.StorefrontBrand{
		Name:           seller.BusinessName,
		Tagline:        seller.BusinessType,
		WhatsappNumber: digitsOnly(seller.Phone),
	}
	if brand.Name == "" {
		brand.Name = seller.Name
	}
	if len(seller.SelectedTemplateIDs) > 0 {
		brand.TemplateID = seller.SelectedTemplateIDs[0]
	}

	return brand
}

func toStorefrontProduct(p entity.Product, categoryNames map[string]string) entity.StorefrontProduct {
	category, ok := categoryNames[p.CategoryID]
	if !ok {
		category = unknownCategoryName
	}

	var image string
	if len(p.Images) > 0 {
		image = p.Images[0]
	}

	return entity.StorefrontProduct{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Image:       image,
		Category:    category,
		Description: p.Description,
		InStock:     p.Inventory != entity.InventoryOutOfStock,
	}
}

// Checkout builds the order message for cart and the chat link carrying it.
func (srv *storefrontService) Checkout(ctx context.Context, cart entity.Cart) (*entity.MessageLink, error) {
	if err := validateInput(cart); err != nil {
		return nil, err
	}

	seller, err := srv.catalog.GetSeller(ctx)
	if err != nil {
		return nil, err
	}

	message := OrderMessage(cart)

	return &entity.MessageLink{
		URL:     ChatURL(seller.Phone, message),
		Message: message,
		Total:   cart.Total(),
	}, nil
}

// Inquiry builds the message asking about one product.
func (srv *storefrontService) Inquiry(ctx context.Context, input usecase.InquiryInput) (*entity.MessageLink, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	seller, err := srv.catalog.GetSeller(ctx)
	if err != nil {
		return nil, err
	}

	products, err := srv.catalog.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	var product *entity.Product
	for i := range products {
		if products[i].ID == input.ProductID && products[i].IsVisible() {
			product = &products[i]

			break
		}
	}
	if product == nil {
		return nil, domainerrors.ErrNotFound.WithDetails("product " + input.ProductID)
	}

	message := InquiryMessage(product.Name, input.Quantity)

	return &entity.MessageLink{
		URL:     ChatURL(seller.Phone, message),
		Message: message,
	}, nil
}

// QRCode renders the configured storefront URL.
func (srv *storefrontService) QRCode(ctx context.Context) ([]byte, error) {
	if srv.storefrontURL == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("storefront URL is not configured")
	}

	png, err := srv.qr.GenerateStorefrontQR(srv.storefrontURL)
	if err != nil {
		srv.log(ctx).Error("Failed to render storefront QR", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render storefront QR")
	}

	return png, nil
}

// OrderMessage is the checkout text: one line per item and the total.
func OrderMessage(cart entity.Cart) string {
	lines := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, fmt.Sprintf("%s (x%d) - $%.2f", item.Name, item.Quantity, item.LineTotal()))
	}

	return fmt.Sprintf("Hi! I'd like to order:\n\n%s\n\nTotal: $%.2f", strings.Join(lines, "\n"), cart.Total())
}

// InquiryMessage asks about a product, mentioning the quantity when positive.
func InquiryMessage(name string, quantity int) string {
	if quantity <= 0 {
		return "Hi! I'm interested in " + name
	}

	unit := "unit"
	if quantity > 1 {
		unit = "units"
	}

	return fmt.Sprintf("Hi! I'm interested in %s (%d %s)", name, quantity, unit)
}

// ChatURL is the wa.me link to phone with text prefilled. A phone without
// digits leaves the recipient for the visitor to pick.
func ChatURL(phone, text string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")

	return chatBaseURL + digitsOnly(phone) + "?text=" + escaped
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

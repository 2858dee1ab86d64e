package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "sitesnap/internal/delivery/context"
	"sitesnap/internal/domain/analytics"
	"sitesnap/internal/domain/entity"
	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/domain/template"
	"sitesnap/internal/errors"
	"sitesnap/internal/infra/api/media"
	"sitesnap/internal/infra/api/model"
	"sitesnap/internal/infra/api/translator"
	"sitesnap/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const (
	defaultSellerName   = "Seller"
	unknownCategoryName = "Unknown"
)

// remoteCatalogService implements CatalogUsecase against the REST backend.
type remoteCatalogService struct {
	backend Backend
	session *Session
	logger  *slog.Logger
	now     Clock
}

// NewRemoteCatalogService is the constructor for the network-backed catalog.
func NewRemoteCatalogService(backend Backend, session *Session, logger *slog.Logger) usecase.CatalogUsecase {
	return &remoteCatalogService{
		backend: backend,
		session: session,
		logger:  logger,
		now:     time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *remoteCatalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Seller ---

// GetSeller returns the merged seller/business profile. A user without a
// seller profile gets a Seller with an empty ID.
func (srv *remoteCatalogService) GetSeller(ctx context.Context) (*entity.Seller, error) {
	seller, err := srv.session.FetchSellerRecord(ctx)
	if err != nil {
		return nil, err
	}

	var business *model.BusinessRecord
	if seller != nil {
		business, err = srv.session.FetchBusinessRecord(ctx)
		if err != nil {
			return nil, err
		}
	}

	out := translator.MapSeller(seller, business, srv.now())

	return &out, nil
}

// UpdateSeller is the only path that creates seller and business records.
func (srv *remoteCatalogService) UpdateSeller(ctx context.Context, updates entity.SellerUpdate) (*entity.Seller, error) {
	if err := validateInput(updates); err != nil {
		return nil, err
	}

	user, err := srv.session.LoadUser(ctx, false)
	if err != nil {
		return nil, err
	}
	// A failure halfway may still have changed the seller server-side.
	defer srv.session.Invalidate()

	sellerPayload := translator.SellerPayload(updates)
	businessPayload := translator.BusinessPayload(updates)

	seller, err := srv.session.FetchSellerRecord(ctx)
	if err != nil {
		return nil, err
	}

	// 1. Create or update the seller record
	if seller == nil {
		if _, ok := sellerPayload["name"]; !ok {
			sellerPayload["name"] = defaultNameFor(user.Email)
		}

		created, err := srv.backend.CreateSeller(ctx, sellerPayload)
		if err != nil {
			srv.log(ctx).Error("Failed to create seller", slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to create seller")
		}
		srv.log(ctx).Info("Created seller", slog.String("seller_id", created.ID))

		// The user's seller reference changed server-side.
		if _, err := srv.session.LoadUser(ctx, true); err != nil {
			return nil, err
		}
	} else if len(sellerPayload) > 0 {
		if _, err := srv.backend.UpdateSeller(ctx, seller.ID, sellerPayload); err != nil {
			return nil, errors.Wrap(err, "failed to update seller")
		}
	}

	// 2. Every seller has a business; apply the business-scoped fields to it
	business, err := srv.session.EnsureBusinessForSeller(ctx)
	if err != nil {
		return nil, err
	}
	if len(businessPayload) > 0 {
		if _, err := srv.backend.UpdateBusiness(ctx, business.ID, businessPayload); err != nil {
			return nil, errors.Wrap(err, "failed to update business")
		}
	}

	// 3. Re-read authoritative state
	srv.session.Invalidate()

	return srv.GetSeller(ctx)
}

func defaultNameFor(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local = strings.TrimSpace(local); local != "" {
		return local
	}

	return defaultSellerName
}

// --- Templates ---

func (srv *remoteCatalogService) GetTemplates(_ context.Context) ([]entity.Template, error) {
	return template.All(), nil
}

func (srv *remoteCatalogService) LinkTemplatesToSeller(ctx context.Context, templateIDs []string) error {
	if _, err := srv.session.SellerID(ctx); err != nil {
		return err
	}

	_, err := srv.UpdateSeller(ctx, entity.SellerUpdate{SelectedTemplateIDs: templateIDs})

	return err
}

func (srv *remoteCatalogService) GetSelectedTemplates(ctx context.Context) ([]string, error) {
	seller, err := srv.GetSeller(ctx)
	if err != nil {
		return nil, err
	}

	return seller.SelectedTemplateIDs, nil
}

// --- Categories ---

func (srv *remoteCatalogService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	sellerID, err := srv.session.SellerID(ctx)
	if err != nil {
		return nil, err
	}

	records, err := srv.backend.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return srv.sellerCategories(records, sellerID), nil
}

func (srv *remoteCatalogService) sellerCategories(records []model.CategoryRecord, sellerID string) []entity.Category {
	now := srv.now()
	out := make([]entity.Category, 0, len(records))
	for _, rec := range records {
		if translator.ExtractID(rec.SellerID) != sellerID {
			continue
		}
		out = append(out, translator.MapCategory(rec, now))
	}

	return out
}

func (srv *remoteCatalogService) AddCategory(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sellerID, err := srv.session.SellerID(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := srv.backend.CreateCategory(ctx, translator.CategoryPayload(entity.Category{
		SellerID:    sellerID,
		Name:        input.Name,
		Description: input.Description,
	}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	out := translator.MapCategory(*rec, srv.now())

	return &out, nil
}

func (srv *remoteCatalogService) UpdateCategory(ctx context.Context, id string, updates usecase.CategoryUpdate) (*entity.Category, error) {
	if err := validateInput(updates); err != nil {
		return nil, err
	}
	if _, err := srv.session.SellerID(ctx); err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if updates.Name != nil {
		payload["name"] = *updates.Name
	}
	if updates.Description != nil {
		payload["description"] = *updates.Description
	}

	rec, err := srv.backend.UpdateCategory(ctx, id, payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	out := translator.MapCategory(*rec, srv.now())

	return &out, nil
}

func (srv *remoteCatalogService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := srv.session.SellerID(ctx); err != nil {
		return err
	}

	return errors.Wrap(srv.backend.DeleteCategory(ctx, id), "failed to delete category")
}

// --- Attributes ---

// GetAttributes lists the shared attribute documents. Attributes are not
// seller-scoped.
func (srv *remoteCatalogService) GetAttributes(ctx context.Context) ([]entity.Attribute, error) {
	records, err := srv.backend.ListAttributes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list attributes")
	}

	now := srv.now()
	out := make([]entity.Attribute, 0, len(records))
	for _, rec := range records {
		out = append(out, translator.MapAttribute(rec, now))
	}

	return out, nil
}

func (srv *remoteCatalogService) AddAttribute(ctx context.Context, input usecase.AttributeInput) (*entity.Attribute, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if _, err := srv.session.SellerID(ctx); err != nil {
		return nil, err
	}

	rec, err := srv.backend.CreateAttribute(ctx, translator.AttributePayload(entity.Attribute{
		Name:    input.Name,
		Options: input.Options,
	}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create attribute")
	}

	out := translator.MapAttribute(*rec, srv.now())

	return &out, nil
}

func (srv *remoteCatalogService) UpdateAttribute(ctx context.Context, id string, updates usecase.AttributeUpdate) (*entity.Attribute, error) {
	if err := validateInput(updates); err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if updates.Name != nil {
		payload["name"] = *updates.Name
	}
	if updates.Options != nil {
		payload["options"] = append([]string{}, (*updates.Options)...)
	}

	rec, err := srv.backend.UpdateAttribute(ctx, id, payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update attribute")
	}

	out := translator.MapAttribute(*rec, srv.now())

	return &out, nil
}

func (srv *remoteCatalogService) DeleteAttribute(ctx context.Context, id string) error {
	return errors.Wrap(srv.backend.DeleteAttribute(ctx, id), "failed to delete attribute")
}

// persistAttributes stores transient name/values pairs as attribute
// documents and returns their ids.
func (srv *remoteCatalogService) persistAttributes(ctx context.Context, attrs []entity.ProductAttribute) ([]string, error) {
	ids := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		if strings.TrimSpace(attr.Name) == "" {
			continue
		}

		rec, err := srv.backend.CreateAttribute(ctx, translator.AttributePayload(entity.Attribute{
			Name:    attr.Name,
			Options: attr.Values,
		}))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to save attribute %q", attr.Name)
		}
		ids = append(ids, rec.ID)
	}

	return ids, nil
}

// --- Products ---

func (srv *remoteCatalogService) GetProducts(ctx context.Context) ([]entity.Product, error) {
	sellerID, err := srv.session.SellerID(ctx)
	if err != nil {
		return nil, err
	}

	records, err := srv.backend.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return srv.sellerProducts(records, sellerID), nil
}

func (srv *remoteCatalogService) sellerProducts(records []model.ProductRecord, sellerID string) []entity.Product {
	now := srv.now()
	out := make([]entity.Product, 0, len(records))
	for _, rec := range records {
		if translator.ExtractID(rec.SellerID) != sellerID {
			continue
		}
		out = append(out, translator.MapProduct(rec, now))
	}

	return out
}

// GetProductDetail resolves the product's category and attributes. Dangling
// references never fail the lookup: the category shows as "Unknown" and
// missing attributes are left out.
func (srv *remoteCatalogService) GetProductDetail(ctx context.Context, id string) (*entity.ProductDetail, error) {
	sellerID, err := srv.session.SellerID(ctx)
	if err != nil {
		return nil, err
	}

	var (
		products   []model.ProductRecord
		categories []model.CategoryRecord
		attributes []model.AttributeRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = srv.backend.ListProducts(gctx)

		return errors.Wrap(err, "failed to list products")
	})
	g.Go(func() error {
		var err error
		categories, err = srv.backend.ListCategories(gctx)

		return errors.Wrap(err, "failed to list categories")
	})
	g.Go(func() error {
		var err error
		attributes, err = srv.backend.ListAttributes(gctx)

		return errors.Wrap(err, "failed to list attributes")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	owned := srv.sellerProducts(products, sellerID)
	idx := slices.IndexFunc(owned, func(p entity.Product) bool { return p.ID == id })
	if idx < 0 {
		return nil, domainerrors.ErrNotFound.WithDetails("product " + id)
	}

	return resolveProductDetail(owned[idx], srv.sellerCategories(categories, sellerID), mapAttributes(attributes, srv.now())), nil
}

func mapAttributes(records []model.AttributeRecord, now time.Time) []entity.Attribute {
	out := make([]entity.Attribute, 0, len(records))
	for _, rec := range records {
		out = append(out, translator.MapAttribute(rec, now))
	}

	return out
}

// resolveProductDetail is shared by both catalog variants.
func resolveProductDetail(product entity.Product, categories []entity.Category, attributes []entity.Attribute) *entity.ProductDetail {
	detail := &entity.ProductDetail{
		Product:      product,
		CategoryName: unknownCategoryName,
		Attributes:   []entity.ProductAttribute{},
	}

	for _, c := range categories {
		if c.ID == product.CategoryID && product.CategoryID != "" {
			detail.CategoryName = c.Name

			break
		}
	}

	byID := make(map[string]entity.Attribute, len(attributes))
	for _, a := range attributes {
		byID[a.ID] = a
	}
	for _, id := range product.AttributeIDs {
		attr, ok := byID[id]
		if !ok {
			continue
		}
		detail.Attributes = append(detail.Attributes, entity.ProductAttribute{
			Name:   attr.Name,
			Values: append([]string{}, attr.Options...),
		})
	}

	return detail
}

// AddProduct persists transient attributes first, then submits the product
// as JSON or multipart depending on its images.
func (srv *remoteCatalogService) AddProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	sellerID, err := srv.session.SellerID(ctx)
	if err != nil {
		return nil, err
	}

	product := input.Product()
	product.SellerID = sellerID

	created, err := srv.persistAttributes(ctx, product.Attributes)
	if err != nil {
		return nil, err
	}
	product.AttributeIDs = appendUnique(product.AttributeIDs, created...)
	product.Attributes = []entity.ProductAttribute{}

	sub, err := media.BuildProductSubmission(media.Create, translator.ProductPayload(product), product.Images, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build product submission")
	}

	rec, err := srv.backend.CreateProduct(ctx, sub)
	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err), slog.String("seller_id", sellerID))

		return nil, errors.Wrap(err, "failed to create product")
	}

	out := translator.MapProduct(*rec, srv.now())

	return &out, nil
}

// UpdateProduct applies a partial change. When Attributes is supplied it is
// the product's full attribute set: the new documents are linked next to the
// supplied AttributeIDs.
func (srv *remoteCatalogService) UpdateProduct(ctx context.Context, id string, updates entity.ProductUpdate) (*entity.Product, error) {
	if err := validateInput(updates); err != nil {
		return nil, err
	}
	if _, err := srv.session.SellerID(ctx); err != nil {
		return nil, err
	}

	if updates.Attributes != nil {
		created, err := srv.persistAttributes(ctx, *updates.Attributes)
		if err != nil {
			return nil, err
		}

		var ids []string
		if updates.AttributeIDs != nil {
			ids = *updates.AttributeIDs
		}
		ids = appendUnique(append([]string{}, ids...), created...)
		updates.AttributeIDs = &ids
		updates.Attributes = nil
	}

	var (
		images   []string
		supplied bool
	)
	if updates.Images != nil {
		images, supplied = *updates.Images, true
	}

	sub, err := media.BuildProductSubmission(media.Update, translator.ProductUpdatePayload(updates), images, supplied)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build product submission")
	}

	rec, err := srv.backend.UpdateProduct(ctx, id, sub)
	if err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("error", err), slog.String("product_id", id))

		return nil, errors.Wrap(err, "failed to update product")
	}

	out := translator.MapProduct(*rec, srv.now())

	return &out, nil
}

func (srv *remoteCatalogService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := srv.session.SellerID(ctx); err != nil {
		return err
	}

	return errors.Wrap(srv.backend.DeleteProduct(ctx, id), "failed to delete product")
}

// nonNilStrings copies values, turning nil into an empty list.
func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return append([]string{}, values...)
}

func appendUnique(ids []string, more ...string) []string {
	for _, id := range more {
		if id != "" && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}

	return ids
}

// --- Analytics ---

// GetAnalytics never returns an error: any failure yields a zeroed dashboard.
func (srv *remoteCatalogService) GetAnalytics(ctx context.Context) (*entity.Analytics, error) {
	now := srv.now()

	sellerID, err := srv.session.SellerID(ctx)
	if err != nil {
		srv.log(ctx).Warn("Analytics unavailable without a seller", slog.Any("error", err))

		return analytics.Zero("", now), nil
	}

	var (
		records  []model.AnalyticsRecord
		products []model.ProductRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = srv.backend.ListAnalytics(gctx)

		return err
	})
	g.Go(func() error {
		var err error
		products, err = srv.backend.ListProducts(gctx)

		return err
	})
	if err := g.Wait(); err != nil {
		srv.log(ctx).Warn("Failed to fetch analytics, showing empty dashboard", slog.Any("error", err))

		return analytics.Zero(sellerID, now), nil
	}

	events := make([]entity.AnalyticsEvent, 0, len(records))
	for _, rec := range records {
		event := translator.MapAnalyticsEvent(rec)
		if event.SellerID != "" && event.SellerID != sellerID {
			continue
		}
		events = append(events, event)
	}

	return analytics.Build(sellerID, events, srv.sellerProducts(products, sellerID), now), nil
}

// --- Sync ---

func (srv *remoteCatalogService) ExportAllData(ctx context.Context) (*entity.DataExport, error) {
	seller, err := srv.GetSeller(ctx)
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
		categories, err = srv.GetCategories(gctx)

		return err
	})
	g.Go(func() error {
		var err error
		products, err = srv.GetProducts(gctx)

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats, _ := srv.GetAnalytics(ctx)

	return &entity.DataExport{
		Seller:     seller,
		Categories: categories,
		Products:   products,
		Analytics:  stats,
	}, nil
}

func (srv *remoteCatalogService) UpdateAnalytics(_ context.Context, _ entity.AnalyticsUpdate) (*entity.Analytics, error) {
	return nil, domainerrors.ErrUnsupported.WithDetails("the live dashboard is computed from recorded events")
}

func (srv *remoteCatalogService) ImportAllData(_ context.Context, _ entity.DataExport) error {
	return domainerrors.ErrUnsupported.WithDetails("import replaces data other devices are editing; use the offline store")
}

func (srv *remoteCatalogService) ResetToDefaults(_ context.Context) error {
	return domainerrors.ErrUnsupported.WithDetails("the live store has no bundled defaults to reset to")
}

func (srv *remoteCatalogService) ResetAllData(_ context.Context) error {
	return domainerrors.ErrUnsupported.WithDetails("clearing the live store is not allowed from the app")
}

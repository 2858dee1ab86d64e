package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	deliverycontext "sitesnap/internal/delivery/context"
	"sitesnap/internal/domain/entity"
	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/domain/repository"
	"sitesnap/internal/domain/template"
	"sitesnap/internal/errors"
	"sitesnap/internal/infra/api/media"
	"sitesnap/internal/infra/api/translator"
	"sitesnap/internal/infra/storage"
	"sitesnap/internal/usecase"

	"github.com/google/uuid"
)

// localCatalogService implements CatalogUsecase over the on-device
// key-value store. It is seeded from the bundled defaults on first use and
// never touches the network. The mutex serializes read-modify-write cycles
// on the stored blobs.
type localCatalogService struct {
	store  repository.KeyValueRepository
	logger *slog.Logger
	now    Clock
	newID  func(prefix string) string

	mu sync.Mutex
}

// NewLocalCatalogService is the constructor for the offline catalog.
func NewLocalCatalogService(store repository.KeyValueRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &localCatalogService{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  generateID,
	}
}

func generateID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *localCatalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Storage helpers ---

// ensureSeeded copies the bundled defaults into the store unless the
// initialized flag is already set.
func (srv *localCatalogService) ensureSeeded(ctx context.Context) error {
	_, err := srv.store.Get(ctx, storage.KeyInitialized)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrKeyNotFound) {
		return errors.Wrap(err, "failed to read initialized flag")
	}

	srv.log(ctx).Info("Seeding offline catalog from bundled defaults")

	for _, key := range storage.DataKeys() {
		data, err := storage.Default(key)
		if err != nil {
			return err
		}
		if err := srv.store.Set(ctx, key, data); err != nil {
			return errors.Wrapf(err, "failed to seed %s", key)
		}
	}

	return errors.Wrap(srv.store.Set(ctx, storage.KeyInitialized, []byte("true")), "failed to mark catalog initialized")
}

// readJSON decodes key into out. It reports false when the key is absent.
func (srv *localCatalogService) readJSON(ctx context.Context, key string, out any) (bool, error) {
	data, err := srv.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return false, nil
		}

		return false, err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, errors.Wrapf(err, "failed to decode %s", key)
	}

	return true, nil
}

func (srv *localCatalogService) writeJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}

	return srv.store.Set(ctx, key, data)
}

// --- Seller ---

func (srv *localCatalogService) loadSeller(ctx context.Context) (*entity.Seller, error) {
	if err := srv.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	var seller entity.Seller
	found, err := srv.readJSON(ctx, storage.KeySeller, &seller)
	if err != nil {
		return nil, err
	}
	if !found {
		data, err := storage.Default(storage.KeySeller)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &seller); err != nil {
			return nil, errors.Wrap(err, "failed to decode bundled seller")
		}
	}
	if seller.SelectedTemplateIDs == nil {
		seller.SelectedTemplateIDs = []string{}
	}

	return &seller, nil
}

func (srv *localCatalogService) saveSeller(ctx context.Context, seller *entity.Seller) error {
	seller.UpdatedAt = srv.now()

	return srv.writeJSON(ctx, storage.KeySeller, seller)
}

// sellerID scopes every category, product and analytics read.
func (srv *localCatalogService) sellerID(ctx context.Context) (string, error) {
	seller, err := srv.loadSeller(ctx)
	if err != nil {
		return "", err
	}
	if seller.ID == "" {
		return "", domainerrors.ErrSellerRequired
	}

	return seller.ID, nil
}

func (srv *localCatalogService) GetSeller(ctx context.Context) (*entity.Seller, error) {
	return srv.loadSeller(ctx)
}

func (srv *localCatalogService) UpdateSeller(ctx context.Context, updates entity.SellerUpdate) (*entity.Seller, error) {
	if err := validateInput(updates); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	seller, err := srv.loadSeller(ctx)
	if err != nil {
		return nil, err
	}

	updates.Apply(seller)
	if seller.ID == "" {
		seller.ID = srv.newID("seller")
		seller.CreatedAt = srv.now()
	}
	seller.IsOnboarded = true

	if err := srv.saveSeller(ctx, seller); err != nil {
		return nil, err
	}

	return seller, nil
}

// --- Templates ---

func (srv *localCatalogService) GetTemplates(_ context.Context) ([]entity.Template, error) {
	return template.All(), nil
}

func (srv *localCatalogService) LinkTemplatesToSeller(ctx context.Context, templateIDs []string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	seller, err := srv.loadSeller(ctx)
	if err != nil {
		return err
	}
	seller.SelectedTemplateIDs = append([]string{}, templateIDs...)

	return srv.saveSeller(ctx, seller)
}

func (srv *localCatalogService) GetSelectedTemplates(ctx context.Context) ([]string, error) {
	seller, err := srv.loadSeller(ctx)
	if err != nil {
		return nil, err
	}

	return seller.SelectedTemplateIDs, nil
}

// --- Categories ---

func (srv *localCatalogService) allCategories(ctx context.Context) ([]entity.Category, error) {
	var all []entity.Category
	if _, err := srv.readJSON(ctx, storage.KeyCategories, &all); err != nil {
		return nil, err
	}

	return all, nil
}

func (srv *localCatalogService) categoriesOf(ctx context.Context, sellerID string) ([]entity.Category, error) {
	all, err := srv.allCategories(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Category, 0, len(all))
	for _, c := range all {
		if c.SellerID == sellerID {
			out = append(out, c)
		}
	}

	return out, nil
}

// saveCategories replaces the seller's categories and keeps everyone else's.
func (srv *localCatalogService) saveCategories(ctx context.Context, sellerID string, mine []entity.Category) error {
	all, err := srv.allCategories(ctx)
	if err != nil {
		return err
	}

	merged := make([]entity.Category, 0, len(all)+len(mine))
	for _, c := range all {
		if c.SellerID != sellerID {
			merged = append(merged, c)
		}
	}
	for _, c := range mine {
		c.SellerID = sellerID
		merged = append(merged, c)
	}

	return srv.writeJSON(ctx, storage.KeyCategories, merged)
}

func (srv *localCatalogService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	sellerID, err := srv.sellerID(ctx)
	if err != nil {
		return nil, err
	}

	return srv.categoriesOf(ctx, sellerID)
}

func (srv *localCatalogService) AddCategory(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	sellerID, err := srv.sellerID(ctx)
	if err != nil {
		return nil, err
	}

	mine, err := srv.categoriesOf(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	category := entity.Category{
		ID:          srv.newID("category"),
		SellerID:    sellerID,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.saveCategories(ctx, sellerID, append(mine, category)); err != nil {
		return nil, err
	}

	return &category, nil
}

func (srv *localCatalogService) UpdateCategory(ctx context.Context, id string, updates usecase.CategoryUpdate) (*entity.Category, error) {
	if err := validateInput(updates); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	sellerID, err := srv.sellerID(ctx)
	if err != nil {
		return nil, err
	}

	mine, err := srv.categoriesOf(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(mine, func(c entity.Category) bool { return c.ID == id })
	if idx < 0 {
		return nil, domainerrors.ErrNotFound.WithDetails("category " + id)
	}

	if updates.Name != nil {
		mine[idx].Name = *updates.Name
	}
	if updates.Description != nil {
		mine[idx].Description = *updates.Description
	}
	mine[idx].UpdatedAt = srv.now()

	if err := srv.saveCategories(ctx, sellerID, mine); err != nil {
		return nil, err
	}

	updated := mine[idx]

	return &updated, nil
}

func (srv *localCatalogService) DeleteCategory(ctx context.Context, id string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	sellerID, err := srv.sellerID(ctx)
	if err != nil {
		return err
	}

	mine, err := srv.categoriesOf(ctx, sellerID)
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(slices.Clone(mine), func(c entity.Category) bool { return c.ID == id })
	if len(kept) == len(mine) {
		return domainerrors.ErrNotFound.WithDetails("category " + id)
	}

	return srv.saveCategories(ctx, sellerID, kept)
}

// --- Attributes ---

func (srv *localCatalogService) allAttributes(ctx context.Context) ([]entity.Attribute, error) {
	if err := srv.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	all := []entity.Attribute{}
	if _, err := srv.readJSON(ctx, storage.KeyAttributes, &all); err != nil {
		return nil, err
	}

	return all, nil
}

func (srv *localCatalogService) GetAttributes(ctx context.Context) ([]entity.Attribute, error) {
	return srv.allAttributes(ctx)
}

func (srv *localCatalogService) AddAttribute(ctx context.Context, input usecase.AttributeInput) (*entity.Attribute, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	all, err := srv.allAttributes(ctx)
	if err != nil {
		return nil, err
	}

	attr := srv.newAttribute(input.Name, input.Options)
	if err := srv.writeJSON(ctx, storage.KeyAttributes, append(all, attr)); err != nil {
		return nil, err
	}

	return &attr, nil
}

func (srv *localCatalogService) newAttribute(name string, options []string) entity.Attribute {
	now := srv.now()

	return entity.Attribute{
		ID:        srv.newID("attribute"),
		Name:      name,
		Options:   nonNilStrings(options),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (srv *localCatalogService) UpdateAttribute(ctx context.Context, id string, updates usecase.AttributeUpdate) (*entity.Attribute, error) {
	if err := validateInput(updates); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	all, err := srv.allAttributes(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(all, func(a entity.Attribute) bool { return a.ID == id })
	if idx < 0 {
		return nil, domainerrors.ErrNotFound.WithDetails("attribute " + id)
	}

	if updates.Name != nil {
		all[idx].Name = *updates.Name
	}
	if updates.Options != nil {
		all[idx].Options = nonNilStrings(*updates.Options)
	}
	all[idx].UpdatedAt = srv.now()

	if err := srv.writeJSON(ctx, storage.KeyAttributes, all); err != nil {
		return nil, err
	}

	updated := all[idx]

	return &updated, nil
}

func (srv *localCatalogService) DeleteAttribute(ctx context.Context, id string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	all, err := srv.allAttributes(ctx)
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(slices.Clone(all), func(a entity.Attribute) bool { return a.ID == id })
	if len(kept) == len(all) {
		return domainerrors.ErrNotFound.WithDetails("attribute " + id)
	}

	return srv.writeJSON(ctx, storage.KeyAttributes, kept)
}

// linkAttributes turns transient name/values pairs into stored attribute
// documents and returns their ids. Caller holds the lock.
func (srv *localCatalogService) linkAttributes(ctx context.Context, attrs []entity.ProductAttribute) ([]string, error) {
	if len(attrs) == 0 {
		return nil, nil
	}

	all, err := srv.allAttributes(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(attrs))
	for _, pa := range attrs {
		if pa.Name == "" {
			continue
		}
		attr := srv.newAttribute(pa.Name, pa.Values)
		all = append(all, attr)
		ids = append(ids, attr.ID)
	}

	if err := srv.writeJSON(ctx, storage.KeyAttributes, all); err != nil {
		return nil, err
	}

	return ids, nil
}

// --- Products ---

func (srv *localCatalogService) allProducts(ctx context.Context) ([]entity.Product, error) {
	data, err := srv.store.Get(ctx, storage.KeyProducts)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return decodeStoredProducts(data)
}

func (srv *localCatalogService) productsOf(ctx context.Context, sellerID string) ([]entity.Product, error) {
	all, err := srv.allProducts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Product, 0, len(all))
	for _, p := range all {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}

	return out, nil
}

// saveProducts replaces the seller's products and keeps everyone else's.
func (srv *localCatalogService) saveProducts(ctx context.Context, sellerID string, mine []entity.Product) error {
	all, err := srv.allProducts(ctx)
	if err != nil {
		return err
	}

	merged := make([]entity.Product, 0, len(all)+len(mine))
	for _, p := range all {
		if p.SellerID != sellerID {
			merged = append(merged, p)
		}
	}
	for _, p := range mine {
		p.SellerID = sellerID
		merged = append(merged, p)
	}

	return srv.writeJSON(ctx, storage.KeyProducts, merged)
}

func (srv *localCatalogService) GetProducts(ctx context.Context) ([]entity.Product, error) {
	sellerID, err := srv.sellerID(ctx)
	if err != nil {
		return nil, err
	}

	return srv.productsOf(ctx, sellerID)
}

func (srv *localCatalogService) GetProductDetail(ctx context.Context, id string) (*entity.ProductDetail, error) {
	sellerID, err := srv.sellerID(ctx)
	if err != nil {
		return nil, err
	}

	products, err := srv.productsOf(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(products, func(p entity.Product) bool { return p.ID == id })
	if idx < 0 {
		return nil, domainerrors.ErrNotFound.WithDetails("product " + id)
	}

	categories, err := srv.categoriesOf(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	attributes, err := srv.allAttributes(ctx)
	if err != nil {
		return nil, err
	}

	return resolveProductDetail(products[idx], categories, attributes), nil
}

func (srv *localCatalogService) AddProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	sellerID, err := srv.sellerID(ctx)
	if err != nil {
		return nil, err
	}

	mine, err := srv.productsOf(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	product := input.Product()
	linked, err := srv.linkAttributes(ctx, product.Attributes)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	product.ID = srv.newID("product")
	product.SellerID = sellerID
	product.Images = media.Filter(product.Images)
	product.AttributeIDs = appendUnique(product.AttributeIDs, linked...)
	product.Attributes = []entity.ProductAttribute{}
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := srv.saveProducts(ctx, sellerID, append(mine, product)); err != nil {
		return nil, err
	}

	return &product, nil
}

func (srv *localCatalogService) UpdateProduct(ctx context.Context, id string, updates entity.ProductUpdate) (*entity.Product, error) {
	if err := validateInput(updates); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	sellerID, err := srv.sellerID(ctx)
	if err != nil {
		return nil, err
	}

	mine, err := srv.productsOf(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(mine, func(p entity.Product) bool { return p.ID == id })
	if idx < 0 {
		return nil, domainerrors.ErrNotFound.WithDetails("product " + id)
	}

	if updates.Attributes != nil {
		linked, err := srv.linkAttributes(ctx, *updates.Attributes)
		if err != nil {
			return nil, err
		}

		var ids []string
		if updates.AttributeIDs != nil {
			ids = *updates.AttributeIDs
		}
		ids = appendUnique(append([]string{}, ids...), linked...)
		updates.AttributeIDs = &ids
		updates.Attributes = nil
	}
	if updates.Images != nil {
		filtered := media.Filter(*updates.Images)
		updates.Images = &filtered
	}

	product := &mine[idx]
	updates.Apply(product)
	product.Attributes = []entity.ProductAttribute{}
	product.ConversionRate = entity.ConversionRate(product.Clicks, product.Views)
	product.UpdatedAt = srv.now()

	if err := srv.saveProducts(ctx, sellerID, mine); err != nil {
		return nil, err
	}

	updated := *product

	return &updated, nil
}

func (srv *localCatalogService) DeleteProduct(ctx context.Context, id string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	sellerID, err := srv.sellerID(ctx)
	if err != nil {
		return err
	}

	mine, err := srv.productsOf(ctx, sellerID)
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(slices.Clone(mine), func(p entity.Product) bool { return p.ID == id })
	if len(kept) == len(mine) {
		return domainerrors.ErrNotFound.WithDetails("product " + id)
	}

	return srv.saveProducts(ctx, sellerID, kept)
}

// --- Analytics ---

// GetAnalytics returns the stored dashboard when it belongs to the current
// seller; otherwise the bundled dashboard is adopted for the seller and saved.
func (srv *localCatalogService) GetAnalytics(ctx context.Context) (*entity.Analytics, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	sellerID, err := srv.sellerID(ctx)
	if err != nil {
		return nil, err
	}

	return srv.analyticsOf(ctx, sellerID)
}

// UpdateAnalytics merges updates into the current dashboard and saves it.
func (srv *localCatalogService) UpdateAnalytics(ctx context.Context, updates entity.AnalyticsUpdate) (*entity.Analytics, error) {
	if err := validateInput(updates); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	sellerID, err := srv.sellerID(ctx)
	if err != nil {
		return nil, err
	}

	analytics, err := srv.analyticsOf(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	updates.Apply(analytics)
	analytics.UpdatedAt = srv.now()

	if err := srv.writeJSON(ctx, storage.KeyAnalytics, analytics); err != nil {
		return nil, err
	}

	return analytics, nil
}

// analyticsOf returns the stored dashboard, adopting the bundled one for a
// seller that has none. Caller holds the lock.
func (srv *localCatalogService) analyticsOf(ctx context.Context, sellerID string) (*entity.Analytics, error) {
	var stored entity.Analytics
	found, err := srv.readJSON(ctx, storage.KeyAnalytics, &stored)
	if err != nil {
		srv.log(ctx).Warn("Stored analytics unreadable, falling back to defaults", slog.Any("error", err))
	}
	if found && stored.SellerID == sellerID {
		return &stored, nil
	}

	data, err := storage.Default(storage.KeyAnalytics)
	if err != nil {
		return nil, err
	}

	var fallback entity.Analytics
	if err := json.Unmarshal(data, &fallback); err != nil {
		return nil, errors.Wrap(err, "failed to decode bundled analytics")
	}
	fallback.SellerID = sellerID
	fallback.UpdatedAt = srv.now()

	if err := srv.writeJSON(ctx, storage.KeyAnalytics, fallback); err != nil {
		return nil, err
	}

	return &fallback, nil
}

// --- Sync ---

func (srv *localCatalogService) ExportAllData(ctx context.Context) (*entity.DataExport, error) {
	seller, err := srv.GetSeller(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := srv.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	products, err := srv.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := srv.GetAnalytics(ctx)
	if err != nil {
		return nil, err
	}

	return &entity.DataExport{
		Seller:     seller,
		Categories: categories,
		Products:   products,
		Analytics:  stats,
	}, nil
}

// ImportAllData overwrites whichever sections data carries. Categories and
// products are linked to the seller in effect after the seller section.
func (srv *localCatalogService) ImportAllData(ctx context.Context, data entity.DataExport) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureSeeded(ctx); err != nil {
		return err
	}

	if data.Seller != nil {
		seller := *data.Seller
		if err := srv.saveSeller(ctx, &seller); err != nil {
			return err
		}
	}

	sellerID, err := srv.sellerID(ctx)
	if err != nil {
		return err
	}

	if data.Categories != nil {
		if err := srv.saveCategories(ctx, sellerID, data.Categories); err != nil {
			return err
		}
	}
	if data.Products != nil {
		if err := srv.saveProducts(ctx, sellerID, data.Products); err != nil {
			return err
		}
	}
	if data.Analytics != nil {
		stats := *data.Analytics
		stats.UpdatedAt = srv.now()
		if err := srv.writeJSON(ctx, storage.KeyAnalytics, stats); err != nil {
			return err
		}
	}

	srv.log(ctx).Info("Imported data", slog.String("seller_id", sellerID))

	return nil
}

func (srv *localCatalogService) ResetToDefaults(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.store.Delete(ctx, storage.KeyInitialized); err != nil {
		return err
	}

	return srv.ensureSeeded(ctx)
}

func (srv *localCatalogService) ResetAllData(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	keys := append(storage.DataKeys(), storage.KeyInitialized)

	return srv.store.Delete(ctx, keys...)
}

// --- Legacy product shapes ---

// storedProduct accepts product JSON written by older app versions:
// numeric inventory, {key,value} specifications and missing visible,
// videos or attributes.
type storedProduct struct {
	entity.Product
	Inventory      json.RawMessage `json:"inventory"`
	Specifications json.RawMessage `json:"specifications"`
	Visible        *int            `json:"visible"`
}

// decodeStoredProducts decodes a product list, normalizing legacy shapes.
func decodeStoredProducts(data []byte) ([]entity.Product, error) {
	var stored []storedProduct
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	out := make([]entity.Product, 0, len(stored))
	for _, sp := range stored {
		p := sp.Product
		p.Inventory = translator.NormalizeInventory(sp.Inventory)
		p.Specifications = normalizeSpecifications(sp.Specifications)
		p.Visible = 1
		if sp.Visible != nil {
			p.Visible = *sp.Visible
		}
		p.Images = nonNilStrings(p.Images)
		p.Videos = nonNilStrings(p.Videos)
		p.AttributeIDs = nonNilStrings(p.AttributeIDs)
		if p.Attributes == nil {
			p.Attributes = []entity.ProductAttribute{}
		}
		out = append(out, p)
	}

	return out, nil
}

// normalizeSpecifications turns {key,value} objects into "key: value"
// strings and drops entries missing either half.
func normalizeSpecifications(raw json.RawMessage) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}

	for _, item := range items {
		var text string
		if err := json.Unmarshal(item, &text); err == nil {
			out = append(out, text)

			continue
		}

		var pair struct {
			Key   any `json:"key"`
			Value any `json:"value"`
		}
		if err := json.Unmarshal(item, &pair); err != nil {
			continue
		}
		if truthy(pair.Key) && truthy(pair.Value) {
			out = append(out, fmt.Sprintf("%v: %v", pair.Key, pair.Value))
		}
	}

	return out
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case bool:
		return t
	default:
		return true
	}
}

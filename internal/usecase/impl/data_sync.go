package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "sitesnap/internal/delivery/context"
	"sitesnap/internal/domain/entity"
	domainerrors "sitesnap/internal/domain/errors"
	"sitesnap/internal/errors"
	"sitesnap/internal/usecase"
)

// syncService implements SyncUsecase on top of a catalog.
type syncService struct {
	catalog usecase.CatalogUsecase
	logger  *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(catalog usecase.CatalogUsecase, logger *slog.Logger) usecase.SyncUsecase {
	return &syncService{catalog: catalog, logger: logger}
}

func (srv *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ExportJSON renders the whole dataset as indented JSON.
func (srv *syncService) ExportJSON(ctx context.Context) ([]byte, error) {
	data, err := srv.catalog.ExportAllData(ctx)
	if err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode export")
	}

	return out, nil
}

// ImportJSON checks every section present in data before handing the
// decoded dataset to the catalog. Nothing is written when a section is
// malformed.
func (srv *syncService) ImportJSON(ctx context.Context, data []byte) error {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("import is not a JSON object")
	}

	var export entity.DataExport

	if raw, ok := present(sections, "seller"); ok {
		if !ValidateSellerData(raw) {
			return domainerrors.ErrValidationFailed.WithDetails("seller needs string id, name and businessName")
		}
		if err := json.Unmarshal(raw, &export.Seller); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("seller: " + err.Error())
		}
	}

	if raw, ok := present(sections, "categories"); ok {
		if !ValidateCategoriesData(raw) {
			return domainerrors.ErrValidationFailed.WithDetails("every category needs a string id and name")
		}
		if err := json.Unmarshal(raw, &export.Categories); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("categories: " + err.Error())
		}
	}

	if raw, ok := present(sections, "products"); ok {
		if !ValidateProductsData(raw) {
			return domainerrors.ErrValidationFailed.WithDetails("every product needs a string id and name")
		}
		products, err := decodeStoredProducts(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("products: " + err.Error())
		}
		export.Products = products
	}

	if raw, ok := present(sections, "analytics"); ok {
		if !ValidateAnalyticsData(raw) {
			return domainerrors.ErrValidationFailed.WithDetails("analytics needs numeric totalVisitors, whatsappInquiries and productViews")
		}
		if err := json.Unmarshal(raw, &export.Analytics); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("analytics: " + err.Error())
		}
	}

	if err := srv.catalog.ImportAllData(ctx, export); err != nil {
		srv.log(ctx).Error("Import failed", slog.Any("error", err))

		return err
	}

	return nil
}

func (srv *syncService) ResetToDefaults(ctx context.Context) error {
	return srv.catalog.ResetToDefaults(ctx)
}

func (srv *syncService) ClearAll(ctx context.Context) error {
	return srv.catalog.ResetAllData(ctx)
}

func present(sections map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := sections[key]
	if !ok || string(raw) == "null" {
		return nil, false
	}

	return raw, true
}

// ValidateSellerData reports whether raw is an object with string id, name
// and businessName.
func ValidateSellerData(raw json.RawMessage) bool {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return false
	}

	return allStrings(obj, "id", "name", "businessName")
}

// ValidateProductsData reports whether raw is an array of objects with
// string id and name.
func ValidateProductsData(raw json.RawMessage) bool {
	return everyObject(raw, "id", "name")
}

// ValidateCategoriesData reports whether raw is an array of objects with
// string id and name.
func ValidateCategoriesData(raw json.RawMessage) bool {
	return everyObject(raw, "id", "name")
}

// ValidateAnalyticsData reports whether raw carries the three headline
// counters as numbers.
func ValidateAnalyticsData(raw json.RawMessage) bool {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return false
	}

	for _, key := range []string{"totalVisitors", "whatsappInquiries", "productViews"} {
		if _, ok := obj[key].(float64); !ok {
			return false
		}
	}

	return true
}

func everyObject(raw json.RawMessage, keys ...string) bool {
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return false
	}

	for _, item := range items {
		if item == nil || !allStrings(item, keys...) {
			return false
		}
	}

	return true
}

func allStrings(obj map[string]any, keys ...string) bool {
	for _, key := range keys {
		if _, ok := obj[key].(string); !ok {
			return false
		}
	}

	return true
}

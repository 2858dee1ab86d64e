package storage

import (
	"embed"

	"sitesnap/internal/errors"
)

// Keys of the offline catalog.
const (
	KeySeller      = "seller_data"
	KeyCategories  = "categories_data"
	KeyProducts    = "products_data"
	KeyAttributes  = "attributes_data"
	KeyAnalytics   = "analytics_data"
	KeyInitialized = "data_initialized"
)

//go:embed defaults/*.json
var defaultsFS embed.FS

var defaultFiles = map[string]string{
	KeySeller:     "defaults/seller.json",
	KeyCategories: "defaults/categories.json",
	KeyProducts:   "defaults/products.json",
	KeyAttributes: "defaults/attributes.json",
	KeyAnalytics:  "defaults/analytics.json",
}

// DataKeys lists every key the offline catalog writes, in seeding order.
func DataKeys() []string {
	return []string{KeySeller, KeyCategories, KeyProducts, KeyAttributes, KeyAnalytics}
}

// Default returns the bundled seed value for key.
func Default(key string) ([]byte, error) {
	name, ok := defaultFiles[key]
	if !ok {
		return nil, errors.Errorf("no bundled default for %s", key)
	}

	data, err := defaultsFS.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", name)
	}

	return data, nil
}

package entity

import (
	"math"
	"time"
)

// Inventory is the three-way stock state of a product.
type Inventory string

const (
	InventoryNone       Inventory = "none"
	InventoryInStock    Inventory = "in stock"
	InventoryOutOfStock Inventory = "out of stock"
)

// Valid reports whether inv is one of the known states.
func (inv Inventory) Valid() bool {
	switch inv {
	case InventoryNone, InventoryInStock, InventoryOutOfStock:
		return true
	}

	return false
}

// ProductAttribute is the UI-side name/values pair. It is never persisted on
// the product itself; AttributeIDs is the durable link.
type ProductAttribute struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Product is a catalog item owned by one seller.
type Product struct {
	ID             string             `json:"id"`
	SellerID       string             `json:"sellerId"`
	CategoryID     string             `json:"categoryId"` // May be empty or dangling.
	Name           string             `json:"name"`
	Price          float64            `json:"price"`
	Description    string             `json:"description"`
	Images         []string           `json:"images"`
	Videos         []string           `json:"videos"`
	Inventory      Inventory          `json:"inventory"`
	Specifications []string           `json:"specifications"`
	Attributes     []ProductAttribute `json:"attributes"`
	AttributeIDs   []string           `json:"attribute_ids"`
	Visible        int                `json:"visible"` // 0 or 1
	Views          int                `json:"views"`
	Clicks         int                `json:"clicks"`
	Inquiries      int                `json:"inquiries"`
	ConversionRate float64            `json:"conversionRate"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// IsVisible reports whether the product is shown on the storefront.
func (p *Product) IsVisible() bool {
	return p.Visible != 0
}

// ProductDetail is a product with its weak references resolved for display.
type ProductDetail struct {
	Product      Product            `json:"product"`
	CategoryName string             `json:"categoryName"`
	Attributes   []ProductAttribute `json:"attributes"`
}

// ConversionRate is clicks/views as a percentage rounded to one decimal,
// and 0 when there are no views.
func ConversionRate(clicks, views int) float64 {
	if views <= 0 {
		return 0
	}

	return math.Round(float64(clicks)/float64(views)*100*10) / 10
}

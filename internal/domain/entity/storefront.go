package entity

// CartItem is one product line in a storefront cart.
type CartItem struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Category  string  `json:"category,omitempty"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
}

// LineTotal is price times quantity.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart is a visitor's storefront cart.
type Cart struct {
	Items []CartItem `json:"items" validate:"required,min=1,dive"`
}

// Total sums the line totals.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.LineTotal()
	}

	return total
}

// StorefrontCatalog is the public catalog a storefront renders.
type StorefrontCatalog struct {
	Brand      StorefrontBrand     `json:"brand"`
	Categories []Category          `json:"categories"`
	Products   []StorefrontProduct `json:"products"`
}

// StorefrontBrand is the business header of a storefront.
type StorefrontBrand struct {
	Name           string `json:"name"`
	Tagline        string `json:"tagline"`
	WhatsappNumber string `json:"whatsappNumber,omitempty"`
	TemplateID     string `json:"templateId,omitempty"`
}

// StorefrontProduct is a visible product as the storefront shows it.
type StorefrontProduct struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	InStock     bool    `json:"inStock"`
}

// MessageLink is a prefilled chat link and the message it carries.
type MessageLink struct {
	URL     string  `json:"url"`
	Message string  `json:"message"`
	Total   float64 `json:"total,omitempty"`
}

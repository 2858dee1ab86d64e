package entity

import "time"

// Category groups a seller's products. It is owned by exactly one seller.
type Category struct {
	ID          string    `json:"id"`
	SellerID    string    `json:"sellerId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Attribute is a named, reusable value set such as Size -> [S, M, L].
type Attribute struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Options   []string  `json:"options"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Template is a bundled storefront design. Read-only.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Category    string `json:"category"`
}

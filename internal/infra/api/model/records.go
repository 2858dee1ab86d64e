package model

import (
	"encoding/json"
)

// UserRecord is the account document from /api/auth.
type UserRecord struct {
	ID            string `json:"_id"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Role          string `json:"role"`
	SellerID      Ref    `json:"seller_id"`
	EmailVerified bool   `json:"emailVerified"`
	PhoneVerified bool   `json:"phoneVerified"`
}

// SellerRecord is a document from /api/sellers.
type SellerRecord struct {
	ID             string `json:"_id"`
	UserID         Ref    `json:"user_id"`
	Name           string `json:"name"`
	PhoneNumber    string `json:"phone_number"`
	WhatsappNumber string `json:"whatsapp_number"`
	Address        string `json:"address"`
	CreatedAt      Time   `json:"createdAt"`
	UpdatedAt      Time   `json:"updatedAt"`
}

// BusinessRecord is a document from /api/businesses. One per seller.
type BusinessRecord struct {
	ID           string `json:"_id"`
	SellerID     Ref    `json:"seller_id"`
	BusinessName string `json:"business_name"`
	Tagline      string `json:"tagline"`
	Email        string `json:"email"`
	TemplateID   Int    `json:"template_id"`
	CreatedAt    Time   `json:"createdAt"`
	UpdatedAt    Time   `json:"updatedAt"`
}

// CategoryRecord is a document from /api/categories.
type CategoryRecord struct {
	ID          string `json:"_id"`
	SellerID    Ref    `json:"seller_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   Time   `json:"createdAt"`
	UpdatedAt   Time   `json:"updatedAt"`
}

// AttributeRecord is a document from /api/attributes.
type AttributeRecord struct {
	ID        string   `json:"_id"`
	Name      string   `json:"name"`
	Options   []string `json:"options"`
	CreatedAt Time     `json:"createdAt"`
	UpdatedAt Time     `json:"updatedAt"`
}

// ProductRecord is a document from /api/products. The description key is
// spelled the way the backend spells it. Counters, timestamps and the
// visibility flag decode leniently so one odd record never fails a list.
type ProductRecord struct {
	ID             string          `json:"_id"`
	SellerID       Ref             `json:"seller_id"`
	CategoryID     Ref             `json:"category_id"`
	ProductName    string          `json:"product_name"`
	Description    string          `json:"product_descriptio"`
	Price          Number          `json:"price"`
	Images         []string        `json:"images"`
	Videos         []string        `json:"videos"`
	Inventory      json.RawMessage `json:"inventory,omitempty"`
	Specifications []string        `json:"specifications"`
	AttributeIDs   []Ref           `json:"attribute_ids"`
	IsVisible      Bool            `json:"is_visible"`
	Views          Int             `json:"views"`
	Clicks         Int             `json:"clicks"`
	Inquiries      Int             `json:"inquiries"`
	CreatedAt      Time            `json:"createdAt"`
	UpdatedAt      Time            `json:"updatedAt"`
}

// AnalyticsRecord is one raw event record from /api/analytics.
type AnalyticsRecord struct {
	ID        string `json:"_id"`
	ProductID Ref    `json:"product_id"`
	SellerID  Ref    `json:"seller_id"`
	Date      Time   `json:"date"`
	Views     Int    `json:"views"`
	Clicks    Int    `json:"clicks"`
}

// LoginResponse is the body of POST /api/auth/login.
type LoginResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    UserRecord `json:"user"`
}

// Envelope is the {success, data, message} wrapper most endpoints use.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

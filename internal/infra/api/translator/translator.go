// Package translator maps backend wire records to the flat app model and
// back. Every function is pure: missing or malformed optional fields turn
// into defaults, never into errors. Required-field validation belongs to the
// caller, before anything is submitted.
package translator

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"sitesnap/internal/domain/entity"
	"sitesnap/internal/domain/template"
	"sitesnap/internal/infra/api/model"
)

// ExtractID normalizes a reference value: a bare id string, a populated
// object carrying _id or id, a model.Ref, or nil. It returns "" when no id
// can be found. Every reference comparison goes through here or through
// model.Ref decoding.
func ExtractID(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case model.Ref:
		return v.ID
	case *model.Ref:
		if v == nil {
			return ""
		}

		return v.ID
	case map[string]any:
		if id := ExtractID(v["_id"]); id != "" {
			return id
		}

		return ExtractID(v["id"])
	case json.RawMessage:
		var ref model.Ref
		if err := json.Unmarshal(v, &ref); err != nil {
			return ""
		}

		return ref.ID
	case json.Number:
		return v.String()
	}

	return ""
}

// MapUser maps the account document.
func MapUser(rec *model.UserRecord) *entity.AuthUser {
	if rec == nil {
		return nil
	}

	return &entity.AuthUser{
		ID:            rec.ID,
		Email:         rec.Email,
		Phone:         rec.Phone,
		Role:          rec.Role,
		SellerID:      rec.SellerID.ID,
		EmailVerified: rec.EmailVerified,
		PhoneVerified: rec.PhoneVerified,
	}
}

// MapSeller merges the seller and business documents into one Seller. Either
// may be nil; a nil seller yields an empty ID and IsOnboarded false.
func MapSeller(seller *model.SellerRecord, business *model.BusinessRecord, now time.Time) entity.Seller {
	out := entity.Seller{
		SelectedTemplateIDs: []string{},
		IsOnboarded:         seller != nil,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if seller != nil {
		out.ID = seller.ID
		out.Name = seller.Name
		out.Phone = firstNonEmpty(seller.PhoneNumber, seller.WhatsappNumber)
		out.WorkAddress = seller.Address
		out.CreatedAt = timeOr(seller.CreatedAt, now)
		out.UpdatedAt = timeOr(seller.UpdatedAt, out.CreatedAt)
	}

	if business != nil {
		out.BusinessName = business.BusinessName
		out.BusinessType = business.Tagline
		if business.TemplateID > 0 {
			out.SelectedTemplateIDs = []string{template.NumToKey(int(business.TemplateID))}
		}
		if business.UpdatedAt.After(out.UpdatedAt) {
			out.UpdatedAt = business.UpdatedAt.Time
		}
	}

	return out
}

// MapCategory maps a category document.
func MapCategory(rec model.CategoryRecord, now time.Time) entity.Category {
	created := timeOr(rec.CreatedAt, now)

	return entity.Category{
		ID:          rec.ID,
		SellerID:    rec.SellerID.ID,
		Name:        rec.Name,
		Description: rec.Description,
		CreatedAt:   created,
		UpdatedAt:   timeOr(rec.UpdatedAt, created),
	}
}

// MapAttribute maps an attribute document.
func MapAttribute(rec model.AttributeRecord, now time.Time) entity.Attribute {
	created := timeOr(rec.CreatedAt, now)

	return entity.Attribute{
		ID:        rec.ID,
		Name:      rec.Name,
		Options:   nonNil(rec.Options),
		CreatedAt: created,
		UpdatedAt: timeOr(rec.UpdatedAt, created),
	}
}

// MapProduct maps a product document. Transient attributes always come back
// empty; AttributeIDs carries the durable link.
func MapProduct(rec model.ProductRecord, now time.Time) entity.Product {
	created := timeOr(rec.CreatedAt, now)

	attributeIDs := make([]string, 0, len(rec.AttributeIDs))
	for _, ref := range rec.AttributeIDs {
		if ref.ID != "" {
			attributeIDs = append(attributeIDs, ref.ID)
		}
	}

	visible := 1
	if rec.IsVisible.Valid && !rec.IsVisible.Value {
		visible = 0
	}

	return entity.Product{
		ID:             rec.ID,
		SellerID:       rec.SellerID.ID,
		CategoryID:     rec.CategoryID.ID,
		Name:           rec.ProductName,
		Price:          float64(rec.Price),
		Description:    rec.Description,
		Images:         nonNil(rec.Images),
		Videos:         nonNil(rec.Videos),
		Inventory:      NormalizeInventory(rec.Inventory),
		Specifications: nonNil(rec.Specifications),
		Attributes:     []entity.ProductAttribute{},
		AttributeIDs:   attributeIDs,
		Visible:        visible,
		Views:          int(rec.Views),
		Clicks:         int(rec.Clicks),
		Inquiries:      int(rec.Inquiries),
		ConversionRate: entity.ConversionRate(int(rec.Clicks), int(rec.Views)),
		CreatedAt:      created,
		UpdatedAt:      timeOr(rec.UpdatedAt, created),
	}
}

// MapAnalyticsEvent maps one raw analytics record. Records without a date
// keep the zero time and fall outside every bucket.
func MapAnalyticsEvent(rec model.AnalyticsRecord) entity.AnalyticsEvent {
	return entity.AnalyticsEvent{
		ID:        rec.ID,
		ProductID: rec.ProductID.ID,
		SellerID:  rec.SellerID.ID,
		Date:      rec.Date.Time,
		Views:     int(rec.Views),
		Clicks:    int(rec.Clicks),
	}
}

// NormalizeInventory folds the backend's free-text (or legacy numeric)
// inventory into the three-way enum. Text is matched case-insensitively:
// "out" wins over "in"; anything else is none.
func NormalizeInventory(raw json.RawMessage) entity.Inventory {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return entity.InventoryNone
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return InventoryFromText(text)
	}

	var count float64
	if err := json.Unmarshal(raw, &count); err == nil {
		if count > 0 {
			return entity.InventoryInStock
		}

		return entity.InventoryOutOfStock
	}

	return entity.InventoryNone
}

// InventoryFromText applies the substring rule to a string value.
func InventoryFromText(text string) entity.Inventory {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "out"):
		return entity.InventoryOutOfStock
	case strings.Contains(lower, "in"):
		return entity.InventoryInStock
	default:
		return entity.InventoryNone
	}
}

func timeOr(t model.Time, fallback time.Time) time.Time {
	if t.IsZero() {
		return fallback
	}

	return t.Time
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

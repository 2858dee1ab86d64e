package translator

import (
	"sitesnap/internal/domain/entity"
	"sitesnap/internal/domain/template"
)

// SellerPayload builds the seller-scoped part of a profile update. The phone
// number doubles as the WhatsApp number.
func SellerPayload(u entity.SellerUpdate) map[string]any {
	payload := map[string]any{}
	if u.Name != nil {
		payload["name"] = *u.Name
	}
	if u.Phone != nil {
		payload["phone_number"] = *u.Phone
		payload["whatsapp_number"] = *u.Phone
	}
	if u.WorkAddress != nil {
		payload["address"] = *u.WorkAddress
	}

	return payload
}

// BusinessPayload builds the business-scoped part of a profile update. The
// first resolvable template reference becomes template_id.
func BusinessPayload(u entity.SellerUpdate) map[string]any {
	payload := map[string]any{}
	if u.BusinessName != nil {
		payload["business_name"] = *u.BusinessName
	}
	if u.BusinessType != nil {
		payload["tagline"] = *u.BusinessType
	}
	for _, ref := range u.SelectedTemplateIDs {
		if num, ok := template.Resolve(ref); ok {
			payload["template_id"] = num

			break
		}
	}

	return payload
}

// NewBusinessPayload is the body used to create the business record that
// every seller must have.
func NewBusinessPayload(sellerID, businessName, email string) map[string]any {
	return map[string]any{
		"seller_id":     sellerID,
		"business_name": businessName,
		"email":         email,
		"template_id":   template.DefaultNum,
	}
}

// CategoryPayload is the inverse of MapCategory for create and update.
func CategoryPayload(c entity.Category) map[string]any {
	payload := map[string]any{
		"name": c.Name,
	}
	if c.SellerID != "" {
		payload["seller_id"] = c.SellerID
	}
	if c.Description != "" {
		payload["description"] = c.Description
	}

	return payload
}

// AttributePayload is the inverse of MapAttribute.
func AttributePayload(a entity.Attribute) map[string]any {
	return map[string]any{
		"name":    a.Name,
		"options": nonNil(a.Options),
	}
}

// ProductPayload is the inverse of MapProduct for create. Images are left
// to media reconciliation and transient attributes are never sent.
func ProductPayload(p entity.Product) map[string]any {
	payload := map[string]any{
		"seller_id":          p.SellerID,
		"product_name":       p.Name,
		"product_descriptio": p.Description,
		"price":              p.Price,
		"videos":             nonNil(p.Videos),
		"inventory":          string(p.Inventory),
		"specifications":     nonNil(p.Specifications),
		"attribute_ids":      nonNil(p.AttributeIDs),
		"is_visible":         p.Visible != 0,
	}
	if p.CategoryID != "" {
		payload["category_id"] = p.CategoryID
	}

	return payload
}

// ProductUpdatePayload is the partial counterpart of ProductPayload. Images
// and attributes are handled by the caller.
func ProductUpdatePayload(u entity.ProductUpdate) map[string]any {
	payload := map[string]any{}
	if u.CategoryID != nil {
		if *u.CategoryID == "" {
			payload["category_id"] = nil
		} else {
			payload["category_id"] = *u.CategoryID
		}
	}
	if u.Name != nil {
		payload["product_name"] = *u.Name
	}
	if u.Description != nil {
		payload["product_descriptio"] = *u.Description
	}
	if u.Price != nil {
		payload["price"] = *u.Price
	}
	if u.Videos != nil {
		payload["videos"] = nonNil(*u.Videos)
	}
	if u.Inventory != nil {
		payload["inventory"] = string(*u.Inventory)
	}
	if u.Specifications != nil {
		payload["specifications"] = nonNil(*u.Specifications)
	}
	if u.AttributeIDs != nil {
		payload["attribute_ids"] = nonNil(*u.AttributeIDs)
	}
	if u.Visible != nil {
		payload["is_visible"] = *u.Visible != 0
	}

	return payload
}

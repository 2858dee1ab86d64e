package entity

// SellerUpdate is a partial seller/business profile change. Nil fields are
// left untouched.
type SellerUpdate struct {
	Name                *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Phone               *string  `json:"phone,omitempty"`
	WorkAddress         *string  `json:"workAddress,omitempty"`
	BusinessName        *string  `json:"businessName,omitempty" validate:"omitempty,min=1"`
	BusinessType        *string  `json:"businessType,omitempty"`
	SelectedTemplateIDs []string `json:"selectedTemplateIds,omitempty"`
}

// TouchesSeller reports whether any seller-scoped field is set.
func (u SellerUpdate) TouchesSeller() bool {
	return u.Name != nil || u.Phone != nil || u.WorkAddress != nil
}

// TouchesBusiness reports whether any business-scoped field is set.
func (u SellerUpdate) TouchesBusiness() bool {
	return u.BusinessName != nil || u.BusinessType != nil || len(u.SelectedTemplateIDs) > 0
}

// Apply merges the update into s.
func (u SellerUpdate) Apply(s *Seller) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Phone != nil {
		s.Phone = *u.Phone
	}
	if u.WorkAddress != nil {
		s.WorkAddress = *u.WorkAddress
	}
	if u.BusinessName != nil {
		s.BusinessName = *u.BusinessName
	}
	if u.BusinessType != nil {
		s.BusinessType = *u.BusinessType
	}
	if u.SelectedTemplateIDs != nil {
		s.SelectedTemplateIDs = append([]string(nil), u.SelectedTemplateIDs...)
	}
}

// ProductUpdate is a partial product change. Images is a pointer to a slice
// so that "not supplied" and "supplied empty" stay distinguishable.
type ProductUpdate struct {
	CategoryID     *string             `json:"categoryId,omitempty"`
	Name           *string             `json:"name,omitempty" validate:"omitempty,min=1"`
	Price          *float64            `json:"price,omitempty" validate:"omitempty,gte=0"`
	Description    *string             `json:"description,omitempty"`
	Images         *[]string           `json:"images,omitempty"`
	Videos         *[]string           `json:"videos,omitempty"`
	Inventory      *Inventory          `json:"inventory,omitempty" validate:"omitempty,oneof=none 'in stock' 'out of stock'"`
	Specifications *[]string           `json:"specifications,omitempty"`
	Attributes     *[]ProductAttribute `json:"attributes,omitempty"`
	AttributeIDs   *[]string           `json:"attribute_ids,omitempty"`
	Visible        *int                `json:"visible,omitempty" validate:"omitempty,oneof=0 1"`
}

// Apply merges the update into p.
func (u ProductUpdate) Apply(p *Product) {
	if u.CategoryID != nil {
		p.CategoryID = *u.CategoryID
	}
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Images != nil {
		p.Images = append([]string{}, (*u.Images)...)
	}
	if u.Videos != nil {
		p.Videos = append([]string{}, (*u.Videos)...)
	}
	if u.Inventory != nil {
		p.Inventory = *u.Inventory
	}
	if u.Specifications != nil {
		p.Specifications = append([]string{}, (*u.Specifications)...)
	}
	if u.Attributes != nil {
		p.Attributes = append([]ProductAttribute{}, (*u.Attributes)...)
	}
	if u.AttributeIDs != nil {
		p.AttributeIDs = append([]string{}, (*u.AttributeIDs)...)
	}
	if u.Visible != nil {
		p.Visible = *u.Visible
	}
}

// AnalyticsUpdate is a partial dashboard change. The seller id is never
// part of it.
type AnalyticsUpdate struct {
	TotalVisitors      *int                    `json:"totalVisitors,omitempty" validate:"omitempty,gte=0"`
	WhatsappInquiries  *int                    `json:"whatsappInquiries,omitempty" validate:"omitempty,gte=0"`
	ProductViews       *int                    `json:"productViews,omitempty" validate:"omitempty,gte=0"`
	ProductPerformance *ProductPerformanceSets `json:"productPerformance,omitempty"`
	VisitorData        *VisitorDataSets        `json:"visitorData,omitempty"`
}

// Apply merges the update into a.
func (u AnalyticsUpdate) Apply(a *Analytics) {
	if u.TotalVisitors != nil {
		a.TotalVisitors = *u.TotalVisitors
	}
	if u.WhatsappInquiries != nil {
		a.WhatsappInquiries = *u.WhatsappInquiries
	}
	if u.ProductViews != nil {
		a.ProductViews = *u.ProductViews
	}
	if u.ProductPerformance != nil {
		a.ProductPerformance = *u.ProductPerformance
	}
	if u.VisitorData != nil {
		a.VisitorData = *u.VisitorData
	}
}

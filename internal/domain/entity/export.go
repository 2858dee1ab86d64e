package entity

// DataExport is the clipboard sync format shared with the web storefront.
type DataExport struct {
	Seller     *Seller    `json:"seller,omitempty"`
	Categories []Category `json:"categories,omitempty"`
	Products   []Product  `json:"products,omitempty"`
	Analytics  *Analytics `json:"analytics,omitempty"`
}

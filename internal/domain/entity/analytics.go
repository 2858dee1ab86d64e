package entity

import "time"

// Analytics is the dashboard view. It is rebuilt on every read and never cached.
type Analytics struct {
	SellerID           string                 `json:"sellerId"`
	TotalVisitors      int                    `json:"totalVisitors"`
	WhatsappInquiries  int                    `json:"whatsappInquiries"`
	ProductViews       int                    `json:"productViews"`
	ProductPerformance ProductPerformanceSets `json:"productPerformance"`
	VisitorData        VisitorDataSets        `json:"visitorData"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

// ProductPerformanceSets holds the per-window product performance lists.
type ProductPerformanceSets struct {
	LastDay   []ProductPerformance `json:"lastDay"`
	LastWeek  []ProductPerformance `json:"lastWeek"`
	LastMonth []ProductPerformance `json:"lastMonth"`
	AllTime   []ProductPerformance `json:"allTime"`
}

// VisitorDataSets holds the visitor series shown on the dashboard chart.
type VisitorDataSets struct {
	Last15Days  []VisitorDataPoint `json:"last15Days"`
	Last30Days  []VisitorDataPoint `json:"last30Days"`
	Last6Months []VisitorDataPoint `json:"last6Months"`
	LastYear    []VisitorDataPoint `json:"lastYear"`
}

// VisitorDataPoint is one bucket of a visitor series. Date is "YYYY-MM-DD"
// for daily buckets and "YYYY-MM" for monthly ones.
type VisitorDataPoint struct {
	Date     string `json:"date"`
	Visitors int    `json:"visitors"`
}

// ProductPerformance is the per-product row of the dashboard.
type ProductPerformance struct {
	ID             string  `json:"id"`
	ProductID      string  `json:"productId"`
	Name           string  `json:"name"`
	Views          int     `json:"views"`
	Inquiries      int     `json:"inquiries"`
	Clicks         int     `json:"clicks"`
	ConversionRate float64 `json:"conversionRate"`
}

// AnalyticsEvent is one raw analytics record after translation.
type AnalyticsEvent struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	SellerID  string    `json:"sellerId"`
	Date      time.Time `json:"date"`
	Views     int       `json:"views"`
	Clicks    int       `json:"clicks"`
}

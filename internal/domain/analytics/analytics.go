// Package analytics turns raw analytics records and the product list into the
// dashboard view. All functions are pure: the current time is a parameter and
// buckets are computed in its location.
package analytics

import (
	"time"

	"sitesnap/internal/domain/entity"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// Window lengths shown on the dashboard.
const (
	ShortDays   = 15
	LongDays    = 30
	ShortMonths = 6
	LongMonths  = 12
)

// DayKey is the daily bucket key of t.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// MonthKey is the monthly bucket key of t.
func MonthKey(t time.Time) string {
	return t.Format(monthLayout)
}

// BuildVisitorSeries returns exactly days daily points, oldest first, ending
// with today. Each point sums the views of records dated that day.
func BuildVisitorSeries(records []entity.AnalyticsEvent, days int, now time.Time) []entity.VisitorDataPoint {
	if days <= 0 {
		return []entity.VisitorDataPoint{}
	}

	totals := sumBy(records, now.Location(), DayKey)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	points := make([]entity.VisitorDataPoint, days)
	for i := range days {
		key := DayKey(today.AddDate(0, 0, i-days+1))
		points[i] = entity.VisitorDataPoint{Date: key, Visitors: totals[key]}
	}

	return points
}

// BuildMonthlySeries returns exactly months calendar-month points, oldest
// first, ending with the current month.
func BuildMonthlySeries(records []entity.AnalyticsEvent, months int, now time.Time) []entity.VisitorDataPoint {
	if months <= 0 {
		return []entity.VisitorDataPoint{}
	}

	totals := sumBy(records, now.Location(), MonthKey)

	// Anchor on the first of the month so AddDate never overflows into the
	// next month.
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	points := make([]entity.VisitorDataPoint, months)
	for i := range months {
		key := MonthKey(current.AddDate(0, i-months+1, 0))
		points[i] = entity.VisitorDataPoint{Date: key, Visitors: totals[key]}
	}

	return points
}

func sumBy(records []entity.AnalyticsEvent, loc *time.Location, key func(time.Time) string) map[string]int {
	totals := make(map[string]int)
	for _, r := range records {
		if r.Date.IsZero() {
			continue
		}
		totals[key(r.Date.In(loc))] += r.Views
	}

	return totals
}

// BuildProductPerformance returns one row per product in product order.
// Counters come from the records of that product; a product without records
// falls back to its own counters. Clicks stand in for inquiries.
func BuildProductPerformance(products []entity.Product, records []entity.AnalyticsEvent) []entity.ProductPerformance {
	type counters struct {
		views, clicks int
		seen          bool
	}

	byProduct := make(map[string]*counters)
	for _, r := range records {
		if r.ProductID == "" {
			continue
		}
		c, ok := byProduct[r.ProductID]
		if !ok {
			c = &counters{}
			byProduct[r.ProductID] = c
		}
		c.views += r.Views
		c.clicks += r.Clicks
		c.seen = true
	}

	rows := make([]entity.ProductPerformance, 0, len(products))
	for _, p := range products {
		views, clicks := p.Views, p.Clicks
		if c, ok := byProduct[p.ID]; ok && c.seen {
			views, clicks = c.views, c.clicks
		}

		rows = append(rows, entity.ProductPerformance{
			ID:             p.ID,
			ProductID:      p.ID,
			Name:           p.Name,
			Views:          views,
			Inquiries:      clicks,
			Clicks:         clicks,
			ConversionRate: entity.ConversionRate(clicks, views),
		})
	}

	return rows
}

// Build assembles the full dashboard view. The four performance windows all
// carry the same unfiltered list and ProductViews mirrors TotalVisitors.
func Build(sellerID string, records []entity.AnalyticsEvent, products []entity.Product, now time.Time) *entity.Analytics {
	var views, clicks int
	for _, r := range records {
		views += r.Views
		clicks += r.Clicks
	}

	performance := BuildProductPerformance(products, records)

	return &entity.Analytics{
		SellerID:          sellerID,
		TotalVisitors:     views,
		WhatsappInquiries: clicks,
		ProductViews:      views,
		ProductPerformance: entity.ProductPerformanceSets{
			LastDay:   clonePerformance(performance),
			LastWeek:  clonePerformance(performance),
			LastMonth: clonePerformance(performance),
			AllTime:   performance,
		},
		VisitorData: entity.VisitorDataSets{
			Last15Days:  BuildVisitorSeries(records, ShortDays, now),
			Last30Days:  BuildVisitorSeries(records, LongDays, now),
			Last6Months: BuildMonthlySeries(records, ShortMonths, now),
			LastYear:    BuildMonthlySeries(records, LongMonths, now),
		},
		UpdatedAt: now,
	}
}

// Zero is the empty dashboard returned when analytics cannot be loaded.
func Zero(sellerID string, now time.Time) *entity.Analytics {
	return &entity.Analytics{
		SellerID: sellerID,
		ProductPerformance: entity.ProductPerformanceSets{
			LastDay:   []entity.ProductPerformance{},
			LastWeek:  []entity.ProductPerformance{},
			LastMonth: []entity.ProductPerformance{},
			AllTime:   []entity.ProductPerformance{},
		},
		VisitorData: entity.VisitorDataSets{
			Last15Days:  []entity.VisitorDataPoint{},
			Last30Days:  []entity.VisitorDataPoint{},
			Last6Months: []entity.VisitorDataPoint{},
			LastYear:    []entity.VisitorDataPoint{},
		},
		UpdatedAt: now,
	}
}

func clonePerformance(rows []entity.ProductPerformance) []entity.ProductPerformance {
	out := make([]entity.ProductPerformance, len(rows))
	copy(out, rows)

	return out
}

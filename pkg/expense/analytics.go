package expense

import (
	"sort"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// TrendRow is one month in a spending trend. Moving averages stay zero
// until their window fills.
type TrendRow struct {
	Month        string
	Total        float64
	ThreeMonthMA float64
	SixMonthMA   float64
	GrowthPct    float64
}

// SpendingTrends aggregates expenses into chronological monthly totals
// with three- and six-month moving averages. GrowthPct is the percent
// change from the prior month, zero for the first. Returns nil without
// expenses.
func SpendingTrends(expenses []Expense) []TrendRow {
	if len(expenses) == 0 {
		return nil
	}

	totals := make(map[string]float64)
	for _, e := range expenses {
		totals[e.Date.Format("2006-01")] += e.Amount
	}
	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	rows := make([]TrendRow, 0, len(months))
	for i, month := range months {
		row := TrendRow{Month: month, Total: money.RoundCents(totals[month])}
		if i >= 2 {
			row.ThreeMonthMA = money.RoundCents(windowAvg(totals, months, i, 3))
		}
		if i >= 5 {
			row.SixMonthMA = money.RoundCents(windowAvg(totals, months, i, 6))
		}
		if i > 0 {
			if prev := totals[months[i-1]]; prev != 0 {
				row.GrowthPct = money.RoundCents((totals[month] - prev) / prev * 100)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// windowAvg averages the n monthly totals ending at index end.
func windowAvg(totals map[string]float64, months []string, end, n int) float64 {
	var sum float64
	for _, month := range months[end-n+1 : end+1] {
		sum += totals[month]
	}
	return sum / float64(n)
}

// VendorStats summarizes the spending relationship with one vendor.
type VendorStats struct {
	Vendor         string
	TotalSpend     float64
	Transactions   int
	AvgTransaction float64
	Categories     int
	LastPayment    time.Time
	DaysSinceLast  int
}

// VendorAnalysis summarizes spending per vendor across all recorded
// expenses, sorted by total spend, largest first. Expenses whose vendor
// was never registered group under "Unknown" per vendor ID.
// DaysSinceLast counts days from each vendor's most recent expense to
// asOf.
func (t *Tracker) VendorAnalysis(asOf time.Time) []VendorStats {
	if len(t.expenses) == 0 {
		return nil
	}

	type vendorAgg struct {
		stats      VendorStats
		categories map[Category]struct{}
	}
	byVendor := make(map[string]*vendorAgg)
	var order []string
	for _, e := range t.expenses {
		agg := byVendor[e.VendorID]
		if agg == nil {
			name := "Unknown"
			if v, ok := t.vendors[e.VendorID]; ok {
				name = v.Name
			}
			agg = &vendorAgg{
				stats:      VendorStats{Vendor: name},
				categories: make(map[Category]struct{}),
			}
			byVendor[e.VendorID] = agg
			order = append(order, e.VendorID)
		}
		agg.stats.TotalSpend += e.Amount
		agg.stats.Transactions++
		agg.categories[e.Category] = struct{}{}
		if e.Date.After(agg.stats.LastPayment) {
			agg.stats.LastPayment = e.Date
		}
	}

	stats := make([]VendorStats, 0, len(byVendor))
	for _, vendorID := range order {
		agg := byVendor[vendorID]
		s := agg.stats
		s.AvgTransaction = money.RoundCents(s.TotalSpend / float64(s.Transactions))
		s.TotalSpend = money.RoundCents(s.TotalSpend)
		s.Categories = len(agg.categories)
		s.DaysSinceLast = int(asOf.Sub(s.LastPayment).Hours() / 24)
		stats = append(stats, s)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSpend > stats[j].TotalSpend
	})
	return stats
}

package expense

import (
	"sort"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// SummaryRow aggregates expenses under one grouping key.
type SummaryRow struct {
	Key                string
	Total              float64
	Average            float64
	Count              int
	TaxDeductibleCount int
}

// SummaryByCategory totals expenses per category within [start, end],
// sorted by category name.
func (t *Tracker) SummaryByCategory(start, end time.Time) []SummaryRow {
	return t.summarize(start, end, func(e Expense) string {
		return string(e.Category)
	})
}

// SummaryByVendor totals expenses per vendor name within [start, end].
// Expenses whose vendor is no longer registered group under "Unknown".
func (t *Tracker) SummaryByVendor(start, end time.Time) []SummaryRow {
	return t.summarize(start, end, func(e Expense) string {
		if v, ok := t.vendors[e.VendorID]; ok {
			return v.Name
		}
		return "Unknown"
	})
}

// SummaryByCostCenter totals expenses per cost center within
// [start, end]; expenses without one group under "Unassigned".
func (t *Tracker) SummaryByCostCenter(start, end time.Time) []SummaryRow {
	return t.summarize(start, end, func(e Expense) string {
		if e.CostCenter == "" {
			return "Unassigned"
		}
		return e.CostCenter
	})
}

// SummaryByMonth totals expenses per calendar month within [start, end].
func (t *Tracker) SummaryByMonth(start, end time.Time) []SummaryRow {
	return t.summarize(start, end, func(e Expense) string {
		return e.Date.Format("2006-01")
	})
}

func (t *Tracker) summarize(start, end time.Time, key func(Expense) string) []SummaryRow {
	groups := make(map[string]*SummaryRow)
	for _, e := range t.expenses {
		if !between(e.Date, start, end) {
			continue
		}
		k := key(e)
		row, ok := groups[k]
		if !ok {
			row = &SummaryRow{Key: k}
			groups[k] = row
		}
		row.Total += e.Amount
		row.Count++
		if e.TaxDeductible {
			row.TaxDeductibleCount++
		}
	}

	rows := make([]SummaryRow, 0, len(groups))
	for _, row := range groups {
		row.Average = money.RoundCents(row.Total / float64(row.Count))
		row.Total = money.RoundCents(row.Total)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}

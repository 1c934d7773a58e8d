package expense

import (
	"fmt"
	"math"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// SavingsType labels a cost-savings suggestion.
type SavingsType string

const (
	SavingsVendorConsolidation SavingsType = "Vendor Consolidation"
	SavingsRecurringReview     SavingsType = "Recurring Expense Review"
	SavingsUnusualExpense      SavingsType = "Unusual Expense"
)

// Suggestion is one cost-savings opportunity. Vendors is set for
// consolidation suggestions; Vendor, Amount, and Average for unusual
// expenses.
type Suggestion struct {
	Type             SavingsType
	Category         Category
	Description      string
	CurrentSpend     float64
	PotentialSavings float64
	Action           string
	Vendors          []string
	Vendor           string
	Amount           float64
	Average          float64
}

// CostSavings scans the trailing lookbackMonths (30-day months, default
// six) ending at asOf for savings opportunities: categories spread
// across more than two vendors (estimated 10% from consolidation),
// categories with more than five recurring charges (estimated 15% from
// renegotiation), and single expenses more than three standard
// deviations above their category mean.
func (t *Tracker) CostSavings(asOf time.Time, lookbackMonths int) []Suggestion {
	if lookbackMonths <= 0 {
		lookbackMonths = 6
	}
	start := asOf.AddDate(0, 0, -30*lookbackMonths)

	var recent []Expense
	for _, e := range t.expenses {
		if between(e.Date, start, asOf) {
			recent = append(recent, e)
		}
	}

	var suggestions []Suggestion
	suggestions = append(suggestions, t.consolidationSuggestions(recent)...)
	suggestions = append(suggestions, recurringSuggestions(recent)...)
	suggestions = append(suggestions, t.outlierSuggestions(recent)...)
	return suggestions
}

// consolidationSuggestions flags categories buying from more than two
// registered vendors. Categories and vendor names keep first-seen
// order.
func (t *Tracker) consolidationSuggestions(recent []Expense) []Suggestion {
	type vendorSpend struct {
		name  string
		total float64
	}
	byCategory := make(map[Category][]*vendorSpend)
	seen := make(map[Category]map[string]*vendorSpend)
	var order []Category

	for _, e := range recent {
		v, ok := t.vendors[e.VendorID]
		if !ok {
			continue
		}
		if seen[e.Category] == nil {
			seen[e.Category] = make(map[string]*vendorSpend)
			order = append(order, e.Category)
		}
		vs := seen[e.Category][e.VendorID]
		if vs == nil {
			vs = &vendorSpend{name: v.Name}
			seen[e.Category][e.VendorID] = vs
			byCategory[e.Category] = append(byCategory[e.Category], vs)
		}
		vs.total += e.Amount
	}

	var suggestions []Suggestion
	for _, category := range order {
		vendors := byCategory[category]
		if len(vendors) <= 2 {
			continue
		}
		var total float64
		names := make([]string, 0, len(vendors))
		for _, vs := range vendors {
			total += vs.total
			names = append(names, vs.name)
		}
		suggestions = append(suggestions, Suggestion{
			Type:             SavingsVendorConsolidation,
			Category:         category,
			Description:      fmt.Sprintf("Consider consolidating %d vendors", len(vendors)),
			CurrentSpend:     money.RoundCents(total),
			PotentialSavings: money.RoundCents(total * 0.1),
			Vendors:          names,
		})
	}
	return suggestions
}

// recurringSuggestions flags categories carrying more than five
// recurring charges.
func recurringSuggestions(recent []Expense) []Suggestion {
	totals := make(map[Category]float64)
	counts := make(map[Category]int)
	var order []Category
	for _, e := range recent {
		if !e.Recurring {
			continue
		}
		if counts[e.Category] == 0 {
			order = append(order, e.Category)
		}
		counts[e.Category]++
		totals[e.Category] += e.Amount
	}

	var suggestions []Suggestion
	for _, category := range order {
		if counts[category] <= 5 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Type:             SavingsRecurringReview,
			Category:         category,
			Description:      fmt.Sprintf("Review %d recurring expenses", counts[category]),
			CurrentSpend:     money.RoundCents(totals[category]),
			PotentialSavings: money.RoundCents(totals[category] * 0.15),
			Action:           "Negotiate annual contracts or review necessity",
		})
	}
	return suggestions
}

// outlierSuggestions flags expenses more than three standard deviations
// above their category mean. Categories need more than five samples
// before an expense can be flagged.
func (t *Tracker) outlierSuggestions(recent []Expense) []Suggestion {
	amounts := make(map[Category][]float64)
	for _, e := range recent {
		amounts[e.Category] = append(amounts[e.Category], e.Amount)
	}

	means := make(map[Category]float64, len(amounts))
	stds := make(map[Category]float64, len(amounts))
	for category, values := range amounts {
		means[category] = mean(values)
		stds[category] = sampleStdDev(values)
	}

	var suggestions []Suggestion
	for _, e := range recent {
		if len(amounts[e.Category]) <= 5 || stds[e.Category] <= 0 {
			continue
		}
		if z := (e.Amount - means[e.Category]) / stds[e.Category]; z <= 3 {
			continue
		}
		name := "Unknown"
		if v, ok := t.vendors[e.VendorID]; ok {
			name = v.Name
		}
		suggestions = append(suggestions, Suggestion{
			Type:        SavingsUnusualExpense,
			Category:    e.Category,
			Description: "Expense significantly above average",
			Vendor:      name,
			Amount:      e.Amount,
			Average:     money.RoundCents(means[e.Category]),
			Action:      "Review for accuracy or negotiate",
		})
	}
	return suggestions
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev is the n-1 standard deviation, 0 with fewer than two
// samples.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

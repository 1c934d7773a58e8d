package expense

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// overdueAfterDays is how far past its date an unpaid expense counts as
// overdue.
const overdueAfterDays = 30

// CashFlowImpact summarizes upcoming cash needs from unpaid expenses.
// WeeklyOutflows buckets expected payments by ISO week ("2024-W05").
// TotalPending and Overdue cover every unpaid expense; WindowTotal only
// those expected inside the requested window.
type CashFlowImpact struct {
	WeeklyOutflows map[string]float64
	TotalPending   float64
	WindowTotal    float64
	Overdue        float64
}

// CashFlowImpact projects when unpaid pending and approved expenses
// will hit the bank account. Expected payment dates follow each
// vendor's terms (Net 15/45, Due on Receipt, anything else reads as
// Net 30); payments expected within daysAhead days of asOf (default
// 30) are bucketed by ISO week. Overdue totals unpaid expenses dated
// more than 30 days before asOf.
func (t *Tracker) CashFlowImpact(asOf time.Time, daysAhead int) CashFlowImpact {
	if daysAhead <= 0 {
		daysAhead = 30
	}
	horizon := asOf.AddDate(0, 0, daysAhead)
	overdueCutoff := asOf.AddDate(0, 0, -overdueAfterDays)

	impact := CashFlowImpact{WeeklyOutflows: make(map[string]float64)}
	var windowTotal float64
	for _, e := range t.expenses {
		if !e.PaidDate.IsZero() || (e.Status != StatusPending && e.Status != StatusApproved) {
			continue
		}
		impact.TotalPending += e.Amount
		if e.Date.Before(overdueCutoff) {
			impact.Overdue += e.Amount
		}

		v, ok := t.vendors[e.VendorID]
		if !ok {
			continue
		}
		expected := e.Date.AddDate(0, 0, termsDays(v.PaymentTerms))
		if expected.After(horizon) {
			continue
		}
		year, week := expected.ISOWeek()
		impact.WeeklyOutflows[fmt.Sprintf("%d-W%02d", year, week)] += e.Amount
		windowTotal += e.Amount
	}

	for week, amount := range impact.WeeklyOutflows {
		impact.WeeklyOutflows[week] = money.RoundCents(amount)
	}
	impact.TotalPending = money.RoundCents(impact.TotalPending)
	impact.WindowTotal = money.RoundCents(windowTotal)
	impact.Overdue = money.RoundCents(impact.Overdue)
	return impact
}

// termsDays converts vendor payment terms to days until payment is due.
func termsDays(terms string) int {
	switch terms {
	case "Net 15":
		return 15
	case "Net 45":
		return 45
	case "Due on Receipt":
		return 0
	default:
		return 30
	}
}

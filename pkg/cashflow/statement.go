package cashflow

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// CategoryItem is one movement inside a category breakdown, with the
// direction folded into the sign.
type CategoryItem struct {
	Date        time.Time
	Description string
	Amount      float64
}

// CategoryFlow aggregates a category within one activity.
type CategoryFlow struct {
	Inflows  float64
	Outflows float64
	Net      float64
	Items    []CategoryItem
}

// Activity is one of the three cash flow statement sections.
type Activity struct {
	Total  float64
	Detail map[string]CategoryFlow
}

// Statement is a formal cash flow statement over an inclusive period.
// The opening balance is the analyzer's configured starting balance, not
// the balance at the period start; this is a deliberate simplification
// for single-period reporting.
type Statement struct {
	Period         string
	Operating      Activity
	Investing      Activity
	Financing      Activity
	NetChange      float64
	OpeningBalance float64
	ClosingBalance float64
}

// Statement builds the cash flow statement for items dated within
// [start, end].
func (a *Analyzer) Statement(start, end time.Time) Statement {
	var operating, investing, financing []Item
	for _, cf := range a.flows {
		if cf.Date.Before(start) || cf.Date.After(end) {
			continue
		}
		switch cf.Type {
		case Operating:
			operating = append(operating, cf)
		case Investing:
			investing = append(investing, cf)
		case Financing:
			financing = append(financing, cf)
		}
	}

	stmt := Statement{
		Period:         start.Format("2006-01-02") + " to " + end.Format("2006-01-02"),
		Operating:      buildActivity(operating),
		Investing:      buildActivity(investing),
		Financing:      buildActivity(financing),
		OpeningBalance: a.openingBalance,
	}
	stmt.NetChange = money.RoundCents(stmt.Operating.Total + stmt.Investing.Total + stmt.Financing.Total)
	stmt.ClosingBalance = money.RoundCents(a.openingBalance + stmt.Operating.Total + stmt.Investing.Total + stmt.Financing.Total)
	return stmt
}

func buildActivity(flows []Item) Activity {
	activity := Activity{Detail: make(map[string]CategoryFlow)}
	var net float64

	for _, cf := range flows {
		detail := activity.Detail[cf.Category]
		if cf.Direction == Inflow {
			detail.Inflows += cf.Amount
		} else {
			detail.Outflows += cf.Amount
		}
		detail.Items = append(detail.Items, CategoryItem{
			Date:        cf.Date,
			Description: cf.Description,
			Amount:      cf.signed(),
		})
		activity.Detail[cf.Category] = detail
		net += cf.signed()
	}

	for category, detail := range activity.Detail {
		detail.Inflows = money.RoundCents(detail.Inflows)
		detail.Outflows = money.RoundCents(detail.Outflows)
		detail.Net = money.RoundCents(detail.Inflows - detail.Outflows)
		activity.Detail[category] = detail
	}

	activity.Total = money.RoundCents(net)
	return activity
}

// String renders the statement with per-category nets under each
// activity section.
func (s Statement) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cash Flow Statement: %s\n", s.Period)
	writeActivity(&b, "Operating Activities", s.Operating)
	writeActivity(&b, "Investing Activities", s.Investing)
	writeActivity(&b, "Financing Activities", s.Financing)
	fmt.Fprintf(&b, "  %-34s %14s\n", "Net Change in Cash", money.Currency(s.NetChange))
	fmt.Fprintf(&b, "  %-34s %14s\n", "Closing Balance", money.Currency(s.ClosingBalance))
	return b.String()
}

func writeActivity(b *strings.Builder, title string, a Activity) {
	fmt.Fprintf(b, "  %s\n", title)
	categories := make([]string, 0, len(a.Detail))
	for category := range a.Detail {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Fprintf(b, "    %-32s %14s\n", category, money.Currency(a.Detail[category].Net))
	}
	fmt.Fprintf(b, "    %-32s %14s\n", "Net Cash Flow", money.Currency(a.Total))
}

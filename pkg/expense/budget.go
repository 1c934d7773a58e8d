package expense

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// Budget line statuses.
const (
	BudgetUnder      = "Under"
	BudgetOver       = "Over"
	BudgetUnbudgeted = "Unbudgeted"
)

// BudgetLine compares one category's budget against actual spend.
// Variance is budget minus actual, so positive means headroom.
type BudgetLine struct {
	Category    Category
	Budgeted    float64
	Actual      float64
	Variance    float64
	VariancePct float64
	Status      string
}

// BudgetReport is the full budget-versus-actual comparison for a
// period.
type BudgetReport struct {
	BudgetName       string
	Period           string
	Lines            []BudgetLine
	TotalBudgeted    float64
	TotalActual      float64
	TotalVariance    float64
	TotalVariancePct float64
}

// BudgetVsActual compares spending within [start, end] against a
// registered budget. Budgeted categories come first, then spending in
// categories the budget never allocated, flagged Unbudgeted.
func (t *Tracker) BudgetVsActual(budgetID string, start, end time.Time) (BudgetReport, error) {
	budget, ok := t.budgets[budgetID]
	if !ok {
		return BudgetReport{}, fmt.Errorf("%w: %s", ErrBudgetNotFound, budgetID)
	}

	actual := make(map[Category]float64)
	for _, e := range t.expenses {
		if between(e.Date, start, end) {
			actual[e.Category] += e.Amount
		}
	}

	report := BudgetReport{
		BudgetName: budget.Name,
		Period:     start.Format("2006-01-02") + " to " + end.Format("2006-01-02"),
	}

	budgeted := make([]Category, 0, len(budget.Categories))
	for category := range budget.Categories {
		budgeted = append(budgeted, category)
	}
	sort.Slice(budgeted, func(i, j int) bool { return budgeted[i] < budgeted[j] })

	for _, category := range budgeted {
		budgetAmount := budget.Categories[category]
		actualAmount := actual[category]
		variance := budgetAmount - actualAmount

		line := BudgetLine{
			Category: category,
			Budgeted: money.RoundCents(budgetAmount),
			Actual:   money.RoundCents(actualAmount),
			Variance: money.RoundCents(variance),
			Status:   BudgetOver,
		}
		if budgetAmount > 0 {
			line.VariancePct = money.RoundCents(variance / budgetAmount * 100)
		}
		if variance > 0 {
			line.Status = BudgetUnder
		}
		report.Lines = append(report.Lines, line)
		report.TotalBudgeted += budgetAmount
		report.TotalActual += actualAmount
	}

	unbudgeted := make([]Category, 0)
	for category := range actual {
		if _, ok := budget.Categories[category]; !ok {
			unbudgeted = append(unbudgeted, category)
		}
	}
	sort.Slice(unbudgeted, func(i, j int) bool { return unbudgeted[i] < unbudgeted[j] })

	for _, category := range unbudgeted {
		actualAmount := actual[category]
		report.Lines = append(report.Lines, BudgetLine{
			Category:    category,
			Actual:      money.RoundCents(actualAmount),
			Variance:    money.RoundCents(-actualAmount),
			VariancePct: -100,
			Status:      BudgetUnbudgeted,
		})
		report.TotalActual += actualAmount
	}

	report.TotalVariance = money.RoundCents(report.TotalBudgeted - report.TotalActual)
	if report.TotalBudgeted > 0 {
		report.TotalVariancePct = money.RoundCents((report.TotalBudgeted - report.TotalActual) / report.TotalBudgeted * 100)
	}
	report.TotalBudgeted = money.RoundCents(report.TotalBudgeted)
	report.TotalActual = money.RoundCents(report.TotalActual)
	return report, nil
}

// String renders the comparison as an aligned text table.
func (r BudgetReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Budget vs Actual: %s (%s)\n", r.BudgetName, r.Period)
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "  %-24s budgeted %12s  actual %12s  variance %12s  %s\n",
			line.Category, money.Currency(line.Budgeted), money.Currency(line.Actual),
			money.Currency(line.Variance), line.Status)
	}
	fmt.Fprintf(&b, "  %-24s budgeted %12s  actual %12s  variance %12s (%.2f%%)\n",
		"Total", money.Currency(r.TotalBudgeted), money.Currency(r.TotalActual),
		money.Currency(r.TotalVariance), r.TotalVariancePct)
	return b.String()
}

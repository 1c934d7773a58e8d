package tax

import "github.com/dmitrymomot/finkit/pkg/money"

// ExpenseItem is one business expense offered for deduction.
type ExpenseItem struct {
	Category    string
	Amount      float64
	Description string
}

// LimitedItem records an expense that was only partially deductible.
type LimitedItem struct {
	Expense    string
	Total      float64
	Deductible float64
	Reason     string
}

// Deductions aggregates allowable business deductions by category.
type Deductions struct {
	ByCategory map[string]float64
	Total      float64
	Limited    []LimitedItem
	EntityType EntityType
}

// mealsCategory is subject to the 50% business meals limitation.
const mealsCategory = "Meals & Entertainment"

// BusinessDeductions sums deductible expenses by category. Meals and
// entertainment deduct at 50% and are listed under Limited; every other
// category deducts in full.
func (c *Calculator) BusinessDeductions(expenses []ExpenseItem, entityType EntityType) Deductions {
	byCategory := make(map[string]float64)
	var limited []LimitedItem

	for _, e := range expenses {
		if e.Category == mealsCategory {
			deductible := e.Amount * 0.5
			byCategory[e.Category] += deductible
			limited = append(limited, LimitedItem{
				Expense:    e.Description,
				Total:      e.Amount,
				Deductible: deductible,
				Reason:     "50% limit on business meals",
			})
			continue
		}
		byCategory[e.Category] += e.Amount
	}

	var total float64
	for _, amount := range byCategory {
		total += amount
	}

	return Deductions{
		ByCategory: byCategory,
		Total:      money.RoundCents(total),
		Limited:    limited,
		EntityType: entityType,
	}
}

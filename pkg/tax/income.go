package tax

import (
	"fmt"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// BracketDetail describes the tax owed within one bracket of a
// progressive walk.
type BracketDetail struct {
	IncomeRange   string
	Rate          string
	TaxableIncome float64
	Tax           float64
}

// IncomeTax is the result of a progressive income tax calculation. Rates
// are percentages rounded to two decimals, matching filing-form
// presentation.
type IncomeTax struct {
	TaxableIncome float64
	TotalTax      float64
	EffectiveRate float64
	MarginalRate  float64
	Detail        []BracketDetail
}

// FederalIncomeTax walks the federal brackets for the filing status and
// returns the total with per-bracket detail.
func (c *Calculator) FederalIncomeTax(taxableIncome float64, status FilingStatus) IncomeTax {
	brackets := c.federalTable(status)
	total, detail := walkBrackets(taxableIncome, brackets)

	return IncomeTax{
		TaxableIncome: taxableIncome,
		TotalTax:      money.RoundCents(total),
		EffectiveRate: effectiveRate(total, taxableIncome),
		MarginalRate:  money.RoundCents(marginalRate(taxableIncome, brackets) * 100),
		Detail:        detail,
	}
}

// StateTax is the result of a state income tax calculation.
type StateTax struct {
	State         string
	TaxableIncome float64
	Tax           float64
	EffectiveRate float64
}

// StateIncomeTax walks a state's brackets. States without a table fail
// with ErrStateNotSupported; a filing status the state does not publish
// falls back to its single table.
func (c *Calculator) StateIncomeTax(state string, taxableIncome float64, status FilingStatus) (StateTax, error) {
	tables, ok := c.tables.StateBrackets[state]
	if !ok {
		return StateTax{}, fmt.Errorf("%w: %s", ErrStateNotSupported, state)
	}

	brackets, ok := tables[status]
	if !ok {
		brackets = tables[Single]
	}

	total, _ := walkBrackets(taxableIncome, brackets)
	return StateTax{
		State:         state,
		TaxableIncome: taxableIncome,
		Tax:           money.RoundCents(total),
		EffectiveRate: effectiveRate(total, taxableIncome),
	}, nil
}

// walkBrackets charges each slice of income at its bracket rate from the
// bottom up.
func walkBrackets(taxableIncome float64, brackets []Bracket) (float64, []BracketDetail) {
	var total float64
	var detail []BracketDetail

	remaining := taxableIncome
	prev := 0.0
	for _, b := range brackets {
		if remaining <= 0 {
			break
		}

		slice := remaining
		if !b.unbounded() && b.UpTo-prev < slice {
			slice = b.UpTo - prev
		}
		tax := slice * b.Rate
		total += tax

		if slice > 0 {
			upper := prev + remaining
			if !b.unbounded() && b.UpTo < upper {
				upper = b.UpTo
			}
			detail = append(detail, BracketDetail{
				IncomeRange:   money.CurrencyWhole(prev) + " - " + money.CurrencyWhole(upper),
				Rate:          fmt.Sprintf("%.1f%%", b.Rate*100),
				TaxableIncome: slice,
				Tax:           tax,
			})
		}

		remaining -= slice
		prev = b.UpTo
	}
	return total, detail
}

// marginalRate is the rate of the first bracket whose ceiling covers the
// income.
func marginalRate(income float64, brackets []Bracket) float64 {
	for _, b := range brackets {
		if b.unbounded() || income <= b.UpTo {
			return b.Rate
		}
	}
	return brackets[len(brackets)-1].Rate
}

// effectiveRate is total tax over income as a rounded percentage, 0 for
// non-positive income.
func effectiveRate(tax, income float64) float64 {
	if income <= 0 {
		return 0
	}
	return money.RoundCents(tax / income * 100)
}

package rental

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// Projection assumptions: income grows 3% a year, residential buildings
// depreciate straight-line over 27.5 years, and income is taxed flat.
const (
	noiGrowthRate                = 0.03
	incomeTaxRate                = 0.25
	residentialDepreciationYears = 27.5
)

// Loan describes the financing on a property. The zero Loan means an
// all-cash purchase.
type Loan struct {
	Amount    float64
	Rate      float64 // annual, e.g. 0.065
	TermYears int
}

// annualDebtService is the yearly payment on a standard amortizing
// loan, zero when any term is missing.
func (l Loan) annualDebtService() float64 {
	if l.Amount <= 0 || l.Rate <= 0 || l.TermYears <= 0 {
		return 0
	}
	monthlyRate := l.Rate / 12
	factor := math.Pow(1+monthlyRate, float64(l.TermYears*12))
	monthly := l.Amount * monthlyRate * factor / (factor - 1)
	return monthly * 12
}

// ProjectionYear is one year of projected property cash flow.
type ProjectionYear struct {
	Year              int
	NOI               float64
	DebtService       float64
	BeforeTaxCashFlow float64
	Depreciation      float64
	Taxes             float64
	AfterTaxCashFlow  float64
}

// CashFlowProjection projects annual cash flows for a property from
// startYear: each year's NOI (grown 3% per elapsed year after the
// first) less debt service, then less taxes on income after
// depreciating the initial investment. Negative taxable income owes no
// tax.
func (m *Manager) CashFlowProjection(propertyID string, startYear, years int, initialInvestment float64, loan Loan) ([]ProjectionYear, error) {
	if _, ok := m.properties[propertyID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrPropertyNotFound, propertyID)
	}

	debtService := loan.annualDebtService()
	depreciation := initialInvestment / residentialDepreciationYears

	var projections []ProjectionYear
	for offset := 0; offset < years; offset++ {
		year := startYear + offset
		stmt, err := m.NOI(propertyID, year)
		if err != nil {
			return nil, err
		}

		noi := stmt.NetOperatingIncome
		for i := 0; i < offset; i++ {
			noi *= 1 + noiGrowthRate
		}

		beforeTax := noi - debtService
		var taxes float64
		if taxable := noi - debtService - depreciation; taxable > 0 {
			taxes = taxable * incomeTaxRate
		}

		projections = append(projections, ProjectionYear{
			Year:              year,
			NOI:               money.RoundCents(noi),
			DebtService:       money.RoundCents(debtService),
			BeforeTaxCashFlow: money.RoundCents(beforeTax),
			Depreciation:      money.RoundCents(depreciation),
			Taxes:             money.RoundCents(taxes),
			AfterTaxCashFlow:  money.RoundCents(beforeTax - taxes),
		})
	}
	return projections, nil
}

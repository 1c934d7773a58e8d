package tax

import (
	"fmt"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// QuarterlyEstimate lays out estimated tax payments under the 90% safe
// harbor rule.
type QuarterlyEstimate struct {
	AnnualIncome      float64
	AdjustedIncome    float64
	TaxableIncome     float64
	FederalIncomeTax  float64
	SelfEmploymentTax float64
	TotalAnnualTax    float64
	QuarterlyPayment  float64
	DueDates          []string
}

// EstimatedQuarterlyTaxes projects the year's federal liability and
// splits 90% of it across the four payment due dates. Self-employed
// filers deduct half their SE tax before the standard deduction.
func (c *Calculator) EstimatedQuarterlyTaxes(year int, annualIncome float64, status FilingStatus, selfEmployed bool) QuarterlyEstimate {
	adjusted := annualIncome
	var seTax SelfEmploymentTax
	if selfEmployed {
		seTax = c.SelfEmploymentTax(annualIncome)
		adjusted -= seTax.DeductiblePortion
	}

	taxable := max(0, adjusted-c.standardDeduction(status))
	federal := c.FederalIncomeTax(taxable, status)

	totalTax := federal.TotalTax + seTax.Total
	return QuarterlyEstimate{
		AnnualIncome:      annualIncome,
		AdjustedIncome:    money.RoundCents(adjusted),
		TaxableIncome:     money.RoundCents(taxable),
		FederalIncomeTax:  federal.TotalTax,
		SelfEmploymentTax: seTax.Total,
		TotalAnnualTax:    money.RoundCents(totalTax),
		QuarterlyPayment:  money.RoundCents(totalTax * 0.9 / 4),
		DueDates: []string{
			fmt.Sprintf("%d-01-15", year),
			fmt.Sprintf("%d-04-15", year),
			fmt.Sprintf("%d-06-15", year),
			fmt.Sprintf("%d-09-15", year),
		},
	}
}

// Strategy is one suggested tax planning move with a rough savings
// estimate.
type Strategy struct {
	Name             string
	Description      string
	PotentialSavings float64
	Implementation   string
}

// PlanningStrategies suggests moves based on the current and projected
// income picture. Savings figures are heuristics, not filings.
func (c *Calculator) PlanningStrategies(currentIncome, projectedIncome float64, entityType EntityType) []Strategy {
	var strategies []Strategy

	currentBracket := marginalRate(currentIncome, c.federalTable(Single))
	projectedBracket := marginalRate(projectedIncome, c.federalTable(Single))

	if projectedBracket > currentBracket {
		strategies = append(strategies, Strategy{
			Name:             "Accelerate Deductions",
			Description:      "Consider accelerating deductible expenses into current year",
			PotentialSavings: (projectedBracket - currentBracket) * min(10000, projectedIncome-currentIncome),
			Implementation:   "Prepay expenses, equipment purchases, retirement contributions",
		})
	}

	if entityType == SoleProprietorship && currentIncome > 50000 {
		strategies = append(strategies, Strategy{
			Name:             "Consider Entity Election",
			Description:      "Evaluate S-Corp election to reduce self-employment taxes",
			PotentialSavings: currentIncome * 0.153 * 0.4,
			Implementation:   "File Form 2553, establish reasonable salary",
		})
	}

	if currentIncome > 100000 {
		strategies = append(strategies, Strategy{
			Name:             "Equipment Purchases",
			Description:      "Consider Section 179 or bonus depreciation for equipment",
			PotentialSavings: currentBracket * 50000,
			Implementation:   "Purchase and place in service before year-end",
		})
	}

	return strategies
}

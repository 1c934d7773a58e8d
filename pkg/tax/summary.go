package tax

import (
	"fmt"
	"sort"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// FinancialData is the year's headline figures fed into a summary.
type FinancialData struct {
	Revenue  float64
	Expenses float64
}

// SoleProprietorTax is the Schedule C position: SE tax plus income tax on
// the adjusted income.
type SoleProprietorTax struct {
	ScheduleCIncome float64
	SelfEmployment  SelfEmploymentTax
	IncomeTax       IncomeTax
	TotalFederalTax float64
}

// CorporateTax is the flat-rate C corporation position.
type CorporateTax struct {
	TaxableIncome  float64
	Rate           float64
	Tax            float64
	AfterTaxIncome float64
}

// PassThroughTax marks income that passes to the owners untaxed at the
// entity level.
type PassThroughTax struct {
	Income float64
	Note   string
}

// BusinessSummary is the full-year tax picture for one entity. Exactly
// one of SoleProprietor, Corporate or PassThrough is set, matching the
// entity type.
type BusinessSummary struct {
	Entity             string
	EntityType         EntityType
	TaxYear            int
	Revenue            float64
	Expenses           float64
	Depreciation       float64
	NetIncome          float64
	DepreciationDetail []DepreciationDeduction

	SoleProprietor *SoleProprietorTax
	Corporate      *CorporateTax
	PassThrough    *PassThroughTax
}

// BusinessTaxSummary nets revenue, expenses and every registered asset's
// deduction for the year, then applies the entity type's tax treatment.
func (c *Calculator) BusinessTaxSummary(entityID string, taxYear int, data FinancialData) (BusinessSummary, error) {
	entity, ok := c.entities[entityID]
	if !ok {
		return BusinessSummary{}, fmt.Errorf("%w: %s", ErrEntityNotFound, entityID)
	}

	var totalDepreciation float64
	var detail []DepreciationDeduction
	for _, assetID := range c.sortedAssetIDs() {
		asset := c.assets[assetID]
		if asset.PlacedInService.Year() > taxYear {
			continue
		}
		deduction, err := c.DepreciationDeduction(assetID, taxYear)
		if err != nil {
			continue
		}
		totalDepreciation += deduction.AnnualDeduction
		detail = append(detail, deduction)
	}

	netIncome := data.Revenue - data.Expenses - totalDepreciation
	summary := BusinessSummary{
		Entity:             entity.Name,
		EntityType:         entity.Type,
		TaxYear:            taxYear,
		Revenue:            data.Revenue,
		Expenses:           data.Expenses,
		Depreciation:       money.RoundCents(totalDepreciation),
		NetIncome:          money.RoundCents(netIncome),
		DepreciationDetail: detail,
	}

	switch entity.Type {
	case SoleProprietorship:
		seTax := c.SelfEmploymentTax(netIncome)
		incomeTax := c.FederalIncomeTax(netIncome-seTax.DeductiblePortion, Single)
		summary.SoleProprietor = &SoleProprietorTax{
			ScheduleCIncome: money.RoundCents(netIncome),
			SelfEmployment:  seTax,
			IncomeTax:       incomeTax,
			TotalFederalTax: money.RoundCents(seTax.Total + incomeTax.TotalTax),
		}

	case CCorp:
		corpTax := netIncome * c.tables.CorporateRate
		summary.Corporate = &CorporateTax{
			TaxableIncome:  money.RoundCents(netIncome),
			Rate:           c.tables.CorporateRate,
			Tax:            money.RoundCents(corpTax),
			AfterTaxIncome: money.RoundCents(netIncome - corpTax),
		}

	case SCorp:
		summary.PassThrough = &PassThroughTax{
			Income: money.RoundCents(netIncome),
			Note:   "Income passes through to owners - no entity-level tax",
		}
	}

	return summary, nil
}

// Scenario is one revenue and expense assumption for a projection.
type Scenario struct {
	Revenue  float64
	Expenses float64
}

// Projection is the tax outcome of one scenario.
type Projection struct {
	Scenario       string
	Revenue        float64
	Expenses       float64
	NetIncome      float64
	TotalTax       float64
	AfterTaxIncome float64
	EffectiveRate  float64
}

// TaxProjections runs each named scenario through the entity's tax
// treatment, ordered by scenario name.
func (c *Calculator) TaxProjections(entityID string, scenarios map[string]Scenario) ([]Projection, error) {
	entity, ok := c.entities[entityID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, entityID)
	}

	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)

	projections := make([]Projection, 0, len(names))
	for _, name := range names {
		s := scenarios[name]
		netIncome := s.Revenue - s.Expenses

		var totalTax float64
		switch entity.Type {
		case SoleProprietorship:
			seTax := c.SelfEmploymentTax(netIncome)
			totalTax = seTax.Total + c.FederalIncomeTax(netIncome-seTax.Total*0.5, Single).TotalTax
		case CCorp:
			totalTax = netIncome * c.tables.CorporateRate
		}

		effective := 0.0
		if netIncome > 0 {
			effective = money.RoundCents(totalTax / netIncome * 100)
		}
		projections = append(projections, Projection{
			Scenario:       name,
			Revenue:        s.Revenue,
			Expenses:       s.Expenses,
			NetIncome:      money.RoundCents(netIncome),
			TotalTax:       money.RoundCents(totalTax),
			AfterTaxIncome: money.RoundCents(netIncome - totalTax),
			EffectiveRate:  effective,
		})
	}
	return projections, nil
}

func (c *Calculator) sortedAssetIDs() []string {
	ids := make([]string, 0, len(c.assets))
	for id := range c.assets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

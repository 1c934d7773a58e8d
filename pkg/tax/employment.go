package tax

import "github.com/dmitrymomot/finkit/pkg/money"

// SelfEmploymentTax breaks down SECA taxes on net self-employment
// earnings. Half the total is deductible against income tax.
type SelfEmploymentTax struct {
	NetEarnings        float64
	SocialSecurity     float64
	Medicare           float64
	AdditionalMedicare float64
	Total              float64
	DeductiblePortion  float64
}

// SelfEmploymentTax applies the SECA factor and rate schedule to net
// earnings. Non-positive earnings owe nothing.
func (c *Calculator) SelfEmploymentTax(netEarnings float64) SelfEmploymentTax {
	if netEarnings <= 0 {
		return SelfEmploymentTax{}
	}

	rates := c.tables.SelfEmployment
	seEarnings := netEarnings * rates.NetEarningsFactor

	ssTaxable := min(seEarnings, rates.SocialSecurityWageBase)
	ssTax := ssTaxable * rates.SocialSecurityRate
	medicareTax := seEarnings * rates.MedicareRate

	var additional float64
	if seEarnings > rates.AdditionalMedicareThreshold {
		additional = (seEarnings - rates.AdditionalMedicareThreshold) * rates.AdditionalMedicareRate
	}

	total := ssTax + medicareTax + additional
	return SelfEmploymentTax{
		NetEarnings:        money.RoundCents(seEarnings),
		SocialSecurity:     money.RoundCents(ssTax),
		Medicare:           money.RoundCents(medicareTax),
		AdditionalMedicare: money.RoundCents(additional),
		Total:              money.RoundCents(total),
		DeductiblePortion:  money.RoundCents(total * 0.5),
	}
}

// PayrollSide is one party's share of payroll taxes. AdditionalMedicare
// applies only to the employee side, FUTA only to the employer side.
type PayrollSide struct {
	SocialSecurity     float64
	Medicare           float64
	AdditionalMedicare float64
	FUTA               float64
	Total              float64
}

// PayrollTaxes splits FICA between employee and employer and adds the
// employer's FUTA.
type PayrollTaxes struct {
	Wages     float64
	Employee  PayrollSide
	Employer  PayrollSide
	TotalCost float64
}

// PayrollTaxes computes both sides of payroll tax on annual wages.
func (c *Calculator) PayrollTaxes(wages float64) PayrollTaxes {
	rates := c.tables.Payroll

	ss := min(wages, rates.SocialSecurityWageBase) * rates.SocialSecurityRate
	medicare := wages * rates.MedicareRate
	additional := max(0, wages-rates.AdditionalMedicareThreshold) * rates.AdditionalMedicareRate
	futa := min(wages, rates.FUTAWageBase) * rates.FUTARate

	employee := PayrollSide{
		SocialSecurity:     money.RoundCents(ss),
		Medicare:           money.RoundCents(medicare),
		AdditionalMedicare: money.RoundCents(additional),
		Total:              money.RoundCents(ss + medicare + additional),
	}
	employer := PayrollSide{
		SocialSecurity: money.RoundCents(ss),
		Medicare:       money.RoundCents(medicare),
		FUTA:           money.RoundCents(futa),
		Total:          money.RoundCents(ss + medicare + futa),
	}

	return PayrollTaxes{
		Wages:     wages,
		Employee:  employee,
		Employer:  employer,
		TotalCost: money.RoundCents(wages + ss + medicare + futa),
	}
}

package tax

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

// Bracket is one progressive tax bracket. UpTo is the cumulative income
// ceiling for the bracket's rate; a zero UpTo marks the unbounded top
// bracket.
type Bracket struct {
	UpTo float64 `yaml:"up_to"`
	Rate float64 `yaml:"rate"`
}

// unbounded reports whether the bracket has no income ceiling.
func (b Bracket) unbounded() bool { return b.UpTo == 0 }

// SelfEmploymentRates holds the SECA constants for one tax year.
type SelfEmploymentRates struct {
	NetEarningsFactor           float64 `yaml:"net_earnings_factor"`
	SocialSecurityWageBase      float64 `yaml:"social_security_wage_base"`
	SocialSecurityRate          float64 `yaml:"social_security_rate"`
	MedicareRate                float64 `yaml:"medicare_rate"`
	AdditionalMedicareRate      float64 `yaml:"additional_medicare_rate"`
	AdditionalMedicareThreshold float64 `yaml:"additional_medicare_threshold"`
}

// PayrollRates holds the FICA and FUTA constants for one tax year.
type PayrollRates struct {
	SocialSecurityWageBase      float64 `yaml:"social_security_wage_base"`
	SocialSecurityRate          float64 `yaml:"social_security_rate"`
	MedicareRate                float64 `yaml:"medicare_rate"`
	AdditionalMedicareRate      float64 `yaml:"additional_medicare_rate"`
	AdditionalMedicareThreshold float64 `yaml:"additional_medicare_threshold"`
	FUTAWageBase                float64 `yaml:"futa_wage_base"`
	FUTARate                    float64 `yaml:"futa_rate"`
}

// Tables bundles every rate table the calculator consults. The embedded
// 2024 tables load by default; supply a different set with WithTables
// when a new year is published.
type Tables struct {
	Year               int                                   `yaml:"year"`
	FederalBrackets    map[FilingStatus][]Bracket            `yaml:"federal_brackets"`
	StandardDeductions map[FilingStatus]float64              `yaml:"standard_deductions"`
	SelfEmployment     SelfEmploymentRates                   `yaml:"self_employment"`
	Payroll            PayrollRates                          `yaml:"payroll"`
	Section179Limit    float64                               `yaml:"section_179_limit"`
	CorporateRate      float64                               `yaml:"corporate_rate"`
	StateBrackets      map[string]map[FilingStatus][]Bracket `yaml:"state_brackets"`
}

// loadDefaultTables parses the embedded year tables. The file ships with
// the package, so a parse failure is a build defect and panics.
func loadDefaultTables() Tables {
	t, err := ParseTables(tablesYAML)
	if err != nil {
		panic(fmt.Sprintf("tax: embedded tables are invalid: %v", err))
	}
	return t
}

// ParseTables decodes a YAML rate table document, validating that the
// progressive tables are present and well formed.
func ParseTables(data []byte) (Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, errors.Join(ErrInvalidTables, err)
	}

	if len(t.FederalBrackets) == 0 {
		return Tables{}, fmt.Errorf("%w: no federal brackets", ErrInvalidTables)
	}
	for status, brackets := range t.FederalBrackets {
		if err := checkBrackets(brackets); err != nil {
			return Tables{}, fmt.Errorf("%w: federal %s: %v", ErrInvalidTables, status, err)
		}
	}
	for state, tables := range t.StateBrackets {
		for status, brackets := range tables {
			if err := checkBrackets(brackets); err != nil {
				return Tables{}, fmt.Errorf("%w: state %s %s: %v", ErrInvalidTables, state, status, err)
			}
		}
	}
	return t, nil
}

// checkBrackets requires ascending ceilings with the unbounded bracket
// last.
func checkBrackets(brackets []Bracket) error {
	if len(brackets) == 0 {
		return errors.New("empty bracket table")
	}

	prev := 0.0
	for i, b := range brackets {
		if b.unbounded() {
			if i != len(brackets)-1 {
				return errors.New("unbounded bracket before the top")
			}
			continue
		}
		if b.UpTo <= prev {
			return fmt.Errorf("bracket ceiling %v not above %v", b.UpTo, prev)
		}
		prev = b.UpTo
	}
	if !brackets[len(brackets)-1].unbounded() {
		return errors.New("top bracket must be unbounded")
	}
	return nil
}

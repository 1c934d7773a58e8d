package validator

import (
	"regexp"
	"strings"
)

var (
	einRegex = regexp.MustCompile(`^\d{2}-\d{7}$`)
	ssnRegex = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
)

// TaxID recognizes EIN (NN-NNNNNNN) and SSN (NNN-NN-NNNN) shapes after
// dropping everything but digits and dashes, cleaning to the stripped
// identifier. Separators are mandatory: a bare 9-digit run fails.
func TaxID() Rule {
	return Rule{Kind: KindTaxID}
}

func (v *Validator) applyTaxID(value any, rule Rule) ruleOutcome {
	s, ok := value.(string)
	if !ok {
		return failOutcome(rule, "Invalid Tax ID format", "validation.tax_id", nil)
	}

	cleaned := strings.Map(func(r rune) rune {
		if r == '-' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, s)

	if einRegex.MatchString(cleaned) || ssnRegex.MatchString(cleaned) {
		return cleanedOutcome(cleaned)
	}
	return failOutcome(rule, "Invalid Tax ID format", "validation.tax_id", nil)
}

package validator

import (
	"regexp"
	"strconv"
	"strings"
)

// currencyAmountRegex extracts the first run of digits with optional
// thousands separators and decimals from free-form currency text.
var currencyAmountRegex = regexp.MustCompile(`[\d,]+\.?\d*`)

// Currency extracts a monetary amount from strings like "$1,234.56" or
// "USD 99" and cleans it to a float64. Ints and floats pass through as
// float64.
func Currency() Rule {
	return Rule{Kind: KindCurrency}
}

// Percentage cleans like Numeric, dividing by 100 only when the source
// string carries a '%' sign. Values outside [0, 1] produce a warning, not
// an error.
func Percentage() Rule {
	return Rule{Kind: KindPercentage}
}

func (v *Validator) applyCurrency(value any, rule Rule) ruleOutcome {
	if s, ok := value.(string); ok {
		if m := currencyAmountRegex.FindString(s); m != "" {
			amount, err := parseAmount(m)
			if err == nil {
				return cleanedOutcome(amount)
			}
		}
		return failOutcome(rule, "Invalid currency format", "validation.currency", nil)
	}

	f, ok := toFloat(value)
	if !ok {
		return failOutcome(rule, "Invalid currency format", "validation.currency", nil)
	}
	return cleanedOutcome(f)
}

func (v *Validator) applyPercentage(value any, rule Rule) ruleOutcome {
	raw := value
	hasSign := false
	if s, ok := value.(string); ok && strings.Contains(s, "%") {
		hasSign = true
		raw = strings.ReplaceAll(s, "%", "")
	}

	out := v.applyNumeric(raw, Rule{Kind: KindNumeric})
	if len(out.errs) > 0 {
		return out
	}

	f := out.value.(float64)
	if hasSign {
		f /= 100
	}

	if f < 0 || f > 1 {
		return warnOutcome(rule, "Percentage should be between 0% and 100%", "validation.percentage_range", nil)
	}
	return cleanedOutcome(f)
}

// parseAmount parses an extracted amount run after dropping thousands
// separators.
func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}


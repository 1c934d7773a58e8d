package validator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const defaultCurrencySymbols = "$€£¥₹"

// Numeric accepts ints and floats directly and parses strings after
// stripping currency symbols, thousands separators and whitespace. The
// cleaned value is always a float64.
func Numeric() Rule {
	return Rule{Kind: KindNumeric}
}

// Positive cleans like Numeric and fails unless the value is strictly
// greater than zero.
func Positive() Rule {
	return Rule{Kind: KindPositive}
}

// Negative cleans like Numeric and fails unless the value is strictly
// less than zero.
func Negative() Rule {
	return Rule{Kind: KindNegative}
}

// Between cleans like Numeric and fails outside [min, max].
func Between(min, max float64) Rule {
	return Rule{Kind: KindRange, min: &min, max: &max}
}

// Min cleans like Numeric and fails below min.
func Min(min float64) Rule {
	return Rule{Kind: KindRange, min: &min}
}

// Max cleans like Numeric and fails above max.
func Max(max float64) Rule {
	return Rule{Kind: KindRange, max: &max}
}

func (v *Validator) applyNumeric(value any, rule Rule) ruleOutcome {
	if s, ok := value.(string); ok {
		cleaned := v.stripNumeric(strings.TrimSpace(s))
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return failOutcome(rule, "Invalid numeric value", "validation.numeric", nil)
		}
		return cleanedOutcome(f)
	}

	f, ok := toFloat(value)
	if !ok {
		return failOutcome(rule, "Value must be numeric", "validation.numeric", nil)
	}
	return cleanedOutcome(f)
}

func (v *Validator) applyPositive(value any, rule Rule) ruleOutcome {
	out := v.applyNumeric(value, Rule{Kind: KindNumeric})
	if len(out.errs) > 0 {
		return out
	}
	if out.value.(float64) <= 0 {
		return failOutcome(rule, "Value must be positive", "validation.positive", nil)
	}
	return out
}

func (v *Validator) applyNegative(value any, rule Rule) ruleOutcome {
	out := v.applyNumeric(value, Rule{Kind: KindNumeric})
	if len(out.errs) > 0 {
		return out
	}
	if out.value.(float64) >= 0 {
		return failOutcome(rule, "Value must be negative", "validation.negative", nil)
	}
	return out
}

func (v *Validator) applyRange(value any, rule Rule) ruleOutcome {
	out := v.applyNumeric(value, Rule{Kind: KindNumeric})
	if len(out.errs) > 0 {
		return out
	}

	f := out.value.(float64)
	if rule.min != nil && f < *rule.min {
		return failOutcome(rule,
			fmt.Sprintf("Value must be at least %v", *rule.min),
			"validation.range_min",
			map[string]any{"min": *rule.min},
		)
	}
	if rule.max != nil && f > *rule.max {
		return failOutcome(rule,
			fmt.Sprintf("Value must not exceed %v", *rule.max),
			"validation.range_max",
			map[string]any{"max": *rule.max},
		)
	}
	return out
}

// stripNumeric drops configured currency symbols, commas and whitespace so
// inputs like "$1,234.56" or "  42 " parse as plain floats.
func (v *Validator) stripNumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) || strings.ContainsRune(v.currencySymbols, r) {
			return -1
		}
		return r
	}, s)
}

package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Required fails on nil, empty, and whitespace-only string values. It is
// the only kind that can fail an empty value, so it conventionally leads
// the rule list.
func Required() Rule {
	return Rule{Kind: KindRequired}
}

// Length bounds the rune count of string values inclusively. Non-string
// values pass untouched.
func Length(min, max int) Rule {
	return Rule{Kind: KindLength, minLen: &min, maxLen: &max}
}

// MinLength bounds the rune count of string values from below.
func MinLength(min int) Rule {
	return Rule{Kind: KindLength, minLen: &min}
}

// MaxLength bounds the rune count of string values from above.
func MaxLength(max int) Rule {
	return Rule{Kind: KindLength, maxLen: &max}
}

// Pattern fails string values that do not match expr at the start of the
// input. Invalid expressions panic like regexp.MustCompile. Non-string
// values pass untouched.
func Pattern(expr string) Rule {
	return Rule{Kind: KindRegex, pattern: regexp.MustCompile(`^(?:` + expr + `)`)}
}

// Custom wraps a caller-supplied predicate. A nil predicate is a
// passthrough; a false return fails with message.
func Custom(predicate func(value any) bool, message string) Rule {
	return Rule{Kind: KindCustom, check: predicate, errMsg: message}
}

func (v *Validator) applyLength(value any, rule Rule) ruleOutcome {
	s, ok := value.(string)
	if !ok {
		return ruleOutcome{}
	}

	n := utf8.RuneCountInString(s)
	if rule.minLen != nil && n < *rule.minLen {
		return failOutcome(rule,
			fmt.Sprintf("Minimum length is %d", *rule.minLen),
			"validation.length_min",
			map[string]any{"min": *rule.minLen},
		)
	}
	if rule.maxLen != nil && n > *rule.maxLen {
		return failOutcome(rule,
			fmt.Sprintf("Maximum length is %d", *rule.maxLen),
			"validation.length_max",
			map[string]any{"max": *rule.maxLen},
		)
	}
	return ruleOutcome{}
}

func (v *Validator) applyRegex(value any, rule Rule) ruleOutcome {
	if rule.pattern == nil {
		return ruleOutcome{}
	}
	s, ok := value.(string)
	if !ok {
		return ruleOutcome{}
	}
	if !rule.pattern.MatchString(s) {
		return failOutcome(rule, "Value doesn't match required pattern", "validation.pattern", nil)
	}
	return ruleOutcome{}
}

func (v *Validator) applyCustom(value any, rule Rule) ruleOutcome {
	if rule.check == nil || rule.check(value) {
		return ruleOutcome{}
	}
	return failOutcome(rule, "Invalid value", "validation.custom", nil)
}

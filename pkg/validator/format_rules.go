package validator

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// US first, then a permissive international shape.
	defaultPhonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\+?1?[-.\s]?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})$`),
		regexp.MustCompile(`^\+?([0-9]{1,4})[-.\s]?([0-9]{3,4})[-.\s]?([0-9]{3,4})[-.\s]?([0-9]{3,4})$`),
	}
)

// Email validates against a standard address pattern and cleans to the
// lowercased address.
func Email() Rule {
	return Rule{Kind: KindEmail}
}

// Phone tries the configured regional patterns in order and cleans to
// digits plus a leading '+' when present.
func Phone() Rule {
	return Rule{Kind: KindPhone}
}

func (v *Validator) applyEmail(value any, rule Rule) ruleOutcome {
	s, ok := value.(string)
	if !ok || !v.emailPattern.MatchString(s) {
		return failOutcome(rule, "Invalid email format", "validation.email", nil)
	}
	return cleanedOutcome(strings.ToLower(s))
}

func (v *Validator) applyPhone(value any, rule Rule) ruleOutcome {
	s, ok := value.(string)
	if !ok {
		return failOutcome(rule, "Invalid phone format", "validation.phone", nil)
	}

	for _, pattern := range v.phonePatterns {
		if pattern.MatchString(s) {
			cleaned := strings.Map(func(r rune) rune {
				if r == '+' || (r >= '0' && r <= '9') {
					return r
				}
				return -1
			}, s)
			return cleanedOutcome(cleaned)
		}
	}
	return failOutcome(rule, "Invalid phone format", "validation.phone", nil)
}

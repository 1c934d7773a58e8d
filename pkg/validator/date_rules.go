package validator

import "time"

// defaultDateLayouts are tried in order; the ambiguous US/European forms
// resolve in favor of MM/DD/YYYY because it is attempted first.
var defaultDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
}

// Date accepts time.Time values unchanged and parses strings against the
// configured layout list, cleaning to the first successful time.Time.
func Date() Rule {
	return Rule{Kind: KindDate}
}

func (v *Validator) applyDate(value any, rule Rule) ruleOutcome {
	switch d := value.(type) {
	case time.Time:
		return cleanedOutcome(d)
	case string:
		for _, layout := range v.dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return cleanedOutcome(t)
			}
		}
		return failOutcome(rule, "Invalid date format", "validation.date", nil)
	default:
		return failOutcome(rule, "Invalid date format", "validation.date", nil)
	}
}

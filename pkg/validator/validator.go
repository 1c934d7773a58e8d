package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies one rule in the closed rule set. The set is fixed: the
// Validator dispatches exhaustively on it and panics on anything else.
type Kind string

const (
	KindRequired   Kind = "required"
	KindNumeric    Kind = "numeric"
	KindPositive   Kind = "positive"
	KindNegative   Kind = "negative"
	KindPercentage Kind = "percentage"
	KindCurrency   Kind = "currency"
	KindDate       Kind = "date"
	KindEmail      Kind = "email"
	KindPhone      Kind = "phone"
	KindTaxID      Kind = "tax_id"
	KindRange      Kind = "range"
	KindLength     Kind = "length"
	KindRegex      Kind = "regex"
	KindCustom     Kind = "custom"
)

// Rule is a declarative descriptor of one constraint/transform. Build rules
// with the package constructors; a Rule is immutable once constructed.
type Rule struct {
	Kind Kind

	min, max       *float64
	minLen, maxLen *int
	pattern        *regexp.Regexp
	check          func(value any) bool
	errMsg         string
	warnMsg        string
}

// WithMessage returns a copy of the rule that reports msg instead of the
// kind's default error message.
func (r Rule) WithMessage(msg string) Rule {
	r.errMsg = msg
	return r
}

// WithWarning returns a copy of the rule that reports msg instead of the
// kind's default warning message.
func (r Rule) WithWarning(msg string) Rule {
	r.warnMsg = msg
	return r
}

// Cleaning records one rule's normalization of the input value.
type Cleaning struct {
	Kind  Kind
	Value any
}

// Result is the outcome of validating one value against a rule list.
// Valid is true exactly when Errors is empty; warnings never affect it.
type Result struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError

	// Value is the input after cleaning. When several rules clean the
	// value the last one wins; Cleanings preserves the full sequence in
	// rule order for callers that need the intermediate forms.
	Value     any
	Cleanings []Cleaning
}

// ErrorMessages returns the plain error texts in rule order.
func (r Result) ErrorMessages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// WarningMessages returns the plain warning texts in rule order.
func (r Result) WarningMessages() []string {
	msgs := make([]string, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		msgs = append(msgs, w.Message)
	}
	return msgs
}

// Validator applies rules under an immutable configuration. The zero
// configuration from New covers US-centric financial input; options widen
// it without introducing any shared mutable state.
type Validator struct {
	currencySymbols string
	dateLayouts     []string
	phonePatterns   []*regexp.Regexp
	emailPattern    *regexp.Regexp
}

// Option adjusts the Validator configuration at construction time.
type Option func(*Validator)

// WithCurrencySymbols replaces the set of currency symbols stripped while
// cleaning numeric input.
func WithCurrencySymbols(symbols string) Option {
	return func(v *Validator) {
		v.currencySymbols = symbols
	}
}

// WithDateLayouts replaces the ordered list of layouts tried when parsing
// date strings. The first successful parse wins.
func WithDateLayouts(layouts ...string) Option {
	return func(v *Validator) {
		v.dateLayouts = layouts
	}
}

// WithPhonePatterns replaces the ordered list of phone patterns. Patterns
// must compile; invalid expressions panic like regexp.MustCompile.
func WithPhonePatterns(exprs ...string) Option {
	return func(v *Validator) {
		patterns := make([]*regexp.Regexp, 0, len(exprs))
		for _, expr := range exprs {
			patterns = append(patterns, regexp.MustCompile(expr))
		}
		v.phonePatterns = patterns
	}
}

// New builds a Validator. Without options it strips $, €, £, ¥ and ₹ from
// numeric input, parses ISO (YYYY-MM-DD), US (MM/DD/YYYY), European
// (DD/MM/YYYY) and timestamped dates, and accepts US and general
// international phone shapes.
func New(opts ...Option) *Validator {
	v := &Validator{
		currencySymbols: defaultCurrencySymbols,
		dateLayouts:     defaultDateLayouts,
		phonePatterns:   defaultPhonePatterns,
		emailPattern:    emailRegex,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = New()

// Validate applies rules to value using the default configuration.
func Validate(value any, rules ...Rule) Result {
	return defaultValidator.Validate(value, rules...)
}

// Validate applies rules strictly in order. Errors and warnings from every
// rule are concatenated rather than short-circuited, and each rule that
// produces a cleaned value overwrites Value while appending to Cleanings.
func (v *Validator) Validate(value any, rules ...Rule) Result {
	res := Result{Valid: true, Value: value}

	for _, rule := range rules {
		out := v.apply(value, rule)
		res.Errors = append(res.Errors, out.errs...)
		res.Warnings = append(res.Warnings, out.warns...)
		if out.cleaned {
			res.Value = out.value
			res.Cleanings = append(res.Cleanings, Cleaning{Kind: rule.Kind, Value: out.value})
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// ruleOutcome is the result of one rule application before merging.
type ruleOutcome struct {
	errs    []ValidationError
	warns   []ValidationError
	value   any
	cleaned bool
}

func (v *Validator) apply(value any, rule Rule) ruleOutcome {
	if rule.Kind == KindRequired {
		if isBlank(value) {
			return failOutcome(rule, "Field is required", "validation.required", nil)
		}
		return ruleOutcome{}
	}

	// Optional blank fields skip every other kind so a missing value does
	// not cascade into format failures.
	if isEmptyValue(value) {
		return ruleOutcome{}
	}

	switch rule.Kind {
	case KindNumeric:
		return v.applyNumeric(value, rule)
	case KindPositive:
		return v.applyPositive(value, rule)
	case KindNegative:
		return v.applyNegative(value, rule)
	case KindPercentage:
		return v.applyPercentage(value, rule)
	case KindCurrency:
		return v.applyCurrency(value, rule)
	case KindDate:
		return v.applyDate(value, rule)
	case KindEmail:
		return v.applyEmail(value, rule)
	case KindPhone:
		return v.applyPhone(value, rule)
	case KindTaxID:
		return v.applyTaxID(value, rule)
	case KindRange:
		return v.applyRange(value, rule)
	case KindLength:
		return v.applyLength(value, rule)
	case KindRegex:
		return v.applyRegex(value, rule)
	case KindCustom:
		return v.applyCustom(value, rule)
	default:
		panic(fmt.Sprintf("validator: unknown rule kind %q", rule.Kind))
	}
}

// isEmptyValue reports the skip condition for non-required rules: nil or
// the empty string. Whitespace-only strings are not skipped so format
// rules still see them.
func isEmptyValue(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

// isBlank reports the Required failure condition: nil, empty, or
// whitespace-only string.
func isBlank(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) == ""
}

// toFloat converts any built-in numeric type to float64.
func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func failOutcome(rule Rule, msg, key string, values map[string]any) ruleOutcome {
	if rule.errMsg != "" {
		msg = rule.errMsg
	}
	return ruleOutcome{errs: []ValidationError{{
		Message:           msg,
		TranslationKey:    key,
		TranslationValues: values,
	}}}
}

func warnOutcome(rule Rule, msg, key string, values map[string]any) ruleOutcome {
	if rule.warnMsg != "" {
		msg = rule.warnMsg
	}
	return ruleOutcome{warns: []ValidationError{{
		Message:           msg,
		TranslationKey:    key,
		TranslationValues: values,
	}}}
}

func cleanedOutcome(value any) ruleOutcome {
	return ruleOutcome{value: value, cleaned: true}
}

package validator

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
	"time"
)

// BalanceTolerance is the absolute allowance when cross-checking aggregate
// amounts that must agree, such as assets against liabilities plus equity.
const BalanceTolerance = 0.01

// Enumerations fixed by the record validators. Callers rely on these sets;
// they are part of the validation contract, not tunable configuration.
var (
	// ExpenseCategories is the canonical category set accepted by
	// ValidateExpense.
	ExpenseCategories = []string{
		"Rent/Lease", "Utilities", "Salaries & Wages", "Employee Benefits",
		"Insurance", "Marketing & Advertising", "Office Supplies",
		"Maintenance & Repairs", "Professional Fees", "Travel & Entertainment",
		"Raw Materials", "Inventory Purchases", "Freight & Shipping",
		"Equipment", "Property", "Vehicles", "Software",
		"Interest Expense", "Bank Fees", "Taxes",
		"Depreciation", "Amortization", "Other",
	}

	// FlowTypes is the activity classification accepted by
	// ValidateCashFlowEntry.
	FlowTypes = []string{"Operating", "Investing", "Financing"}

	// FlowDirections is the direction set accepted by
	// ValidateCashFlowEntry.
	FlowDirections = []string{"Inflow", "Outflow"}
)

// RecordResult maps field names (plus synthetic cross-check names such as
// "balance_check" and "date_range") to their validation results.
type RecordResult map[string]Result

// Valid reports whether every field and cross-check passed.
func (rr RecordResult) Valid() bool {
	for _, res := range rr {
		if !res.Valid {
			return false
		}
	}
	return true
}

// Errs flattens all field errors into a ValidationErrors value with field
// names filled in, ordered by field name for determinism.
func (rr RecordResult) Errs() ValidationErrors {
	var errs ValidationErrors
	for _, field := range rr.sortedFields() {
		for _, e := range rr[field].Errors {
			e.Field = field
			errs = append(errs, e)
		}
	}
	return errs
}

// Warns flattens all field warnings the same way Errs flattens errors.
func (rr RecordResult) Warns() ValidationErrors {
	var warns ValidationErrors
	for _, field := range rr.sortedFields() {
		for _, w := range rr[field].Warnings {
			w.Field = field
			warns = append(warns, w)
		}
	}
	return warns
}

func (rr RecordResult) sortedFields() []string {
	fields := make([]string, 0, len(rr))
	for field := range rr {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// fieldConfig fixes the rule list for one record field.
type fieldConfig struct {
	field string
	rules []Rule
}

// ValidateStatement checks a financial statement record: revenue and
// expenses are required positives, assets and liabilities positive, equity
// numeric. When assets, liabilities and equity are all present the
// "balance_check" entry verifies assets = liabilities + equity within
// BalanceTolerance.
func ValidateStatement(record map[string]any) RecordResult {
	return defaultValidator.ValidateStatement(record)
}

func (v *Validator) ValidateStatement(record map[string]any) RecordResult {
	configs := []fieldConfig{
		{"revenue", []Rule{Required(), Positive()}},
		{"expenses", []Rule{Required(), Positive()}},
		{"assets", []Rule{Positive()}},
		{"liabilities", []Rule{Positive()}},
		{"equity", []Rule{Numeric()}},
	}

	results := v.validateFields(record, configs)

	if hasAll(results, "assets", "liabilities", "equity") {
		assets := numericValue(results["assets"])
		liabilities := numericValue(results["liabilities"])
		equity := numericValue(results["equity"])

		if math.Abs(assets-(liabilities+equity)) > BalanceTolerance {
			results["balance_check"] = checkFailed(
				"Balance sheet doesn't balance: Assets ≠ Liabilities + Equity",
				"validation.balance_check",
			)
		} else {
			results["balance_check"] = checkPassed()
		}
	}

	return results
}

// ValidateRental checks a rental listing record. Lease dates that both
// parse feed the "date_range" entry: start on or after end fails, terms
// under 30 days or over five years warn.
func ValidateRental(record map[string]any) RecordResult {
	return defaultValidator.ValidateRental(record)
}

func (v *Validator) ValidateRental(record map[string]any) RecordResult {
	configs := []fieldConfig{
		{"monthly_rent", []Rule{Required(), Currency(), Positive()}},
		{"security_deposit", []Rule{Currency(), Positive()}},
		{"lease_start_date", []Rule{Required(), Date()}},
		{"lease_end_date", []Rule{Required(), Date()}},
		{"square_feet", []Rule{Positive(), Between(100, 50000)}},
		{"bedrooms", []Rule{Between(0, 20)}},
		{"bathrooms", []Rule{Between(0, 20)}},
	}

	results := v.validateFields(record, configs)

	startRes, okStart := results["lease_start_date"]
	endRes, okEnd := results["lease_end_date"]
	if okStart && okEnd && startRes.Valid && endRes.Valid {
		start, okS := dateValue(startRes)
		end, okE := dateValue(endRes)
		switch {
		case !okS || !okE:
			// Required passed on non-date input without a Date cleaning;
			// nothing to compare.
		case !start.Before(end):
			results["date_range"] = checkFailed(
				"Lease start date must be before end date",
				"validation.date_range",
			)
		default:
			days := int(end.Sub(start).Hours() / 24)
			switch {
			case days < 30:
				results["date_range"] = checkWarned("Very short lease term - please verify", "validation.lease_term")
			case days > 365*5:
				results["date_range"] = checkWarned("Very long lease term - please verify", "validation.lease_term")
			default:
				results["date_range"] = checkPassed()
			}
		}
	}

	return results
}

// ValidateExpense checks an expense record, including membership in
// ExpenseCategories. Valid amounts above 100000 add an "amount_check"
// warning entry.
func ValidateExpense(record map[string]any) RecordResult {
	return defaultValidator.ValidateExpense(record)
}

func (v *Validator) ValidateExpense(record map[string]any) RecordResult {
	configs := []fieldConfig{
		{"amount", []Rule{Required(), Currency(), Positive()}},
		{"date", []Rule{Required(), Date()}},
		{"vendor_id", []Rule{Required(), Length(1, 50)}},
		{"category", []Rule{Required()}},
		{"invoice_number", []Rule{MaxLength(50)}},
		{"description", []Rule{MaxLength(500)}},
	}

	results := v.validateFields(record, configs)

	if category, ok := record["category"]; ok {
		if s, isStr := category.(string); !isStr || !slices.Contains(ExpenseCategories, s) {
			results["category"] = checkFailed(
				fmt.Sprintf("Invalid category. Must be one of: %s", strings.Join(ExpenseCategories, ", ")),
				"validation.expense_category",
			)
		}
	}

	if amountRes, ok := results["amount"]; ok && amountRes.Valid {
		if amount := numericValue(amountRes); amount > 100000 {
			results["amount_check"] = checkWarned(
				"Large expense amount - please verify accuracy",
				"validation.amount_check",
			)
		}
	}

	return results
}

// ValidateCashFlowEntry checks a cash flow record, including membership in
// FlowTypes and FlowDirections.
func ValidateCashFlowEntry(record map[string]any) RecordResult {
	return defaultValidator.ValidateCashFlowEntry(record)
}

func (v *Validator) ValidateCashFlowEntry(record map[string]any) RecordResult {
	configs := []fieldConfig{
		{"amount", []Rule{Required(), Currency(), Positive()}},
		{"date", []Rule{Required(), Date()}},
		{"flow_type", []Rule{Required()}},
		{"direction", []Rule{Required()}},
		{"description", []Rule{Required(), Length(5, 200)}},
	}

	results := v.validateFields(record, configs)

	if flowType, ok := record["flow_type"]; ok {
		if s, isStr := flowType.(string); !isStr || !slices.Contains(FlowTypes, s) {
			results["flow_type"] = checkFailed(
				fmt.Sprintf("Flow type must be one of: %s", strings.Join(FlowTypes, ", ")),
				"validation.flow_type",
			)
		}
	}

	if direction, ok := record["direction"]; ok {
		if s, isStr := direction.(string); !isStr || !slices.Contains(FlowDirections, s) {
			results["direction"] = checkFailed(
				fmt.Sprintf("Direction must be one of: %s", strings.Join(FlowDirections, ", ")),
				"validation.flow_direction",
			)
		}
	}

	return results
}

// validateFields runs the configured rules for every field present in the
// record. Absent fields are not validated; pair Required rules with
// presence checks at the call site when absence itself is an error.
func (v *Validator) validateFields(record map[string]any, configs []fieldConfig) RecordResult {
	results := make(RecordResult, len(configs))
	for _, cfg := range configs {
		if value, ok := record[cfg.field]; ok {
			results[cfg.field] = v.Validate(value, cfg.rules...)
		}
	}
	return results
}

func checkFailed(msg, key string) Result {
	return Result{Errors: []ValidationError{{Message: msg, TranslationKey: key}}}
}

func checkWarned(msg, key string) Result {
	return Result{Valid: true, Warnings: []ValidationError{{Message: msg, TranslationKey: key}}}
}

func checkPassed() Result {
	return Result{Valid: true}
}

// numericValue extracts the cleaned numeric form of a field result,
// falling back to zero for anything non-numeric.
func numericValue(res Result) float64 {
	f, ok := toFloat(res.Value)
	if !ok {
		return 0
	}
	return f
}

func dateValue(res Result) (t time.Time, ok bool) {
	t, ok = res.Value.(time.Time)
	return t, ok
}

func hasAll(rr RecordResult, fields ...string) bool {
	for _, field := range fields {
		if _, ok := rr[field]; !ok {
			return false
		}
	}
	return true
}

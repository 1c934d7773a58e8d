// Package validator interprets ordered lists of declarative validation rules
// against raw financial input values such as spreadsheet cells, form fields,
// and imported records.
//
// Unlike schema validators that only answer pass/fail, every rule here may
// also normalize the value it checks: currency rules strip symbols and
// thousands separators, date rules parse strings into time.Time, email rules
// lowercase the address. A Validate call returns a Result carrying the
// verdict, every error and warning produced by every rule, and the final
// cleaned value.
//
// # Architecture
//
// Rules are data, not closures: each Rule holds a Kind from a closed set plus
// typed parameters, and the Validator dispatches on the Kind. Rule values are
// built with constructors (Required, Numeric, Positive, Currency, Date,
// Between, Length, Pattern, Custom, ...) and are immutable once constructed;
// WithMessage and WithWarning return modified copies. Each source file groups
// the kinds for one family (`numeric_rules.go`, `financial_rules.go`,
// `date_rules.go`, etc.).
//
// Core building blocks:
//   - Rule              – one declarative constraint/transform descriptor
//   - Result            – verdict, errors, warnings, cleaned value
//   - Validator         – immutable configuration (date layouts, phone
//     patterns, currency symbols) applied to every rule
//   - ValidationError   – describes a single failure and supports i18n keys
//   - ValidationErrors  – slice type that implements the error interface
//
// # Usage
//
//	res := validator.Validate("$1,234.56",
//	    validator.Required(),
//	    validator.Currency(),
//	    validator.Positive(),
//	)
//	if !res.Valid {
//	    // res.Errors holds every failure, in rule order
//	}
//	amount := res.Value.(float64) // 1234.56
//
// Rules apply strictly in list order and never short-circuit: a caller sees
// the full set of problems even when the first rule already failed. The one
// exception is an empty value (nil or ""), which only Required can fail;
// every other kind skips it so optional blank fields do not cascade into
// false failures. When several rules clean the value, the last cleaning wins
// in Result.Value; Result.Cleanings preserves the whole sequence.
//
// # Record Validation
//
// ValidateStatement, ValidateRental, ValidateExpense and
// ValidateCashFlowEntry bundle fixed per-field rule lists with cross-field
// checks (balance-sheet equality within BalanceTolerance, lease date
// ordering) over map records. ValidateTable and CleanColumns apply rule
// configurations across imported tabular data.
//
// # Error Handling
//
// Validation failures are values, never Go errors: Validate always returns a
// Result and Result.Valid is false exactly when Result.Errors is non-empty.
// Warnings never affect validity. RecordResult.Errs flattens field results
// into a ValidationErrors value that satisfies the error interface for
// callers that bubble failures up through error returns. The only panic is an
// unknown rule Kind reaching dispatch, which is a programming error rather
// than bad input.
package validator

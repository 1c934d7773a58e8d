// Package finkit is a toolkit of financial calculation packages for Go.
//
// Each package under pkg/ stands alone and holds its state in memory on
// behalf of the caller; there is no shared framework, storage layer, or
// network surface. Pick the packages you need and ignore the rest.
//
// Packages:
//
//   - pkg/validator: rule-based field validation with aggregated errors,
//     composite document validators, dataset cleaning, and parameter
//     checks for loan and NPV inputs
//   - pkg/ledger: double-entry journal with income statement, balance
//     sheet, trial balance, comparative statements, and ratio analysis
//   - pkg/cashflow: cash flow statements by activity, scenario
//     forecasting, burn and runway, liquidity and risk reporting
//   - pkg/expense: vendor and expense tracking with approval workflow,
//     budgets, spending forecasts, savings suggestions, and 1099 reports
//   - pkg/rental: property, unit, and lease management with rent roll,
//     vacancy analysis, NOI, multi-year projections, and comparables
//   - pkg/tax: US federal, self-employment, payroll, and state tax
//     calculations driven by embedded YAML year tables
//   - pkg/finmath: time value of money, investment analysis, loan
//     amortization, bond pricing, depreciation, and financial ratios
//   - pkg/money: cent rounding and currency/percent formatting shared by
//     the report renderers
//
// Basic Usage:
//
//	gl := ledger.New()
//	_ = gl.AddAccount(ledger.Account{Number: "1000", Name: "Cash", Type: ledger.Asset})
//	_ = gl.AddAccount(ledger.Account{Number: "4000", Name: "Revenue", Type: ledger.Revenue})
//
//	_, err := gl.Record(ledger.JournalEntry{
//		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
//		Description: "Cash sale",
//		Debits:      []ledger.Line{{Account: "1000", Amount: 1200}},
//		Credits:     []ledger.Line{{Account: "4000", Amount: 1200}},
//		Posted:      true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Print(gl.TrialBalance(time.Now()))
//
// The packages share a few conventions:
//   - construction with functional options, e.g. New(WithLogger(logger))
//   - explicit as-of and period arguments instead of wall-clock reads
//   - sentinel errors wrapped with %w, checked with errors.Is
//   - amounts as float64, rounded to cents only at report edges
package finkit

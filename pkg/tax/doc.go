// Package tax computes US business taxes: federal and state income tax,
// self-employment and payroll taxes, depreciation deductions, quarterly
// estimates and entity-level summaries.
//
// # Architecture
//
// All rates live in year tables embedded as YAML and parsed at
// construction, so a Calculator never consults mutable globals. The 2024
// tables ship with the package; WithTables swaps in another year:
//
//	tables, err := tax.ParseTables(data)
//	if err != nil {
//	    return err
//	}
//	calc := tax.New(tax.WithTables(tables))
//
// The Calculator also keeps plain in-memory registries of entities and
// depreciable assets for summary calculations. Registration assigns UUID
// identifiers when the caller does not provide them.
//
// # Usage
//
//	calc := tax.New()
//
//	federal := calc.FederalIncomeTax(75000, tax.Single)
//	// federal.TotalTax == 11807.50, federal.MarginalRate == 22
//
//	se := calc.SelfEmploymentTax(50000)
//	// se.DeductiblePortion is half of se.Total
//
//	id := calc.AddEntity(tax.Entity{Name: "Acme LLC", Type: tax.CCorp, State: "CA"})
//	summary, err := calc.BusinessTaxSummary(id, 2024, tax.FinancialData{Revenue: 500000, Expenses: 350000})
//
// Monetary results are rounded to cents; effective and marginal rates
// are percentages rounded to two decimals, as they would appear on a
// filing worksheet.
//
// # Error Handling
//
// Lookup failures return sentinel errors (ErrEntityNotFound,
// ErrAssetNotFound, ErrStateNotSupported, ErrNotInService,
// ErrUnknownMethod) wrapped with the offending identifier; test them
// with errors.Is. Pure rate calculations cannot fail and return values
// directly.
package tax

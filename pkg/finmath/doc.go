// Package finmath provides investment, loan, depreciation and ratio
// mathematics for accounting and finance workloads.
//
// The package is stateless: every calculation is a pure function of its
// arguments, so the helpers are safe for concurrent use. Rates are always
// decimals (0.05 for five percent) and cash flow series are ordered by
// period, with the first element at time zero unless a function documents
// otherwise.
//
// The functions are grouped into several areas:
//
//   - Investment appraisal – NPV, IRR, MIRR, payback periods and the
//     profitability index.
//
//   - Loans – periodic payment and full amortization schedules at
//     monthly, quarterly, semi-annual or annual frequencies.
//
//   - Time value – future/present value for lump sums and annuities,
//     effective annual rate.
//
//   - Pricing – bond pricing, Macaulay duration, CAPM and WACC.
//
//   - Depreciation – straight-line, declining balance, sum-of-years
//     digits, units of production and the standard MACRS tables.
//
//   - Ratios – liquidity, leverage, profitability and efficiency ratios.
//
// # Usage
//
//	import "github.com/dmitrymomot/finkit/pkg/finmath"
//
//	npv, err := finmath.NPVWithInitial(0.10, 500, []float64{100, 200, 300})
//	if err != nil {
//	    return err
//	}
//
//	schedule := finmath.AmortizationSchedule(250000, 0.065, 30, finmath.Monthly)
//	payment := schedule[0].Payment
//
// # Error Handling
//
// Functions that can fail return sentinel errors from this package:
// ErrEmptyCashFlows, ErrNoConvergence, ErrZeroInvestment, ErrZeroCapital,
// ErrInvalidLife, ErrZeroUnits and ErrUnknownRecovery. Check them with
// errors.Is. Ratio helpers never fail; they follow accounting convention
// and report +Inf for ratios over a zero base (such as interest coverage
// with no interest expense) or 0 where the measure is undefined.
package finmath

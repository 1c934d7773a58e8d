// Package cashflow tracks dated cash movements and derives cash flow
// statements, forecasts, burn-rate and runway reports, Cash Flow at
// Risk, liquidity, and working capital analyses from them.
//
// # Architecture
//
// An Analyzer is a plain in-memory container: items go in through Add,
// reports come out of pure computations over the recorded history.
// Every report takes its reference date as an argument, so results are
// reproducible and there is no hidden clock. Amounts are recorded
// positive with a Direction; signs are applied when aggregating.
//
// # Usage
//
//	cf := cashflow.New(cashflow.WithOpeningBalance(100000))
//
//	cf.Add(cashflow.Item{
//	    Date:      time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
//	    Amount:    50000,
//	    Type:      cashflow.Operating,
//	    Direction: cashflow.Inflow,
//	    Category:  "Sales Revenue",
//	})
//
//	stmt := cf.Statement(start, end)
//	forecast := cf.Forecast(asOf, 12, nil) // nil means DefaultScenarios
//	burn, err := cf.BurnAnalysis(asOf, 6)
//
// Forecasts scale historical monthly averages per scenario, with a
// seasonal calendar applied to operating flows only. Burn trend
// compares the latest three months against the window average.
//
// # Error Handling
//
// Analyses that need history return sentinel errors when it is missing:
// ErrNoData for an empty burn window, ErrInsufficientHistory for Cash
// Flow at Risk with fewer than 30 items. Test them with errors.Is. The
// remaining reports tolerate empty input and return zero values, with
// ratios going +Inf where the denominator vanishes.
package cashflow

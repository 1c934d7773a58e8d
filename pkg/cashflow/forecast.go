package cashflow

import (
	"sort"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// DefaultScenarios returns the standard three-way scenario factors used
// by Forecast when the caller passes none.
func DefaultScenarios() map[string]float64 {
	return map[string]float64{
		"base":         1.0,
		"conservative": 0.9,
		"optimistic":   1.1,
	}
}

// ForecastPoint is one scenario's projection for one month.
type ForecastPoint struct {
	Operating float64
	Investing float64
	Financing float64
	Net       float64
	Balance   float64
}

// ForecastMonth carries every scenario's projection for a single future
// month.
type ForecastMonth struct {
	Month     string
	Date      time.Time
	Scenarios map[string]ForecastPoint
}

// Forecast projects monthly cash flows for monthsAhead months after
// from, one projection per scenario factor. Each scenario runs its own
// balance starting at the current balance. Operating flows follow the
// seasonal calendar; investing and financing do not.
func (a *Analyzer) Forecast(from time.Time, monthsAhead int, scenarios map[string]float64) []ForecastMonth {
	if monthsAhead <= 0 {
		return nil
	}
	if len(scenarios) == 0 {
		scenarios = DefaultScenarios()
	}

	avg := a.monthlyAverages()
	balances := make(map[string]float64, len(scenarios))
	for name := range scenarios {
		balances[name] = a.CurrentBalance()
	}

	months := make([]ForecastMonth, 0, monthsAhead)
	for offset := 1; offset <= monthsAhead; offset++ {
		forecastDate := addMonths(from, offset)
		seasonal := seasonalFactor(forecastDate.Month())

		month := ForecastMonth{
			Month:     monthKey(forecastDate),
			Date:      forecastDate,
			Scenarios: make(map[string]ForecastPoint, len(scenarios)),
		}
		for name, factor := range scenarios {
			operating := avg.operating * seasonal * factor
			investing := avg.investing * factor
			financing := avg.financing * factor
			net := operating + investing + financing
			balances[name] += net

			month.Scenarios[name] = ForecastPoint{
				Operating: money.RoundCents(operating),
				Investing: money.RoundCents(investing),
				Financing: money.RoundCents(financing),
				Net:       money.RoundCents(net),
				Balance:   money.RoundCents(balances[name]),
			}
		}
		months = append(months, month)
	}
	return months
}

// Adjustments parameterizes one scenario for ScenarioAnalysis.
// Multipliers scale the historical monthly averages; build from
// DefaultAdjustments so unset multipliers stay at 1.
type Adjustments struct {
	OperatingMultiplier  float64
	InvestingMultiplier  float64
	FinancingMultiplier  float64
	OneTimeCashInjection float64
}

// DefaultAdjustments returns neutral adjustments: all multipliers 1, no
// injection.
func DefaultAdjustments() Adjustments {
	return Adjustments{OperatingMultiplier: 1, InvestingMultiplier: 1, FinancingMultiplier: 1}
}

// ScenarioMonth is one row of a scenario projection.
type ScenarioMonth struct {
	Scenario     string
	Month        string
	Operating    float64
	Investing    float64
	Financing    float64
	Net          float64
	Balance      float64
	RunwayMonths float64
}

// ScenarioAnalysis projects each named scenario over monthsAhead months
// after from. Cash injections land in the first month. Rows are grouped
// by scenario in name order, months ascending within each. Runway is
// +Inf while the scenario's operating flow is non-negative.
func (a *Analyzer) ScenarioAnalysis(from time.Time, scenarios map[string]Adjustments, monthsAhead int) []ScenarioMonth {
	if monthsAhead <= 0 || len(scenarios) == 0 {
		return nil
	}

	avg := a.monthlyAverages()
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]ScenarioMonth, 0, monthsAhead*len(names))
	for _, name := range names {
		adj := scenarios[name]
		balance := a.CurrentBalance()

		for offset := 1; offset <= monthsAhead; offset++ {
			forecastDate := addMonths(from, offset)

			operating := avg.operating * adj.OperatingMultiplier
			investing := avg.investing * adj.InvestingMultiplier
			financing := avg.financing * adj.FinancingMultiplier

			var injection float64
			if offset == 1 {
				injection = adj.OneTimeCashInjection
			}

			net := operating + investing + financing + injection
			balance += net

			row := ScenarioMonth{
				Scenario:     name,
				Month:        monthKey(forecastDate),
				Operating:    money.RoundCents(operating),
				Investing:    money.RoundCents(investing),
				Financing:    money.RoundCents(financing),
				Net:          money.RoundCents(net),
				Balance:      money.RoundCents(balance),
				RunwayMonths: infinity,
			}
			if operating < 0 {
				row.RunwayMonths = roundTenth(balance / -operating)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// monthlyTotals holds per-activity averages over the months that carry
// any recorded flow.
type monthlyTotals struct {
	operating float64
	investing float64
	financing float64
}

// monthlyAverages computes the average net flow per calendar month for
// each activity. Months with flows of any type count toward every
// activity's denominator, so a quiet month drags the average down.
func (a *Analyzer) monthlyAverages() monthlyTotals {
	if len(a.flows) == 0 {
		return monthlyTotals{}
	}

	perMonth := make(map[string]*monthlyTotals)
	for _, cf := range a.flows {
		key := monthKey(cf.Date)
		totals, ok := perMonth[key]
		if !ok {
			totals = &monthlyTotals{}
			perMonth[key] = totals
		}
		switch cf.Type {
		case Operating:
			totals.operating += cf.signed()
		case Investing:
			totals.investing += cf.signed()
		case Financing:
			totals.financing += cf.signed()
		}
	}

	var sum monthlyTotals
	for _, totals := range perMonth {
		sum.operating += totals.operating
		sum.investing += totals.investing
		sum.financing += totals.financing
	}
	n := float64(len(perMonth))
	return monthlyTotals{
		operating: sum.operating / n,
		investing: sum.investing / n,
		financing: sum.financing / n,
	}
}

// seasonalFactor scales operating flows by the usual small-business
// calendar: quarter closes run hot, summers run slow, December peaks.
func seasonalFactor(m time.Month) float64 {
	switch m {
	case time.January, time.February:
		return 0.95
	case time.March, time.June, time.September:
		return 1.05
	case time.July, time.August:
		return 0.9
	case time.November:
		return 1.1
	case time.December:
		return 1.15
	default:
		return 1.0
	}
}

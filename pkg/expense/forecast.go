package expense

import (
	"sort"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// Forecast weighting: recent months dominate.
const (
	weightLast3  = 0.5
	weightLast6  = 0.3
	weightLast12 = 0.2
)

// ForecastMonth is one month of projected spend with a ±10% band.
type ForecastMonth struct {
	Month    string
	Forecast float64
	Low      float64
	High     float64
}

// Forecast projects monthly spend for monthsAhead months after asOf,
// from a moving average over the trailing year (three-, six-, and
// twelve-month averages weighted 0.5/0.3/0.2). November and December
// run 15% hot, July and August 10% cold. Returns nil without history.
func (t *Tracker) Forecast(asOf time.Time, monthsAhead int) []ForecastMonth {
	start := asOf.AddDate(0, 0, -365)

	totals := make(map[string]float64)
	for _, e := range t.expenses {
		if between(e.Date, start, asOf) {
			totals[e.Date.Format("2006-01")] += e.Amount
		}
	}
	if len(totals) == 0 || monthsAhead <= 0 {
		return nil
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	tailAvg := func(n int) float64 {
		if n > len(months) {
			n = len(months)
		}
		var sum float64
		for _, month := range months[len(months)-n:] {
			sum += totals[month]
		}
		return sum / float64(n)
	}

	base := tailAvg(3)*weightLast3 + tailAvg(6)*weightLast6 + tailAvg(len(months))*weightLast12

	forecast := make([]ForecastMonth, 0, monthsAhead)
	for offset := 1; offset <= monthsAhead; offset++ {
		forecastDate := addMonths(asOf, offset)
		amount := base * expenseSeasonalFactor(forecastDate.Month())
		forecast = append(forecast, ForecastMonth{
			Month:    forecastDate.Format("2006-01"),
			Forecast: money.RoundCents(amount),
			Low:      money.RoundCents(amount * 0.9),
			High:     money.RoundCents(amount * 1.1),
		})
	}
	return forecast
}

// expenseSeasonalFactor reflects holiday-season spending and the summer
// lull.
func expenseSeasonalFactor(m time.Month) float64 {
	switch m {
	case time.November, time.December:
		return 1.15
	case time.July, time.August:
		return 0.9
	default:
		return 1.0
	}
}

// addMonths advances by whole calendar months, clamping to the last day
// of shorter months.
func addMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

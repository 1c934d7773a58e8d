package cashflow

import (
	"math"
	"sort"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// Burn trend labels.
const (
	TrendImproving        = "Improving"
	TrendWorsening        = "Worsening"
	TrendInsufficientData = "Insufficient Data"
)

// MonthlyBurn is one month's gross flows and net burn. NetBurn is
// positive when the month consumed cash.
type MonthlyBurn struct {
	Month    string
	Inflows  float64
	Outflows float64
	NetBurn  float64
}

// BurnReport summarizes burn rate, runway, and trend over a trailing
// window. RunwayMonths is +Inf while the business is cash positive.
type BurnReport struct {
	CurrentCash    float64
	AverageBurn    float64
	RunwayMonths   float64
	Trend          string
	Monthly        []MonthlyBurn
	Volatility     float64
	Recommendation string
}

// BurnAnalysis computes the burn report over the monthsBack months
// ending at asOf (30-day months, matching the trailing-window
// convention). It returns ErrNoData when the window holds no items.
func (a *Analyzer) BurnAnalysis(asOf time.Time, monthsBack int) (BurnReport, error) {
	if monthsBack <= 0 {
		monthsBack = 6
	}
	start := asOf.AddDate(0, 0, -30*monthsBack)

	perMonth := make(map[string]*MonthlyBurn)
	for _, cf := range a.flows {
		if cf.Date.Before(start) || cf.Date.After(asOf) {
			continue
		}
		key := monthKey(cf.Date)
		burn, ok := perMonth[key]
		if !ok {
			burn = &MonthlyBurn{Month: key}
			perMonth[key] = burn
		}
		if cf.Direction == Inflow {
			burn.Inflows += cf.Amount
		} else {
			burn.Outflows += cf.Amount
		}
	}
	if len(perMonth) == 0 {
		return BurnReport{}, ErrNoData
	}

	monthly := make([]MonthlyBurn, 0, len(perMonth))
	var totalBurn float64
	for _, burn := range perMonth {
		burn.NetBurn = burn.Outflows - burn.Inflows
		totalBurn += burn.NetBurn
		monthly = append(monthly, *burn)
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Month < monthly[j].Month })

	averageBurn := totalBurn / float64(len(monthly))

	report := BurnReport{
		CurrentCash: money.RoundCents(a.CurrentBalance()),
		AverageBurn: money.RoundCents(averageBurn),
		Monthly:     monthly,
		Trend:       TrendInsufficientData,
	}

	if averageBurn > 0 {
		report.RunwayMonths = roundTenth(a.CurrentBalance() / averageBurn)
	} else {
		report.RunwayMonths = infinity
	}

	if len(monthly) >= 3 {
		var recent float64
		for _, burn := range monthly[len(monthly)-3:] {
			recent += burn.NetBurn
		}
		recent /= 3
		if recent < averageBurn {
			report.Trend = TrendImproving
		} else {
			report.Trend = TrendWorsening
		}
	}

	report.Volatility = money.RoundCents(sampleStdDev(netBurns(monthly)))
	report.Recommendation = burnRecommendation(report.RunwayMonths)
	return report, nil
}

func netBurns(monthly []MonthlyBurn) []float64 {
	values := make([]float64, len(monthly))
	for i, burn := range monthly {
		values[i] = burn.NetBurn
	}
	return values
}

// burnRecommendation maps runway to the standard advice tiers.
func burnRecommendation(runwayMonths float64) string {
	switch {
	case math.IsInf(runwayMonths, 1):
		return "Cash positive - focus on growth investments"
	case runwayMonths > 18:
		return "Healthy cash position - monitor trends"
	case runwayMonths > 12:
		return "Adequate runway - consider efficiency improvements"
	case runwayMonths > 6:
		return "Moderate concern - reduce burn or secure funding"
	default:
		return "Critical - immediate action required"
	}
}

// sampleStdDev is the n-1 standard deviation; 0 for fewer than two
// samples.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var sumSq float64
	for _, v := range values {
		sumSq += (v - mean) * (v - mean)
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

// populationStdDev is the n-denominator standard deviation used for
// distribution risk measures.
func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var sumSq float64
	for _, v := range values {
		sumSq += (v - mean) * (v - mean)
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

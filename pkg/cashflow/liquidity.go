package cashflow

import (
	"math"
	"strings"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// Liquidity status tiers.
const (
	LiquidityExcellent = "Excellent"
	LiquidityGood      = "Good"
	LiquidityAdequate  = "Adequate"
	LiquidityTight     = "Tight"
	LiquidityCritical  = "Critical"
)

// minimumCashMonths is how many months of operating outflows the
// business should keep covered.
const minimumCashMonths = 1.5

// LiquidityReport measures cash and credit against the minimum cash
// requirement. Ratio and days are +Inf when the requirement is zero.
type LiquidityReport struct {
	CurrentCash     float64
	AvailableCredit float64
	TotalLiquidity  float64
	MinimumCash     float64
	LiquidityRatio  float64
	Status          string
	DaysCashOnHand  float64
}

// LiquidityAnalysis sizes total liquidity (bank balances plus undrawn
// credit) against one-and-a-half months of average operating outflows.
func (a *Analyzer) LiquidityAnalysis() LiquidityReport {
	var currentCash float64
	for _, balance := range a.bankAccounts {
		currentCash += balance
	}
	var availableCredit float64
	for _, line := range a.creditLines {
		availableCredit += line.Limit - line.Outstanding
	}

	monthlyOutflows := math.Abs(a.monthlyAverages().operating)
	minimumCash := monthlyOutflows * minimumCashMonths
	totalLiquidity := currentCash + availableCredit

	report := LiquidityReport{
		CurrentCash:     money.RoundCents(currentCash),
		AvailableCredit: money.RoundCents(availableCredit),
		TotalLiquidity:  money.RoundCents(totalLiquidity),
		MinimumCash:     money.RoundCents(minimumCash),
		LiquidityRatio:  infinity,
		DaysCashOnHand:  infinity,
	}
	if minimumCash > 0 {
		report.LiquidityRatio = money.RoundCents(totalLiquidity / minimumCash)
	}
	if monthlyOutflows > 0 {
		report.DaysCashOnHand = roundTenth(currentCash / (monthlyOutflows / 30))
	}
	report.Status = liquidityStatus(report.LiquidityRatio)
	return report
}

func liquidityStatus(ratio float64) string {
	switch {
	case ratio >= 3.0:
		return LiquidityExcellent
	case ratio >= 2.0:
		return LiquidityGood
	case ratio >= 1.5:
		return LiquidityAdequate
	case ratio >= 1.0:
		return LiquidityTight
	default:
		return LiquidityCritical
	}
}

// Working capital efficiency labels.
const (
	EfficiencyGood             = "Good"
	EfficiencyNeedsImprovement = "Needs Improvement"
)

// defaultConversionCycleDays stands in when the flow history cannot
// support a collection-period estimate.
const defaultConversionCycleDays = 30

// WorkingCapitalReport summarizes operating cash efficiency over a
// period.
type WorkingCapitalReport struct {
	Period             string
	TotalRevenue       float64
	OperatingExpenses  float64
	OperatingCashFlow  float64
	OperatingMarginPct float64
	CashConversionDays float64
	Efficiency         string
}

// WorkingCapital analyzes operating flows within [start, end]. Revenue
// is any operating category containing "revenue"; everything else
// counts as operating expense. The cash conversion cycle is estimated
// from revenue-to-payment date gaps and falls back to 30 days when the
// history has no usable pairs.
func (a *Analyzer) WorkingCapital(start, end time.Time) WorkingCapitalReport {
	var operating []Item
	for _, cf := range a.flows {
		if cf.Type != Operating || cf.Date.Before(start) || cf.Date.After(end) {
			continue
		}
		operating = append(operating, cf)
	}

	var totalRevenue, totalExpenses float64
	for _, cf := range operating {
		if isRevenueCategory(cf.Category) {
			if cf.Direction == Inflow {
				totalRevenue += cf.Amount
			}
		} else if cf.Direction == Outflow {
			totalExpenses += cf.Amount
		}
	}

	operatingCashFlow := totalRevenue - totalExpenses
	cycle := estimateConversionCycle(operating)

	report := WorkingCapitalReport{
		Period:             start.Format("2006-01-02") + " to " + end.Format("2006-01-02"),
		TotalRevenue:       money.RoundCents(totalRevenue),
		OperatingExpenses:  money.RoundCents(totalExpenses),
		OperatingCashFlow:  money.RoundCents(operatingCashFlow),
		CashConversionDays: roundTenth(cycle),
		Efficiency:         EfficiencyNeedsImprovement,
	}
	if totalRevenue > 0 {
		report.OperatingMarginPct = money.RoundCents(operatingCashFlow / totalRevenue * 100)
	}
	if cycle < 30 {
		report.Efficiency = EfficiencyGood
	}
	return report
}

func isRevenueCategory(category string) bool {
	return strings.Contains(strings.ToLower(category), "revenue")
}

// estimateConversionCycle pairs revenue dates with payment dates in
// order and averages the positive gaps. Real AR/AP aging would do
// better; this is a coarse timing proxy.
func estimateConversionCycle(flows []Item) float64 {
	var revenueDates, paymentDates []time.Time
	for _, cf := range flows {
		category := strings.ToLower(cf.Category)
		if strings.Contains(category, "revenue") {
			revenueDates = append(revenueDates, cf.Date)
		}
		if strings.Contains(category, "payment") {
			paymentDates = append(paymentDates, cf.Date)
		}
	}
	if len(revenueDates) == 0 || len(paymentDates) == 0 {
		return defaultConversionCycleDays
	}

	pairs := len(revenueDates)
	if len(paymentDates) < pairs {
		pairs = len(paymentDates)
	}
	var total float64
	var count int
	for i := 0; i < pairs; i++ {
		days := paymentDates[i].Sub(revenueDates[i]).Hours() / 24
		if days > 0 {
			total += days
			count++
		}
	}
	if count == 0 {
		return defaultConversionCycleDays
	}
	return total / float64(count)
}

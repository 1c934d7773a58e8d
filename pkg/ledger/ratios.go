package ledger

import (
	"math"
	"time"

	"github.com/dmitrymomot/finkit/pkg/finmath"
	"github.com/dmitrymomot/finkit/pkg/money"
)

// RatioReport combines liquidity, leverage, and profitability ratios
// computed from the balance sheet as of a date and the year-to-date
// income statement. Ratios that divide by zero come back +Inf.
type RatioReport struct {
	AsOf               time.Time
	CurrentRatio       float64
	QuickRatio         float64
	DebtToEquity       float64
	DebtToAssets       float64
	EquityMultiplier   float64
	GrossMarginPct     float64
	OperatingMarginPct float64
	NetMarginPct       float64
	ReturnOnAssetsPct  float64
	ReturnOnEquityPct  float64
}

// RatioAnalysis computes the standard ratio set as of a date. Income
// figures cover January 1 of that year through asOf.
func (l *Ledger) RatioAnalysis(asOf time.Time) RatioReport {
	sheet := l.BalanceSheet(asOf)
	yearStart := time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, asOf.Location())
	stmt := l.IncomeStatement(yearStart, asOf)

	var inventory float64
	for _, line := range sheet.CurrentAssets.Lines {
		if l.accounts[line.AccountNumber].Name == "Inventory" {
			inventory += line.Amount
		}
	}

	report := RatioReport{
		AsOf:               asOf,
		CurrentRatio:       finmath.CurrentRatio(sheet.CurrentAssets.Total, sheet.CurrentLiabilities.Total),
		QuickRatio:         finmath.QuickRatio(sheet.CurrentAssets.Total, inventory, sheet.CurrentLiabilities.Total),
		DebtToEquity:       finmath.DebtToEquity(sheet.TotalLiabilities, sheet.TotalEquity),
		GrossMarginPct:     stmt.GrossMarginPct,
		OperatingMarginPct: stmt.OperatingMarginPct,
		NetMarginPct:       stmt.NetMarginPct,
		ReturnOnAssetsPct:  money.RoundCents(finmath.ReturnOnAssets(stmt.NetIncome, sheet.TotalAssets) * 100),
		ReturnOnEquityPct:  money.RoundCents(finmath.ReturnOnEquity(stmt.NetIncome, sheet.TotalEquity) * 100),
	}

	if sheet.TotalAssets != 0 {
		report.DebtToAssets = roundRatio(sheet.TotalLiabilities / sheet.TotalAssets)
	}
	if sheet.TotalEquity != 0 {
		report.EquityMultiplier = roundRatio(sheet.TotalAssets / sheet.TotalEquity)
	} else {
		report.EquityMultiplier = math.Inf(1)
	}
	report.CurrentRatio = roundRatio(report.CurrentRatio)
	report.QuickRatio = roundRatio(report.QuickRatio)
	report.DebtToEquity = roundRatio(report.DebtToEquity)

	return report
}

// roundRatio rounds to two decimals but leaves infinities alone.
func roundRatio(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	return money.RoundCents(v)
}

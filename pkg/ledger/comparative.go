package ledger

import (
	"math"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// Period is an inclusive date range for comparative reporting.
type Period struct {
	Start time.Time
	End   time.Time
}

// Label renders the period as "YYYY-MM to YYYY-MM".
func (p Period) Label() string {
	return p.Start.Format("2006-01") + " to " + p.End.Format("2006-01")
}

// PeriodVariance holds percentage changes versus the previous period.
// A zero previous value yields a zero variance for that measure.
type PeriodVariance struct {
	RevenuePct         float64
	GrossProfitPct     float64
	OperatingIncomePct float64
	NetIncomePct       float64
}

// ComparativePeriod is one column of a comparative income statement.
// Variance is nil for the first period.
type ComparativePeriod struct {
	Period             string
	TotalRevenue       float64
	TotalCOGS          float64
	GrossProfit        float64
	GrossMarginPct     float64
	OperatingExpenses  float64
	OperatingIncome    float64
	OperatingMarginPct float64
	NetIncome          float64
	NetMarginPct       float64
	Variance           *PeriodVariance
}

// ComparativeIncomeStatement summarizes the income statement for each
// period in order, attaching period-over-period variance percentages
// from the second period on.
func (l *Ledger) ComparativeIncomeStatement(periods []Period) []ComparativePeriod {
	out := make([]ComparativePeriod, 0, len(periods))
	for i, p := range periods {
		stmt := l.IncomeStatement(p.Start, p.End)
		col := ComparativePeriod{
			Period:             p.Label(),
			TotalRevenue:       stmt.Revenue.Total,
			TotalCOGS:          stmt.CostOfGoodsSold.Total,
			GrossProfit:        stmt.GrossProfit,
			GrossMarginPct:     stmt.GrossMarginPct,
			OperatingExpenses:  stmt.OperatingExpenses.Total,
			OperatingIncome:    stmt.OperatingIncome,
			OperatingMarginPct: stmt.OperatingMarginPct,
			NetIncome:          stmt.NetIncome,
			NetMarginPct:       stmt.NetMarginPct,
		}
		if i > 0 {
			prev := out[i-1]
			col.Variance = &PeriodVariance{
				RevenuePct:         variancePct(col.TotalRevenue, prev.TotalRevenue),
				GrossProfitPct:     variancePct(col.GrossProfit, prev.GrossProfit),
				OperatingIncomePct: variancePct(col.OperatingIncome, prev.OperatingIncome),
				NetIncomePct:       variancePct(col.NetIncome, prev.NetIncome),
			}
		}
		out = append(out, col)
	}
	return out
}

// variancePct computes the percentage change from previous to current,
// relative to the previous magnitude so declines from negative bases
// still read negative.
func variancePct(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return money.RoundCents((current - previous) / math.Abs(previous) * 100)
}

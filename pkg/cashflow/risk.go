package cashflow

import (
	"fmt"
	"math"
	"sort"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// minRiskSamples is the smallest history that supports a CFaR estimate.
const minRiskSamples = 30

// RiskReport is the Cash Flow at Risk result: the daily net flow that
// will not be undercut at the given confidence, plus the expected
// shortfall (average of the tail beyond it).
type RiskReport struct {
	ConfidenceLevel   float64
	CashFlowAtRisk    float64
	ExpectedShortfall float64
	Volatility        float64
	Interpretation    string
}

// CashFlowAtRisk estimates the daily-flow percentile at the given
// confidence level (0.95 gives the 5th percentile), the value-at-risk
// analogue for operating cash. It needs at least 30 recorded items and
// returns ErrInsufficientHistory below that.
func (a *Analyzer) CashFlowAtRisk(confidence float64) (RiskReport, error) {
	if len(a.flows) < minRiskSamples {
		return RiskReport{}, fmt.Errorf("%w: need %d items, have %d", ErrInsufficientHistory, minRiskSamples, len(a.flows))
	}

	daily := make(map[string]float64)
	for _, cf := range a.flows {
		daily[cf.Date.Format("2006-01-02")] += cf.signed()
	}
	values := make([]float64, 0, len(daily))
	for _, v := range daily {
		values = append(values, v)
	}
	sort.Float64s(values)

	cfar := percentile(values, (1-confidence)*100)

	var tailSum float64
	var tailCount int
	for _, v := range values {
		if v <= cfar {
			tailSum += v
			tailCount++
		}
	}
	shortfall := tailSum / float64(tailCount)

	return RiskReport{
		ConfidenceLevel:   confidence,
		CashFlowAtRisk:    money.RoundCents(cfar),
		ExpectedShortfall: money.RoundCents(shortfall),
		Volatility:        money.RoundCents(populationStdDev(values)),
		Interpretation: fmt.Sprintf("With %g%% confidence, daily cash flow will not be worse than %s",
			confidence*100, money.Currency(math.Abs(money.RoundCents(cfar)))),
	}, nil
}

// percentile computes the p-th percentile of sorted values with linear
// interpolation between ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 || p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

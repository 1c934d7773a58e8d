package finmath

import "math"

// NPV discounts the series at the given rate and returns its net present
// value. The first element is the time-zero flow and is not discounted.
func NPV(rate float64, cashFlows []float64) (float64, error) {
	if len(cashFlows) == 0 {
		return 0, ErrEmptyCashFlows
	}
	return npvAt(rate, cashFlows), nil
}

// NPVWithInitial prepends the investment as a time-zero outflow, shifting
// the series to start at period one. A zero investment discounts the
// series as-is, exactly like NPV.
func NPVWithInitial(rate, initialInvestment float64, cashFlows []float64) (float64, error) {
	if initialInvestment == 0 {
		return NPV(rate, cashFlows)
	}
	flows := make([]float64, 0, len(cashFlows)+1)
	flows = append(flows, -initialInvestment)
	flows = append(flows, cashFlows...)
	return NPV(rate, flows)
}

// IRR returns the rate at which the series' net present value is zero. It
// tries Newton-Raphson from a conventional 10% guess and falls back to
// bisection over a wide bracket when the iteration diverges. The series
// must contain at least one inflow and one outflow.
func IRR(cashFlows []float64) (float64, error) {
	if len(cashFlows) == 0 {
		return 0, ErrEmptyCashFlows
	}

	var hasInflow, hasOutflow bool
	for _, cf := range cashFlows {
		if cf > 0 {
			hasInflow = true
		}
		if cf < 0 {
			hasOutflow = true
		}
	}
	if !hasInflow || !hasOutflow {
		return 0, ErrNoConvergence
	}

	rate := 0.1
	for i := 0; i < 100; i++ {
		npv := npvAt(rate, cashFlows)
		if math.Abs(npv) < 1e-9 {
			return rate, nil
		}

		deriv := npvSlopeAt(rate, cashFlows)
		if deriv == 0 || math.IsNaN(deriv) || math.IsInf(deriv, 0) {
			break
		}

		next := rate - npv/deriv
		if math.IsNaN(next) || next <= -1 {
			break
		}
		if math.Abs(next-rate) < 1e-10 {
			return next, nil
		}
		rate = next
	}

	return bisectIRR(cashFlows)
}

func bisectIRR(cashFlows []float64) (float64, error) {
	lo, hi := -0.9999, 10.0
	fLo := npvAt(lo, cashFlows)
	if fLo*npvAt(hi, cashFlows) > 0 {
		return 0, ErrNoConvergence
	}

	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		fMid := npvAt(mid, cashFlows)
		if math.Abs(fMid) < 1e-9 || (hi-lo)/2 < 1e-10 {
			return mid, nil
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return 0, ErrNoConvergence
}

// MIRR returns the modified internal rate of return, financing outflows
// at financeRate and reinvesting inflows at reinvestRate.
func MIRR(cashFlows []float64, financeRate, reinvestRate float64) (float64, error) {
	if len(cashFlows) == 0 {
		return 0, ErrEmptyCashFlows
	}

	inflows := make([]float64, len(cashFlows))
	outflows := make([]float64, len(cashFlows))
	var hasInflow, hasOutflow bool
	for i, cf := range cashFlows {
		if cf > 0 {
			inflows[i] = cf
			hasInflow = true
		}
		if cf < 0 {
			outflows[i] = cf
			hasOutflow = true
		}
	}
	if !hasInflow || !hasOutflow {
		return 0, ErrNoConvergence
	}

	n := float64(len(cashFlows))
	numer := math.Abs(npvAt(reinvestRate, inflows))
	denom := math.Abs(npvAt(financeRate, outflows))
	return math.Pow(numer/denom, 1/(n-1))*(1+reinvestRate) - 1, nil
}

// PaybackPeriod returns the fractional number of periods needed for the
// cumulative flows to recover the initial investment. The second return is
// false when the series never recovers it.
func PaybackPeriod(initialInvestment float64, cashFlows []float64) (float64, bool) {
	cumulative := -initialInvestment
	for i, flow := range cashFlows {
		before := cumulative
		cumulative += flow
		if cumulative >= 0 {
			if flow != 0 {
				return float64(i) + -before/flow, true
			}
			return float64(i), true
		}
	}
	return 0, false
}

// DiscountedPaybackPeriod is PaybackPeriod over flows discounted at the
// given rate, with the first flow one period out.
func DiscountedPaybackPeriod(initialInvestment float64, cashFlows []float64, rate float64) (float64, bool) {
	cumulative := -initialInvestment
	for i, flow := range cashFlows {
		discounted := flow / math.Pow(1+rate, float64(i+1))
		before := cumulative
		cumulative += discounted
		if cumulative >= 0 {
			if discounted != 0 {
				return float64(i) + -before/discounted, true
			}
			return float64(i), true
		}
	}
	return 0, false
}

// ProfitabilityIndex returns the present value of the future flows (first
// flow one period out) per unit of initial investment.
func ProfitabilityIndex(initialInvestment float64, cashFlows []float64, rate float64) (float64, error) {
	if len(cashFlows) == 0 {
		return 0, ErrEmptyCashFlows
	}
	if initialInvestment == 0 {
		return 0, ErrZeroInvestment
	}

	var pv float64
	for i, flow := range cashFlows {
		pv += flow / math.Pow(1+rate, float64(i+1))
	}
	return pv / initialInvestment, nil
}

// npvAt discounts with the first flow at time zero.
func npvAt(rate float64, cashFlows []float64) float64 {
	var npv float64
	for i, flow := range cashFlows {
		npv += flow / math.Pow(1+rate, float64(i))
	}
	return npv
}

func npvSlopeAt(rate float64, cashFlows []float64) float64 {
	var slope float64
	for i, flow := range cashFlows {
		if i == 0 {
			continue
		}
		slope -= float64(i) * flow / math.Pow(1+rate, float64(i+1))
	}
	return slope
}

package finmath

import "math"

// BondPrice returns the price of a coupon bond as the present value of its
// coupons and face value. frequency is coupon payments per year, typically
// 2 for semi-annual bonds.
func BondPrice(faceValue, couponRate, yieldRate float64, years, frequency int) float64 {
	periods := years * frequency
	coupon := faceValue * couponRate / float64(frequency)
	periodYield := yieldRate / float64(frequency)

	var pvCoupons float64
	for i := 1; i <= periods; i++ {
		pvCoupons += coupon / math.Pow(1+periodYield, float64(i))
	}
	return pvCoupons + faceValue/math.Pow(1+periodYield, float64(periods))
}

// TimedCashFlow pairs a cash flow with the time, in years, at which it
// arrives.
type TimedCashFlow struct {
	Time   float64
	Amount float64
}

// MacaulayDuration returns the present-value weighted average time of the
// flows, or 0 when the flows have no present value.
func MacaulayDuration(flows []TimedCashFlow, yieldRate float64) float64 {
	var totalPV, weightedPV float64
	for _, cf := range flows {
		pv := cf.Amount / math.Pow(1+yieldRate, cf.Time)
		totalPV += pv
		weightedPV += cf.Time * pv
	}
	if totalPV == 0 {
		return 0
	}
	return weightedPV / totalPV
}

// CAPM returns the expected return on an asset under the capital asset
// pricing model.
func CAPM(riskFreeRate, beta, marketReturn float64) float64 {
	return riskFreeRate + beta*(marketReturn-riskFreeRate)
}

// WACC returns the weighted average cost of capital with the debt side
// adjusted for the tax shield.
func WACC(equityValue, debtValue, costOfEquity, costOfDebt, taxRate float64) (float64, error) {
	total := equityValue + debtValue
	if total == 0 {
		return 0, ErrZeroCapital
	}

	equityWeight := equityValue / total
	debtWeight := debtValue / total
	return equityWeight*costOfEquity + debtWeight*costOfDebt*(1-taxRate), nil
}

package finmath

import "math"

// EffectiveAnnualRate converts a nominal rate compounded the given number
// of times per year into the equivalent annual rate.
func EffectiveAnnualRate(nominalRate float64, compoundingPeriods int) float64 {
	n := float64(compoundingPeriods)
	return math.Pow(1+nominalRate/n, n) - 1
}

// FutureValue compounds a lump sum forward by the given number of periods.
func FutureValue(presentValue, rate float64, periods int) float64 {
	return presentValue * math.Pow(1+rate, float64(periods))
}

// PresentValue discounts a lump sum back by the given number of periods.
func PresentValue(futureValue, rate float64, periods int) float64 {
	return futureValue / math.Pow(1+rate, float64(periods))
}

// FutureValueAnnuity compounds a level end-of-period payment stream.
func FutureValueAnnuity(payment, rate float64, periods int) float64 {
	if rate == 0 {
		return payment * float64(periods)
	}
	return payment * (math.Pow(1+rate, float64(periods)) - 1) / rate
}

// PresentValueAnnuity discounts a level end-of-period payment stream.
func PresentValueAnnuity(payment, rate float64, periods int) float64 {
	if rate == 0 {
		return payment * float64(periods)
	}
	return payment * (1 - math.Pow(1+rate, -float64(periods))) / rate
}

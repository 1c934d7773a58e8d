package finmath

import "math"

// Frequency selects how many loan payments fall in a year.
type Frequency string

const (
	Monthly    Frequency = "monthly"
	Quarterly  Frequency = "quarterly"
	SemiAnnual Frequency = "semi-annually"
	Annual     Frequency = "annually"
)

// periodsPerYear defaults unknown frequencies to monthly.
func (f Frequency) periodsPerYear() int {
	switch f {
	case Quarterly:
		return 4
	case SemiAnnual:
		return 2
	case Annual:
		return 1
	default:
		return 12
	}
}

// AmortizationRow is one period of a loan schedule. Amounts are rounded
// to cents; Balance never goes below zero.
type AmortizationRow struct {
	Period    int
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

// Payment returns the level periodic payment that amortizes the principal
// over the term. A zero rate spreads the principal evenly. Non-positive
// terms return 0.
func Payment(principal, annualRate float64, years int, freq Frequency) float64 {
	n := years * freq.periodsPerYear()
	if n <= 0 {
		return 0
	}

	rate := annualRate / float64(freq.periodsPerYear())
	if rate == 0 {
		return principal / float64(n)
	}
	return principal * rate / (1 - math.Pow(1+rate, -float64(n)))
}

// AmortizationSchedule generates the full payment schedule for a loan.
// Interest accrues on the running balance each period and the remainder of
// the level payment retires principal. Non-positive terms produce a nil
// schedule.
func AmortizationSchedule(principal, annualRate float64, years int, freq Frequency) []AmortizationRow {
	n := years * freq.periodsPerYear()
	if n <= 0 {
		return nil
	}

	rate := annualRate / float64(freq.periodsPerYear())
	payment := Payment(principal, annualRate, years, freq)

	schedule := make([]AmortizationRow, 0, n)
	balance := principal
	for period := 1; period <= n; period++ {
		interest := balance * rate
		principalPart := payment - interest
		balance -= principalPart

		schedule = append(schedule, AmortizationRow{
			Period:    period,
			Payment:   roundCents(payment),
			Principal: roundCents(principalPart),
			Interest:  roundCents(interest),
			Balance:   roundCents(math.Max(0, balance)),
		})
	}
	return schedule
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

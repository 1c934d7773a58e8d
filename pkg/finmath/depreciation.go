package finmath

import "fmt"

// macrsRates holds the IRS half-year convention percentage tables for the
// common recovery periods. Each table spans recovery period + 1 years and
// sums to 1.
var macrsRates = map[int][]float64{
	3:  {0.3333, 0.4445, 0.1481, 0.0741},
	5:  {0.2000, 0.3200, 0.1920, 0.1152, 0.1152, 0.0576},
	7:  {0.1429, 0.2449, 0.1749, 0.1249, 0.0893, 0.0892, 0.0893, 0.0446},
	10: {0.1000, 0.1800, 0.1440, 0.1152, 0.0922, 0.0737, 0.0655, 0.0655, 0.0656, 0.0655, 0.0328},
}

// StraightLine spreads the depreciable base evenly over the useful life.
func StraightLine(cost, salvageValue float64, usefulLife int) ([]float64, error) {
	if usefulLife <= 0 {
		return nil, ErrInvalidLife
	}

	annual := (cost - salvageValue) / float64(usefulLife)
	schedule := make([]float64, usefulLife)
	for i := range schedule {
		schedule[i] = annual
	}
	return schedule, nil
}

// DecliningBalance depreciates the running book value at factor divided by
// the useful life each year, never below salvage. A factor of 2 gives the
// double-declining method. The schedule is zero padded to the full life
// once salvage is reached.
func DecliningBalance(cost, salvageValue float64, usefulLife int, factor float64) ([]float64, error) {
	if usefulLife <= 0 {
		return nil, ErrInvalidLife
	}

	annualRate := factor / float64(usefulLife)
	schedule := make([]float64, 0, usefulLife)
	bookValue := cost

	for i := 0; i < usefulLife; i++ {
		depreciation := bookValue * annualRate
		if bookValue-depreciation < salvageValue {
			depreciation = bookValue - salvageValue
		}
		schedule = append(schedule, depreciation)
		bookValue -= depreciation

		if bookValue <= salvageValue {
			break
		}
	}

	for len(schedule) < usefulLife {
		schedule = append(schedule, 0)
	}
	return schedule, nil
}

// SumOfYearsDigits front-loads depreciation by weighting each year with
// the remaining life over the digit sum.
func SumOfYearsDigits(cost, salvageValue float64, usefulLife int) ([]float64, error) {
	if usefulLife <= 0 {
		return nil, ErrInvalidLife
	}

	base := cost - salvageValue
	digitSum := usefulLife * (usefulLife + 1) / 2

	schedule := make([]float64, 0, usefulLife)
	for year := usefulLife; year >= 1; year-- {
		schedule = append(schedule, base*float64(year)/float64(digitSum))
	}
	return schedule, nil
}

// UnitsOfProduction depreciates in proportion to usage per period against
// the asset's lifetime unit capacity.
func UnitsOfProduction(cost, salvageValue float64, totalUnits int, unitsPerPeriod []int) ([]float64, error) {
	if totalUnits <= 0 {
		return nil, ErrZeroUnits
	}

	ratePerUnit := (cost - salvageValue) / float64(totalUnits)
	schedule := make([]float64, len(unitsPerPeriod))
	for i, units := range unitsPerPeriod {
		schedule[i] = float64(units) * ratePerUnit
	}
	return schedule, nil
}

// MACRS applies the half-year convention table for the recovery period to
// the full cost. Salvage value is ignored under MACRS. Only the 3, 5, 7
// and 10 year tables are published here.
func MACRS(cost float64, recoveryPeriod int) ([]float64, error) {
	rates, ok := macrsRates[recoveryPeriod]
	if !ok {
		return nil, fmt.Errorf("%w: %d years", ErrUnknownRecovery, recoveryPeriod)
	}

	schedule := make([]float64, len(rates))
	for i, rate := range rates {
		schedule[i] = cost * rate
	}
	return schedule, nil
}

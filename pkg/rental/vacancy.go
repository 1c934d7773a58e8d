package rental

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// daysPerMonth converts monthly rent to a daily rate in occupancy math.
const daysPerMonth = 30

// VacancyReport measures lost occupancy and lost rent over a period.
// Physical vacancy counts empty unit-days; economic vacancy compares
// rent actually earned against every unit earning market rent all
// period.
type VacancyReport struct {
	PhysicalVacancyRate float64
	EconomicVacancyRate float64
	VacantUnitDays      int
	TotalUnitDays       int
	PotentialRent       float64
	ActualRent          float64
	VacancyLoss         float64
}

// VacancyAnalysis walks [start, end] one day at a time for each of the
// property's units. Occupied days accrue the lease's escalated rent at
// a 30-day daily rate, every day accrues market rent as potential, and
// uncovered days count as vacant.
func (m *Manager) VacancyAnalysis(propertyID string, start, end time.Time) (VacancyReport, error) {
	if _, ok := m.properties[propertyID]; !ok {
		return VacancyReport{}, fmt.Errorf("%w: %s", ErrPropertyNotFound, propertyID)
	}

	units := m.propertyUnits(propertyID)
	days := daysBetween(start, end) + 1
	report := VacancyReport{TotalUnitDays: len(units) * days}

	var potential, actual float64
	for _, unit := range units {
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			if lease, ok := m.activeLease(unit.ID, day); ok {
				actual += lease.CurrentRent(day) / daysPerMonth
			} else {
				report.VacantUnitDays++
			}
			potential += unit.MarketRent / daysPerMonth
		}
	}

	if report.TotalUnitDays > 0 {
		report.PhysicalVacancyRate = money.RoundCents(float64(report.VacantUnitDays) / float64(report.TotalUnitDays) * 100)
	}
	if potential > 0 {
		report.EconomicVacancyRate = money.RoundCents((potential - actual) / potential * 100)
	}
	report.PotentialRent = money.RoundCents(potential)
	report.ActualRent = money.RoundCents(actual)
	report.VacancyLoss = money.RoundCents(potential - actual)
	return report, nil
}

package rental

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// Operating expense assumptions as shares of gross rental income;
// marketing scales with vacancy loss instead, since empty units drive
// advertising spend.
const (
	managementRatio  = 0.08
	maintenanceRatio = 0.10
	insuranceRatio   = 0.05
	propertyTaxRatio = 0.15
	utilitiesRatio   = 0.03
	adminRatio       = 0.02
	marketingRatio   = 0.20
)

// NOIStatement is a property's annual net operating income build-up.
type NOIStatement struct {
	Year                   int
	GrossRentalIncome      float64
	VacancyLoss            float64
	EffectiveRentalIncome  float64
	OtherIncome            float64
	TotalRevenue           float64
	OperatingExpenses      map[string]float64
	TotalOperatingExpenses float64
	NetOperatingIncome     float64
	OperatingExpenseRatio  float64
	NOIMargin              float64
}

// NOI computes a property's net operating income for a calendar year.
// Each active lease bills its escalated rent once per month it touches
// (months run through the 28th) plus its additional charges. Operating
// expenses apply the ratio assumptions above; vacancy loss comes from
// the full-year vacancy analysis.
func (m *Manager) NOI(propertyID string, year int) (NOIStatement, error) {
	if _, ok := m.properties[propertyID]; !ok {
		return NOIStatement{}, fmt.Errorf("%w: %s", ErrPropertyNotFound, propertyID)
	}

	var rentalIncome, otherIncome float64
	for _, unit := range m.propertyUnits(propertyID) {
		for month := time.January; month <= time.December; month++ {
			monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			monthEnd := time.Date(year, month, 28, 0, 0, 0, 0, time.UTC)
			for _, l := range m.leases {
				if l.UnitID != unit.ID || l.Status != LeaseActive ||
					l.Start.After(monthEnd) || l.End.Before(monthStart) {
					continue
				}
				rentalIncome += l.CurrentRent(monthStart)
				for _, charge := range l.AdditionalCharges {
					otherIncome += charge
				}
			}
		}
	}

	vacancy, err := m.VacancyAnalysis(propertyID,
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return NOIStatement{}, err
	}

	effective := rentalIncome - vacancy.VacancyLoss
	totalRevenue := effective + otherIncome

	expenses := map[string]float64{
		"Property Management":   money.RoundCents(rentalIncome * managementRatio),
		"Maintenance & Repairs": money.RoundCents(rentalIncome * maintenanceRatio),
		"Insurance":             money.RoundCents(rentalIncome * insuranceRatio),
		"Property Taxes":        money.RoundCents(rentalIncome * propertyTaxRatio),
		"Utilities":             money.RoundCents(rentalIncome * utilitiesRatio),
		"Administrative":        money.RoundCents(rentalIncome * adminRatio),
		"Marketing":             money.RoundCents(vacancy.VacancyLoss * marketingRatio),
	}
	var totalExpenses float64
	for _, amount := range expenses {
		totalExpenses += amount
	}
	noi := totalRevenue - totalExpenses

	stmt := NOIStatement{
		Year:                   year,
		GrossRentalIncome:      money.RoundCents(rentalIncome),
		VacancyLoss:            vacancy.VacancyLoss,
		EffectiveRentalIncome:  money.RoundCents(effective),
		OtherIncome:            money.RoundCents(otherIncome),
		TotalRevenue:           money.RoundCents(totalRevenue),
		OperatingExpenses:      expenses,
		TotalOperatingExpenses: money.RoundCents(totalExpenses),
		NetOperatingIncome:     money.RoundCents(noi),
	}
	if totalRevenue > 0 {
		stmt.OperatingExpenseRatio = money.RoundCents(totalExpenses / totalRevenue * 100)
		stmt.NOIMargin = money.RoundCents(noi / totalRevenue * 100)
	}
	return stmt, nil
}

// CapRate is the year's NOI as a percentage of the property value,
// zero for a non-positive value.
func (m *Manager) CapRate(propertyID string, propertyValue float64, year int) (float64, error) {
	stmt, err := m.NOI(propertyID, year)
	if err != nil {
		return 0, err
	}
	if propertyValue <= 0 {
		return 0, nil
	}
	return money.RoundCents(stmt.NetOperatingIncome / propertyValue * 100), nil
}

package rental_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/finkit/pkg/rental"
)

type testLease struct {
	unit       int
	rent, rate float64
	start, end time.Time
}

// leasedProperty builds a one-property manager with a unit per market
// rent (numbered A, B, ...) and an active lease per entry.
func leasedProperty(t *testing.T, marketRents []float64, leases []testLease) (*rental.Manager, string) {
	t.Helper()
	mgr := rental.New()
	propertyID := mgr.AddProperty(rental.Property{Name: "Test Property"})
	tenantID := mgr.AddTenant(rental.Tenant{Name: "Tenant"})

	unitIDs := make([]string, len(marketRents))
	for i, rent := range marketRents {
		id, err := mgr.AddUnit(rental.Unit{
			PropertyID: propertyID,
			Number:     string(rune('A' + i)),
			SquareFeet: 800,
			Bedrooms:   2,
			MarketRent: rent,
		})
		require.NoError(t, err)
		unitIDs[i] = id
	}
	for _, l := range leases {
		_, err := mgr.AddLease(rental.Lease{
			UnitID:         unitIDs[l.unit],
			TenantID:       tenantID,
			Start:          l.start,
			End:            l.end,
			MonthlyRent:    l.rent,
			Status:         rental.LeaseActive,
			EscalationRate: l.rate,
		})
		require.NoError(t, err)
	}
	return mgr, propertyID
}

func TestVacancyAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("one of two units vacant", func(t *testing.T) {
		t.Parallel()

		mgr, propertyID := leasedProperty(t, []float64{1500, 1200}, []testLease{
			{unit: 0, rent: 1500, start: date(2024, 1, 1), end: date(2024, 12, 31)},
		})

		report, err := mgr.VacancyAnalysis(propertyID, date(2024, 1, 1), date(2024, 1, 31))
		require.NoError(t, err)

		assert.Equal(t, 62, report.TotalUnitDays)
		assert.Equal(t, 31, report.VacantUnitDays)
		assert.InDelta(t, 50.0, report.PhysicalVacancyRate, 1e-9)
		assert.InDelta(t, 1550.0, report.ActualRent, 1e-9)
		assert.InDelta(t, 2790.0, report.PotentialRent, 1e-9)
		assert.InDelta(t, 1240.0, report.VacancyLoss, 1e-9)
		assert.InDelta(t, 44.44, report.EconomicVacancyRate, 1e-9)
	})

	t.Run("mid-month move-out", func(t *testing.T) {
		t.Parallel()

		mgr, propertyID := leasedProperty(t, []float64{1500}, []testLease{
			{unit: 0, rent: 1500, start: date(2024, 1, 1), end: date(2024, 1, 15)},
		})

		report, err := mgr.VacancyAnalysis(propertyID, date(2024, 1, 1), date(2024, 1, 31))
		require.NoError(t, err)

		assert.Equal(t, 16, report.VacantUnitDays)
		assert.InDelta(t, 51.61, report.PhysicalVacancyRate, 1e-9)
		assert.InDelta(t, 750.0, report.ActualRent, 1e-9)
		assert.InDelta(t, 800.0, report.VacancyLoss, 1e-9)
		assert.InDelta(t, 51.61, report.EconomicVacancyRate, 1e-9)
	})

	t.Run("escalated rent can beat market", func(t *testing.T) {
		t.Parallel()

		mgr, propertyID := leasedProperty(t, []float64{1500}, []testLease{
			{unit: 0, rent: 1500, rate: 0.10, start: date(2023, 1, 1), end: date(2024, 12, 31)},
		})

		report, err := mgr.VacancyAnalysis(propertyID, date(2024, 1, 1), date(2024, 1, 31))
		require.NoError(t, err)

		assert.Equal(t, 0, report.VacantUnitDays)
		assert.InDelta(t, 1705.0, report.ActualRent, 1e-9, "a year of 10% escalation outruns market rent")
		assert.InDelta(t, 1550.0, report.PotentialRent, 1e-9)
		assert.InDelta(t, -155.0, report.VacancyLoss, 1e-9)
		assert.InDelta(t, -10.0, report.EconomicVacancyRate, 1e-9)
	})

	t.Run("unknown property", func(t *testing.T) {
		t.Parallel()

		mgr := rental.New()
		_, err := mgr.VacancyAnalysis("nope", date(2024, 1, 1), date(2024, 1, 31))
		require.ErrorIs(t, err, rental.ErrPropertyNotFound)
	})
}

package rental_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/finkit/pkg/rental"
)

func TestNOI(t *testing.T) {
	t.Parallel()

	t.Run("fully occupied year", func(t *testing.T) {
		t.Parallel()

		mgr := rental.New()
		propertyID := mgr.AddProperty(rental.Property{Name: "Sunset Apartments"})
		unitID, err := mgr.AddUnit(rental.Unit{PropertyID: propertyID, Number: "101", SquareFeet: 850, Bedrooms: 2, MarketRent: 1500})
		require.NoError(t, err)
		tenantID := mgr.AddTenant(rental.Tenant{Name: "John Doe"})
		_, err = mgr.AddLease(rental.Lease{
			UnitID:            unitID,
			TenantID:          tenantID,
			Start:             date(2024, 1, 1),
			End:               date(2024, 12, 31),
			MonthlyRent:       1500,
			Status:            rental.LeaseActive,
			AdditionalCharges: map[string]float64{"Parking": 50},
		})
		require.NoError(t, err)

		stmt, err := mgr.NOI(propertyID, 2024)
		require.NoError(t, err)

		assert.InDelta(t, 18000.0, stmt.GrossRentalIncome, 1e-9)
		assert.InDelta(t, 0.0, stmt.VacancyLoss, 1e-9)
		assert.InDelta(t, 18000.0, stmt.EffectiveRentalIncome, 1e-9)
		assert.InDelta(t, 600.0, stmt.OtherIncome, 1e-9, "parking bills every month")
		assert.InDelta(t, 18600.0, stmt.TotalRevenue, 1e-9)

		assert.InDelta(t, 1440.0, stmt.OperatingExpenses["Property Management"], 1e-9)
		assert.InDelta(t, 1800.0, stmt.OperatingExpenses["Maintenance & Repairs"], 1e-9)
		assert.InDelta(t, 900.0, stmt.OperatingExpenses["Insurance"], 1e-9)
		assert.InDelta(t, 2700.0, stmt.OperatingExpenses["Property Taxes"], 1e-9)
		assert.InDelta(t, 540.0, stmt.OperatingExpenses["Utilities"], 1e-9)
		assert.InDelta(t, 360.0, stmt.OperatingExpenses["Administrative"], 1e-9)
		assert.InDelta(t, 0.0, stmt.OperatingExpenses["Marketing"], 1e-9, "no vacancy, no marketing spend")
		assert.InDelta(t, 7740.0, stmt.TotalOperatingExpenses, 1e-9)

		assert.InDelta(t, 10860.0, stmt.NetOperatingIncome, 1e-9)
		assert.InDelta(t, 41.61, stmt.OperatingExpenseRatio, 1e-9)
		assert.InDelta(t, 58.39, stmt.NOIMargin, 1e-9)
	})

	t.Run("half-year vacancy drags revenue negative", func(t *testing.T) {
		t.Parallel()

		mgr, propertyID := leasedProperty(t, []float64{1500}, []testLease{
			{unit: 0, rent: 1500, start: date(2024, 1, 1), end: date(2024, 6, 30)},
		})

		stmt, err := mgr.NOI(propertyID, 2024)
		require.NoError(t, err)

		assert.InDelta(t, 9000.0, stmt.GrossRentalIncome, 1e-9, "June still bills, July does not")
		assert.InDelta(t, 9200.0, stmt.VacancyLoss, 1e-9)
		assert.InDelta(t, -200.0, stmt.EffectiveRentalIncome, 1e-9)
		assert.InDelta(t, -200.0, stmt.TotalRevenue, 1e-9)
		assert.InDelta(t, 1840.0, stmt.OperatingExpenses["Marketing"], 1e-9, "20% of the vacancy loss")
		assert.InDelta(t, 5710.0, stmt.TotalOperatingExpenses, 1e-9)
		assert.InDelta(t, -5910.0, stmt.NetOperatingIncome, 1e-9)
		assert.Zero(t, stmt.OperatingExpenseRatio, "ratios are meaningless without revenue")
		assert.Zero(t, stmt.NOIMargin)
	})

	t.Run("unknown property", func(t *testing.T) {
		t.Parallel()

		mgr := rental.New()
		_, err := mgr.NOI("nope", 2024)
		require.ErrorIs(t, err, rental.ErrPropertyNotFound)
	})
}

func TestCapRate(t *testing.T) {
	t.Parallel()

	mgr := rental.New()
	propertyID := mgr.AddProperty(rental.Property{Name: "Sunset Apartments"})
	unitID, err := mgr.AddUnit(rental.Unit{PropertyID: propertyID, Number: "101", SquareFeet: 850, Bedrooms: 2, MarketRent: 1500})
	require.NoError(t, err)
	tenantID := mgr.AddTenant(rental.Tenant{Name: "John Doe"})
	_, err = mgr.AddLease(rental.Lease{
		UnitID:            unitID,
		TenantID:          tenantID,
		Start:             date(2024, 1, 1),
		End:               date(2024, 12, 31),
		MonthlyRent:       1500,
		Status:            rental.LeaseActive,
		AdditionalCharges: map[string]float64{"Parking": 50},
	})
	require.NoError(t, err)

	t.Run("noi over value", func(t *testing.T) {
		t.Parallel()

		rate, err := mgr.CapRate(propertyID, 150000, 2024)
		require.NoError(t, err)
		assert.InDelta(t, 7.24, rate, 1e-9)
	})

	t.Run("zero value", func(t *testing.T) {
		t.Parallel()

		rate, err := mgr.CapRate(propertyID, 0, 2024)
		require.NoError(t, err)
		assert.Zero(t, rate)
	})

	t.Run("unknown property", func(t *testing.T) {
		t.Parallel()

		_, err := mgr.CapRate("nope", 150000, 2024)
		require.ErrorIs(t, err, rental.ErrPropertyNotFound)
	})
}

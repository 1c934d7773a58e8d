package rental_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/finkit/pkg/rental"
)

// projectionProperty holds one unit leased at market rent through 2026,
// which yields a flat 10,260 NOI every year before growth.
func projectionProperty(t *testing.T) (*rental.Manager, string) {
	t.Helper()
	mgr := rental.New()
	propertyID := mgr.AddProperty(rental.Property{Name: "Sunset Apartments"})
	unitID, err := mgr.AddUnit(rental.Unit{PropertyID: propertyID, Number: "101", SquareFeet: 850, Bedrooms: 2, MarketRent: 1500})
	require.NoError(t, err)
	tenantID := mgr.AddTenant(rental.Tenant{Name: "John Doe"})
	_, err = mgr.AddLease(rental.Lease{
		UnitID:      unitID,
		TenantID:    tenantID,
		Start:       date(2024, 1, 1),
		End:         date(2026, 12, 31),
		MonthlyRent: 1500,
		Status:      rental.LeaseActive,
	})
	require.NoError(t, err)
	return mgr, propertyID
}

func TestCashFlowProjection(t *testing.T) {
	t.Parallel()

	t.Run("all-cash purchase", func(t *testing.T) {
		t.Parallel()

		mgr, propertyID := projectionProperty(t)
		years, err := mgr.CashFlowProjection(propertyID, 2024, 3, 27500, rental.Loan{})
		require.NoError(t, err)
		require.Len(t, years, 3)

		y1 := years[0]
		assert.Equal(t, 2024, y1.Year)
		assert.InDelta(t, 10260.0, y1.NOI, 1e-9)
		assert.Zero(t, y1.DebtService)
		assert.InDelta(t, 10260.0, y1.BeforeTaxCashFlow, 1e-9)
		assert.InDelta(t, 1000.0, y1.Depreciation, 1e-9, "27,500 over 27.5 years")
		assert.InDelta(t, 2315.0, y1.Taxes, 1e-9)
		assert.InDelta(t, 7945.0, y1.AfterTaxCashFlow, 1e-9)

		y2 := years[1]
		assert.Equal(t, 2025, y2.Year)
		assert.InDelta(t, 10567.8, y2.NOI, 1e-9, "3% growth on year one")
		assert.InDelta(t, 2391.95, y2.Taxes, 1e-9)
		assert.InDelta(t, 8175.85, y2.AfterTaxCashFlow, 1e-9)

		y3 := years[2]
		assert.Equal(t, 2026, y3.Year)
		assert.InDelta(t, 10884.83, y3.NOI, 1e-9)
		assert.InDelta(t, 2471.21, y3.Taxes, 1e-9)
		assert.InDelta(t, 8413.63, y3.AfterTaxCashFlow, 1e-9)
	})

	t.Run("financed purchase", func(t *testing.T) {
		t.Parallel()

		mgr, propertyID := projectionProperty(t)
		loan := rental.Loan{Amount: 100000, Rate: 0.06, TermYears: 30}
		years, err := mgr.CashFlowProjection(propertyID, 2024, 1, 27500, loan)
		require.NoError(t, err)
		require.Len(t, years, 1)

		y1 := years[0]
		assert.InDelta(t, 7194.61, y1.DebtService, 1e-9)
		assert.InDelta(t, 3065.39, y1.BeforeTaxCashFlow, 1e-9)
		assert.InDelta(t, 516.35, y1.Taxes, 1e-9)
		assert.InDelta(t, 2549.05, y1.AfterTaxCashFlow, 1e-9)
	})

	t.Run("negative taxable income owes no tax", func(t *testing.T) {
		t.Parallel()

		mgr, propertyID := projectionProperty(t)
		loan := rental.Loan{Amount: 150000, Rate: 0.06, TermYears: 30}
		years, err := mgr.CashFlowProjection(propertyID, 2024, 1, 27500, loan)
		require.NoError(t, err)
		require.Len(t, years, 1)

		y1 := years[0]
		assert.InDelta(t, -531.91, y1.BeforeTaxCashFlow, 1e-9, "debt service exceeds NOI")
		assert.Zero(t, y1.Taxes)
		assert.InDelta(t, -531.91, y1.AfterTaxCashFlow, 1e-9)
	})

	t.Run("zero years", func(t *testing.T) {
		t.Parallel()

		mgr, propertyID := projectionProperty(t)
		years, err := mgr.CashFlowProjection(propertyID, 2024, 0, 27500, rental.Loan{})
		require.NoError(t, err)
		assert.Empty(t, years)
	})

	t.Run("unknown property", func(t *testing.T) {
		t.Parallel()

		mgr := rental.New()
		_, err := mgr.CashFlowProjection("nope", 2024, 3, 27500, rental.Loan{})
		require.ErrorIs(t, err, rental.ErrPropertyNotFound)
	})
}

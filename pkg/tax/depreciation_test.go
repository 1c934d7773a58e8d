package tax_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/finkit/pkg/tax"
)

func TestDepreciationDeduction(t *testing.T) {
	t.Parallel()

	placed := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("section 179 expenses the full cost", func(t *testing.T) {
		calc := tax.New()
		id := calc.AddAsset(tax.Asset{
			Description:     "Delivery van",
			PlacedInService: placed,
			Cost:            45000,
			UsefulLife:      5,
			Method:          tax.Section179,
		})

		deduction, err := calc.DepreciationDeduction(id, 2024)
		require.NoError(t, err)
		assert.InDelta(t, 45000, deduction.AnnualDeduction, 1e-9)
		assert.Zero(t, deduction.RemainingBasis)
		assert.InDelta(t, 45000, deduction.TotalToDate, 1e-9)
	})

	t.Run("section 179 caps at the annual limit", func(t *testing.T) {
		calc := tax.New()
		id := calc.AddAsset(tax.Asset{
			Description:     "Production line",
			PlacedInService: placed,
			Cost:            2000000,
			Method:          tax.Section179,
		})

		deduction, err := calc.DepreciationDeduction(id, 2024)
		require.NoError(t, err)
		assert.InDelta(t, 1220000, deduction.AnnualDeduction, 1e-9)
	})

	t.Run("macrs follows the half-year table", func(t *testing.T) {
		calc := tax.New()
		id := calc.AddAsset(tax.Asset{
			Description:     "Server hardware",
			PlacedInService: placed,
			Cost:            50000,
			UsefulLife:      5,
			Method:          tax.MACRS,
		})

		first, err := calc.DepreciationDeduction(id, 2024)
		require.NoError(t, err)
		assert.InDelta(t, 10000, first.AnnualDeduction, 1e-9, "year one at 20%")
		assert.InDelta(t, 40000, first.RemainingBasis, 1e-9)

		third, err := calc.DepreciationDeduction(id, 2026)
		require.NoError(t, err)
		assert.InDelta(t, 9600, third.AnnualDeduction, 1e-9, "year three at 19.2%")
		assert.InDelta(t, 35600, third.TotalToDate, 1e-9)
		assert.InDelta(t, 14400, third.RemainingBasis, 1e-9)

		exhausted, err := calc.DepreciationDeduction(id, 2035)
		require.NoError(t, err)
		assert.Zero(t, exhausted.AnnualDeduction)
		assert.InDelta(t, 50000, exhausted.TotalToDate, 0.01)
		assert.InDelta(t, 0, exhausted.RemainingBasis, 0.01)
	})

	t.Run("straight line spreads the cost evenly", func(t *testing.T) {
		calc := tax.New()
		id := calc.AddAsset(tax.Asset{
			Description:     "Office furniture",
			PlacedInService: placed,
			Cost:            30000,
			UsefulLife:      5,
			Method:          tax.StraightLine,
		})

		deduction, err := calc.DepreciationDeduction(id, 2026)
		require.NoError(t, err)
		assert.InDelta(t, 6000, deduction.AnnualDeduction, 1e-9)
		assert.InDelta(t, 18000, deduction.TotalToDate, 1e-9, "three years in service")
		assert.InDelta(t, 12000, deduction.RemainingBasis, 1e-9)
	})

	t.Run("unknown asset fails", func(t *testing.T) {
		_, err := tax.New().DepreciationDeduction("missing", 2024)
		require.ErrorIs(t, err, tax.ErrAssetNotFound)
	})

	t.Run("year before service fails", func(t *testing.T) {
		calc := tax.New()
		id := calc.AddAsset(tax.Asset{
			PlacedInService: placed,
			Cost:            10000,
			Method:          tax.Section179,
		})

		_, err := calc.DepreciationDeduction(id, 2023)
		require.ErrorIs(t, err, tax.ErrNotInService)
	})

	t.Run("bonus depreciation is not supported", func(t *testing.T) {
		calc := tax.New()
		id := calc.AddAsset(tax.Asset{
			PlacedInService: placed,
			Cost:            10000,
			Method:          tax.BonusDepreciation,
		})

		_, err := calc.DepreciationDeduction(id, 2024)
		require.ErrorIs(t, err, tax.ErrUnknownMethod)
	})
}

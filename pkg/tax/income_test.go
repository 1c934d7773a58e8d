package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/finkit/pkg/tax"
)

func TestFederalIncomeTax(t *testing.T) {
	t.Parallel()

	calc := tax.New()

	t.Run("single filer across three brackets", func(t *testing.T) {
		result := calc.FederalIncomeTax(75000, tax.Single)

		assert.InDelta(t, 11807.50, result.TotalTax, 1e-9)
		assert.InDelta(t, 15.74, result.EffectiveRate, 1e-9)
		assert.InDelta(t, 22, result.MarginalRate, 1e-9)

		require.Len(t, result.Detail, 3)
		assert.Equal(t, "$0 - $11,000", result.Detail[0].IncomeRange)
		assert.Equal(t, "10.0%", result.Detail[0].Rate)
		assert.InDelta(t, 1100, result.Detail[0].Tax, 1e-9)
		assert.Equal(t, "$44,725 - $75,000", result.Detail[2].IncomeRange)
		assert.InDelta(t, 6660.50, result.Detail[2].Tax, 1e-9)
	})

	t.Run("married filing jointly uses wider brackets", func(t *testing.T) {
		result := calc.FederalIncomeTax(100000, tax.MarriedFilingJointly)

		assert.InDelta(t, 12615, result.TotalTax, 1e-9)
		assert.InDelta(t, 22, result.MarginalRate, 1e-9)
		assert.Less(t, result.TotalTax, calc.FederalIncomeTax(100000, tax.Single).TotalTax)
	})

	t.Run("top bracket income", func(t *testing.T) {
		result := calc.FederalIncomeTax(600000, tax.Single)

		assert.InDelta(t, 182336.00, result.TotalTax, 0.01)
		assert.InDelta(t, 37, result.MarginalRate, 1e-9)
		assert.Len(t, result.Detail, 7)
	})

	t.Run("zero income owes nothing", func(t *testing.T) {
		result := calc.FederalIncomeTax(0, tax.Single)

		assert.Zero(t, result.TotalTax)
		assert.Zero(t, result.EffectiveRate)
		assert.InDelta(t, 10, result.MarginalRate, 1e-9)
		assert.Empty(t, result.Detail)
	})

	t.Run("unknown filing status falls back to single", func(t *testing.T) {
		fallback := calc.FederalIncomeTax(50000, tax.FilingStatus("qualifying_widow"))
		single := calc.FederalIncomeTax(50000, tax.Single)
		assert.Equal(t, single.TotalTax, fallback.TotalTax)
	})
}

func TestStateIncomeTax(t *testing.T) {
	t.Parallel()

	calc := tax.New()

	t.Run("california progressive walk", func(t *testing.T) {
		result, err := calc.StateIncomeTax("CA", 75000, tax.Single)
		require.NoError(t, err)

		assert.Equal(t, "CA", result.State)
		assert.InDelta(t, 3728.48, result.Tax, 1e-9)
		assert.InDelta(t, 4.97, result.EffectiveRate, 1e-9)
	})

	t.Run("no-income-tax states owe zero", func(t *testing.T) {
		for _, state := range []string{"TX", "FL"} {
			result, err := calc.StateIncomeTax(state, 250000, tax.Single)
			require.NoError(t, err)
			assert.Zero(t, result.Tax, "state %s", state)
		}
	})

	t.Run("unsupported state fails", func(t *testing.T) {
		_, err := calc.StateIncomeTax("WA", 75000, tax.Single)
		require.ErrorIs(t, err, tax.ErrStateNotSupported)
	})

	t.Run("unpublished status falls back to the state's single table", func(t *testing.T) {
		fallback, err := calc.StateIncomeTax("CA", 75000, tax.HeadOfHousehold)
		require.NoError(t, err)
		single, err := calc.StateIncomeTax("CA", 75000, tax.Single)
		require.NoError(t, err)
		assert.Equal(t, single.Tax, fallback.Tax)
	})
}

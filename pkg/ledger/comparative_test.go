package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/finkit/pkg/ledger"
)

func TestComparativeIncomeStatement(t *testing.T) {
	t.Parallel()

	seedMonth := func(t *testing.T, gl *ledger.Ledger, day time.Time, revenue, cogs, opex float64) {
		t.Helper()
		post := func(debit, credit string, amount float64) {
			t.Helper()
			if amount == 0 {
				return
			}
			_, err := gl.Record(ledger.JournalEntry{
				Date:    day,
				Debits:  []ledger.Line{{Account: debit, Amount: amount}},
				Credits: []ledger.Line{{Account: credit, Amount: amount}},
				Posted:  true,
			})
			require.NoError(t, err)
		}
		post("1100", "4000", revenue)
		post("5000", "1200", cogs)
		post("6000", "1000", opex)
	}

	t.Run("month over month growth", func(t *testing.T) {
		t.Parallel()

		gl := ledger.New()
		seedMonth(t, gl, date(2024, 1, 15), 10000, 4000, 2000)
		seedMonth(t, gl, date(2024, 2, 15), 15000, 6000, 3000)

		columns := gl.ComparativeIncomeStatement([]ledger.Period{
			{Start: date(2024, 1, 1), End: date(2024, 1, 31)},
			{Start: date(2024, 2, 1), End: date(2024, 2, 29)},
		})
		require.Len(t, columns, 2)

		jan := columns[0]
		assert.Equal(t, "2024-01 to 2024-01", jan.Period)
		assert.InDelta(t, 10000, jan.TotalRevenue, 1e-9)
		assert.InDelta(t, 6000, jan.GrossProfit, 1e-9)
		assert.InDelta(t, 4000, jan.OperatingIncome, 1e-9)
		assert.InDelta(t, 4000, jan.NetIncome, 1e-9)
		assert.Nil(t, jan.Variance, "first period has nothing to compare against")

		feb := columns[1]
		assert.InDelta(t, 15000, feb.TotalRevenue, 1e-9)
		require.NotNil(t, feb.Variance)
		assert.InDelta(t, 50, feb.Variance.RevenuePct, 1e-9)
		assert.InDelta(t, 50, feb.Variance.GrossProfitPct, 1e-9)
		assert.InDelta(t, 50, feb.Variance.OperatingIncomePct, 1e-9)
		assert.InDelta(t, 50, feb.Variance.NetIncomePct, 1e-9)
	})

	t.Run("variance against empty period is zero", func(t *testing.T) {
		t.Parallel()

		gl := ledger.New()
		seedMonth(t, gl, date(2024, 2, 15), 8000, 0, 0)

		columns := gl.ComparativeIncomeStatement([]ledger.Period{
			{Start: date(2024, 1, 1), End: date(2024, 1, 31)},
			{Start: date(2024, 2, 1), End: date(2024, 2, 29)},
		})
		require.Len(t, columns, 2)
		require.NotNil(t, columns[1].Variance)
		assert.Zero(t, columns[1].Variance.RevenuePct)
		assert.Zero(t, columns[1].Variance.NetIncomePct)
	})

	t.Run("recovery from loss reads positive", func(t *testing.T) {
		t.Parallel()

		gl := ledger.New()
		seedMonth(t, gl, date(2024, 1, 15), 1000, 0, 3000) // net -2000
		seedMonth(t, gl, date(2024, 2, 15), 5000, 0, 3000) // net +2000

		columns := gl.ComparativeIncomeStatement([]ledger.Period{
			{Start: date(2024, 1, 1), End: date(2024, 1, 31)},
			{Start: date(2024, 2, 1), End: date(2024, 2, 29)},
		})
		require.NotNil(t, columns[1].Variance)
		assert.InDelta(t, 200, columns[1].Variance.NetIncomePct, 1e-9,
			"from -2000 to 2000 relative to the previous magnitude")
	})

	t.Run("no periods", func(t *testing.T) {
		t.Parallel()

		gl := ledger.New()
		assert.Empty(t, gl.ComparativeIncomeStatement(nil))
	})
}

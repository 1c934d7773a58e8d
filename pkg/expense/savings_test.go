package expense_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/finkit/pkg/expense"
)

func TestCostSavings(t *testing.T) {
	t.Parallel()

	t.Run("vendor consolidation", func(t *testing.T) {
		t.Parallel()

		tracker := expense.New()
		alpha := tracker.AddVendor(expense.Vendor{Name: "Alpha Repairs"})
		beta := tracker.AddVendor(expense.Vendor{Name: "Beta Maintenance"})
		gamma := tracker.AddVendor(expense.Vendor{Name: "Gamma Services"})

		for _, e := range []expense.Expense{
			{Date: date(2024, 4, 5), VendorID: alpha, Amount: 1000, Category: expense.Maintenance},
			{Date: date(2024, 4, 18), VendorID: beta, Amount: 2000, Category: expense.Maintenance},
			{Date: date(2024, 5, 2), VendorID: gamma, Amount: 3000, Category: expense.Maintenance},
		} {
			_, err := tracker.AddExpense(e)
			require.NoError(t, err)
		}

		suggestions := tracker.CostSavings(date(2024, 6, 1), 6)
		require.Len(t, suggestions, 1)

		s := suggestions[0]
		assert.Equal(t, expense.SavingsVendorConsolidation, s.Type)
		assert.Equal(t, expense.Maintenance, s.Category)
		assert.Equal(t, "Consider consolidating 3 vendors", s.Description)
		assert.InDelta(t, 6000.0, s.CurrentSpend, 1e-9)
		assert.InDelta(t, 600.0, s.PotentialSavings, 1e-9)
		assert.Equal(t, []string{"Alpha Repairs", "Beta Maintenance", "Gamma Services"}, s.Vendors)
	})

	t.Run("two vendors is fine", func(t *testing.T) {
		t.Parallel()

		tracker := expense.New()
		alpha := tracker.AddVendor(expense.Vendor{Name: "Alpha Repairs"})
		beta := tracker.AddVendor(expense.Vendor{Name: "Beta Maintenance"})

		for _, e := range []expense.Expense{
			{Date: date(2024, 4, 5), VendorID: alpha, Amount: 1000, Category: expense.Maintenance},
			{Date: date(2024, 5, 2), VendorID: beta, Amount: 3000, Category: expense.Maintenance},
		} {
			_, err := tracker.AddExpense(e)
			require.NoError(t, err)
		}

		assert.Empty(t, tracker.CostSavings(date(2024, 6, 1), 6))
	})

	t.Run("recurring review", func(t *testing.T) {
		t.Parallel()

		tracker := expense.New()
		vendorID := tracker.AddVendor(expense.Vendor{Name: "CloudSoft"})
		for m := time.January; m <= time.June; m++ {
			_, err := tracker.AddExpense(expense.Expense{
				Date:      date(2024, m, 1),
				VendorID:  vendorID,
				Amount:    100,
				Category:  expense.Software,
				Recurring: true,
				Frequency: "monthly",
			})
			require.NoError(t, err)
		}

		suggestions := tracker.CostSavings(date(2024, 6, 15), 6)
		require.Len(t, suggestions, 1)

		s := suggestions[0]
		assert.Equal(t, expense.SavingsRecurringReview, s.Type)
		assert.Equal(t, expense.Software, s.Category)
		assert.Equal(t, "Review 6 recurring expenses", s.Description)
		assert.InDelta(t, 600.0, s.CurrentSpend, 1e-9)
		assert.InDelta(t, 90.0, s.PotentialSavings, 1e-9)
		assert.Equal(t, "Negotiate annual contracts or review necessity", s.Action)
	})

	t.Run("unusual expense", func(t *testing.T) {
		t.Parallel()

		tracker := expense.New()
		vendorID := tracker.AddVendor(expense.Vendor{Name: "Staples Direct"})
		for i := 0; i < 11; i++ {
			_, err := tracker.AddExpense(expense.Expense{
				Date:     date(2024, time.Month(i%5+1), 10),
				VendorID: vendorID,
				Amount:   100,
				Category: expense.OfficeSupplies,
			})
			require.NoError(t, err)
		}
		_, err := tracker.AddExpense(expense.Expense{
			Date:     date(2024, 5, 20),
			VendorID: vendorID,
			Amount:   2000,
			Category: expense.OfficeSupplies,
		})
		require.NoError(t, err)

		suggestions := tracker.CostSavings(date(2024, 6, 1), 6)
		require.Len(t, suggestions, 1)

		s := suggestions[0]
		assert.Equal(t, expense.SavingsUnusualExpense, s.Type)
		assert.Equal(t, expense.OfficeSupplies, s.Category)
		assert.Equal(t, "Expense significantly above average", s.Description)
		assert.Equal(t, "Staples Direct", s.Vendor)
		assert.InDelta(t, 2000.0, s.Amount, 1e-9)
		assert.InDelta(t, 258.33, s.Average, 1e-9)
		assert.Equal(t, "Review for accuracy or negotiate", s.Action)
	})

	t.Run("identical amounts never flag", func(t *testing.T) {
		t.Parallel()

		tracker := expense.New()
		vendorID := tracker.AddVendor(expense.Vendor{Name: "CloudSoft"})
		for i := 0; i < 8; i++ {
			_, err := tracker.AddExpense(expense.Expense{
				Date:     date(2024, time.Month(i%4+1), 10),
				VendorID: vendorID,
				Amount:   250,
				Category: expense.Software,
			})
			require.NoError(t, err)
		}

		assert.Empty(t, tracker.CostSavings(date(2024, 5, 1), 6))
	})

	t.Run("stale expenses ignored", func(t *testing.T) {
		t.Parallel()

		tracker := expense.New()
		alpha := tracker.AddVendor(expense.Vendor{Name: "Alpha Repairs"})
		beta := tracker.AddVendor(expense.Vendor{Name: "Beta Maintenance"})
		gamma := tracker.AddVendor(expense.Vendor{Name: "Gamma Services"})

		for _, e := range []expense.Expense{
			{Date: date(2024, 4, 5), VendorID: alpha, Amount: 1000, Category: expense.Maintenance},
			{Date: date(2024, 5, 2), VendorID: beta, Amount: 2000, Category: expense.Maintenance},
			// Third vendor last billed 7 months before the scan.
			{Date: date(2023, 11, 1), VendorID: gamma, Amount: 3000, Category: expense.Maintenance},
		} {
			_, err := tracker.AddExpense(e)
			require.NoError(t, err)
		}

		assert.Empty(t, tracker.CostSavings(date(2024, 6, 1), 0), "zero lookback defaults to six months")
	})
}

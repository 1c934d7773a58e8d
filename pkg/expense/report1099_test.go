package expense_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/finkit/pkg/expense"
)

func TestReport1099(t *testing.T) {
	t.Parallel()

	tracker := expense.New()
	acme := tracker.AddVendor(expense.Vendor{Name: "Acme Supply Co", TaxID: "12-3456789", W9OnFile: true})
	ghost := tracker.AddVendor(expense.Vendor{Name: "Ghost Writing", W9OnFile: true})
	pro := tracker.AddVendor(expense.Vendor{Name: "Pro Consulting", TaxID: "98-7654321"})
	minor := tracker.AddVendor(expense.Vendor{Name: "Corner Store", TaxID: "11-1111111", W9OnFile: true})

	pay := func(vendorID string, amount float64, when, paidOn int) {
		t.Helper()
		id, err := tracker.AddExpense(expense.Expense{
			Date:     date(2024, 1, when),
			VendorID: vendorID,
			Amount:   amount,
			Category: expense.ProfessionalFees,
		})
		require.NoError(t, err)
		require.NoError(t, tracker.MarkPaid(id, date(2024, 1, paidOn)))
	}

	pay(acme, 600, 5, 20)
	pay(acme, 600, 15, 30)
	pay(ghost, 600, 8, 25)
	pay(pro, 5000, 10, 28)
	pay(minor, 599.99, 12, 28)

	// Approved but unpaid: must not count toward the total.
	_, err := tracker.AddExpense(expense.Expense{
		Date:     date(2024, 2, 1),
		VendorID: acme,
		Amount:   400,
		Category: expense.ProfessionalFees,
	})
	require.NoError(t, err)

	// Paid in the prior year: outside this report.
	priorID, err := tracker.AddExpense(expense.Expense{
		Date:     date(2023, 11, 3),
		VendorID: acme,
		Amount:   700,
		Category: expense.ProfessionalFees,
	})
	require.NoError(t, err)
	require.NoError(t, tracker.MarkPaid(priorID, date(2023, 11, 20)))

	t.Run("reportable vendors sorted by payments", func(t *testing.T) {
		t.Parallel()

		rows := tracker.Report1099(2024)
		require.Len(t, rows, 3, "sub-threshold vendors drop out")

		assert.Equal(t, "Pro Consulting", rows[0].VendorName)
		assert.InDelta(t, 5000.0, rows[0].TotalPayments, 1e-9)
		assert.Equal(t, 1, rows[0].PaymentCount)
		assert.False(t, rows[0].W9OnFile)
		assert.Equal(t, expense.Form1099Incomplete, rows[0].Status, "tax ID without a W-9 is not enough")

		assert.Equal(t, "Acme Supply Co", rows[1].VendorName)
		assert.Equal(t, "12-3456789", rows[1].TaxID)
		assert.InDelta(t, 1200.0, rows[1].TotalPayments, 1e-9)
		assert.Equal(t, 2, rows[1].PaymentCount)
		assert.Equal(t, expense.Form1099Ready, rows[1].Status)

		assert.Equal(t, "Ghost Writing", rows[2].VendorName)
		assert.Equal(t, "Missing", rows[2].TaxID)
		assert.InDelta(t, 600.0, rows[2].TotalPayments, 1e-9, "exactly the threshold is reportable")
		assert.Equal(t, expense.Form1099Incomplete, rows[2].Status)
	})

	t.Run("year without payments", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tracker.Report1099(2022))
	})
}

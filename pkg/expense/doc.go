// Package expense tracks business expenses against vendors and budgets,
// routes them through an approval workflow, and reports on spending:
// category and vendor summaries, budget-vs-actual, trailing-year
// forecasts, cost-savings scans, 1099 reporting, and the cash-flow
// impact of unpaid invoices.
//
// # Architecture
//
// A Tracker holds vendors, budgets, and expenses in memory for the
// caller. Expenses enter through AddExpense, which routes anything over
// $5,000 (or equipment over $1,000) to Pending and auto-approves the
// rest. Pending expenses move through Approve, Reject, Review, and
// MarkPaid; transitions outside the workflow table fail with
// ErrInvalidTransition.
//
// Reports are recomputed from the recorded expenses on every call.
// Summary and analytics functions take explicit dates instead of
// reading the clock, so results are reproducible.
//
// # Usage
//
//	tracker := expense.New()
//	vendorID := tracker.AddVendor(expense.Vendor{Name: "Acme Supply Co"})
//
//	id, err := tracker.AddExpense(expense.Expense{
//	    Date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
//	    VendorID: vendorID,
//	    Amount:   149.99,
//	    Category: expense.OfficeSupplies,
//	})
//	if err != nil {
//	    return err
//	}
//
//	rows := tracker.SummaryByCategory(start, end)
//	report, err := tracker.BudgetVsActual(budgetID, start, end)
//
// # Error Handling
//
// Lookup and workflow methods return sentinel errors (ErrVendorNotFound,
// ErrBudgetNotFound, ErrExpenseNotFound, ErrInvalidTransition) wrapped
// with the offending detail; test them with errors.Is. Reporting
// methods cannot fail and return values directly.
package expense

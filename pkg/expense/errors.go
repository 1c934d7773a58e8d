package expense

import "errors"

var (
	// ErrVendorNotFound is returned when an expense references an
	// unregistered vendor.
	ErrVendorNotFound = errors.New("expense: vendor not found")

	// ErrBudgetNotFound is returned when a budget ID is not registered.
	ErrBudgetNotFound = errors.New("expense: budget not found")

	// ErrExpenseNotFound is returned when an expense ID is not recorded.
	ErrExpenseNotFound = errors.New("expense: expense not found")

	// ErrInvalidTransition is returned when an approval-status change is
	// not allowed from the expense's current status.
	ErrInvalidTransition = errors.New("expense: invalid status transition")
)

package ledger

import "errors"

var (
	// ErrUnknownAccount is returned when an entry line references an
	// account number missing from the chart.
	ErrUnknownAccount = errors.New("ledger: unknown account")

	// ErrDuplicateAccount is returned when an account number is already
	// registered in the chart.
	ErrDuplicateAccount = errors.New("ledger: duplicate account number")

	// ErrUnbalancedEntry is returned when an entry's debits and credits
	// differ by more than BalanceTolerance.
	ErrUnbalancedEntry = errors.New("ledger: entry debits and credits do not balance")

	// ErrEmptyEntry is returned when an entry carries no debit or credit
	// lines at all.
	ErrEmptyEntry = errors.New("ledger: entry has no lines")

	// ErrEntryNotFound is returned when an entry ID is not recorded.
	ErrEntryNotFound = errors.New("ledger: entry not found")
)

package cashflow

import "errors"

var (
	// ErrNoData is returned when an analysis window contains no cash
	// flow items at all.
	ErrNoData = errors.New("cashflow: no cash flow data in window")

	// ErrInsufficientHistory is returned when a statistical analysis
	// needs more recorded items than the analyzer holds.
	ErrInsufficientHistory = errors.New("cashflow: insufficient history")
)

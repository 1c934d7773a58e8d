package finmath

import "errors"

// Sentinel errors returned by the fallible calculations. Ratio helpers do
// not fail; see the package documentation.
var (
	// ErrEmptyCashFlows is returned when a cash flow series has no elements.
	ErrEmptyCashFlows = errors.New("finmath: cash flow series is empty")

	// ErrNoConvergence is returned when the IRR search finds no rate that
	// zeroes the series' net present value.
	ErrNoConvergence = errors.New("finmath: rate search did not converge")

	// ErrZeroInvestment is returned when a calculation divides by an
	// initial investment of zero.
	ErrZeroInvestment = errors.New("finmath: initial investment must be non-zero")

	// ErrZeroCapital is returned by WACC when equity and debt sum to zero.
	ErrZeroCapital = errors.New("finmath: combined capital must be non-zero")

	// ErrInvalidLife is returned when a depreciation useful life is not
	// positive.
	ErrInvalidLife = errors.New("finmath: useful life must be positive")

	// ErrZeroUnits is returned by UnitsOfProduction when the lifetime unit
	// count is not positive.
	ErrZeroUnits = errors.New("finmath: total units must be positive")

	// ErrUnknownRecovery is returned by MACRS for recovery periods without
	// a published rate table.
	ErrUnknownRecovery = errors.New("finmath: no MACRS table for recovery period")
)

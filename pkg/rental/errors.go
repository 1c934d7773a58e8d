package rental

import "errors"

var (
	// ErrPropertyNotFound is returned when a property ID is not
	// registered.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrUnitNotFound is returned when a unit ID is not registered.
	ErrUnitNotFound = errors.New("unit not found")

	// ErrTenantNotFound is returned when a tenant ID is not registered.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrLeaseNotFound is returned when a lease ID is not recorded.
	ErrLeaseNotFound = errors.New("lease not found")

	// ErrNoComparables is returned when no unit matches the comparable
	// criteria.
	ErrNoComparables = errors.New("no comparable units found")
)

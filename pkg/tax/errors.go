package tax

import "errors"

var (
	// ErrInvalidTables is returned when a rate table document fails to
	// parse or violates bracket ordering.
	ErrInvalidTables = errors.New("tax: invalid rate tables")

	// ErrEntityNotFound is returned when an entity ID is not registered.
	ErrEntityNotFound = errors.New("tax: entity not found")

	// ErrAssetNotFound is returned when an asset ID is not registered.
	ErrAssetNotFound = errors.New("tax: asset not found")

	// ErrNotInService is returned when a depreciation deduction is
	// requested for a year before the asset was placed in service.
	ErrNotInService = errors.New("tax: asset not in service for tax year")

	// ErrUnknownMethod is returned for depreciation methods the
	// calculator does not support.
	ErrUnknownMethod = errors.New("tax: unsupported depreciation method")

	// ErrStateNotSupported is returned when no rate table exists for a
	// state.
	ErrStateNotSupported = errors.New("tax: state tax rates not available")
)

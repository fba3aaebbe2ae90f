package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. The storage adapters
// translate driver-level constraint violations into these sentinels so
// callers never have to inspect raw SQLite errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	// Returned when a unique constraint (seller name, product code) is violated.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInUse indicates an entity cannot be deleted because other
	// records still reference it (foreign key constraint).
	ErrInUse = errors.New("still referenced by other records")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPaymentMismatch indicates a sale's payments do not sum to the
	// total of its line items. The sale is rejected before anything is
	// written.
	ErrPaymentMismatch = errors.New("payments do not match sale total")

	// ErrStoreUnavailable indicates the database could not be opened at
	// startup. Commands fail with this instead of crashing the process.
	ErrStoreUnavailable = errors.New("store unavailable")
)

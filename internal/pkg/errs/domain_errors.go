package errs

import "errors"

// Use-case level sentinels shared by the command and query sides.
var (
	// Input
	ErrValidation = errors.New("validation error")

	// Catalog
	ErrVariantNotFound = errors.New("variant not found")
	ErrConfiguration   = errors.New("booking configuration error")

	// Reservation
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationReleased = errors.New("reservation already released")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

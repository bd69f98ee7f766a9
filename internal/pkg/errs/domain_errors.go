package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Category errors
	ErrCategoryNotFound = errors.New("room category not found")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidStay      = errors.New("invalid stay range")
	ErrInvalidRoomCount = errors.New("invalid room count")
	ErrNoVacancy        = errors.New("not enough rooms available")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	// Promotion errors
	ErrPromotionNotFound = errors.New("promotion not found")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyUsed   = errors.New("email already registered")
	ErrPermissionDenied   = errors.New("permission denied")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrLedgerCorrupt           = errors.New("availability ledger exceeds category capacity")
)

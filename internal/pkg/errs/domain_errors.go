package errs

import "errors"

// Domain-specific sentinel errors shared by the engine and the usecase layers
var (
	// Engine errors
	ErrValidation     = errors.New("validation error")
	ErrUnresolvedRule = errors.New("unresolved charge rule")

	// Station errors
	ErrStationNotFound = errors.New("station not found")

	// Booking errors
	ErrIntentNotFound         = errors.New("booking intent not found")
	ErrIntentExpired          = errors.New("booking intent expired")
	ErrIntentAlreadyConfirmed = errors.New("booking intent already confirmed")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingCanceled        = errors.New("booking already canceled")
	ErrSlotUnavailable        = errors.New("requested slot is not available")
	ErrForbidden              = errors.New("operation not permitted for this user")

	// Infrastructure errors
	ErrStorageUnavailable = errors.New("storage unavailable")
)

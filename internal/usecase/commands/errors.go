package commands

import "tour-booking/internal/pkg/errs"

var (
	ErrTourNotFound            = errs.New("tour not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrUserNotFound            = errs.New("user not found")
	ErrSeatsExhausted          = errs.New("no seats available for this tour")
	ErrTourHasBookings         = errs.New("tour has bookings")
	ErrEmailAlreadyExists      = errs.New("email already registered")
	ErrDomainValidationFailed  = errs.New("domain validation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrTokenGeneration         = errs.New("failed to generate token")
	ErrTokenValidation         = errs.New("invalid refresh token")
)

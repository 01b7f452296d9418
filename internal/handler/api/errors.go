package api

import (
	"net/http"

	"tour-booking/internal/domain/access"
	"tour-booking/internal/domain/booking"
	"tour-booking/internal/domain/user"
	"tour-booking/internal/handler/httperr"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/usecase/commands"
	"tour-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters only for errors carrying more than one mark; the first hit wins.
var errorMappings = []errorMapping{
	{access.ErrAuthorizationDenied, http.StatusForbidden, "Insufficient permissions"},
	{booking.ErrOwnershipViolation, http.StatusForbidden, "You can only cancel your own bookings"},
	{booking.ErrTransitionNotPermitted, http.StatusForbidden, "Only admins can make this status change"},
	{booking.ErrConfirmedBookingLocked, http.StatusConflict, "Confirmed bookings cannot be cancelled online, please contact support"},
	{booking.ErrInvalidTransition, http.StatusConflict, "Booking cannot move to the requested status"},
	{booking.ErrInvalidStatus, http.StatusBadRequest, "Invalid booking status"},
	{commands.ErrSeatsExhausted, http.StatusConflict, "No seats available for this tour"},
	{commands.ErrTourHasBookings, http.StatusConflict, "Tour has bookings and cannot be deleted"},
	{commands.ErrEmailAlreadyExists, http.StatusConflict, "Email already registered"},
	{commands.ErrTourNotFound, http.StatusNotFound, "Tour not found"},
	{queries.ErrTourNotFound, http.StatusNotFound, "Tour not found"},
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{commands.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{user.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrTokenValidation, http.StatusUnauthorized, "Invalid or expired refresh token"},
}

// respondError translates use case errors into the HTTP error body. Anything
// unrecognised, including marked database failures, becomes a 500 without detail.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	if errs.Is(err, commands.ErrDomainValidationFailed) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", err.Error())
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

package components

import (
	"tour-booking/internal/handler"
	"tour-booking/internal/handler/api"
	"tour-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewTourHandler,
		api.NewBookingHandler,
		api.NewUserHandler,
		newHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(auth *api.AuthHandler, tour *api.TourHandler, booking *api.BookingHandler, user *api.UserHandler) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Tour:    tour,
		Booking: booking,
		User:    user,
	}
}

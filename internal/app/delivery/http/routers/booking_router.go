package routers

import (
	"therapyconnect-service/internal/app/delivery/http/controllers"
	"therapyconnect-service/internal/app/delivery/http/middlewares"
	"therapyconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", bookingController.ListBookings)
	router.Post("/", bookingController.CreateBooking)
	router.Post("/{"+constvars.URLParamBookingID+"}"+constvars.PathCancel, bookingController.CancelBooking)
}

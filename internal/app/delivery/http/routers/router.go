package routers

import (
	"strings"
	"therapyconnect-service/internal/app/config"
	"therapyconnect-service/internal/app/delivery/http/controllers"
	"therapyconnect-service/internal/app/delivery/http/middlewares"
	"therapyconnect-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

const authRateLimitBlockTime = time.Minute

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	therapistController *controllers.TherapistController,
	registrationController *controllers.RegistrationController,
	bookingController *controllers.BookingController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	allowedOrigins := internalConfig.App.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID, constvars.HeaderIdempotencyKey},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}
	router.Use(middlewares.BodyLimit)

	authLimiter := middlewares.NewAuthRateLimiter(authRateLimitBlockTime)

	router.Route(endpointPrefix(internalConfig.App.EndpointPrefix), func(r chi.Router) {
		r.With(authLimiter.Limit).Get(constvars.PathNonce, authController.IssueNonce)

		r.Route(constvars.PathAuth, func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authLimiter, authController)
		})

		r.Route(constvars.PathTherapists, func(r chi.Router) {
			attachTherapistRoutes(r, middlewares, therapistController, registrationController)
		})

		r.Route(constvars.PathBookings, func(r chi.Router) {
			attachBookingRoutes(r, middlewares, bookingController)
		})
	})
}

func endpointPrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return "/"
	}
	return "/" + prefix
}

package routers

import (
	"therapyconnect-service/internal/app/delivery/http/controllers"
	"therapyconnect-service/internal/app/delivery/http/middlewares"
	"therapyconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.With(authLimiter.Limit).Post(constvars.PathLogin, authController.Login)
	router.With(middlewares.Authenticate).Get(constvars.PathMe, authController.Me)
	router.With(middlewares.OptionalAuthenticate).Post(constvars.PathLogout, authController.Logout)
}

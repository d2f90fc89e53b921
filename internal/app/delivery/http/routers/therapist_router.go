package routers

import (
	"therapyconnect-service/internal/app/delivery/http/controllers"
	"therapyconnect-service/internal/app/delivery/http/middlewares"
	"therapyconnect-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachTherapistRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	therapistController *controllers.TherapistController,
	registrationController *controllers.RegistrationController,
) {
	router.Get("/", therapistController.ListTherapists)
	router.Get(constvars.PathSpecialties, therapistController.ListSpecializations)

	router.Route(constvars.PathRegister, func(r chi.Router) {
		r.Get(constvars.PathOptions, registrationController.ListOptions)
		r.Post("/", registrationController.Register)
	})

	router.Route("/{"+constvars.URLParamTherapistID+"}", func(r chi.Router) {
		r.Get("/", therapistController.GetTherapist)
		r.Get(constvars.PathQuote, therapistController.QuotePrice)
		r.With(middlewares.Authenticate).Post(constvars.PathAvatar, therapistController.UploadAvatar)
	})
}

package controllers

import (
	"context"
	"net/http"
	"therapyconnect-service/internal/app/config"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type RegistrationController struct {
	Log                 *zap.Logger
	RegistrationUsecase contracts.RegistrationUsecase
	InternalConfig      *config.InternalConfig
}

func NewRegistrationController(logger *zap.Logger, registrationUsecase contracts.RegistrationUsecase, internalConfig *config.InternalConfig) *RegistrationController {
	return &RegistrationController{
		Log:                 logger,
		RegistrationUsecase: registrationUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *RegistrationController) ListOptions(w http.ResponseWriter, r *http.Request) {
	result := ctrl.RegistrationUsecase.ListOptions(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRegistrationOptionsSuccessText, result)
}

func (ctrl *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("RegistrationController.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.RegisterTherapist)
	if err := decodeJSON(r, request); err != nil {
		ctrl.Log.Error("RegistrationController.Register error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeRegisterTherapistRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.RegistrationUsecase.Register(ctx, request)
	if err != nil {
		ctrl.Log.Error("RegistrationController.Register error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("RegistrationController.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTherapistIDKey, result.TherapistID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterTherapistSuccessMessage, result)
}

package controllers

import (
	"context"
	"net/http"
	"therapyconnect-service/internal/app/config"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/app/services/core/therapists"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/exceptions"
	"therapyconnect-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TherapistController struct {
	Log              *zap.Logger
	TherapistUsecase contracts.TherapistUsecase
	InternalConfig   *config.InternalConfig
}

func NewTherapistController(logger *zap.Logger, therapistUsecase contracts.TherapistUsecase, internalConfig *config.InternalConfig) *TherapistController {
	return &TherapistController{
		Log:              logger,
		TherapistUsecase: therapistUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *TherapistController) ListTherapists(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("TherapistController.ListTherapists called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := r.URL.Query()
	minPrice, err := utils.ParseOptionalFloat(query.Get(constvars.URLQueryParamMinPrice), constvars.DefaultMinPrice)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.URLQueryParamMinPrice))
		return
	}
	maxPrice, err := utils.ParseOptionalFloat(query.Get(constvars.URLQueryParamMaxPrice), constvars.DefaultMaxPrice)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.URLQueryParamMaxPrice))
		return
	}

	filter := requests.TherapistFilter{
		Specialization: query.Get(constvars.URLQueryParamSpecialization),
		MinPrice:       minPrice,
		MaxPrice:       maxPrice,
		Search:         query.Get(constvars.URLQueryParamSearch),
	}
	utils.SanitizeTherapistFilterRequest(&filter)

	if err := utils.ValidateStruct(filter); err != nil {
		ctrl.Log.Error("TherapistController.ListTherapists validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.TherapistUsecase.ListTherapists(ctx, filter)
	if err != nil {
		ctrl.Log.Error("TherapistController.ListTherapists error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, therapists.ListMessage(result.Count), result)
}

func (ctrl *TherapistController) ListSpecializations(w http.ResponseWriter, r *http.Request) {
	result := ctrl.TherapistUsecase.ListSpecializations(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSpecializationsSuccessMessage, result)
}

func (ctrl *TherapistController) GetTherapist(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	therapistID := chi.URLParam(r, constvars.URLParamTherapistID)
	ctrl.Log.Info("TherapistController.GetTherapist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTherapistIDKey, therapistID),
	)

	if err := utils.ValidateUrlParamID(therapistID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamTherapistID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.TherapistUsecase.GetTherapist(ctx, therapistID)
	if err != nil {
		ctrl.Log.Error("TherapistController.GetTherapist error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTherapistSuccessMessage, result)
}

func (ctrl *TherapistController) QuotePrice(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	therapistID := chi.URLParam(r, constvars.URLParamTherapistID)
	ctrl.Log.Info("TherapistController.QuotePrice called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTherapistIDKey, therapistID),
	)

	duration, err := utils.ParseOptionalInt(r.URL.Query().Get(constvars.URLQueryParamDuration), constvars.DefaultSessionDuration)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.URLQueryParamDuration))
		return
	}

	request := requests.PriceQuote{TherapistID: therapistID, Duration: duration}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("TherapistController.QuotePrice validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.TherapistUsecase.QuotePrice(ctx, request)
	if err != nil {
		ctrl.Log.Error("TherapistController.QuotePrice error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.QuotePriceSuccessMessage, result)
}

func (ctrl *TherapistController) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	therapistID := chi.URLParam(r, constvars.URLParamTherapistID)
	ctrl.Log.Info("TherapistController.UploadAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTherapistIDKey, therapistID),
	)

	maxSize := ctrl.InternalConfig.App.AvatarMaxUploadSizeInMB
	if err := r.ParseMultipartForm(maxSize * 1024 * 1024); err != nil {
		ctrl.Log.Error("TherapistController.UploadAvatar error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile(constvars.FormFieldAvatarImage)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	defer file.Close()

	if err := utils.ValidateImage(fileHeader, maxSize); err != nil {
		ctrl.Log.Error("TherapistController.UploadAvatar image validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.TherapistUsecase.UploadAvatar(ctx, therapistID, file, fileHeader.Size, fileHeader.Filename)
	if err != nil {
		ctrl.Log.Error("TherapistController.UploadAvatar error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadAvatarSuccessMessage, result)
}

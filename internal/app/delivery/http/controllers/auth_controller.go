package controllers

import (
	"context"
	"net/http"
	"therapyconnect-service/internal/app/config"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/app/delivery/http/middlewares"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/exceptions"
	"therapyconnect-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) IssueNonce(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("AuthController.IssueNonce called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.AuthUsecase.IssueNonce(ctx)
	if err != nil {
		ctrl.Log.Error("AuthController.IssueNonce error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NonceIssuedMessage, result)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Login)
	if err := decodeJSON(r, request); err != nil {
		ctrl.Log.Error("AuthController.Login error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeLoginRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("AuthController.Login validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		ctrl.Log.Error("AuthController.Login error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constvars.CookieSessionName,
		Value:    result.Token,
		Path:     constvars.CookieSessionPath,
		Expires:  time.Unix(result.ExpiresAt, 0),
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.App.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWalletAddressKey, result.User.WalletAddress),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, result)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	session, _ := middlewares.SessionFromContext(r.Context())
	result, err := ctrl.AuthUsecase.Me(r.Context(), session)
	if err != nil {
		ctrl.Log.Error("AuthController.Me error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, result)
}

// Logout always answers 200 and clears the session cookie.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("AuthController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var sessionID string
	if session, ok := middlewares.SessionFromContext(r.Context()); ok {
		sessionID = session.SessionID
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	if err := ctrl.AuthUsecase.Logout(ctx, sessionID); err != nil {
		ctrl.Log.Error("AuthController.Logout error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constvars.CookieSessionName,
		Value:    "",
		Path:     constvars.CookieSessionPath,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.App.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

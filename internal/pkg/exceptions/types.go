package exceptions

import (
	"errors"
	"fmt"
	"therapyconnect-service/internal/pkg/constvars"
)

// ErrDuplicateID is returned by repositories when a document with the same id
// is already stored.
var ErrDuplicateID = errors.New(constvars.ErrDevDuplicateID)

var (
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrImageValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidImageFormat, constvars.ErrDevImageValidationFailed)
	}
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrQueryParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf("%s %s", paramName, constvars.CustomValidationErrorMessages["numeric"]), fmt.Sprintf(constvars.ErrDevQueryParamValidationFailed, paramName))
	}
	ErrInvalidPriceRange = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidPriceRange, constvars.ErrDevInvalidInput)
	}
	ErrInvalidBookingStatus = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidBookingStatus, constvars.ErrDevInvalidInput)
	}
	ErrRequestBodyTooLarge = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooBig, constvars.ErrClientRequestBodyTooLarge, constvars.ErrDevRequestBodyTooLarge)
	}

	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPanicRecovered)
	}
	ErrTooManyRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequest, constvars.ErrDevTooManyRequest)
	}
	ErrConfigMissing = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevConfigMissing, key))
	}
	ErrStorageDriverNotSupported = func(err error, driver string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStorageDriverNotSupported, driver))
	}
	ErrAvatarStorageNotConfigured = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStorageAvatarNotConfigured)
	}

	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
	ErrTokenSigningMethod = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthSigningMethod)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrInvalidSession = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession)
	}
	ErrWalletAuthStatus = func(err error, status string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientWalletAuthFailed, fmt.Sprintf(constvars.ErrDevWalletAuthStatus, status))
	}
	ErrWalletAuthNonceInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientWalletAuthFailed, constvars.ErrDevWalletAuthNonceInvalid)
	}
	ErrWalletAuthNonceMismatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientWalletAuthFailed, constvars.ErrDevWalletAuthNonceMismatch)
	}
	ErrWalletAuthAddressMismatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientWalletAuthFailed, constvars.ErrDevWalletAuthAddressMismatch)
	}
	ErrWalletAuthMessageMalformed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientWalletAuthFailed, constvars.ErrDevWalletAuthMessageMalformed)
	}
	ErrWalletAuthMessageExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientWalletAuthFailed, constvars.ErrDevWalletAuthMessageExpired)
	}
	ErrWalletAuthMessageNotYetValid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientWalletAuthFailed, constvars.ErrDevWalletAuthMessageNotYet)
	}
	ErrWalletAuthSignatureInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientWalletAuthFailed, constvars.ErrDevWalletAuthSignatureInvalid)
	}

	ErrTherapistNotFound = func(err error, therapistID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientTherapistNotFound, fmt.Sprintf(constvars.ErrDevTherapistNotFound, therapistID))
	}
	ErrBookingNotFound = func(err error, bookingID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientBookingNotFound, fmt.Sprintf(constvars.ErrDevBookingNotFound, bookingID))
	}
	ErrBookingDateTimeMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientSelectDateAndTime, constvars.ErrDevValidationFailed)
	}
	ErrBookingTimeNotAvailable = func(err error, slot string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientTimeNotAvailable, fmt.Sprintf(constvars.ErrDevBookingTimeNotAvailable, slot))
	}
	// ErrBookingCreate replaces the client message of any underlying error.
	ErrBookingCreate = func(err error) *CustomError {
		devMessage := constvars.ErrDevServerProcess
		if err != nil {
			devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
		}
		return &CustomError{
			StatusCode:    constvars.StatusInternalServerError,
			ClientMessage: constvars.ErrClientFailedToCreateBooking,
			DevMessage:    devMessage,
			Locations:     []Location{getLocation(2)},
		}
	}
	ErrBookingDuplicateSubmission = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientBookingAlreadySubmitted, constvars.ErrDevBookingDuplicateSubmission)
	}
	ErrBookingNotCancellable = func(err error, bookingID, status string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientBookingNotCancellable, fmt.Sprintf(constvars.ErrDevBookingNotCancellable, bookingID, status))
	}
	ErrBookingNotOwned = func(err error, bookingID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientBookingNotOwned, fmt.Sprintf(constvars.ErrDevBookingNotOwned, bookingID))
	}

	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, redisKey))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	ErrMongoFind = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMongoFind, collection))
	}
	ErrMongoDecode = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMongoDecode, collection))
	}
	ErrMongoInsert = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMongoInsert, collection))
	}
	ErrMongoUpdate = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMongoUpdate, collection))
	}

	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucketName))
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSendHTTPRequest)
	}
	ErrUnexpectedHTTPStatus = func(err error, statusCode int, endpoint string) *CustomError {
		return BuildNewCustomError(err, statusCode, constvars.ErrClientWalletAuthFailed, fmt.Sprintf(constvars.ErrDevUnexpectedHTTPStatus, statusCode, endpoint))
	}
	ErrWalletSigner = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientWalletAuthFailed, constvars.ErrDevWalletSigner)
	}
	ErrRabbitMQPublish = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queue))
	}
)

// ErrRegistrationValidation carries every failing registration field at once.
func ErrRegistrationValidation(fields map[string]string) *CustomError {
	return &CustomError{
		StatusCode:    constvars.StatusBadRequest,
		ClientMessage: constvars.ErrClientRegistrationInvalid,
		Fields:        fields,
		DevMessage:    constvars.ErrDevRegistrationValidation,
		Locations:     []Location{getLocation(2)},
	}
}

package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email",
	"simple_email":     "must be a valid email",
	"alphanum":         "must contain only alphanumeric characters",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"numeric":          "must be a number",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"ltefield":         "must be less than or equal to %s",
	"positive_number":  "must be a number greater than 0",
	"not_past_date":    "date must not be in the past",
	"session_duration": "must be one of [30, 60, 90, 120]",
	"eth_addr":         "must be a valid wallet address",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"ltefield": true,
}

// Registration form messages, keyed by field then validation tag
var RegistrationValidationMessages = map[string]map[string]string{
	"fullName":       {"required": "Full name is required"},
	"email":          {"required": "Email is required", "simple_email": "Invalid email format"},
	"phone":          {"required": "Phone number is required"},
	"specialization": {"required": "Specialization is required"},
	"description":    {"required": "Description is required"},
	"hourlyRate":     {"required": "Hourly rate is required", "positive_number": "Please enter a valid hourly rate"},
	"credentials":    {"required": "Credentials are required"},
	"experience":     {"required": "Years of experience is required"},
	"availability":   {"at_least_one_slot": "Please select at least one availability slot"},
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyRequest                = "too many requests, please try again later"
	ErrClientRequestBodyTooLarge           = "request body too large"
	ErrClientInvalidImageFormat            = "invalid image format, only jpeg, png and webp are allowed"
	ErrClientTherapistNotFound             = "Therapist not found"
	ErrClientBookingNotFound               = "Booking not found"
	ErrClientSelectDateAndTime             = "Please select both date and time"
	ErrClientTimeNotAvailable              = "the selected time is not available for this therapist"
	ErrClientFailedToCreateBooking         = "Failed to create booking. Please try again."
	ErrClientBookingAlreadySubmitted       = "this booking is already being submitted"
	ErrClientBookingNotCancellable         = "only scheduled bookings can be cancelled"
	ErrClientBookingNotOwned               = "you can't modify this booking"
	ErrClientRegistrationInvalid           = "please fix the highlighted fields"
	ErrClientWalletAuthFailed              = "wallet authentication failed"
	ErrClientInvalidPriceRange             = "min_price must be less than or equal to max_price"
	ErrClientInvalidBookingStatus          = "status must be one of [all, scheduled, completed, cancelled]"
)

// Error messages for developers
const (
	ErrDevInvalidInput                = "invalid input"
	ErrDevCannotParseJSON             = "cannot parse JSON"
	ErrDevCannotMarshalJSON           = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm    = "cannot parse multipart form"
	ErrDevValidationFailed            = "validation failed"
	ErrDevImageValidationFailed       = "image validation failed"
	ErrDevURLParamIDValidationFailed  = "url param %s validation failed"
	ErrDevQueryParamValidationFailed  = "query param %s validation failed"
	ErrDevServerDeadlineExceeded      = "server deadline exceeded"
	ErrDevServerProcess               = "server failed to process the request"
	ErrDevRequestBodyTooLarge         = "request body exceeded the configured limit"
	ErrDevTooManyRequest              = "rate limit exceeded"
	ErrDevPanicRecovered              = "panic recovered"
	ErrDevConfigMissing               = "missing required configuration %s"
	ErrDevTherapistNotFound           = "therapist %s not found"
	ErrDevBookingNotFound             = "booking %s not found"
	ErrDevBookingNotCancellable       = "booking %s has status %s"
	ErrDevBookingNotOwned             = "booking %s is not owned by the caller"
	ErrDevBookingDuplicateSubmission  = "booking submission locked by idempotency key"
	ErrDevBookingTimeNotAvailable     = "time %s is not in therapist availability"
	ErrDevRegistrationValidation      = "registration form validation failed"
	ErrDevAuthSigningMethod           = "unexpected signing method"
	ErrDevAuthTokenInvalid            = "invalid token"
	ErrDevAuthTokenMissing            = "token missing"
	ErrDevAuthInvalidSession          = "invalid session"
	ErrDevAuthGenerateToken           = "failed to generate session token"
	ErrDevWalletAuthStatus            = "wallet auth payload status is %s"
	ErrDevWalletAuthNonceInvalid      = "nonce is unknown, expired or already used"
	ErrDevWalletAuthNonceMismatch     = "nonce in message does not match the issued nonce"
	ErrDevWalletAuthAddressMismatch   = "address in message does not match the payload address"
	ErrDevWalletAuthMessageMalformed  = "malformed sign-in message"
	ErrDevWalletAuthMessageExpired    = "sign-in message expired"
	ErrDevWalletAuthMessageNotYet     = "sign-in message is not valid yet"
	ErrDevWalletAuthSignatureInvalid  = "signature does not recover the payload address"
	ErrDevRedisSet                    = "failed to set data in redis"
	ErrDevRedisGet                    = "failed to get data %s from redis"
	ErrDevRedisDelete                 = "failed to delete data from redis"
	ErrDevRedisUnlock                 = "failed to release redis lock"
	ErrDevMongoFind                   = "failed to find documents in collection %s"
	ErrDevMongoInsert                 = "failed to insert document into collection %s"
	ErrDevDuplicateID                 = "document id already exists"
	ErrDevMongoUpdate                 = "failed to update document in collection %s"
	ErrDevMongoDecode                 = "failed to decode documents from collection %s"
	ErrDevMinioCreateObject           = "failed to create object in bucket %s"
	ErrDevRabbitMQPublish             = "failed to publish message to queue %s"
	ErrDevStorageDriverNotSupported   = "storage driver %s is not supported"
	ErrDevStorageAvatarNotConfigured  = "avatar storage is not configured"
	ErrDevCreateHTTPRequest           = "failed to create HTTP request"
	ErrDevSendHTTPRequest             = "failed to send HTTP request"
	ErrDevUnexpectedHTTPStatus        = "unexpected HTTP status %d from %s"
	ErrDevWalletSigner                = "wallet signer failed"
	ErrDevWalletSignerNoResult        = "wallet signer returned no result"
)

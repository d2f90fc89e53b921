package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingRequestKey           = "request"
	LoggingResponseKey          = "response"
	LoggingSessionIDKey         = "session_id"
	LoggingWalletAddressKey     = "wallet_address"
	LoggingTherapistIDKey       = "therapist_id"
	LoggingBookingIDKey         = "booking_id"
	LoggingBookingStatusKey     = "booking_status"
	LoggingFilterKey            = "filter"
	LoggingCountKey             = "count"
	LoggingDurationMinuteKey    = "duration_minute"
	LoggingAmountKey            = "amount"
	LoggingRedisKey             = "redis_key"
	LoggingLockValueKey         = "lock_value"
	LoggingLockExpirationKey    = "lock_expiration"
	LoggingLockStoredValueKey   = "lock_stored_value"
	LoggingLockExpectedValueKey = "lock_expected_value"
	LoggingEventTypeKey         = "event_type"
	LoggingQueueKey             = "queue"
	LoggingBucketNameKey        = "bucket_name"
	LoggingObjectNameKey        = "object_name"
	LoggingValidationErrorsKey  = "validation_errors"
	LoggingErrorLocationKey     = "location"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)

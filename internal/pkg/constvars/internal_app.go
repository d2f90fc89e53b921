package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	StorageDriverMemory = "memory"
	StorageDriverMongo  = "mongo"
)

// BookingIDMaxAttempts bounds how many fresh ids are tried when a generated
// booking id is already taken.
const BookingIDMaxAttempts = 5

const (
	MongoCollectionTherapists = "therapists"
	MongoCollectionBookings   = "bookings"
)

const (
	RedisKeyNonceFormat          = "nonce:%s"
	RedisKeySessionFormat        = "session:%s"
	RedisKeyBookingSubmitFormat  = "booking:submit:%s:%s"
	RedisValueNonceIssued        = "issued"
	BookingSubmitLockTTLInMinute = 5
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingCancelled     = "booking.cancelled"
	EventTherapistRegistered  = "therapist.registered"
	EventSourceTherapyConnect = "therapyconnect-service"
)

const (
	AvatarObjectNameFormat = "therapists/%s/avatar%s"
	AvatarURLFormat        = "%s/%s/%s"
)

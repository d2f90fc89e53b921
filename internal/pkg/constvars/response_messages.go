package constvars

const (
	NonceIssuedMessage                = "successfully issued nonce"
	LoginSuccessMessage               = "successfully login"
	LogoutSuccessMessage              = "successfully logout"
	GetProfileSuccessMessage          = "successfully get profile"
	GetTherapistsSuccessMessage       = "%d therapist(s) found"
	GetTherapistsEmptyMessage         = "No therapists found matching your criteria."
	GetTherapistSuccessMessage        = "successfully get therapist"
	GetSpecializationsSuccessMessage  = "successfully get specializations"
	QuotePriceSuccessMessage          = "successfully calculate session price"
	UploadAvatarSuccessMessage        = "successfully upload therapist avatar"
	CreateBookingSuccessMessage       = "Booking confirmed"
	GetBookingsSuccessMessage         = "successfully get bookings"
	CancelBookingSuccessMessage       = "successfully cancel booking"
	RegisterTherapistSuccessMessage   = "You can now start accepting appointments. Your profile will be visible in the therapist listing."
	GetRegistrationOptionsSuccessText = "successfully get registration options"
	ResponseUnknown                   = "unknown"
)

package constvars

const (
	URLParamTherapistID = "therapistId"
	URLParamBookingID   = "bookingId"
)

const (
	URLQueryParamSpecialization = "specialization"
	URLQueryParamMinPrice       = "min_price"
	URLQueryParamMaxPrice       = "max_price"
	URLQueryParamSearch         = "search"
	URLQueryParamStatus         = "status"
	URLQueryParamDuration       = "duration"
	URLQueryParamTherapistID    = "therapistId"
)

const (
	FormFieldAvatarImage = "image"
)

const (
	PathNonce       = "/nonce"
	PathAuth        = "/auth"
	PathAuthLogin   = "/auth/login"
	PathAuthMe      = "/auth/me"
	PathAuthLogout  = "/auth/logout"
	PathTherapists  = "/therapists"
	PathBookings    = "/bookings"
	PathLogin       = "/login"
	PathMe          = "/me"
	PathLogout      = "/logout"
	PathQuote       = "/quote"
	PathAvatar      = "/avatar"
	PathCancel      = "/cancel"
	PathOptions     = "/options"
	PathRegister    = "/registrations"
	PathSpecialties = "/specializations"
)

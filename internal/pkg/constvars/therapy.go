package constvars

const (
	SpecializationAll = "all"

	DefaultMinPrice        = 50
	DefaultMaxPrice        = 300
	DefaultSessionDuration = 60
	MinutesPerHour         = 60
	PriceDecimalPlaces     = 2
)

// Filter facets shown above the therapist directory.
var SpecializationFacets = []string{
	SpecializationAll,
	"CBT",
	"Family Therapy",
	"Trauma",
	"Addiction",
}

// Options offered by the therapist registration form.
var RegistrationSpecializationOptions = []string{
	"Cognitive Behavioral Therapy",
	"Family Therapy",
	"Trauma Therapy",
	"Addiction Counseling",
	"Relationship Counseling",
	"Child Psychology",
	"Clinical Psychology",
	"Other",
}

var AllowedSessionDurations = []int{30, 60, 90, 120}

const (
	BookingStatusAll       = "all"
	BookingStatusScheduled = "scheduled"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

var BookingStatusFilters = []string{
	BookingStatusAll,
	BookingStatusScheduled,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

const (
	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
	PaymentStatusRefunded  = "refunded"
)

const (
	SlotTimeMorning   = "09:00"
	SlotTimeAfternoon = "14:00"
	SlotTimeEvening   = "18:00"
	SlotFormat        = "%s %s"
	DateLayout        = "2006-01-02"
)

const (
	DefaultTherapistImageURL = "https://images.unsplash.com/photo-1511367461989-f85a21fda167?w=800&auto=format&fit=crop"
)

const (
	WalletAuthStatusSuccess = "success"
	WalletAuthStatusError   = "error"
	WalletAuthRequestID     = "0"
	WalletAuthStatement     = "This is my statement and here is a link https://worldcoin.com/apps"
	WalletAuthValidDays     = 7
	WalletAuthNotBeforeDays = 1
	WalletAddressPrefixLen  = 6
	WalletAddressSuffixLen  = 4
	WalletAddressEllipsis   = "..."
)

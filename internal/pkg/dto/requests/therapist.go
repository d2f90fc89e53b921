package requests

type TherapistFilter struct {
	Specialization string
	MinPrice       float64 `validate:"gte=0"`
	MaxPrice       float64 `validate:"gte=0"`
	Search         string
}

type PriceQuote struct {
	TherapistID string `validate:"required"`
	Duration    int    `validate:"gt=0"`
}

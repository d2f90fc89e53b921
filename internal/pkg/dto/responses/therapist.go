package responses

type Therapist struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Description    string   `json:"description"`
	HourlyRate     float64  `json:"hourlyRate"`
	Availability   []string `json:"availability"`
	Rating         float64  `json:"rating"`
	ImageURL       string   `json:"imageUrl"`
}

type TherapistFilter struct {
	Specialization string  `json:"specialization"`
	MinPrice       float64 `json:"minPrice"`
	MaxPrice       float64 `json:"maxPrice"`
	Search         string  `json:"search"`
}

type TherapistList struct {
	Count      int             `json:"count"`
	Filter     TherapistFilter `json:"filter"`
	Therapists []Therapist     `json:"therapists"`
}

type Specializations struct {
	Facets []string `json:"facets"`
}

type PriceQuote struct {
	TherapistID string  `json:"therapistId"`
	HourlyRate  float64 `json:"hourlyRate"`
	Duration    int     `json:"duration"`
	Total       string  `json:"total"`
}

package responses

type RegistrationSummary struct {
	TherapistID    string                     `json:"therapistId"`
	FullName       string                     `json:"fullName"`
	Email          string                     `json:"email"`
	Phone          string                     `json:"phone"`
	Specialization string                     `json:"specialization"`
	Description    string                     `json:"description"`
	HourlyRate     string                     `json:"hourlyRate"`
	Credentials    string                     `json:"credentials"`
	Experience     string                     `json:"experience"`
	Availability   map[string]map[string]bool `json:"availability"`
	Slots          []string                   `json:"slots"`
}

type RegistrationOptions struct {
	Specializations []string `json:"specializations"`
	Days            []string `json:"days"`
	TimesOfDay      []string `json:"timesOfDay"`
}

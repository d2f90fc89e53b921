package models

import (
	"strings"
	"therapyconnect-service/internal/pkg/dto/responses"
	"time"
)

type Therapist struct {
	ID             string    `bson:"_id"`
	Name           string    `bson:"name"`
	Specialization string    `bson:"specialization"`
	Description    string    `bson:"description"`
	HourlyRate     float64   `bson:"hourly_rate"`
	Availability   []string  `bson:"availability"`
	Rating         float64   `bson:"rating"`
	ImageURL       string    `bson:"image_url"`
	Email          string    `bson:"email,omitempty"`
	Phone          string    `bson:"phone,omitempty"`
	Credentials    string    `bson:"credentials,omitempty"`
	Experience     string    `bson:"experience,omitempty"`
	CreatedAt      time.Time `bson:"created_at"`
}

func (t Therapist) OffersSlot(slot string) bool {
	for _, available := range t.Availability {
		if strings.EqualFold(available, strings.TrimSpace(slot)) {
			return true
		}
	}
	return false
}

func (t Therapist) ConvertIntoResponse() responses.Therapist {
	availability := t.Availability
	if availability == nil {
		availability = []string{}
	}
	return responses.Therapist{
		ID:             t.ID,
		Name:           t.Name,
		Specialization: t.Specialization,
		Description:    t.Description,
		HourlyRate:     t.HourlyRate,
		Availability:   availability,
		Rating:         t.Rating,
		ImageURL:       t.ImageURL,
	}
}

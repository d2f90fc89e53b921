package therapists

import (
	"therapyconnect-service/internal/app/models"
	"time"
)

var seedCreatedAt = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

// SeedTherapists is the directory the service starts with.
func SeedTherapists() []models.Therapist {
	return []models.Therapist{
		{
			ID:             "1",
			Name:           "Dr. Sarah Johnson",
			Specialization: "Cognitive Behavioral Therapy",
			Description:    "Experienced therapist specializing in anxiety and depression treatment. Licensed with 10+ years of experience.",
			HourlyRate:     150,
			Availability:   []string{"Mon 10:00", "Tue 14:00", "Wed 16:00", "Thu 11:00", "Fri 15:00"},
			Rating:         4.8,
			ImageURL:       "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
			CreatedAt:      seedCreatedAt,
		},
		{
			ID:             "2",
			Name:           "Dr. Michael Chen",
			Specialization: "Family Therapy",
			Description:    "Family therapist with expertise in relationship counseling and family dynamics. Focus on communication and conflict resolution.",
			HourlyRate:     180,
			Availability:   []string{"Mon 13:00", "Tue 15:00", "Wed 10:00", "Thu 14:00", "Fri 16:00"},
			Rating:         4.9,
			ImageURL:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
			CreatedAt:      seedCreatedAt,
		},
		{
			ID:             "3",
			Name:           "Dr. Emily Rodriguez",
			Specialization: "Trauma Therapy",
			Description:    "Specialized in trauma-informed care and EMDR therapy. Helping clients heal from past experiences and build resilience.",
			HourlyRate:     200,
			Availability:   []string{"Mon 09:00", "Tue 11:00", "Wed 14:00", "Thu 16:00", "Fri 10:00"},
			Rating:         4.7,
			ImageURL:       "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
			CreatedAt:      seedCreatedAt,
		},
	}
}

package therapists

import (
	"context"
	"sync"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/app/models"
)

type therapistMemoryRepository struct {
	mu         sync.RWMutex
	therapists []models.Therapist
}

func NewTherapistMemoryRepository(seed []models.Therapist) contracts.TherapistRepository {
	therapists := make([]models.Therapist, len(seed))
	copy(therapists, seed)
	return &therapistMemoryRepository{therapists: therapists}
}

func (repo *therapistMemoryRepository) FindAll(ctx context.Context) ([]models.Therapist, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]models.Therapist, len(repo.therapists))
	copy(result, repo.therapists)
	return result, nil
}

func (repo *therapistMemoryRepository) FindByID(ctx context.Context, therapistID string) (*models.Therapist, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, therapist := range repo.therapists {
		if therapist.ID == therapistID {
			found := therapist
			return &found, nil
		}
	}
	return nil, nil
}

func (repo *therapistMemoryRepository) Create(ctx context.Context, therapist models.Therapist) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.therapists = append(repo.therapists, therapist)
	return nil
}

func (repo *therapistMemoryRepository) UpdateImageURL(ctx context.Context, therapistID, imageURL string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.therapists {
		if repo.therapists[i].ID == therapistID {
			repo.therapists[i].ImageURL = imageURL
			return nil
		}
	}
	return nil
}

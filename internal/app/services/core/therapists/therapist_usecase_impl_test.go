package therapists

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, file io.Reader, size int64, objectName, contentType string) (string, error) {
	args := m.Called(ctx, file, size, objectName, contentType)
	return args.String(0), args.Error(1)
}

func defaultFilter() requests.TherapistFilter {
	return requests.TherapistFilter{
		Specialization: constvars.SpecializationAll,
		MinPrice:       constvars.DefaultMinPrice,
		MaxPrice:       constvars.DefaultMaxPrice,
	}
}

func namesOf(therapists []models.Therapist) []string {
	names := make([]string, len(therapists))
	for i, therapist := range therapists {
		names[i] = therapist.Name
	}
	return names
}

func TestFilterTherapists(t *testing.T) {
	seed := SeedTherapists()

	testCases := []struct {
		name     string
		mutate   func(*requests.TherapistFilter)
		expected []string
	}{
		{"defaults return everyone", func(f *requests.TherapistFilter) {}, []string{"Dr. Sarah Johnson", "Dr. Michael Chen", "Dr. Emily Rodriguez"}},
		{"trauma facet", func(f *requests.TherapistFilter) { f.Specialization = "Trauma" }, []string{"Dr. Emily Rodriguez"}},
		{"case insensitive facet", func(f *requests.TherapistFilter) { f.Specialization = "family therapy" }, []string{"Dr. Michael Chen"}},
		{"price upper bound inclusive", func(f *requests.TherapistFilter) { f.MaxPrice = 180 }, []string{"Dr. Sarah Johnson", "Dr. Michael Chen"}},
		{"price lower bound inclusive", func(f *requests.TherapistFilter) { f.MinPrice = 180 }, []string{"Dr. Michael Chen", "Dr. Emily Rodriguez"}},
		{"search in description", func(f *requests.TherapistFilter) { f.Search = "EMDR" }, []string{"Dr. Emily Rodriguez"}},
		{"search in name", func(f *requests.TherapistFilter) { f.Search = "chen" }, []string{"Dr. Michael Chen"}},
		{"no match", func(f *requests.TherapistFilter) { f.Specialization = "Addiction" }, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filter := defaultFilter()
			tc.mutate(&filter)
			assert.Equal(t, tc.expected, namesOf(FilterTherapists(seed, filter)))
		})
	}
}

func TestFilterTherapists_ResultIsOrderedSubsequence(t *testing.T) {
	seed := SeedTherapists()
	specializations := append([]string{""}, constvars.SpecializationFacets...)
	searches := []string{"", "therapy", "family", "experience", "zzz"}
	prices := [][2]float64{{0, 1000}, {50, 300}, {150, 150}, {160, 200}, {300, 50}}

	for _, specialization := range specializations {
		for _, search := range searches {
			for _, price := range prices {
				filter := requests.TherapistFilter{Specialization: specialization, Search: search, MinPrice: price[0], MaxPrice: price[1]}
				result := FilterTherapists(seed, filter)

				next := 0
				for _, therapist := range result {
					for next < len(seed) && seed[next].ID != therapist.ID {
						next++
					}
					require.Less(t, next, len(seed), "result is not an ordered subsequence")
					next++

					assert.GreaterOrEqual(t, therapist.HourlyRate, price[0])
					assert.LessOrEqual(t, therapist.HourlyRate, price[1])
				}
			}
		}
	}
}

func TestListMessage(t *testing.T) {
	assert.Equal(t, "No therapists found matching your criteria.", ListMessage(0))
	assert.Equal(t, "1 therapist(s) found", ListMessage(1))
	assert.Equal(t, "3 therapist(s) found", ListMessage(3))
}

func TestTherapistUsecase_ListTherapists(t *testing.T) {
	uc := NewTherapistUsecase(NewTherapistMemoryRepository(SeedTherapists()), nil, zap.NewNop())

	result, err := uc.ListTherapists(context.Background(), requests.TherapistFilter{MinPrice: 50, MaxPrice: 300, Search: "trauma"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, constvars.SpecializationAll, result.Filter.Specialization)
	assert.Equal(t, "3", result.Therapists[0].ID)

	_, err = uc.ListTherapists(context.Background(), requests.TherapistFilter{MinPrice: 300, MaxPrice: 50})
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestTherapistUsecase_GetTherapist(t *testing.T) {
	uc := NewTherapistUsecase(NewTherapistMemoryRepository(SeedTherapists()), nil, zap.NewNop())

	therapist, err := uc.GetTherapist(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Michael Chen", therapist.Name)

	_, err = uc.GetTherapist(context.Background(), "42")
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	assert.Equal(t, "Therapist not found", customErr.ClientMessage)
}

func TestTherapistUsecase_QuotePrice(t *testing.T) {
	uc := NewTherapistUsecase(NewTherapistMemoryRepository(SeedTherapists()), nil, zap.NewNop())

	quote, err := uc.QuotePrice(context.Background(), requests.PriceQuote{TherapistID: "1", Duration: 90})
	require.NoError(t, err)
	assert.Equal(t, "225.00", quote.Total)
	assert.Equal(t, 150.0, quote.HourlyRate)

	quote, err = uc.QuotePrice(context.Background(), requests.PriceQuote{TherapistID: "3"})
	require.NoError(t, err)
	assert.Equal(t, constvars.DefaultSessionDuration, quote.Duration)
	assert.Equal(t, "200.00", quote.Total)
}

func TestTherapistUsecase_UploadAvatar(t *testing.T) {
	repo := NewTherapistMemoryRepository(SeedTherapists())
	storage := new(MockStorage)
	uc := NewTherapistUsecase(repo, storage, zap.NewNop())

	image := bytes.NewReader([]byte("png-bytes"))
	storage.On("UploadFile", mock.Anything, image, int64(9), "therapists/1/avatar.png", constvars.MIMEImagePNG).
		Return("http://cdn.local/avatars/therapists/1/avatar.png", nil)

	therapist, err := uc.UploadAvatar(context.Background(), "1", image, 9, "face.PNG")
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.local/avatars/therapists/1/avatar.png", therapist.ImageURL)

	stored, err := repo.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, therapist.ImageURL, stored.ImageURL)
	storage.AssertExpectations(t)
}

func TestTherapistUsecase_UploadAvatarWithoutStorage(t *testing.T) {
	uc := NewTherapistUsecase(NewTherapistMemoryRepository(SeedTherapists()), nil, zap.NewNop())

	_, err := uc.UploadAvatar(context.Background(), "1", bytes.NewReader(nil), 0, "face.png")
	assert.Error(t, err)
}

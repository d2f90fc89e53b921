package registrations

import (
	"context"
	"errors"
	"testing"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/app/services/core/therapists"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	args := m.Called(ctx, eventType, data)
	return args.Error(0)
}

func validForm() requests.RegisterTherapist {
	var grid models.AvailabilityGrid
	grid.Set(models.Monday, models.Morning, true)
	grid.Set(models.Wednesday, models.Evening, true)

	return requests.RegisterTherapist{
		FullName:       "Dr. Ana Lima",
		Email:          "ana@clinic.co",
		Phone:          "+55 11 99999-0000",
		Specialization: "Child Psychology",
		Description:    "Play therapy for children.",
		HourlyRate:     "120",
		Credentials:    "CRP 06/12345",
		Experience:     "8",
		Availability:   grid,
	}
}

func TestValidateRegistration_EmptyFormReportsEveryField(t *testing.T) {
	fields := ValidateRegistration(requests.RegisterTherapist{})

	assert.Equal(t, map[string]string{
		"fullName":       "Full name is required",
		"email":          "Email is required",
		"phone":          "Phone number is required",
		"specialization": "Specialization is required",
		"description":    "Description is required",
		"hourlyRate":     "Hourly rate is required",
		"credentials":    "Credentials are required",
		"experience":     "Years of experience is required",
		"availability":   "Please select at least one availability slot",
	}, fields)
}

func TestValidateRegistration_FormatErrors(t *testing.T) {
	form := validForm()
	form.Email = "not-an-email"
	form.HourlyRate = "-5"

	fields := ValidateRegistration(form)
	assert.Equal(t, map[string]string{
		"email":      "Invalid email format",
		"hourlyRate": "Please enter a valid hourly rate",
	}, fields)

	for _, rate := range []string{"Inf", "Infinity", "NaN", "0x1p4", "0.001", "1e-9", "0", "abc"} {
		t.Run("hourly rate "+rate, func(t *testing.T) {
			form := validForm()
			form.HourlyRate = rate
			assert.Equal(t, map[string]string{"hourlyRate": "Please enter a valid hourly rate"}, ValidateRegistration(form))
		})
	}
}

func TestValidateRegistration_AcceptedRates(t *testing.T) {
	for _, rate := range []string{"120", " 95.5 ", "0.01", "1.5e2"} {
		form := validForm()
		form.HourlyRate = rate
		assert.Empty(t, ValidateRegistration(form), rate)
	}
}

func TestValidateRegistration_ValidForm(t *testing.T) {
	assert.Empty(t, ValidateRegistration(validForm()))

	form := validForm()
	form.Email = "a@b.co"
	assert.Empty(t, ValidateRegistration(form))
}

func TestRegistrationUsecase_Register(t *testing.T) {
	repo := therapists.NewTherapistMemoryRepository(therapists.SeedTherapists())
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, constvars.EventTherapistRegistered, mock.Anything).Return(nil)
	uc := NewRegistrationUsecase(repo, publisher, zap.NewNop())

	form := validForm()
	summary, err := uc.Register(context.Background(), &form)
	require.NoError(t, err)

	assert.Equal(t, "Dr. Ana Lima", summary.FullName)
	assert.Equal(t, "120.00", summary.HourlyRate)
	assert.Equal(t, []string{"Mon 09:00", "Wed 18:00"}, summary.Slots)
	assert.True(t, summary.Availability["monday"]["morning"])
	assert.False(t, summary.Availability["sunday"]["evening"])

	stored, err := repo.FindByID(context.Background(), summary.TherapistID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 120.0, stored.HourlyRate)
	assert.Equal(t, 0.0, stored.Rating)
	assert.Equal(t, constvars.DefaultTherapistImageURL, stored.ImageURL)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 4)
	publisher.AssertExpectations(t)
}

func TestRegistrationUsecase_RegisterInvalid(t *testing.T) {
	repo := therapists.NewTherapistMemoryRepository(nil)
	publisher := new(MockEventPublisher)
	uc := NewRegistrationUsecase(repo, publisher, zap.NewNop())

	form := validForm()
	form.Availability = models.AvailabilityGrid{}
	_, err := uc.Register(context.Background(), &form)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, map[string]string{"availability": "Please select at least one availability slot"}, customErr.Fields)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegistrationUsecase_RegisterRejectsUnparseableRate(t *testing.T) {
	repo := therapists.NewTherapistMemoryRepository(nil)
	publisher := new(MockEventPublisher)
	uc := NewRegistrationUsecase(repo, publisher, zap.NewNop())

	for _, rate := range []string{"Inf", "0x1p4", "1e-9"} {
		form := validForm()
		form.HourlyRate = rate
		_, err := uc.Register(context.Background(), &form)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr), rate)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode, rate)
		assert.Equal(t, map[string]string{"hourlyRate": "Please enter a valid hourly rate"}, customErr.Fields, rate)
	}

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegistrationUsecase_ListOptions(t *testing.T) {
	uc := NewRegistrationUsecase(therapists.NewTherapistMemoryRepository(nil), new(MockEventPublisher), zap.NewNop())

	options := uc.ListOptions(context.Background())
	assert.Len(t, options.Specializations, 8)
	assert.Equal(t, "Other", options.Specializations[7])
	assert.Equal(t, []string{"morning", "afternoon", "evening"}, options.TimesOfDay)
	assert.Len(t, options.Days, 7)
}

package registrations

import (
	"context"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/dto/responses"
	"therapyconnect-service/internal/pkg/exceptions"
	"therapyconnect-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type registrationUsecase struct {
	TherapistRepository contracts.TherapistRepository
	EventPublisher      contracts.EventPublisher
	Log                 *zap.Logger
	now                 func() time.Time
}

func NewRegistrationUsecase(
	therapistRepository contracts.TherapistRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.RegistrationUsecase {
	return &registrationUsecase{
		TherapistRepository: therapistRepository,
		EventPublisher:      eventPublisher,
		Log:                 logger,
		now:                 time.Now,
	}
}

// ValidateRegistration reports every failing field of the form with its
// message. The map is empty when the form can be submitted.
func ValidateRegistration(form requests.RegisterTherapist) map[string]string {
	err := utils.ValidateStruct(form)
	if err == nil {
		return map[string]string{}
	}
	return exceptions.FormatFieldValidationErrors(err, constvars.RegistrationValidationMessages)
}

func (uc *registrationUsecase) Register(ctx context.Context, request *requests.RegisterTherapist) (*responses.RegistrationSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("registrationUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	fields := ValidateRegistration(*request)
	if len(fields) > 0 {
		uc.Log.Error("registrationUsecase.Register validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Any(constvars.LoggingValidationErrorsKey, fields),
		)
		return nil, exceptions.ErrRegistrationValidation(fields)
	}

	hourlyRate, ok := utils.ParsePositiveAmount(request.HourlyRate)
	if !ok {
		uc.Log.Error("registrationUsecase.Register error parsing hourly rate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("hourly_rate", request.HourlyRate),
		)
		return nil, exceptions.ErrRegistrationValidation(map[string]string{
			"hourlyRate": constvars.RegistrationValidationMessages["hourlyRate"]["positive_number"],
		})
	}

	therapist := models.Therapist{
		ID:             uuid.NewString(),
		Name:           request.FullName,
		Specialization: request.Specialization,
		Description:    request.Description,
		HourlyRate:     hourlyRate.Round(constvars.PriceDecimalPlaces).InexactFloat64(),
		Availability:   request.Availability.Slots(),
		Rating:         0,
		ImageURL:       constvars.DefaultTherapistImageURL,
		Email:          request.Email,
		Phone:          request.Phone,
		Credentials:    request.Credentials,
		Experience:     request.Experience,
		CreatedAt:      uc.now().UTC(),
	}

	err := uc.TherapistRepository.Create(ctx, therapist)
	if err != nil {
		uc.Log.Error("registrationUsecase.Register error creating therapist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	summary := &responses.RegistrationSummary{
		TherapistID:    therapist.ID,
		FullName:       request.FullName,
		Email:          request.Email,
		Phone:          request.Phone,
		Specialization: request.Specialization,
		Description:    request.Description,
		HourlyRate:     utils.FormatPrice(hourlyRate),
		Credentials:    request.Credentials,
		Experience:     request.Experience,
		Availability:   request.Availability.ToMap(),
		Slots:          therapist.Availability,
	}

	if err := uc.EventPublisher.Publish(ctx, constvars.EventTherapistRegistered, therapist.ConvertIntoResponse()); err != nil {
		uc.Log.Error("registrationUsecase.Register error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, constvars.EventTherapistRegistered),
			zap.Error(err),
		)
	}

	uc.Log.Info("registrationUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTherapistIDKey, therapist.ID),
	)
	return summary, nil
}

func (uc *registrationUsecase) ListOptions(ctx context.Context) *responses.RegistrationOptions {
	specializations := make([]string, len(constvars.RegistrationSpecializationOptions))
	copy(specializations, constvars.RegistrationSpecializationOptions)
	return &responses.RegistrationOptions{
		Specializations: specializations,
		Days:            models.WeekdayNames(),
		TimesOfDay:      models.TimeOfDayNames(),
	}
}

package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"therapyconnect-service/internal/app/config"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/dto/responses"
	"therapyconnect-service/internal/pkg/exceptions"
	"therapyconnect-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository   contracts.BookingRepository
	TherapistRepository contracts.TherapistRepository
	LockerService       contracts.LockerService
	EventPublisher      contracts.EventPublisher
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
	now                 func() time.Time
	generateID          func(time.Time) (string, error)
}

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	therapistRepository contracts.TherapistRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository:   bookingRepository,
		TherapistRepository: therapistRepository,
		LockerService:       lockerService,
		EventPublisher:      eventPublisher,
		InternalConfig:      internalConfig,
		Log:                 logger,
		now:                 time.Now,
		generateID:          utils.GenerateBookingID,
	}
}

func (uc *bookingUsecase) ListBookings(ctx context.Context, walletAddress string, request requests.ListBookings) (*responses.BookingList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ListBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWalletAddressKey, walletAddress),
		zap.String(constvars.LoggingBookingStatusKey, request.Status),
	)

	if request.Status == "" {
		request.Status = constvars.BookingStatusAll
	}
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("bookingUsecase.ListBookings invalid status filter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidBookingStatus(err)
	}

	bookings, err := uc.BookingRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("bookingUsecase.ListBookings error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := &responses.BookingList{
		Status:   request.Status,
		Bookings: []responses.Booking{},
	}
	for _, eachBooking := range bookings {
		if eachBooking.VisibleTo(walletAddress) && eachBooking.MatchesStatus(request.Status) {
			response.Bookings = append(response.Bookings, eachBooking.ConvertIntoResponse(walletAddress))
		}
	}
	response.Count = len(response.Bookings)

	uc.Log.Info("bookingUsecase.ListBookings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, response.Count),
	)
	return response, nil
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, walletAddress string, request *requests.CreateBooking) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWalletAddressKey, walletAddress),
		zap.String(constvars.LoggingTherapistIDKey, request.TherapistID),
	)

	if strings.TrimSpace(request.Date) == "" || strings.TrimSpace(request.Time) == "" {
		uc.Log.Error("bookingUsecase.CreateBooking date or time missing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrBookingDateTimeMissing(nil)
	}
	if request.Duration == 0 {
		request.Duration = constvars.DefaultSessionDuration
	}
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}
	if err := utils.ValidateStruct(requests.BookingDate{Date: request.Date}); err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking invalid date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	therapist, err := uc.TherapistRepository.FindByID(ctx, request.TherapistID)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking error finding therapist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBookingCreate(err)
	}
	if therapist == nil {
		return nil, exceptions.ErrTherapistNotFound(nil, request.TherapistID)
	}
	if !therapist.OffersSlot(request.Time) {
		uc.Log.Error("bookingUsecase.CreateBooking time not in availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTherapistIDKey, therapist.ID),
		)
		return nil, exceptions.ErrBookingTimeNotAvailable(nil, request.Time)
	}

	var lockKey, lockValue string
	if request.IdempotencyKey != "" {
		lockKey = fmt.Sprintf(constvars.RedisKeyBookingSubmitFormat, strings.ToLower(walletAddress), request.IdempotencyKey)
		acquired, value, err := uc.LockerService.TryLock(ctx, lockKey, uc.submitLockTTL())
		if err != nil {
			uc.Log.Error("bookingUsecase.CreateBooking error acquiring submit lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrBookingCreate(err)
		}
		if !acquired {
			uc.Log.Info("bookingUsecase.CreateBooking duplicate submission",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
			)
			return nil, exceptions.ErrBookingDuplicateSubmission(nil)
		}
		lockValue = value
	}

	booking, err := uc.storeBooking(ctx, walletAddress, therapist, request)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking error storing booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if lockKey != "" {
			if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
				uc.Log.Error("bookingUsecase.CreateBooking error releasing submit lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(unlockErr),
				)
			}
		}
		return nil, exceptions.ErrBookingCreate(err)
	}

	response := booking.ConvertIntoResponse(walletAddress)
	uc.publish(ctx, constvars.EventBookingCreated, response)

	uc.Log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
		zap.Float64(constvars.LoggingAmountKey, booking.Amount),
	)
	return &response, nil
}

// storeBooking retries with a fresh id while the repository reports the
// generated one as taken.
func (uc *bookingUsecase) storeBooking(ctx context.Context, walletAddress string, therapist *models.Therapist, request *requests.CreateBooking) (*models.Booking, error) {
	now := uc.now()
	booking := models.Booking{
		TherapistID:    therapist.ID,
		TherapistName:  therapist.Name,
		Specialization: therapist.Specialization,
		Date:           request.Date,
		Time:           request.Time,
		Status:         constvars.BookingStatusScheduled,
		PaymentStatus:  constvars.PaymentStatusPending,
		Amount:         utils.RoundPrice(utils.CalculateSessionPrice(therapist.HourlyRate, request.Duration)),
		Duration:       request.Duration,
		ClientWallet:   walletAddress,
		CreatedAt:      now.UTC(),
	}

	var err error
	for attempt := 0; attempt < constvars.BookingIDMaxAttempts; attempt++ {
		booking.ID, err = uc.generateID(now)
		if err != nil {
			return nil, err
		}

		err = uc.BookingRepository.Create(ctx, booking)
		if err == nil {
			return &booking, nil
		}
		if !errors.Is(err, exceptions.ErrDuplicateID) {
			return nil, err
		}
		uc.Log.Warn("bookingUsecase.storeBooking generated booking id already taken",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Int("attempt", attempt+1),
		)
	}
	return nil, err
}

func (uc *bookingUsecase) CancelBooking(ctx context.Context, walletAddress, bookingID string) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CancelBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWalletAddressKey, walletAddress),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.CancelBooking error finding booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil, bookingID)
	}
	if booking.IsShared() || !strings.EqualFold(booking.ClientWallet, walletAddress) {
		uc.Log.Error("bookingUsecase.CancelBooking booking not owned by caller",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
		)
		return nil, exceptions.ErrBookingNotOwned(nil, bookingID)
	}
	if !booking.CanCancel() {
		uc.Log.Error("bookingUsecase.CancelBooking booking not cancellable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingStatusKey, booking.Status),
		)
		return nil, exceptions.ErrBookingNotCancellable(nil, bookingID, booking.Status)
	}

	cancelled := booking.Cancelled()
	err = uc.BookingRepository.Update(ctx, cancelled)
	if err != nil {
		uc.Log.Error("bookingUsecase.CancelBooking error updating booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := cancelled.ConvertIntoResponse(walletAddress)
	uc.publish(ctx, constvars.EventBookingCancelled, response)

	uc.Log.Info("bookingUsecase.CancelBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return &response, nil
}

// publish never fails the caller; a lost event is only logged.
func (uc *bookingUsecase) publish(ctx context.Context, eventType string, data interface{}) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if err := uc.EventPublisher.Publish(ctx, eventType, data); err != nil {
		uc.Log.Error("bookingUsecase.publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}

func (uc *bookingUsecase) submitLockTTL() time.Duration {
	minutes := constvars.BookingSubmitLockTTLInMinute
	if uc.InternalConfig != nil && uc.InternalConfig.Booking.SubmitLockTTLInMinute > 0 {
		minutes = uc.InternalConfig.Booking.SubmitLockTTLInMinute
	}
	return time.Duration(minutes) * time.Minute
}

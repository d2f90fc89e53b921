package therapists

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/dto/responses"
	"therapyconnect-service/internal/pkg/exceptions"
	"therapyconnect-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type therapistUsecase struct {
	TherapistRepository contracts.TherapistRepository
	Storage             contracts.Storage
	Log                 *zap.Logger
}

// NewTherapistUsecase builds the directory usecase. storage may be nil, in
// which case avatar uploads are rejected.
func NewTherapistUsecase(
	therapistRepository contracts.TherapistRepository,
	storage contracts.Storage,
	logger *zap.Logger,
) contracts.TherapistUsecase {
	return &therapistUsecase{
		TherapistRepository: therapistRepository,
		Storage:             storage,
		Log:                 logger,
	}
}

func (uc *therapistUsecase) ListTherapists(ctx context.Context, filter requests.TherapistFilter) (*responses.TherapistList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("therapistUsecase.ListTherapists called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingFilterKey, filter),
	)

	if filter.Specialization == "" {
		filter.Specialization = constvars.SpecializationAll
	}
	if filter.MinPrice > filter.MaxPrice {
		uc.Log.Error("therapistUsecase.ListTherapists invalid price range",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Float64("min_price", filter.MinPrice),
			zap.Float64("max_price", filter.MaxPrice),
		)
		return nil, exceptions.ErrInvalidPriceRange(nil)
	}

	therapists, err := uc.TherapistRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("therapistUsecase.ListTherapists error fetching therapists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	filtered := FilterTherapists(therapists, filter)
	response := &responses.TherapistList{
		Count: len(filtered),
		Filter: responses.TherapistFilter{
			Specialization: filter.Specialization,
			MinPrice:       filter.MinPrice,
			MaxPrice:       filter.MaxPrice,
			Search:         filter.Search,
		},
		Therapists: make([]responses.Therapist, len(filtered)),
	}
	for i, eachTherapist := range filtered {
		response.Therapists[i] = eachTherapist.ConvertIntoResponse()
	}

	uc.Log.Info("therapistUsecase.ListTherapists succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, response.Count),
	)
	return response, nil
}

// FilterTherapists keeps the therapists matching the specialization, the
// inclusive price range and the search query, in their original order.
func FilterTherapists(therapists []models.Therapist, filter requests.TherapistFilter) []models.Therapist {
	specialization := strings.ToLower(strings.TrimSpace(filter.Specialization))
	query := strings.ToLower(strings.TrimSpace(filter.Search))

	result := make([]models.Therapist, 0, len(therapists))
	for _, therapist := range therapists {
		if specialization != "" && specialization != constvars.SpecializationAll &&
			!strings.Contains(strings.ToLower(therapist.Specialization), specialization) {
			continue
		}
		if therapist.HourlyRate < filter.MinPrice || therapist.HourlyRate > filter.MaxPrice {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(therapist.Name), query) &&
			!strings.Contains(strings.ToLower(therapist.Specialization), query) &&
			!strings.Contains(strings.ToLower(therapist.Description), query) {
			continue
		}
		result = append(result, therapist)
	}
	return result
}

// ListMessage is the label shown above the directory results.
func ListMessage(count int) string {
	if count == 0 {
		return constvars.GetTherapistsEmptyMessage
	}
	return fmt.Sprintf(constvars.GetTherapistsSuccessMessage, count)
}

func (uc *therapistUsecase) GetTherapist(ctx context.Context, therapistID string) (*responses.Therapist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("therapistUsecase.GetTherapist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTherapistIDKey, therapistID),
	)

	therapist, err := uc.findTherapist(ctx, therapistID)
	if err != nil {
		uc.Log.Error("therapistUsecase.GetTherapist error finding therapist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTherapistIDKey, therapistID),
			zap.Error(err),
		)
		return nil, err
	}

	response := therapist.ConvertIntoResponse()
	return &response, nil
}

func (uc *therapistUsecase) ListSpecializations(ctx context.Context) *responses.Specializations {
	facets := make([]string, len(constvars.SpecializationFacets))
	copy(facets, constvars.SpecializationFacets)
	return &responses.Specializations{Facets: facets}
}

func (uc *therapistUsecase) QuotePrice(ctx context.Context, request requests.PriceQuote) (*responses.PriceQuote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("therapistUsecase.QuotePrice called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTherapistIDKey, request.TherapistID),
		zap.Int(constvars.LoggingDurationMinuteKey, request.Duration),
	)

	therapist, err := uc.findTherapist(ctx, request.TherapistID)
	if err != nil {
		uc.Log.Error("therapistUsecase.QuotePrice error finding therapist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if request.Duration == 0 {
		request.Duration = constvars.DefaultSessionDuration
	}
	total := utils.CalculateSessionPrice(therapist.HourlyRate, request.Duration)

	uc.Log.Info("therapistUsecase.QuotePrice succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAmountKey, total.String()),
	)
	return &responses.PriceQuote{
		TherapistID: therapist.ID,
		HourlyRate:  therapist.HourlyRate,
		Duration:    request.Duration,
		Total:       utils.FormatPrice(total),
	}, nil
}

func (uc *therapistUsecase) UploadAvatar(ctx context.Context, therapistID string, image io.Reader, size int64, filename string) (*responses.Therapist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("therapistUsecase.UploadAvatar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTherapistIDKey, therapistID),
	)

	if uc.Storage == nil {
		uc.Log.Error("therapistUsecase.UploadAvatar storage is not configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrAvatarStorageNotConfigured(nil)
	}

	therapist, err := uc.findTherapist(ctx, therapistID)
	if err != nil {
		uc.Log.Error("therapistUsecase.UploadAvatar error finding therapist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	extension := strings.ToLower(filepath.Ext(filename))
	objectName := fmt.Sprintf(constvars.AvatarObjectNameFormat, therapist.ID, extension)
	imageURL, err := uc.Storage.UploadFile(ctx, image, size, objectName, utils.ImageContentType(filename))
	if err != nil {
		uc.Log.Error("therapistUsecase.UploadAvatar error uploading image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.TherapistRepository.UpdateImageURL(ctx, therapist.ID, imageURL)
	if err != nil {
		uc.Log.Error("therapistUsecase.UploadAvatar error updating image url",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	therapist.ImageURL = imageURL

	uc.Log.Info("therapistUsecase.UploadAvatar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	response := therapist.ConvertIntoResponse()
	return &response, nil
}

func (uc *therapistUsecase) findTherapist(ctx context.Context, therapistID string) (*models.Therapist, error) {
	therapist, err := uc.TherapistRepository.FindByID(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	if therapist == nil {
		return nil, exceptions.ErrTherapistNotFound(nil, therapistID)
	}
	return therapist, nil
}

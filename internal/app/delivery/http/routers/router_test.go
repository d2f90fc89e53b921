package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"therapyconnect-service/internal/app/config"
	"therapyconnect-service/internal/app/delivery/http/controllers"
	"therapyconnect-service/internal/app/delivery/http/middlewares"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/app/services/core/bookings"
	"therapyconnect-service/internal/app/services/core/registrations"
	"therapyconnect-service/internal/app/services/core/therapists"
	"therapyconnect-service/internal/app/services/shared/events"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/dto/responses"
	"therapyconnect-service/internal/pkg/exceptions"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testWallet = "0xabc0000000000000000000000000000000000def"

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) IssueNonce(ctx context.Context) (*responses.Nonce, error) {
	args := m.Called(ctx)
	nonce, _ := args.Get(0).(*responses.Nonce)
	return nonce, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	login, _ := args.Get(0).(*responses.Login)
	return login, args.Error(1)
}

func (m *MockAuthUsecase) Me(ctx context.Context, session *models.Session) (*responses.Me, error) {
	args := m.Called(ctx, session)
	me, _ := args.Get(0).(*responses.Me)
	return me, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func newTestRouter(t *testing.T, authUsecase *MockAuthUsecase) *chi.Mux {
	t.Helper()

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{}
	internalConfig.App.EndpointPrefix = "/api"
	internalConfig.App.AllowedOrigins = []string{"*"}
	internalConfig.App.AuthRequestsPerSecond = 100
	internalConfig.App.AuthRequestsBurst = 100
	internalConfig.App.RequestBodyLimitInMegabyte = 1

	therapistRepository := therapists.NewTherapistMemoryRepository(therapists.SeedTherapists())
	bookingRepository := bookings.NewBookingMemoryRepository(bookings.SeedBookings(testWallet))
	publisher := events.NewNoopPublisher(logger)

	therapistUsecase := therapists.NewTherapistUsecase(therapistRepository, nil, logger)
	registrationUsecase := registrations.NewRegistrationUsecase(therapistRepository, publisher, logger)
	bookingUsecase := bookings.NewBookingUsecase(bookingRepository, therapistRepository, nil, publisher, internalConfig, logger)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, authUsecase, internalConfig),
		controllers.NewAuthController(logger, authUsecase, internalConfig),
		controllers.NewTherapistController(logger, therapistUsecase, internalConfig),
		controllers.NewRegistrationController(logger, registrationUsecase, internalConfig),
		controllers.NewBookingController(logger, bookingUsecase, internalConfig),
	)
	return router
}

func authorizedSession(authUsecase *MockAuthUsecase) {
	session := &models.Session{SessionID: "s-1", User: models.AuthenticatedUser{WalletAddress: testWallet}}
	authUsecase.On("ResolveSession", mock.Anything, "good-token").Return(session, nil)
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data interface{}) responses.ResponseDTO {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	if data != nil && len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}
	return responses.ResponseDTO{Success: envelope.Success, Message: envelope.Message}
}

func TestTherapistRoutes(t *testing.T) {
	router := newTestRouter(t, new(MockAuthUsecase))

	t.Run("List filtered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/therapists?min_price=170", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		list := new(responses.TherapistList)
		envelope := decodeEnvelope(t, rr, list)
		assert.True(t, envelope.Success)
		assert.Equal(t, "2 therapist(s) found", envelope.Message)
		assert.Equal(t, 2, list.Count)
	})

	t.Run("List empty result", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/therapists?search=nobody", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		envelope := decodeEnvelope(t, rr, nil)
		assert.Equal(t, constvars.GetTherapistsEmptyMessage, envelope.Message)
	})

	t.Run("Malformed price", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/therapists?max_price=abc", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Specializations are not captured by the id route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/therapists/specializations", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		facets := new(responses.Specializations)
		decodeEnvelope(t, rr, facets)
		assert.Contains(t, facets.Facets, "all")
	})

	t.Run("Get by id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/therapists/2", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		therapist := new(responses.Therapist)
		decodeEnvelope(t, rr, therapist)
		assert.Equal(t, "Dr. Michael Chen", therapist.Name)
	})

	t.Run("Get unknown", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/therapists/404", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Quote", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/therapists/1/quote?duration=90", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		quote := new(responses.PriceQuote)
		decodeEnvelope(t, rr, quote)
		assert.Equal(t, "225.00", quote.Total)
	})

	t.Run("Avatar requires a session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/therapists/1/avatar", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRegistrationRoutes(t *testing.T) {
	router := newTestRouter(t, new(MockAuthUsecase))

	t.Run("Options", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/therapists/registrations/options", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		options := new(responses.RegistrationOptions)
		decodeEnvelope(t, rr, options)
		assert.NotEmpty(t, options.Specializations)
		assert.NotEmpty(t, options.Days)
	})

	t.Run("Invalid form", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/therapists/registrations", bytes.NewBufferString(`{}`))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthRoutes(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	authorizedSession(authUsecase)
	authUsecase.On("IssueNonce", mock.Anything).Return(&responses.Nonce{Nonce: "n0nce1234"}, nil)
	authUsecase.On("Me", mock.Anything, mock.Anything).Return(&responses.Me{User: responses.User{WalletAddress: testWallet}}, nil)
	authUsecase.On("Logout", mock.Anything, "s-1").Return(nil)
	router := newTestRouter(t, authUsecase)

	t.Run("Nonce", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/nonce", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		nonce := new(responses.Nonce)
		decodeEnvelope(t, rr, nonce)
		assert.Equal(t, "n0nce1234", nonce.Nonce)
	})

	t.Run("Me without session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Me with session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		me := new(responses.Me)
		decodeEnvelope(t, rr, me)
		assert.Equal(t, testWallet, me.User.WalletAddress)
	})

	t.Run("Logout", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		authUsecase.AssertCalled(t, "Logout", mock.Anything, "s-1")
	})
}

func TestBookingRoutes(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	authorizedSession(authUsecase)
	authUsecase.On("ResolveSession", mock.Anything, "stale-token").Return(nil, exceptions.ErrInvalidSession(nil))
	router := newTestRouter(t, authUsecase)

	t.Run("Unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Stale session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieSessionName, Value: "stale-token"})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("List scheduled", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=scheduled", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		list := new(responses.BookingList)
		decodeEnvelope(t, rr, list)
		assert.Equal(t, "scheduled", list.Status)
		for _, booking := range list.Bookings {
			assert.Equal(t, constvars.BookingStatusScheduled, booking.Status)
		}
	})

	t.Run("Create then cancel", func(t *testing.T) {
		date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
		body := `{"therapistId":"1","date":"` + date + `","time":"Mon 10:00","duration":90}`
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(body))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		booking := new(responses.Booking)
		envelope := decodeEnvelope(t, rr, booking)
		assert.Equal(t, constvars.CreateBookingSuccessMessage, envelope.Message)
		assert.Equal(t, 225.0, booking.Amount)
		assert.True(t, booking.CanCancel)

		req = httptest.NewRequest(http.MethodPost, "/api/bookings/"+booking.ID+"/cancel", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		cancelled := new(responses.Booking)
		decodeEnvelope(t, rr, cancelled)
		assert.Equal(t, constvars.BookingStatusCancelled, cancelled.Status)
	})

	t.Run("Create rejects missing time", func(t *testing.T) {
		body := `{"therapistId":"1","date":"2099-01-01"}`
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(body))
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestEndpointPrefix(t *testing.T) {
	assert.Equal(t, "/api", endpointPrefix("api"))
	assert.Equal(t, "/api", endpointPrefix("/api/"))
	assert.Equal(t, "/", endpointPrefix(""))
}

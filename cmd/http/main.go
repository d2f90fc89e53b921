package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"therapyconnect-service/internal/app/config"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/app/delivery/http/controllers"
	"therapyconnect-service/internal/app/delivery/http/middlewares"
	"therapyconnect-service/internal/app/delivery/http/routers"
	"therapyconnect-service/internal/app/drivers/database"
	"therapyconnect-service/internal/app/drivers/logger"
	"therapyconnect-service/internal/app/drivers/messaging"
	"therapyconnect-service/internal/app/drivers/storage"
	"therapyconnect-service/internal/app/services/core/auth"
	"therapyconnect-service/internal/app/services/core/bookings"
	"therapyconnect-service/internal/app/services/core/registrations"
	"therapyconnect-service/internal/app/services/core/session"
	"therapyconnect-service/internal/app/services/core/therapists"
	"therapyconnect-service/internal/app/services/shared/events"
	"therapyconnect-service/internal/app/services/shared/locker"
	"therapyconnect-service/internal/app/services/shared/redis"
	sharedStorage "therapyconnect-service/internal/app/services/shared/storage"
	"therapyconnect-service/internal/app/services/shared/walletverifier"
	"therapyconnect-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	switch internalConfig.App.StorageDriver {
	case constvars.StorageDriverMongo:
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	case constvars.StorageDriverMemory:
	default:
		log.Fatalf(constvars.ErrDevStorageDriverNotSupported, internalConfig.App.StorageDriver)
	}

	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	var minioClient *minio.Client
	if driverConfig.Minio.Enabled {
		minioClient = storage.NewMinio(driverConfig)
	}

	if err := bootstrapingTheApp(bootstrap, minioClient); err != nil {
		log.Fatalf("Failed to bootstrap the app: %s", err.Error())
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("port", internalConfig.App.Port),
			zap.String("env", internalConfig.App.Env),
			zap.String("storage_driver", internalConfig.App.StorageDriver),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to release drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client) error {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Events
	var eventPublisher contracts.EventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQEventQueue, bootstrap.Logger)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	} else {
		eventPublisher = events.NewNoopPublisher(bootstrap.Logger)
	}

	// Avatar storage
	var avatarStorage contracts.Storage
	if minioClient != nil {
		avatarStorage = sharedStorage.NewMinioStorage(
			minioClient,
			bootstrap.DriverConfig.Minio.BucketName,
			bootstrap.DriverConfig.Minio.PublicBaseURL,
		)
	}

	// Repositories
	var therapistRepository contracts.TherapistRepository
	var bookingRepository contracts.BookingRepository
	if bootstrap.MongoDB != nil {
		therapistRepository = therapists.NewTherapistMongoRepository(bootstrap.MongoDB)
		bookingRepository = bookings.NewBookingMongoRepository(bootstrap.MongoDB)
	} else {
		therapistRepository = therapists.NewTherapistMemoryRepository(therapists.SeedTherapists())
		bookingRepository = bookings.NewBookingMemoryRepository(bookings.SeedBookings(bootstrap.InternalConfig.App.DemoWalletAddress))
	}

	// Auth
	sessionService := session.NewSessionService(redisRepository, bootstrap.Logger)
	walletVerifier := walletverifier.NewWalletVerifier(bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(sessionService, walletVerifier, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Therapist
	therapistUsecase := therapists.NewTherapistUsecase(therapistRepository, avatarStorage, bootstrap.Logger)
	therapistController := controllers.NewTherapistController(bootstrap.Logger, therapistUsecase, bootstrap.InternalConfig)

	// Registration
	registrationUsecase := registrations.NewRegistrationUsecase(therapistRepository, eventPublisher, bootstrap.Logger)
	registrationController := controllers.NewRegistrationController(bootstrap.Logger, registrationUsecase, bootstrap.InternalConfig)

	// Booking
	bookingUsecase := bookings.NewBookingUsecase(
		bookingRepository,
		therapistRepository,
		lockerService,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		therapistController,
		registrationController,
		bookingController,
	)
	return nil
}

package config

import (
	"strings"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "therapyconnect"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Enabled:       utils.GetEnvBool("MINIO_ENABLED", false),
			Port:          utils.GetEnvString("MINIO_PORT", "9000"),
			Host:          utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:      utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:      utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			BucketName:    utils.GetEnvString("MINIO_BUCKET_NAME", "therapist-avatars"),
			PublicBaseURL: utils.GetEnvString("MINIO_PUBLIC_BASE_URL", "http://localhost:9000"),
			UseSSL:        utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			StorageDriver:              utils.GetEnvString("STORAGE_DRIVER", constvars.StorageDriverMemory),
			DemoWalletAddress:          utils.GetEnvString("APP_DEMO_WALLET_ADDRESS", ""),
			AllowedOrigins:             splitAndTrim(utils.GetEnvString("APP_ALLOWED_ORIGINS", "*")),
			CookieSecure:               utils.GetEnvBool("APP_COOKIE_SECURE", false),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			AuthRequestsPerSecond:      utils.GetEnvInt("APP_AUTH_REQUESTS_PER_SECOND", 2),
			AuthRequestsBurst:          utils.GetEnvInt("APP_AUTH_REQUESTS_BURST", 5),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSecond:     utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECOND", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt64("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			AvatarMaxUploadSizeInMB:    utils.GetEnvInt64("APP_AVATAR_UPLOAD_MAX_SIZE_IN_MB", 2),
			RabbitMQEventQueue:         utils.GetEnvString("APP_RABBITMQ_EVENT_QUEUE", "therapyconnect.events"),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Session: Session{
			NonceTTLInMinute: utils.GetEnvInt("APP_NONCE_TTL_IN_MINUTE", 10),
		},
		Booking: Booking{
			SubmitLockTTLInMinute: utils.GetEnvInt("APP_BOOKING_SUBMIT_LOCK_TTL_IN_MINUTE", constvars.BookingSubmitLockTTLInMinute),
		},
	}
}

func splitAndTrim(raw string) []string {
	var values []string
	for _, value := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

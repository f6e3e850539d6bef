package config

import (
	"healthlinker-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	rabbitMQHost := utils.GetEnvString("RABBITMQ_HOST", "")
	minioHost := utils.GetEnvString("MINIO_HOST", "")

	return &DriverConfig{
		MongoDB: MongoDB{
			URI:                     utils.MustGetEnvString("MONGO_URI"),
			DbName:                  utils.GetEnvString("MONGODB_DB_NAME", "healthlinker"),
			UseTransactions:         utils.GetEnvBool("MONGODB_USE_TRANSACTIONS", false),
			ConnectTimeoutInSeconds: utils.GetEnvInt("MONGODB_CONNECT_TIMEOUT_IN_SECONDS", 10),
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
			Enabled:  rabbitMQHost != "",
			Host:     rabbitMQHost,
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Enabled:  minioHost != "",
			Host:     minioHost,
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "5000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			CorsAllowedOrigins:         utils.GetEnvString("APP_CORS_ALLOWED_ORIGINS", "*"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			AuthMaxRequestsPerMinute:   utils.GetEnvInt("APP_AUTH_MAX_REQUESTS_PER_MINUTE", 30),
			LoginMaxAttemptsPerWindow:  utils.GetEnvInt("APP_LOGIN_MAX_ATTEMPTS_PER_WINDOW", 10),
			LoginAttemptWindowInSecs:   utils.GetEnvInt("APP_LOGIN_ATTEMPT_WINDOW_IN_SECONDS", 300),
			DoctorAutoApprove:          utils.GetEnvBool("APP_DOCTOR_AUTO_APPROVE", true),
			MaxSlotGenerationDays:      utils.GetEnvInt("APP_MAX_SLOT_GENERATION_DAYS", 90),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", ""),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Google: AppGoogle{
			ClientID:             utils.GetEnvString("GOOGLE_CLIENT_ID", ""),
			TokenInfoURL:         utils.GetEnvString("GOOGLE_TOKENINFO_URL", "https://oauth2.googleapis.com/tokeninfo"),
			HTTPTimeoutInSeconds: utils.GetEnvInt("GOOGLE_HTTP_TIMEOUT_IN_SECONDS", 10),
		},
		Minio: AppMinio{
			ProfilePictureMaxUploadSizeInMB:     utils.GetEnvInt("APP_MINIO_PROFILE_PICTURE_UPLOAD_MAX_SIZE_IN_MB", 2),
			BucketName:                          utils.GetEnvString("MINIO_BUCKET_NAME", "doctor-profile-pictures"),
			PreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 24),
			ProfilePictureAllowedFormats:        []string{".jpg", ".jpeg", ".jpe", ".jfif", ".png", ".webp"},
		},
		RabbitMQ: AppRabbitMQ{
			AppointmentQueue: utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_QUEUE", "appointment_events"),
		},
		SlotWorker: AppSlotWorker{
			Enabled:                utils.GetEnvBool("SLOT_WORKER_ENABLED", true),
			CronSpec:               utils.GetEnvString("SLOT_WORKER_CRON_SPEC", "@daily"),
			WindowDays:             utils.GetEnvInt("SLOT_WINDOW_DAYS", 14),
			LeaderLockTTLInSeconds: utils.GetEnvInt("SLOT_WORKER_LEADER_LOCK_TTL_IN_SECONDS", 120),
		},
	}
}

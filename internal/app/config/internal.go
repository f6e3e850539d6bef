package config

type InternalConfig struct {
	App        App
	JWT        AppJWT
	Google     AppGoogle
	Minio      AppMinio
	RabbitMQ   AppRabbitMQ
	SlotWorker AppSlotWorker
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	CorsAllowedOrigins         string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	// AuthMaxRequestsPerMinute caps register/login calls per client IP.
	AuthMaxRequestsPerMinute  int
	LoginMaxAttemptsPerWindow int
	LoginAttemptWindowInSecs  int
	DoctorAutoApprove         bool
	MaxSlotGenerationDays     int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppGoogle struct {
	ClientID             string
	TokenInfoURL         string
	HTTPTimeoutInSeconds int
}

type AppMinio struct {
	ProfilePictureMaxUploadSizeInMB     int
	BucketName                          string
	PreSignedUrlObjectExpiryTimeInHours int
	ProfilePictureAllowedFormats        []string
}

type AppRabbitMQ struct {
	AppointmentQueue string
}

type AppSlotWorker struct {
	Enabled bool
	// CronSpec defines the cron expression for the slot worker schedule (e.g., "@daily")
	CronSpec string
	// WindowDays controls how many days ahead the worker keeps slots for
	WindowDays             int
	LeaderLockTTLInSeconds int
}

package constvars

type ContextKey string

const (
	AppPaginationUrlFormat = "%s?page=%d&limit=%d"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
	CONTEXT_USER_ROLE_KEY            ContextKey = "user_role"
)

const (
	REQUEST_ID_PREFIX = "HLNK_SVC_"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	DateLayoutYMD   = "2006-01-02"
	ClockLayoutHHMM = "15:04"
)

const (
	DefaultPage          = 1
	MaxPage              = 100000
	DefaultPageLimit     = 10
	MaxPageLimit         = 100
	MinSlotDuration      = 10
	DefaultBookingReason = "Initial Booking"
)

const (
	LoginLimiterGroup = "LOGIN"
)

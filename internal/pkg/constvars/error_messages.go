package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"alphanum":     "must contain only alphanumeric characters",
	"min":          "must be at least %s",
	"max":          "maximum at %s",
	"eqfield":      "must match %s",
	"numeric":      "must be a number",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"lt":           "must be less than %s",
	"lte":          "must be less than or equal to %s",
	"url":          "must be a valid URL",
	"base64":       "must be a valid base64 string",
	"dive":         "is invalid",
	"user_role":    "must be either 'patient' or 'doctor'",
	"weekday":      "must be a day name between Monday and Sunday",
	"clock":        "must be a time in HH:MM format",
	"date_ymd":     "must be a date in YYYY-MM-DD format",
	"object_id":    "must be a valid identifier",
	"review_state": "must be either 'approved' or 'rejected'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientEmailAlreadyExists            = "user already registered with this email"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidCredentials            = "invalid credentials"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "access denied, please login again"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
	ErrClientInvalidGoogleToken            = "invalid google token"
	ErrClientUserNotFound                  = "user not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientDoctorProfileExists           = "doctor profile already exists"
	ErrClientDoctorNotApproved             = "doctor profile not approved or missing"
	ErrClientDoctorWorkingHoursNotSet      = "doctor has not set working hours"
	ErrClientDoctorSlotDurationNotSet      = "doctor has not set a valid slot duration"
	ErrClientInvalidDateRange              = "start date must not be after end date"
	ErrClientDateRangeTooLong              = "requested date range is too long"
	ErrClientSlotGenerationInProgress      = "slot generation is already running, please retry shortly"
	ErrClientSlotAlreadyBooked             = "slot is already booked or does not exist"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientAppointmentNotOwned           = "you can only cancel your own appointments"
	ErrClientStorageNotConfigured          = "profile picture upload is not available"
	ErrClientInvalidWorkingHours           = "working hours need a known weekday, HH:MM times with start before end, and at most one entry per day"
	ErrClientServiceUnhealthy              = "one or more dependencies are unavailable"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevRoleTypeDoesntMatch      = "invalid role type, request done by user with different role"
	ErrDevInvalidRoleType          = "invalid role type, should be 'patient' or 'doctor'"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevUserNotExists            = "user not exists in our system"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevGoogleTokenRejected      = "google tokeninfo rejected the id token"
	ErrDevGoogleAudienceMismatch   = "google id token audience does not match client id"
	ErrDevImageValidationFailed    = "image validation failed"
	ErrDevStorageNotConfigured     = "object storage client is not configured"
	ErrDevDoctorNotExists          = "doctor profile not exists in our system"
	ErrDevDoctorProfileExists      = "doctor profile already exists for user"
	ErrDevDoctorNotApproved        = "doctor profile is not approved"
	ErrDevDoctorWorkingHoursNotSet = "doctor working hours are empty"
	ErrDevDoctorSlotDurationNotSet = "doctor slot duration is not positive"
	ErrDevInvalidWorkingHours      = "working hour template failed validation"
	ErrDevInvalidDateRange         = "start date is after end date"
	ErrDevDateRangeTooLong         = "date range exceeds %d days"
	ErrDevSlotGenerationLocked     = "slot generation lock for doctor %s is held by another request"
	ErrDevSlotClaimFailed          = "no unbooked slot matched the claim filter"
	ErrDevAppointmentNotExists     = "appointment not exists in our system"
	ErrDevAppointmentNotOwned      = "appointment belongs to another patient"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevInvalidRequestPayload      = "invalid request payload"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"
	ErrDevQueryParamValidationFailed = "query parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenClaims           = "token claims are missing or malformed"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthMissingIdentity       = "authenticated identity not found in request context"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCountDocuments   = "failed when counting documents on database"
	ErrDevDBFailedTransaction        = "database transaction failed"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisExpire     = "failed to extend expiration of key in redis"
	ErrDevRedisUnlock     = "failed to release lock in redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitmq queue '%s'"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanic            = "recovered from panic"
)

const (
	ErrEnvParsing     = "Error parsing %s: %v, will use default value"
	ErrEnvKeyNotExist = "Error getting env key: %s, will use default value"
)

package utils

import (
	"healthlinker-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

var (
	clockRegex = regexp.MustCompile(constvars.RegexClockHHMM)
	dateRegex  = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("weekday", validateWeekday)
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("date_ymd", validateDateYMD)
	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("review_state", validateReviewState)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// self-registration only, admins come from `seeder admin`
func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || value == "patient" || value == "doctor"
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, ok := ParseWeekday(fl.Field().String())
	return ok
}

func validateClock(fl validator.FieldLevel) bool {
	return clockRegex.MatchString(fl.Field().String())
}

func validateDateYMD(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !dateRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse(constvars.DateLayoutYMD, value)
	return err == nil
}

func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

func validateReviewState(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "approved" || value == "rejected"
}

var weekdays = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

func ParseWeekday(name string) (time.Weekday, bool) {
	day, ok := weekdays[name]
	return day, ok
}

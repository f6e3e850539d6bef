package utils

import (
	"healthlinker-service/internal/pkg/dto/requests"
	"strings"
	"unicode"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func capitalize(input string) string {
	if len(input) == 0 {
		return input
	}
	runes := []rune(input)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

func sanitizeWorkingHours(input []requests.WorkingHour) {
	for i := range input {
		input[i].Day = capitalize(strings.TrimSpace(input[i].Day))
		input[i].StartTime = strings.TrimSpace(input[i].StartTime)
		input[i].EndTime = strings.TrimSpace(input[i].EndTime)
	}
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = NormalizeEmail(input.Email)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = NormalizeEmail(input.Email)
}

func SanitizeCreateDoctorProfileRequest(input *requests.CreateDoctorProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.Specialty = strings.TrimSpace(input.Specialty)
	sanitizeWorkingHours(input.WorkingHours)
}

func SanitizeUpdateDoctorProfileRequest(input *requests.UpdateDoctorProfile) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		input.Name = &name
	}
	if input.Specialty != nil {
		specialty := strings.TrimSpace(*input.Specialty)
		input.Specialty = &specialty
	}
	sanitizeWorkingHours(input.WorkingHours)
}

func SanitizeSearchAvailableSlotsRequest(input *requests.SearchAvailableSlots) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.Date = strings.TrimSpace(input.Date)
}

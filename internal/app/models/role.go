package models

import "fmt"

// UserRole is a closed set. Every switch over it lists all three values.
type UserRole string

const (
	RolePatient UserRole = "patient"
	RoleDoctor  UserRole = "doctor"
	RoleAdmin   UserRole = "admin"
)

func ParseUserRole(value string) (UserRole, error) {
	switch UserRole(value) {
	case RolePatient:
		return RolePatient, nil
	case RoleDoctor:
		return RoleDoctor, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown user role %q", value)
	}
}

func (r UserRole) String() string {
	return string(r)
}

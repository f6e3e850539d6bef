package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorStatus string

const (
	DoctorStatusPending  DoctorStatus = "pending"
	DoctorStatusApproved DoctorStatus = "approved"
	DoctorStatusRejected DoctorStatus = "rejected"
)

func ParseDoctorStatus(value string) (DoctorStatus, error) {
	switch DoctorStatus(value) {
	case DoctorStatusPending:
		return DoctorStatusPending, nil
	case DoctorStatusApproved:
		return DoctorStatusApproved, nil
	case DoctorStatusRejected:
		return DoctorStatusRejected, nil
	default:
		return "", fmt.Errorf("unknown doctor status %q", value)
	}
}

// WorkingHour is a weekly template: Day is an English weekday name, times are local HH:MM.
type WorkingHour struct {
	Day       string `bson:"day"`
	StartTime string `bson:"startTime"`
	EndTime   string `bson:"endTime"`
}

type Doctor struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	UserID            primitive.ObjectID `bson:"userId"`
	Name              string             `bson:"name"`
	Specialty         string             `bson:"specialty"`
	Fees              float64            `bson:"fees"`
	SlotDuration      int                `bson:"slotDuration"`
	WorkingHours      []WorkingHour      `bson:"workingHours"`
	Status            DoctorStatus       `bson:"status"`
	ProfilePictureURL string             `bson:"profilePictureUrl,omitempty"`
	TimeModel         `bson:",inline"`
}

func (d *Doctor) IsApproved() bool {
	return d != nil && d.Status == DoctorStatusApproved
}

// DoctorSummary is the projection joined onto slots and appointments.
type DoctorSummary struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Specialty string             `bson:"specialty"`
	Fees      float64            `bson:"fees"`
}

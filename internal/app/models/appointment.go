package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
)

// ActiveAppointmentStatuses hold a slot. The unique slotId index is partial over them.
var ActiveAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
}

type Appointment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PatientID   primitive.ObjectID `bson:"patientId"`
	DoctorID    primitive.ObjectID `bson:"doctorId"`
	SlotID      primitive.ObjectID `bson:"slotId"`
	StartTime   time.Time          `bson:"startTime"`
	EndTime     time.Time          `bson:"endTime"`
	Status      AppointmentStatus  `bson:"status"`
	Reason      string             `bson:"reason"`
	CancelledAt *time.Time         `bson:"cancelledAt,omitempty"`
	TimeModel   `bson:",inline"`
}

type PatientSummary struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
}

type AppointmentDetail struct {
	Appointment `bson:",inline"`
	Doctor      *DoctorSummary  `bson:"doctor,omitempty"`
	Patient     *PatientSummary `bson:"patient,omitempty"`
}

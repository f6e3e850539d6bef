package models

import "time"

// AppointmentEvent is the message body published to the broker.
type AppointmentEvent struct {
	Event         string    `json:"event"`
	AppointmentID string    `json:"appointmentId"`
	PatientID     string    `json:"patientId"`
	DoctorID      string    `json:"doctorId"`
	SlotID        string    `json:"slotId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurredAt"`
}

package responses

import "time"

type Appointment struct {
	ID          string          `json:"id"`
	PatientID   string          `json:"patientId"`
	DoctorID    string          `json:"doctorId"`
	SlotID      string          `json:"slotId"`
	Doctor      *DoctorSummary  `json:"doctor,omitempty"`
	Patient     *PatientSummary `json:"patient,omitempty"`
	StartTime   time.Time       `json:"startTime"`
	EndTime     time.Time       `json:"endTime"`
	Status      string          `json:"status"`
	Reason      string          `json:"reason"`
	CancelledAt *time.Time      `json:"cancelledAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

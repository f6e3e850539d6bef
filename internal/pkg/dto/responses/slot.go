package responses

import "time"

type Slot struct {
	ID        string         `json:"id"`
	DoctorID  string         `json:"doctorId"`
	Doctor    *DoctorSummary `json:"doctor,omitempty"`
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
	Date      time.Time      `json:"date"`
	IsBooked  bool           `json:"isBooked"`
}

type GenerateSlots struct {
	Count     int    `json:"count"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Slots     []Slot `json:"slots"`
}

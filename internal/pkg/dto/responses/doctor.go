package responses

import "time"

type WorkingHour struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type Doctor struct {
	ID                string        `json:"id"`
	UserID            string        `json:"userId"`
	Name              string        `json:"name"`
	Specialty         string        `json:"specialty"`
	Fees              float64       `json:"fees"`
	SlotDuration      int           `json:"slotDuration"`
	WorkingHours      []WorkingHour `json:"workingHours"`
	Status            string        `json:"status"`
	ProfilePictureURL string        `json:"profilePictureUrl,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

type DoctorSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Fees      float64 `json:"fees"`
}

type PatientSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

package requests

type WorkingHour struct {
	Day       string `json:"day" validate:"required,weekday"`
	StartTime string `json:"startTime" validate:"required,clock"`
	EndTime   string `json:"endTime" validate:"required,clock"`
}

type CreateDoctorProfile struct {
	Name           string        `json:"name" validate:"required,max=100"`
	Specialty      string        `json:"specialty" validate:"required,max=100"`
	Fees           float64       `json:"fees" validate:"gte=0"`
	SlotDuration   int           `json:"slotDuration" validate:"required,gte=10,lte=480"`
	WorkingHours   []WorkingHour `json:"workingHours" validate:"required,min=1,max=7,dive"`
	ProfilePicture string        `json:"profilePicture" validate:"omitempty"`

	ProfilePictureData      []byte `json:"-"`
	ProfilePictureExtension string `json:"-"`
}

// UpdateDoctorProfile only touches the fields that are present in the body.
type UpdateDoctorProfile struct {
	Name           *string       `json:"name" validate:"omitempty,min=1,max=100"`
	Specialty      *string       `json:"specialty" validate:"omitempty,min=1,max=100"`
	Fees           *float64      `json:"fees" validate:"omitempty,gte=0"`
	SlotDuration   *int          `json:"slotDuration" validate:"omitempty,gte=10,lte=480"`
	WorkingHours   []WorkingHour `json:"workingHours" validate:"omitempty,min=1,max=7,dive"`
	ProfilePicture string        `json:"profilePicture" validate:"omitempty"`

	ProfilePictureData      []byte `json:"-"`
	ProfilePictureExtension string `json:"-"`
}

type ReviewDoctor struct {
	Status string `json:"status" validate:"required,review_state"`
}

type FindDoctors struct {
	Name      string
	Specialty string
	Page      int
	Limit     int
}

type GenerateSlots struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

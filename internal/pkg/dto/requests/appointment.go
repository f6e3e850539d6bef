package requests

type BookAppointment struct {
	SlotID string `json:"slotId" validate:"required,object_id"`
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

type SearchAvailableSlots struct {
	DoctorID  string `validate:"omitempty,object_id"`
	Specialty string `validate:"omitempty,max=100"`
	Date      string `validate:"omitempty,date_ymd"`
}

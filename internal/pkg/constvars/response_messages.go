package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// User-related messages
	RegisterUserSuccessMessage = "user registered successfully"
	LoginSuccessMessage        = "login successful"
	GetProfileSuccessMessage   = "get profile successfully"

	// Doctor-related messages
	GetDoctorsSuccessMessage          = "get doctors successfully"
	GetDoctorSuccessMessage           = "get doctor successfully"
	CreateDoctorProfileSuccessMessage = "doctor profile created successfully"
	PendingDoctorProfileMessage       = "doctor profile created successfully, awaiting admin approval"
	UpdateDoctorProfileSuccessMessage = "doctor profile updated successfully"
	ReviewDoctorSuccessMessage        = "doctor profile reviewed successfully"
	GenerateSlotsSuccessMessage       = "successfully generated %d available slots between %s and %s"

	// Appointment-related messages
	GetAvailableSlotsSuccessMessage = "get available slots successfully"
	BookAppointmentSuccessMessage   = "appointment booked successfully"
	GetAppointmentsSuccessMessage   = "get appointments successfully"
	NoAppointmentsMessage           = "you have no appointments booked yet"
	CancelAppointmentSuccessMessage = "appointment cancelled successfully, the slot is now available for others"
	HealthCheckSuccessMessage       = "service is healthy"
)

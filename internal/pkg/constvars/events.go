package constvars

const (
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentCancelled = "appointment.cancelled"
)

const (
	SlotGeneratorLeaderLockKey    = "slotgen:leader"
	SlotGeneratorDoctorLockFormat = "slotgen:doctor:%s"
)

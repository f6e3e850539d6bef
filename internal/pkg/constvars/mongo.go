package constvars

const (
	MongoCollectionUsers        = "users"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionSlots        = "slots"
	MongoCollectionAppointments = "appointments"
)

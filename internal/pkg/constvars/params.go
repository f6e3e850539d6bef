package constvars

const (
	URLParamID = "id"
)

const (
	URLQueryParamName      = "name"
	URLQueryParamSpecialty = "specialty"
	URLQueryParamPage      = "page"
	URLQueryParamLimit     = "limit"
	URLQueryParamDate      = "date"
	URLQueryParamDoctorID  = "doctorId"
)

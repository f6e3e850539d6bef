package constvars

const (
	RegexEmail        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
	RegexClockHHMM    = `^([01]\d|2[0-3]):[0-5]\d$`
)

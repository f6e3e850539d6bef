package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthlinker_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "healthlinker_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	UserRegistrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthlinker_user_registrations_total",
			Help: "Registered users by role",
		},
		[]string{"role"},
	)

	SlotsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthlinker_slots_generated_total",
			Help: "Slots inserted by the generator",
		},
		[]string{"source"},
	)

	SlotsReserved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "healthlinker_slots_reserved_total",
			Help: "Slots claimed by a successful booking",
		},
	)

	BookingConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "healthlinker_booking_conflicts_total",
			Help: "Booking attempts rejected because the slot was taken or gone",
		},
	)

	AppointmentsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "healthlinker_appointments_cancelled_total",
			Help: "Appointments cancelled by patients",
		},
	)

	AppointmentsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "healthlinker_appointments_completed_total",
			Help: "Appointments marked completed by the worker",
		},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthlinker_events_published_total",
			Help: "Domain events handed to the broker",
		},
		[]string{"event", "status"},
	)
)

const (
	SourceRequest = "request"
	SourceWorker  = "worker"

	StatusOK    = "ok"
	StatusError = "error"

	// UnmatchedRoute labels requests that matched no route.
	UnmatchedRoute = "unmatched"
)

func RecordHTTPRequest(method, endpoint, status string) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
}

func ObserveHTTPRequestDuration(method, endpoint string, seconds float64) {
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(seconds)
}

func RecordUserRegistration(role string) {
	UserRegistrations.WithLabelValues(role).Inc()
}

func RecordSlotsGenerated(source string, count int) {
	SlotsGenerated.WithLabelValues(source).Add(float64(count))
}

func RecordSlotReservation() {
	SlotsReserved.Inc()
}

func RecordBookingConflict() {
	BookingConflicts.Inc()
}

func RecordAppointmentCancellation() {
	AppointmentsCancelled.Inc()
}

func RecordAppointmentsCompleted(count int) {
	AppointmentsCompleted.Add(float64(count))
}

func RecordEventPublished(event, status string) {
	EventsPublished.WithLabelValues(event, status).Inc()
}

package contracts

import (
	"context"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/dto/requests"
	"healthlinker-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentUsecase interface {
	BookSlot(ctx context.Context, patientID string, role models.UserRole, request *requests.BookAppointment) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, patientID, appointmentID string) error
	ListPatientAppointments(ctx context.Context, patientID string) ([]responses.Appointment, error)
	ListDoctorAppointments(ctx context.Context, userID string) ([]responses.Appointment, error)
	SearchAvailableSlots(ctx context.Context, request *requests.SearchAvailableSlots) ([]responses.Slot, error)
	CompletePastAppointments(ctx context.Context, now time.Time) (int64, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindDetailByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.AppointmentDetail, error)
	FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.AppointmentDetail, error)
	FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.AppointmentDetail, error)
	MarkCancelled(ctx context.Context, appointmentID primitive.ObjectID, cancelledAt time.Time) error
	CompleteEndedBefore(ctx context.Context, now time.Time) (int64, error)
}

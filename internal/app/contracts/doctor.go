package contracts

import (
	"context"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/dto/requests"
	"healthlinker-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorFilter struct {
	Name      string
	Specialty string
	Skip      int64
	Limit     int64
}

type DoctorUsecase interface {
	CreateProfile(ctx context.Context, userID string, role models.UserRole, request *requests.CreateDoctorProfile) (*responses.Doctor, error)
	UpdateProfile(ctx context.Context, userID string, request *requests.UpdateDoctorProfile) (*responses.Doctor, error)
	GetMyProfile(ctx context.Context, userID string) (*responses.Doctor, error)
	GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	FindDoctors(ctx context.Context, request *requests.FindDoctors) ([]responses.Doctor, int, error)
	ListPendingDoctors(ctx context.Context) ([]responses.Doctor, error)
	ReviewDoctor(ctx context.Context, doctorID string, request *requests.ReviewDoctor) (*responses.Doctor, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	UpdateStatus(ctx context.Context, doctorID string, status models.DoctorStatus) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	FindApproved(ctx context.Context, filter DoctorFilter) ([]models.Doctor, int64, error)
	FindApprovedIDsBySpecialty(ctx context.Context, specialty string) ([]primitive.ObjectID, error)
	FindByStatus(ctx context.Context, status models.DoctorStatus) ([]models.Doctor, error)
}

package doctors

import (
	"context"
	"errors"
	"healthlinker-service/internal/app/config"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/app/services/core/slot"
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/dto/requests"
	"healthlinker-service/internal/pkg/dto/responses"
	"healthlinker-service/internal/pkg/exceptions"
	"healthlinker-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const profilePicturePrefix = "doctor"

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Storage          contracts.Storage
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

// NewDoctorUsecase builds the doctor profile usecase. storage may be nil when object storage is not configured.
func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Storage:          storage,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (uc *doctorUsecase) CreateProfile(ctx context.Context, userID string, role models.UserRole, request *requests.CreateDoctorProfile) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.CreateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	switch role {
	case models.RoleDoctor:
	case models.RolePatient, models.RoleAdmin:
		return nil, exceptions.ErrNotMatchRoleType(nil)
	default:
		return nil, exceptions.ErrInvalidRoleType(nil)
	}

	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	existing, err := uc.DoctorRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDoctorProfileExist(nil)
	}

	workingHours, err := toWorkingHours(request.WorkingHours)
	if err != nil {
		return nil, err
	}

	status := models.DoctorStatusPending
	if uc.InternalConfig.App.DoctorAutoApprove {
		status = models.DoctorStatusApproved
	}

	doctor := &models.Doctor{
		UserID:       userObjectID,
		Name:         request.Name,
		Specialty:    request.Specialty,
		Fees:         request.Fees,
		SlotDuration: request.SlotDuration,
		WorkingHours: workingHours,
		Status:       status,
	}
	doctor.SetCreatedAtUpdatedAt()

	if len(request.ProfilePictureData) > 0 {
		objectName, err := uc.uploadProfilePicture(ctx, userID, request.ProfilePictureData, request.ProfilePictureExtension)
		if err != nil {
			return nil, err
		}
		doctor.ProfilePictureURL = objectName
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateProfile error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor.ID, err = primitive.ObjectIDFromHex(doctorID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	utils.LogBusinessEvent(uc.Log, "doctor_profile_created", requestID,
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String("status", string(status)),
	)

	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) UpdateProfile(ctx context.Context, userID string, request *requests.UpdateDoctorProfile) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	doctor, err := uc.DoctorRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	if request.Name != nil {
		doctor.Name = *request.Name
	}
	if request.Specialty != nil {
		doctor.Specialty = *request.Specialty
	}
	if request.Fees != nil {
		doctor.Fees = *request.Fees
	}
	if request.SlotDuration != nil {
		doctor.SlotDuration = *request.SlotDuration
	}
	if len(request.WorkingHours) > 0 {
		workingHours, err := toWorkingHours(request.WorkingHours)
		if err != nil {
			return nil, err
		}
		doctor.WorkingHours = workingHours
	}
	if len(request.ProfilePictureData) > 0 {
		objectName, err := uc.uploadProfilePicture(ctx, userID, request.ProfilePictureData, request.ProfilePictureExtension)
		if err != nil {
			return nil, err
		}
		doctor.ProfilePictureURL = objectName
	}
	doctor.SetUpdatedAt()

	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		uc.Log.Error("doctorUsecase.UpdateProfile error updating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) GetMyProfile(ctx context.Context, userID string) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}
	return uc.buildDoctorResponse(ctx, doctor), nil
}

// GetDoctorByID backs the public profile route, so only approved doctors are visible.
func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.IsApproved() {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}
	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) FindDoctors(ctx context.Context, request *requests.FindDoctors) ([]responses.Doctor, int, error) {
	page, limit := request.Page, request.Limit
	if page < 1 {
		page = constvars.DefaultPage
	}
	if page > constvars.MaxPage {
		page = constvars.MaxPage
	}
	if limit < 1 {
		limit = constvars.DefaultPageLimit
	}
	if limit > constvars.MaxPageLimit {
		limit = constvars.MaxPageLimit
	}

	doctors, total, err := uc.DoctorRepository.FindApproved(ctx, contracts.DoctorFilter{
		Name:      request.Name,
		Specialty: request.Specialty,
		Skip:      int64(page-1) * int64(limit),
		Limit:     int64(limit),
	})
	if err != nil {
		uc.Log.Error("doctorUsecase.FindDoctors error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, 0, err
	}
	return utils.BuildDoctorsResponse(doctors), int(total), nil
}

func (uc *doctorUsecase) ListPendingDoctors(ctx context.Context) ([]responses.Doctor, error) {
	doctors, err := uc.DoctorRepository.FindByStatus(ctx, models.DoctorStatusPending)
	if err != nil {
		return nil, err
	}
	return utils.BuildDoctorsResponse(doctors), nil
}

func (uc *doctorUsecase) ReviewDoctor(ctx context.Context, doctorID string, request *requests.ReviewDoctor) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)

	status, err := models.ParseDoctorStatus(request.Status)
	if err != nil || status == models.DoctorStatusPending {
		return nil, exceptions.ErrInputValidation(errors.New("status must be approved or rejected"))
	}

	doctor, err := uc.DoctorRepository.UpdateStatus(ctx, doctorID, status)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	utils.LogBusinessEvent(uc.Log, "doctor_reviewed", requestID,
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String("status", string(status)),
	)
	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) uploadProfilePicture(ctx context.Context, userID string, data []byte, ext string) (string, error) {
	if uc.Storage == nil {
		return "", exceptions.ErrStorageNotConfigured(nil)
	}
	fileName := utils.GenerateFileName(profilePicturePrefix, userID, ext)
	objectName, err := uc.Storage.UploadBase64Image(ctx, data, uc.InternalConfig.Minio.BucketName, fileName, ext)
	if err != nil {
		uc.Log.Error("doctorUsecase.uploadProfilePicture error uploading",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return "", err
	}
	return objectName, nil
}

// buildDoctorResponse swaps the stored object name for a presigned URL when storage is available.
func (uc *doctorUsecase) buildDoctorResponse(ctx context.Context, doctor *models.Doctor) *responses.Doctor {
	response := utils.BuildDoctorResponse(doctor)
	if uc.Storage == nil || doctor.ProfilePictureURL == "" {
		return &response
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, doctor.ProfilePictureURL, expiry)
	if err != nil {
		uc.Log.Warn("doctorUsecase.buildDoctorResponse presign failed",
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID.Hex()),
			zap.Error(err),
		)
		return &response
	}
	response.ProfilePictureURL = url
	return &response
}

func toWorkingHours(input []requests.WorkingHour) ([]models.WorkingHour, error) {
	workingHours := make([]models.WorkingHour, 0, len(input))
	for _, wh := range input {
		workingHours = append(workingHours, models.WorkingHour{
			Day:       wh.Day,
			StartTime: wh.StartTime,
			EndTime:   wh.EndTime,
		})
	}
	if _, err := slot.ConvertWorkingHoursToWeeklyPlan(workingHours); err != nil {
		return nil, exceptions.ErrInvalidWorkingHours(err)
	}
	return workingHours, nil
}

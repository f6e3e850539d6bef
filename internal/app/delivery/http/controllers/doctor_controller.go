package controllers

import (
	"context"
	"errors"
	"fmt"
	"healthlinker-service/internal/app/config"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/dto/requests"
	"healthlinker-service/internal/pkg/exceptions"
	"healthlinker-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log            *zap.Logger
	DoctorUsecase  contracts.DoctorUsecase
	SlotUsecase    contracts.SlotUsecase
	InternalConfig *config.InternalConfig
}

func NewDoctorController(
	logger *zap.Logger,
	doctorUsecase contracts.DoctorUsecase,
	slotUsecase contracts.SlotUsecase,
	internalConfig *config.InternalConfig,
) *DoctorController {
	return &DoctorController{
		Log:            logger,
		DoctorUsecase:  doctorUsecase,
		SlotUsecase:    slotUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *DoctorController) FindDoctors(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DoctorController.FindDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := utils.BuildFindDoctorsRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.DoctorUsecase.FindDoctors(ctx, request)
	if err != nil {
		ctrl.Log.Error("DoctorController.FindDoctors error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.Limit, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, pagination, result)
}

func (ctrl *DoctorController) GetDoctorByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("DoctorController.GetDoctorByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if err := utils.ValidateUrlParamID(doctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorUsecase.GetDoctorByID(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccessMessage, result)
}

func (ctrl *DoctorController) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DoctorController.GetMyProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, _, err := callerIdentity(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorUsecase.GetMyProfile(ctx, userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccessMessage, result)
}

func (ctrl *DoctorController) CreateProfile(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DoctorController.CreateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, role, err := callerIdentity(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateDoctorProfile)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("DoctorController.CreateProfile error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if request.ProfilePicture != "" {
		data, ext, err := ctrl.decodeProfilePicture(requestID, request.ProfilePicture)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		request.ProfilePictureData = data
		request.ProfilePictureExtension = ext
	}

	utils.SanitizeCreateDoctorProfileRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("DoctorController.CreateProfile validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorUsecase.CreateProfile(ctx, userID, role, request)
	if err != nil {
		ctrl.Log.Error("DoctorController.CreateProfile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.CreateDoctorProfileSuccessMessage
	if result.Status == string(models.DoctorStatusPending) {
		message = constvars.PendingDoctorProfileMessage
	}

	ctrl.Log.Info("DoctorController.CreateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, message, result)
}

func (ctrl *DoctorController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DoctorController.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, _, err := callerIdentity(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateDoctorProfile)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if request.ProfilePicture != "" {
		data, ext, err := ctrl.decodeProfilePicture(requestID, request.ProfilePicture)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		request.ProfilePictureData = data
		request.ProfilePictureExtension = ext
	}

	utils.SanitizeUpdateDoctorProfileRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorUsecase.UpdateProfile(ctx, userID, request)
	if err != nil {
		ctrl.Log.Error("DoctorController.UpdateProfile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDoctorProfileSuccessMessage, result)
}

func (ctrl *DoctorController) GenerateSlots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DoctorController.GenerateSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, _, err := callerIdentity(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.GenerateSlots)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// generation writes a whole range in one go, so it gets more room than the usual 10s
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.SlotUsecase.GenerateSlots(ctx, userID, request)
	if err != nil {
		ctrl.Log.Error("DoctorController.GenerateSlots error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DoctorController.GenerateSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, result.Count),
	)
	message := fmt.Sprintf(constvars.GenerateSlotsSuccessMessage, result.Count, result.StartDate, result.EndDate)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, message, result)
}

func (ctrl *DoctorController) ListPendingDoctors(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DoctorController.ListPendingDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorUsecase.ListPendingDoctors(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, result)
}

func (ctrl *DoctorController) ReviewDoctor(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID := chi.URLParam(r, constvars.URLParamID)
	ctrl.Log.Info("DoctorController.ReviewDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if err := utils.ValidateUrlParamID(doctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}

	request := new(requests.ReviewDoctor)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorUsecase.ReviewDoctor(ctx, doctorID, request)
	if err != nil {
		ctrl.Log.Error("DoctorController.ReviewDoctor error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReviewDoctorSuccessMessage, result)
}

func (ctrl *DoctorController) decodeProfilePicture(requestID, encoded string) ([]byte, string, error) {
	data, ext, err := utils.DecodeBase64Image(encoded)
	if err != nil {
		ctrl.Log.Error("DoctorController.decodeProfilePicture error decoding base64 image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageFormat(ext, ctrl.InternalConfig.Minio.ProfilePictureAllowedFormats); err != nil {
		return nil, "", exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageSize(data, ctrl.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB); err != nil {
		return nil, "", exceptions.ErrImageValidation(err)
	}
	return data, ext, nil
}

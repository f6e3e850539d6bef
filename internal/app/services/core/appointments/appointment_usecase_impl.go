package appointments

import (
	"context"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/dto/requests"
	"healthlinker-service/internal/pkg/dto/responses"
	"healthlinker-service/internal/pkg/exceptions"
	"healthlinker-service/internal/pkg/metrics"
	"healthlinker-service/internal/pkg/utils"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	SlotRepository        contracts.SlotRepository
	DoctorRepository      contracts.DoctorRepository
	Transactor            contracts.Transactor
	EventPublisher        contracts.AppointmentEventPublisher
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	slotRepository contracts.SlotRepository,
	doctorRepository contracts.DoctorRepository,
	transactor contracts.Transactor,
	eventPublisher contracts.AppointmentEventPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		SlotRepository:        slotRepository,
		DoctorRepository:      doctorRepository,
		Transactor:            transactor,
		EventPublisher:        eventPublisher,
		Log:                   logger,
		now:                   time.Now,
	}
}

// BookSlot claims the slot with one conditional write and records a confirmed
// appointment for it. A claim whose appointment could not be written is released
// again before returning.
func (uc *appointmentUsecase) BookSlot(ctx context.Context, patientID string, role models.UserRole, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.BookSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingSlotIDKey, request.SlotID),
	)

	switch role {
	case models.RolePatient:
	case models.RoleDoctor, models.RoleAdmin:
		return nil, exceptions.ErrNotMatchRoleType(nil)
	default:
		return nil, exceptions.ErrInvalidRoleType(nil)
	}

	patientObjectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	slotID, err := primitive.ObjectIDFromHex(request.SlotID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	reason := strings.TrimSpace(request.Reason)
	if reason == "" {
		reason = constvars.DefaultBookingReason
	}

	now := uc.now()
	var (
		claimed     *models.Slot
		appointment *models.Appointment
	)
	err = uc.Transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		claimed = nil
		slot, err := uc.SlotRepository.ClaimSlot(txCtx, slotID, patientObjectID, now)
		if err != nil {
			return err
		}
		if slot == nil {
			return exceptions.ErrSlotAlreadyBooked(nil)
		}
		claimed = slot

		appointment = &models.Appointment{
			PatientID: patientObjectID,
			DoctorID:  slot.DoctorID,
			SlotID:    slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Status:    models.AppointmentStatusConfirmed,
			Reason:    reason,
		}
		appointment.SetCreatedAtUpdatedAt()

		appointmentID, err := uc.AppointmentRepository.CreateAppointment(txCtx, appointment)
		if err != nil {
			return err
		}
		if appointment.ID, err = primitive.ObjectIDFromHex(appointmentID); err != nil {
			return exceptions.ErrMongoDBNotObjectID(err)
		}
		return nil
	})
	if err != nil {
		if claimed != nil {
			uc.releaseClaim(ctx, claimed.ID, patientObjectID)
		}
		if exceptions.StatusCodeOf(err) == constvars.StatusConflict {
			metrics.RecordBookingConflict()
			uc.Log.Warn("appointmentUsecase.BookSlot slot not claimable",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSlotIDKey, request.SlotID),
			)
			return nil, err
		}
		uc.Log.Error("appointmentUsecase.BookSlot error booking slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotIDKey, request.SlotID),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.RecordSlotReservation()
	uc.publish(ctx, constvars.EventAppointmentBooked, appointment)
	utils.LogBusinessEvent(uc.Log, "appointment_booked", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
		zap.String(constvars.LoggingSlotIDKey, appointment.SlotID.Hex()),
		zap.String(constvars.LoggingDoctorIDKey, appointment.DoctorID.Hex()),
	)

	detail, err := uc.AppointmentRepository.FindDetailByID(ctx, appointment.ID)
	if err != nil || detail == nil {
		uc.Log.Warn("appointmentUsecase.BookSlot could not load appointment detail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
			zap.Error(err),
		)
		detail = &models.AppointmentDetail{Appointment: *appointment}
	}

	uc.Log.Info("appointmentUsecase.BookSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
	)
	return utils.BuildAppointmentResponse(detail), nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, patientID, appointmentID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotExist(nil)
	}
	if appointment.PatientID.Hex() != patientID {
		uc.Log.Warn("appointmentUsecase.CancelAppointment caller does not own appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return exceptions.ErrAppointmentNotOwned(nil)
	}
	if appointment.Status == models.AppointmentStatusCancelled {
		return nil
	}

	cancelledAt := uc.now()
	err = uc.Transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.SlotRepository.ReleaseSlot(txCtx, appointment.SlotID); err != nil {
			return err
		}
		return uc.AppointmentRepository.MarkCancelled(txCtx, appointment.ID, cancelledAt)
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error cancelling",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return err
	}

	appointment.Status = models.AppointmentStatusCancelled
	appointment.CancelledAt = &cancelledAt

	metrics.RecordAppointmentCancellation()
	uc.publish(ctx, constvars.EventAppointmentCancelled, appointment)
	utils.LogBusinessEvent(uc.Log, "appointment_cancelled", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingSlotIDKey, appointment.SlotID.Hex()),
	)
	return nil
}

func (uc *appointmentUsecase) ListPatientAppointments(ctx context.Context, patientID string) ([]responses.Appointment, error) {
	patientObjectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	appointments, err := uc.AppointmentRepository.FindByPatientID(ctx, patientObjectID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListPatientAppointments error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	return utils.BuildAppointmentsResponse(appointments), nil
}

func (uc *appointmentUsecase) ListDoctorAppointments(ctx context.Context, userID string) ([]responses.Appointment, error) {
	doctor, err := uc.DoctorRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	appointments, err := uc.AppointmentRepository.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListDoctorAppointments error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}
	return utils.BuildAppointmentsResponse(appointments), nil
}

// SearchAvailableSlots lists free future slots. A doctor id takes precedence
// over a specialty; a date narrows the result to that local day.
func (uc *appointmentUsecase) SearchAvailableSlots(ctx context.Context, request *requests.SearchAvailableSlots) ([]responses.Slot, error) {
	now := uc.now()
	filter := contracts.AvailableSlotFilter{From: now}

	switch {
	case request.DoctorID != "":
		doctorID, err := primitive.ObjectIDFromHex(request.DoctorID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter.DoctorIDs = []primitive.ObjectID{doctorID}
	case request.Specialty != "":
		doctorIDs, err := uc.DoctorRepository.FindApprovedIDsBySpecialty(ctx, request.Specialty)
		if err != nil {
			return nil, err
		}
		if doctorIDs == nil {
			doctorIDs = []primitive.ObjectID{}
		}
		filter.DoctorIDs = doctorIDs
	}

	if request.Date != "" {
		dayStart, err := utils.ParseDate(request.Date, time.Local)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		dayEnd := utils.NextDay(dayStart)
		if !dayEnd.After(now) {
			return []responses.Slot{}, nil
		}
		if dayStart.After(now) {
			filter.From = dayStart
		}
		filter.To = &dayEnd
	}

	slots, err := uc.SlotRepository.FindAvailable(ctx, filter)
	if err != nil {
		uc.Log.Error("appointmentUsecase.SearchAvailableSlots error fetching slots",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	return utils.BuildAvailableSlotsResponse(slots), nil
}

func (uc *appointmentUsecase) CompletePastAppointments(ctx context.Context, now time.Time) (int64, error) {
	return uc.AppointmentRepository.CompleteEndedBefore(ctx, now)
}

func (uc *appointmentUsecase) releaseClaim(ctx context.Context, slotID, patientID primitive.ObjectID) {
	released, err := uc.SlotRepository.ReleaseClaim(context.WithoutCancel(ctx), slotID, patientID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.releaseClaim failed, slot may stay booked without appointment",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSlotIDKey, slotID.Hex()),
			zap.Error(err),
		)
		return
	}
	uc.Log.Info("appointmentUsecase.releaseClaim done",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSlotIDKey, slotID.Hex()),
		zap.Bool("released", released),
	)
}

// publish never fails the caller; the appointment is already stored.
func (uc *appointmentUsecase) publish(ctx context.Context, event string, appointment *models.Appointment) {
	if uc.EventPublisher == nil {
		return
	}
	err := uc.EventPublisher.PublishAppointmentEvent(ctx, &models.AppointmentEvent{
		Event:         event,
		AppointmentID: appointment.ID.Hex(),
		PatientID:     appointment.PatientID.Hex(),
		DoctorID:      appointment.DoctorID.Hex(),
		SlotID:        appointment.SlotID.Hex(),
		StartTime:     appointment.StartTime,
		EndTime:       appointment.EndTime,
		Status:        string(appointment.Status),
		OccurredAt:    uc.now(),
	})
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publish failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventKey, event),
			zap.Error(err),
		)
	}
}

package slot

import (
	"context"
	"errors"
	"fmt"
	"healthlinker-service/internal/app/config"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/dto/requests"
	"healthlinker-service/internal/pkg/dto/responses"
	"healthlinker-service/internal/pkg/exceptions"
	"healthlinker-service/internal/pkg/metrics"
	"healthlinker-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const generationLockTTL = time.Minute

type SlotUsecase struct {
	doctors contracts.DoctorRepository
	slots   contracts.SlotRepository
	locker  contracts.LockerService
	config  *config.InternalConfig
	logger  *zap.Logger
}

func NewSlotUsecase(
	doctors contracts.DoctorRepository,
	slots contracts.SlotRepository,
	locker contracts.LockerService,
	config *config.InternalConfig,
	logger *zap.Logger,
) *SlotUsecase {
	return &SlotUsecase{
		doctors: doctors,
		slots:   slots,
		locker:  locker,
		config:  config,
		logger:  logger,
	}
}

func (uc *SlotUsecase) GenerateSlots(ctx context.Context, userID string, request *requests.GenerateSlots) (*responses.GenerateSlots, error) {
	requestID := utils.GetRequestID(ctx)
	uc.logger.Info("SlotUsecase.GenerateSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingStartDateKey, request.StartDate),
		zap.String(constvars.LoggingEndDateKey, request.EndDate),
	)

	loc := time.Local
	startDate, err := utils.ParseDate(request.StartDate, loc)
	if err != nil {
		uc.logger.Error("SlotUsecase.GenerateSlots error parsing start date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseDate(err)
	}
	endDate, err := utils.ParseDate(request.EndDate, loc)
	if err != nil {
		uc.logger.Error("SlotUsecase.GenerateSlots error parsing end date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if startDate.After(endDate) {
		return nil, exceptions.ErrInvalidDateRange(nil)
	}
	maxDays := uc.config.App.MaxSlotGenerationDays
	if maxDays > 0 && utils.DaysInclusive(startDate, endDate) > maxDays {
		return nil, exceptions.ErrDateRangeTooLong(nil, maxDays)
	}

	doctor, err := uc.doctors.FindByUserID(ctx, userID)
	if err != nil {
		uc.logger.Error("SlotUsecase.GenerateSlots error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !doctor.IsApproved() {
		uc.logger.Warn("SlotUsecase.GenerateSlots doctor missing or not approved",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
		)
		return nil, exceptions.ErrDoctorNotApproved(nil)
	}

	plan, err := uc.validateDoctorTemplate(doctor)
	if err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf(constvars.SlotGeneratorDoctorLockFormat, doctor.ID.Hex())
	acquired, token, err := uc.locker.TryLock(ctx, lockKey, generationLockTTL)
	if err != nil {
		uc.logger.Error("SlotUsecase.GenerateSlots error acquiring lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotGenerationLocked(nil, doctor.ID.Hex())
	}
	defer func() {
		if err := uc.locker.Unlock(ctx, lockKey, token); err != nil {
			uc.logger.Warn("SlotUsecase.GenerateSlots failed to release lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	deleted, err := uc.slots.DeleteUnbookedInRange(ctx, doctor.ID, startDate, endDate)
	if err != nil {
		uc.logger.Error("SlotUsecase.GenerateSlots error deleting unbooked slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	booked, err := uc.slots.FindBookedInRange(ctx, doctor.ID, startDate, endDate)
	if err != nil {
		uc.logger.Error("SlotUsecase.GenerateSlots error fetching booked slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	intervals := GenerateIntervals(plan, doctor.SlotDuration, startDate, endDate, loc)
	intervals = excludeBookedIntervals(intervals, booked)

	inserted := []models.Slot{}
	if len(intervals) > 0 {
		inserted, err = uc.slots.InsertMany(ctx, buildSlots(doctor.ID, intervals, loc))
		if err != nil {
			uc.logger.Error("SlotUsecase.GenerateSlots error inserting slots",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	metrics.RecordSlotsGenerated(metrics.SourceRequest, len(inserted))
	utils.LogBusinessEvent(uc.logger, "slots_generated", requestID,
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID.Hex()),
		zap.Int(constvars.LoggingCountKey, len(inserted)),
		zap.Int64("deleted_unbooked", deleted),
		zap.Int("kept_booked", len(booked)),
	)

	uc.logger.Info("SlotUsecase.GenerateSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(inserted)),
	)

	return &responses.GenerateSlots{
		Count:     len(inserted),
		StartDate: startDate.Format(constvars.DateLayoutYMD),
		EndDate:   endDate.Format(constvars.DateLayoutYMD),
		Slots:     utils.BuildSlotsResponse(inserted),
	}, nil
}

// TopUpSlots fills days in [from, from+days) that have no slot at all for the doctor.
// Days that already carry slots, booked or not, are left alone. It shares the
// per-doctor generation lock and skips the doctor while a generation holds it.
func (uc *SlotUsecase) TopUpSlots(ctx context.Context, doctor *models.Doctor, from time.Time, days int) (int, error) {
	if !doctor.IsApproved() || days <= 0 {
		return 0, nil
	}
	plan, err := uc.validateDoctorTemplate(doctor)
	if err != nil {
		return 0, err
	}

	lockKey := fmt.Sprintf(constvars.SlotGeneratorDoctorLockFormat, doctor.ID.Hex())
	acquired, token, err := uc.locker.TryLock(ctx, lockKey, generationLockTTL)
	if err != nil {
		return 0, err
	}
	if !acquired {
		uc.logger.Info("SlotUsecase.TopUpSlots generation in progress, skipping doctor",
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID.Hex()),
		)
		return 0, nil
	}
	defer func() {
		if err := uc.locker.Unlock(ctx, lockKey, token); err != nil {
			uc.logger.Warn("SlotUsecase.TopUpSlots failed to release lock",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	loc := time.Local
	start := utils.StartOfDay(from.In(loc))
	end := start.AddDate(0, 0, days-1)

	covered, err := uc.slots.FindDatesWithSlots(ctx, doctor.ID, start, end)
	if err != nil {
		return 0, err
	}
	coveredDays := make(map[string]struct{}, len(covered))
	for _, d := range covered {
		coveredDays[d.In(loc).Format(constvars.DateLayoutYMD)] = struct{}{}
	}

	var intervals []Interval
	for day := start; !day.After(end); day = utils.NextDay(day) {
		if _, ok := coveredDays[day.Format(constvars.DateLayoutYMD)]; ok {
			continue
		}
		intervals = append(intervals, GenerateIntervals(plan, doctor.SlotDuration, day, day, loc)...)
	}
	if len(intervals) == 0 {
		return 0, nil
	}

	inserted, err := uc.slots.InsertMany(ctx, buildSlots(doctor.ID, intervals, loc))
	if err != nil {
		return 0, err
	}
	metrics.RecordSlotsGenerated(metrics.SourceWorker, len(inserted))
	return len(inserted), nil
}

func (uc *SlotUsecase) validateDoctorTemplate(doctor *models.Doctor) (WeeklyPlan, error) {
	if len(doctor.WorkingHours) == 0 {
		return WeeklyPlan{}, exceptions.ErrDoctorWorkingHoursNotSet(nil)
	}
	if doctor.SlotDuration <= 0 {
		return WeeklyPlan{}, exceptions.ErrDoctorSlotDurationNotSet(nil)
	}
	plan, err := ConvertWorkingHoursToWeeklyPlan(doctor.WorkingHours)
	if err != nil {
		return WeeklyPlan{}, exceptions.ErrInvalidWorkingHours(err)
	}
	if plan.IsEmpty() {
		return WeeklyPlan{}, exceptions.ErrDoctorWorkingHoursNotSet(errors.New("no usable working hour window"))
	}
	return plan, nil
}

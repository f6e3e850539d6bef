package slot

import (
	"context"
	"healthlinker-service/internal/app/config"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/metrics"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultLeaderLockTTL = 2 * time.Minute

// Worker periodically keeps a rolling window of slots for approved doctors
// and closes appointments that already ended.
type Worker struct {
	log          *zap.Logger
	cfg          *config.InternalConfig
	locker       contracts.LockerService
	doctors      contracts.DoctorRepository
	slotUsecase  contracts.SlotUsecase
	appointments contracts.AppointmentUsecase
	now          func() time.Time
	stop         chan struct{}
	cron         *cron.Cron
	runCtx       context.Context
	cancel       context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	doctors contracts.DoctorRepository,
	slotUsecase contracts.SlotUsecase,
	appointments contracts.AppointmentUsecase,
) *Worker {
	return &Worker{
		log:          log,
		cfg:          cfg,
		locker:       lockerSvc,
		doctors:      doctors,
		slotUsecase:  slotUsecase,
		appointments: appointments,
		now:          time.Now,
		stop:         make(chan struct{}),
	}
}

// Start schedules the periodic run on the configured cron spec.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.SlotWorker.CronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("slot.worker: failed to schedule with provided cron spec; falling back to @daily",
			zap.String("cron_spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
	w.log.Info("slot.worker: started", zap.String("cron_spec", spec), zap.Int("window_days", w.cfg.SlotWorker.WindowDays))
}

// Stop gracefully stops the worker cron and any in-flight run.
func (w *Worker) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) leaderLockTTL() time.Duration {
	if w.cfg.SlotWorker.LeaderLockTTLInSeconds > 0 {
		return time.Duration(w.cfg.SlotWorker.LeaderLockTTLInSeconds) * time.Second
	}
	return defaultLeaderLockTTL
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := w.leaderLockTTL()
	acquired, token, err := w.locker.TryLock(ctx, constvars.SlotGeneratorLeaderLockKey, ttl)
	if err != nil {
		w.log.Warn("slot.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("slot.worker: leader lock not acquired; another instance is running")
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.WithoutCancel(ctx), constvars.SlotGeneratorLeaderLockKey, token); err != nil {
			w.log.Warn("slot.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				w.log.Debug("slot.worker: refreshing leader lock TTL",
					zap.String(constvars.LoggingRedisKey, constvars.SlotGeneratorLeaderLockKey),
					zap.Duration(constvars.LoggingLockExpirationTimeKey, ttl),
				)
				if err := w.locker.Refresh(refreshCtx, constvars.SlotGeneratorLeaderLockKey, token, ttl); err != nil {
					w.log.Warn("slot.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	now := w.now()
	w.topUpApprovedDoctors(ctx, now)

	completed, err := w.appointments.CompletePastAppointments(ctx, now)
	if err != nil {
		w.log.Warn("slot.worker: completing past appointments failed", zap.Error(err))
		return
	}
	if completed > 0 {
		metrics.RecordAppointmentsCompleted(int(completed))
	}
	w.log.Info("slot.worker: run finished", zap.Int64("appointments_completed", completed))
}

func (w *Worker) topUpApprovedDoctors(ctx context.Context, now time.Time) {
	doctors, err := w.doctors.FindByStatus(ctx, models.DoctorStatusApproved)
	if err != nil {
		w.log.Warn("slot.worker: approved doctors lookup failed", zap.Error(err))
		return
	}

	total := 0
	for i := range doctors {
		select {
		case <-ctx.Done():
			w.log.Info("slot.worker: run cancelled", zap.Error(ctx.Err()))
			return
		default:
		}

		doctor := &doctors[i]
		if len(doctor.WorkingHours) == 0 || doctor.SlotDuration <= 0 {
			continue
		}
		created, err := w.slotUsecase.TopUpSlots(ctx, doctor, now, w.cfg.SlotWorker.WindowDays)
		if err != nil {
			w.log.Warn("slot.worker: top up failed",
				zap.String(constvars.LoggingDoctorIDKey, doctor.ID.Hex()),
				zap.Error(err),
			)
			continue
		}
		total += created
	}
	w.log.Info("slot.worker: top up finished",
		zap.Int("doctors", len(doctors)),
		zap.Int(constvars.LoggingCountKey, total),
	)
}

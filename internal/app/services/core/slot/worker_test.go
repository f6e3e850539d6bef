package slot

import (
	"context"
	"errors"
	"healthlinker-service/internal/app/config"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestWorker() (*Worker, *MockLockerService, *MockDoctorRepository, *MockSlotUsecase, *MockAppointmentUsecase) {
	locker := new(MockLockerService)
	doctors := new(MockDoctorRepository)
	slots := new(MockSlotUsecase)
	appointments := new(MockAppointmentUsecase)
	cfg := &config.InternalConfig{SlotWorker: config.AppSlotWorker{
		CronSpec:               "@daily",
		WindowDays:             14,
		LeaderLockTTLInSeconds: 120,
	}}
	w := NewWorker(zap.NewNop(), cfg, locker, doctors, slots, appointments)
	return w, locker, doctors, slots, appointments
}

func TestWorker_RunOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 7, 0, 5, 0, 0, time.UTC)

	t.Run("skips when another instance leads", func(t *testing.T) {
		w, locker, doctors, _, appointments := newTestWorker()
		locker.On("TryLock", mock.Anything, constvars.SlotGeneratorLeaderLockKey, 2*time.Minute).Return(false, "", nil)

		w.runOnce(ctx)

		doctors.AssertNotCalled(t, "FindByStatus")
		appointments.AssertNotCalled(t, "CompletePastAppointments")
	})

	t.Run("skips when lock errors", func(t *testing.T) {
		w, locker, doctors, _, _ := newTestWorker()
		locker.On("TryLock", mock.Anything, constvars.SlotGeneratorLeaderLockKey, 2*time.Minute).Return(false, "", errors.New("redis down"))

		w.runOnce(ctx)

		doctors.AssertNotCalled(t, "FindByStatus")
	})

	t.Run("tops up approved doctors then completes past appointments", func(t *testing.T) {
		w, locker, doctors, slots, appointments := newTestWorker()
		w.now = func() time.Time { return now }

		ready := approvedDoctor()
		noTemplate := approvedDoctor()
		noTemplate.WorkingHours = nil
		failing := approvedDoctor()

		locker.On("TryLock", mock.Anything, constvars.SlotGeneratorLeaderLockKey, 2*time.Minute).Return(true, "leader-token", nil)
		locker.On("Unlock", mock.Anything, constvars.SlotGeneratorLeaderLockKey, "leader-token").Return(nil)
		doctors.On("FindByStatus", mock.Anything, models.DoctorStatusApproved).
			Return([]models.Doctor{*ready, *noTemplate, *failing}, nil)
		slots.On("TopUpSlots", mock.Anything, mock.MatchedBy(func(d *models.Doctor) bool { return d.ID == ready.ID }), now, 14).Return(8, nil)
		slots.On("TopUpSlots", mock.Anything, mock.MatchedBy(func(d *models.Doctor) bool { return d.ID == failing.ID }), now, 14).
			Return(0, errors.New("insert failed"))
		appointments.On("CompletePastAppointments", mock.Anything, now).Return(int64(3), nil)

		w.runOnce(ctx)

		slots.AssertNumberOfCalls(t, "TopUpSlots", 2)
		appointments.AssertExpectations(t)
		locker.AssertExpectations(t)
	})
}

func TestWorker_StartStop(t *testing.T) {
	w, _, _, _, _ := newTestWorker()
	w.cfg.SlotWorker.CronSpec = "not a cron spec"

	w.Start(context.Background())
	w.Stop()
	// second stop must not panic on the closed channel
	w.Stop()
}

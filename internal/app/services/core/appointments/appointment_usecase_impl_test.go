package appointments

import (
	"context"
	"errors"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/dto/requests"
	"healthlinker-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type testDeps struct {
	appointments *MockAppointmentRepository
	slots        *MockSlotRepository
	doctors      *MockDoctorRepository
	publisher    *MockEventPublisher
	transactor   *passThroughTransactor
}

func newTestUsecase(now time.Time) (*appointmentUsecase, *testDeps) {
	deps := &testDeps{
		appointments: new(MockAppointmentRepository),
		slots:        new(MockSlotRepository),
		doctors:      new(MockDoctorRepository),
		publisher:    new(MockEventPublisher),
		transactor:   &passThroughTransactor{},
	}
	uc := NewAppointmentUsecase(deps.appointments, deps.slots, deps.doctors, deps.transactor, deps.publisher, zap.NewNop()).(*appointmentUsecase)
	uc.now = func() time.Time { return now }
	return uc, deps
}

func TestAppointmentUsecase_BookSlot(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 7, 8, 0, 0, 0, time.Local)
	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	slotID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()

	claimedSlot := &models.Slot{
		ID:        slotID,
		DoctorID:  doctorID,
		PatientID: &patientID,
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(90 * time.Minute),
		IsBooked:  true,
	}

	t.Run("doctor cannot book", func(t *testing.T) {
		uc, deps := newTestUsecase(now)

		_, err := uc.BookSlot(ctx, patientID.Hex(), models.RoleDoctor, &requests.BookAppointment{SlotID: slotID.Hex()})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
		deps.slots.AssertNotCalled(t, "ClaimSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed slot id", func(t *testing.T) {
		uc, deps := newTestUsecase(now)

		_, err := uc.BookSlot(ctx, patientID.Hex(), models.RolePatient, &requests.BookAppointment{SlotID: "not-an-id"})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
		assert.Equal(t, 0, deps.transactor.calls)
	})

	t.Run("slot already taken", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		deps.slots.On("ClaimSlot", ctx, slotID, patientID, now).Return(nil, nil)

		_, err := uc.BookSlot(ctx, patientID.Hex(), models.RolePatient, &requests.BookAppointment{SlotID: slotID.Hex()})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
		deps.appointments.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
		deps.slots.AssertNotCalled(t, "ReleaseClaim", mock.Anything, mock.Anything, mock.Anything)
		deps.publisher.AssertNotCalled(t, "PublishAppointmentEvent", mock.Anything, mock.Anything)
	})

	t.Run("confirmed appointment with default reason", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		deps.slots.On("ClaimSlot", ctx, slotID, patientID, now).Return(claimedSlot, nil)
		deps.appointments.On("CreateAppointment", ctx, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.Status == models.AppointmentStatusConfirmed &&
				a.Reason == constvars.DefaultBookingReason &&
				a.DoctorID == doctorID &&
				a.SlotID == slotID &&
				a.StartTime.Equal(claimedSlot.StartTime) &&
				a.EndTime.Equal(claimedSlot.EndTime)
		})).Return(appointmentID.Hex(), nil)
		deps.publisher.On("PublishAppointmentEvent", ctx, mock.MatchedBy(func(e *models.AppointmentEvent) bool {
			return e.Event == constvars.EventAppointmentBooked && e.AppointmentID == appointmentID.Hex()
		})).Return(nil)
		deps.appointments.On("FindDetailByID", ctx, appointmentID).Return(&models.AppointmentDetail{
			Appointment: models.Appointment{
				ID:        appointmentID,
				PatientID: patientID,
				DoctorID:  doctorID,
				SlotID:    slotID,
				StartTime: claimedSlot.StartTime,
				EndTime:   claimedSlot.EndTime,
				Status:    models.AppointmentStatusConfirmed,
				Reason:    constvars.DefaultBookingReason,
			},
			Doctor: &models.DoctorSummary{ID: doctorID, Name: "Dr. House", Specialty: "Diagnostics", Fees: 300},
		}, nil)

		result, err := uc.BookSlot(ctx, patientID.Hex(), models.RolePatient, &requests.BookAppointment{SlotID: slotID.Hex(), Reason: "   "})

		require.NoError(t, err)
		assert.Equal(t, appointmentID.Hex(), result.ID)
		assert.Equal(t, "Confirmed", result.Status)
		require.NotNil(t, result.Doctor)
		assert.Equal(t, "Dr. House", result.Doctor.Name)
		assert.Equal(t, 1, deps.transactor.calls)
		deps.publisher.AssertExpectations(t)
	})

	t.Run("insert failure releases claim", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		deps.slots.On("ClaimSlot", ctx, slotID, patientID, now).Return(claimedSlot, nil)
		deps.appointments.On("CreateAppointment", ctx, mock.Anything).
			Return("", exceptions.ErrMongoDBInsertDocument(errors.New("write concern timeout")))
		deps.slots.On("ReleaseClaim", mock.Anything, slotID, patientID).Return(true, nil)

		_, err := uc.BookSlot(ctx, patientID.Hex(), models.RolePatient, &requests.BookAppointment{SlotID: slotID.Hex(), Reason: "checkup"})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusInternalServerError, exceptions.StatusCodeOf(err))
		deps.slots.AssertCalled(t, "ReleaseClaim", mock.Anything, slotID, patientID)
		deps.publisher.AssertNotCalled(t, "PublishAppointmentEvent", mock.Anything, mock.Anything)
	})

	t.Run("publish failure does not fail booking", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		deps.slots.On("ClaimSlot", ctx, slotID, patientID, now).Return(claimedSlot, nil)
		deps.appointments.On("CreateAppointment", ctx, mock.Anything).Return(appointmentID.Hex(), nil)
		deps.publisher.On("PublishAppointmentEvent", ctx, mock.Anything).Return(errors.New("broker down"))
		deps.appointments.On("FindDetailByID", ctx, appointmentID).Return(nil, nil)

		result, err := uc.BookSlot(ctx, patientID.Hex(), models.RolePatient, &requests.BookAppointment{SlotID: slotID.Hex(), Reason: "follow up"})

		require.NoError(t, err)
		assert.Equal(t, "follow up", result.Reason)
		assert.Equal(t, slotID.Hex(), result.SlotID)
	})
}

func TestAppointmentUsecase_CancelAppointment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 7, 8, 0, 0, 0, time.Local)
	patientID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()
	slotID := primitive.NewObjectID()

	confirmed := func() *models.Appointment {
		return &models.Appointment{
			ID:        appointmentID,
			PatientID: patientID,
			SlotID:    slotID,
			Status:    models.AppointmentStatusConfirmed,
		}
	}

	t.Run("not found", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		deps.appointments.On("FindByID", ctx, appointmentID.Hex()).Return(nil, nil)

		err := uc.CancelAppointment(ctx, patientID.Hex(), appointmentID.Hex())

		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("other patient is forbidden", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		deps.appointments.On("FindByID", ctx, appointmentID.Hex()).Return(confirmed(), nil)

		err := uc.CancelAppointment(ctx, primitive.NewObjectID().Hex(), appointmentID.Hex())

		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
		deps.slots.AssertNotCalled(t, "ReleaseSlot", mock.Anything, mock.Anything)
		deps.appointments.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		appointment := confirmed()
		appointment.Status = models.AppointmentStatusCancelled
		deps.appointments.On("FindByID", ctx, appointmentID.Hex()).Return(appointment, nil)

		err := uc.CancelAppointment(ctx, patientID.Hex(), appointmentID.Hex())

		require.NoError(t, err)
		assert.Equal(t, 0, deps.transactor.calls)
	})

	t.Run("releases slot and marks cancelled", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		deps.appointments.On("FindByID", ctx, appointmentID.Hex()).Return(confirmed(), nil)
		deps.slots.On("ReleaseSlot", ctx, slotID).Return(nil)
		deps.appointments.On("MarkCancelled", ctx, appointmentID, now).Return(nil)
		deps.publisher.On("PublishAppointmentEvent", ctx, mock.MatchedBy(func(e *models.AppointmentEvent) bool {
			return e.Event == constvars.EventAppointmentCancelled && e.Status == "Cancelled"
		})).Return(nil)

		err := uc.CancelAppointment(ctx, patientID.Hex(), appointmentID.Hex())

		require.NoError(t, err)
		assert.Equal(t, 1, deps.transactor.calls)
		deps.slots.AssertExpectations(t)
		deps.appointments.AssertExpectations(t)
		deps.publisher.AssertExpectations(t)
	})

	t.Run("slot release failure stops cancellation", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		deps.appointments.On("FindByID", ctx, appointmentID.Hex()).Return(confirmed(), nil)
		deps.slots.On("ReleaseSlot", ctx, slotID).Return(exceptions.ErrMongoDBUpdateDocument(errors.New("timeout")))

		err := uc.CancelAppointment(ctx, patientID.Hex(), appointmentID.Hex())

		require.Error(t, err)
		deps.appointments.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything, mock.Anything)
		deps.publisher.AssertNotCalled(t, "PublishAppointmentEvent", mock.Anything, mock.Anything)
	})
}

func TestAppointmentUsecase_ListDoctorAppointments(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID().Hex()

	t.Run("missing doctor profile", func(t *testing.T) {
		uc, deps := newTestUsecase(time.Now())
		deps.doctors.On("FindByUserID", ctx, userID).Return(nil, nil)

		_, err := uc.ListDoctorAppointments(ctx, userID)

		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("joined with patient", func(t *testing.T) {
		uc, deps := newTestUsecase(time.Now())
		doctor := &models.Doctor{ID: primitive.NewObjectID()}
		deps.doctors.On("FindByUserID", ctx, userID).Return(doctor, nil)
		deps.appointments.On("FindByDoctorID", ctx, doctor.ID).Return([]models.AppointmentDetail{
			{
				Appointment: models.Appointment{ID: primitive.NewObjectID(), Status: models.AppointmentStatusConfirmed},
				Patient:     &models.PatientSummary{Name: "Jane", Email: "jane@example.com"},
			},
		}, nil)

		result, err := uc.ListDoctorAppointments(ctx, userID)

		require.NoError(t, err)
		require.Len(t, result, 1)
		require.NotNil(t, result[0].Patient)
		assert.Equal(t, "jane@example.com", result[0].Patient.Email)
	})
}

func TestAppointmentUsecase_SearchAvailableSlots(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 7, 10, 30, 0, 0, time.Local)
	doctorID := primitive.NewObjectID()

	t.Run("doctor id wins over specialty", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		deps.slots.On("FindAvailable", ctx, contracts.AvailableSlotFilter{
			DoctorIDs: []primitive.ObjectID{doctorID},
			From:      now,
		}).Return([]models.SlotWithDoctor{}, nil)

		result, err := uc.SearchAvailableSlots(ctx, &requests.SearchAvailableSlots{DoctorID: doctorID.Hex(), Specialty: "cardiology"})

		require.NoError(t, err)
		assert.Empty(t, result)
		deps.doctors.AssertNotCalled(t, "FindApprovedIDsBySpecialty", mock.Anything, mock.Anything)
	})

	t.Run("unknown specialty matches nothing", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		deps.doctors.On("FindApprovedIDsBySpecialty", ctx, "Dermatology").Return(nil, nil)
		deps.slots.On("FindAvailable", ctx, contracts.AvailableSlotFilter{
			DoctorIDs: []primitive.ObjectID{},
			From:      now,
		}).Return([]models.SlotWithDoctor{}, nil)

		result, err := uc.SearchAvailableSlots(ctx, &requests.SearchAvailableSlots{Specialty: "Dermatology"})

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("today starts from now", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		dayEnd := time.Date(2030, 1, 8, 0, 0, 0, 0, time.Local)
		deps.slots.On("FindAvailable", ctx, mock.MatchedBy(func(f contracts.AvailableSlotFilter) bool {
			return f.DoctorIDs == nil && f.From.Equal(now) && f.To != nil && f.To.Equal(dayEnd)
		})).Return([]models.SlotWithDoctor{
			{
				Slot:   models.Slot{ID: primitive.NewObjectID(), DoctorID: doctorID, StartTime: now.Add(30 * time.Minute)},
				Doctor: &models.DoctorSummary{ID: doctorID, Name: "Dr. Grey"},
			},
		}, nil)

		result, err := uc.SearchAvailableSlots(ctx, &requests.SearchAvailableSlots{Date: "2030-01-07"})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Dr. Grey", result[0].Doctor.Name)
	})

	t.Run("future day starts at midnight", func(t *testing.T) {
		uc, deps := newTestUsecase(now)
		dayStart := time.Date(2030, 1, 9, 0, 0, 0, 0, time.Local)
		deps.slots.On("FindAvailable", ctx, mock.MatchedBy(func(f contracts.AvailableSlotFilter) bool {
			return f.From.Equal(dayStart) && f.To != nil && f.To.Equal(dayStart.AddDate(0, 0, 1))
		})).Return([]models.SlotWithDoctor{}, nil)

		_, err := uc.SearchAvailableSlots(ctx, &requests.SearchAvailableSlots{Date: "2030-01-09"})

		require.NoError(t, err)
		deps.slots.AssertExpectations(t)
	})

	t.Run("past day returns nothing without querying", func(t *testing.T) {
		uc, deps := newTestUsecase(now)

		result, err := uc.SearchAvailableSlots(ctx, &requests.SearchAvailableSlots{Date: "2030-01-06"})

		require.NoError(t, err)
		assert.Empty(t, result)
		deps.slots.AssertNotCalled(t, "FindAvailable", mock.Anything, mock.Anything)
	})

	t.Run("malformed date", func(t *testing.T) {
		uc, _ := newTestUsecase(now)

		_, err := uc.SearchAvailableSlots(ctx, &requests.SearchAvailableSlots{Date: "07/01/2030"})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})
}

func TestAppointmentUsecase_CompletePastAppointments(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	uc, deps := newTestUsecase(now)
	deps.appointments.On("CompleteEndedBefore", ctx, now).Return(int64(4), nil)

	count, err := uc.CompletePastAppointments(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

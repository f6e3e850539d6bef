package appointments

import (
	"context"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentRepository) FindDetailByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.AppointmentDetail, error) {
	args := m.Called(ctx, appointmentID)
	detail, _ := args.Get(0).(*models.AppointmentDetail)
	return detail, args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.AppointmentDetail, error) {
	args := m.Called(ctx, patientID)
	details, _ := args.Get(0).([]models.AppointmentDetail)
	return details, args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.AppointmentDetail, error) {
	args := m.Called(ctx, doctorID)
	details, _ := args.Get(0).([]models.AppointmentDetail)
	return details, args.Error(1)
}

func (m *MockAppointmentRepository) MarkCancelled(ctx context.Context, appointmentID primitive.ObjectID, cancelledAt time.Time) error {
	args := m.Called(ctx, appointmentID, cancelledAt)
	return args.Error(0)
}

func (m *MockAppointmentRepository) CompleteEndedBefore(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) InsertMany(ctx context.Context, slots []models.Slot) ([]models.Slot, error) {
	args := m.Called(ctx, slots)
	inserted, _ := args.Get(0).([]models.Slot)
	return inserted, args.Error(1)
}

func (m *MockSlotRepository) DeleteUnbookedInRange(ctx context.Context, doctorID primitive.ObjectID, startDate, endDate time.Time) (int64, error) {
	args := m.Called(ctx, doctorID, startDate, endDate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSlotRepository) FindDatesWithSlots(ctx context.Context, doctorID primitive.ObjectID, startDate, endDate time.Time) ([]time.Time, error) {
	args := m.Called(ctx, doctorID, startDate, endDate)
	dates, _ := args.Get(0).([]time.Time)
	return dates, args.Error(1)
}

func (m *MockSlotRepository) FindBookedInRange(ctx context.Context, doctorID primitive.ObjectID, startDate, endDate time.Time) ([]models.Slot, error) {
	args := m.Called(ctx, doctorID, startDate, endDate)
	slots, _ := args.Get(0).([]models.Slot)
	return slots, args.Error(1)
}

func (m *MockSlotRepository) ClaimSlot(ctx context.Context, slotID primitive.ObjectID, patientID primitive.ObjectID, now time.Time) (*models.Slot, error) {
	args := m.Called(ctx, slotID, patientID, now)
	slot, _ := args.Get(0).(*models.Slot)
	return slot, args.Error(1)
}

func (m *MockSlotRepository) ReleaseClaim(ctx context.Context, slotID primitive.ObjectID, patientID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, slotID, patientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSlotRepository) ReleaseSlot(ctx context.Context, slotID primitive.ObjectID) error {
	args := m.Called(ctx, slotID)
	return args.Error(0)
}

func (m *MockSlotRepository) FindAvailable(ctx context.Context, filter contracts.AvailableSlotFilter) ([]models.SlotWithDoctor, error) {
	args := m.Called(ctx, filter)
	slots, _ := args.Get(0).([]models.SlotWithDoctor)
	return slots, args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) UpdateStatus(ctx context.Context, doctorID string, status models.DoctorStatus) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID, status)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorRepository) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	args := m.Called(ctx, userID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorRepository) FindApproved(ctx context.Context, filter contracts.DoctorFilter) ([]models.Doctor, int64, error) {
	args := m.Called(ctx, filter)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Get(1).(int64), args.Error(2)
}

func (m *MockDoctorRepository) FindApprovedIDsBySpecialty(ctx context.Context, specialty string) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, specialty)
	ids, _ := args.Get(0).([]primitive.ObjectID)
	return ids, args.Error(1)
}

func (m *MockDoctorRepository) FindByStatus(ctx context.Context, status models.DoctorStatus) ([]models.Doctor, error) {
	args := m.Called(ctx, status)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// passThroughTransactor runs the unit of work directly, like a standalone server.
type passThroughTransactor struct {
	calls int
}

func (t *passThroughTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

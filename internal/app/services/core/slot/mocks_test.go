package slot

import (
	"context"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/dto/requests"
	"healthlinker-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

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

type MockSlotRepository struct {
	mock.Mock
}

// InsertMany echoes the input with fresh ids unless the expectation returns an error.
func (m *MockSlotRepository) InsertMany(ctx context.Context, slots []models.Slot) ([]models.Slot, error) {
	args := m.Called(ctx, slots)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	for i := range slots {
		slots[i].ID = primitive.NewObjectID()
	}
	return slots, nil
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

func (m *MockSlotRepository) ClaimSlot(ctx context.Context, slotID, patientID primitive.ObjectID, now time.Time) (*models.Slot, error) {
	args := m.Called(ctx, slotID, patientID, now)
	slot, _ := args.Get(0).(*models.Slot)
	return slot, args.Error(1)
}

func (m *MockSlotRepository) ReleaseClaim(ctx context.Context, slotID, patientID primitive.ObjectID) (bool, error) {
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

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type MockSlotUsecase struct {
	mock.Mock
}

func (m *MockSlotUsecase) GenerateSlots(ctx context.Context, userID string, request *requests.GenerateSlots) (*responses.GenerateSlots, error) {
	args := m.Called(ctx, userID, request)
	result, _ := args.Get(0).(*responses.GenerateSlots)
	return result, args.Error(1)
}

func (m *MockSlotUsecase) TopUpSlots(ctx context.Context, doctor *models.Doctor, from time.Time, days int) (int, error) {
	args := m.Called(ctx, doctor, from, days)
	return args.Int(0), args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) BookSlot(ctx context.Context, patientID string, role models.UserRole, request *requests.BookAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, patientID, role, request)
	result, _ := args.Get(0).(*responses.Appointment)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) CancelAppointment(ctx context.Context, patientID, appointmentID string) error {
	args := m.Called(ctx, patientID, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentUsecase) ListPatientAppointments(ctx context.Context, patientID string) ([]responses.Appointment, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).([]responses.Appointment)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) ListDoctorAppointments(ctx context.Context, userID string) ([]responses.Appointment, error) {
	args := m.Called(ctx, userID)
	result, _ := args.Get(0).([]responses.Appointment)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) SearchAvailableSlots(ctx context.Context, request *requests.SearchAvailableSlots) ([]responses.Slot, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).([]responses.Slot)
	return result, args.Error(1)
}

func (m *MockAppointmentUsecase) CompletePastAppointments(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

package main

import (
	"context"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
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

type MockSlotTopUpper struct {
	mock.Mock
}

func (m *MockSlotTopUpper) TopUpSlots(ctx context.Context, doctor *models.Doctor, from time.Time, days int) (int, error) {
	args := m.Called(ctx, doctor, from, days)
	return args.Int(0), args.Error(1)
}

package contracts

import (
	"context"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/dto/requests"
	"healthlinker-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AvailableSlotFilter narrows the free slot search. DoctorIDs nil means any
// doctor; an empty non-nil slice matches nothing.
type AvailableSlotFilter struct {
	DoctorIDs []primitive.ObjectID
	From      time.Time
	To        *time.Time
}

type SlotUsecase interface {
	GenerateSlots(ctx context.Context, userID string, request *requests.GenerateSlots) (*responses.GenerateSlots, error)
	TopUpSlots(ctx context.Context, doctor *models.Doctor, from time.Time, days int) (int, error)
}

type SlotRepository interface {
	InsertMany(ctx context.Context, slots []models.Slot) ([]models.Slot, error)
	DeleteUnbookedInRange(ctx context.Context, doctorID primitive.ObjectID, startDate, endDate time.Time) (int64, error)
	FindDatesWithSlots(ctx context.Context, doctorID primitive.ObjectID, startDate, endDate time.Time) ([]time.Time, error)
	FindBookedInRange(ctx context.Context, doctorID primitive.ObjectID, startDate, endDate time.Time) ([]models.Slot, error)
	// ClaimSlot atomically books a free future slot. It returns nil, nil when nothing matched.
	ClaimSlot(ctx context.Context, slotID primitive.ObjectID, patientID primitive.ObjectID, now time.Time) (*models.Slot, error)
	// ReleaseClaim undoes a claim only while the slot is still held by patientID.
	ReleaseClaim(ctx context.Context, slotID primitive.ObjectID, patientID primitive.ObjectID) (bool, error)
	ReleaseSlot(ctx context.Context, slotID primitive.ObjectID) error
	FindAvailable(ctx context.Context, filter AvailableSlotFilter) ([]models.SlotWithDoctor, error)
}

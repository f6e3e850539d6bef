package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Slot struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	DoctorID  primitive.ObjectID  `bson:"doctorId"`
	PatientID *primitive.ObjectID `bson:"patientId,omitempty"`
	StartTime time.Time           `bson:"startTime"`
	EndTime   time.Time           `bson:"endTime"`
	Date      time.Time           `bson:"date"`
	IsBooked  bool                `bson:"isBooked"`
	TimeModel `bson:",inline"`
}

type SlotWithDoctor struct {
	Slot   `bson:",inline"`
	Doctor *DoctorSummary `bson:"doctor,omitempty"`
}

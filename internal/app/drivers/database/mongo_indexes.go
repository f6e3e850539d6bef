package database

import (
	"context"
	"fmt"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func indexPlan() []collectionIndexes {
	activeStatuses := make(bson.A, 0, len(models.ActiveAppointmentStatuses))
	for _, status := range models.ActiveAppointmentStatuses {
		activeStatuses = append(activeStatuses, status)
	}

	return []collectionIndexes{
		{
			collection: constvars.MongoCollectionUsers,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
			},
		},
		{
			collection: constvars.MongoCollectionDoctors,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_user")},
				{Keys: bson.D{{Key: "status", Value: 1}, {Key: "specialty", Value: 1}}, Options: options.Index().SetName("status_specialty")},
			},
		},
		{
			collection: constvars.MongoCollectionSlots,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}, {Key: "isBooked", Value: 1}}, Options: options.Index().SetName("doctor_date_booked")},
				{Keys: bson.D{{Key: "startTime", Value: 1}}, Options: options.Index().SetName("start_time")},
				{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "startTime", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_doctor_start")},
			},
		},
		{
			collection: constvars.MongoCollectionAppointments,
			models: []mongo.IndexModel{
				{
					Keys: bson.D{{Key: "slotId", Value: 1}},
					Options: options.Index().
						SetUnique(true).
						SetName("uniq_active_slot").
						SetPartialFilterExpression(bson.M{"status": bson.M{"$in": activeStatuses}}),
				},
				{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "startTime", Value: 1}}, Options: options.Index().SetName("patient_start")},
				{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "startTime", Value: 1}}, Options: options.Index().SetName("doctor_start")},
				{Keys: bson.D{{Key: "status", Value: 1}, {Key: "endTime", Value: 1}}, Options: options.Index().SetName("status_end")},
			},
		},
	}
}

// EnsureIndexes creates every index the repositories rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)
	for _, plan := range indexPlan() {
		if _, err := db.Collection(plan.collection).Indexes().CreateMany(ctx, plan.models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", plan.collection, err)
		}
	}
	return nil
}

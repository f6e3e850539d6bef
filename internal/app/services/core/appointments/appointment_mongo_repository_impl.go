package appointments

import (
	"context"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrSlotAlreadyBooked(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID := result.InsertedID.(primitive.ObjectID)
	appointment.ID = insertedID
	return insertedID.Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindDetailByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.AppointmentDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": appointmentID}}},
	}
	pipeline = append(pipeline, doctorLookupStages()...)

	details, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

func (r *AppointmentMongoRepository) FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.AppointmentDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"patientId": patientID}}},
		{{Key: "$sort", Value: bson.D{{Key: "startTime", Value: 1}}}},
	}
	pipeline = append(pipeline, doctorLookupStages()...)
	return r.aggregate(ctx, pipeline)
}

func (r *AppointmentMongoRepository) FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.AppointmentDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"doctorId": doctorID}}},
		{{Key: "$sort", Value: bson.D{{Key: "startTime", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         constvars.MongoCollectionUsers,
			"localField":   "patientId",
			"foreignField": "_id",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"name": 1, "email": 1}},
			},
			"as": "patient",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$patient", "preserveNullAndEmptyArrays": true}}},
	}
	return r.aggregate(ctx, pipeline)
}

// MarkCancelled only touches appointments that are not cancelled yet, so a
// repeated call leaves cancelledAt as it was.
func (r *AppointmentMongoRepository) MarkCancelled(ctx context.Context, appointmentID primitive.ObjectID, cancelledAt time.Time) error {
	filter := bson.M{
		"_id":    appointmentID,
		"status": bson.M{"$ne": models.AppointmentStatusCancelled},
	}
	update := bson.M{"$set": bson.M{
		"status":      models.AppointmentStatusCancelled,
		"cancelledAt": cancelledAt,
		"updatedAt":   cancelledAt,
	}}
	if _, err := r.Collection.UpdateOne(ctx, filter, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) CompleteEndedBefore(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{
		"status":  models.AppointmentStatusConfirmed,
		"endTime": bson.M{"$lt": now},
	}
	update := bson.M{"$set": bson.M{
		"status":    models.AppointmentStatusCompleted,
		"updatedAt": now,
	}}
	result, err := r.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (r *AppointmentMongoRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]models.AppointmentDetail, error) {
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	details := []models.AppointmentDetail{}
	if err := cursor.All(ctx, &details); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return details, nil
}

func doctorLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         constvars.MongoCollectionDoctors,
			"localField":   "doctorId",
			"foreignField": "_id",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"name": 1, "specialty": 1, "fees": 1}},
			},
			"as": "doctor",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$doctor", "preserveNullAndEmptyArrays": true}}},
	}
}

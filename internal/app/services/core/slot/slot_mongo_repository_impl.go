package slot

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Client, dbName string) contracts.SlotRepository {
	return &SlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSlots),
	}
}

func (r *SlotMongoRepository) InsertMany(ctx context.Context, slots []models.Slot) ([]models.Slot, error) {
	if len(slots) == 0 {
		return slots, nil
	}
	documents := make([]interface{}, 0, len(slots))
	for i := range slots {
		documents = append(documents, slots[i])
	}

	result, err := r.Collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	for i, id := range result.InsertedIDs {
		if objectID, ok := id.(primitive.ObjectID); ok {
			slots[i].ID = objectID
		}
	}
	return slots, nil
}

func (r *SlotMongoRepository) DeleteUnbookedInRange(ctx context.Context, doctorID primitive.ObjectID, startDate, endDate time.Time) (int64, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"isBooked": false,
		"date":     bson.M{"$gte": startDate, "$lte": endDate},
	}
	result, err := r.Collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (r *SlotMongoRepository) FindDatesWithSlots(ctx context.Context, doctorID primitive.ObjectID, startDate, endDate time.Time) ([]time.Time, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"date":     bson.M{"$gte": startDate, "$lte": endDate},
	}
	values, err := r.Collection.Distinct(ctx, "date", filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	dates := make([]time.Time, 0, len(values))
	for _, v := range values {
		if dt, ok := v.(primitive.DateTime); ok {
			dates = append(dates, dt.Time())
		}
	}
	return dates, nil
}

func (r *SlotMongoRepository) FindBookedInRange(ctx context.Context, doctorID primitive.ObjectID, startDate, endDate time.Time) ([]models.Slot, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"isBooked": true,
		"date":     bson.M{"$gte": startDate, "$lte": endDate},
	}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	slots := []models.Slot{}
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

// ClaimSlot is the only concurrency guard for booking: one conditional find-and-update.
func (r *SlotMongoRepository) ClaimSlot(ctx context.Context, slotID, patientID primitive.ObjectID, now time.Time) (*models.Slot, error) {
	filter := bson.M{
		"_id":       slotID,
		"isBooked":  false,
		"startTime": bson.M{"$gte": now},
	}
	update := bson.M{"$set": bson.M{
		"isBooked":  true,
		"patientId": patientID,
		"updatedAt": now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.Slot
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) ReleaseClaim(ctx context.Context, slotID, patientID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"_id":       slotID,
		"isBooked":  true,
		"patientId": patientID,
	}
	update := bson.M{
		"$set":   bson.M{"isBooked": false, "updatedAt": time.Now()},
		"$unset": bson.M{"patientId": ""},
	}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *SlotMongoRepository) ReleaseSlot(ctx context.Context, slotID primitive.ObjectID) error {
	update := bson.M{
		"$set":   bson.M{"isBooked": false, "updatedAt": time.Now()},
		"$unset": bson.M{"patientId": ""},
	}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": slotID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *SlotMongoRepository) FindAvailable(ctx context.Context, filter contracts.AvailableSlotFilter) ([]models.SlotWithDoctor, error) {
	if filter.DoctorIDs != nil && len(filter.DoctorIDs) == 0 {
		return []models.SlotWithDoctor{}, nil
	}

	startTime := bson.M{"$gte": filter.From}
	if filter.To != nil {
		startTime["$lt"] = *filter.To
	}
	match := bson.M{
		"isBooked":  false,
		"startTime": startTime,
	}
	if filter.DoctorIDs != nil {
		match["doctorId"] = bson.M{"$in": filter.DoctorIDs}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "startTime", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         constvars.MongoCollectionDoctors,
			"localField":   "doctorId",
			"foreignField": "_id",
			"as":           "doctor",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"name": 1, "specialty": 1, "fees": 1}},
			},
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$doctor", "preserveNullAndEmptyArrays": true}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	slots := []models.SlotWithDoctor{}
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

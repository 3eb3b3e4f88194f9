package reservation

import (
	"context"
	"fmt"
	"time"

	"fitbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const mongoOpTimeout = 5 * time.Second

// MongoStore persists reservations in a Mongo collection.
//
// The serialized confirm path lives in the booking service (an
// in-process lock keyed by location/date/start). With several API
// instances that lock does not span processes; a transactional insert
// with a capacity re-count inside the transaction would be the next
// step if this service is ever scaled horizontally.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	return &MongoStore{coll: client.Database(dbName).Collection("reservations")}
}

func (s *MongoStore) find(ctx context.Context, filter bson.M) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find reservations: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]models.Reservation, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode reservations: %w", err)
	}
	return out, nil
}

func (s *MongoStore) List(ctx context.Context) ([]models.Reservation, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoStore) ListForDay(ctx context.Context, locationID, date string) ([]models.Reservation, error) {
	return s.find(ctx, bson.M{"location_id": locationID, "date": date})
}

func (s *MongoStore) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	return s.find(ctx, bson.M{"user_id": userID})
}

func (s *MongoStore) Create(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	res := models.Reservation{
		ID:            uuid.New().String(),
		UserID:        draft.UserID,
		LocationID:    draft.LocationID,
		ServiceTypeID: draft.ServiceTypeID,
		Provider:      draft.Provider,
		Date:          draft.Date,
		Start:         draft.Start,
		End:           draft.End,
		Status:        models.ReservationConfirmed,
		CreatedAt:     time.Now(),
	}
	if _, err := s.coll.InsertOne(ctx, res); err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}
	return &res, nil
}

func (s *MongoStore) Cancel(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	filter := bson.M{"id": id, "status": models.ReservationConfirmed}
	update := bson.M{"$set": bson.M{"status": models.ReservationCancelled}}
	// MatchedCount 0 means missing or already cancelled; both are fine.
	if _, err := s.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("cancel reservation %s: %w", id, err)
	}
	return nil
}

func (s *MongoStore) CompleteBefore(ctx context.Context, now time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	today := now.Format("2006-01-02")
	minute := now.Hour()*60 + now.Minute()

	filter := bson.M{
		"status": models.ReservationConfirmed,
		"$or": bson.A{
			bson.M{"date": bson.M{"$lt": today}},
			bson.M{"date": today, "end": bson.M{"$lte": minute}},
		},
	}
	update := bson.M{"$set": bson.M{"status": models.ReservationCompleted}}
	res, err := s.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("complete past reservations: %w", err)
	}
	return int(res.ModifiedCount), nil
}

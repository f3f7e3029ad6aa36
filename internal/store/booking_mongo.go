package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/models"
)

type MongoBookingStore struct {
	collection *mongo.Collection
}

func NewMongoBookingStore(db *mongo.Database) *MongoBookingStore {
	return &MongoBookingStore{collection: db.Collection("bookings")}
}

func (s *MongoBookingStore) Insert(ctx context.Context, booking models.Booking) (primitive.ObjectID, error) {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	return booking.ID, nil
}

func (s *MongoBookingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: booking %s", httperr.ErrNotFound, id.Hex())
	}
	return nil
}

func (s *MongoBookingStore) List(ctx context.Context) ([]models.Booking, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoBookingStore) ListByGuest(ctx context.Context, email string) ([]models.Booking, error) {
	return s.find(ctx, bson.M{"guest.email": email})
}

func (s *MongoBookingStore) ListByHost(ctx context.Context, email string) ([]models.Booking, error) {
	return s.find(ctx, bson.M{"host.email": email})
}

func (s *MongoBookingStore) Count(ctx context.Context) (int64, error) {
	n, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	return n, nil
}

func (s *MongoBookingStore) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	return bookings, nil
}

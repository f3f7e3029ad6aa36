package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/models"
)

type MongoRoomStore struct {
	collection *mongo.Collection
}

func NewMongoRoomStore(db *mongo.Database) *MongoRoomStore {
	return &MongoRoomStore{collection: db.Collection("rooms")}
}

func (s *MongoRoomStore) List(ctx context.Context, category string) ([]models.Room, error) {
	filter := bson.M{}
	if category != "" && category != "null" {
		filter["category"] = category
	}
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	return rooms, nil
}

func (s *MongoRoomStore) Get(ctx context.Context, id primitive.ObjectID) (models.Room, error) {
	var room models.Room
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Room{}, fmt.Errorf("%w: room %s", httperr.ErrNotFound, id.Hex())
	}
	if err != nil {
		return models.Room{}, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	return room, nil
}

func (s *MongoRoomStore) Insert(ctx context.Context, room models.Room) (primitive.ObjectID, error) {
	if room.ID.IsZero() {
		room.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, room)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	return room.ID, nil
}

func (s *MongoRoomStore) Update(ctx context.Context, id primitive.ObjectID, room models.Room) error {
	room.ID = id
	res, err := s.collection.ReplaceOne(ctx, bson.M{"_id": id}, room)
	if err != nil {
		return fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: room %s", httperr.ErrNotFound, id.Hex())
	}
	return nil
}

func (s *MongoRoomStore) SetBooked(ctx context.Context, id primitive.ObjectID, booked bool) error {
	update := bson.M{"$set": bson.M{"booked": booked}}
	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: room %s", httperr.ErrNotFound, id.Hex())
	}
	return nil
}

func (s *MongoRoomStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: room %s", httperr.ErrNotFound, id.Hex())
	}
	return nil
}

func (s *MongoRoomStore) ListByHost(ctx context.Context, email string) ([]models.Room, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"host.email": email})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	return rooms, nil
}

func (s *MongoRoomStore) Count(ctx context.Context) (int64, error) {
	n, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	return n, nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/models"
)

type MongoUserStore struct {
	collection *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{collection: db.Collection("users")}
}

func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fmt.Errorf("%w: user %s", httperr.ErrNotFound, email)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	return user, nil
}

func (s *MongoUserStore) Upsert(ctx context.Context, user models.User) error {
	opts := options.Update().SetUpsert(true)
	update := bson.M{"$set": bson.M{
		"email":     user.Email,
		"name":      user.Name,
		"image":     user.Image,
		"role":      user.Role,
		"status":    user.Status,
		"timestamp": user.Timestamp,
	}}
	_, err := s.collection.UpdateOne(ctx, bson.M{"email": user.Email}, update, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	return nil
}

func (s *MongoUserStore) SetStatus(ctx context.Context, email, status string) error {
	update := bson.M{"$set": bson.M{"status": status}}
	res, err := s.collection.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: user %s", httperr.ErrNotFound, email)
	}
	return nil
}

func (s *MongoUserStore) UpdateRole(ctx context.Context, email, role, status string) error {
	update := bson.M{"$set": bson.M{
		"role":      role,
		"status":    status,
		"timestamp": time.Now(),
	}}
	res, err := s.collection.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: user %s", httperr.ErrNotFound, email)
	}
	return nil
}

func (s *MongoUserStore) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	return users, nil
}

func (s *MongoUserStore) Count(ctx context.Context) (int64, error) {
	n, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", httperr.ErrUpstream, err)
	}
	return n, nil
}

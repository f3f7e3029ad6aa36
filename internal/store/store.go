package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stayvista/stayvista-server/internal/models"
)

// UserStore is the identity store keyed by email.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
	// Upsert writes every field of user against its email key, inserting
	// the record when absent.
	Upsert(ctx context.Context, user models.User) error
	SetStatus(ctx context.Context, email, status string) error
	// UpdateRole sets only the allow-listed mutable fields (role, status)
	// and refreshes the timestamp.
	UpdateRole(ctx context.Context, email, role, status string) error
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
}

type RoomStore interface {
	List(ctx context.Context, category string) ([]models.Room, error)
	Get(ctx context.Context, id primitive.ObjectID) (models.Room, error)
	Insert(ctx context.Context, room models.Room) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, room models.Room) error
	SetBooked(ctx context.Context, id primitive.ObjectID, booked bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByHost(ctx context.Context, email string) ([]models.Room, error)
	Count(ctx context.Context) (int64, error)
}

type BookingStore interface {
	Insert(ctx context.Context, booking models.Booking) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context) ([]models.Booking, error)
	ListByGuest(ctx context.Context, email string) ([]models.Booking, error)
	ListByHost(ctx context.Context, email string) ([]models.Booking, error)
	Count(ctx context.Context) (int64, error)
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GuestInfo is the embedded guest reference stored on bookings.
type GuestInfo struct {
	Email string `bson:"email" json:"email" validate:"required,email"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

type Booking struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RoomID primitive.ObjectID `bson:"roomId" json:"roomId" validate:"required"`
	Title  string             `bson:"title,omitempty" json:"title,omitempty"`
	Image  string             `bson:"image,omitempty" json:"image,omitempty"`
	Guest  GuestInfo          `bson:"guest" json:"guest" validate:"required"`
	Host   HostInfo           `bson:"host" json:"host" validate:"required"`
	Date   time.Time          `bson:"date" json:"date" validate:"required"`
	Price  float64            `bson:"price" json:"price" validate:"required,gt=0"`
}

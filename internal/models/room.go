package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HostInfo is the embedded host reference stored on rooms and bookings.
type HostInfo struct {
	Email string `bson:"email" json:"email" validate:"required,email"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

type Room struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Location    string             `bson:"location" json:"location"`
	Category    string             `bson:"category" json:"category"`
	Price       float64            `bson:"price" json:"price" validate:"gt=0"`
	Guests      int                `bson:"guests" json:"guests"`
	Bathrooms   int                `bson:"bathrooms" json:"bathrooms"`
	Bedrooms    int                `bson:"bedrooms" json:"bedrooms"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	From        time.Time          `bson:"from,omitempty" json:"from,omitempty"`
	To          time.Time          `bson:"to,omitempty" json:"to,omitempty"`
	Host        HostInfo           `bson:"host" json:"host"`
	Booked      bool               `bson:"booked" json:"booked"`
}

package models

import (
	"time"
)

// Roles a user can hold on the platform.
const (
	RoleGuest = "guest"
	RoleHost  = "host"
	RoleAdmin = "admin"
)

// StatusRequested marks a guest who asked to become a host.
const StatusRequested = "Requested"

type User struct {
	Email     string    `bson:"email" json:"email" validate:"required,email"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	Role      string    `bson:"role" json:"role"`
	Status    string    `bson:"status,omitempty" json:"status,omitempty"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

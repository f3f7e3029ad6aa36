package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/models"
	"github.com/stayvista/stayvista-server/internal/store"
)

type BookingService struct {
	bookings store.BookingStore
	rooms    store.RoomStore
}

func NewBookingService(bookings store.BookingStore, rooms store.RoomStore) *BookingService {
	return &BookingService{bookings: bookings, rooms: rooms}
}

// CreateBooking inserts the reservation. The embedded host reference comes
// from the room record, never from the request body. The room's booked flag
// is toggled by a separate call, not here; two guests racing on the same
// room can both get a booking in.
func (s *BookingService) CreateBooking(ctx context.Context, booking models.Booking) (primitive.ObjectID, error) {
	room, err := s.rooms.Get(ctx, booking.RoomID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	booking.Host = room.Host

	if err := validate.Struct(booking); err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", httperr.ErrInvalidInput, err)
	}
	return s.bookings.Insert(ctx, booking)
}

// DeleteBooking removes a booking owned by the caller, or any booking on a
// room the caller hosts. The room's booked flag is not reverted.
func (s *BookingService) DeleteBooking(ctx context.Context, id string, callerEmail string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid booking id %q", httperr.ErrInvalidInput, id)
	}

	owned := false
	guestBookings, err := s.bookings.ListByGuest(ctx, callerEmail)
	if err != nil {
		return err
	}
	for _, b := range guestBookings {
		if b.ID == objID {
			owned = true
			break
		}
	}
	if !owned {
		hostBookings, err := s.bookings.ListByHost(ctx, callerEmail)
		if err != nil {
			return err
		}
		for _, b := range hostBookings {
			if b.ID == objID {
				owned = true
				break
			}
		}
	}
	if !owned {
		return httperr.ErrForbidden
	}

	return s.bookings.Delete(ctx, objID)
}

func (s *BookingService) ListBookingsByGuest(ctx context.Context, email string) ([]models.Booking, error) {
	return s.bookings.ListByGuest(ctx, email)
}

func (s *BookingService) ListBookingsByHost(ctx context.Context, email string) ([]models.Booking, error) {
	return s.bookings.ListByHost(ctx, email)
}

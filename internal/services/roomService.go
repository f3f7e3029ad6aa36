package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/models"
	"github.com/stayvista/stayvista-server/internal/store"
)

type RoomService struct {
	rooms    store.RoomStore
	bookings store.BookingStore
}

func NewRoomService(rooms store.RoomStore, bookings store.BookingStore) *RoomService {
	return &RoomService{rooms: rooms, bookings: bookings}
}

func (s *RoomService) ListRooms(ctx context.Context, category string) ([]models.Room, error) {
	return s.rooms.List(ctx, category)
}

func (s *RoomService) GetRoom(ctx context.Context, id string) (models.Room, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Room{}, fmt.Errorf("%w: invalid room id %q", httperr.ErrInvalidInput, id)
	}
	return s.rooms.Get(ctx, objID)
}

func (s *RoomService) AddRoom(ctx context.Context, room models.Room) (primitive.ObjectID, error) {
	if err := validate.Struct(room); err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", httperr.ErrInvalidInput, err)
	}
	room.Booked = false
	return s.rooms.Insert(ctx, room)
}

// UpdateRoom replaces a room's listing data. Only the owning host may
// update, and the host reference itself is not writable.
func (s *RoomService) UpdateRoom(ctx context.Context, id string, room models.Room, callerEmail string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid room id %q", httperr.ErrInvalidInput, id)
	}
	existing, err := s.rooms.Get(ctx, objID)
	if err != nil {
		return err
	}
	if existing.Host.Email != callerEmail {
		return httperr.ErrForbidden
	}
	room.Host = existing.Host
	return s.rooms.Update(ctx, objID, room)
}

// SetAvailability flips a room's booked flag. The caller must either own
// the room or hold a booking on it; anyone else is rejected before the
// write. Setting the current value again is a no-op.
func (s *RoomService) SetAvailability(ctx context.Context, id string, booked bool, callerEmail string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid room id %q", httperr.ErrInvalidInput, id)
	}
	room, err := s.rooms.Get(ctx, objID)
	if err != nil {
		return err
	}
	if room.Host.Email != callerEmail && !s.hasBookingOn(ctx, objID, callerEmail) {
		return httperr.ErrForbidden
	}
	if room.Booked == booked {
		return nil
	}
	return s.rooms.SetBooked(ctx, objID, booked)
}

func (s *RoomService) hasBookingOn(ctx context.Context, roomID primitive.ObjectID, email string) bool {
	list, err := s.bookings.ListByGuest(ctx, email)
	if err != nil {
		return false
	}
	for _, b := range list {
		if b.RoomID == roomID {
			return true
		}
	}
	return false
}

// DeleteRoom removes a room owned by the caller. A room with live bookings
// cannot be deleted; the bookings have to go first.
func (s *RoomService) DeleteRoom(ctx context.Context, id string, callerEmail string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid room id %q", httperr.ErrInvalidInput, id)
	}
	room, err := s.rooms.Get(ctx, objID)
	if err != nil {
		return err
	}
	if room.Host.Email != callerEmail {
		return httperr.ErrForbidden
	}

	hostBookings, err := s.bookings.ListByHost(ctx, callerEmail)
	if err != nil {
		return err
	}
	for _, b := range hostBookings {
		if b.RoomID == objID {
			return fmt.Errorf("%w: room %s still has bookings", httperr.ErrInvalidInput, id)
		}
	}

	return s.rooms.Delete(ctx, objID)
}

func (s *RoomService) ListRoomsByHost(ctx context.Context, email string) ([]models.Room, error) {
	return s.rooms.ListByHost(ctx, email)
}

// Package storetest provides in-memory store fakes for tests.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/models"
)

type FakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User

	// Lookups counts GetByEmail calls, so tests can assert a guard never
	// consulted the identity store.
	Lookups int
}

func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{users: make(map[string]models.User)}
}

func (s *FakeUserStore) GetByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Lookups++
	user, ok := s.users[email]
	if !ok {
		return models.User{}, fmt.Errorf("%w: user %s", httperr.ErrNotFound, email)
	}
	return user, nil
}

func (s *FakeUserStore) Upsert(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Email] = user
	return nil
}

func (s *FakeUserStore) SetStatus(_ context.Context, email, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return fmt.Errorf("%w: user %s", httperr.ErrNotFound, email)
	}
	user.Status = status
	s.users[email] = user
	return nil
}

func (s *FakeUserStore) UpdateRole(_ context.Context, email, role, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return fmt.Errorf("%w: user %s", httperr.ErrNotFound, email)
	}
	user.Role = role
	user.Status = status
	user.Timestamp = time.Now()
	s.users[email] = user
	return nil
}

func (s *FakeUserStore) List(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *FakeUserStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

type FakeRoomStore struct {
	mu    sync.Mutex
	rooms []models.Room

	// SetBookedCalls counts the writes that actually reached the store.
	SetBookedCalls int
}

func NewFakeRoomStore() *FakeRoomStore {
	return &FakeRoomStore{}
}

func (s *FakeRoomStore) List(_ context.Context, category string) ([]models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rooms []models.Room
	for _, r := range s.rooms {
		if category == "" || category == "null" || r.Category == category {
			rooms = append(rooms, r)
		}
	}
	return rooms, nil
}

func (s *FakeRoomStore) Get(_ context.Context, id primitive.ObjectID) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Room{}, fmt.Errorf("%w: room %s", httperr.ErrNotFound, id.Hex())
}

func (s *FakeRoomStore) Insert(_ context.Context, room models.Room) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room.ID.IsZero() {
		room.ID = primitive.NewObjectID()
	}
	s.rooms = append(s.rooms, room)
	return room.ID, nil
}

func (s *FakeRoomStore) Update(_ context.Context, id primitive.ObjectID, room models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rooms {
		if r.ID == id {
			room.ID = id
			s.rooms[i] = room
			return nil
		}
	}
	return fmt.Errorf("%w: room %s", httperr.ErrNotFound, id.Hex())
}

func (s *FakeRoomStore) SetBooked(_ context.Context, id primitive.ObjectID, booked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SetBookedCalls++
	for i, r := range s.rooms {
		if r.ID == id {
			s.rooms[i].Booked = booked
			return nil
		}
	}
	return fmt.Errorf("%w: room %s", httperr.ErrNotFound, id.Hex())
}

func (s *FakeRoomStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rooms {
		if r.ID == id {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: room %s", httperr.ErrNotFound, id.Hex())
}

func (s *FakeRoomStore) ListByHost(_ context.Context, email string) ([]models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rooms []models.Room
	for _, r := range s.rooms {
		if r.Host.Email == email {
			rooms = append(rooms, r)
		}
	}
	return rooms, nil
}

func (s *FakeRoomStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.rooms)), nil
}

// FakeBookingStore keeps bookings in insertion order, matching the ordered
// sequences the mongo store returns.
type FakeBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func NewFakeBookingStore() *FakeBookingStore {
	return &FakeBookingStore{}
}

func (s *FakeBookingStore) Insert(_ context.Context, booking models.Booking) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	s.bookings = append(s.bookings, booking)
	return booking.ID, nil
}

func (s *FakeBookingStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: booking %s", httperr.ErrNotFound, id.Hex())
}

func (s *FakeBookingStore) List(_ context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Booking(nil), s.bookings...), nil
}

func (s *FakeBookingStore) ListByGuest(_ context.Context, email string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var bookings []models.Booking
	for _, b := range s.bookings {
		if b.Guest.Email == email {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (s *FakeBookingStore) ListByHost(_ context.Context, email string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var bookings []models.Booking
	for _, b := range s.bookings {
		if b.Host.Email == email {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (s *FakeBookingStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.bookings)), nil
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/models"
	"github.com/stayvista/stayvista-server/internal/store/storetest"
)

func testRoom(t *testing.T, rooms *storetest.FakeRoomStore, host string) primitive.ObjectID {
	t.Helper()
	id, err := rooms.Insert(context.Background(), models.Room{
		Title: "Seaside loft",
		Price: 120,
		Host:  models.HostInfo{Email: host},
	})
	require.NoError(t, err)
	return id
}

func validBooking(roomID primitive.ObjectID) models.Booking {
	return models.Booking{
		RoomID: roomID,
		Guest:  models.GuestInfo{Email: "g@x.com"},
		Host:   models.HostInfo{Email: "h@x.com"},
		Date:   time.Now(),
		Price:  120,
	}
}

func TestCreateBooking(t *testing.T) {
	rooms := storetest.NewFakeRoomStore()
	bookings := storetest.NewFakeBookingStore()
	svc := NewBookingService(bookings, rooms)

	roomID := testRoom(t, rooms, "h@x.com")

	id, err := svc.CreateBooking(context.Background(), validBooking(roomID))
	require.NoError(t, err)
	assert.False(t, id.IsZero())

	list, err := bookings.ListByGuest(context.Background(), "g@x.com")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateBookingRejectsNonPositivePrice(t *testing.T) {
	rooms := storetest.NewFakeRoomStore()
	svc := NewBookingService(storetest.NewFakeBookingStore(), rooms)
	roomID := testRoom(t, rooms, "h@x.com")

	for _, price := range []float64{0, -10} {
		booking := validBooking(roomID)
		booking.Price = price
		_, err := svc.CreateBooking(context.Background(), booking)
		assert.ErrorIs(t, err, httperr.ErrInvalidInput)
	}
}

func TestCreateBookingStampsHostFromRoom(t *testing.T) {
	rooms := storetest.NewFakeRoomStore()
	bookings := storetest.NewFakeBookingStore()
	svc := NewBookingService(bookings, rooms)
	roomID := testRoom(t, rooms, "h@x.com")

	booking := validBooking(roomID)
	booking.Host = models.HostInfo{Email: "forged@x.com"}

	_, err := svc.CreateBooking(context.Background(), booking)
	require.NoError(t, err)

	// The stored host is the room's, not the body's.
	forged, err := bookings.ListByHost(context.Background(), "forged@x.com")
	require.NoError(t, err)
	assert.Empty(t, forged)

	stored, err := bookings.ListByHost(context.Background(), "h@x.com")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	svc := NewBookingService(storetest.NewFakeBookingStore(), storetest.NewFakeRoomStore())

	_, err := svc.CreateBooking(context.Background(), validBooking(primitive.NewObjectID()))
	assert.ErrorIs(t, err, httperr.ErrNotFound)
}

func TestCreateBookingDoesNotToggleRoom(t *testing.T) {
	rooms := storetest.NewFakeRoomStore()
	svc := NewBookingService(storetest.NewFakeBookingStore(), rooms)
	roomID := testRoom(t, rooms, "h@x.com")

	_, err := svc.CreateBooking(context.Background(), validBooking(roomID))
	require.NoError(t, err)

	room, err := rooms.Get(context.Background(), roomID)
	require.NoError(t, err)
	assert.False(t, room.Booked)
	assert.Zero(t, rooms.SetBookedCalls)
}

func TestDeleteBookingByGuest(t *testing.T) {
	rooms := storetest.NewFakeRoomStore()
	bookings := storetest.NewFakeBookingStore()
	svc := NewBookingService(bookings, rooms)
	roomID := testRoom(t, rooms, "h@x.com")

	id, err := svc.CreateBooking(context.Background(), validBooking(roomID))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(context.Background(), id.Hex(), "g@x.com"))

	count, err := bookings.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteBookingByHost(t *testing.T) {
	rooms := storetest.NewFakeRoomStore()
	bookings := storetest.NewFakeBookingStore()
	svc := NewBookingService(bookings, rooms)
	roomID := testRoom(t, rooms, "h@x.com")

	id, err := svc.CreateBooking(context.Background(), validBooking(roomID))
	require.NoError(t, err)

	assert.NoError(t, svc.DeleteBooking(context.Background(), id.Hex(), "h@x.com"))
}

func TestDeleteBookingStranger(t *testing.T) {
	rooms := storetest.NewFakeRoomStore()
	bookings := storetest.NewFakeBookingStore()
	svc := NewBookingService(bookings, rooms)
	roomID := testRoom(t, rooms, "h@x.com")

	id, err := svc.CreateBooking(context.Background(), validBooking(roomID))
	require.NoError(t, err)

	err = svc.DeleteBooking(context.Background(), id.Hex(), "stranger@x.com")
	assert.ErrorIs(t, err, httperr.ErrForbidden)
}

func TestDeleteBookingBadID(t *testing.T) {
	svc := NewBookingService(storetest.NewFakeBookingStore(), storetest.NewFakeRoomStore())

	err := svc.DeleteBooking(context.Background(), "nope", "g@x.com")
	assert.ErrorIs(t, err, httperr.ErrInvalidInput)
}

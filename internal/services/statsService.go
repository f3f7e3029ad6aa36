package services

import (
	"context"
	"fmt"
	"time"

	"github.com/stayvista/stayvista-server/internal/models"
	"github.com/stayvista/stayvista-server/internal/store"
)

type AdminStats struct {
	TotalUsers    int64           `json:"totalUsers"`
	TotalRooms    int64           `json:"totalRooms"`
	TotalBookings int64           `json:"totalBookings"`
	TotalPrice    float64         `json:"totalPrice"`
	ChartData     [][]interface{} `json:"chartData"`
}

type HostStats struct {
	TotalRooms    int64           `json:"totalRooms"`
	TotalBookings int64           `json:"totalBookings"`
	TotalPrice    float64         `json:"totalPrice"`
	HostSince     time.Time       `json:"hostSince"`
	ChartData     [][]interface{} `json:"chartData"`
}

type StatsService struct {
	users    store.UserStore
	rooms    store.RoomStore
	bookings store.BookingStore
}

func NewStatsService(users store.UserStore, rooms store.RoomStore, bookings store.BookingStore) *StatsService {
	return &StatsService{users: users, rooms: rooms, bookings: bookings}
}

// PlatformStats rolls up totals across the whole platform.
func (s *StatsService) PlatformStats(ctx context.Context) (AdminStats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return AdminStats{}, err
	}
	totalRooms, err := s.rooms.Count(ctx)
	if err != nil {
		return AdminStats{}, err
	}
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return AdminStats{}, err
	}

	return AdminStats{
		TotalUsers:    totalUsers,
		TotalRooms:    totalRooms,
		TotalBookings: int64(len(bookings)),
		TotalPrice:    sumPrices(bookings),
		ChartData:     chartData(bookings),
	}, nil
}

// StatsForHost rolls up the caller's own rooms and bookings. The email comes
// from the verified session claim, never from the request, so one host can't
// read another's numbers.
func (s *StatsService) StatsForHost(ctx context.Context, email string) (HostStats, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return HostStats{}, err
	}
	rooms, err := s.rooms.ListByHost(ctx, email)
	if err != nil {
		return HostStats{}, err
	}
	bookings, err := s.bookings.ListByHost(ctx, email)
	if err != nil {
		return HostStats{}, err
	}

	return HostStats{
		TotalRooms:    int64(len(rooms)),
		TotalBookings: int64(len(bookings)),
		TotalPrice:    sumPrices(bookings),
		HostSince:     user.Timestamp,
		ChartData:     chartData(bookings),
	}, nil
}

func sumPrices(bookings []models.Booking) float64 {
	var total float64
	for _, b := range bookings {
		total += b.Price
	}
	return total
}

// chartData builds the [day/month, price] series the dashboard charts eat.
// One entry per booking in query order; same-day bookings stay separate.
func chartData(bookings []models.Booking) [][]interface{} {
	series := make([][]interface{}, 0, len(bookings)+1)
	series = append(series, []interface{}{"Day", "Sales"})
	for _, b := range bookings {
		day := fmt.Sprintf("%d/%d", b.Date.Day(), int(b.Date.Month()))
		series = append(series, []interface{}{day, b.Price})
	}
	return series
}

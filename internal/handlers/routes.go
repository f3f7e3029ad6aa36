package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stayvista/stayvista-server/internal/middleware"
	"github.com/stayvista/stayvista-server/internal/models"
	"github.com/stayvista/stayvista-server/internal/services"
	"github.com/stayvista/stayvista-server/internal/store"
)

// SetupRoutes wires every route onto app. Stores come in as interfaces so
// tests can run the whole surface against in-memory fakes.
func SetupRoutes(app *fiber.App, users store.UserStore, rooms store.RoomStore, bookings store.BookingStore) {
	userHandler := NewUserHandler(services.NewUserService(users))
	roomHandler := NewRoomHandler(services.NewRoomService(rooms, bookings))
	bookingHandler := NewBookingHandler(services.NewBookingService(bookings, rooms))
	statsHandler := NewStatsHandler(services.NewStatsService(users, rooms, bookings))

	requireHost := middleware.RequireRole(users, models.RoleHost)
	requireAdmin := middleware.RequireRole(users, models.RoleAdmin)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello from StayVista Server..")
	})

	// Session
	app.Post("/jwt", CreateTokenHandler)
	app.Get("/logout", LogoutHandler)

	// Rooms
	app.Get("/rooms", roomHandler.ListRooms)
	app.Get("/rooms/:id", roomHandler.GetRoom)
	app.Post("/rooms", middleware.Authenticated, requireHost, roomHandler.AddRoom)
	app.Put("/rooms/:id", middleware.Authenticated, requireHost, roomHandler.UpdateRoom)
	app.Patch("/rooms/status/:id", middleware.Authenticated, roomHandler.SetRoomStatus)
	app.Delete("/rooms/:id", middleware.Authenticated, requireHost, roomHandler.DeleteRoom)
	app.Get("/my-listings/:email", middleware.Authenticated, requireHost, roomHandler.MyListings)
	app.Post("/rooms/image", middleware.Authenticated, requireHost, roomHandler.UploadRoomImage)

	// Bookings
	app.Post("/bookings", middleware.Authenticated, bookingHandler.CreateBooking)
	app.Delete("/bookings/:id", middleware.Authenticated, bookingHandler.DeleteBooking)
	app.Get("/my-bookings/:email", middleware.Authenticated, bookingHandler.MyBookings)
	app.Get("/manage-bookings/:email", middleware.Authenticated, requireHost, bookingHandler.ManageBookings)

	// Users
	app.Put("/users", userHandler.SaveUser)
	app.Get("/users", middleware.Authenticated, requireAdmin, userHandler.ListUsers)
	app.Get("/users/:email", userHandler.GetUser)
	app.Patch("/users/update/:email", middleware.Authenticated, requireAdmin, userHandler.UpdateUserRole)

	// Stats
	app.Get("/admin-stat", middleware.Authenticated, requireAdmin, statsHandler.AdminStats)
	app.Get("/host-stat", middleware.Authenticated, requireHost, statsHandler.HostStats)

	// Payments
	app.Post("/create-payment-intent", middleware.Authenticated, CreatePaymentIntentHandler)
}

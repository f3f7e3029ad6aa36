package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/middleware"
	"github.com/stayvista/stayvista-server/internal/models"
	"github.com/stayvista/stayvista-server/internal/services"
)

type BookingHandler struct {
	bookings *services.BookingService
}

func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var booking models.Booking
	if err := c.BodyParser(&booking); err != nil {
		return httperr.Respond(c, httperr.ErrInvalidInput)
	}
	booking.Guest.Email = middleware.CallerEmail(c)

	id, err := h.bookings.CreateBooking(c.Context(), booking)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"insertedId": id.Hex()})
}

func (h *BookingHandler) DeleteBooking(c *fiber.Ctx) error {
	err := h.bookings.DeleteBooking(c.Context(), c.Params("id"), middleware.CallerEmail(c))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func (h *BookingHandler) MyBookings(c *fiber.Ctx) error {
	bookings, err := h.bookings.ListBookingsByGuest(c.Context(), c.Params("email"))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(bookings)
}

func (h *BookingHandler) ManageBookings(c *fiber.Ctx) error {
	bookings, err := h.bookings.ListBookingsByHost(c.Context(), c.Params("email"))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(bookings)
}

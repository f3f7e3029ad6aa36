package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/middleware"
	"github.com/stayvista/stayvista-server/internal/models"
	"github.com/stayvista/stayvista-server/internal/services"
	"github.com/stayvista/stayvista-server/internal/storage"
)

type RoomHandler struct {
	rooms *services.RoomService
}

func NewRoomHandler(rooms *services.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// ListRooms returns all rooms, optionally filtered by category.
func (h *RoomHandler) ListRooms(c *fiber.Ctx) error {
	rooms, err := h.rooms.ListRooms(c.Context(), c.Query("category"))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(rooms)
}

func (h *RoomHandler) GetRoom(c *fiber.Ctx) error {
	room, err := h.rooms.GetRoom(c.Context(), c.Params("id"))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(room)
}

func (h *RoomHandler) AddRoom(c *fiber.Ctx) error {
	var room models.Room
	if err := c.BodyParser(&room); err != nil {
		return httperr.Respond(c, httperr.ErrInvalidInput)
	}
	// The listing belongs to whoever holds the session, not whatever the
	// body claims.
	room.Host.Email = middleware.CallerEmail(c)

	id, err := h.rooms.AddRoom(c.Context(), room)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"insertedId": id.Hex()})
}

func (h *RoomHandler) UpdateRoom(c *fiber.Ctx) error {
	var room models.Room
	if err := c.BodyParser(&room); err != nil {
		return httperr.Respond(c, httperr.ErrInvalidInput)
	}

	err := h.rooms.UpdateRoom(c.Context(), c.Params("id"), room, middleware.CallerEmail(c))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"modified": true})
}

// SetRoomStatus flips the booked flag on a room.
func (h *RoomHandler) SetRoomStatus(c *fiber.Ctx) error {
	var request struct {
		Status bool `json:"status"`
	}
	if err := c.BodyParser(&request); err != nil {
		return httperr.Respond(c, httperr.ErrInvalidInput)
	}

	err := h.rooms.SetAvailability(c.Context(), c.Params("id"), request.Status, middleware.CallerEmail(c))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"modified": true})
}

func (h *RoomHandler) DeleteRoom(c *fiber.Ctx) error {
	err := h.rooms.DeleteRoom(c.Context(), c.Params("id"), middleware.CallerEmail(c))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func (h *RoomHandler) MyListings(c *fiber.Ctx) error {
	rooms, err := h.rooms.ListRoomsByHost(c.Context(), c.Params("email"))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(rooms)
}

// UploadRoomImage stores a gallery image and returns its URL.
func (h *RoomHandler) UploadRoomImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return httperr.Respond(c, httperr.ErrInvalidInput)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return httperr.Respond(c, httperr.ErrInvalidInput)
	}
	defer file.Close()

	objectName := fmt.Sprintf("%s_%s", primitive.NewObjectID().Hex(), fileHeader.Filename)
	url, err := storage.UploadRoomImage(c.Context(), objectName, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return httperr.Respond(c, httperr.ErrUpstream)
	}
	return c.JSON(fiber.Map{"url": url})
}

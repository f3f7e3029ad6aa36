package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/models"
	"github.com/stayvista/stayvista-server/internal/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// SaveUser handles the upsert-on-first-sight write done on every login.
func (h *UserHandler) SaveUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return httperr.Respond(c, httperr.ErrInvalidInput)
	}

	saved, err := h.users.SaveUser(c.Context(), user)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(saved)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.users.GetUser(c.Context(), c.Params("email"))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.Context())
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(users)
}

// UpdateUserRole applies an admin role change to the addressed user.
func (h *UserHandler) UpdateUserRole(c *fiber.Ctx) error {
	var request struct {
		Role   string `json:"role"`
		Status string `json:"status"`
	}
	if err := c.BodyParser(&request); err != nil {
		return httperr.Respond(c, httperr.ErrInvalidInput)
	}

	if err := h.users.UpdateUserRole(c.Context(), c.Params("email"), request.Role, request.Status); err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"modified": true})
}

package handlers

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/middleware"
	"github.com/stayvista/stayvista-server/internal/services"
)

func isProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

// CreateTokenHandler exchanges a client identity claim for a session cookie.
func CreateTokenHandler(c *fiber.Ctx) error {
	var request struct {
		Email string `json:"email"`
	}

	if err := c.BodyParser(&request); err != nil || request.Email == "" {
		return httperr.Respond(c, httperr.ErrInvalidInput)
	}

	token, err := services.IssueToken(request.Email)
	if err != nil {
		return httperr.Respond(c, err)
	}

	sameSite := "Strict"
	if isProduction() {
		sameSite = "None"
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   isProduction(),
		SameSite: sameSite,
	})

	return c.JSON(fiber.Map{"success": true})
}

// LogoutHandler clears the session cookie. The token itself stays valid
// until it expires; there is no server-side revocation list.
func LogoutHandler(c *fiber.Ctx) error {
	sameSite := "Strict"
	if isProduction() {
		sameSite = "None"
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   isProduction(),
		SameSite: sameSite,
	})

	return c.JSON(fiber.Map{"success": true})
}

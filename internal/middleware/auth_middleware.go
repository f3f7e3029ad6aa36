package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/services"
)

// TokenCookie is the session cookie the credential service issues into.
const TokenCookie = "token"

// Authenticated verifies the session cookie and stashes the resolved email
// for downstream guards and handlers. It never touches the user store.
func Authenticated(c *fiber.Ctx) error {
	email, err := services.VerifyToken(c.Cookies(TokenCookie))
	if err != nil {
		return httperr.Respond(c, httperr.ErrUnauthenticated)
	}

	c.Locals("email", email)
	return c.Next()
}

// CallerEmail returns the email resolved by Authenticated for this request.
func CallerEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}

package httperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error kinds surfaced by services and stores. Handlers never invent their
// own status codes; they wrap one of these and let Respond do the mapping.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUpstream        = errors.New("upstream failure")
)

// Status maps an error kind to an HTTP status code. Unauthenticated and
// Forbidden both map to 401 so a caller cannot tell which check failed.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrForbidden):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUpstream):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond writes the JSON error body for err. Auth failures always carry the
// same generic message regardless of whether the token or the role was bad.
func Respond(c *fiber.Ctx, err error) error {
	status := Status(err)
	msg := err.Error()
	if status == fiber.StatusUnauthorized {
		msg = "unauthorized access"
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

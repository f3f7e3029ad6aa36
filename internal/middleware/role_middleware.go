package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/store"
)

// RequireRole gates a route on the stored role of the authenticated caller.
// It must be chained after Authenticated; without a resolved email it fails
// closed. The response is the same generic 401 whether the record is
// missing or the role is wrong.
func RequireRole(users store.UserStore, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := CallerEmail(c)
		if email == "" {
			return httperr.Respond(c, httperr.ErrUnauthenticated)
		}

		user, err := users.GetByEmail(c.Context(), email)
		if err != nil {
			// A store outage still fails closed, but leave a trace so it
			// isn't mistaken for an ordinary denial.
			if !errors.Is(err, httperr.ErrNotFound) {
				log.Printf("role lookup failed for %s: %v", email, err)
			}
			return httperr.Respond(c, httperr.ErrForbidden)
		}
		if user.Role != role {
			return httperr.Respond(c, httperr.ErrForbidden)
		}

		return c.Next()
	}
}

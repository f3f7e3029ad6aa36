package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/services"
)

// CreatePaymentIntentHandler validates the amount and delegates to Stripe.
func CreatePaymentIntentHandler(c *fiber.Ctx) error {
	var request struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&request); err != nil {
		return httperr.Respond(c, httperr.ErrInvalidInput)
	}

	clientSecret, err := services.CreatePaymentIntent(request.Price)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stayvista/stayvista-server/internal/httperr"
	"github.com/stayvista/stayvista-server/internal/middleware"
	"github.com/stayvista/stayvista-server/internal/services"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) AdminStats(c *fiber.Ctx) error {
	stats, err := h.stats.PlatformStats(c.Context())
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(stats)
}

// HostStats scopes the rollup to the caller's own email from the session
// claim; there is no host parameter to spoof.
func (h *StatsHandler) HostStats(c *fiber.Ctx) error {
	stats, err := h.stats.StatsForHost(c.Context(), middleware.CallerEmail(c))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(stats)
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/group-allocator/internal/api/dto"
	"github.com/spec-kit/group-allocator/internal/service"
	apperrors "github.com/spec-kit/group-allocator/pkg/util/errorutil"
)

// PlayersHandler exposes roster endpoints.
type PlayersHandler struct {
	roster *service.RosterService
}

// NewPlayersHandler constructs handler.
func NewPlayersHandler(roster *service.RosterService) *PlayersHandler {
	return &PlayersHandler{roster: roster}
}

// List handles GET /players.
func (h *PlayersHandler) List(c *fiber.Ctx) error {
	players, counts, err := h.roster.ListPlayers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.PlayerListResponse{Players: players, Counts: counts},
	})
}

// Add handles POST /players.
func (h *PlayersHandler) Add(c *fiber.Ctx) error {
	var req dto.AddPlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	player, err := h.roster.AddPlayer(actorContext(c), req.Name, req.Role)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": player})
}

// Remove handles DELETE /players/:id.
func (h *PlayersHandler) Remove(c *fiber.Ctx) error {
	if err := h.roster.RemovePlayer(actorContext(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

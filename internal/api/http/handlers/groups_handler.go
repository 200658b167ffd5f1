package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/group-allocator/internal/service"
)

// GroupsHandler exposes allocation endpoints.
type GroupsHandler struct {
	roster *service.RosterService
}

// NewGroupsHandler constructs handler.
func NewGroupsHandler(roster *service.RosterService) *GroupsHandler {
	return &GroupsHandler{roster: roster}
}

// Get handles GET /groups.
func (h *GroupsHandler) Get(c *fiber.Ctx) error {
	alloc, err := h.roster.CurrentAllocation(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": alloc})
}

// Shuffle handles POST /groups/shuffle.
func (h *GroupsHandler) Shuffle(c *fiber.Ctx) error {
	alloc, err := h.roster.ShuffleGroups(actorContext(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": alloc})
}

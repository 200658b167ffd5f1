package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/group-allocator/internal/auth"
	"github.com/spec-kit/group-allocator/internal/service"
)

// actorContext tags the request context with the organizer token ID, if any.
func actorContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if principal, ok := auth.PrincipalFromContext(c); ok {
		return service.WithActor(ctx, string(principal.Subject)+":"+principal.TokenID)
	}
	return ctx
}

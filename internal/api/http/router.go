package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/group-allocator/internal/api/http/handlers"
	"github.com/spec-kit/group-allocator/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Players        *handlers.PlayersHandler
	Groups         *handlers.GroupsHandler
	Metrics        *handlers.MetricsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/debug/metrics", cfg.Metrics.Get)

	app.Post("/auth/organizer/login", cfg.Auth.Login)

	organizer := cfg.AuthMiddleware.RequireOrganizer

	players := app.Group("/players")
	players.Get("", cfg.Players.List)
	players.Post("", organizer, cfg.Players.Add)
	players.Delete("/:id", organizer, cfg.Players.Remove)

	groups := app.Group("/groups")
	groups.Get("", cfg.Groups.Get)
	groups.Post("/shuffle", organizer, cfg.Groups.Shuffle)
}

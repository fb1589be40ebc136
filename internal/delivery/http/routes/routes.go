// Package routes binds handlers to the HTTP surface. Stateless routes
// (health, tools, ai) are always registered; persistence-backed routes
// are skipped when the server runs without a database.
package routes

import (
	"skillsync-ai/internal/delivery/http/handler"
	"skillsync-ai/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Health *handler.HealthHandler
	Tools  *handler.ToolsHandler
	AI     *handler.AIHandler

	// Nil when the server is running without Postgres.
	Users *handler.UserHandler
	Auth  *handler.AuthHandler
	Jobs  *handler.JobsHandler

	RequireAuth fiber.Handler
	WS          *ws.Handler
}

func Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	api := app.Group("/api")

	if d.Health != nil {
		d.Health.RegisterRoutes(api)
	}
	if d.Tools != nil {
		d.Tools.RegisterRoutes(api)
	}
	if d.AI != nil {
		d.AI.RegisterRoutes(api)
	}
	if d.Users != nil {
		d.Users.RegisterRoutes(api)
	}
	if d.Auth != nil {
		d.Auth.RegisterRoutes(api, d.RequireAuth)
	}
	if d.Jobs != nil {
		d.Jobs.RegisterRoutes(api, d.RequireAuth)
	}

	if d.WS != nil {
		app.Get("/ws/updates", d.WS.HandleUpdates)
	}
}

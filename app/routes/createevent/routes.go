package createevent

import (
	"github.com/Bamboleyla/mestio-web/app/api"

	"github.com/gofiber/fiber/v2"
)

// SetupCreateEventRoutes sets up the create event page and API routes
func SetupCreateEventRoutes(app *fiber.App, client *api.Client) {
	// Page routes
	app.Get("/create-event", func(c *fiber.Ctx) error { return showCreateEventPage(c, client) })
	app.Post("/create-event", func(c *fiber.Ctx) error { return handleCreateEventForm(c, client) })

	// API routes
	app.Get("/api/categories", func(c *fiber.Ctx) error { return GetCategoriesAPI(c, client) })
	app.Get("/api/locations", func(c *fiber.Ctx) error { return GetLocationsAPI(c, client) })
	app.Post("/api/events", func(c *fiber.Ctx) error { return CreateEventAPI(c, client) })
}

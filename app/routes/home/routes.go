package home

import (
	"github.com/gofiber/fiber/v2"
)

// SetupHomeRoutes sets up the landing page route
func SetupHomeRoutes(app *fiber.App) {
	app.Get("/", renderHomePage)
}

func renderHomePage(c *fiber.Ctx) error {
	return c.Render("home/index", fiber.Map{
		"Title":       "Mestio Web",
		"CurrentPage": "home",
	})
}

package createlocation

import (
	"github.com/gofiber/fiber/v2"
)

// SetupCreateLocationRoutes sets up the create location page route.
// The page itself is a placeholder: the locations API has no create
// endpoint yet.
func SetupCreateLocationRoutes(app *fiber.App) {
	app.Get("/create-location", renderCreateLocationPage)
}

func renderCreateLocationPage(c *fiber.Ctx) error {
	return c.Render("locations/create", fiber.Map{
		"Title":       "Create Location - Mestio Web",
		"CurrentPage": "create-location",
	})
}

package uploadimage

import (
	"github.com/Bamboleyla/mestio-web/app/api"

	"github.com/gofiber/fiber/v2"
)

// SetupUploadImageRoutes sets up the image upload page routes
func SetupUploadImageRoutes(app *fiber.App, client *api.Client) {
	app.Get("/upload-image", showUploadImagePage)
	app.Post("/upload-image", func(c *fiber.Ctx) error { return handleUploadImageForm(c, client) })
}

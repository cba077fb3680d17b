package main

import (
	"log"
	"strings"

	"github.com/Bamboleyla/mestio-web/app/api"
	"github.com/Bamboleyla/mestio-web/app/config"
	"github.com/Bamboleyla/mestio-web/app/routes/createevent"
	"github.com/Bamboleyla/mestio-web/app/routes/createlocation"
	"github.com/Bamboleyla/mestio-web/app/routes/home"
	"github.com/Bamboleyla/mestio-web/app/routes/uploadimage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// API requests get JSON errors
	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	if code == fiber.StatusNotFound {
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - Mestio Web",
			"CurrentPage": "",
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - Mestio Web",
		"CurrentPage":  "",
		"ErrorCode":    code,
		"ErrorTitle":   "An Error Occurred",
		"ErrorMessage": err.Error(),
	})
}

func main() {
	// Initialize configuration
	config.Init()

	// Client for the remote events platform API
	client := api.New(config.Get().APIBaseURL)

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.Reload(true) // Enable template reloading for development

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: customErrorHandler,
		// Above the 5 MiB image limit so oversized uploads reach the
		// form validation instead of a bare 413
		BodyLimit: 10 * 1024 * 1024,
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${method} ${path}\n",
	}))
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Setup home routes
	home.SetupHomeRoutes(app)

	// Setup create event routes
	createevent.SetupCreateEventRoutes(app, client)

	// Setup upload image routes
	uploadimage.SetupUploadImageRoutes(app, client)

	// Setup create location routes
	createlocation.SetupCreateLocationRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	log.Printf("Server starting on %s", config.Get().ListenAddr)
	log.Fatal(app.Listen(config.Get().ListenAddr))
}

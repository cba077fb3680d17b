package createevent

import (
	"github.com/Bamboleyla/mestio-web/app/api"
	"github.com/Bamboleyla/mestio-web/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetCategoriesAPI returns the event category list from the events platform
func GetCategoriesAPI(c *fiber.Ctx, client *api.Client) error {
	categories, err := client.GetCategories(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"categories": categories,
	})
}

// GetLocationsAPI returns the location name list from the events platform
func GetLocationsAPI(c *fiber.Ctx, client *api.Client) error {
	locations, err := client.GetLocations(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"locations": locations,
	})
}

// CreateEventAPI forwards an already-flattened event payload to the
// events platform
func CreateEventAPI(c *fiber.Ctx, client *api.Client) error {
	event := new(models.EventRequest)
	if err := c.BodyParser(event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	eventID, err := client.CreateEvent(c.UserContext(), *event)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"event_id": eventID,
	})
}

package uploadimage

import (
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/Bamboleyla/mestio-web/app/api"

	"github.com/gofiber/fiber/v2"
)

// 5 MiB, matching the platform's upload limit
const maxFileSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func showUploadImagePage(c *fiber.Ctx) error {
	// An eventId query parameter pre-fills and locks the event ID input
	eventID := c.Query("eventId")
	return renderUploadImagePage(c, eventID, false, "", "")
}

func handleUploadImageForm(c *fiber.Ctx, client *api.Client) error {
	rawID := strings.TrimSpace(c.FormValue("event_id"))
	isPrimary := c.FormValue("is_primary") == "on"

	eventID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || eventID <= 0 {
		return renderUploadImagePage(c, rawID, isPrimary, "Please enter a valid event ID (positive integer)", "")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return renderUploadImagePage(c, rawID, isPrimary, "Please select an image file", "")
	}
	if msg := validateFile(fileHeader); msg != "" {
		return renderUploadImagePage(c, rawID, isPrimary, msg, "")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return renderUploadImagePage(c, rawID, isPrimary, "Could not read the selected file", "")
	}
	defer file.Close()

	uploaded, err := client.UploadEventImage(c.UserContext(), eventID, isPrimary, fileHeader.Filename, file)
	if err != nil {
		return renderUploadImagePage(c, rawID, isPrimary, err.Error(), "")
	}

	// Fresh form after success
	success := fmt.Sprintf("Image uploaded successfully! ID: %d", uploaded.ID)
	return renderUploadImagePage(c, "", false, "", success)
}

// validateFile checks the browser-reported type and the size before any
// network call is made.
func validateFile(fileHeader *multipart.FileHeader) string {
	contentType := strings.ToLower(fileHeader.Header.Get("Content-Type"))
	if !allowedImageTypes[contentType] {
		return "Only JPEG, PNG, GIF, and WebP images are allowed"
	}
	if fileHeader.Size > maxFileSize {
		return "File size must be less than 5MB"
	}
	return ""
}

func renderUploadImagePage(c *fiber.Ctx, eventID string, isPrimary bool, errorMsg, successMsg string) error {
	return c.Render("images/upload", fiber.Map{
		"Title":          "Image Upload System - Mestio Web",
		"CurrentPage":    "upload-image",
		"EventID":        eventID,
		"Locked":         c.Query("eventId") != "",
		"IsPrimary":      isPrimary,
		"ErrorMessage":   errorMsg,
		"SuccessMessage": successMsg,
	})
}

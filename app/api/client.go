package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Bamboleyla/mestio-web/app/models"
)

// Error is a failure reported by the events API. Detail carries the
// user-facing message from the response body.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	return e.Detail
}

// Client calls the remote events API. It performs no retries and sets no
// timeout: a submission either completes or fails with the underlying
// network error.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// CreateEvent creates a new event and returns its id.
func (c *Client) CreateEvent(ctx context.Context, event models.EventRequest) (int64, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return 0, fmt.Errorf("encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/events", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var eventID int64
	if err := c.do(req, &eventID); err != nil {
		return 0, err
	}
	return eventID, nil
}

// GetCategories fetches the event category list.
func (c *Client) GetCategories(ctx context.Context) ([]models.EventCategory, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/events/categories", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var categories []models.EventCategory
	if err := c.do(req, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetLocations fetches the location name list.
func (c *Client) GetLocations(ctx context.Context) ([]models.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/locations/names", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var locations []models.Location
	if err := c.do(req, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// UploadEventImage uploads one image for an event as the multipart field
// "file". isPrimary marks it as the event's primary image.
func (c *Client) UploadEventImage(ctx context.Context, eventID int64, isPrimary bool, filename string, r io.Reader) (*models.UploadImageResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/events/%d/images/%t", c.baseURL, eventID, isPrimary)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var uploaded models.UploadImageResponse
	if err := c.do(req, &uploaded); err != nil {
		return nil, err
	}
	return &uploaded, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("events api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError extracts the {detail} message from an error response, falling
// back to a generic message when the body has no usable detail.
func apiError(resp *http.Response) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Detail != "" {
		return &Error{StatusCode: resp.StatusCode, Detail: payload.Detail}
	}
	return &Error{
		StatusCode: resp.StatusCode,
		Detail:     fmt.Sprintf("Request failed with status %d", resp.StatusCode),
	}
}

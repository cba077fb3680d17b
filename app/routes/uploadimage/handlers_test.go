package uploadimage

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/Bamboleyla/mestio-web/app/api"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlatform stands in for the remote events API.
type fakePlatform struct {
	server       *httptest.Server
	uploadCalls  int
	lastPath     string
	lastFilename string
	lastSize     int64
	status       int
	body         string
}

func newFakePlatform(t *testing.T) *fakePlatform {
	t.Helper()

	p := &fakePlatform{
		status: http.StatusOK,
		body:   `{"id":9,"url":"/images/9.png","file_name":"photo.png","file_size":2097152,"width":800,"height":600,"event_id":42}`,
	}

	p.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.uploadCalls++
		p.lastPath = r.URL.Path

		file, header, err := r.FormFile("file")
		if err == nil {
			p.lastFilename = header.Filename
			p.lastSize = header.Size
			file.Close()
		}

		w.WriteHeader(p.status)
		w.Write([]byte(p.body))
	}))
	t.Cleanup(p.server.Close)
	return p
}

func newTestApp(platform *fakePlatform) *fiber.App {
	engine := html.New("../../templates", ".html")
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
		BodyLimit:   10 * 1024 * 1024,
	})
	SetupUploadImageRoutes(app, api.New(platform.server.URL))
	return app
}

// uploadForm builds a multipart body carrying the event id, the primary
// flag and one file part with an explicit MIME type, the way a browser
// submits the form.
func uploadForm(t *testing.T, eventID, isPrimary, filename, mimeType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("event_id", eventID))
	if isPrimary != "" {
		require.NoError(t, writer.WriteField("is_primary", isPrimary))
	}
	if filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
		header.Set("Content-Type", mimeType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func postUpload(t *testing.T, app *fiber.App, body *bytes.Buffer, contentType string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(page)
}

func TestUploadImagePage_Get(t *testing.T) {
	platform := newFakePlatform(t)
	app := newTestApp(platform)

	req := httptest.NewRequest(http.MethodGet, "/upload-image", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Upload Event Image")
	assert.NotContains(t, string(body), "readonly")
}

func TestUploadImagePage_EventIDQueryPrefills(t *testing.T) {
	platform := newFakePlatform(t)
	app := newTestApp(platform)

	req := httptest.NewRequest(http.MethodGet, "/upload-image?eventId=42", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `value="42"`)
	assert.Contains(t, string(body), "readonly")
}

func TestUploadImageForm_Success(t *testing.T) {
	platform := newFakePlatform(t)
	app := newTestApp(platform)

	content := bytes.Repeat([]byte{0x89}, 2*1024*1024) // 2 MB
	body, contentType := uploadForm(t, "42", "on", "photo.png", "image/png", content)

	page := postUpload(t, app, body, contentType)

	require.Equal(t, 1, platform.uploadCalls)
	assert.Equal(t, "/api/v1/events/42/images/true", platform.lastPath)
	assert.Equal(t, "photo.png", platform.lastFilename)
	assert.Equal(t, int64(2*1024*1024), platform.lastSize)

	assert.Contains(t, page, "Image uploaded successfully! ID: 9")
	// The form clears after success
	assert.Contains(t, page, `value=""`)
	assert.NotContains(t, page, "checked")
}

func TestUploadImageForm_NotPrimary(t *testing.T) {
	platform := newFakePlatform(t)
	app := newTestApp(platform)

	body, contentType := uploadForm(t, "7", "", "photo.jpg", "image/jpeg", []byte("x"))
	postUpload(t, app, body, contentType)

	require.Equal(t, 1, platform.uploadCalls)
	assert.Equal(t, "/api/v1/events/7/images/false", platform.lastPath)
}

func TestUploadImageForm_InvalidEventID(t *testing.T) {
	platform := newFakePlatform(t)
	app := newTestApp(platform)

	body, contentType := uploadForm(t, "abc", "", "photo.png", "image/png", []byte("x"))
	page := postUpload(t, app, body, contentType)

	assert.Equal(t, 0, platform.uploadCalls)
	assert.Contains(t, page, "Please enter a valid event ID (positive integer)")
}

func TestUploadImageForm_MissingFile(t *testing.T) {
	platform := newFakePlatform(t)
	app := newTestApp(platform)

	body, contentType := uploadForm(t, "42", "", "", "", nil)
	page := postUpload(t, app, body, contentType)

	assert.Equal(t, 0, platform.uploadCalls)
	assert.Contains(t, page, "Please select an image file")
}

func TestUploadImageForm_RejectsDisallowedType(t *testing.T) {
	platform := newFakePlatform(t)
	app := newTestApp(platform)

	body, contentType := uploadForm(t, "42", "", "notes.txt", "text/plain", []byte("hello"))
	page := postUpload(t, app, body, contentType)

	assert.Equal(t, 0, platform.uploadCalls)
	assert.Contains(t, page, "Only JPEG, PNG, GIF, and WebP images are allowed")
}

func TestUploadImageForm_RejectsOversizedFile(t *testing.T) {
	platform := newFakePlatform(t)
	app := newTestApp(platform)

	content := bytes.Repeat([]byte{0x89}, 5*1024*1024+1)
	body, contentType := uploadForm(t, "42", "", "big.png", "image/png", content)
	page := postUpload(t, app, body, contentType)

	assert.Equal(t, 0, platform.uploadCalls)
	assert.Contains(t, page, "File size must be less than 5MB")
}

func TestUploadImageForm_APIErrorKeepsValues(t *testing.T) {
	platform := newFakePlatform(t)
	platform.status = http.StatusNotFound
	platform.body = `{"detail":"Event not found"}`
	app := newTestApp(platform)

	body, contentType := uploadForm(t, "42", "on", "photo.png", "image/png", []byte("x"))
	page := postUpload(t, app, body, contentType)

	require.Equal(t, 1, platform.uploadCalls)
	assert.Contains(t, page, "Event not found")
	assert.Contains(t, page, `value="42"`)
	assert.Contains(t, page, "checked")
}

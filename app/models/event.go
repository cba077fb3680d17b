package models

// EventDraft holds the non-schedule fields of an event being created.
// A zero LocationID or CategoryID means nothing is selected yet.
type EventDraft struct {
	Title       string
	LocationID  int64
	CategoryID  int64
	Description string
}

// EventRequest is the JSON body of POST /api/v1/events. StartDate and
// FinishDate are date-times formatted as YYYY-MM-DDThh:mm:00.
type EventRequest struct {
	Title       string  `json:"title"`
	StartDate   string  `json:"start_date"`
	FinishDate  string  `json:"finish_date"`
	LocationID  int64   `json:"location_id"`
	CategoryID  int64   `json:"category_id"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// EventCategory is one entry of GET /api/v1/events/categories.
type EventCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Location is one entry of GET /api/v1/locations/names.
type Location struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UploadImageResponse is returned by the image upload endpoint.
type UploadImageResponse struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	EventID  int64  `json:"event_id"`
}

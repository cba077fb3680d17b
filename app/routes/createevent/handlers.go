package createevent

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Bamboleyla/mestio-web/app/api"
	"github.com/Bamboleyla/mestio-web/app/models"
	"github.com/Bamboleyla/mestio-web/app/schedule"

	"github.com/gofiber/fiber/v2"
)

const actionSubmit = "submit"

func showCreateEventPage(c *fiber.Ctx, client *api.Client) error {
	return renderCreateEventPage(c, client, models.EventDraft{}, schedule.New(), "", "")
}

// handleCreateEventForm services every POST of the create event form. The
// schedule editor buttons submit the whole form with an action value like
// "add_day:1" or "remove_slot:0:2"; those round-trips apply one schedule
// operation and re-render with everything the user typed preserved. Only
// action=submit reaches the events API.
func handleCreateEventForm(c *fiber.Ctx, client *api.Client) error {
	draft := decodeDraft(c)
	sched := decodeSchedule(c)

	action := c.FormValue("action")
	if action != actionSubmit {
		sched = applyScheduleAction(sched, action)
		return renderCreateEventPage(c, client, draft, sched, "", "")
	}

	if msg := validateDraft(draft); msg != "" {
		return renderCreateEventPage(c, client, draft, sched, msg, "")
	}

	payload, err := schedule.Flatten(draft, sched)
	if err != nil {
		return renderCreateEventPage(c, client, draft, sched, err.Error(), "")
	}

	eventID, err := client.CreateEvent(c.UserContext(), payload)
	if err != nil {
		return renderCreateEventPage(c, client, draft, sched, err.Error(), "")
	}

	// Fresh form after success
	success := fmt.Sprintf("Event created successfully with ID: %d", eventID)
	return renderCreateEventPage(c, client, models.EventDraft{}, schedule.New(), "", success)
}

func validateDraft(draft models.EventDraft) string {
	if strings.TrimSpace(draft.Title) == "" {
		return "Please enter a title for the event"
	}
	if draft.LocationID <= 0 {
		return "Please select a location"
	}
	if draft.CategoryID <= 0 {
		return "Please select a category"
	}
	return ""
}

func renderCreateEventPage(c *fiber.Ctx, client *api.Client, draft models.EventDraft, sched schedule.Schedule, errorMsg, successMsg string) error {
	ctx := c.UserContext()

	categories, err := client.GetCategories(ctx)
	if err != nil && errorMsg == "" {
		errorMsg = err.Error()
	}
	locations, err := client.GetLocations(ctx)
	if err != nil && errorMsg == "" {
		errorMsg = err.Error()
	}

	return c.Render("events/create", fiber.Map{
		"Title":          "Create New Event - Mestio Web",
		"CurrentPage":    "create-event",
		"Draft":          draft,
		"Schedule":       scheduleView(sched),
		"Days":           len(sched),
		"Categories":     categories,
		"Locations":      locations,
		"ErrorMessage":   errorMsg,
		"SuccessMessage": successMsg,
	})
}

// decodeDraft reads the non-schedule form fields.
func decodeDraft(c *fiber.Ctx) models.EventDraft {
	locationID, _ := strconv.ParseInt(c.FormValue("location_id"), 10, 64)
	categoryID, _ := strconv.ParseInt(c.FormValue("category_id"), 10, 64)

	return models.EventDraft{
		Title:       c.FormValue("title"),
		LocationID:  locationID,
		CategoryID:  categoryID,
		Description: c.FormValue("description"),
	}
}

const dateLayout = "2006-01-02"

// Caps on the posted counts so a crafted form cannot force huge
// allocations; the editor never produces anything near these.
const (
	maxDays        = 100
	maxSlotsPerDay = 50
)

// decodeSchedule rebuilds the schedule from the posted form. The form
// carries a day count in "days", a slot count per day in "slots_<i>" and
// the fields themselves in "date_<i>", "time_<i>_<j>" and "price_<i>_<j>".
// The counts come from the client, so both are clamped before use.
func decodeSchedule(c *fiber.Ctx) schedule.Schedule {
	days, _ := strconv.Atoi(c.FormValue("days"))
	if days < 1 {
		return schedule.New()
	}
	if days > maxDays {
		days = maxDays
	}

	sched := make(schedule.Schedule, 0, days)
	for i := 0; i < days; i++ {
		slots, _ := strconv.Atoi(c.FormValue(fmt.Sprintf("slots_%d", i)))
		if slots < 1 {
			slots = 1
		}
		if slots > maxSlotsPerDay {
			slots = maxSlotsPerDay
		}

		day := schedule.DayEntry{}
		if raw := c.FormValue(fmt.Sprintf("date_%d", i)); raw != "" {
			if date, err := time.Parse(dateLayout, raw); err == nil {
				day.Date = &date
			}
		}
		for j := 0; j < slots; j++ {
			day.Slots = append(day.Slots, schedule.SlotEntry{
				Time:  c.FormValue(fmt.Sprintf("time_%d_%d", i, j)),
				Price: schedule.ParsePrice(c.FormValue(fmt.Sprintf("price_%d_%d", i, j))),
			})
		}
		sched = append(sched, day)
	}
	return sched
}

// applyScheduleAction maps an editor button value onto the matching
// schedule operation. Unknown or malformed actions leave the schedule
// unchanged.
func applyScheduleAction(sched schedule.Schedule, action string) schedule.Schedule {
	parts := strings.Split(action, ":")
	switch parts[0] {
	case "add_day":
		if i, ok := actionArg(parts, 1); ok {
			return sched.AddDay(i)
		}
	case "remove_day":
		if i, ok := actionArg(parts, 1); ok {
			return sched.RemoveDay(i)
		}
	case "add_slot":
		if i, ok := actionArg(parts, 1); ok {
			return sched.AddSlot(i)
		}
	case "remove_slot":
		if i, ok := actionArg(parts, 1); ok {
			if j, ok := actionArg(parts, 2); ok {
				return sched.RemoveSlot(i, j)
			}
		}
	}
	return sched
}

func actionArg(parts []string, i int) (int, bool) {
	if i >= len(parts) {
		return 0, false
	}
	v, err := strconv.Atoi(parts[i])
	return v, err == nil
}

type dayView struct {
	Index     int
	Date      string
	Slots     []slotView
	Removable bool
}

type slotView struct {
	Index     int
	Time      string
	Price     string
	Removable bool
}

// scheduleView shapes the schedule for the template: formatted dates,
// prices shown blank while zero, and the remove buttons only where the
// operations allow removal.
func scheduleView(sched schedule.Schedule) []dayView {
	views := make([]dayView, len(sched))
	for i, day := range sched {
		view := dayView{Index: i, Removable: i > 0}
		if day.Date != nil {
			view.Date = day.Date.Format(dateLayout)
		}
		for j, slot := range day.Slots {
			price := ""
			if slot.Price != 0 {
				price = strconv.FormatFloat(slot.Price, 'f', -1, 64)
			}
			view.Slots = append(view.Slots, slotView{
				Index:     j,
				Time:      slot.Time,
				Price:     price,
				Removable: len(day.Slots) > 1,
			})
		}
		views[i] = view
	}
	return views
}

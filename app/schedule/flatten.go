package schedule

import (
	"errors"

	"github.com/Bamboleyla/mestio-web/app/models"
)

// ErrIncomplete is returned when the schedule cannot be submitted yet.
// The text is shown to the user as-is.
var ErrIncomplete = errors.New("Please enter at least one date and time for the event")

const dateLayout = "2006-01-02"

// Flatten reduces the schedule to the single start/finish/price triple the
// events API accepts and merges it with the draft fields.
//
// Only the first day and its first slot feed the payload; any further days
// or slots the user entered are dropped here. The UI deliberately still
// collects them: whether multi-date events should become several API calls
// is an open product decision, so the current single-occurrence behaviour
// is kept.
func Flatten(draft models.EventDraft, s Schedule) (models.EventRequest, error) {
	if err := s.Validate(); err != nil {
		return models.EventRequest{}, err
	}

	date := s[0].Date.Format(dateLayout)

	startTime := "00:00"
	finishTime := "23:59"
	price := 0.0
	if len(s[0].Slots) > 0 {
		if t := s[0].Slots[0].Time; t != "" {
			startTime = t
			finishTime = t
		}
		price = s[0].Slots[0].Price
	}

	return models.EventRequest{
		Title:       draft.Title,
		StartDate:   date + "T" + startTime + ":00",
		FinishDate:  date + "T" + finishTime + ":00",
		LocationID:  draft.LocationID,
		CategoryID:  draft.CategoryID,
		Price:       price,
		Description: draft.Description,
	}, nil
}

// Validate reports whether the schedule holds enough data to submit: the
// first day must have a date and at least one slot anywhere must have a
// time entered.
func (s Schedule) Validate() error {
	if len(s) == 0 || s[0].Date == nil {
		return ErrIncomplete
	}
	for _, day := range s {
		for _, slot := range day.Slots {
			if slot.Time != "" {
				return nil
			}
		}
	}
	return ErrIncomplete
}

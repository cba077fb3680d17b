package schedule

import (
	"testing"

	"github.com/Bamboleyla/mestio-web/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	draft := models.EventDraft{
		Title:       "Concert",
		LocationID:  2,
		CategoryID:  1,
		Description: "Live music",
	}
	s := Schedule{
		{Date: date(t, "2024-06-01"), Slots: []SlotEntry{{Time: "18:00", Price: 100}}},
	}

	payload, err := Flatten(draft, s)

	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T18:00:00", payload.StartDate)
	assert.Equal(t, "2024-06-01T18:00:00", payload.FinishDate)
	assert.Equal(t, 100.0, payload.Price)
	assert.Equal(t, "Concert", payload.Title)
	assert.Equal(t, int64(2), payload.LocationID)
	assert.Equal(t, int64(1), payload.CategoryID)
	assert.Equal(t, "Live music", payload.Description)
}

func TestFlatten_NoTimeEntered(t *testing.T) {
	s := Schedule{
		{Date: date(t, "2024-06-01"), Slots: []SlotEntry{{Time: "", Price: 0}}},
	}

	_, err := Flatten(models.EventDraft{}, s)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestFlatten_NoDate(t *testing.T) {
	s := Schedule{
		{Date: nil, Slots: []SlotEntry{{Time: "18:00", Price: 100}}},
	}

	_, err := Flatten(models.EventDraft{}, s)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestFlatten_TimeOnLaterDayUsesDefaults(t *testing.T) {
	// Validation only needs one time anywhere; the first slot still feeds
	// the payload, so its empty time falls back to the defaults.
	s := Schedule{
		{Date: date(t, "2024-06-01"), Slots: []SlotEntry{{Time: "", Price: 0}}},
		{Date: date(t, "2024-06-02"), Slots: []SlotEntry{{Time: "20:00", Price: 40}}},
	}

	payload, err := Flatten(models.EventDraft{}, s)

	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T00:00:00", payload.StartDate)
	assert.Equal(t, "2024-06-01T23:59:00", payload.FinishDate)
	assert.Equal(t, 0.0, payload.Price)
}

func TestFlatten_ExtraDaysAndSlotsDiscarded(t *testing.T) {
	s := Schedule{
		{Date: date(t, "2024-06-01"), Slots: []SlotEntry{{Time: "18:00", Price: 100}, {Time: "21:00", Price: 120}}},
		{Date: date(t, "2024-06-08"), Slots: []SlotEntry{{Time: "18:00", Price: 100}}},
	}

	payload, err := Flatten(models.EventDraft{}, s)

	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T18:00:00", payload.StartDate)
	assert.Equal(t, "2024-06-01T18:00:00", payload.FinishDate)
	assert.Equal(t, 100.0, payload.Price)
}

package schedule

import (
	"strconv"
	"time"
)

// SlotEntry is one time-of-day and its price within a DayEntry.
// Time is a wall-clock HH:MM string and may be empty until entered.
type SlotEntry struct {
	Time  string
	Price float64
}

// DayEntry is one calendar date plus its list of time/price slots.
// Date is nil until the user picks one. Slots is never empty.
type DayEntry struct {
	Date  *time.Time
	Slots []SlotEntry
}

// Schedule is the ordered list of day entries being edited. It always
// contains at least one DayEntry.
//
// Every operation is a pure function: the receiver is never mutated and
// the result shares no slice or pointer state with it, so callers can
// detect change by identity comparison.
type Schedule []DayEntry

// New returns the initial schedule: one day with no date and one empty slot.
func New() Schedule {
	return Schedule{emptyDay()}
}

func emptyDay() DayEntry {
	return DayEntry{Slots: []SlotEntry{{Time: "", Price: 0}}}
}

func (d DayEntry) clone() DayEntry {
	out := DayEntry{Slots: make([]SlotEntry, len(d.Slots))}
	copy(out.Slots, d.Slots)
	if d.Date != nil {
		date := *d.Date
		out.Date = &date
	}
	return out
}

func (s Schedule) clone() Schedule {
	out := make(Schedule, len(s))
	for i, day := range s {
		out[i] = day.clone()
	}
	return out
}

// AddDay inserts a new DayEntry immediately after the entry at after.
// The new entry is a value-copy of the entry at after, so a recurring
// schedule can be extended and only the date changed. When after is the
// first entry (or out of range) an empty default is inserted instead.
func (s Schedule) AddDay(after int) Schedule {
	entry := emptyDay()
	if after > 0 && after < len(s) {
		entry = s[after].clone()
	}

	out := s.clone()
	pos := after + 1
	if pos < 1 || pos > len(out) {
		pos = len(out)
	}
	out = append(out[:pos], append(Schedule{entry}, out[pos:]...)...)
	return out
}

// RemoveDay removes the entry at index. The first entry can never be
// removed, which keeps the schedule non-empty; invalid indexes are a no-op.
func (s Schedule) RemoveDay(index int) Schedule {
	if index <= 0 || index >= len(s) {
		return s
	}
	out := s.clone()
	return append(out[:index], out[index+1:]...)
}

// SetDate replaces the date of the entry at index. A nil date unsets it.
func (s Schedule) SetDate(index int, date *time.Time) Schedule {
	if index < 0 || index >= len(s) {
		return s
	}
	out := s.clone()
	if date != nil {
		d := *date
		out[index].Date = &d
	} else {
		out[index].Date = nil
	}
	return out
}

// AddSlot appends an empty time/price slot to the entry at day.
func (s Schedule) AddSlot(day int) Schedule {
	if day < 0 || day >= len(s) {
		return s
	}
	out := s.clone()
	out[day].Slots = append(out[day].Slots, SlotEntry{Time: "", Price: 0})
	return out
}

// RemoveSlot removes one slot from the entry at day. A day always keeps
// at least one slot: removing the last remaining slot is a no-op.
func (s Schedule) RemoveSlot(day, slot int) Schedule {
	if day < 0 || day >= len(s) {
		return s
	}
	if slot < 0 || slot >= len(s[day].Slots) || len(s[day].Slots) <= 1 {
		return s
	}
	out := s.clone()
	out[day].Slots = append(out[day].Slots[:slot], out[day].Slots[slot+1:]...)
	return out
}

// SetSlotTime replaces the time of one slot.
func (s Schedule) SetSlotTime(day, slot int, t string) Schedule {
	if day < 0 || day >= len(s) || slot < 0 || slot >= len(s[day].Slots) {
		return s
	}
	out := s.clone()
	out[day].Slots[slot].Time = t
	return out
}

// SetSlotPrice replaces the price of one slot.
func (s Schedule) SetSlotPrice(day, slot int, price float64) Schedule {
	if day < 0 || day >= len(s) || slot < 0 || slot >= len(s[day].Slots) {
		return s
	}
	out := s.clone()
	out[day].Slots[slot].Price = price
	return out
}

// ParsePrice parses a price typed by the user. Anything that is not a
// non-negative number comes back as 0, matching the form behaviour.
func ParsePrice(raw string) float64 {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}

package calendar

import (
	"time"

	"github.com/ShivamGupta987/Google-Calendar/internal"
)

const (
	// Grid covers 07:00 through 19:00 inclusive, one slot per hour.
	GridStartHour = 7
	SlotCount     = 13
	DaysPerWeek   = 7

	// InvalidTimeTitle replaces an event's title when either endpoint is
	// missing or unparsable, so the grid renders a placeholder instead of
	// dropping the whole render.
	InvalidTimeTitle = "Invalid time"
)

// TimeSlot identifies one grid cell within a day.
type TimeSlot struct {
	Hour   int
	Minute int
}

// Slots returns the 13 hourly slots of the day grid, 07:00 to 19:00.
func Slots() []TimeSlot {
	slots := make([]TimeSlot, SlotCount)
	for i := range slots {
		slots[i] = TimeSlot{Hour: GridStartHour + i}
	}
	return slots
}

// StartOfWeek returns midnight of the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// WeekOf returns the seven days (midnights) of the week containing t,
// starting Monday.
func WeekOf(t time.Time) []time.Time {
	start := StartOfWeek(t)
	days := make([]time.Time, DaysPerWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// wallClockLayouts are tried in order. Times are wall-clock naive: a zone
// suffix is accepted but never used to shift the clock reading.
var wallClockLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseWallClock parses an ISO-8601 timestamp string.
func ParseWallClock(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range wallClockLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// EventInSlot reports whether the event occupies the given slot on the
// given day. An event matches when it starts on that calendar day and
// either starts exactly at the slot's hour and minute, spans the slot's
// hour entirely, or starts at the slot's hour before the slot's minute.
//
// This is deliberately not a true interval-overlap test: an event ending
// exactly on an hour boundary does not occupy that boundary slot, and an
// event contained strictly inside one hour (say 09:15-09:45) matches no
// slot at all. Callers depend on that exact behavior.
//
// Events with missing or unparsable times match nothing and never panic.
func EventInSlot(event internal.Event, day time.Time, slot TimeSlot) bool {
	if event.StartTime == "" || event.EndTime == "" {
		return false
	}
	start, err := ParseWallClock(event.StartTime)
	if err != nil {
		return false
	}
	end, err := ParseWallClock(event.EndTime)
	if err != nil {
		return false
	}

	if !sameDay(start, day) {
		return false
	}

	startHour := start.Hour()
	endHour := end.Hour()

	return (startHour == slot.Hour && start.Minute() == slot.Minute) ||
		(startHour < slot.Hour && endHour > slot.Hour) ||
		(startHour == slot.Hour && start.Minute() < slot.Minute)
}

// EventsForSlot filters events down to those assigned to (day, slot).
func EventsForSlot(events []internal.Event, day time.Time, slot TimeSlot) []internal.Event {
	var matched []internal.Event
	for _, e := range events {
		if EventInSlot(e, day, slot) {
			matched = append(matched, e)
		}
	}
	return matched
}

// SlotSpan builds the one-hour candidate span used when an empty slot is
// clicked or a task is dropped: [day+hour:minute, day+hour+1:minute).
func SlotSpan(day time.Time, slot TimeSlot) (startTime, endTime string) {
	start := time.Date(day.Year(), day.Month(), day.Day(), slot.Hour, slot.Minute, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), slot.Hour+1, slot.Minute, 0, 0, day.Location())
	return start.Format(time.RFC3339), end.Format(time.RFC3339)
}

// DisplayTitle is the title the grid renders for an event; events whose
// times do not parse get the placeholder instead of their own title.
func DisplayTitle(event internal.Event) string {
	if event.StartTime == "" || event.EndTime == "" {
		return InvalidTimeTitle
	}
	if _, err := ParseWallClock(event.StartTime); err != nil {
		return InvalidTimeTitle
	}
	if _, err := ParseWallClock(event.EndTime); err != nil {
		return InvalidTimeTitle
	}
	return event.Title
}

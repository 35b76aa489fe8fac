package calendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ShivamGupta987/Google-Calendar/internal"
)

// monday is an arbitrary fixed Monday used across the grid tests.
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func event(start, end string) internal.Event {
	return internal.Event{ID: "e1", Title: "Focus block", Category: internal.CategoryWork, StartTime: start, EndTime: end}
}

func matchedHours(e internal.Event, day time.Time) []int {
	var hours []int
	for _, slot := range Slots() {
		if EventInSlot(e, day, slot) {
			hours = append(hours, slot.Hour)
		}
	}
	return hours
}

func TestEventWithinSingleHourMatchesNothing(t *testing.T) {
	// 09:15-09:45 neither starts on a slot boundary nor spans a full
	// hour, so it falls through every slot.
	e := event("2025-03-10T09:15:00", "2025-03-10T09:45:00")
	assert.Empty(t, matchedHours(e, monday))
}

func TestExactStartMatchesRegardlessOfDuration(t *testing.T) {
	e := event("2025-03-10T09:00:00", "2025-03-10T09:05:00")
	assert.Equal(t, []int{9}, matchedHours(e, monday))
}

func TestSpanningEventExcludesEndBoundarySlot(t *testing.T) {
	e := event("2025-03-10T09:00:00", "2025-03-10T11:00:00")
	assert.Equal(t, []int{9, 10}, matchedHours(e, monday))
}

func TestEventOnOtherDayMatchesNothing(t *testing.T) {
	e := event("2025-03-11T09:00:00", "2025-03-11T10:00:00")
	assert.Empty(t, matchedHours(e, monday))
}

func TestMissingOrUnparsableTimesMatchNothing(t *testing.T) {
	assert.Empty(t, matchedHours(event("", "2025-03-10T10:00:00"), monday))
	assert.Empty(t, matchedHours(event("2025-03-10T09:00:00", ""), monday))
	assert.Empty(t, matchedHours(event("not-a-date", "also-not-a-date"), monday))
}

func TestDisplayTitleFallsBackOnInvalidTimes(t *testing.T) {
	assert.Equal(t, "Focus block", DisplayTitle(event("2025-03-10T09:00:00", "2025-03-10T10:00:00")))
	assert.Equal(t, InvalidTimeTitle, DisplayTitle(event("garbage", "2025-03-10T10:00:00")))
	assert.Equal(t, InvalidTimeTitle, DisplayTitle(event("", "")))
}

func TestSlots(t *testing.T) {
	slots := Slots()
	assert.Len(t, slots, 13)
	assert.Equal(t, TimeSlot{Hour: 7}, slots[0])
	assert.Equal(t, TimeSlot{Hour: 19}, slots[12])
}

func TestWeekOfStartsMonday(t *testing.T) {
	// 2025-03-13 is a Thursday.
	days := WeekOf(time.Date(2025, 3, 13, 15, 30, 0, 0, time.UTC))
	assert.Len(t, days, 7)
	assert.Equal(t, monday, days[0])
	assert.Equal(t, time.Sunday, days[6].Weekday())

	// A Monday is its own week start.
	assert.Equal(t, monday, StartOfWeek(monday))
}

func TestSlotSpanBuildsOneHourCandidate(t *testing.T) {
	start, end := SlotSpan(monday, TimeSlot{Hour: 9})
	assert.Equal(t, "2025-03-10T09:00:00Z", start)
	assert.Equal(t, "2025-03-10T10:00:00Z", end)

	parsedStart, err := ParseWallClock(start)
	assert.NoError(t, err)
	parsedEnd, err := ParseWallClock(end)
	assert.NoError(t, err)
	assert.Equal(t, time.Hour, parsedEnd.Sub(parsedStart))
}

func TestParseWallClockLayouts(t *testing.T) {
	for _, s := range []string{
		"2025-03-10T09:00:00Z",
		"2025-03-10T09:00:00+02:00",
		"2025-03-10T09:00:00",
		"2025-03-10T09:00",
	} {
		parsed, err := ParseWallClock(s)
		assert.NoError(t, err, s)
		assert.Equal(t, 9, parsed.Hour(), s)
	}
	_, err := ParseWallClock("10/03/2025")
	assert.Error(t, err)
}

func TestRenderWeekSurvivesInvalidEvents(t *testing.T) {
	events := []internal.Event{
		event("2025-03-10T09:00:00", "2025-03-10T10:00:00"),
		{ID: "bad", Title: "Broken", StartTime: "garbage", EndTime: "garbage"},
	}
	var buf bytes.Buffer
	RenderWeek(&buf, events, monday)
	out := buf.String()
	assert.Contains(t, out, "Focus block")
	assert.NotContains(t, out, "Broken")
}

func TestICSSkipsUnparsableEvents(t *testing.T) {
	events := []internal.Event{
		event("2025-03-10T09:00:00", "2025-03-10T10:00:00"),
		{ID: "bad", Title: "Broken", StartTime: "garbage", EndTime: "garbage"},
	}
	out := ICS(events)
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "SUMMARY:Focus block")
	assert.NotContains(t, out, "Broken")
}

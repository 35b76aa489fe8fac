package calendar

import (
	ics "github.com/arran4/golang-ical"

	"github.com/ShivamGupta987/Google-Calendar/internal"
)

// ICS serializes events to an iCalendar document. Events whose times do not
// parse are skipped; they have no renderable span.
func ICS(events []internal.Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for _, e := range events {
		start, err := ParseWallClock(e.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseWallClock(e.EndTime)
		if err != nil {
			continue
		}

		entry := cal.AddEvent(e.ID)
		entry.SetSummary(e.Title)
		entry.SetStartAt(start)
		entry.SetEndAt(end)
		entry.SetCreatedTime(e.CreatedAt)
		entry.SetModifiedAt(e.UpdatedAt)
		if e.Category != "" {
			entry.SetProperty(ics.ComponentPropertyCategories, string(e.Category))
		}
	}

	return cal.Serialize()
}

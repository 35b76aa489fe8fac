package calendar

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ShivamGupta987/Google-Calendar/internal"
)

const cellWidth = 14

// RenderWeek writes a text week grid to w: one column per day starting
// Monday, one row per hourly slot, event display titles in the cells.
func RenderWeek(w io.Writer, events []internal.Event, anchor time.Time) {
	days := WeekOf(anchor)

	tw := tabwriter.NewWriter(w, cellWidth, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprint(tw, "Time")
	for _, day := range days {
		fmt.Fprintf(tw, "\t%s %d", day.Weekday().String()[:3], day.Day())
	}
	fmt.Fprintln(tw)

	for _, slot := range Slots() {
		fmt.Fprint(tw, formatHour(slot.Hour))
		for _, day := range days {
			fmt.Fprintf(tw, "\t%s", cell(EventsForSlot(events, day, slot)))
		}
		fmt.Fprintln(tw)
	}
}

func cell(events []internal.Event) string {
	if len(events) == 0 {
		return "."
	}
	titles := make([]string, len(events))
	for i, e := range events {
		titles[i] = truncate(DisplayTitle(e), cellWidth-2)
	}
	return strings.Join(titles, ",")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func formatHour(hour int) string {
	suffix := "AM"
	h := hour
	if hour >= 12 {
		suffix = "PM"
		if hour > 12 {
			h = hour - 12
		}
	}
	return fmt.Sprintf("%d %s", h, suffix)
}

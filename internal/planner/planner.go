// Package planner turns sidebar tasks into calendar event drafts, the
// drag-and-drop path of the week view.
package planner

import (
	"strings"
	"time"

	"github.com/ShivamGupta987/Google-Calendar/internal"
	"github.com/ShivamGupta987/Google-Calendar/internal/calendar"
	"github.com/ShivamGupta987/Google-Calendar/internal/service"
)

// Draft is a pre-filled event awaiting confirmation. Nothing is persisted
// until the draft is submitted; the source task is never mutated, and one
// task may be scheduled into any number of events.
type Draft struct {
	Title     string
	Category  internal.Category
	StartTime string
	EndTime   string
	TaskID    string
	Color     string
}

// SlotDraft is the empty-slot click path: a one-hour candidate span with
// the dialog's default category.
func SlotDraft(day time.Time, slot calendar.TimeSlot) Draft {
	start, end := calendar.SlotSpan(day, slot)
	return Draft{
		Category:  internal.CategoryWork,
		StartTime: start,
		EndTime:   end,
	}
}

// ScheduleTask is the drop path: the task lands on (day, hour) and becomes
// a draft spanning that hour, titled after the task and referencing it.
// When a goal filter is active its label seeds the category guess and its
// color carries onto the event.
func ScheduleTask(task internal.Task, day time.Time, hour int, activeGoal *internal.Goal) Draft {
	draft := SlotDraft(day, calendar.TimeSlot{Hour: hour})
	draft.Title = task.Title
	draft.TaskID = task.ID
	if activeGoal != nil {
		draft.Category = CategoryFromGoal(activeGoal)
		draft.Color = activeGoal.Color
	}
	return draft
}

// CategoryFromGoal coerces a goal's display label to a category guess:
// the first category label contained in the goal title wins, otherwise the
// dialog default.
func CategoryFromGoal(goal *internal.Goal) internal.Category {
	title := strings.ToLower(goal.Title)
	for _, c := range internal.Categories {
		if strings.Contains(title, string(c)) {
			return c
		}
	}
	return internal.CategoryWork
}

// Request converts the confirmed draft into the create payload.
func (d Draft) Request() *service.EventRequest {
	return &service.EventRequest{
		Title:     d.Title,
		Category:  string(d.Category),
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		TaskID:    d.TaskID,
		Color:     d.Color,
	}
}

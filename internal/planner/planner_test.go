package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ShivamGupta987/Google-Calendar/internal"
	"github.com/ShivamGupta987/Google-Calendar/internal/calendar"
)

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestSlotDraftDefaults(t *testing.T) {
	draft := SlotDraft(day, calendar.TimeSlot{Hour: 9})
	assert.Equal(t, internal.CategoryWork, draft.Category)
	assert.Equal(t, "2025-03-10T09:00:00Z", draft.StartTime)
	assert.Equal(t, "2025-03-10T10:00:00Z", draft.EndTime)
	assert.Empty(t, draft.TaskID)
}

func TestScheduleTaskBuildsDraftFromTask(t *testing.T) {
	task := internal.Task{ID: "t1", Title: "Run 5k", GoalID: "g1"}

	draft := ScheduleTask(task, day, 7, nil)
	assert.Equal(t, "Run 5k", draft.Title)
	assert.Equal(t, "t1", draft.TaskID)
	assert.Equal(t, "2025-03-10T07:00:00Z", draft.StartTime)
	assert.Equal(t, "2025-03-10T08:00:00Z", draft.EndTime)
	assert.Equal(t, internal.CategoryWork, draft.Category)
	assert.Empty(t, draft.Color)
}

func TestScheduleTaskWithActiveGoal(t *testing.T) {
	task := internal.Task{ID: "t1", Title: "Run 5k", GoalID: "g1"}
	goal := internal.Goal{ID: "g1", Title: "Daily exercise", Color: "#00ff00"}

	draft := ScheduleTask(task, day, 7, &goal)
	assert.Equal(t, internal.CategoryExercise, draft.Category)
	assert.Equal(t, "#00ff00", draft.Color)

	req := draft.Request()
	assert.Equal(t, "Run 5k", req.Title)
	assert.Equal(t, "exercise", req.Category)
	assert.Equal(t, "t1", req.TaskID)
}

func TestCategoryFromGoal(t *testing.T) {
	cases := map[string]internal.Category{
		"Daily exercise":    internal.CategoryExercise,
		"family time":       internal.CategoryFamily,
		"EATING BETTER":     internal.CategoryEating,
		"Learn guitar":      internal.CategoryWork, // no label matches
		"Relax on weekends": internal.CategoryRelax,
	}
	for title, want := range cases {
		got := CategoryFromGoal(&internal.Goal{Title: title})
		assert.Equal(t, want, got, title)
	}
}

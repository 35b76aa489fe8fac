package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShivamGupta987/Google-Calendar/internal"
)

func newTestStorage(t *testing.T, dir string) *FileStorage {
	s, err := NewFileStorage(
		filepath.Join(dir, "events.json"),
		filepath.Join(dir, "goals.json"),
		filepath.Join(dir, "tasks.json"),
		internal.NewNopLogger(),
	)
	assert.NoError(t, err)
	return s
}

func TestEventLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t, t.TempDir())

	event := &internal.Event{
		Title:     "Standup",
		Category:  internal.CategoryWork,
		StartTime: "2025-03-10T09:00:00Z",
		EndTime:   "2025-03-10T10:00:00Z",
	}
	assert.NoError(t, s.CreateEvent(ctx, event))
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())

	got, err := s.GetEvent(ctx, event.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Standup", got.Title)

	got.Title = "Retro"
	assert.NoError(t, s.UpdateEvent(ctx, got))
	updated, err := s.GetEvent(ctx, event.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Retro", updated.Title)

	assert.NoError(t, s.DeleteEvent(ctx, event.ID))
	_, err = s.GetEvent(ctx, event.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteEvent(ctx, event.ID), ErrNotFound)
}

func TestUpdateUnknownEventReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t, t.TempDir())
	err := s.UpdateEvent(ctx, &internal.Event{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskListJoinsGoalFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t, t.TempDir())

	goal := &internal.Goal{Title: "Health", Color: "#00ff00"}
	assert.NoError(t, s.CreateGoal(ctx, goal))

	linked := &internal.Task{Title: "Run 5k", GoalID: goal.ID}
	dangling := &internal.Task{Title: "Orphan", GoalID: "no-such-goal"}
	assert.NoError(t, s.CreateTask(ctx, linked))
	assert.NoError(t, s.CreateTask(ctx, dangling))

	tasks, err := s.ListTasks(ctx)
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	for _, task := range tasks {
		switch task.ID {
		case linked.ID:
			assert.Equal(t, "Health", task.GoalTitle)
			assert.Equal(t, "#00ff00", task.GoalColor)
		case dangling.ID:
			assert.Empty(t, task.GoalTitle)
			assert.Empty(t, task.GoalColor)
		}
	}

	byGoal, err := s.ListTasksByGoal(ctx, goal.ID)
	assert.NoError(t, err)
	assert.Len(t, byGoal, 1)
	assert.Equal(t, linked.ID, byGoal[0].ID)
}

func TestDeleteTaskDoesNotCascadeToEvents(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t, t.TempDir())

	task := &internal.Task{Title: "Run 5k", GoalID: "g1"}
	assert.NoError(t, s.CreateTask(ctx, task))

	event := &internal.Event{
		Title:     "Morning run",
		Category:  internal.CategoryExercise,
		StartTime: "2025-03-10T07:00:00Z",
		EndTime:   "2025-03-10T08:00:00Z",
		TaskID:    task.ID,
	}
	assert.NoError(t, s.CreateEvent(ctx, event))

	assert.NoError(t, s.DeleteTask(ctx, task.ID))

	got, err := s.GetEvent(ctx, event.ID)
	assert.NoError(t, err)
	assert.Equal(t, task.ID, got.TaskID, "taskId must dangle, not cascade")
}

func TestCloseIsIdempotent(t *testing.T) {
	s := newTestStorage(t, t.TempDir())
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestDataSurvivesReload(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := newTestStorage(t, dir)
	goal := &internal.Goal{Title: "Health", Color: "#00ff00"}
	assert.NoError(t, s.CreateGoal(ctx, goal))
	event := &internal.Event{Title: "Standup", Category: internal.CategoryWork, StartTime: "2025-03-10T09:00:00Z", EndTime: "2025-03-10T10:00:00Z"}
	assert.NoError(t, s.CreateEvent(ctx, event))
	assert.NoError(t, s.Close())

	reloaded := newTestStorage(t, dir)
	defer reloaded.Close()

	gotGoal, err := reloaded.GetGoal(ctx, goal.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Health", gotGoal.Title)

	gotEvent, err := reloaded.GetEvent(ctx, event.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Standup", gotEvent.Title)
	assert.Equal(t, "2025-03-10T09:00:00Z", gotEvent.StartTime)
}

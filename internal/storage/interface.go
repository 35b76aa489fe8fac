package storage

import (
	"context"
	"errors"

	"github.com/ShivamGupta987/Google-Calendar/internal"
)

// ErrNotFound is returned by every backend when an identifier does not
// resolve to a stored document.
var ErrNotFound = errors.New("storage: not found")

// Create assigns the store-generated ID and timestamps on the passed entity.
// Update replaces the whole document (the sparse-merge decision happens in
// the service layer, before the repository is called). No repository checks
// cross-entity references: goalId and taskId may dangle.

type EventRepository interface {
	ListEvents(ctx context.Context) ([]internal.Event, error)
	GetEvent(ctx context.Context, id string) (*internal.Event, error)
	CreateEvent(ctx context.Context, event *internal.Event) error
	UpdateEvent(ctx context.Context, event *internal.Event) error
	DeleteEvent(ctx context.Context, id string) error
}

type GoalRepository interface {
	ListGoals(ctx context.Context) ([]internal.Goal, error)
	GetGoal(ctx context.Context, id string) (*internal.Goal, error)
	CreateGoal(ctx context.Context, goal *internal.Goal) error
}

type TaskRepository interface {
	// ListTasks populates GoalTitle/GoalColor from the referenced goal when
	// it exists; tasks with dangling goalIds are returned unjoined.
	ListTasks(ctx context.Context) ([]internal.Task, error)
	ListTasksByGoal(ctx context.Context, goalID string) ([]internal.Task, error)
	GetTask(ctx context.Context, id string) (*internal.Task, error)
	CreateTask(ctx context.Context, task *internal.Task) error
	UpdateTask(ctx context.Context, task *internal.Task) error
	DeleteTask(ctx context.Context, id string) error
}

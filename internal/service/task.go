package service

import (
	"context"

	"github.com/ShivamGupta987/Google-Calendar/internal"
	"github.com/ShivamGupta987/Google-Calendar/internal/storage"
)

type TaskRequest struct {
	Title     string `json:"title" validate:"required"`
	GoalID    string `json:"goalId" validate:"required"`
	Completed *bool  `json:"completed"`
}

func ValidateTaskRequest(req *TaskRequest) error {
	return badRequest(validate.Struct(req))
}

func CreateTask(ctx context.Context, repo storage.TaskRepository, req *TaskRequest) (*internal.Task, error) {
	task := &internal.Task{
		Title:     req.Title,
		GoalID:    req.GoalID,
		Completed: req.Completed != nil && *req.Completed,
	}
	if err := repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// TaskUpdate merge policy: Title and GoalID are skip-if-falsy like every
// event field, but Completed is skip-if-undefined — an explicit false must
// be applied, so it is a *bool and only nil is skipped.
type TaskUpdate struct {
	Title     string `json:"title"`
	GoalID    string `json:"goalId"`
	Completed *bool  `json:"completed"`
}

func ApplyTaskUpdate(task *internal.Task, upd *TaskUpdate) {
	if upd.Title != "" {
		task.Title = upd.Title
	}
	if upd.GoalID != "" {
		task.GoalID = upd.GoalID
	}
	if upd.Completed != nil {
		task.Completed = *upd.Completed
	}
}

func UpdateTask(ctx context.Context, repo storage.TaskRepository, id string, upd *TaskUpdate) (*internal.Task, error) {
	task, err := repo.GetTask(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Task not found")
	}
	ApplyTaskUpdate(task, upd)
	if err := repo.UpdateTask(ctx, task); err != nil {
		return nil, notFoundOr(err, "Task not found")
	}
	return task, nil
}

package service

import (
	"context"

	"github.com/ShivamGupta987/Google-Calendar/internal"
	"github.com/ShivamGupta987/Google-Calendar/internal/storage"
)

type GoalRequest struct {
	Title string `json:"title" validate:"required"`
	Color string `json:"color" validate:"required"`
}

func ValidateGoalRequest(req *GoalRequest) error {
	return badRequest(validate.Struct(req))
}

func GetGoal(ctx context.Context, repo storage.GoalRepository, id string) (*internal.Goal, error) {
	goal, err := repo.GetGoal(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Goal not found")
	}
	return goal, nil
}

func CreateGoal(ctx context.Context, repo storage.GoalRepository, req *GoalRequest) (*internal.Goal, error) {
	goal := &internal.Goal{
		Title: req.Title,
		Color: req.Color,
	}
	if err := repo.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

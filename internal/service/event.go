package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ShivamGupta987/Google-Calendar/internal"
	"github.com/ShivamGupta987/Google-Calendar/internal/storage"
)

var validate = validator.New()

// notFoundOr turns a missing-row error into a 404 AppError with the static
// message and leaves every other error untouched.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return internal.WrapError(http.StatusNotFound, msg, err)
	}
	return err
}

func badRequest(err error) error {
	if err == nil {
		return nil
	}
	return internal.WrapError(http.StatusBadRequest, err.Error(), err)
}

// EventRequest is the create payload. Start/end stay strings: the service
// never parses them, so a client can store any ISO-8601 text and the grid
// degrades per-event if it turns out unparsable.
type EventRequest struct {
	Title     string `json:"title" validate:"required"`
	Category  string `json:"category" validate:"required,oneof=exercise eating work relax family social"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	TaskID    string `json:"taskId,omitempty"`
	Color     string `json:"color,omitempty"`
}

func ValidateEventRequest(req *EventRequest) error {
	return badRequest(validate.Struct(req))
}

func GetEvent(ctx context.Context, repo storage.EventRepository, id string) (*internal.Event, error) {
	event, err := repo.GetEvent(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Event not found")
	}
	return event, nil
}

func DeleteEvent(ctx context.Context, repo storage.EventRepository, id string) error {
	return notFoundOr(repo.DeleteEvent(ctx, id), "Event not found")
}

func CreateEvent(ctx context.Context, repo storage.EventRepository, req *EventRequest) (*internal.Event, error) {
	event := &internal.Event{
		Title:     req.Title,
		Category:  internal.Category(req.Category),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		TaskID:    req.TaskID,
		Color:     req.Color,
	}
	if err := repo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// EventUpdate is the PUT payload. Merge policy: every field here is
// skip-if-falsy — an absent or empty-string value leaves the stored field at
// its prior value. There is no way to blank an event field through PUT.
type EventUpdate struct {
	Title     string `json:"title"`
	Category  string `json:"category" validate:"omitempty,oneof=exercise eating work relax family social"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	TaskID    string `json:"taskId"`
	Color     string `json:"color"`
}

func ValidateEventUpdate(upd *EventUpdate) error {
	return badRequest(validate.Struct(upd))
}

func ApplyEventUpdate(event *internal.Event, upd *EventUpdate) {
	if upd.Title != "" {
		event.Title = upd.Title
	}
	if upd.Category != "" {
		event.Category = internal.Category(upd.Category)
	}
	if upd.StartTime != "" {
		event.StartTime = upd.StartTime
	}
	if upd.EndTime != "" {
		event.EndTime = upd.EndTime
	}
	if upd.TaskID != "" {
		event.TaskID = upd.TaskID
	}
	if upd.Color != "" {
		event.Color = upd.Color
	}
}

func UpdateEvent(ctx context.Context, repo storage.EventRepository, id string, upd *EventUpdate) (*internal.Event, error) {
	event, err := repo.GetEvent(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Event not found")
	}
	ApplyEventUpdate(event, upd)
	if err := repo.UpdateEvent(ctx, event); err != nil {
		return nil, notFoundOr(err, "Event not found")
	}
	return event, nil
}

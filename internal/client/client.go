package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ShivamGupta987/Google-Calendar/internal"
	"github.com/ShivamGupta987/Google-Calendar/internal/response"
	"github.com/ShivamGupta987/Google-Calendar/internal/service"
)

// Client talks to the planner REST API. All methods surface the server's
// {message} error body as a plain error; there is no retry logic.
type Client struct {
	base   string
	http   *http.Client
	logger internal.Logger
}

func New(base string, logger internal.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody response.Body
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Message != "" {
			return fmt.Errorf("%s %s: %s", method, path, errBody.Message)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// --- Events ---

func (c *Client) ListEvents(ctx context.Context) ([]internal.Event, error) {
	var events []internal.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*internal.Event, error) {
	var event internal.Event
	if err := c.do(ctx, http.MethodGet, "/events/"+id, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) CreateEvent(ctx context.Context, req *service.EventRequest) (*internal.Event, error) {
	var event internal.Event
	if err := c.do(ctx, http.MethodPost, "/events", req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, upd *service.EventUpdate) (*internal.Event, error) {
	var event internal.Event
	if err := c.do(ctx, http.MethodPut, "/events/"+id, upd, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+id, nil, nil)
}

// --- Goals ---

// GoalDetail is the GET /goals/:id response: the goal plus its tasks.
type GoalDetail struct {
	Goal  internal.Goal   `json:"goal"`
	Tasks []internal.Task `json:"tasks"`
}

func (c *Client) ListGoals(ctx context.Context) ([]internal.Goal, error) {
	var goals []internal.Goal
	if err := c.do(ctx, http.MethodGet, "/goals", nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (c *Client) GetGoal(ctx context.Context, id string) (*GoalDetail, error) {
	var detail GoalDetail
	if err := c.do(ctx, http.MethodGet, "/goals/"+id, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) CreateGoal(ctx context.Context, req *service.GoalRequest) (*internal.Goal, error) {
	var goal internal.Goal
	if err := c.do(ctx, http.MethodPost, "/goals", req, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

// --- Tasks ---

func (c *Client) ListTasks(ctx context.Context) ([]internal.Task, error) {
	var tasks []internal.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) ListTasksByGoal(ctx context.Context, goalID string) ([]internal.Task, error) {
	var tasks []internal.Task
	if err := c.do(ctx, http.MethodGet, "/tasks/goal/"+goalID, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, req *service.TaskRequest) (*internal.Task, error) {
	var task internal.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, upd *service.TaskUpdate) (*internal.Task, error) {
	var task internal.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, upd, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

package client

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ShivamGupta987/Google-Calendar/internal"
	"github.com/ShivamGupta987/Google-Calendar/internal/service"
)

// Cache keys, one per collection.
const (
	KeyEvents = "events"
	KeyGoals  = "goals"
	KeyTasks  = "tasks"
)

// Notifier receives user-visible failure notices from mutations. Failures
// never retry and never touch cached data.
type Notifier interface {
	Notify(msg string)
}

// LogNotifier routes notices to the logger; the terminal client uses it in
// place of toast notifications.
type LogNotifier struct {
	Logger internal.Logger
}

func (n LogNotifier) Notify(msg string) {
	n.Logger.Warnf("notification: %s", msg)
}

// Cache is a read-through cache over the REST client, keyed by collection
// name. Reads fetch on miss with at most one in-flight request per key;
// every successful mutation invalidates its collection key so the next read
// refetches, keeping the view converged with server state without local
// patching.
type Cache struct {
	api      *Client
	notifier Notifier

	mu    sync.RWMutex
	data  map[string]interface{}
	group singleflight.Group
}

func NewCache(api *Client, notifier Notifier) *Cache {
	return &Cache{
		api:      api,
		notifier: notifier,
		data:     make(map[string]interface{}),
	}
}

// Invalidate drops the cached copy for key; the next read refetches.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

func (c *Cache) get(key string, fetch func() (interface{}, error)) (interface{}, error) {
	c.mu.RLock()
	v, ok := c.data[key]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Re-check under the group: a concurrent caller may have filled
		// the key while we waited our turn.
		c.mu.RLock()
		cached, ok := c.data[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		fetched, err := fetch()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.data[key] = fetched
		c.mu.Unlock()
		return fetched, nil
	})
	return v, err
}

// --- Reads ---

func (c *Cache) Events(ctx context.Context) ([]internal.Event, error) {
	v, err := c.get(KeyEvents, func() (interface{}, error) {
		return c.api.ListEvents(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]internal.Event), nil
}

func (c *Cache) Goals(ctx context.Context) ([]internal.Goal, error) {
	v, err := c.get(KeyGoals, func() (interface{}, error) {
		return c.api.ListGoals(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]internal.Goal), nil
}

func (c *Cache) Tasks(ctx context.Context) ([]internal.Task, error) {
	v, err := c.get(KeyTasks, func() (interface{}, error) {
		return c.api.ListTasks(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]internal.Task), nil
}

// --- Mutations ---

func (c *Cache) CreateEvent(ctx context.Context, req *service.EventRequest) (*internal.Event, error) {
	event, err := c.api.CreateEvent(ctx, req)
	if err != nil {
		c.notifier.Notify("Failed to create event: " + err.Error())
		return nil, err
	}
	c.Invalidate(KeyEvents)
	return event, nil
}

func (c *Cache) UpdateEvent(ctx context.Context, id string, upd *service.EventUpdate) (*internal.Event, error) {
	event, err := c.api.UpdateEvent(ctx, id, upd)
	if err != nil {
		c.notifier.Notify("Failed to update event: " + err.Error())
		return nil, err
	}
	c.Invalidate(KeyEvents)
	return event, nil
}

func (c *Cache) DeleteEvent(ctx context.Context, id string) error {
	if err := c.api.DeleteEvent(ctx, id); err != nil {
		c.notifier.Notify("Failed to delete event: " + err.Error())
		return err
	}
	c.Invalidate(KeyEvents)
	return nil
}

func (c *Cache) CreateGoal(ctx context.Context, req *service.GoalRequest) (*internal.Goal, error) {
	goal, err := c.api.CreateGoal(ctx, req)
	if err != nil {
		c.notifier.Notify("Failed to create goal: " + err.Error())
		return nil, err
	}
	c.Invalidate(KeyGoals)
	return goal, nil
}

func (c *Cache) CreateTask(ctx context.Context, req *service.TaskRequest) (*internal.Task, error) {
	task, err := c.api.CreateTask(ctx, req)
	if err != nil {
		c.notifier.Notify("Failed to create task: " + err.Error())
		return nil, err
	}
	c.Invalidate(KeyTasks)
	return task, nil
}

func (c *Cache) UpdateTask(ctx context.Context, id string, upd *service.TaskUpdate) (*internal.Task, error) {
	task, err := c.api.UpdateTask(ctx, id, upd)
	if err != nil {
		c.notifier.Notify("Failed to update task: " + err.Error())
		return nil, err
	}
	c.Invalidate(KeyTasks)
	return task, nil
}

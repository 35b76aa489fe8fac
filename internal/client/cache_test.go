package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShivamGupta987/Google-Calendar/internal"
	"github.com/ShivamGupta987/Google-Calendar/internal/service"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(msg string) {
	n.messages = append(n.messages, msg)
}

type fakeAPI struct {
	listCalls  atomic.Int64
	failCreate bool
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/events", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			f.listCalls.Add(1)
			json.NewEncoder(w).Encode([]internal.Event{{ID: "e1", Title: "Standup"}})
		case http.MethodPost:
			if f.failCreate {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"message": "Validation failed"})
				return
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(internal.Event{ID: "e2", Title: "Created"})
		}
	})
	return mux
}

func setupCache(t *testing.T, api *fakeAPI) (*Cache, *recordingNotifier) {
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	notifier := &recordingNotifier{}
	cache := NewCache(New(srv.URL+"/api", internal.NewNopLogger()), notifier)
	return cache, notifier
}

func TestCacheReadThrough(t *testing.T) {
	api := &fakeAPI{}
	cache, _ := setupCache(t, api)
	ctx := context.Background()

	events, err := cache.Events(ctx)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.EqualValues(t, 1, api.listCalls.Load())

	// Second read is served from cache.
	_, err = cache.Events(ctx)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, api.listCalls.Load())

	cache.Invalidate(KeyEvents)
	_, err = cache.Events(ctx)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, api.listCalls.Load())
}

func TestMutationInvalidatesOnSuccess(t *testing.T) {
	api := &fakeAPI{}
	cache, notifier := setupCache(t, api)
	ctx := context.Background()

	_, err := cache.Events(ctx)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, api.listCalls.Load())

	event, err := cache.CreateEvent(ctx, &service.EventRequest{
		Title: "Created", Category: "work",
		StartTime: "2025-03-10T09:00:00Z", EndTime: "2025-03-10T10:00:00Z",
	})
	assert.NoError(t, err)
	assert.Equal(t, "e2", event.ID)
	assert.Empty(t, notifier.messages)

	// The key was invalidated, so the next read refetches.
	_, err = cache.Events(ctx)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, api.listCalls.Load())
}

func TestMutationFailureNotifiesAndLeavesCache(t *testing.T) {
	api := &fakeAPI{failCreate: true}
	cache, notifier := setupCache(t, api)
	ctx := context.Background()

	_, err := cache.Events(ctx)
	assert.NoError(t, err)

	_, err = cache.CreateEvent(ctx, &service.EventRequest{Title: "Bad"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Validation failed")
	assert.Len(t, notifier.messages, 1)

	// Cache untouched: the next read does not refetch.
	_, err = cache.Events(ctx)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, api.listCalls.Load())
}

func TestConcurrentReadsDeduplicate(t *testing.T) {
	api := &fakeAPI{}
	cache, _ := setupCache(t, api)
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, err := cache.Events(ctx)
			assert.NoError(t, err)
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	// Concurrent misses collapse into at most one request per settled
	// fetch; with a warm cache afterwards the count stays put.
	assert.LessOrEqual(t, api.listCalls.Load(), int64(2))
	_, _ = cache.Events(ctx)
	calls := api.listCalls.Load()
	_, _ = cache.Events(ctx)
	assert.Equal(t, calls, api.listCalls.Load())
}

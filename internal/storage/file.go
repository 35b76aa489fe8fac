package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ShivamGupta987/Google-Calendar/internal"
)

// FileStorage keeps all three collections in memory and snapshots each one
// to its own JSON file from a debounced background worker.
type FileStorage struct {
	events map[string]*internal.Event
	goals  map[string]*internal.Goal
	tasks  map[string]*internal.Task

	mu sync.RWMutex

	eventsFile string
	goalsFile  string
	tasksFile  string

	saveEventsChan chan struct{}
	saveGoalsChan  chan struct{}
	saveTasksChan  chan struct{}
	shutdownChan   chan struct{}
	closeOnce      sync.Once
	saveDelay      time.Duration

	logger internal.Logger
}

func NewFileStorage(eventsFile, goalsFile, tasksFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		events:         make(map[string]*internal.Event),
		goals:          make(map[string]*internal.Goal),
		tasks:          make(map[string]*internal.Task),
		eventsFile:     eventsFile,
		goalsFile:      goalsFile,
		tasksFile:      tasksFile,
		saveEventsChan: make(chan struct{}, 1),
		saveGoalsChan:  make(chan struct{}, 1),
		saveTasksChan:  make(chan struct{}, 1),
		shutdownChan:   make(chan struct{}),
		saveDelay:      500 * time.Millisecond,
		logger:         logger,
	}

	if err := loadJSON(s.eventsFile, func(list []*internal.Event) {
		for _, e := range list {
			s.events[e.ID] = e
		}
	}); err != nil {
		logger.Errorf("storage: failed to load events: %v", err)
		return nil, err
	}
	if err := loadJSON(s.goalsFile, func(list []*internal.Goal) {
		for _, g := range list {
			s.goals[g.ID] = g
		}
	}); err != nil {
		logger.Errorf("storage: failed to load goals: %v", err)
		return nil, err
	}
	if err := loadJSON(s.tasksFile, func(list []*internal.Task) {
		for _, t := range list {
			s.tasks[t.ID] = t
		}
	}); err != nil {
		logger.Errorf("storage: failed to load tasks: %v", err)
		return nil, err
	}

	go s.saveWorker(s.saveEventsChan, s.saveEvents)
	go s.saveWorker(s.saveGoalsChan, s.saveGoals)
	go s.saveWorker(s.saveTasksChan, s.saveTasks)

	return s, nil
}

func loadJSON[T any](path string, fill func([]T)) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var list []T
	if err := json.NewDecoder(file).Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	fill(list)
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

// saveWorker batches snapshot requests so a burst of writes produces a
// single disk write after saveDelay of quiet.
func (s *FileStorage) saveWorker(trigger <-chan struct{}, save func() error) {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-trigger:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := save(); err != nil {
				s.logger.Errorf("storage: snapshot failed: %v", err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func (s *FileStorage) saveEvents() error {
	s.mu.RLock()
	list := make([]*internal.Event, 0, len(s.events))
	for _, e := range s.events {
		list = append(list, e)
	}
	s.mu.RUnlock()
	return atomicWriteFileJSON(s.eventsFile, list)
}

func (s *FileStorage) saveGoals() error {
	s.mu.RLock()
	list := make([]*internal.Goal, 0, len(s.goals))
	for _, g := range s.goals {
		list = append(list, g)
	}
	s.mu.RUnlock()
	return atomicWriteFileJSON(s.goalsFile, list)
}

func (s *FileStorage) saveTasks() error {
	s.mu.RLock()
	list := make([]*internal.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		list = append(list, t)
	}
	s.mu.RUnlock()
	return atomicWriteFileJSON(s.tasksFile, list)
}

// Close stops the workers and flushes pending snapshots synchronously.
// Safe to call more than once; only the first call does the work.
func (s *FileStorage) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.shutdownChan)

		if err = s.saveEvents(); err != nil {
			return
		}
		if err = s.saveGoals(); err != nil {
			return
		}
		err = s.saveTasks()
	})
	return err
}

// --- EventRepository ---

func (s *FileStorage) ListEvents(ctx context.Context) ([]internal.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]internal.Event, 0, len(s.events))
	for _, e := range s.events {
		list = append(list, *e)
	}
	return list, nil
}

func (s *FileStorage) GetEvent(ctx context.Context, id string) (*internal.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (s *FileStorage) CreateEvent(ctx context.Context, event *internal.Event) error {
	now := time.Now()
	event.ID = uuid.NewString()
	event.CreatedAt = now
	event.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *event
	s.events[event.ID] = &copied
	signal(s.saveEventsChan)
	return nil
}

func (s *FileStorage) UpdateEvent(ctx context.Context, event *internal.Event) error {
	event.UpdatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[event.ID]; !ok {
		return ErrNotFound
	}
	copied := *event
	s.events[event.ID] = &copied
	signal(s.saveEventsChan)
	return nil
}

func (s *FileStorage) DeleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return ErrNotFound
	}
	delete(s.events, id)
	signal(s.saveEventsChan)
	return nil
}

// --- GoalRepository ---

func (s *FileStorage) ListGoals(ctx context.Context) ([]internal.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]internal.Goal, 0, len(s.goals))
	for _, g := range s.goals {
		list = append(list, *g)
	}
	return list, nil
}

func (s *FileStorage) GetGoal(ctx context.Context, id string) (*internal.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.goals[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *g
	return &copied, nil
}

func (s *FileStorage) CreateGoal(ctx context.Context, goal *internal.Goal) error {
	now := time.Now()
	goal.ID = uuid.NewString()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *goal
	s.goals[goal.ID] = &copied
	signal(s.saveGoalsChan)
	return nil
}

// --- TaskRepository ---

func (s *FileStorage) ListTasks(ctx context.Context) ([]internal.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]internal.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		copied := *t
		if g, ok := s.goals[t.GoalID]; ok {
			copied.GoalTitle = g.Title
			copied.GoalColor = g.Color
		}
		list = append(list, copied)
	}
	return list, nil
}

func (s *FileStorage) ListTasksByGoal(ctx context.Context, goalID string) ([]internal.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := []internal.Task{}
	for _, t := range s.tasks {
		if t.GoalID == goalID {
			list = append(list, *t)
		}
	}
	return list, nil
}

func (s *FileStorage) GetTask(ctx context.Context, id string) (*internal.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (s *FileStorage) CreateTask(ctx context.Context, task *internal.Task) error {
	now := time.Now()
	task.ID = uuid.NewString()
	task.CreatedAt = now
	task.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *task
	s.tasks[task.ID] = &copied
	signal(s.saveTasksChan)
	return nil
}

func (s *FileStorage) UpdateTask(ctx context.Context, task *internal.Task) error {
	task.UpdatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[task.ID]; !ok {
		return ErrNotFound
	}
	copied := *task
	s.tasks[task.ID] = &copied
	signal(s.saveTasksChan)
	return nil
}

func (s *FileStorage) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(s.tasks, id)
	signal(s.saveTasksChan)
	return nil
}

// --- Compile-time assertions ---
var _ EventRepository = (*FileStorage)(nil)
var _ GoalRepository = (*FileStorage)(nil)
var _ TaskRepository = (*FileStorage)(nil)
